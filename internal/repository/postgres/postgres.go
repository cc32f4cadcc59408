package postgres

import (
	"BetGuide-Backend/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostgresStorage реализует интерфейс Storage поверх GORM.
// Ожидает соединение, открытое с TranslateError: true.
type PostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ repository.Storage = (*PostgresStorage)(nil)

// New создает новый экземпляр PostgreSQL storage
func New(db *gorm.DB, log *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:  db,
		log: log,
	}
}

// Ping проверяет доступность базы данных
func (s *PostgresStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// fail переводит ошибку GORM в ошибку репозитория.
// Отсутствие записи и дубликаты не логируются: это штатные ответы.
func (s *PostgresStorage) fail(op string, err error, fields ...zap.Field) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, repository.ErrNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("failed to %s: %w", op, repository.ErrDuplicate)
	}

	s.log.Error("failed to "+op, append(fields, zap.Error(err))...)
	return fmt.Errorf("failed to %s: %w", op, err)
}
