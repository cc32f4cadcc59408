package postgres

import (
	"BetGuide-Backend/internal/domain"
	"context"

	"go.uber.org/zap"
)

// GetUser получает пользователя по ID
func (s *PostgresStorage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, s.fail("get user", err, zap.String("user_id", id))
	}
	return &user, nil
}

// GetUserByUsername получает пользователя по имени
func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, s.fail("get user by username", err, zap.String("username", username))
	}
	return &user, nil
}

// CreateUser создает пользователя. Password должен быть уже захеширован.
func (s *PostgresStorage) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return s.fail("create user", err, zap.String("username", user.Username))
	}

	s.log.Info("created user", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return nil
}
