package postgres

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Affiliate Click Methods ---

// CreateAffiliateClick добавляет запись в журнал кликов без изменения счетчика
func (s *PostgresStorage) CreateAffiliateClick(ctx context.Context, click *domain.AffiliateClick) error {
	if err := s.db.WithContext(ctx).Create(click).Error; err != nil {
		return s.fail("create affiliate click", err, zap.String("bookmaker_id", click.BookmakerID))
	}
	return nil
}

// RecordAffiliateClick увеличивает счетчик букмекера и пишет клик в одной транзакции
func (s *PostgresStorage) RecordAffiliateClick(ctx context.Context, click *domain.AffiliateClick) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := incrementClickCount(tx, click.BookmakerID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return repository.ErrNotFound
		}

		return tx.Create(click).Error
	})
	if err != nil {
		return s.fail("record affiliate click", err, zap.String("bookmaker_id", click.BookmakerID))
	}

	s.log.Debug("recorded affiliate click",
		zap.String("bookmaker_id", click.BookmakerID),
		zap.String("device_type", click.GetDeviceType()))
	return nil
}

// ListAffiliateClicks возвращает журнал кликов, новые первыми
func (s *PostgresStorage) ListAffiliateClicks(ctx context.Context) ([]*domain.AffiliateClick, error) {
	clicks := make([]*domain.AffiliateClick, 0)
	if err := s.db.WithContext(ctx).Order("clicked_at DESC").Find(&clicks).Error; err != nil {
		return nil, s.fail("list affiliate clicks", err)
	}
	return clicks, nil
}

// ListAffiliateClicksByBookmaker возвращает клики по одному букмекеру
func (s *PostgresStorage) ListAffiliateClicksByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.AffiliateClick, error) {
	clicks := make([]*domain.AffiliateClick, 0)
	err := s.db.WithContext(ctx).
		Where("bookmaker_id = ?", bookmakerID).
		Order("clicked_at DESC").
		Find(&clicks).Error
	if err != nil {
		return nil, s.fail("list affiliate clicks by bookmaker", err, zap.String("bookmaker_id", bookmakerID))
	}
	return clicks, nil
}
