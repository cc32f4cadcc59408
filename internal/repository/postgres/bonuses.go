package postgres

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"

	"go.uber.org/zap"
)

// --- Bonus Methods ---

func (s *PostgresStorage) listBonuses(ctx context.Context, op string, where map[string]any) ([]*domain.Bonus, error) {
	bonuses := make([]*domain.Bonus, 0)

	query := s.db.WithContext(ctx)
	if len(where) > 0 {
		query = query.Where(where)
	}
	if err := query.Order("created_at ASC").Find(&bonuses).Error; err != nil {
		return nil, s.fail(op, err)
	}
	return bonuses, nil
}

// ListBonuses возвращает все бонусы
func (s *PostgresStorage) ListBonuses(ctx context.Context) ([]*domain.Bonus, error) {
	return s.listBonuses(ctx, "list bonuses", nil)
}

// ListActiveBonuses возвращает активные бонусы
func (s *PostgresStorage) ListActiveBonuses(ctx context.Context) ([]*domain.Bonus, error) {
	return s.listBonuses(ctx, "list active bonuses", map[string]any{"is_active": true})
}

// ListBonusesByBookmaker возвращает все бонусы букмекера
func (s *PostgresStorage) ListBonusesByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.Bonus, error) {
	return s.listBonuses(ctx, "list bonuses by bookmaker", map[string]any{"bookmaker_id": bookmakerID})
}

// GetBonusByID получает бонус по ID
func (s *PostgresStorage) GetBonusByID(ctx context.Context, id string) (*domain.Bonus, error) {
	var bonus domain.Bonus
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&bonus).Error; err != nil {
		return nil, s.fail("get bonus", err, zap.String("bonus_id", id))
	}
	return &bonus, nil
}

// CreateBonus сохраняет новый бонус
func (s *PostgresStorage) CreateBonus(ctx context.Context, bonus *domain.Bonus) error {
	if err := s.db.WithContext(ctx).Create(bonus).Error; err != nil {
		return s.fail("create bonus", err, zap.String("bookmaker_id", bonus.BookmakerID))
	}

	s.log.Info("created bonus", zap.String("bonus_id", bonus.ID), zap.String("bookmaker_id", bonus.BookmakerID))
	return nil
}

// UpdateBonus применяет частичное обновление и возвращает актуальную запись
func (s *PostgresStorage) UpdateBonus(ctx context.Context, id string, patch domain.BonusPatch) (*domain.Bonus, error) {
	if !patch.IsEmpty() {
		result := s.db.WithContext(ctx).Model(&domain.Bonus{}).Where("id = ?", id).Updates(patch.Columns())
		if result.Error != nil {
			return nil, s.fail("update bonus", result.Error, zap.String("bonus_id", id))
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrNotFound
		}
	}

	return s.GetBonusByID(ctx, id)
}

// DeleteBonus удаляет бонус
func (s *PostgresStorage) DeleteBonus(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Bonus{})
	if result.Error != nil {
		return s.fail("delete bonus", result.Error, zap.String("bonus_id", id))
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	s.log.Info("deleted bonus", zap.String("bonus_id", id))
	return nil
}
