package postgres

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Bookmaker Methods ---

func (s *PostgresStorage) listBookmakers(ctx context.Context, op string, where map[string]any) ([]*domain.Bookmaker, error) {
	bookmakers := make([]*domain.Bookmaker, 0)

	query := s.db.WithContext(ctx)
	if len(where) > 0 {
		query = query.Where(where)
	}
	if err := query.Order("rank ASC").Order("name ASC").Find(&bookmakers).Error; err != nil {
		return nil, s.fail(op, err)
	}
	return bookmakers, nil
}

// ListBookmakers возвращает всех букмекеров, включая неактивных
func (s *PostgresStorage) ListBookmakers(ctx context.Context) ([]*domain.Bookmaker, error) {
	return s.listBookmakers(ctx, "list bookmakers", nil)
}

// ListActiveBookmakers возвращает активных букмекеров
func (s *PostgresStorage) ListActiveBookmakers(ctx context.Context) ([]*domain.Bookmaker, error) {
	return s.listBookmakers(ctx, "list active bookmakers", map[string]any{"is_active": true})
}

// ListFeaturedBookmakers возвращает активных рекомендуемых букмекеров
func (s *PostgresStorage) ListFeaturedBookmakers(ctx context.Context) ([]*domain.Bookmaker, error) {
	return s.listBookmakers(ctx, "list featured bookmakers", map[string]any{"is_active": true, "featured": true})
}

// GetBookmakerBySlug получает букмекера по slug (точное совпадение)
func (s *PostgresStorage) GetBookmakerBySlug(ctx context.Context, slug string) (*domain.Bookmaker, error) {
	var bookmaker domain.Bookmaker
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&bookmaker).Error; err != nil {
		return nil, s.fail("get bookmaker by slug", err, zap.String("slug", slug))
	}
	return &bookmaker, nil
}

// GetBookmakerByID получает букмекера по ID
func (s *PostgresStorage) GetBookmakerByID(ctx context.Context, id string) (*domain.Bookmaker, error) {
	var bookmaker domain.Bookmaker
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&bookmaker).Error; err != nil {
		return nil, s.fail("get bookmaker", err, zap.String("bookmaker_id", id))
	}
	return &bookmaker, nil
}

// CreateBookmaker сохраняет нового букмекера. ID генерируется, счетчик кликов обнуляется.
func (s *PostgresStorage) CreateBookmaker(ctx context.Context, bookmaker *domain.Bookmaker) error {
	if err := s.db.WithContext(ctx).Create(bookmaker).Error; err != nil {
		return s.fail("create bookmaker", err, zap.String("slug", bookmaker.Slug))
	}

	s.log.Info("created bookmaker", zap.String("bookmaker_id", bookmaker.ID), zap.String("slug", bookmaker.Slug))
	return nil
}

// UpdateBookmaker применяет частичное обновление и возвращает актуальную запись
func (s *PostgresStorage) UpdateBookmaker(ctx context.Context, id string, patch domain.BookmakerPatch) (*domain.Bookmaker, error) {
	if !patch.IsEmpty() {
		result := s.db.WithContext(ctx).Model(&domain.Bookmaker{}).Where("id = ?", id).Updates(patch.Columns())
		if result.Error != nil {
			return nil, s.fail("update bookmaker", result.Error, zap.String("bookmaker_id", id))
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrNotFound
		}
		s.log.Info("updated bookmaker", zap.String("bookmaker_id", id), zap.Int("fields", len(patch.Columns())))
	}

	return s.GetBookmakerByID(ctx, id)
}

// DeleteBookmaker удаляет букмекера и его бонусы в одной транзакции
func (s *PostgresStorage) DeleteBookmaker(ctx context.Context, id string) error {
	var bonusesDeleted int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&domain.Bookmaker{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}

		result = tx.Where("bookmaker_id = ?", id).Delete(&domain.Bonus{})
		bonusesDeleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return s.fail("delete bookmaker", err, zap.String("bookmaker_id", id))
	}

	s.log.Info("deleted bookmaker", zap.String("bookmaker_id", id), zap.Int64("bonuses_deleted", bonusesDeleted))
	return nil
}

// IncrementClickCount атомарно увеличивает счетчик кликов
func (s *PostgresStorage) IncrementClickCount(ctx context.Context, id string) error {
	if _, err := incrementClickCount(s.db.WithContext(ctx), id); err != nil {
		return s.fail("increment click count", err, zap.String("bookmaker_id", id))
	}
	return nil
}

// incrementClickCount выполняет click_count = click_count + 1 на стороне базы,
// поэтому параллельные клики не теряются.
func incrementClickCount(db *gorm.DB, id string) (int64, error) {
	result := db.Model(&domain.Bookmaker{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	return result.RowsAffected, result.Error
}
