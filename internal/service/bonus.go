package service

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"
	"errors"
	"fmt"
)

// ErrUnknownBookmaker возвращается, когда бонус ссылается на несуществующего букмекера.
var ErrUnknownBookmaker = errors.New("bookmaker does not exist")

// BonusService проверяет ссылку на букмекера перед записью бонуса.
// В схеме внешнего ключа нет, поэтому проверка выполняется здесь.
type BonusService struct {
	bonuses    repository.BonusStorage
	bookmakers repository.BookmakerStorage
}

func NewBonusService(bonuses repository.BonusStorage, bookmakers repository.BookmakerStorage) *BonusService {
	return &BonusService{
		bonuses:    bonuses,
		bookmakers: bookmakers,
	}
}

func (s *BonusService) Create(ctx context.Context, bonus *domain.Bonus) error {
	if err := s.checkBookmaker(ctx, bonus.BookmakerID); err != nil {
		return err
	}
	return s.bonuses.CreateBonus(ctx, bonus)
}

func (s *BonusService) Update(ctx context.Context, id string, patch domain.BonusPatch) (*domain.Bonus, error) {
	if patch.BookmakerID != nil {
		if err := s.checkBookmaker(ctx, *patch.BookmakerID); err != nil {
			return nil, err
		}
	}
	return s.bonuses.UpdateBonus(ctx, id, patch)
}

func (s *BonusService) checkBookmaker(ctx context.Context, id string) error {
	_, err := s.bookmakers.GetBookmakerByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUnknownBookmaker
	}
	if err != nil {
		return fmt.Errorf("failed to check bookmaker: %w", err)
	}
	return nil
}
