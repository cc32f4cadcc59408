package repository

import (
	"BetGuide-Backend/internal/domain"
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserStorage хранит учетные записи администраторов.
type UserStorage interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

// BookmakerStorage хранит каталог букмекеров. Все списки отсортированы по rank.
type BookmakerStorage interface {
	ListBookmakers(ctx context.Context) ([]*domain.Bookmaker, error)
	ListActiveBookmakers(ctx context.Context) ([]*domain.Bookmaker, error)
	ListFeaturedBookmakers(ctx context.Context) ([]*domain.Bookmaker, error)
	GetBookmakerBySlug(ctx context.Context, slug string) (*domain.Bookmaker, error)
	GetBookmakerByID(ctx context.Context, id string) (*domain.Bookmaker, error)
	CreateBookmaker(ctx context.Context, bookmaker *domain.Bookmaker) error
	UpdateBookmaker(ctx context.Context, id string, patch domain.BookmakerPatch) (*domain.Bookmaker, error)
	// DeleteBookmaker удаляет букмекера вместе с его бонусами. Клики сохраняются.
	DeleteBookmaker(ctx context.Context, id string) error
	// IncrementClickCount атомарно увеличивает счетчик; для несуществующего id ничего не делает.
	IncrementClickCount(ctx context.Context, id string) error
}

// BonusStorage хранит бонусы букмекеров.
type BonusStorage interface {
	ListBonuses(ctx context.Context) ([]*domain.Bonus, error)
	ListActiveBonuses(ctx context.Context) ([]*domain.Bonus, error)
	ListBonusesByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.Bonus, error)
	GetBonusByID(ctx context.Context, id string) (*domain.Bonus, error)
	CreateBonus(ctx context.Context, bonus *domain.Bonus) error
	UpdateBonus(ctx context.Context, id string, patch domain.BonusPatch) (*domain.Bonus, error)
	DeleteBonus(ctx context.Context, id string) error
}

// BlogStorage хранит статьи блога. Санитизация контента выполняется до вызова хранилища.
type BlogStorage interface {
	ListBlogPosts(ctx context.Context) ([]*domain.BlogPost, error)
	ListPublishedBlogPosts(ctx context.Context) ([]*domain.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	CreateBlogPost(ctx context.Context, post *domain.BlogPost) error
	UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error
}

// AffiliateStorage хранит журнал партнерских переходов (только добавление).
type AffiliateStorage interface {
	CreateAffiliateClick(ctx context.Context, click *domain.AffiliateClick) error
	// RecordAffiliateClick увеличивает счетчик букмекера и пишет клик в одной транзакции.
	// Возвращает ErrNotFound, если букмекера нет.
	RecordAffiliateClick(ctx context.Context, click *domain.AffiliateClick) error
	ListAffiliateClicks(ctx context.Context) ([]*domain.AffiliateClick, error)
	ListAffiliateClicksByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.AffiliateClick, error)
}

type Storage interface {
	UserStorage
	BookmakerStorage
	BonusStorage
	BlogStorage
	AffiliateStorage

	Ping(ctx context.Context) error
}
