package memory

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

// MemStorage хранит данные в памяти процесса. Используется в тестах и драйвером "memory".
// Наружу всегда отдаются копии записей.
type MemStorage struct {
	mu         sync.RWMutex
	users      []*domain.User
	bookmakers []*domain.Bookmaker
	bonuses    []*domain.Bonus
	posts      []*domain.BlogPost
	clicks     []*domain.AffiliateClick
}

var _ repository.Storage = (*MemStorage)(nil)

func New() *MemStorage {
	return &MemStorage{}
}

func (s *MemStorage) Ping(_ context.Context) error {
	return nil
}

// --- User Methods ---

func (s *MemStorage) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := *u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := *u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}

	user.Prepare()
	user.CreatedAt = time.Now()
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

// --- Bookmaker Methods ---

func (s *MemStorage) filterBookmakers(keep func(*domain.Bookmaker) bool) []*domain.Bookmaker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bookmaker, 0, len(s.bookmakers))
	for _, b := range s.bookmakers {
		if keep(b) {
			out = append(out, cloneBookmaker(b))
		}
	}
	slices.SortStableFunc(out, func(a, b *domain.Bookmaker) int {
		if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func (s *MemStorage) ListBookmakers(_ context.Context) ([]*domain.Bookmaker, error) {
	return s.filterBookmakers(func(*domain.Bookmaker) bool { return true }), nil
}

func (s *MemStorage) ListActiveBookmakers(_ context.Context) ([]*domain.Bookmaker, error) {
	return s.filterBookmakers(func(b *domain.Bookmaker) bool { return b.IsActive }), nil
}

func (s *MemStorage) ListFeaturedBookmakers(_ context.Context) ([]*domain.Bookmaker, error) {
	return s.filterBookmakers(func(b *domain.Bookmaker) bool { return b.IsActive && b.Featured }), nil
}

func (s *MemStorage) GetBookmakerBySlug(_ context.Context, slug string) (*domain.Bookmaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookmakers {
		if b.Slug == slug {
			return cloneBookmaker(b), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) GetBookmakerByID(_ context.Context, id string) (*domain.Bookmaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b := s.findBookmaker(id); b != nil {
		return cloneBookmaker(b), nil
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) CreateBookmaker(_ context.Context, bookmaker *domain.Bookmaker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookmakers {
		if b.Slug == bookmaker.Slug {
			return repository.ErrDuplicate
		}
	}

	bookmaker.Prepare()
	bookmaker.CreatedAt = time.Now()
	bookmaker.UpdatedAt = bookmaker.CreatedAt
	s.bookmakers = append(s.bookmakers, cloneBookmaker(bookmaker))
	return nil
}

func (s *MemStorage) UpdateBookmaker(_ context.Context, id string, patch domain.BookmakerPatch) (*domain.Bookmaker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findBookmaker(id)
	if b == nil {
		return nil, repository.ErrNotFound
	}
	if !patch.IsEmpty() {
		patch.Apply(b)
		b.UpdatedAt = time.Now()
	}
	return cloneBookmaker(b), nil
}

func (s *MemStorage) DeleteBookmaker(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findBookmaker(id) == nil {
		return repository.ErrNotFound
	}
	s.bookmakers = slices.DeleteFunc(s.bookmakers, func(b *domain.Bookmaker) bool { return b.ID == id })
	s.bonuses = slices.DeleteFunc(s.bonuses, func(b *domain.Bonus) bool { return b.BookmakerID == id })
	return nil
}

func (s *MemStorage) IncrementClickCount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b := s.findBookmaker(id); b != nil {
		b.ClickCount++
	}
	return nil
}

// findBookmaker вызывается под блокировкой
func (s *MemStorage) findBookmaker(id string) *domain.Bookmaker {
	for _, b := range s.bookmakers {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// --- Bonus Methods ---

func (s *MemStorage) filterBonuses(keep func(*domain.Bonus) bool) []*domain.Bonus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Bonus, 0, len(s.bonuses))
	for _, b := range s.bonuses {
		if keep(b) {
			bonus := *b
			out = append(out, &bonus)
		}
	}
	return out
}

func (s *MemStorage) ListBonuses(_ context.Context) ([]*domain.Bonus, error) {
	return s.filterBonuses(func(*domain.Bonus) bool { return true }), nil
}

func (s *MemStorage) ListActiveBonuses(_ context.Context) ([]*domain.Bonus, error) {
	return s.filterBonuses(func(b *domain.Bonus) bool { return b.IsActive }), nil
}

func (s *MemStorage) ListBonusesByBookmaker(_ context.Context, bookmakerID string) ([]*domain.Bonus, error) {
	return s.filterBonuses(func(b *domain.Bonus) bool { return b.BookmakerID == bookmakerID }), nil
}

func (s *MemStorage) GetBonusByID(_ context.Context, id string) (*domain.Bonus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b := s.findBonus(id); b != nil {
		bonus := *b
		return &bonus, nil
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) CreateBonus(_ context.Context, bonus *domain.Bonus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bonus.Prepare()
	bonus.CreatedAt = time.Now()
	bonus.UpdatedAt = bonus.CreatedAt
	stored := *bonus
	s.bonuses = append(s.bonuses, &stored)
	return nil
}

func (s *MemStorage) UpdateBonus(_ context.Context, id string, patch domain.BonusPatch) (*domain.Bonus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findBonus(id)
	if b == nil {
		return nil, repository.ErrNotFound
	}
	if !patch.IsEmpty() {
		patch.Apply(b)
		b.UpdatedAt = time.Now()
	}
	bonus := *b
	return &bonus, nil
}

func (s *MemStorage) DeleteBonus(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findBonus(id) == nil {
		return repository.ErrNotFound
	}
	s.bonuses = slices.DeleteFunc(s.bonuses, func(b *domain.Bonus) bool { return b.ID == id })
	return nil
}

func (s *MemStorage) findBonus(id string) *domain.Bonus {
	for _, b := range s.bonuses {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// --- Blog Methods ---

func (s *MemStorage) filterPosts(keep func(*domain.BlogPost) bool) []*domain.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.BlogPost, 0, len(s.posts))
	// новые первыми
	for i := len(s.posts) - 1; i >= 0; i-- {
		if keep(s.posts[i]) {
			out = append(out, clonePost(s.posts[i]))
		}
	}
	return out
}

func (s *MemStorage) ListBlogPosts(_ context.Context) ([]*domain.BlogPost, error) {
	return s.filterPosts(func(*domain.BlogPost) bool { return true }), nil
}

func (s *MemStorage) ListPublishedBlogPosts(_ context.Context) ([]*domain.BlogPost, error) {
	return s.filterPosts(func(p *domain.BlogPost) bool { return p.IsPublished }), nil
}

func (s *MemStorage) GetBlogPostBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.Slug == slug {
			return clonePost(p), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) CreateBlogPost(_ context.Context, post *domain.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Slug == post.Slug {
			return repository.ErrDuplicate
		}
	}

	post.Prepare()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	s.posts = append(s.posts, clonePost(post))
	return nil
}

func (s *MemStorage) UpdateBlogPost(_ context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.posts, func(p *domain.BlogPost) bool { return p.ID == id })
	if idx < 0 {
		return nil, repository.ErrNotFound
	}
	if !patch.IsEmpty() {
		patch.Apply(s.posts[idx])
		s.posts[idx].UpdatedAt = time.Now()
	}
	return clonePost(s.posts[idx]), nil
}

func (s *MemStorage) DeleteBlogPost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.posts)
	s.posts = slices.DeleteFunc(s.posts, func(p *domain.BlogPost) bool { return p.ID == id })
	if len(s.posts) == before {
		return repository.ErrNotFound
	}
	return nil
}

// --- Affiliate Click Methods ---

func (s *MemStorage) CreateAffiliateClick(_ context.Context, click *domain.AffiliateClick) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendClick(click)
	return nil
}

func (s *MemStorage) RecordAffiliateClick(_ context.Context, click *domain.AffiliateClick) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findBookmaker(click.BookmakerID)
	if b == nil {
		return repository.ErrNotFound
	}
	b.ClickCount++
	s.appendClick(click)
	return nil
}

func (s *MemStorage) appendClick(click *domain.AffiliateClick) {
	click.Prepare()
	stored := *click
	s.clicks = append(s.clicks, &stored)
}

func (s *MemStorage) ListAffiliateClicks(_ context.Context) ([]*domain.AffiliateClick, error) {
	return s.filterClicks(func(*domain.AffiliateClick) bool { return true }), nil
}

func (s *MemStorage) ListAffiliateClicksByBookmaker(_ context.Context, bookmakerID string) ([]*domain.AffiliateClick, error) {
	return s.filterClicks(func(c *domain.AffiliateClick) bool { return c.BookmakerID == bookmakerID }), nil
}

func (s *MemStorage) filterClicks(keep func(*domain.AffiliateClick) bool) []*domain.AffiliateClick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AffiliateClick, 0, len(s.clicks))
	for _, c := range s.clicks {
		if keep(c) {
			click := *c
			out = append(out, &click)
		}
	}
	slices.SortStableFunc(out, func(a, b *domain.AffiliateClick) int {
		return b.ClickedAt.Compare(a.ClickedAt)
	})
	return out
}

func cloneBookmaker(b *domain.Bookmaker) *domain.Bookmaker {
	c := *b
	c.CryptosAccepted = slices.Clone(b.CryptosAccepted)
	c.SportsCovered = slices.Clone(b.SportsCovered)
	c.Pros = slices.Clone(b.Pros)
	c.Cons = slices.Clone(b.Cons)
	return &c
}

func clonePost(p *domain.BlogPost) *domain.BlogPost {
	c := *p
	c.Tags = slices.Clone(p.Tags)
	return &c
}
