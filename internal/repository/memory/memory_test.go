package memory

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func bookmaker(slug string, rank int, active, featured bool) *domain.Bookmaker {
	return &domain.Bookmaker{
		Name:         "Bookmaker " + slug,
		Slug:         slug,
		AffiliateURL: "https://" + slug + ".example.com/?ref=1",
		Rank:         rank,
		IsActive:     active,
		Featured:     featured,
		Pros:         datatypes.JSONSlice[string]{"fast"},
	}
}

func TestMemStorage_BookmakerLists(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateBookmaker(ctx, bookmaker("b", 2, true, true)))
	require.NoError(t, s.CreateBookmaker(ctx, bookmaker("a", 2, true, false)))
	require.NoError(t, s.CreateBookmaker(ctx, bookmaker("hidden", 1, false, true)))

	all, _ := s.ListBookmakers(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "hidden", all[0].Slug)
	assert.Equal(t, "a", all[1].Slug, "name breaks rank ties")

	active, _ := s.ListActiveBookmakers(ctx)
	assert.Len(t, active, 2)

	featured, _ := s.ListFeaturedBookmakers(ctx)
	require.Len(t, featured, 1)
	assert.Equal(t, "b", featured[0].Slug)

	err := s.CreateBookmaker(ctx, bookmaker("a", 5, true, true))
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestMemStorage_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	b := bookmaker("stake", 1, true, true)
	require.NoError(t, s.CreateBookmaker(ctx, b))

	got, err := s.GetBookmakerBySlug(ctx, "stake")
	require.NoError(t, err)
	got.Name = "mutated"
	got.Pros[0] = "mutated"
	b.Name = "mutated too"

	again, err := s.GetBookmakerByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bookmaker stake", again.Name)
	assert.Equal(t, datatypes.JSONSlice[string]{"fast"}, again.Pros)
}

func TestMemStorage_UpdateAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	b := bookmaker("stake", 1, true, true)
	require.NoError(t, s.CreateBookmaker(ctx, b))
	require.NoError(t, s.CreateBonus(ctx, &domain.Bonus{BookmakerID: b.ID, Title: "Welcome", IsActive: true}))

	rank := 2
	updated, err := s.UpdateBookmaker(ctx, b.ID, domain.BookmakerPatch{Rank: &rank})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rank)
	assert.Equal(t, b.Name, updated.Name)
	assert.True(t, updated.Featured)

	_, err = s.UpdateBookmaker(ctx, "missing", domain.BookmakerPatch{Rank: &rank})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.DeleteBookmaker(ctx, b.ID))
	bonuses, _ := s.ListBonuses(ctx)
	assert.Empty(t, bonuses)
	assert.ErrorIs(t, s.DeleteBookmaker(ctx, b.ID), repository.ErrNotFound)
}

func TestMemStorage_Clicks(t *testing.T) {
	s := New()
	ctx := context.Background()

	b := bookmaker("stake", 1, true, true)
	require.NoError(t, s.CreateBookmaker(ctx, b))

	require.NoError(t, s.IncrementClickCount(ctx, b.ID))
	require.NoError(t, s.IncrementClickCount(ctx, "missing"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.RecordAffiliateClick(ctx, &domain.AffiliateClick{BookmakerID: b.ID}))
		}()
	}
	wg.Wait()

	got, _ := s.GetBookmakerByID(ctx, b.ID)
	assert.EqualValues(t, 21, got.ClickCount)

	clicks, _ := s.ListAffiliateClicksByBookmaker(ctx, b.ID)
	assert.Len(t, clicks, 20)

	assert.ErrorIs(t, s.RecordAffiliateClick(ctx, &domain.AffiliateClick{BookmakerID: "missing"}), repository.ErrNotFound)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateAffiliateClick(ctx, &domain.AffiliateClick{BookmakerID: b.ID, ClickedAt: old}))
	all, _ := s.ListAffiliateClicks(ctx)
	require.Len(t, all, 21)
	assert.Equal(t, old, all[len(all)-1].ClickedAt)
}

func TestMemStorage_BlogAndUsers(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := &domain.BlogPost{Title: "First", Slug: "first", IsPublished: true}
	second := &domain.BlogPost{Title: "Second", Slug: "second"}
	require.NoError(t, s.CreateBlogPost(ctx, first))
	require.NoError(t, s.CreateBlogPost(ctx, second))
	assert.ErrorIs(t, s.CreateBlogPost(ctx, &domain.BlogPost{Slug: "first"}), repository.ErrDuplicate)

	all, _ := s.ListBlogPosts(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Slug)

	published, _ := s.ListPublishedBlogPosts(ctx)
	require.Len(t, published, 1)
	assert.NotNil(t, published[0].Tags)

	_, err := s.GetBlogPostBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.DeleteBlogPost(ctx, second.ID))
	assert.ErrorIs(t, s.DeleteBlogPost(ctx, second.ID), repository.ErrNotFound)

	require.NoError(t, s.CreateUser(ctx, &domain.User{Username: "admin", Password: "hash"}))
	assert.ErrorIs(t, s.CreateUser(ctx, &domain.User{Username: "admin"}), repository.ErrDuplicate)
	u, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	_, err = s.GetUser(ctx, u.ID)
	assert.NoError(t, err)
}
