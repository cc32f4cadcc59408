package service

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"BetGuide-Backend/internal/repository/memory"
	"BetGuide-Backend/pkg/sanitize"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBlogService(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	svc := NewBlogService(storage, sanitize.New(), zap.NewNop())

	post := &domain.BlogPost{
		Title:       "Hello",
		Slug:        "hello",
		Excerpt:     "e",
		Content:     "<script>alert(1)</script><p>hi</p>",
		Category:    "guide",
		IsPublished: true,
	}
	require.NoError(t, svc.Create(ctx, post))

	t.Run("content sanitized before write", func(t *testing.T) {
		stored, err := storage.GetBlogPostBySlug(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", stored.Content)
	})

	t.Run("read path sanitizes legacy rows", func(t *testing.T) {
		// bypass the service to simulate a row written before sanitization existed
		require.NoError(t, storage.CreateBlogPost(ctx, &domain.BlogPost{
			Title: "Legacy", Slug: "legacy", Content: `<p onclick="x()">old</p><script>steal()</script>`, IsPublished: true,
		}))

		got, err := svc.GetPublished(ctx, "legacy")
		require.NoError(t, err)
		assert.Equal(t, "<p>old</p>", got.Content)

		list, err := svc.List(ctx, false)
		require.NoError(t, err)
		for _, p := range list {
			assert.NotContains(t, p.Content, "script")
		}
	})

	t.Run("drafts hidden from public lookups", func(t *testing.T) {
		draft := &domain.BlogPost{Title: "Draft", Slug: "draft", Content: "<p>x</p>"}
		require.NoError(t, svc.Create(ctx, draft))

		_, err := svc.GetPublished(ctx, "draft")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		published, err := svc.List(ctx, false)
		require.NoError(t, err)
		all, err := svc.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, all, len(published)+1)
	})

	t.Run("update sanitizes patch content", func(t *testing.T) {
		content := `<h2>New</h2><iframe src="https://evil.example"></iframe>`
		updated, err := svc.Update(ctx, post.ID, domain.BlogPostPatch{Content: &content})
		require.NoError(t, err)
		assert.Equal(t, "<h2>New</h2>", updated.Content)

		_, err = svc.Update(ctx, "missing", domain.BlogPostPatch{Content: &content})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, post.ID))
		assert.ErrorIs(t, svc.Delete(ctx, post.ID), repository.ErrNotFound)
	})
}

func TestBonusService(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	svc := NewBonusService(storage, storage)

	bm := &domain.Bookmaker{Name: "Stake", Slug: "stake", IsActive: true}
	require.NoError(t, storage.CreateBookmaker(ctx, bm))

	err := svc.Create(ctx, &domain.Bonus{BookmakerID: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrUnknownBookmaker)

	bonus := &domain.Bonus{BookmakerID: bm.ID, Title: "Welcome", IsActive: true}
	require.NoError(t, svc.Create(ctx, bonus))

	missing := "missing"
	_, err = svc.Update(ctx, bonus.ID, domain.BonusPatch{BookmakerID: &missing})
	assert.ErrorIs(t, err, ErrUnknownBookmaker)

	title := "Bigger Welcome"
	updated, err := svc.Update(ctx, bonus.ID, domain.BonusPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}
