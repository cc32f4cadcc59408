package database

import (
	"BetGuide-Backend/internal/auth"
	"BetGuide-Backend/internal/config"
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository/memory"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedData(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)
	admin := config.Admin{SeedUsername: "admin", SeedPassword: "super-secret"}

	require.NoError(t, SeedData(ctx, storage, admin, passwords, zap.NewNop()))

	bookmakers, err := storage.ListBookmakers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, bookmakers)
	for _, b := range bookmakers {
		assert.Equal(t, domain.TrustLabel(b.TrustScore), b.TrustScoreLabel)
		assert.Zero(t, b.ClickCount)
	}

	bonuses, err := storage.ListBonuses(ctx)
	require.NoError(t, err)
	assert.Len(t, bonuses, len(bookmakers))

	posts, err := storage.ListBlogPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	user, err := storage.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, passwords.VerifyPassword(user.Password, "super-secret"))

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, SeedData(ctx, storage, admin, passwords, zap.NewNop()))

		again, err := storage.ListBookmakers(ctx)
		require.NoError(t, err)
		assert.Len(t, again, len(bookmakers))
	})
}

func TestSeedData_NoAdminConfigured(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()

	require.NoError(t, SeedData(ctx, storage, config.Admin{}, auth.NewPasswordService(), zap.NewNop()))

	_, err := storage.GetUserByUsername(ctx, "admin")
	assert.Error(t, err)
}
