//go:build integration

package postgres

import (
	"BetGuide-Backend/internal/database"
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgresContainer(t *testing.T) *PostgresStorage {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("betguide"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))

	return New(db, zap.NewNop())
}

func TestPostgresIntegration(t *testing.T) {
	s := setupPostgresContainer(t)
	ctx := context.Background()

	b := newBookmaker("stake", 1, true, true)
	require.NoError(t, s.CreateBookmaker(ctx, b))
	require.NoError(t, s.CreateBookmaker(ctx, newBookmaker("hidden", 2, false, true)))

	t.Run("duplicate slug is translated", func(t *testing.T) {
		err := s.CreateBookmaker(ctx, newBookmaker("stake", 9, true, false))
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("featured excludes inactive", func(t *testing.T) {
		featured, err := s.ListFeaturedBookmakers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"stake"}, slugs(featured))
	})

	t.Run("concurrent clicks are not lost", func(t *testing.T) {
		const clicks = 50

		var wg sync.WaitGroup
		for i := 0; i < clicks; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.RecordAffiliateClick(ctx, &domain.AffiliateClick{BookmakerID: b.ID}))
			}()
		}
		wg.Wait()

		got, err := s.GetBookmakerByID(ctx, b.ID)
		require.NoError(t, err)
		assert.EqualValues(t, clicks, got.ClickCount)

		log, err := s.ListAffiliateClicksByBookmaker(ctx, b.ID)
		require.NoError(t, err)
		assert.Len(t, log, clicks)
	})

	t.Run("json list columns round trip", func(t *testing.T) {
		pros := []string{"Instant withdrawals", "No KYC"}
		updated, err := s.UpdateBookmaker(ctx, b.ID, domain.BookmakerPatch{Pros: &pros})
		require.NoError(t, err)
		assert.Equal(t, pros, []string(updated.Pros))
	})

	require.NoError(t, s.Ping(ctx))
}
