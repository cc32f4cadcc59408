package postgres

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return New(gormDB, zap.NewNop()), mock
}

func TestIncrementClickCount_AtomicSQL(t *testing.T) {
	s, mock := setupMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bookmakers" SET "click_count"=click_count + $1 WHERE id = $2`)).
		WithArgs(1, "bm-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.IncrementClickCount(context.Background(), "bm-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAffiliateClick_Transaction(t *testing.T) {
	t.Run("increment and insert are committed together", func(t *testing.T) {
		s, mock := setupMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bookmakers" SET "click_count"=click_count + $1 WHERE id = $2`)).
			WithArgs(1, "bm-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "affiliate_clicks"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.RecordAffiliateClick(context.Background(), &domain.AffiliateClick{BookmakerID: "bm-1"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown bookmaker rolls back", func(t *testing.T) {
		s, mock := setupMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bookmakers"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := s.RecordAffiliateClick(context.Background(), &domain.AffiliateClick{BookmakerID: "missing"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the increment", func(t *testing.T) {
		s, mock := setupMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bookmakers"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "affiliate_clicks"`)).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := s.RecordAffiliateClick(context.Background(), &domain.AffiliateClick{BookmakerID: "bm-1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStoreFailuresPropagate(t *testing.T) {
	s, mock := setupMockStorage(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bookmakers" WHERE "bookmakers"."is_active" = $1 ORDER BY rank ASC,name ASC`)).
		WithArgs(true).
		WillReturnError(errors.New("connection reset"))

	list, err := s.ListActiveBookmakers(ctx)
	assert.Nil(t, list)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "list active bookmakers")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bookmakers" WHERE slug = $1`)).
		WithArgs("stake", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}))

	_, err = s.GetBookmakerBySlug(ctx, "stake")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookmaker_UniqueViolation(t *testing.T) {
	s, mock := setupMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "bookmakers"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "idx_bookmakers_slug"`})

	err := s.CreateBookmaker(context.Background(), &domain.Bookmaker{Name: "Stake", Slug: "stake"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
