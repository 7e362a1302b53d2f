package postgres

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"gravity/internal/domain/entity"
	"gravity/internal/domain/repository"
	"gravity/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T, matchers ...sqlmock.QueryMatcher) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	var (
		sqlDB *sql.DB
		mock  sqlmock.Sqlmock
		err   error
	)
	if len(matchers) > 0 {
		sqlDB, mock, err = sqlmock.New(sqlmock.QueryMatcherOption(matchers[0]))
	} else {
		sqlDB, mock, err = sqlmock.New()
	}
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: sqlDB,
		// sqlmock cannot answer the version query issued on connect
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func sampleLog(userID uuid.UUID) *entity.DailyLog {
	verified := true

	return &entity.DailyLog{
		UserID:          userID,
		Date:            "2025-01-15",
		AvgHeartRate:    141,
		DurationMinutes: 52,
		DistanceKm:      6.4,
		IsVerified:      &verified,
		Notes:           "Verified by General Rule",
	}
}

func TestUpsert_GuardsVerifiedRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyLogRepository(db)
	userID := uuid.New()

	// The conflict branch only fires while the stored row is not yet
	// verified, so the statement must carry the conditional update.
	mock.ExpectQuery(`INSERT INTO "daily_logs" .+ON CONFLICT \("user_id","date"\) DO UPDATE SET .+WHERE daily_logs\.is_verified IS DISTINCT FROM TRUE.+RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	applied, err := repo.Upsert(context.Background(), sampleLog(userID), entity.SourceAutomated)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_VerifiedRowRejectsLowerTrustWrite(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyLogRepository(db)
	userID := uuid.New()

	// Conflict hit a verified row: no row comes back and the write is a
	// reported no-op rather than an error.
	mock.ExpectQuery(`INSERT INTO "daily_logs" .+IS DISTINCT FROM TRUE.+RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	applied, err := repo.Upsert(context.Background(), sampleLog(userID), entity.SourceHuman)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_AdminBypassesGuard(t *testing.T) {
	// Admin writes must reach the row even when it is already verified,
	// so the statement may not carry the conditional update clause.
	noGuard := sqlmock.QueryMatcherFunc(func(_, actualSQL string) error {
		if strings.Contains(actualSQL, "IS DISTINCT FROM TRUE") {
			return errors.New("admin upsert carries the verified-wins guard")
		}

		return nil
	})

	db, mock := newTestDB(t, noGuard)
	repo := NewDailyLogRepository(db)
	userID := uuid.New()

	mock.ExpectQuery("INSERT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	applied, err := repo.Upsert(context.Background(), sampleLog(userID), entity.SourceAdmin)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserAndDate_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyLogRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "daily_logs" WHERE user_id = .+ AND date = .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUserAndDate(context.Background(), userID, "2025-01-15")
	assert.ErrorIs(t, err, repository.ErrLogNotFound)
}

func TestOverrideVerification_UnknownLog(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDailyLogRepository(db)

	mock.ExpectExec(`UPDATE "daily_logs" SET "is_verified"=.+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.OverrideVerification(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, repository.ErrLogNotFound)
}
