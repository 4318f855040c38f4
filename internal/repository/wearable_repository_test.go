package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func testSummary() entity.WearableDailySummary {
	hrv, rhr := 52.3, 58.0
	sleep := 412
	return entity.WearableDailySummary{
		UserID:               userID,
		Date:                 time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		Source:               "oura",
		HRVAvg:               &hrv,
		RestingHR:            &rhr,
		SleepDurationMinutes: &sleep,
	}
}

func summaryArgs(s entity.WearableDailySummary) []any {
	return []any{s.UserID, s.Date, s.Source, s.HRVAvg, s.HRVMin, s.HRVMax, s.RestingHR,
		s.SleepDurationMinutes, s.SleepDeepMinutes, s.SleepRemMinutes, s.SleepScore, s.ReadinessScore,
		s.Steps, s.ActiveCalories}
}

func TestUpsertSummary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewWearableRepoWithConn(mock)
	summary := testSummary()
	query := regexp.QuoteMeta(`INSERT INTO wearable_daily (user_id, date, source, hrv_avg, hrv_min, hrv_max, resting_hr,`)
	ctx := context.Background()
	t.Run("upserted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(summaryArgs(summary)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Upsert(ctx, &summary)
		assert.NoError(t, err)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(summaryArgs(summary)...).WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Upsert(ctx, &summary)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(summaryArgs(summary)...).WillReturnError(errors.New("db error"))
		err := repo.Upsert(ctx, &summary)
		assert.Error(t, err)
	})
	t.Run("nil summary", func(t *testing.T) {
		assert.Error(t, repo.Upsert(ctx, nil))
	})
}

func TestListSummariesSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewWearableRepoWithConn(mock)
	summary := testSummary()
	since := summary.Date.AddDate(0, 0, -30)
	query := regexp.QuoteMeta(`FROM wearable_daily WHERE user_id = $1 AND date >= $2 ORDER BY date, source;`)
	columns := []string{"user_id", "date", "source", "hrv_avg", "hrv_min", "hrv_max", "resting_hr",
		"sleep_duration_minutes", "sleep_deep_minutes", "sleep_rem_minutes", "sleep_score", "readiness_score",
		"steps", "active_calories"}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, since).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(summaryArgs(summary)...))
		result, err := repo.ListSince(ctx, userID, since)
		assert.NoError(t, err)
		assert.Equal(t, []entity.WearableDailySummary{summary}, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).WillReturnError(errors.New("db error"))
		_, err := repo.ListSince(ctx, userID, since)
		assert.Error(t, err)
	})
}
