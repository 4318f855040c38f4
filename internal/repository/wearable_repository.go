package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/pkg/entity"
)

type WearableRepository struct {
	conn PgConnection
}

func NewWearableRepo(cfg DBConfig) *WearableRepository {
	return &WearableRepository{
		conn: connect(cfg, "wearableRepo"),
	}
}

func NewWearableRepoWithConn(conn PgConnection) *WearableRepository {
	pingConn(conn, "wearableRepo")
	return &WearableRepository{
		conn: conn,
	}
}

func (wr *WearableRepository) Upsert(ctx context.Context, s *entity.WearableDailySummary) error {
	if s == nil {
		return errors.New("summary is nil")
	}
	_, err := wr.conn.Exec(ctx, `INSERT INTO wearable_daily (user_id, date, source, hrv_avg, hrv_min, hrv_max, resting_hr,
		sleep_duration_minutes, sleep_deep_minutes, sleep_rem_minutes, sleep_score, readiness_score, steps, active_calories)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id, date, source) DO UPDATE SET hrv_avg = EXCLUDED.hrv_avg, hrv_min = EXCLUDED.hrv_min,
		hrv_max = EXCLUDED.hrv_max, resting_hr = EXCLUDED.resting_hr, sleep_duration_minutes = EXCLUDED.sleep_duration_minutes,
		sleep_deep_minutes = EXCLUDED.sleep_deep_minutes, sleep_rem_minutes = EXCLUDED.sleep_rem_minutes,
		sleep_score = EXCLUDED.sleep_score, readiness_score = EXCLUDED.readiness_score, steps = EXCLUDED.steps,
		active_calories = EXCLUDED.active_calories;`,
		s.UserID, s.Date, s.Source,
		s.HRVAvg, s.HRVMin, s.HRVMax, s.RestingHR,
		s.SleepDurationMinutes, s.SleepDeepMinutes, s.SleepRemMinutes,
		s.SleepScore, s.ReadinessScore, s.Steps, s.ActiveCalories,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("upserting wearable summary error: " + err.Error())
	}
	return nil
}

func (wr *WearableRepository) ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.WearableDailySummary, error) {
	rows, err := wr.conn.Query(ctx, `SELECT user_id, date, source, hrv_avg, hrv_min, hrv_max, resting_hr,
		sleep_duration_minutes, sleep_deep_minutes, sleep_rem_minutes, sleep_score, readiness_score, steps, active_calories
		FROM wearable_daily WHERE user_id = $1 AND date >= $2 ORDER BY date, source;`, uid, since)
	if err != nil {
		return nil, errors.New("listing wearable summaries error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.WearableDailySummary, 0)
	for rows.Next() {
		var s entity.WearableDailySummary
		err = rows.Scan(&s.UserID, &s.Date, &s.Source, &s.HRVAvg, &s.HRVMin, &s.HRVMax, &s.RestingHR,
			&s.SleepDurationMinutes, &s.SleepDeepMinutes, &s.SleepRemMinutes, &s.SleepScore, &s.ReadinessScore,
			&s.Steps, &s.ActiveCalories)
		if err != nil {
			return nil, errors.New("wearable row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected wearable rows error: " + err.Error())
	}
	return result, nil
}
