package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/pkg/entity"
)

const correlationColumns = `user_id, exercise_type, computed_at, mood_change_avg, mood_change_pct, correlation_r,
	p_value, effect_p_value, correlation_undefined, sample_size, lag_days, insight_text`

const latestRun = `computed_at = (SELECT MAX(computed_at) FROM mood_correlations WHERE user_id = $1)`

// CorrelationsRepository is append-only: a computation run is inserted as a whole and
// never modified afterwards.
type CorrelationsRepository struct {
	conn PgConnection
}

func NewCorrelationsRepo(cfg DBConfig) *CorrelationsRepository {
	return &CorrelationsRepository{
		conn: connect(cfg, "correlationsRepo"),
	}
}

func NewCorrelationsRepoWithConn(conn PgConnection) *CorrelationsRepository {
	pingConn(conn, "correlationsRepo")
	return &CorrelationsRepository{
		conn: conn,
	}
}

func (cr *CorrelationsRepository) InsertSnapshot(ctx context.Context, rows []entity.Correlation) (err error) {
	if len(rows) == 0 {
		return nil
	}
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning snapshot transaction error: " + err.Error())
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()
	for _, c := range rows {
		_, err = tx.Exec(ctx, `INSERT INTO mood_correlations (`+correlationColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
			c.UserID, c.ExerciseType, c.ComputedAt, c.MoodChangeAvg, c.MoodChangePct, c.CorrelationR,
			c.PValue, c.EffectPValue, c.CorrelationUndefined, c.SampleSize, c.LagDays, c.InsightText,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				err = errorvalues.ErrUserNotFound
				return err
			}
			err = errors.New("inserting correlation error: " + err.Error())
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		err = errors.New("committing snapshot error: " + err.Error())
		return err
	}
	return nil
}

func (cr *CorrelationsRepository) LatestSnapshot(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+correlationColumns+` FROM mood_correlations
		WHERE user_id = $1 AND `+latestRun+` ORDER BY exercise_type;`, uid)
	if err != nil {
		return nil, errors.New("getting latest snapshot error: " + err.Error())
	}
	return collectCorrelations(rows)
}

func (cr *CorrelationsRepository) TopByPct(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Correlation, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+correlationColumns+` FROM mood_correlations
		WHERE user_id = $1 AND `+latestRun+` ORDER BY mood_change_pct DESC, exercise_type LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting top correlations error: " + err.Error())
	}
	return collectCorrelations(rows)
}

func collectCorrelations(rows pgx.Rows) ([]entity.Correlation, error) {
	defer rows.Close()
	result := make([]entity.Correlation, 0)
	for rows.Next() {
		var c entity.Correlation
		err := rows.Scan(&c.UserID, &c.ExerciseType, &c.ComputedAt, &c.MoodChangeAvg, &c.MoodChangePct, &c.CorrelationR,
			&c.PValue, &c.EffectPValue, &c.CorrelationUndefined, &c.SampleSize, &c.LagDays, &c.InsightText)
		if err != nil {
			return nil, errors.New("correlation row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected correlation rows error: " + err.Error())
	}
	return result, nil
}
