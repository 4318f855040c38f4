package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/pkg/entity"
)

const sessionColumns = `id, user_id, date, exercise_type, duration_minutes, intensity, source, avg_heart_rate, calories, notes, created_at`

type ExerciseSessionsRepository struct {
	conn PgConnection
}

func NewExerciseSessionsRepo(cfg DBConfig) *ExerciseSessionsRepository {
	return &ExerciseSessionsRepository{
		conn: connect(cfg, "exerciseSessionsRepo"),
	}
}

func NewExerciseSessionsRepoWithConn(conn PgConnection) *ExerciseSessionsRepository {
	pingConn(conn, "exerciseSessionsRepo")
	return &ExerciseSessionsRepository{
		conn: conn,
	}
}

func (er *ExerciseSessionsRepository) Create(ctx context.Context, session *entity.ExerciseSession) error {
	if session == nil {
		return errors.New("session is nil")
	}
	row := er.conn.QueryRow(ctx, `INSERT INTO exercise_sessions (user_id, date, exercise_type, duration_minutes, intensity, source, avg_heart_rate, calories, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;`,
		session.UserID,
		session.Date,
		session.ExerciseType,
		session.DurationMinutes,
		string(session.Intensity),
		session.Source,
		session.AvgHeartRate,
		session.Calories,
		session.Notes,
	)
	if err := row.Scan(&session.ID, &session.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating session db error: " + err.Error())
	}
	return nil
}

func (er *ExerciseSessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseSession, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM exercise_sessions WHERE id = $1;`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	return &s, nil
}

func (er *ExerciseSessionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.ExerciseSession, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+sessionColumns+` FROM exercise_sessions
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting sessions by uid error: " + err.Error())
	}
	return collectSessions(rows)
}

func (er *ExerciseSessionsRepository) ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.ExerciseSession, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+sessionColumns+` FROM exercise_sessions
		WHERE user_id = $1 AND date >= $2 ORDER BY date, created_at;`, uid, since)
	if err != nil {
		return nil, errors.New("listing sessions error: " + err.Error())
	}
	return collectSessions(rows)
}

func (er *ExerciseSessionsRepository) CountSince(ctx context.Context, uid uuid.UUID, since time.Time) (int, error) {
	row := er.conn.QueryRow(ctx, `SELECT COUNT(*) FROM exercise_sessions WHERE user_id = $1 AND created_at > $2;`, uid, since)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting sessions: " + err.Error())
	}
	return count, nil
}

func (er *ExerciseSessionsRepository) Update(ctx context.Context, session *entity.ExerciseSession) error {
	ct, err := er.conn.Exec(ctx, `UPDATE exercise_sessions SET date = $1, exercise_type = $2, duration_minutes = $3, intensity = $4,
		avg_heart_rate = $5, calories = $6, notes = $7 WHERE id = $8;`,
		session.Date,
		session.ExerciseType,
		session.DurationMinutes,
		string(session.Intensity),
		session.AvgHeartRate,
		session.Calories,
		session.Notes,
		session.ID,
	)
	if err != nil {
		return errors.New("error updating session: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (er *ExerciseSessionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercise_sessions WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting session: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func collectSessions(rows pgx.Rows) ([]entity.ExerciseSession, error) {
	defer rows.Close()
	result := make([]entity.ExerciseSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, errors.New("session row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected session rows error: " + err.Error())
	}
	return result, nil
}

func scanSession(row rowScanner) (entity.ExerciseSession, error) {
	var (
		s         entity.ExerciseSession
		intensity string
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Date, &s.ExerciseType, &s.DurationMinutes, &intensity, &s.Source,
		&s.AvgHeartRate, &s.Calories, &s.Notes, &s.CreatedAt)
	if err != nil {
		return entity.ExerciseSession{}, err
	}
	s.Intensity = entity.Intensity(intensity)
	return s, nil
}
