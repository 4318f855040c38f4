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

const prescriptionColumns = `id, user_id, created_at, exercise_type, suggested_duration_minutes, suggested_intensity,
	reasoning, confidence, source, was_followed, follow_up_mood_score`

// PrescriptionsRepository never rewrites a prescription. The only update allowed is
// the one-time feedback.
type PrescriptionsRepository struct {
	conn PgConnection
}

func NewPrescriptionsRepo(cfg DBConfig) *PrescriptionsRepository {
	return &PrescriptionsRepository{
		conn: connect(cfg, "prescriptionsRepo"),
	}
}

func NewPrescriptionsRepoWithConn(conn PgConnection) *PrescriptionsRepository {
	pingConn(conn, "prescriptionsRepo")
	return &PrescriptionsRepository{
		conn: conn,
	}
}

func (pr *PrescriptionsRepository) Create(ctx context.Context, p *entity.Prescription) error {
	if p == nil {
		return errors.New("prescription is nil")
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO mood_prescriptions (user_id, created_at, exercise_type, suggested_duration_minutes,
		suggested_intensity, reasoning, confidence, source) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		p.UserID,
		p.CreatedAt,
		p.ExerciseType,
		p.SuggestedDurationMinutes,
		string(p.SuggestedIntensity),
		p.Reasoning,
		p.Confidence,
		string(p.Source),
	)
	if err := row.Scan(&p.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating prescription db error: " + err.Error())
	}
	return nil
}

func (pr *PrescriptionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+prescriptionColumns+` FROM mood_prescriptions WHERE id = $1;`, id)
	p, err := scanPrescription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPrescriptionNotFound
		}
		return nil, errors.New("getting prescription by id error: " + err.Error())
	}
	return &p, nil
}

func (pr *PrescriptionsRepository) GetForPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) (*entity.Prescription, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+prescriptionColumns+` FROM mood_prescriptions
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1;`, uid, from, to)
	p, err := scanPrescription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPrescriptionNotFound
		}
		return nil, errors.New("getting prescription for period error: " + err.Error())
	}
	return &p, nil
}

func (pr *PrescriptionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.Prescription, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+prescriptionColumns+` FROM mood_prescriptions
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting prescriptions by uid error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, errors.New("prescription row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected prescription rows error: " + err.Error())
	}
	return result, nil
}

func (pr *PrescriptionsRepository) RecordFeedback(ctx context.Context, id, uid uuid.UUID, wasFollowed bool, followUpMoodScore *int) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE mood_prescriptions SET was_followed = $1, follow_up_mood_score = $2
		WHERE id = $3 AND user_id = $4 AND was_followed IS NULL;`,
		wasFollowed, followUpMoodScore, id, uid,
	)
	if err != nil {
		return errors.New("recording feedback error: " + err.Error())
	}
	if ct.RowsAffected() > 0 {
		return nil
	}
	var owner uuid.UUID
	row := pr.conn.QueryRow(ctx, `SELECT user_id FROM mood_prescriptions WHERE id = $1;`, id)
	if err = row.Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrPrescriptionNotFound
		}
		return errors.New("inspecting prescription owner error: " + err.Error())
	}
	if owner != uid {
		return errorvalues.ErrWrongOwner
	}
	return errorvalues.ErrFeedbackRecorded
}

func scanPrescription(row rowScanner) (entity.Prescription, error) {
	var (
		p         entity.Prescription
		intensity string
		source    string
	)
	err := row.Scan(&p.ID, &p.UserID, &p.CreatedAt, &p.ExerciseType, &p.SuggestedDurationMinutes, &intensity,
		&p.Reasoning, &p.Confidence, &source, &p.WasFollowed, &p.FollowUpMoodScore)
	if err != nil {
		return entity.Prescription{}, err
	}
	p.SuggestedIntensity = entity.Intensity(intensity)
	p.Source = entity.PrescriptionSource(source)
	return p, nil
}
