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

const checkinColumns = `id, user_id, created_at, mood_score, journal_text, manual_tags, ai_mood_label, ai_intensity, ai_themes, ai_confidence`

type MoodCheckinsRepository struct {
	conn PgConnection
}

func NewMoodCheckinsRepo(cfg DBConfig) *MoodCheckinsRepository {
	return &MoodCheckinsRepository{
		conn: connect(cfg, "moodCheckinsRepo"),
	}
}

func NewMoodCheckinsRepoWithConn(conn PgConnection) *MoodCheckinsRepository {
	pingConn(conn, "moodCheckinsRepo")
	return &MoodCheckinsRepository{
		conn: conn,
	}
}

func (mr *MoodCheckinsRepository) Create(ctx context.Context, checkin *entity.MoodCheckin) error {
	if checkin == nil {
		return errors.New("check-in is nil")
	}
	tags := checkin.ManualTags
	if tags == nil {
		tags = []string{}
	}
	label, intensity, themes, confidence := classificationArgs(checkin.Classification)
	row := mr.conn.QueryRow(ctx, `INSERT INTO mood_checkins (user_id, mood_score, journal_text, manual_tags, ai_mood_label, ai_intensity, ai_themes, ai_confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		checkin.UserID,
		checkin.MoodScore,
		checkin.JournalText,
		tags,
		label,
		intensity,
		themes,
		confidence,
	)
	if err := row.Scan(&checkin.ID, &checkin.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating check-in db error: " + err.Error())
	}
	return nil
}

func (mr *MoodCheckinsRepository) SetClassification(ctx context.Context, id uuid.UUID, classification *entity.MoodClassification) error {
	if classification == nil {
		return errors.New("classification is nil")
	}
	label, intensity, themes, confidence := classificationArgs(classification)
	ct, err := mr.conn.Exec(ctx, `UPDATE mood_checkins SET ai_mood_label = $1, ai_intensity = $2, ai_themes = $3, ai_confidence = $4
		WHERE id = $5 AND ai_mood_label IS NULL;`,
		label, intensity, themes, confidence, id,
	)
	if err != nil {
		return errors.New("setting classification error: " + err.Error())
	}
	if ct.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	row := mr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM mood_checkins WHERE id = $1);`, id)
	if err = row.Scan(&exists); err != nil {
		return errors.New("inspecting if check-in exists error: " + err.Error())
	}
	if !exists {
		return errorvalues.ErrCheckinNotFound
	}
	return errorvalues.ErrCheckinClassified
}

func (mr *MoodCheckinsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.MoodCheckin, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+checkinColumns+` FROM mood_checkins
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting check-ins by uid error: " + err.Error())
	}
	return collectCheckins(rows)
}

func (mr *MoodCheckinsRepository) ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.MoodCheckin, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+checkinColumns+` FROM mood_checkins
		WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at;`, uid, since)
	if err != nil {
		return nil, errors.New("listing check-ins error: " + err.Error())
	}
	return collectCheckins(rows)
}

func (mr *MoodCheckinsRepository) Latest(ctx context.Context, uid uuid.UUID) (*entity.MoodCheckin, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+checkinColumns+` FROM mood_checkins
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1;`, uid)
	c, err := scanCheckin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting latest check-in error: " + err.Error())
	}
	return &c, nil
}

func (mr *MoodCheckinsRepository) CountSince(ctx context.Context, uid uuid.UUID, since time.Time) (int, error) {
	row := mr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM mood_checkins WHERE user_id = $1 AND created_at > $2;`, uid, since)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting check-ins: " + err.Error())
	}
	return count, nil
}

func collectCheckins(rows pgx.Rows) ([]entity.MoodCheckin, error) {
	defer rows.Close()
	result := make([]entity.MoodCheckin, 0)
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected check-in rows error: " + err.Error())
	}
	return result, nil
}

func scanCheckin(row rowScanner) (entity.MoodCheckin, error) {
	var (
		c          entity.MoodCheckin
		label      *string
		intensity  *int
		themes     []string
		confidence *float64
	)
	err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.MoodScore, &c.JournalText, &c.ManualTags,
		&label, &intensity, &themes, &confidence)
	if err != nil {
		return entity.MoodCheckin{}, err
	}
	if label != nil && intensity != nil && confidence != nil {
		c.Classification = &entity.MoodClassification{
			Label:      *label,
			Intensity:  *intensity,
			Themes:     themes,
			Confidence: *confidence,
		}
	}
	return c, nil
}

// classificationArgs spreads c into nullable columns so all four are set or none.
func classificationArgs(c *entity.MoodClassification) (*string, *int, []string, *float64) {
	if c == nil {
		return nil, nil, nil, nil
	}
	themes := c.Themes
	if themes == nil {
		themes = []string{}
	}
	return &c.Label, &c.Intensity, themes, &c.Confidence
}
