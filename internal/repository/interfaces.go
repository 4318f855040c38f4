package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/mindrep/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Sets both consent flags of user
	UpdateConsent(ctx context.Context, uid uuid.UUID, aiConsent, wearableConsent bool) error
	// Lists user ids ordered by creation. Used by the daily cycle
	ListIDs(ctx context.Context, limit, offset int) ([]uuid.UUID, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type MoodCheckinsRepositoryI interface {
	// Inserts check-in, fills its ID and CreatedAt. Classification is stored as well if present
	Create(ctx context.Context, checkin *entity.MoodCheckin) error
	// Stores AI classification of check-in. Classification can be written only once
	SetClassification(ctx context.Context, id uuid.UUID, classification *entity.MoodClassification) error
	// Lists user's check-ins newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.MoodCheckin, error)
	// Lists user's check-ins created at or after since, oldest first
	ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.MoodCheckin, error)
	// Returns user's most recent check-in or nil if there is none
	Latest(ctx context.Context, uid uuid.UUID) (*entity.MoodCheckin, error)
	// Counts check-ins created after since
	CountSince(ctx context.Context, uid uuid.UUID, since time.Time) (int, error)
}

type ExerciseSessionsRepositoryI interface {
	// Inserts session, fills its ID and CreatedAt
	Create(ctx context.Context, session *entity.ExerciseSession) error
	// Searches session with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseSession, error)
	// Lists user's sessions newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.ExerciseSession, error)
	// Lists user's sessions dated at or after since, oldest first
	ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.ExerciseSession, error)
	// Counts sessions logged after since
	CountSince(ctx context.Context, uid uuid.UUID, since time.Time) (int, error)
	// Updates session by ID (ID in session is necessary)
	Update(ctx context.Context, session *entity.ExerciseSession) error
	// Deletes session with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type WearableRepositoryI interface {
	// Inserts summary or replaces the one with the same user, date and source
	Upsert(ctx context.Context, summary *entity.WearableDailySummary) error
	// Lists user's summaries dated at or after since, oldest first
	ListSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.WearableDailySummary, error)
}

type CorrelationsRepositoryI interface {
	// Appends one computation run. Existing rows are never touched
	InsertSnapshot(ctx context.Context, rows []entity.Correlation) error
	// Returns rows of user's most recent run ordered by exercise type
	LatestSnapshot(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error)
	// Returns strongest rows of the most recent run by mood change percent
	TopByPct(ctx context.Context, uid uuid.UUID, limit int) ([]entity.Correlation, error)
}

type PrescriptionsRepositoryI interface {
	// Inserts prescription, fills its ID
	Create(ctx context.Context, p *entity.Prescription) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	// Returns user's latest prescription created in [from, to)
	GetForPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) (*entity.Prescription, error)
	// Lists user's prescriptions newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.Prescription, error)
	// Sets feedback fields once. Prescription must belong to uid
	RecordFeedback(ctx context.Context, id, uid uuid.UUID, wasFollowed bool, followUpMoodScore *int) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
