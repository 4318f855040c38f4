package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/anonymise"
	"github.com/limbo/mindrep/pkg/entity"
)

type PaginationOpts struct {
	Limit  int
	Offset int
}

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type ConsentRequest struct {
	AIConsent       bool
	WearableConsent bool
}

type CreateCheckinRequest struct {
	MoodScore   int      `validate:"required,min=1,max=10"`
	JournalText *string  `validate:"omitempty,max=1000"`
	ManualTags  []string `validate:"max=12,dive,mood_tag"`
}

type ExerciseRequest struct {
	Date            time.Time `validate:"required"`
	ExerciseType    string    `validate:"required,exercise_type"`
	DurationMinutes int       `validate:"required,min=1,max=600"`
	Intensity       string    `validate:"required,oneof=low moderate vigorous"`
	Source          string    `validate:"omitempty,max=50"`
	AvgHeartRate    *float64  `validate:"omitempty,gt=0,lt=250"`
	Calories        *float64  `validate:"omitempty,gte=0"`
	Notes           *string   `validate:"omitempty,max=500"`
}

type WearableRequest struct {
	Date                 time.Time `validate:"required"`
	Source               string    `validate:"required,max=50"`
	HRVAvg               *float64  `validate:"omitempty,gte=0"`
	HRVMin               *float64  `validate:"omitempty,gte=0"`
	HRVMax               *float64  `validate:"omitempty,gte=0"`
	RestingHR            *float64  `validate:"omitempty,gt=0,lt=250"`
	SleepDurationMinutes *int      `validate:"omitempty,gte=0,lte=1440"`
	SleepDeepMinutes     *int      `validate:"omitempty,gte=0,lte=1440"`
	SleepRemMinutes      *int      `validate:"omitempty,gte=0,lte=1440"`
	SleepScore           *float64  `validate:"omitempty,gte=0,lte=100"`
	ReadinessScore       *float64  `validate:"omitempty,gte=0,lte=100"`
	Steps                *int      `validate:"omitempty,gte=0"`
	ActiveCalories       *float64  `validate:"omitempty,gte=0"`
}

type FeedbackRequest struct {
	WasFollowed       *bool `validate:"required"`
	FollowUpMoodScore *int  `validate:"omitempty,min=1,max=10"`
}

// CheckinResult reports what happened to the journal text of a new check-in.
type CheckinResult struct {
	Checkin       entity.MoodCheckin
	JournalStored bool
	AIProcessed   bool
}

type MoodTrendPoint struct {
	Date      time.Time `json:"date"`
	MoodScore float64   `json:"mood_score"`
}

type WeeklyInsights struct {
	MoodTrend       []MoodTrendPoint     `json:"mood_trend"`
	TopCorrelations []entity.Correlation `json:"top_correlations"`
	ExerciseSummary map[string]int       `json:"exercise_summary"`
	WeekStart       time.Time            `json:"week_start"`
	WeekEnd         time.Time            `json:"week_end"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	UpdateConsent(ctx context.Context, id uuid.UUID, req ConsentRequest) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type MoodServiceI interface {
	// Stores the check-in, then enriches it with a classification when allowed.
	// Enrichment failures never fail the call.
	CreateCheckin(ctx context.Context, uid uuid.UUID, req CreateCheckinRequest) (*CheckinResult, error)
	GetUserCheckins(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.MoodCheckin, error)
}

type ExerciseServiceI interface {
	LogSession(ctx context.Context, uid uuid.UUID, req ExerciseRequest) (*entity.ExerciseSession, error)
	GetUserSessions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.ExerciseSession, error)
	UpdateSession(ctx context.Context, id, uid uuid.UUID, req ExerciseRequest) (*entity.ExerciseSession, error)
	DeleteSession(ctx context.Context, id, uid uuid.UUID) error
}

type WearableServiceI interface {
	// Requires wearable consent.
	SyncDaily(ctx context.Context, uid uuid.UUID, req WearableRequest) (*entity.WearableDailySummary, error)
}

type CorrelationServiceI interface {
	// Current returns the latest snapshot, recomputing it first when it is stale.
	Current(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error)
	Latest(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error)
	// Recompute always runs the computation and appends a snapshot.
	Recompute(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error)
}

type PrescriptionServiceI interface {
	// Today returns the prescription for the current UTC day, creating it when
	// missing. Users without any check-in get the catch-all rule.
	Today(ctx context.Context, uid uuid.UUID) (*entity.Prescription, error)
	GetUserPrescriptions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.Prescription, error)
	RecordFeedback(ctx context.Context, id, uid uuid.UUID, req FeedbackRequest) error
}

type InsightsServiceI interface {
	Weekly(ctx context.Context, uid uuid.UUID) (*WeeklyInsights, error)
}

type Anonymiser interface {
	Anonymise(text string) anonymise.Result
}

type Classifier interface {
	Classify(ctx context.Context, text string) (*entity.MoodClassification, error)
}
