package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID
	Name            string
	PasswordHash    string
	AIConsent       bool
	WearableConsent bool
}

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityVigorous Intensity = "vigorous"
)

// Rank orders intensities from low to vigorous. Unknown values rank -1.
func (i Intensity) Rank() int {
	switch i {
	case IntensityLow:
		return 0
	case IntensityModerate:
		return 1
	case IntensityVigorous:
		return 2
	}
	return -1
}

func (i Intensity) Valid() bool {
	return i.Rank() >= 0
}

// MoodClassification is the output of the external classifier. A check-in either
// carries all of its fields or none of them.
type MoodClassification struct {
	Label      string   `json:"mood_label"`
	Intensity  int      `json:"intensity"`
	Themes     []string `json:"themes"`
	Confidence float64  `json:"confidence"`
}

type MoodCheckin struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"uid"`
	CreatedAt      time.Time           `json:"created_at"`
	MoodScore      int                 `json:"mood_score"`
	JournalText    *string             `json:"-"`
	ManualTags     []string            `json:"manual_tags"`
	Classification *MoodClassification `json:"classification,omitempty"`
}

type ExerciseSession struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	Date            time.Time `json:"date"`
	ExerciseType    string    `json:"exercise_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       Intensity `json:"intensity"`
	Source          string    `json:"source"`
	AvgHeartRate    *float64  `json:"avg_heart_rate,omitempty"`
	Calories        *float64  `json:"calories,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type WearableDailySummary struct {
	UserID               uuid.UUID `json:"uid"`
	Date                 time.Time `json:"date"`
	Source               string    `json:"source"`
	HRVAvg               *float64  `json:"hrv_avg,omitempty"`
	HRVMin               *float64  `json:"hrv_min,omitempty"`
	HRVMax               *float64  `json:"hrv_max,omitempty"`
	RestingHR            *float64  `json:"resting_hr,omitempty"`
	SleepDurationMinutes *int      `json:"sleep_duration_minutes,omitempty"`
	SleepDeepMinutes     *int      `json:"sleep_deep_minutes,omitempty"`
	SleepRemMinutes      *int      `json:"sleep_rem_minutes,omitempty"`
	SleepScore           *float64  `json:"sleep_score,omitempty"`
	ReadinessScore       *float64  `json:"readiness_score,omitempty"`
	Steps                *int      `json:"steps,omitempty"`
	ActiveCalories       *float64  `json:"active_calories,omitempty"`
}

// Correlation is one exercise type's effect estimate from a single computation run.
// Rows are never updated; a later run appends a new snapshot.
type Correlation struct {
	UserID        uuid.UUID `json:"uid"`
	ExerciseType  string    `json:"exercise_type"`
	ComputedAt    time.Time `json:"computed_at"`
	MoodChangeAvg float64   `json:"mood_change_avg"`
	MoodChangePct float64   `json:"mood_change_pct"`
	CorrelationR  float64   `json:"correlation_r"`
	PValue        float64   `json:"p_value"`
	// EffectPValue tests the mean mood change against zero.
	EffectPValue float64 `json:"effect_p_value"`
	// CorrelationUndefined is set when either the pre-mood or the mood change
	// series is constant, so r was reported as 0 with p=1.
	CorrelationUndefined bool   `json:"correlation_undefined"`
	SampleSize           int    `json:"sample_size"`
	LagDays              int    `json:"lag_days"`
	InsightText          string `json:"insight_text"`
}

// SignificanceP is the p-value that backs a recommendation built on this row.
func (c Correlation) SignificanceP() float64 {
	if c.CorrelationUndefined {
		return c.EffectPValue
	}
	return c.PValue
}

type PrescriptionSource string

const (
	SourceCorrelation PrescriptionSource = "correlation"
	SourceRuleBased   PrescriptionSource = "rule_based"
)

type Prescription struct {
	ID                       uuid.UUID          `json:"id"`
	UserID                   uuid.UUID          `json:"uid"`
	CreatedAt                time.Time          `json:"created_at"`
	ExerciseType             string             `json:"exercise_type"`
	SuggestedDurationMinutes int                `json:"suggested_duration_minutes"`
	SuggestedIntensity       Intensity          `json:"suggested_intensity"`
	Reasoning                string             `json:"reasoning"`
	Confidence               float64            `json:"confidence"`
	Source                   PrescriptionSource `json:"source"`
	WasFollowed              *bool              `json:"was_followed,omitempty"`
	FollowUpMoodScore        *int               `json:"follow_up_mood_score,omitempty"`
}
