package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/pkg/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultLagDays = 1
	MaxLagDays     = 3
	// LookAheadDays bounds the search for a post-session check-in past the lag target day.
	LookAheadDays = 3
	// MinSampleSize is the correlation gate: fewer pairs never produce a row.
	MinSampleSize = 5
	// SignificanceLevel is the p-value a correlation must stay below to be recommended.
	SignificanceLevel = 0.05
)

// History is one user's already-scoped input. Wearables are accepted for future
// confound adjustment and are not read by the current computation.
type History struct {
	Checkins  []entity.MoodCheckin
	Sessions  []entity.ExerciseSession
	Wearables []entity.WearableDailySummary
}

type Options struct {
	LagDays int
	// Now stamps ComputedAt on every emitted row.
	Now time.Time
}

type moodPair struct {
	pre  int
	post int
}

// ComputeCorrelations estimates the mood effect of every exercise type in h.
// Types with fewer than MinSampleSize usable session/check-in pairs are omitted.
// The only error is an out-of-range lag.
func ComputeCorrelations(userID uuid.UUID, h History, opts Options) ([]entity.Correlation, error) {
	if opts.LagDays < 0 || opts.LagDays > MaxLagDays {
		return nil, errorvalues.ErrInvalidLagDays
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}
	checkins := usableCheckins(userID, h.Checkins)
	byType := groupSessions(userID, h.Sessions)

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	result := make([]entity.Correlation, 0, len(types))
	for _, exerciseType := range types {
		pairs := make([]moodPair, 0, len(byType[exerciseType]))
		for _, s := range byType[exerciseType] {
			if p, ok := pairForSession(checkins, s.Date, opts.LagDays); ok {
				pairs = append(pairs, p)
			}
		}
		if len(pairs) < MinSampleSize {
			continue
		}
		result = append(result, summarise(userID, exerciseType, pairs, opts))
	}
	return result, nil
}

func summarise(userID uuid.UUID, exerciseType string, pairs []moodPair, opts Options) entity.Correlation {
	pre := make([]float64, len(pairs))
	change := make([]float64, len(pairs))
	var sumChange, sumPct float64
	for i, p := range pairs {
		pre[i] = float64(p.pre)
		change[i] = float64(p.post - p.pre)
		sumChange += change[i]
		sumPct += 100 * change[i] / pre[i]
	}
	n := float64(len(pairs))
	r, pValue, ok := pearson(pre, change)
	c := entity.Correlation{
		UserID:               userID,
		ExerciseType:         exerciseType,
		ComputedAt:           opts.Now,
		MoodChangeAvg:        sumChange / n,
		MoodChangePct:        sumPct / n,
		CorrelationR:         r,
		PValue:               pValue,
		EffectPValue:         meanEffectP(change),
		CorrelationUndefined: !ok,
		SampleSize:           len(pairs),
		LagDays:              opts.LagDays,
	}
	c.InsightText = insightText(c)
	return c
}

// pairForSession finds the latest check-in strictly before the session day and the
// earliest one inside [day+lag, day+lag+LookAheadDays]. checkins must be sorted.
func pairForSession(checkins []entity.MoodCheckin, date time.Time, lag int) (moodPair, bool) {
	day := startOfDay(date)
	i := sort.Search(len(checkins), func(i int) bool {
		return !checkins[i].CreatedAt.Before(day)
	})
	if i == 0 {
		return moodPair{}, false
	}
	target := day.AddDate(0, 0, lag)
	limit := target.AddDate(0, 0, LookAheadDays+1)
	j := sort.Search(len(checkins), func(j int) bool {
		return !checkins[j].CreatedAt.Before(target)
	})
	if j == len(checkins) || !checkins[j].CreatedAt.Before(limit) {
		return moodPair{}, false
	}
	return moodPair{pre: checkins[i-1].MoodScore, post: checkins[j].MoodScore}, true
}

// usableCheckins drops out-of-range and foreign rows and sorts by time.
func usableCheckins(userID uuid.UUID, in []entity.MoodCheckin) []entity.MoodCheckin {
	out := make([]entity.MoodCheckin, 0, len(in))
	for _, c := range in {
		if c.MoodScore < 1 || c.MoodScore > 10 || c.CreatedAt.IsZero() {
			continue
		}
		if userID != uuid.Nil && c.UserID != uuid.Nil && c.UserID != userID {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func groupSessions(userID uuid.UUID, in []entity.ExerciseSession) map[string][]entity.ExerciseSession {
	byType := make(map[string][]entity.ExerciseSession)
	for _, s := range in {
		if !usableSession(userID, s) {
			continue
		}
		byType[s.ExerciseType] = append(byType[s.ExerciseType], s)
	}
	for _, sessions := range byType {
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].Date.Before(sessions[j].Date)
		})
	}
	return byType
}

func usableSession(userID uuid.UUID, s entity.ExerciseSession) bool {
	if strings.TrimSpace(s.ExerciseType) == "" || s.DurationMinutes <= 0 || s.Date.IsZero() {
		return false
	}
	if userID != uuid.Nil && s.UserID != uuid.Nil && s.UserID != userID {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PrettyExerciseType turns "resistance_training" into "Resistance Training".
func PrettyExerciseType(exerciseType string) string {
	// a Caser keeps state, so one per call
	return cases.Title(language.English).String(strings.ReplaceAll(exerciseType, "_", " "))
}

func lagPhrase(lag int) string {
	switch lag {
	case 0:
		return "the same day"
	case 1:
		return "the following day"
	}
	return fmt.Sprintf("%d days later", lag)
}

func insightText(c entity.Correlation) string {
	p := c.SignificanceP()
	if p < SignificanceLevel {
		direction := "higher"
		if c.MoodChangePct < 0 {
			direction = "lower"
		}
		return fmt.Sprintf("%s is linked to %.0f%% %s mood %s (n=%d, p=%.2f)",
			PrettyExerciseType(c.ExerciseType), math.Abs(c.MoodChangePct), direction, lagPhrase(c.LagDays), c.SampleSize, p)
	}
	return fmt.Sprintf("%s shows a small mood association %s (n=%d, p=%.2f)",
		PrettyExerciseType(c.ExerciseType), lagPhrase(c.LagDays), c.SampleSize, p)
}
