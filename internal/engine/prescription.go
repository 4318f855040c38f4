package engine

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/pkg/entity"
)

// ConfidenceSaturation is the sample size at which sample depth stops adding confidence.
const ConfidenceSaturation = 20

// MinCorrelationConfidence is the infimum of correlation confidence for any row that
// passes the gate (p just under SignificanceLevel, n = MinSampleSize).
const MinCorrelationConfidence = (1 - SignificanceLevel) * float64(MinSampleSize) / ConfidenceSaturation

type sessionDefault struct {
	duration  int
	intensity entity.Intensity
}

var exerciseDefaults = map[string]sessionDefault{
	"running":  {30, entity.IntensityModerate},
	"strength": {30, entity.IntensityModerate},
	"yoga":     {25, entity.IntensityModerate},
	"walking":  {20, entity.IntensityModerate},
	"cycling":  {30, entity.IntensityModerate},
	"swimming": {30, entity.IntensityModerate},
	"hiit":     {20, entity.IntensityVigorous},
	"dance":    {30, entity.IntensityModerate},
	"other":    {20, entity.IntensityModerate},
}

// DefaultSession is the generic duration and intensity for an exercise type.
func DefaultSession(exerciseType string) (int, entity.Intensity) {
	if d, ok := exerciseDefaults[exerciseType]; ok {
		return d.duration, d.intensity
	}
	return 20, entity.IntensityModerate
}

// Input is everything the selector needs for one user and one cycle.
type Input struct {
	UserID       uuid.UUID
	Correlations []entity.Correlation
	Sessions     []entity.ExerciseSession
	Latest       *entity.MoodCheckin
	Now          time.Time
}

type Selector struct {
	rules *RuleTable
}

func NewSelector(rules *RuleTable) *Selector {
	return &Selector{
		rules: rules,
	}
}

// Select always returns exactly one prescription. Personal evidence wins when any
// correlation passes the gate, otherwise the rule table decides.
func (s *Selector) Select(in Input) entity.Prescription {
	if in.Now.IsZero() {
		in.Now = time.Now().UTC()
	}
	if best, ok := bestCorrelation(in); ok {
		return s.fromCorrelation(in, best)
	}
	rule := s.rules.Lookup(SignalsFrom(in.Latest))
	return entity.Prescription{
		UserID:                   in.UserID,
		CreatedAt:                in.Now,
		ExerciseType:             rule.ExerciseType,
		SuggestedDurationMinutes: rule.DurationMinutes,
		SuggestedIntensity:       rule.Intensity,
		Reasoning:                rule.Reasoning,
		Confidence:               RuleBasedConfidence,
		Source:                   entity.SourceRuleBased,
	}
}

func (s *Selector) fromCorrelation(in Input, c entity.Correlation) entity.Prescription {
	duration, intensity := suggestedSession(in.UserID, c.ExerciseType, in.Sessions)
	reasoning := fmt.Sprintf(
		"Based on your own history, %s was followed by an average mood lift of %.1f points (%.0f%%) %s across %d sessions. "+
			"A %d-minute %s session is suggested.",
		PrettyExerciseType(c.ExerciseType), c.MoodChangeAvg, c.MoodChangePct, lagPhrase(c.LagDays), c.SampleSize,
		duration, intensity,
	)
	return entity.Prescription{
		UserID:                   in.UserID,
		CreatedAt:                in.Now,
		ExerciseType:             c.ExerciseType,
		SuggestedDurationMinutes: duration,
		SuggestedIntensity:       intensity,
		Reasoning:                reasoning,
		Confidence:               CorrelationConfidence(c),
		Source:                   entity.SourceCorrelation,
	}
}

// CorrelationConfidence rewards significance and sample depth, saturating at
// ConfidenceSaturation samples.
func CorrelationConfidence(c entity.Correlation) float64 {
	depth := math.Min(1, float64(c.SampleSize)/ConfidenceSaturation)
	return clamp(0, 1, (1-c.SignificanceP())*depth)
}

// Eligible reports whether c may back a personalised prescription.
func Eligible(c entity.Correlation) bool {
	p := c.SignificanceP()
	return !math.IsNaN(p) && p < SignificanceLevel && c.SampleSize >= MinSampleSize && c.MoodChangeAvg > 0
}

func bestCorrelation(in Input) (entity.Correlation, bool) {
	logged := make(map[string]struct{})
	for _, s := range in.Sessions {
		if usableSession(in.UserID, s) {
			logged[s.ExerciseType] = struct{}{}
		}
	}
	candidates := make([]entity.Correlation, 0, len(in.Correlations))
	for _, c := range in.Correlations {
		if _, ok := logged[c.ExerciseType]; !ok || !Eligible(c) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return entity.Correlation{}, false
	}
	slices.SortStableFunc(candidates, func(a, b entity.Correlation) int {
		if c := cmp.Compare(b.MoodChangeAvg, a.MoodChangeAvg); c != 0 {
			return c
		}
		if c := cmp.Compare(b.SampleSize, a.SampleSize); c != 0 {
			return c
		}
		return cmp.Compare(a.ExerciseType, b.ExerciseType)
	})
	return candidates[0], true
}

// suggestedSession takes the most frequent duration and intensity of the user's own
// sessions of exerciseType. Ties go to the smaller duration and the lower intensity.
func suggestedSession(userID uuid.UUID, exerciseType string, sessions []entity.ExerciseSession) (int, entity.Intensity) {
	durations := make(map[int]int)
	intensities := make(map[entity.Intensity]int)
	count := 0
	for _, s := range sessions {
		if s.ExerciseType != exerciseType || !usableSession(userID, s) {
			continue
		}
		count++
		durations[s.DurationMinutes]++
		if s.Intensity.Valid() {
			intensities[s.Intensity]++
		}
	}
	defDuration, defIntensity := DefaultSession(exerciseType)
	if count <= 1 {
		return defDuration, defIntensity
	}
	duration := defDuration
	best := 0
	for d, n := range durations {
		if n > best || (n == best && d < duration) {
			duration, best = d, n
		}
	}
	intensity := defIntensity
	best = 0
	for i, n := range intensities {
		if n > best || (n == best && i.Rank() < intensity.Rank()) {
			intensity, best = i, n
		}
	}
	return duration, intensity
}
