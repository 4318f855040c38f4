package engine

import (
	"errors"
	"slices"
	"strings"

	"github.com/limbo/mindrep/pkg/entity"
)

// RuleBasedConfidence is the fixed confidence of every rule-table prescription.
// It must stay below MinCorrelationConfidence.
const RuleBasedConfidence = 0.2

// MoodSignals is the view of the latest check-in the rule table matches on.
type MoodSignals struct {
	HasCheckin bool
	Score      int
	Label      string
	Tags       []string
	Themes     []string
}

// SignalsFrom lower-cases tags, themes and the AI label of c. A nil check-in yields
// empty signals, which only the catch-all rule matches.
func SignalsFrom(c *entity.MoodCheckin) MoodSignals {
	if c == nil {
		return MoodSignals{}
	}
	s := MoodSignals{
		HasCheckin: true,
		Score:      c.MoodScore,
		Tags:       lowerAll(c.ManualTags),
	}
	if c.Classification != nil {
		s.Label = strings.ToLower(strings.TrimSpace(c.Classification.Label))
		s.Themes = lowerAll(c.Classification.Themes)
	}
	return s
}

func (s MoodSignals) labelIn(labels ...string) bool {
	return s.Label != "" && slices.Contains(labels, s.Label)
}

func (s MoodSignals) tagIn(tags ...string) bool {
	for _, t := range tags {
		if slices.Contains(s.Tags, t) {
			return true
		}
	}
	return false
}

func (s MoodSignals) themeIn(themes ...string) bool {
	for _, t := range themes {
		if slices.Contains(s.Themes, t) {
			return true
		}
	}
	return false
}

func (s MoodSignals) scoreAtMost(v int) bool {
	return s.HasCheckin && s.Score <= v
}

func (s MoodSignals) scoreAtLeast(v int) bool {
	return s.HasCheckin && s.Score >= v
}

func (s MoodSignals) LowEnergy() bool {
	return s.labelIn("low_energy", "tired") || s.themeIn("low energy", "fatigue") || s.tagIn("low_energy")
}

func (s MoodSignals) Anxious() bool {
	return s.labelIn("anxious", "anxiety") || s.themeIn("anxiety") || s.tagIn("anxious")
}

func (s MoodSignals) Stressed() bool {
	return s.labelIn("stressed", "overwhelmed") || s.themeIn("stress", "work stress", "academic pressure") ||
		s.tagIn("stressed", "overwhelmed")
}

func (s MoodSignals) PoorSleep() bool {
	return s.themeIn("sleep") || s.tagIn("restless") || s.labelIn("restless")
}

func (s MoodSignals) Sad() bool {
	return s.labelIn("sad", "low", "lonely") || s.tagIn("sad")
}

func (s MoodSignals) Positive() bool {
	return s.labelIn("calm", "happy", "energetic", "focused", "grateful", "hopeful") || s.scoreAtLeast(7)
}

// Rule maps a predicate over mood signals to a generic recommendation. A nil Match
// matches everything.
type Rule struct {
	Name            string
	Match           func(MoodSignals) bool
	ExerciseType    string
	DurationMinutes int
	Intensity       entity.Intensity
	Reasoning       string
}

func (r Rule) matches(s MoodSignals) bool {
	return r.Match == nil || r.Match(s)
}

// RuleTable is an ordered, first-match-wins list that always ends in a catch-all.
type RuleTable struct {
	rules []Rule
}

var (
	errEmptyRuleTable = errors.New("rule table is empty")
	errNoCatchAll     = errors.New("last rule of the table must be an unconditional catch-all")
	errInvalidRule    = errors.New("rule must name an exercise type, a positive duration and a valid intensity")
)

// NewRuleTable validates rules. The last rule must have a nil Match so that lookup
// always terminates.
func NewRuleTable(rules []Rule) (*RuleTable, error) {
	if len(rules) == 0 {
		return nil, errEmptyRuleTable
	}
	if rules[len(rules)-1].Match != nil {
		return nil, errNoCatchAll
	}
	for _, r := range rules {
		if r.ExerciseType == "" || r.DurationMinutes <= 0 || !r.Intensity.Valid() {
			return nil, errors.Join(errInvalidRule, errors.New("rule: "+r.Name))
		}
	}
	return &RuleTable{rules: slices.Clone(rules)}, nil
}

// Lookup returns the first rule matching s.
func (t *RuleTable) Lookup(s MoodSignals) Rule {
	for _, r := range t.rules {
		if r.matches(s) {
			return r
		}
	}
	// unreachable: NewRuleTable guarantees a catch-all
	return t.rules[len(t.rules)-1]
}

func (t *RuleTable) CatchAll() Rule {
	return t.rules[len(t.rules)-1]
}

func (t *RuleTable) Rules() []Rule {
	return slices.Clone(t.rules)
}

// DefaultRules is the research-derived fallback table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:            "low_energy_low_mood",
			Match:           func(s MoodSignals) bool { return s.LowEnergy() && s.scoreAtMost(4) },
			ExerciseType:    "walking",
			DurationMinutes: 15,
			Intensity:       entity.IntensityLow,
			Reasoning: "Light movement is associated with a gentle energy lift on low days. " +
				"A short 15-minute easy walk is suggested to support your energy today.",
		},
		{
			Name:            "anxiety",
			Match:           MoodSignals.Anxious,
			ExerciseType:    "walking",
			DurationMinutes: 25,
			Intensity:       entity.IntensityModerate,
			Reasoning: "A brisk walk is widely associated with reduced tension and a calmer mood. " +
				"A 25-minute moderate-paced session outdoors is suggested for today.",
		},
		{
			Name:            "stress_good_mood",
			Match:           func(s MoodSignals) bool { return s.Stressed() && s.scoreAtLeast(6) },
			ExerciseType:    "running",
			DurationMinutes: 30,
			Intensity:       entity.IntensityModerate,
			Reasoning: "Moderate-intensity cardio is linked to lower perceived stress. " +
				"A 30-minute moderate run is suggested to help you unwind today.",
		},
		{
			Name:            "stress",
			Match:           MoodSignals.Stressed,
			ExerciseType:    "yoga",
			DurationMinutes: 25,
			Intensity:       entity.IntensityModerate,
			Reasoning: "Yoga combines gentle movement with breathing focus, which is linked to " +
				"lower perceived stress. A 25-minute moderate session is suggested today.",
		},
		{
			Name:            "poor_sleep",
			Match:           MoodSignals.PoorSleep,
			ExerciseType:    "strength",
			DurationMinutes: 30,
			Intensity:       entity.IntensityModerate,
			Reasoning: "Moderate resistance training supports sleep quality over time. A 30-minute " +
				"session is suggested, ideally not within 2 hours of bedtime.",
		},
		{
			Name:            "low_mood",
			Match:           MoodSignals.Sad,
			ExerciseType:    "running",
			DurationMinutes: 30,
			Intensity:       entity.IntensityVigorous,
			Reasoning: "Elevated-intensity aerobic exercise is associated with mood support through " +
				"increased energy and focus. A 30-minute run is suggested for today.",
		},
		{
			Name:            "very_low_score",
			Match:           func(s MoodSignals) bool { return s.scoreAtMost(3) },
			ExerciseType:    "walking",
			DurationMinutes: 20,
			Intensity:       entity.IntensityLow,
			Reasoning: "Gentle movement is a low-barrier way to support your mood on a hard day. " +
				"A 20-minute easy walk is suggested.",
		},
		{
			Name:            "low_energy",
			Match:           MoodSignals.LowEnergy,
			ExerciseType:    "walking",
			DurationMinutes: 17,
			Intensity:       entity.IntensityLow,
			Reasoning: "Light movement is associated with a gentle energy lift when you feel tired. " +
				"A 17-minute low-intensity walk is suggested.",
		},
		{
			Name:            "positive",
			Match:           MoodSignals.Positive,
			ExerciseType:    "cycling",
			DurationMinutes: 30,
			Intensity:       entity.IntensityModerate,
			Reasoning: "Staying active on positive-mood days is associated with sustained wellbeing. " +
				"A 30-minute moderate ride is suggested to build on today's good start.",
		},
		{
			Name:            "default",
			ExerciseType:    "walking",
			DurationMinutes: 20,
			Intensity:       entity.IntensityModerate,
			Reasoning: "A 20-minute moderate walk is a broadly beneficial starting point for daily " +
				"wellness and a low-barrier way to support your mood and energy today.",
		},
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
