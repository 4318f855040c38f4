package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const (
	insightsWindowDays  = 7
	topCorrelationsSize = 5
)

type InsightsService struct {
	checkins     repository.MoodCheckinsRepositoryI
	sessions     repository.ExerciseSessionsRepositoryI
	correlations repository.CorrelationsRepositoryI
}

func NewInsightsService(
	checkinsRepo repository.MoodCheckinsRepositoryI,
	sessionsRepo repository.ExerciseSessionsRepositoryI,
	correlationsRepo repository.CorrelationsRepositoryI,
) *InsightsService {
	if checkinsRepo == nil || sessionsRepo == nil || correlationsRepo == nil {
		log.Fatal("on insights service provided nil repos")
	}
	return &InsightsService{
		checkins:     checkinsRepo,
		sessions:     sessionsRepo,
		correlations: correlationsRepo,
	}
}

// Weekly summarises the last seven UTC days, today included. Days without a
// check-in are left out of the trend.
func (ins *InsightsService) Weekly(ctx context.Context, uid uuid.UUID) (*WeeklyInsights, error) {
	weekEnd := dayOf(time.Now())
	weekStart := weekEnd.AddDate(0, 0, -(insightsWindowDays - 1))
	var (
		checkins []entity.MoodCheckin
		sessions []entity.ExerciseSession
		top      []entity.Correlation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		checkins, err = ins.checkins.ListSince(gctx, uid, weekStart)
		return err
	})
	g.Go(func() (err error) {
		sessions, err = ins.sessions.ListSince(gctx, uid, weekStart)
		return err
	})
	g.Go(func() (err error) {
		top, err = ins.correlations.TopByPct(gctx, uid, topCorrelationsSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.New("loading insights error: " + err.Error())
	}
	summary := make(map[string]int)
	for _, s := range sessions {
		summary[s.ExerciseType]++
	}
	if top == nil {
		top = []entity.Correlation{}
	}
	return &WeeklyInsights{
		MoodTrend:       moodTrend(checkins),
		TopCorrelations: top,
		ExerciseSummary: summary,
		WeekStart:       weekStart,
		WeekEnd:         weekEnd,
	}, nil
}

// moodTrend averages scores per UTC day, rounded to two decimals, oldest first.
func moodTrend(checkins []entity.MoodCheckin) []MoodTrendPoint {
	trend := make([]MoodTrendPoint, 0)
	var sum, n int
	flush := func(day time.Time) {
		if n > 0 {
			avg := float64(sum) / float64(n)
			trend = append(trend, MoodTrendPoint{Date: day, MoodScore: math.Round(avg*100) / 100})
		}
	}
	var current time.Time
	for _, c := range checkins {
		day := dayOf(c.CreatedAt)
		if !day.Equal(current) {
			flush(current)
			current, sum, n = day, 0, 0
		}
		sum += c.MoodScore
		n++
	}
	flush(current)
	return trend
}
