package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/engine"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	// RecomputeInterval is the age after which a snapshot is recomputed regardless of new data.
	RecomputeInterval = 7 * 24 * time.Hour
	// NewDataThreshold is the number of check-ins and sessions logged after a
	// snapshot that makes it stale.
	NewDataThreshold = 7
	// HistoryDays bounds the sessions fed to the engine.
	HistoryDays = 180
	// checkins reach further back so the earliest sessions still find a pre-session mood
	preMoodMarginDays = 7
)

type CorrelationService struct {
	correlations repository.CorrelationsRepositoryI
	checkins     repository.MoodCheckinsRepositoryI
	sessions     repository.ExerciseSessionsRepositoryI
	wearables    repository.WearableRepositoryI
	lagDays      int
	// one computation per user at a time keeps computed_at strictly ordered
	flight singleflight.Group
}

func NewCorrelationService(
	correlationsRepo repository.CorrelationsRepositoryI,
	checkinsRepo repository.MoodCheckinsRepositoryI,
	sessionsRepo repository.ExerciseSessionsRepositoryI,
	wearableRepo repository.WearableRepositoryI,
	lagDays int,
) *CorrelationService {
	if correlationsRepo == nil || checkinsRepo == nil || sessionsRepo == nil || wearableRepo == nil {
		log.Fatal("on correlation service provided nil repos")
	}
	if lagDays < 0 || lagDays > engine.MaxLagDays {
		log.Fatalf("correlation lag must be between 0 and %d, got %d", engine.MaxLagDays, lagDays)
	}
	return &CorrelationService{
		correlations: correlationsRepo,
		checkins:     checkinsRepo,
		sessions:     sessionsRepo,
		wearables:    wearableRepo,
		lagDays:      lagDays,
	}
}

func (cs *CorrelationService) Latest(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error) {
	rows, err := cs.correlations.LatestSnapshot(ctx, uid)
	if err != nil {
		return nil, errors.New("correlations repository error: " + err.Error())
	}
	return rows, nil
}

func (cs *CorrelationService) Current(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error) {
	latest, err := cs.Latest(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(latest) == 0 {
		return cs.Recompute(ctx, uid)
	}
	stale, err := cs.stale(ctx, uid, latest[0].ComputedAt, time.Now())
	if err != nil {
		return nil, err
	}
	if stale {
		return cs.Recompute(ctx, uid)
	}
	return latest, nil
}

func (cs *CorrelationService) Recompute(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error) {
	return shared(ctx, &cs.flight, uid.String(), func(ctx context.Context) ([]entity.Correlation, error) {
		return cs.compute(ctx, uid)
	})
}

func (cs *CorrelationService) compute(ctx context.Context, uid uuid.UUID) ([]entity.Correlation, error) {
	now := time.Now().UTC()
	history, err := cs.loadHistory(ctx, uid, now)
	if err != nil {
		return nil, err
	}
	rows, err := engine.ComputeCorrelations(uid, history, engine.Options{
		LagDays: cs.lagDays,
		Now:     now,
	})
	if err != nil {
		return nil, err
	}
	err = cs.correlations.InsertSnapshot(ctx, rows)
	if err != nil {
		return nil, errors.New("correlations repository error: " + err.Error())
	}
	return rows, nil
}

func (cs *CorrelationService) loadHistory(ctx context.Context, uid uuid.UUID, now time.Time) (engine.History, error) {
	since := dayOf(now).AddDate(0, 0, -HistoryDays)
	var h engine.History
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		h.Checkins, err = cs.checkins.ListSince(gctx, uid, since.AddDate(0, 0, -preMoodMarginDays))
		return err
	})
	g.Go(func() (err error) {
		h.Sessions, err = cs.sessions.ListSince(gctx, uid, since)
		return err
	})
	g.Go(func() (err error) {
		h.Wearables, err = cs.wearables.ListSince(gctx, uid, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return engine.History{}, errors.New("loading history error: " + err.Error())
	}
	return h, nil
}

func (cs *CorrelationService) stale(ctx context.Context, uid uuid.UUID, computedAt, now time.Time) (bool, error) {
	if now.Sub(computedAt) >= RecomputeInterval {
		return true, nil
	}
	var newCheckins, newSessions int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		newCheckins, err = cs.checkins.CountSince(gctx, uid, computedAt)
		return err
	})
	g.Go(func() (err error) {
		newSessions, err = cs.sessions.CountSince(gctx, uid, computedAt)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, errors.New("counting new records error: " + err.Error())
	}
	return newCheckins+newSessions >= NewDataThreshold, nil
}
