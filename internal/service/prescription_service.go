package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/engine"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type PrescriptionService struct {
	prescriptions repository.PrescriptionsRepositoryI
	checkins      repository.MoodCheckinsRepositoryI
	sessions      repository.ExerciseSessionsRepositoryI
	correlations  CorrelationServiceI
	selector      *engine.Selector
	flight        singleflight.Group
}

func NewPrescriptionService(
	prescriptionsRepo repository.PrescriptionsRepositoryI,
	checkinsRepo repository.MoodCheckinsRepositoryI,
	sessionsRepo repository.ExerciseSessionsRepositoryI,
	correlations CorrelationServiceI,
	selector *engine.Selector,
) *PrescriptionService {
	if prescriptionsRepo == nil || checkinsRepo == nil || sessionsRepo == nil {
		log.Fatal("on prescription service provided nil repos")
	}
	if correlations == nil || selector == nil {
		log.Fatal("on prescription service provided nil correlation service or selector")
	}
	return &PrescriptionService{
		prescriptions: prescriptionsRepo,
		checkins:      checkinsRepo,
		sessions:      sessionsRepo,
		correlations:  correlations,
		selector:      selector,
	}
}

// Today runs the daily cycle for uid. Concurrent calls for one user share a
// single run, and a prescription already issued today is returned as is.
func (ps *PrescriptionService) Today(ctx context.Context, uid uuid.UUID) (*entity.Prescription, error) {
	return shared(ctx, &ps.flight, uid.String(), func(ctx context.Context) (*entity.Prescription, error) {
		return ps.today(ctx, uid)
	})
}

func (ps *PrescriptionService) today(ctx context.Context, uid uuid.UUID) (*entity.Prescription, error) {
	now := time.Now().UTC()
	from := dayOf(now)
	existing, err := ps.prescriptions.GetForPeriod(ctx, uid, from, from.AddDate(0, 0, 1))
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, errorvalues.ErrPrescriptionNotFound):
		return nil, errors.New("prescriptions repository error: " + err.Error())
	}
	latest, err := ps.checkins.Latest(ctx, uid)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	var (
		correlations []entity.Correlation
		sessions     []entity.ExerciseSession
	)
	// without any check-in there is nothing to correlate, the catch-all rule applies
	if latest != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			correlations, err = ps.correlations.Current(gctx, uid)
			return err
		})
		g.Go(func() (err error) {
			sessions, err = ps.sessions.ListSince(gctx, uid, from.AddDate(0, 0, -HistoryDays))
			return err
		})
		if err = g.Wait(); err != nil {
			return nil, errors.New("loading prescription input error: " + err.Error())
		}
	}
	p := ps.selector.Select(engine.Input{
		UserID:       uid,
		Correlations: correlations,
		Sessions:     sessions,
		Latest:       latest,
		Now:          now,
	})
	err = ps.prescriptions.Create(ctx, &p)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("prescriptions repository error: " + err.Error())
	}
	return &p, nil
}

func (ps *PrescriptionService) GetUserPrescriptions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.Prescription, error) {
	list, err := ps.prescriptions.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("prescriptions repository error: " + err.Error())
	}
	return list, nil
}

func (ps *PrescriptionService) RecordFeedback(ctx context.Context, id, uid uuid.UUID, req FeedbackRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	err := ps.prescriptions.RecordFeedback(ctx, id, uid, *req.WasFollowed, req.FollowUpMoodScore)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPrescriptionNotFound),
			errors.Is(err, errorvalues.ErrWrongOwner),
			errors.Is(err, errorvalues.ErrFeedbackRecorded):
			return err
		}
		return errors.New("prescriptions repository error: " + err.Error())
	}
	return nil
}
