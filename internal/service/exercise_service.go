package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
)

const defaultSessionSource = "manual"

type ExerciseService struct {
	repo repository.ExerciseSessionsRepositoryI
}

func NewExerciseService(sessionsRepo repository.ExerciseSessionsRepositoryI) *ExerciseService {
	if sessionsRepo == nil {
		log.Fatal("provided nil sessionsRepo")
	}
	return &ExerciseService{
		repo: sessionsRepo,
	}
}

func (es *ExerciseService) LogSession(ctx context.Context, uid uuid.UUID, req ExerciseRequest) (*entity.ExerciseSession, error) {
	if err := checkExerciseRequest(req); err != nil {
		return nil, err
	}
	session := sessionFromRequest(req)
	session.UserID = uid
	err := es.repo.Create(ctx, &session)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return &session, nil
}

func (es *ExerciseService) GetUserSessions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.ExerciseSession, error) {
	sessions, err := es.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return sessions, nil
}

func (es *ExerciseService) UpdateSession(ctx context.Context, id, uid uuid.UUID, req ExerciseRequest) (*entity.ExerciseSession, error) {
	if err := checkExerciseRequest(req); err != nil {
		return nil, err
	}
	current, err := es.ownedSession(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	updated := sessionFromRequest(req)
	updated.ID = current.ID
	updated.UserID = current.UserID
	updated.CreatedAt = current.CreatedAt
	// source is fixed at creation
	updated.Source = current.Source
	err = es.repo.Update(ctx, &updated)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return &updated, nil
}

func (es *ExerciseService) DeleteSession(ctx context.Context, id, uid uuid.UUID) error {
	if _, err := es.ownedSession(ctx, id, uid); err != nil {
		return err
	}
	err := es.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

func (es *ExerciseService) ownedSession(ctx context.Context, id, uid uuid.UUID) (*entity.ExerciseSession, error) {
	session, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if session.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return session, nil
}

func checkExerciseRequest(req ExerciseRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	if isFutureDay(req.Date, time.Now()) {
		return errorvalues.ErrFutureDate
	}
	return nil
}

func sessionFromRequest(req ExerciseRequest) entity.ExerciseSession {
	source := req.Source
	if source == "" {
		source = defaultSessionSource
	}
	return entity.ExerciseSession{
		Date:            dayOf(req.Date),
		ExerciseType:    req.ExerciseType,
		DurationMinutes: req.DurationMinutes,
		Intensity:       entity.Intensity(req.Intensity),
		Source:          source,
		AvgHeartRate:    req.AvgHeartRate,
		Calories:        req.Calories,
		Notes:           req.Notes,
	}
}

// dayOf is the UTC calendar day of t.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isFutureDay allows one day of slack for clients ahead of UTC.
func isFutureDay(date, now time.Time) bool {
	return dayOf(date).After(dayOf(now).AddDate(0, 0, 1))
}
