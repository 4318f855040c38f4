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

type WearableService struct {
	repo  repository.WearableRepositoryI
	users repository.UsersRepositoryI
}

func NewWearableService(wearableRepo repository.WearableRepositoryI, usersRepo repository.UsersRepositoryI) *WearableService {
	if wearableRepo == nil || usersRepo == nil {
		log.Fatal("on wearable service provided nil repos")
	}
	return &WearableService{
		repo:  wearableRepo,
		users: usersRepo,
	}
}

// SyncDaily upserts one day of biometrics. A second sync of the same day and
// source overwrites the first.
func (ws *WearableService) SyncDaily(ctx context.Context, uid uuid.UUID, req WearableRequest) (*entity.WearableDailySummary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if isFutureDay(req.Date, time.Now()) {
		return nil, errorvalues.ErrFutureDate
	}
	user, err := ws.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if !user.WearableConsent {
		return nil, errorvalues.ErrConsentRequired
	}
	summary := entity.WearableDailySummary{
		UserID:               uid,
		Date:                 dayOf(req.Date),
		Source:               req.Source,
		HRVAvg:               req.HRVAvg,
		HRVMin:               req.HRVMin,
		HRVMax:               req.HRVMax,
		RestingHR:            req.RestingHR,
		SleepDurationMinutes: req.SleepDurationMinutes,
		SleepDeepMinutes:     req.SleepDeepMinutes,
		SleepRemMinutes:      req.SleepRemMinutes,
		SleepScore:           req.SleepScore,
		ReadinessScore:       req.ReadinessScore,
		Steps:                req.Steps,
		ActiveCalories:       req.ActiveCalories,
	}
	err = ws.repo.Upsert(ctx, &summary)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("wearable repository error: " + err.Error())
	}
	return &summary, nil
}
