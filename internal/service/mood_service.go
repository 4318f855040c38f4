package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/pkg/entity"
)

// Enrichment configures journal classification. Raw journal text never reaches
// Classifier, only the Anonymiser output does.
type Enrichment struct {
	Enabled    bool
	Anonymiser Anonymiser
	Classifier Classifier
}

type MoodService struct {
	checkins   repository.MoodCheckinsRepositoryI
	users      repository.UsersRepositoryI
	enrichment Enrichment
	logger     *slog.Logger
}

func NewMoodService(checkinsRepo repository.MoodCheckinsRepositoryI, usersRepo repository.UsersRepositoryI, enrichment Enrichment) *MoodService {
	if checkinsRepo == nil || usersRepo == nil {
		log.Fatal("on mood service provided nil repos")
	}
	if enrichment.Enabled && (enrichment.Anonymiser == nil || enrichment.Classifier == nil) {
		log.Fatal("mood classification enabled without anonymiser or classifier")
	}
	return &MoodService{
		checkins:   checkinsRepo,
		users:      usersRepo,
		enrichment: enrichment,
		logger:     slog.Default().With(slog.String("service", "mood")),
	}
}

func (ms *MoodService) CreateCheckin(ctx context.Context, uid uuid.UUID, req CreateCheckinRequest) (*CheckinResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	user, err := ms.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	journal := req.JournalText
	if journal != nil && *journal == "" {
		journal = nil
	}
	checkin := entity.MoodCheckin{
		UserID:      uid,
		MoodScore:   req.MoodScore,
		JournalText: journal,
		ManualTags:  req.ManualTags,
	}
	if checkin.ManualTags == nil {
		checkin.ManualTags = []string{}
	}
	err = ms.checkins.Create(ctx, &checkin)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	res := CheckinResult{
		Checkin:       checkin,
		JournalStored: journal != nil,
	}
	if journal == nil || !user.AIConsent || !ms.enrichment.Enabled {
		return &res, nil
	}
	cls := ms.classify(ctx, checkin.ID, *journal)
	if cls != nil {
		res.Checkin.Classification = cls
		res.AIProcessed = true
	}
	return &res, nil
}

// classify returns nil on any failure. Failures are logged without the text.
func (ms *MoodService) classify(ctx context.Context, checkinID uuid.UUID, journal string) *entity.MoodClassification {
	logger := ms.logger.With(slog.String("checkin_id", checkinID.String()))
	scrubbed := ms.enrichment.Anonymiser.Anonymise(journal)
	if scrubbed.HadPII() {
		logger.Info("personal data stripped from journal", slog.Int("replacements", scrubbed.Total()))
	}
	if scrubbed.Text == "" {
		logger.Warn("anonymised journal is empty, skipping classification")
		return nil
	}
	cls, err := ms.enrichment.Classifier.Classify(ctx, scrubbed.Text)
	if err != nil {
		logger.Warn("classification failed", slog.String("error", err.Error()))
		return nil
	}
	err = ms.checkins.SetClassification(ctx, checkinID, cls)
	if err != nil {
		logger.Warn("storing classification failed", slog.String("error", err.Error()))
		return nil
	}
	return cls
}

func (ms *MoodService) GetUserCheckins(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]entity.MoodCheckin, error) {
	checkins, err := ms.checkins.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return checkins, nil
}
