// Package app assembles repositories and services from configuration. It is
// shared by the api server and the prescribe command.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/limbo/mindrep/internal/anonymise"
	"github.com/limbo/mindrep/internal/classifier"
	"github.com/limbo/mindrep/internal/engine"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/config"
)

// Config is the part of pkg/config the wiring reads.
type Config interface {
	GetString(key string) string
	GetInt(key string, def int) int
	GetBool(key string, def bool) bool
	GetDuration(key string, def time.Duration) time.Duration
}

var _ Config = (*config.Config)(nil)

type Services struct {
	UsersRepo     repository.UsersRepositoryI
	Users         *service.UserService
	Mood          *service.MoodService
	Exercise      *service.ExerciseService
	Wearable      *service.WearableService
	Correlations  *service.CorrelationService
	Prescriptions *service.PrescriptionService
	Insights      *service.InsightsService
}

func PGConfig(cfg Config) repository.PGCfg {
	return repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}

// Enrichment picks the classifier for mood check-ins. With classification
// switched off the noop classifier is used and nothing leaves the process.
func Enrichment(cfg Config) (service.Enrichment, error) {
	if !cfg.GetBool("ENABLE_AI_CLASSIFICATION", false) {
		return service.Enrichment{
			Anonymiser: anonymise.New(),
			Classifier: classifier.NoopClassifier{},
		}, nil
	}
	url := cfg.GetString("CLASSIFIER_URL")
	if url == "" {
		return service.Enrichment{}, errors.New("ENABLE_AI_CLASSIFICATION is set without CLASSIFIER_URL")
	}
	return service.Enrichment{
		Enabled:    true,
		Anonymiser: anonymise.New(),
		Classifier: classifier.NewHTTPClassifier(classifier.Config{
			URL:     url,
			APIKey:  cfg.GetString("CLASSIFIER_API_KEY"),
			Timeout: cfg.GetDuration("CLASSIFIER_TIMEOUT", 0),
		}),
	}, nil
}

func LagDays(cfg Config) (int, error) {
	lag := cfg.GetInt("CORRELATION_LAG_DAYS", engine.DefaultLagDays)
	if lag < 0 || lag > engine.MaxLagDays {
		return 0, fmt.Errorf("CORRELATION_LAG_DAYS=%d: %w", lag, errorvalues.ErrInvalidLagDays)
	}
	return lag, nil
}

func Build(cfg Config) (*Services, error) {
	enrichment, err := Enrichment(cfg)
	if err != nil {
		return nil, err
	}
	lag, err := LagDays(cfg)
	if err != nil {
		return nil, err
	}
	rules, err := engine.NewRuleTable(engine.DefaultRules())
	if err != nil {
		return nil, errors.New("rule table error: " + err.Error())
	}

	dbCfg := PGConfig(cfg)
	usersRepo := repository.NewUsersRepo(&dbCfg)
	checkinsRepo := repository.NewMoodCheckinsRepo(&dbCfg)
	sessionsRepo := repository.NewExerciseSessionsRepo(&dbCfg)
	wearableRepo := repository.NewWearableRepo(&dbCfg)
	correlationsRepo := repository.NewCorrelationsRepo(&dbCfg)
	prescriptionsRepo := repository.NewPrescriptionsRepo(&dbCfg)

	correlations := service.NewCorrelationService(correlationsRepo, checkinsRepo, sessionsRepo, wearableRepo, lag)
	slog.Info("services configured",
		slog.Bool("ai_classification", enrichment.Enabled),
		slog.Int("lag_days", lag),
	)
	return &Services{
		UsersRepo:     usersRepo,
		Users:         service.NewUserService(usersRepo),
		Mood:          service.NewMoodService(checkinsRepo, usersRepo, enrichment),
		Exercise:      service.NewExerciseService(sessionsRepo),
		Wearable:      service.NewWearableService(wearableRepo, usersRepo),
		Correlations:  correlations,
		Prescriptions: service.NewPrescriptionService(prescriptionsRepo, checkinsRepo, sessionsRepo, correlations, engine.NewSelector(rules)),
		Insights:      service.NewInsightsService(checkinsRepo, sessionsRepo, correlationsRepo),
	}, nil
}
