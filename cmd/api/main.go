// @title MindRep API
// @description Mood and exercise tracking with personalised exercise prescriptions.
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/mindrep/internal/api"
	"github.com/limbo/mindrep/internal/app"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/cleanup"
	"github.com/limbo/mindrep/pkg/config"
	jwtservice "github.com/limbo/mindrep/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	services, err := app.Build(cfg)
	if err != nil {
		log.Fatal("building services error: " + err.Error())
	}
	defer cleanup.CleanUp()

	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	serv := api.New(&api.ServicesList{
		UserService:         services.Users,
		MoodService:         services.Mood,
		ExerciseService:     services.Exercise,
		WearableService:     services.Wearable,
		CorrelationService:  services.Correlations,
		PrescriptionService: services.Prescriptions,
		InsightsService:     services.Insights,
		JwtService:          jwtservice.New(secret, cfg.GetDuration("JWT_TOKEN_TTL", jwtservice.DefaultTokenTTL)),
		AllowedOrigins:      cfg.GetStrings("CORS_ORIGINS"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
