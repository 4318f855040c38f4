package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/limbo/mindrep/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	moodService         service.MoodServiceI
	exerciseService     service.ExerciseServiceI
	wearableService     service.WearableServiceI
	correlationService  service.CorrelationServiceI
	prescriptionService service.PrescriptionServiceI
	insightsService     service.InsightsServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	MoodService         service.MoodServiceI
	ExerciseService     service.ExerciseServiceI
	WearableService     service.WearableServiceI
	CorrelationService  service.CorrelationServiceI
	PrescriptionService service.PrescriptionServiceI
	InsightsService     service.InsightsServiceI
	JwtService          JWTServiceI
	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		moodService:         servicesOptions.MoodService,
		exerciseService:     servicesOptions.ExerciseService,
		wearableService:     servicesOptions.WearableService,
		correlationService:  servicesOptions.CorrelationService,
		prescriptionService: servicesOptions.PrescriptionService,
		insightsService:     servicesOptions.InsightsService,
		jwtService:          servicesOptions.JwtService,
	}
	s.routes(servicesOptions.AllowedOrigins)
	return s
}

func (s *Server) routes(origins []string) {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Put("/users/me/consent", s.UpdateConsent)
			r.Delete("/users/me", s.DeleteAccount)

			r.Post("/mood/checkin", s.CreateCheckin)
			r.Get("/mood/checkins", s.GetCheckins)

			r.Post("/exercise", s.LogExercise)
			r.Get("/exercise", s.GetExercises)
			r.Put("/exercise/{id}", s.UpdateExercise)
			r.Delete("/exercise/{id}", s.DeleteExercise)

			r.Post("/wearable/daily", s.SyncWearable)

			r.Get("/prescriptions/today", s.TodayPrescription)
			r.Get("/prescriptions", s.GetPrescriptions)
			r.Post("/prescriptions/{id}/feedback", s.PrescriptionFeedback)

			r.Get("/correlations", s.GetCorrelations)
			r.Post("/correlations/recompute", s.RecomputeCorrelations)

			r.Get("/insights/weekly", s.WeeklyInsights)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
