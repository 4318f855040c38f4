package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/limbo/mindrep/pkg/httputil"
)

type ExerciseRequest struct {
	// Date is a calendar day, YYYY-MM-DD.
	Date            string   `json:"date"`
	ExerciseType    string   `json:"exercise_type"`
	DurationMinutes int      `json:"duration_minutes"`
	Intensity       string   `json:"intensity"`
	Source          string   `json:"source,omitempty"`
	AvgHeartRate    *float64 `json:"avg_heart_rate,omitempty"`
	Calories        *float64 `json:"calories,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

type GetExercisesResponse struct {
	UserID   string                   `json:"uid"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
	Sessions []entity.ExerciseSession `json:"sessions"`
}

func (req ExerciseRequest) toService() (service.ExerciseRequest, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return service.ExerciseRequest{}, err
	}
	return service.ExerciseRequest{
		Date:            date,
		ExerciseType:    req.ExerciseType,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		Source:          req.Source,
		AvgHeartRate:    req.AvgHeartRate,
		Calories:        req.Calories,
		Notes:           req.Notes,
	}, nil
}

// decodeExercise writes the 400 itself and reports whether decoding succeeded.
func decodeExercise(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (service.ExerciseRequest, bool) {
	var req ExerciseRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return service.ExerciseRequest{}, false
	}
	sreq, err := req.toService()
	if err != nil {
		logger.Error("exercise error: invalid date", slog.String("date", req.Date))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return service.ExerciseRequest{}, false
	}
	return sreq, true
}

func (s *Server) LogExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	req, ok := decodeExercise(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.exerciseService.LogSession(ctx, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("log exercise error: invalid session", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid exercise session", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log exercise error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't log session: user doesn't exist", nil)
		default:
			logger.Error("log exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("exercise session logged", slog.String("exercise_type", session.ExerciseType))
}

func (s *Server) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get exercises error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	sessions, err := s.exerciseService.GetUserSessions(ctx, uid, opts)
	if err != nil {
		logger.Error("getting sessions list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting sessions list", nil)
		return
	}
	if sessions == nil {
		sessions = []entity.ExerciseSession{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetExercisesResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Sessions: sessions,
	})
	logger.Info("sessions provided")
}

func (s *Server) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	req, ok := decodeExercise(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.exerciseService.UpdateSession(ctx, id, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("update exercise error: invalid session", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid exercise session", err)
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("update exercise error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update exercise error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		default:
			logger.Error("update exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("exercise session updated")
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("session deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("session deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.exerciseService.DeleteSession(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("session deletion error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("session deletion error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
		default:
			logger.Error("session deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting session", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("exercise session deleted")
}
