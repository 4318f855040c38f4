package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/httputil"
)

type WearableDailyRequest struct {
	Date                 string   `json:"date"`
	Source               string   `json:"source"`
	HRVAvg               *float64 `json:"hrv_avg,omitempty"`
	HRVMin               *float64 `json:"hrv_min,omitempty"`
	HRVMax               *float64 `json:"hrv_max,omitempty"`
	RestingHR            *float64 `json:"resting_hr,omitempty"`
	SleepDurationMinutes *int     `json:"sleep_duration_minutes,omitempty"`
	SleepDeepMinutes     *int     `json:"sleep_deep_minutes,omitempty"`
	SleepRemMinutes      *int     `json:"sleep_rem_minutes,omitempty"`
	SleepScore           *float64 `json:"sleep_score,omitempty"`
	ReadinessScore       *float64 `json:"readiness_score,omitempty"`
	Steps                *int     `json:"steps,omitempty"`
	ActiveCalories       *float64 `json:"active_calories,omitempty"`
}

func (s *Server) SyncWearable(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("wearable sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WearableDailyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("wearable sync error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		logger.Error("wearable sync error: invalid date", slog.String("date", req.Date))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	summary, err := s.wearableService.SyncDaily(ctx, uid, service.WearableRequest{
		Date:                 date,
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
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrConsentRequired):
			logger.Error("wearable sync error: no wearable consent")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wearable data consent required", nil)
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("wearable sync error: invalid summary", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid daily summary", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("wearable sync error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("wearable sync error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while syncing daily summary", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("wearable summary synced", slog.String("source", summary.Source))
}
