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

const (
	Disclaimer = "MindRep is a wellness tool, not a medical device."
	// the daily cycle may recompute correlations first
	prescriptionTimeout = 20 * time.Second
)

type TodayPrescriptionResponse struct {
	Prescription *entity.Prescription `json:"prescription"`
	HasData      bool                 `json:"has_data"`
	Disclaimer   string               `json:"disclaimer"`
}

type GetPrescriptionsResponse struct {
	UserID        string                `json:"uid"`
	Page          int                   `json:"page"`
	Limit         int                   `json:"limit"`
	Prescriptions []entity.Prescription `json:"prescriptions"`
	Disclaimer    string                `json:"disclaimer"`
}

type FeedbackRequest struct {
	WasFollowed       *bool `json:"was_followed"`
	FollowUpMoodScore *int  `json:"follow_up_mood_score,omitempty"`
}

func (s *Server) TodayPrescription(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("prescription error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), prescriptionTimeout)
	defer cancel()
	p, err := s.prescriptionService.Today(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("prescription error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("prescription error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while preparing prescription", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TodayPrescriptionResponse{
		Prescription: p,
		HasData:      p != nil,
		Disclaimer:   Disclaimer,
	})
	if p == nil {
		logger.Info("no prescription available")
		return
	}
	logger.Info("prescription provided", slog.String("source", string(p.Source)), slog.String("exercise_type", p.ExerciseType))
}

func (s *Server) GetPrescriptions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get prescriptions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	list, err := s.prescriptionService.GetUserPrescriptions(ctx, uid, opts)
	if err != nil {
		logger.Error("getting prescriptions list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting prescriptions list", nil)
		return
	}
	if list == nil {
		list = []entity.Prescription{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetPrescriptionsResponse{
		UserID:        uid.String(),
		Page:          page,
		Limit:         limit,
		Prescriptions: list,
		Disclaimer:    Disclaimer,
	})
	logger.Info("prescriptions provided")
}

func (s *Server) PrescriptionFeedback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("feedback error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("feedback error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid prescription id in path value", nil)
		return
	}
	var req FeedbackRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("feedback error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.prescriptionService.RecordFeedback(ctx, id, uid, service.FeedbackRequest{
		WasFollowed:       req.WasFollowed,
		FollowUpMoodScore: req.FollowUpMoodScore,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("feedback error: invalid feedback", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid feedback", err)
		case errors.Is(err, errorvalues.ErrPrescriptionNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("feedback error: unexist prescription")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "prescription doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrFeedbackRecorded):
			logger.Error("feedback error: feedback already recorded")
			httputil.WriteErrorResponse(w, http.StatusConflict, "feedback already recorded", nil)
		default:
			logger.Error("feedback error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording feedback", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"id":       id.String(),
		"recorded": true,
	})
	logger.Info("feedback recorded", slog.Bool("followed", *req.WasFollowed))
}
