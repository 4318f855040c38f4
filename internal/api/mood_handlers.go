package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/limbo/mindrep/pkg/httputil"
)

type CreateCheckinRequest struct {
	MoodScore   int      `json:"mood_score"`
	JournalText *string  `json:"journal_text"`
	ManualTags  []string `json:"manual_tags"`
}

type CreateCheckinResponse struct {
	Checkin       entity.MoodCheckin `json:"checkin"`
	JournalStored bool               `json:"journal_stored"`
	AIProcessed   bool               `json:"ai_processed"`
}

type GetCheckinsResponse struct {
	UserID   string               `json:"uid"`
	Page     int                  `json:"page"`
	Limit    int                  `json:"limit"`
	Checkins []entity.MoodCheckin `json:"checkins"`
}

func (s *Server) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateCheckinRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("check-in error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.moodService.CreateCheckin(ctx, uid, service.CreateCheckinRequest{
		MoodScore:   req.MoodScore,
		JournalText: req.JournalText,
		ManualTags:  req.ManualTags,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("check-in error: invalid check-in", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid check-in", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("check-in error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("check-in error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving check-in", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, CreateCheckinResponse{
		Checkin:       res.Checkin,
		JournalStored: res.JournalStored,
		AIProcessed:   res.AIProcessed,
	})
	logger.Info("check-in saved", slog.Bool("ai_processed", res.AIProcessed))
}

func (s *Server) GetCheckins(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get check-ins error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	checkins, err := s.moodService.GetUserCheckins(ctx, uid, opts)
	if err != nil {
		logger.Error("getting check-ins list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting check-ins list", nil)
		return
	}
	if checkins == nil {
		checkins = []entity.MoodCheckin{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCheckinsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Checkins: checkins,
	})
	logger.Info("check-ins provided")
}
