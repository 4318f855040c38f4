package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/limbo/mindrep/pkg/httputil"
)

type CorrelationsResponse struct {
	UserID       string               `json:"uid"`
	Correlations []entity.Correlation `json:"correlations"`
}

func correlationsResponse(uid uuid.UUID, rows []entity.Correlation) CorrelationsResponse {
	if rows == nil {
		rows = []entity.Correlation{}
	}
	return CorrelationsResponse{
		UserID:       uid.String(),
		Correlations: rows,
	}
}

func (s *Server) GetCorrelations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get correlations error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), prescriptionTimeout)
	defer cancel()
	rows, err := s.correlationService.Current(ctx, uid)
	if err != nil {
		logger.Error("getting correlations error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting correlations", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, correlationsResponse(uid, rows))
	logger.Info("correlations provided", slog.Int("count", len(rows)))
}

func (s *Server) RecomputeCorrelations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recompute correlations error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), prescriptionTimeout)
	defer cancel()
	rows, err := s.correlationService.Recompute(ctx, uid)
	if err != nil {
		logger.Error("recomputing correlations error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while recomputing correlations", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, correlationsResponse(uid, rows))
	logger.Info("correlations recomputed", slog.Int("count", len(rows)))
}

func (s *Server) WeeklyInsights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly insights error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	insights, err := s.insightsService.Weekly(ctx, uid)
	if err != nil {
		logger.Error("weekly insights error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building weekly insights", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, insights)
	logger.Info("weekly insights provided")
}
