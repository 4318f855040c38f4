package httputil

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WriteErrorResponse writes message with status code. Joined errors in details,
// such as validation failures, are reported one per entry.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		for _, line := range strings.Split(details.Error(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				resp.Details = append(resp.Details, line)
			}
		}
	}

	if err := sonic.ConfigFastest.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("writing error response failed", slog.String("error", err.Error()))
	}
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("writing response failed", slog.String("error", err.Error()))
	}
}
