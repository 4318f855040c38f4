package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/limbo/mindrep/pkg/httputil"
)

const authLookupTimeout = 5 * time.Second

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
	userContextKey       = "User"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AccessLogMiddleware logs one line per request once the response is written.
func (s *Server) AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		GetLoggerFromCtx(r.Context()).Info("request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, err := GetUIDFromContext(r); err == nil {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		if user, ok := GetUserFromContext(r); ok {
			logger = logger.With(
				slog.Bool("ai_consent", user.AIConsent),
				slog.Bool("wearable_consent", user.WearableConsent),
			)
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// authError carries the status and public message of a rejected request.
type authError struct {
	code    int
	message string
	cause   error
}

func (e *authError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// authenticate resolves the bearer token of r to a user that still exists.
func (s *Server) authenticate(r *http.Request) (*entity.User, error) {
	tokenString, err := GetTokenFromHeader(r)
	if err != nil {
		return nil, &authError{code: http.StatusUnauthorized, message: "authorization failed: invalid token"}
	}
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return nil, &authError{code: http.StatusUnauthorized, message: "authorization failed: invalid token"}
		}
		return nil, &authError{code: http.StatusInternalServerError, message: "error parsing token", cause: err}
	}
	if !claims.Active(time.Now()) {
		return nil, &authError{code: http.StatusUnauthorized, message: "token expired or not ready"}
	}
	uid, err := claims.UID()
	if err != nil {
		return nil, &authError{code: http.StatusUnauthorized, message: "invalid token payload"}
	}
	// account may have been deleted after the token was issued
	ctx, cancel := context.WithTimeout(r.Context(), authLookupTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, &authError{code: http.StatusNotFound, message: "auth failed: user not found"}
		}
		return nil, &authError{code: http.StatusInternalServerError, message: "internal error while searching for user", cause: err}
	}
	return user, nil
}

// AuthMiddleware puts the caller's uid and user record into the request context.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		user, err := s.authenticate(r)
		if err != nil {
			var aerr *authError
			if !errors.As(err, &aerr) {
				aerr = &authError{code: http.StatusInternalServerError, message: "internal auth error", cause: err}
			}
			logger.Error("auth failed", slog.Int("code", aerr.code), slog.String("error", aerr.Error()))
			httputil.WriteErrorResponse(w, aerr.code, aerr.message, nil)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, user.ID)
		ctx = context.WithValue(ctx, userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

// GetUserFromContext returns the user loaded by AuthMiddleware.
func GetUserFromContext(r *http.Request) (*entity.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*entity.User)
	return user, ok && user != nil
}
