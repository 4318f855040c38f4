package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/mindrep/internal/api"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/internal/service/mocks"
	"github.com/limbo/mindrep/pkg/entity"
	jwtservice "github.com/limbo/mindrep/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userID          = uuid.New()
)

func testUser() *entity.User {
	return &entity.User{
		ID:           userID,
		Name:         username,
		PasswordHash: string(passwordHash),
	}
}

func withUID(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
}

func jsonBody(t *testing.T, v any) []byte {
	t.Helper()
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body := jsonBody(t, api.RegisterRequest{Name: username, Password: password})
	expected := &service.RegisterRequest{Name: username, Password: password}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(testUser(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Name too short")))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
		serv.Register(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("secret", time.Hour),
	})
	body := jsonBody(t, api.LoginRequest{Name: username, Password: password})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(testUser(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("{")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", tc.Body)
		serv.Login(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if tc.ExpectedCode == http.StatusOK {
			result := make(map[string]any)
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
			assert.Equal(t, userID.String(), result["uid"])
			assert.NotEmpty(t, result["token"])
		}
	}
}

func TestUpdateConsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body := jsonBody(t, api.ConsentRequest{AIConsent: true})
	expected := service.ConsentRequest{AIConsent: true}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				user := testUser()
				user.AIConsent = true
				uService.EXPECT().UpdateConsent(gomock.Any(), userID, expected).Return(user, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().UpdateConsent(gomock.Any(), userID, expected).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().UpdateConsent(gomock.Any(), userID, expected).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodPut, "/api/v1/users/me/consent", tc.Body))
		serv.UpdateConsent(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if tc.ExpectedCode == http.StatusOK {
			var resp api.ConsentResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.True(t, resp.AIConsent)
			assert.False(t, resp.WearableConsent)
		}
	}
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/users/me/consent", bytes.NewReader(body))
		serv.UpdateConsent(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body := jsonBody(t, api.DeleteAccountRequest{Password: password})
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(errorvalues.ErrWrongCredentials)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(errorvalues.ErrUserNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodDelete, "/api/v1/users/me", bytes.NewReader(body)))
		serv.DeleteAccount(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	iService := mocks.NewMockInsightsServiceI(ctrl)
	jwt := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{
		UserService:     uService,
		InsightsService: iService,
		JwtService:      jwt,
	})
	handler := serv.Handler()
	token, err := jwt.GenerateToken(testUser())
	require.NoError(t, err)

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
		_, err := uuid.Parse(rr.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/insights/weekly", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("malformed token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/insights/weekly", nil)
		r.Header.Set("Authorization", "Bearer nonsense")
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("deleted user", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/insights/weekly", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("authorized", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(testUser(), nil)
		iService.EXPECT().Weekly(gomock.Any(), userID).Return(&service.WeeklyInsights{
			MoodTrend:       []service.MoodTrendPoint{},
			TopCorrelations: []entity.Correlation{},
			ExerciseSummary: map[string]int{},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/insights/weekly", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("unknown route", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/streaks", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	cfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(cfg)
	userService := service.NewUserService(repo)
	serv := api.New(&api.ServicesList{
		UserService: userService,
		JwtService:  jwtservice.New("secret", time.Hour),
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	body := jsonBody(t, api.RegisterRequest{Name: username, Password: password})
	t.Run("creating user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	var token string
	var ok bool
	t.Run("logging in and getting token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		token, ok = result["token"].(string)
		if !ok || token == "" {
			t.Error("invalid token")
		}
	})
	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("mindrep"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
