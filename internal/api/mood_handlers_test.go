package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/api"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/internal/service/mocks"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckin(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMoodServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MoodService: mService,
	})
	journal := "long day at work, call me on 07700 900123"
	body := jsonBody(t, api.CreateCheckinRequest{
		MoodScore:   4,
		JournalText: &journal,
		ManualTags:  []string{"stressed"},
	})
	expected := service.CreateCheckinRequest{
		MoodScore:   4,
		JournalText: &journal,
		ManualTags:  []string{"stressed"},
	}
	checkin := entity.MoodCheckin{
		ID:          uuid.New(),
		UserID:      userID,
		CreatedAt:   time.Now(),
		MoodScore:   4,
		JournalText: &journal,
		ManualTags:  []string{"stressed"},
		Classification: &entity.MoodClassification{
			Label: "stressed", Intensity: 6, Themes: []string{"work stress"}, Confidence: 0.8,
		},
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				mService.EXPECT().CreateCheckin(gomock.Any(), userID, expected).Return(&service.CheckinResult{
					Checkin:       checkin,
					JournalStored: true,
					AIProcessed:   true,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				mService.EXPECT().CreateCheckin(gomock.Any(), userID, expected).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				mService.EXPECT().CreateCheckin(gomock.Any(), userID, expected).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				mService.EXPECT().CreateCheckin(gomock.Any(), userID, expected).Return(nil, errors.New("service error"))
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
		r := withUID(httptest.NewRequest(http.MethodPost, "/api/v1/mood/checkin", tc.Body))
		serv.CreateCheckin(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if tc.ExpectedCode == http.StatusCreated {
			raw := rr.Body.String()
			// raw journal text never leaves the server
			assert.NotContains(t, raw, "07700")
			var resp api.CreateCheckinResponse
			require.NoError(t, sonic.ConfigDefault.UnmarshalFromString(raw, &resp))
			assert.True(t, resp.JournalStored)
			assert.True(t, resp.AIProcessed)
			assert.Equal(t, checkin.ID, resp.Checkin.ID)
			require.NotNil(t, resp.Checkin.Classification)
			assert.Equal(t, "stressed", resp.Checkin.Classification.Label)
		}
	}
}

func TestGetCheckins(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMoodServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MoodService: mService,
	})
	checkins := make([]entity.MoodCheckin, 0, 10)
	for i := range 10 {
		checkins = append(checkins, entity.MoodCheckin{
			ID:         uuid.New(),
			UserID:     userID,
			CreatedAt:  time.Now().Add(-time.Duration(i) * time.Hour),
			MoodScore:  i%10 + 1,
			ManualTags: []string{},
		})
	}
	testCases := []struct {
		ExpectedCode  int
		MockPrepFunc  func()
		Limit         string
		Page          string
		ExpectedCount int
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				mService.EXPECT().GetUserCheckins(gomock.Any(), userID, service.PaginationOpts{Limit: 10, Offset: 0}).Return(checkins, nil)
			},
			Limit:         "10",
			Page:          "1",
			ExpectedCount: 10,
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				mService.EXPECT().GetUserCheckins(gomock.Any(), userID, service.PaginationOpts{Limit: 4, Offset: 8}).Return(checkins[8:], nil)
			},
			Limit:         "4",
			Page:          "3",
			ExpectedCount: 2,
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				mService.EXPECT().GetUserCheckins(gomock.Any(), userID, service.PaginationOpts{Limit: 10, Offset: 0}).Return(nil, nil)
			},
			Limit:         "500",
			Page:          "-1",
			ExpectedCount: 0,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				mService.EXPECT().GetUserCheckins(gomock.Any(), userID, service.PaginationOpts{Limit: 10, Offset: 0}).Return(nil, errors.New("service error"))
			},
			Limit: "abc",
			Page:  "",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/mood/checkins", nil)
		q := r.URL.Query()
		q.Add("limit", tc.Limit)
		q.Add("page", tc.Page)
		r.URL.RawQuery = q.Encode()
		serv.GetCheckins(rr, withUID(r))
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.GetCheckinsResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.NotNil(t, resp.Checkins)
			assert.Equal(t, tc.ExpectedCount, len(resp.Checkins))
			assert.Equal(t, userID.String(), resp.UserID)
			if limit, err := strconv.Atoi(tc.Limit); err == nil && limit <= 50 {
				assert.Equal(t, limit, resp.Limit)
			}
		}
	}
}
