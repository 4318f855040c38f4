package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/mindrep/internal/api"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/service"
	"github.com/limbo/mindrep/internal/service/mocks"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestSyncWearable(t *testing.T) {
	ctrl := gomock.NewController(t)
	wService := mocks.NewMockWearableServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		WearableService: wService,
	})
	hrv := 52.0
	body := jsonBody(t, api.WearableDailyRequest{Date: "2025-03-14", Source: "oura", HRVAvg: &hrv})
	expected := service.WearableRequest{
		Date:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Source: "oura",
		HRVAvg: &hrv,
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				wService.EXPECT().SyncDaily(gomock.Any(), userID, expected).Return(&entity.WearableDailySummary{
					UserID: userID,
					Date:   expected.Date,
					Source: "oura",
					HRVAvg: &hrv,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				wService.EXPECT().SyncDaily(gomock.Any(), userID, expected).Return(nil, errorvalues.ErrConsentRequired)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				wService.EXPECT().SyncDaily(gomock.Any(), userID, expected).Return(nil, errorvalues.ErrFutureDate)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				wService.EXPECT().SyncDaily(gomock.Any(), userID, expected).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte(`{"date":"yesterday","source":"oura"}`)),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodPost, "/api/v1/wearable/daily", tc.Body))
		serv.SyncWearable(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}
