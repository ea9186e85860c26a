package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"engage/config"
	"engage/internal/delivery/http/response"
	"engage/internal/delivery/http/router"
	"engage/internal/delivery/http/router/handler"
	"engage/internal/domain/entity"
	mockUsecase "engage/internal/mocks/usecase"
	"engage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T) (*echo.Echo, *mockUsecase.MockEngagementUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engagementUC := mockUsecase.NewMockEngagementUsecase(t)

	r := router.NewRouter(router.RouterParams{
		EngagementHandler: handler.NewEngagementHandler(handler.EngagementHandlerParams{
			EngagementUC: engagementUC,
			Logger:       logger,
		}),
		Gatherer: prometheus.NewRegistry(),
	})

	return newEcho(&config.Config{}, logger, r), engagementUC
}

func doRequest(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

func TestGateway_UpdateLocation(t *testing.T) {
	e, engagementUC := createTestGateway(t)

	ts := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	engagementUC.EXPECT().
		OnLocationUpdate(mock.Anything, entity.Coordinate{Latitude: 25.034, Longitude: 121.5645}, mock.MatchedBy(ts.Equal)).
		Return(true).
		Once()

	rec, resp := doRequest(e, http.MethodPost, "/v1/locations",
		`{"latitude": 25.034, "longitude": 121.5645, "timestamp": "2026-03-02T12:00:00Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]any{"accepted": true}, resp.Data)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestGateway_UpdateLocation_ZeroCoordinatesAndNoTimestamp(t *testing.T) {
	e, engagementUC := createTestGateway(t)

	engagementUC.EXPECT().
		OnLocationUpdate(mock.Anything, entity.Coordinate{}, time.Time{}).
		Return(false).
		Once()

	rec, resp := doRequest(e, http.MethodPost, "/v1/locations", `{"latitude": 0, "longitude": 0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"accepted": false}, resp.Data)
}

func TestGateway_UpdateLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "malformed", body: `{"latitude": `, code: "INVALID_REQUEST"},
		{name: "missing longitude", body: `{"latitude": 25.0}`, code: "VALIDATION_FAILED"},
		{name: "latitude out of range", body: `{"latitude": 91, "longitude": 0}`, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, engagementUC := createTestGateway(t)

			rec, resp := doRequest(e, http.MethodPost, "/v1/locations", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			engagementUC.AssertNotCalled(t, "OnLocationUpdate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGateway_EnableDisable(t *testing.T) {
	e, engagementUC := createTestGateway(t)

	engagementUC.EXPECT().Disable(mock.Anything).Return().Once()
	engagementUC.EXPECT().Status().Return(usecase.EngagementStatus{Enabled: false, NotificationsAllowed: true}).Once()

	rec, resp := doRequest(e, http.MethodPost, "/v1/engagement/disable", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Engagement disabled", resp.Message)

	engagementUC.EXPECT().Enable().Return().Once()
	engagementUC.EXPECT().Status().Return(usecase.EngagementStatus{Enabled: true, NotificationsAllowed: true}).Once()

	rec, resp = doRequest(e, http.MethodPost, "/v1/engagement/enable", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp.Data.(map[string]any)["enabled"])
}

func TestGateway_SetPermission(t *testing.T) {
	e, engagementUC := createTestGateway(t)

	engagementUC.EXPECT().SetNotificationPermission(false).Return().Once()
	engagementUC.EXPECT().Status().Return(usecase.EngagementStatus{Enabled: true}).Once()

	rec, _ := doRequest(e, http.MethodPut, "/v1/notifications/permission", `{"granted": false}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := doRequest(e, http.MethodPut, "/v1/notifications/permission", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}

func TestGateway_RegionsAndHistory(t *testing.T) {
	e, engagementUC := createTestGateway(t)

	store := &entity.Store{ID: "P1", MerchantID: "M1", Name: "Bakery", Latitude: 25.034, Longitude: 121.5645}
	engagementUC.EXPECT().Status().Return(usecase.EngagementStatus{
		Regions: []entity.MonitoredRegion{entity.NewMonitoredRegion(store, 100)},
	}).Once()
	engagementUC.EXPECT().History().Return([]entity.NotificationRecord{
		{PointID: "P1", MerchantID: "M1", Timestamp: time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)},
	}).Once()

	rec, resp := doRequest(e, http.MethodGet, "/v1/regions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	regions := resp.Data.([]any)
	require.Len(t, regions, 1)
	assert.Equal(t, "P1", regions[0].(map[string]any)["id"])

	rec, resp = doRequest(e, http.MethodGet, "/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := resp.Data.([]any)
	require.Len(t, history, 1)
	assert.Equal(t, "M1", history[0].(map[string]any)["merchant_id"])
}

func TestGateway_MerchantStats(t *testing.T) {
	e, engagementUC := createTestGateway(t)

	engagementUC.EXPECT().MerchantStats("M1").Return(usecase.MerchantWindowStats{
		Today:          1,
		Week:           1,
		Month:          1,
		MerchantWeek:   1,
		MerchantMonth:  1,
		HoursSinceLast: 3,
	}).Once()

	rec, resp := doRequest(e, http.MethodGet, "/v1/merchants/M1/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	stats := resp.Data.(map[string]any)
	assert.InDelta(t, 3, stats["hours_since_last"], 0)
	assert.InDelta(t, 1, stats["merchant_week"], 0)
}

func TestGateway_HealthAndMetrics(t *testing.T) {
	e, _ := createTestGateway(t)

	rec, resp := doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	e.ServeHTTP(metricsRec, req)
	assert.Equal(t, http.StatusOK, metricsRec.Code)
}

func TestGateway_NotFound(t *testing.T) {
	e, _ := createTestGateway(t)

	rec, resp := doRequest(e, http.MethodGet, "/v1/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}

func TestGateway_RequestIDIsPropagated(t *testing.T) {
	e, _ := createTestGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}
