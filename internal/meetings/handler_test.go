package meetings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirescreen/zoom-bridge/config"
	"github.com/hirescreen/zoom-bridge/internal/zoomapi"
)

func newTestRouter(zoom zoomapi.API, zoomCfg config.ZoomConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(zoom, nil), zoomCfg, nil)
	router := gin.New()
	api := router.Group("/api/zoom")
	api.GET("/status", handler.Status)
	api.POST("/create-meeting", handler.CreateMeeting)
	api.POST("/scheduler/book", handler.Book)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

const createMeetingBody = `{
	"candidate_name": "Marcus Chen",
	"user_email": "marcus@example.com",
	"start_time": "2025-12-20T10:00:00Z",
	"duration": 45
}`

const createMeetingWithScheduleBody = `{
	"candidate_name": "Marcus Chen",
	"user_email": "marcus@example.com",
	"start_time": "2025-12-20T10:00:00Z",
	"duration": 45,
	"schedule_id": "sched-1"
}`

func TestCreateMeetingEndpoint_MeetingOnly(t *testing.T) {
	router := newTestRouter(newFakeZoom(), config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", createMeetingBody)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "meeting_only", body["workflow_status"])
	assert.NotContains(t, body, "scheduler_booking")
	assert.Equal(t, "987654321", body["meeting_id"])
	assert.Equal(t, "https://zoom.us/j/987654321", body["join_url"])
	assert.Equal(t, "Interview with Marcus Chen", body["topic"])
}

func TestCreateMeetingEndpoint_WithEmail(t *testing.T) {
	router := newTestRouter(newFakeZoom(), config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", createMeetingWithScheduleBody)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "meeting_with_email", body["workflow_status"])
	booking, ok := body["scheduler_booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, booking["email_sent"])
	assert.Equal(t, "bk-1", booking["booking_id"])
}

func TestCreateMeetingEndpoint_BookingFailureStillOK(t *testing.T) {
	zoom := newFakeZoom()
	zoom.bookingErr = &zoomapi.BookingError{Err: errors.New("schedule not found")}
	router := newTestRouter(zoom, config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", createMeetingWithScheduleBody)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "meeting_created_booking_failed", body["workflow_status"])
	assert.NotContains(t, body, "scheduler_booking")
	assert.Equal(t, "987654321", body["meeting_id"])
	assert.Equal(t, "abc123", body["password"])
}

func TestCreateMeetingEndpoint_BadTimeFormat(t *testing.T) {
	router := newTestRouter(newFakeZoom(), config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", `{
		"candidate_name": "Marcus Chen",
		"user_email": "marcus@example.com",
		"start_time": "not-a-time",
		"duration": 45
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["detail"], "Invalid time format: not-a-time")
}

func TestCreateMeetingEndpoint_InvalidBody(t *testing.T) {
	router := newTestRouter(newFakeZoom(), config.ZoomConfig{})

	tests := []struct {
		name string
		body string
	}{
		{"bad email", `{"candidate_name":"A","user_email":"nope","start_time":"14:30","duration":45}`},
		{"zero duration", `{"candidate_name":"A","user_email":"a@b.co","start_time":"14:30","duration":0}`},
		{"missing name", `{"user_email":"a@b.co","start_time":"14:30","duration":45}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, body["detail"])
		})
	}
}

// With no credentials configured the real client fails before any network
// call, and the endpoint maps that to a 500 with a configuration detail.
func TestCreateMeetingEndpoint_CredentialsNotConfigured(t *testing.T) {
	client := zoomapi.NewClient(config.ZoomConfig{}, nil)
	router := newTestRouter(client, config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", createMeetingBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body["detail"], "credentials not configured")
}

func TestCreateMeetingEndpoint_UpstreamMeetingError(t *testing.T) {
	zoom := newFakeZoom()
	zoom.meetingErr = &zoomapi.MeetingError{Err: errors.New("upstream down")}
	router := newTestRouter(zoom, config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/create-meeting", createMeetingBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body["detail"], "Failed to create Zoom meeting")
}

func TestBookEndpoint(t *testing.T) {
	router := newTestRouter(newFakeZoom(), config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/scheduler/book", `{
		"schedule_id": "sched-1",
		"start_time": "2025-12-20T10:00:00Z",
		"user_email": "marcus@example.com",
		"first_name": "Marcus",
		"last_name": "Chen"
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["email_sent"])
	assert.Equal(t, "bk-1", body["booking_id"])
	assert.Equal(t, "confirmed", body["status"])
}

func TestBookEndpoint_UpstreamFailure(t *testing.T) {
	zoom := newFakeZoom()
	zoom.bookingErr = &zoomapi.BookingError{Err: errors.New("schedule not found")}
	router := newTestRouter(zoom, config.ZoomConfig{})

	w, body := doJSON(t, router, http.MethodPost, "/api/zoom/scheduler/book", `{
		"schedule_id": "sched-1",
		"start_time": "2025-12-20T10:00:00Z",
		"user_email": "marcus@example.com",
		"first_name": "Marcus"
	}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body["detail"], "Failed to create scheduler booking")
}

func TestStatusEndpoint(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		router := newTestRouter(newFakeZoom(), config.ZoomConfig{})
		w, body := doJSON(t, router, http.MethodGet, "/api/zoom/status", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, body["credentials_configured"])
	})

	t.Run("configured", func(t *testing.T) {
		cfg := config.ZoomConfig{AccountID: "acc", ClientID: "id", ClientSecret: "secret"}
		router := newTestRouter(newFakeZoom(), cfg)
		w, body := doJSON(t, router, http.MethodGet, "/api/zoom/status", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["credentials_configured"])
		assert.Contains(t, body["cors_enabled"], "All origins")
	})
}
