package meetings

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hirescreen/zoom-bridge/config"
	"github.com/hirescreen/zoom-bridge/internal/zoomapi"
	"github.com/hirescreen/zoom-bridge/pkg/response"
)

// CreateMeetingRequest is the body for POST /api/zoom/create-meeting.
type CreateMeetingRequest struct {
	CandidateName string `json:"candidate_name" binding:"required"`
	UserEmail     string `json:"user_email" binding:"required,email"`
	StartTime     string `json:"start_time" binding:"required"`
	Duration      int    `json:"duration" binding:"required,gt=0"`
	ScheduleID    string `json:"schedule_id"`
}

// BookRequest is the body for POST /api/zoom/scheduler/book.
type BookRequest struct {
	ScheduleID string `json:"schedule_id" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	UserEmail  string `json:"user_email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
}

// Handler handles the Zoom bridge HTTP endpoints.
type Handler struct {
	service *Service
	zoomCfg config.ZoomConfig
	logger  *zap.Logger
}

// NewHandler creates a meetings handler.
func NewHandler(service *Service, zoomCfg config.ZoomConfig, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, zoomCfg: zoomCfg, logger: logger}
}

// CreateMeeting handles POST /api/zoom/create-meeting. Runs the combined
// workflow: meeting creation plus an optional best-effort scheduler booking.
func (h *Handler) CreateMeeting(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.service.ScheduleInterview(c.Request.Context(), ScheduleParams{
		CandidateName: req.CandidateName,
		UserEmail:     req.UserEmail,
		StartTime:     req.StartTime,
		Duration:      req.Duration,
		ScheduleID:    req.ScheduleID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Book handles POST /api/zoom/scheduler/book. Creates a standalone scheduler
// booking, which triggers the invitee email upstream.
func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	booking, err := h.service.BookSlot(c.Request.Context(), BookingParams{
		ScheduleID: req.ScheduleID,
		StartTime:  req.StartTime,
		UserEmail:  req.UserEmail,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, booking)
}

// Status handles GET /api/zoom/status.
func (h *Handler) Status(c *gin.Context) {
	response.OK(c, gin.H{
		"credentials_configured": h.zoomCfg.Configured(),
		"cors_enabled":           "All origins (Google AI Studio compatible)",
	})
}

// respondError maps workflow errors to HTTP responses: bad time format is the
// caller's fault (400), everything else is a server-side failure (500) with
// the upstream message in the detail field.
func (h *Handler) respondError(c *gin.Context, err error) {
	var timeErr *InvalidTimeError
	if errors.As(err, &timeErr) {
		response.BadRequest(c, err.Error())
		return
	}

	h.logger.Error("request failed", zap.Error(err))

	var authErr *zoomapi.AuthError
	var meetingErr *zoomapi.MeetingError
	var bookingErr *zoomapi.BookingError
	switch {
	case errors.Is(err, zoomapi.ErrCredentialsNotConfigured),
		errors.As(err, &authErr),
		errors.As(err, &meetingErr),
		errors.As(err, &bookingErr):
		response.Internal(c, err.Error())
	default:
		response.Internal(c, "Unexpected error: "+err.Error())
	}
}
