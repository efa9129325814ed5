package meetings

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/hirescreen/zoom-bridge/internal/zoomapi"
)

// Workflow status tags for a combined scheduling result.
const (
	StatusMeetingOnly      = "meeting_only"
	StatusMeetingWithEmail = "meeting_with_email"
	StatusBookingFailed    = "meeting_created_booking_failed"
)

// MeetingRecord is the flattened meeting returned to the caller.
type MeetingRecord struct {
	JoinURL   string `json:"join_url"`
	MeetingID string `json:"meeting_id"`
	Password  string `json:"password"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Topic     string `json:"topic"`
}

// BookingRecord is the scheduler booking returned to the caller. EmailSent
// reflects an assumption about upstream behavior, not a delivery receipt.
type BookingRecord struct {
	BookingID   string `json:"booking_id"`
	EmailSent   bool   `json:"email_sent"`
	MeetingLink string `json:"meeting_link"`
	StartTime   string `json:"start_time"`
	Status      string `json:"status"`
	UserEmail   string `json:"user_email"`
}

// CombinedResult is the response of the combined scheduling workflow. The
// meeting fields are flattened at the top level.
type CombinedResult struct {
	MeetingRecord
	SchedulerBooking *BookingRecord `json:"scheduler_booking,omitempty"`
	WorkflowStatus   string         `json:"workflow_status"`
}

// ScheduleParams are the validated inputs of the combined workflow.
type ScheduleParams struct {
	CandidateName string
	UserEmail     string
	StartTime     string
	Duration      int
	ScheduleID    string
}

// BookingParams are the validated inputs of a standalone booking.
type BookingParams struct {
	ScheduleID string
	StartTime  string
	UserEmail  string
	FirstName  string
	LastName   string
}

// bookingOutcome is the explicit result of the best-effort booking step:
// either a booking record or the suppressed failure reason.
type bookingOutcome struct {
	booking *BookingRecord
	err     error
}

// Service orchestrates the interview scheduling workflow against Zoom.
type Service struct {
	zoom   zoomapi.API
	logger *zap.Logger
}

// NewService creates a meetings service.
func NewService(zoom zoomapi.API, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{zoom: zoom, logger: logger}
}

// ScheduleInterview runs the combined workflow: normalize the start time,
// authenticate, create the meeting, and, when a schedule ID was supplied,
// attempt a scheduler booking with the same token. A booking failure never
// fails the request; the created meeting is returned with the failure tag.
func (s *Service) ScheduleInterview(ctx context.Context, p ScheduleParams) (*CombinedResult, error) {
	startTime, err := NormalizeStartTime(p.StartTime)
	if err != nil {
		return nil, err
	}

	token, err := s.zoom.Token(ctx)
	if err != nil {
		return nil, err
	}

	meeting, err := s.zoom.CreateMeeting(ctx, token, &zoomapi.CreateMeetingRequest{
		Topic:     "Interview with " + p.CandidateName,
		Type:      zoomapi.MeetingTypeScheduled,
		StartTime: startTime,
		Duration:  p.Duration,
		Settings: &zoomapi.MeetingSettings{
			JoinBeforeHost:   true,
			WaitingRoom:      false,
			HostVideo:        true,
			ParticipantVideo: true,
		},
	})
	if err != nil {
		return nil, err
	}

	result := &CombinedResult{
		MeetingRecord:  newMeetingRecord(meeting),
		WorkflowStatus: StatusMeetingOnly,
	}
	if p.ScheduleID == "" {
		return result, nil
	}

	outcome := s.attemptBooking(ctx, token, p.ScheduleID, startTime, p.CandidateName, p.UserEmail)
	if outcome.err != nil {
		s.logger.Warn("scheduler booking failed, meeting kept",
			zap.String("schedule_id", p.ScheduleID),
			zap.Error(outcome.err),
		)
		result.WorkflowStatus = StatusBookingFailed
		return result, nil
	}
	result.SchedulerBooking = outcome.booking
	result.WorkflowStatus = StatusMeetingWithEmail
	return result, nil
}

// BookSlot creates a standalone scheduler booking. Unlike the booking step of
// ScheduleInterview, its failure is surfaced to the caller.
func (s *Service) BookSlot(ctx context.Context, p BookingParams) (*BookingRecord, error) {
	startTime, err := NormalizeStartTime(p.StartTime)
	if err != nil {
		return nil, err
	}

	token, err := s.zoom.Token(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := s.zoom.CreateBooking(ctx, token, p.ScheduleID, &zoomapi.CreateBookingRequest{
		StartTime: startTime,
		Invitee: zoomapi.BookingInvitee{
			Email:     p.UserEmail,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		},
	})
	if err != nil {
		return nil, err
	}
	return newBookingRecord(booking, p.UserEmail, startTime), nil
}

func (s *Service) attemptBooking(ctx context.Context, token, scheduleID, startTime, candidateName, email string) bookingOutcome {
	first, last := SplitName(candidateName)
	booking, err := s.zoom.CreateBooking(ctx, token, scheduleID, &zoomapi.CreateBookingRequest{
		StartTime: startTime,
		Invitee: zoomapi.BookingInvitee{
			Email:     email,
			FirstName: first,
			LastName:  last,
		},
	})
	if err != nil {
		return bookingOutcome{err: err}
	}
	return bookingOutcome{booking: newBookingRecord(booking, email, startTime)}
}

func newMeetingRecord(m *zoomapi.Meeting) MeetingRecord {
	rec := MeetingRecord{
		JoinURL:   m.JoinURL,
		Password:  m.Password,
		StartTime: m.StartTime,
		Duration:  m.Duration,
		Topic:     m.Topic,
	}
	if m.ID != 0 {
		rec.MeetingID = strconv.FormatInt(m.ID, 10)
	}
	return rec
}

func newBookingRecord(b *zoomapi.Booking, email, startTime string) *BookingRecord {
	rec := &BookingRecord{
		BookingID:   b.BookingID,
		EmailSent:   true, // Zoom emails the invitee as a side effect of booking creation
		MeetingLink: b.MeetingLink,
		StartTime:   b.StartTime,
		Status:      b.Status,
		UserEmail:   b.Email,
	}
	if rec.StartTime == "" {
		rec.StartTime = startTime
	}
	if rec.UserEmail == "" {
		rec.UserEmail = email
	}
	return rec
}
