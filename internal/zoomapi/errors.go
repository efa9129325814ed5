package zoomapi

import "errors"

// ErrCredentialsNotConfigured is returned before any network call when one or
// more of the three Zoom credentials is missing.
var ErrCredentialsNotConfigured = errors.New("Zoom credentials not configured")

// AuthError wraps a failure to obtain a Zoom access token.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return "Failed to get Zoom access token: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

// MeetingError wraps a failure to create a Zoom meeting.
type MeetingError struct {
	Err error
}

func (e *MeetingError) Error() string {
	return "Failed to create Zoom meeting: " + e.Err.Error()
}

func (e *MeetingError) Unwrap() error { return e.Err }

// BookingError wraps a failure to create a Zoom Scheduler booking.
type BookingError struct {
	Err error
}

func (e *BookingError) Error() string {
	return "Failed to create scheduler booking: " + e.Err.Error()
}

func (e *BookingError) Unwrap() error { return e.Err }
