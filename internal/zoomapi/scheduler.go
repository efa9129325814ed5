package zoomapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// BookingInvitee is the invitee block of a scheduler booking request.
type BookingInvitee struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateBookingRequest represents the request to create a Zoom Scheduler booking.
type CreateBookingRequest struct {
	StartTime string         `json:"start_time"`
	Invitee   BookingInvitee `json:"invitee"`
}

// Booking is the subset of the scheduler booking response the bridge uses.
// Creating a booking causes Zoom to email the invitee as a side effect.
type Booking struct {
	BookingID   string `json:"booking_id"`
	MeetingLink string `json:"meeting_link"`
	StartTime   string `json:"start_time"`
	Status      string `json:"status"`
	Email       string `json:"email"`
}

// CreateBooking creates a booking on the given scheduler schedule.
func (c *Client) CreateBooking(ctx context.Context, token, scheduleID string, req *CreateBookingRequest) (*Booking, error) {
	path := fmt.Sprintf("/scheduler/schedules/%s/bookings", scheduleID)
	resp, err := c.doRequest(ctx, http.MethodPost, path, token, req)
	if err != nil {
		return nil, &BookingError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, &BookingError{Err: parseErrorResponse(resp)}
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, &BookingError{Err: fmt.Errorf("decode booking response: %w", err)}
	}
	return &booking, nil
}
