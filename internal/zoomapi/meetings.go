package zoomapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// MeetingTypeScheduled is the Zoom meeting type code for a scheduled meeting.
const MeetingTypeScheduled = 2

// MeetingSettings represents the settings block of a meeting creation request.
type MeetingSettings struct {
	JoinBeforeHost   bool `json:"join_before_host"`
	WaitingRoom      bool `json:"waiting_room"`
	HostVideo        bool `json:"host_video"`
	ParticipantVideo bool `json:"participant_video"`
}

// CreateMeetingRequest represents the request to create a Zoom meeting.
type CreateMeetingRequest struct {
	Topic     string           `json:"topic"`
	Type      int              `json:"type"`
	StartTime string           `json:"start_time"`
	Duration  int              `json:"duration"`
	Settings  *MeetingSettings `json:"settings,omitempty"`
}

// Meeting is the subset of the Zoom meeting response the bridge uses.
// Fields absent from the upstream response decode to zero values; callers
// must tolerate partial data.
type Meeting struct {
	ID        int64  `json:"id"`
	JoinURL   string `json:"join_url"`
	Password  string `json:"password"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Topic     string `json:"topic"`
}

// CreateMeeting creates a scheduled meeting for the account's user.
func (c *Client) CreateMeeting(ctx context.Context, token string, req *CreateMeetingRequest) (*Meeting, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/users/me/meetings", token, req)
	if err != nil {
		return nil, &MeetingError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, &MeetingError{Err: parseErrorResponse(resp)}
	}

	var meeting Meeting
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return nil, &MeetingError{Err: fmt.Errorf("decode meeting response: %w", err)}
	}
	return &meeting, nil
}
