package zoomapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hirescreen/zoom-bridge/config"
)

const (
	// BaseURL is the base URL for the Zoom API.
	BaseURL = "https://api.zoom.us/v2"
	// AuthURL is the OAuth token endpoint.
	AuthURL = "https://zoom.us/oauth/token"
	// DefaultTimeout bounds every upstream call, token requests included.
	DefaultTimeout = 10 * time.Second
)

// API defines the upstream Zoom operations the bridge uses. Tests substitute
// deterministic fakes for this interface instead of performing network calls.
type API interface {
	Token(ctx context.Context) (string, error)
	CreateMeeting(ctx context.Context, token string, req *CreateMeetingRequest) (*Meeting, error)
	CreateBooking(ctx context.Context, token, scheduleID string, req *CreateBookingRequest) (*Booking, error)
}

// Client is a Zoom REST API client using Server-to-Server OAuth.
// Tokens are fetched per call and never cached.
type Client struct {
	httpClient  *http.Client
	cfg         config.ZoomConfig
	oauthConfig *clientcredentials.Config
	logger      *zap.Logger
}

var _ API = (*Client)(nil)

// NewClient creates a Zoom API client from the given credentials.
func NewClient(cfg config.ZoomConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = AuthURL
	}
	timeout := DefaultTimeout
	if cfg.TimeoutSec > 0 {
		timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}

	// Zoom Server-to-Server OAuth: Basic auth from client_id:client_secret plus
	// account_credentials grant parameters in the form body.
	oauthConfig := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.AuthURL,
		EndpointParams: url.Values{
			"grant_type": []string{"account_credentials"},
			"account_id": []string{cfg.AccountID},
		},
		AuthStyle: oauth2.AuthStyleInHeader,
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		cfg:         cfg,
		oauthConfig: oauthConfig,
		logger:      logger,
	}
}

// Token exchanges the configured credentials for a short-lived access token.
// A fresh token is requested every time; callers reuse one token across the
// calls of a single workflow and then discard it.
func (c *Client) Token(ctx context.Context) (string, error) {
	if !c.cfg.Configured() {
		return "", ErrCredentialsNotConfigured
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauthConfig.Token(ctx)
	if err != nil {
		c.logger.Error("zoom token request failed", zap.Error(err))
		return "", &AuthError{Err: err}
	}
	return tok.AccessToken, nil
}

// doRequest performs a bearer-authenticated JSON request against the Zoom API.
// No retries: the upstream call either succeeds or fails within the timeout.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("zoom request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	c.logger.Debug("zoom request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return resp, nil
}

// parseErrorResponse extracts the Zoom API error message from a non-2xx body.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("zoom API error (code %d): %s", errResp.Code, errResp.Message)
	}
	return fmt.Errorf("zoom API error (status %d): %s", resp.StatusCode, string(body))
}
