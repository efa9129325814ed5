package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ZOOM_API_BASE_URL", "ZOOM_OAUTH_URL", "ZOOM_TIMEOUT_SEC"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://api.zoom.us/v2", cfg.Zoom.BaseURL)
	assert.Equal(t, "https://zoom.us/oauth/token", cfg.Zoom.AuthURL)
	assert.Equal(t, 10, cfg.Zoom.TimeoutSec)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ZOOM_ACCOUNT_ID", "acc")
	t.Setenv("ZOOM_CLIENT_ID", "id")
	t.Setenv("ZOOM_CLIENT_SECRET", "secret")
	t.Setenv("ZOOM_TIMEOUT_SEC", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Zoom.Configured())
	assert.Equal(t, 5, cfg.Zoom.TimeoutSec)
}

func TestZoomConfig_Configured(t *testing.T) {
	full := ZoomConfig{AccountID: "a", ClientID: "b", ClientSecret: "c"}
	assert.True(t, full.Configured())

	for _, partial := range []ZoomConfig{
		{ClientID: "b", ClientSecret: "c"},
		{AccountID: "a", ClientSecret: "c"},
		{AccountID: "a", ClientID: "b"},
		{},
	} {
		assert.False(t, partial.Configured())
	}
}
