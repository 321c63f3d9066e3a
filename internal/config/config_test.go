package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DOWNLOAD_DIR", "")
	t.Setenv("BULK_DOWNLOAD_DELAY_MS", "")
	t.Setenv("SUPPORT_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "./downloads", cfg.DownloadDir)
	assert.Equal(t, 100*time.Millisecond, cfg.BulkDownloadDelay)
	assert.Equal(t, "support@orderarchive.com", cfg.SupportEmail)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BULK_DOWNLOAD_DELAY_MS", "250")
	t.Setenv("DOWNLOAD_DIR", "/var/invoices")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 250*time.Millisecond, cfg.BulkDownloadDelay)
	assert.Equal(t, "/var/invoices", cfg.DownloadDir)
}

func TestLoad_ZeroDelayDisablesThrottle(t *testing.T) {
	t.Setenv("BULK_DOWNLOAD_DELAY_MS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.BulkDownloadDelay)
}

func TestLoad_InvalidDelay(t *testing.T) {
	for _, bad := range []string{"abc", "-5", "1.5"} {
		t.Setenv("BULK_DOWNLOAD_DELAY_MS", bad)
		_, err := Load()
		assert.Error(t, err, bad)
	}
}
