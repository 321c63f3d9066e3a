package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration sourced from the environment.
type Config struct {
	AppPort     string
	DatabaseURL string // empty means the seeded in-memory order source

	// DownloadDir is where bulk-downloaded invoice PDFs are written.
	DownloadDir string

	// BulkDownloadDelay is the pause between invoices during a bulk
	// download, throttling back-to-back file generation.
	BulkDownloadDelay time.Duration

	// SupportEmail is printed in the invoice footer.
	SupportEmail string
}

// Load reads .env (when present) and the process environment,
// applying defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:      getenv("APP_PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DownloadDir:  getenv("DOWNLOAD_DIR", "./downloads"),
		SupportEmail: getenv("SUPPORT_EMAIL", "support@orderarchive.com"),
	}

	raw := getenv("BULK_DOWNLOAD_DELAY_MS", "100")
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return nil, fmt.Errorf("invalid BULK_DOWNLOAD_DELAY_MS %q", raw)
	}
	cfg.BulkDownloadDelay = time.Duration(ms) * time.Millisecond

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
