package impl

import (
	"io"
	"log/slog"
	"time"

	"calbridge/config"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OAuth.ClientID = "client-id"
	cfg.OAuth.ClientSecret = "client-secret"
	cfg.OAuth.RedirectURI = "https://broker.example.com/api/calendar"
	cfg.Encryption.Key = "test-encryption-key"
	cfg.ApplyDefaults()

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
