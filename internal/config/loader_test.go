package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "sandbox")
	t.Setenv("APP_SERVICE_VERSION", "1.0.0")
	t.Setenv("APP_COMMIT_SHA", "1234xwz")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_PASSWORD", "test.Secret")
	t.Setenv("BASE_URL", "https://provider.sandbox.test")
	t.Setenv("CAPASHINO_BASE_URL", "https://capashino.sandbox.test")
	t.Setenv("SYNC_SCHEDULE", "0 3 * * *")

	cfg, err := Init()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "sandbox", cfg.AppConfig.Env)
	assert.Equal(t, "svc-ticket-aggregator", cfg.AppConfig.ServiceName)
	assert.Equal(t, "1.0.0", cfg.AppConfig.ServiceVersion)
	assert.Equal(t, "1234xwz", cfg.AppConfig.CommitSHA)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "test.Secret", cfg.Storage.Password)
	assert.Equal(t, "https://provider.sandbox.test", cfg.Provider.BaseURL)
	assert.Equal(t, "https://capashino.sandbox.test", cfg.Notifier.BaseURL)
	assert.Equal(t, "0 3 * * *", cfg.Sync.Schedule)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Init()
	assert.NoError(t, err)

	assert.Equal(t, 3, cfg.Provider.MaxRetries)
	assert.Equal(t, 10, cfg.Outbox.BatchSize)
	assert.Equal(t, 5, cfg.Outbox.MaxRetries)
	assert.Equal(t, 7, cfg.Outbox.DaysToKeep)
	assert.Equal(t, 7, cfg.Idempotency.TTLDays)
	assert.Equal(t, 30*time.Second, cfg.SeatsCache.TTL)
	assert.Equal(t, "2000-01-01", cfg.Sync.InitialChangedAt)
	assert.Equal(t, 30*time.Minute, cfg.Sync.StaleLockThreshold)
}
