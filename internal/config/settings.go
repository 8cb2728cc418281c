package config

import (
	"time"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
	APIVersion     string
)

type (
	ServiceConfig struct {
		AppConfig   AppConfig         `json:"app_config"`
		Logging     LoggingConfig     `json:"logging"`
		Telemetry   Telemetry         `json:"telemetry"`
		HTTPServer  HTTPServerConfig  `json:"http_server"`
		Storage     StorageConfig     `json:"storage"`
		Provider    ProviderConfig    `json:"provider"`
		Notifier    NotifierConfig    `json:"notifier"`
		Outbox      OutboxConfig      `json:"outbox"`
		Sync        SyncConfig        `json:"sync"`
		SeatsCache  SeatsCacheConfig  `json:"seats_cache"`
		Idempotency IdempotencyConfig `json:"idempotency"`
		Backoff     BackoffConfig     `json:"backoff"`
	}

	AppConfig struct {
		ServiceName    string `envconfig:"APP_SERVICE_NAME" default:"svc-ticket-aggregator" json:"service_name"`
		ServiceVersion string `envconfig:"APP_SERVICE_VERSION" default:"0.0.0" json:"service_version"`
		CommitSHA      string `envconfig:"APP_COMMIT_SHA" default:"unknown" json:"commit_sha"`
		APIVersion     string `envconfig:"APP_API_VERSION" default:"v1" json:"api_version"`
		Env            string `envconfig:"APP_ENVIRONMENT" default:"unknown" json:"env"`
	}

	LoggingConfig struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"LOG_FORMAT" default:"json" json:"format"`
	}

	Telemetry struct {
		OtelGRPCHost string `envconfig:"OTEL_HOST" json:"otel_grpc_host"`
		OtelGRPCPort string `envconfig:"OTEL_PORT" default:"4317" json:"otel_grpc_port"`

		Metrics Metrics `json:"metrics"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"false" json:"enabled"`
	}

	HTTPServerConfig struct {
		Port            int           `envconfig:"HTTP_SERVER_PORT" default:"8080" json:"port"`
		Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0" json:"host"`
		ReadTimeout     time.Duration `envconfig:"HTTP_SERVER_READ_TIMEOUT" default:"30s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"HTTP_SERVER_WRITE_TIMEOUT" default:"30s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"HTTP_SERVER_IDLE_TIMEOUT" default:"120s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"HTTP_SERVER_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
	}

	StorageConfig struct {
		Host            string        `envconfig:"POSTGRES_HOST" default:"postgres" json:"host"`
		Port            int           `envconfig:"POSTGRES_PORT" default:"5432" json:"port"`
		Database        string        `envconfig:"POSTGRES_DATABASE_NAME" default:"ticket_aggregator" json:"database"`
		Username        string        `envconfig:"POSTGRES_USER" default:"postgres" json:"username"`
		Password        string        `envconfig:"POSTGRES_PASSWORD" default:"" json:"password,omitempty"`
		SSLMode         string        `envconfig:"POSTGRES_SSL_MODE" default:"disable" json:"ssl_mode"`
		MaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"25" json:"max_open_conns"`
		MaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5" json:"max_idle_conns"`
		ConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"5m" json:"conn_max_lifetime"`
		ConnMaxIdleTime time.Duration `envconfig:"POSTGRES_CONN_MAX_IDLE_TIME" default:"5m" json:"conn_max_idle_time"`
		ConnectTimeout  time.Duration `envconfig:"POSTGRES_CONNECT_TIMEOUT" default:"10s" json:"connect_timeout"`
	}

	// ProviderConfig configures the upstream events provider client.
	ProviderConfig struct {
		BaseURL        string               `envconfig:"BASE_URL" json:"base_url"`
		APIKey         string               `envconfig:"LMS_API_KEY" json:"api_key,omitempty"`
		ConnectTimeout time.Duration        `envconfig:"PROVIDER_CONNECT_TIMEOUT" default:"5s" json:"connect_timeout"`
		Timeout        time.Duration        `envconfig:"PROVIDER_TIMEOUT" default:"10s" json:"timeout"`
		MaxRetries     int                  `envconfig:"MAX_RETRIES" default:"3" json:"max_retries"`
		CircuitBreaker CircuitBreakerConfig `envconfig:"PROVIDER_CIRCUIT_BREAKER" json:"circuit_breaker"`
	}

	// NotifierConfig configures the Capashino notifications client.
	NotifierConfig struct {
		BaseURL string        `envconfig:"CAPASHINO_BASE_URL" json:"base_url"`
		APIKey  string        `envconfig:"CAPASHINO_API_KEY" json:"api_key,omitempty"`
		Timeout time.Duration `envconfig:"CAPASHINO_TIMEOUT" default:"10s" json:"timeout"`
	}

	OutboxConfig struct {
		BatchSize    int           `envconfig:"BATCH_SIZE_OUTBOX_TASKS" default:"10" json:"batch_size"`
		PollInterval time.Duration `envconfig:"POLL_INTERVAL_OUTBOX" default:"5s" json:"poll_interval"`
		MaxRetries   int           `envconfig:"MAX_RETRIES_OUTBOX" default:"5" json:"max_retries"`
		DaysToKeep   int           `envconfig:"DAYS_TO_KEEP" default:"7" json:"days_to_keep"`
	}

	SyncConfig struct {
		// Schedule is a cron expression for the periodic catalogue pull.
		Schedule string `envconfig:"SYNC_SCHEDULE" default:"@daily" json:"schedule"`
		// InitialChangedAt seeds the watermark filter when no sync has ever run.
		InitialChangedAt string `envconfig:"SYNC_INITIAL_CHANGED_AT" default:"2000-01-01" json:"initial_changed_at"`
		// StaleLockThreshold is how old an in_progress heartbeat may get before
		// the lock is considered abandoned by a crashed syncer.
		StaleLockThreshold time.Duration `envconfig:"SYNC_STALE_LOCK_THRESHOLD" default:"30m" json:"stale_lock_threshold"`
	}

	SeatsCacheConfig struct {
		TTL time.Duration `envconfig:"SEATS_CACHE_TTL" default:"30s" json:"ttl"`
	}

	IdempotencyConfig struct {
		TTLDays int `envconfig:"TTL_DAYS_IDM_KEYS" default:"7" json:"ttl_days"`
	}

	BackoffConfig struct {
		// BaseDelay is the amount of time to backoff after the first failure.
		BaseDelay time.Duration `envconfig:"BACKOFF_FACTOR" default:"1s" json:"base_delay"`
		// Multiplier is the factor with which to multiply backoffs after a
		// failed retry. Should ideally be greater than 1.
		Multiplier float64 `envconfig:"BACKOFF_MULTIPLIER" default:"2" json:"multiplier"`
		// Jitter is the factor with which backoffs are randomized.
		Jitter float64 `envconfig:"BACKOFF_JITTER" default:"0.2" json:"jitter"`
		// MaxDelay is the upper bound of backoff delay.
		MaxDelay time.Duration `envconfig:"BACKOFF_MAX_DELAY" default:"5s" json:"max_delay"`
	}

	CircuitBreakerConfig struct {
		MaxRequests uint32        `envconfig:"MAX_REQUESTS" default:"3" json:"max_requests"`
		Interval    time.Duration `envconfig:"INTERVAL" default:"10s" json:"interval"`
		Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s" json:"timeout"`
	}
)
