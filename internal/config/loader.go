package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Init builds the service configuration from environment variables. A local
// .env file, when present, seeds the environment first without overriding
// variables that are already set.
func Init() (*ServiceConfig, error) {
	_ = godotenv.Load()

	cfg := &ServiceConfig{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.AppConfig.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.AppConfig.CommitSHA = CommitSHA
	}

	if len(APIVersion) != 0 {
		cfg.AppConfig.APIVersion = APIVersion
	}

	return cfg, nil
}

// Loader reacts to operator signals targeting the running configuration.
type Loader struct {
	cfg              *ServiceConfig
	configSignalChan chan os.Signal
}

func NewLoader(cfg *ServiceConfig) *Loader {
	return &Loader{
		cfg:              cfg,
		configSignalChan: make(chan os.Signal, 1),
	}
}

// WatchConfigSignals monitors for SIGUSR1 and dumps the active configuration
// to stdout when it fires.
func (l *Loader) WatchConfigSignals(ctx context.Context) {
	signal.Notify(l.configSignalChan, syscall.SIGUSR1)

	go func() {
		defer signal.Stop(l.configSignalChan)
		defer close(l.configSignalChan)

		for {
			select {
			case <-ctx.Done():
				return

			case <-l.configSignalChan:
				l.DumpConfig()
			}
		}
	}()
}

// DumpConfig outputs the current configuration to stdout as JSON.
func (l *Loader) DumpConfig() {
	configJSON, err := json.MarshalIndent(l.cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error marshaling config: %v\n", err)

		return
	}

	fmt.Fprintf(os.Stdout, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", string(configJSON))
}
