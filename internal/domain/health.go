package domain

import (
	"time"
)

type (
	// HealthStatus aggregates the service check with its dependencies.
	HealthStatus struct {
		Status       ProviderStatus            `json:"status"`
		Version      string                    `json:"version"`
		Dependencies map[string]ProviderStatus `json:"dependencies"`
	}

	// SyncResult summarizes one catalogue pull.
	SyncResult struct {
		Processed     int
		Skipped       int
		LastChangedAt *time.Time
	}
)
