package adapters

import (
	"context"
	"time"

	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/domain"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
)

const dependencyCheckTimeout = 5 * time.Second

// HealthChecker probes the database and the events provider.
type HealthChecker struct {
	storage  *infrastructure.Storage
	provider ports.ProviderClient
	version  string
}

func NewHealthChecker(storage *infrastructure.Storage, provider ports.ProviderClient, appCfg config.AppConfig) ports.HealthChecker {
	return &HealthChecker{
		storage:  storage,
		provider: provider,
		version:  appCfg.ServiceVersion,
	}
}

// CheckHealth reports fault as soon as any dependency is unreachable.
func (h *HealthChecker) CheckHealth(ctx context.Context) domain.HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, dependencyCheckTimeout)
	defer cancel()

	storageStatus := domain.ProviderStatusOK
	if err := h.storage.Ping(checkCtx); err != nil {
		storageStatus = domain.ProviderStatusFault
	}

	providerStatus := domain.ProviderStatusOK
	if err := h.provider.CheckAvailability(checkCtx); err != nil {
		providerStatus = domain.ProviderStatusFault
	}

	overall := domain.ProviderStatusOK
	if storageStatus == domain.ProviderStatusFault || providerStatus == domain.ProviderStatusFault {
		overall = domain.ProviderStatusFault
	}

	return domain.HealthStatus{
		Status:  overall,
		Version: h.version,
		Dependencies: map[string]domain.ProviderStatus{
			"storage":  storageStatus,
			"provider": providerStatus,
		},
	}
}
