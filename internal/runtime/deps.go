package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/architeacher/svc-ticket-aggregator/internal/adapters"
	httphandlers "github.com/architeacher/svc-ticket-aggregator/internal/adapters/http/handlers"
	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/notifier"
	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/outbox"
	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/provider"
	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/repos"
	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/scheduler"
	"github.com/architeacher/svc-ticket-aggregator/internal/adapters/seats"
	"github.com/architeacher/svc-ticket-aggregator/internal/config"
	"github.com/architeacher/svc-ticket-aggregator/internal/infrastructure"
	"github.com/architeacher/svc-ticket-aggregator/internal/ports"
	"github.com/architeacher/svc-ticket-aggregator/internal/service"
	"github.com/architeacher/svc-ticket-aggregator/internal/shared/backoff"
)

type (
	DependencyOption func(*Dependencies) error

	InfrastructureDeps struct {
		HTTPServer    *http.Server
		StorageClient *infrastructure.Storage
		Metrics       infrastructure.Metrics
	}

	Repos struct {
		Transactor      ports.Transactor
		EventRepo       ports.EventRepository
		PlaceRepo       ports.PlaceRepository
		TicketRepo      ports.TicketRepository
		OutboxRepo      ports.OutboxRepository
		IdempotencyRepo ports.IdempotencyRepository
		SyncMetaRepo    ports.SyncMetadataRepository
	}

	DomainServices struct {
		ProviderClient ports.ProviderClient
		Notifier       ports.Notifier
		SeatsSource    ports.SeatsSource
		HealthChecker  ports.HealthChecker

		SyncService    *service.SyncService
		TicketService  *service.TicketService
		CatalogService *service.CatalogService
	}

	ApplicationWorkers struct {
		OutboxWorker  ports.BackgroundProcessor
		SyncScheduler ports.BackgroundProcessor
	}

	Dependencies struct {
		cfg          *config.ServiceConfig
		configLoader *config.Loader

		logger infrastructure.Logger

		Infra          InfrastructureDeps
		Repos          Repos
		DomainServices DomainServices
		Workers        ApplicationWorkers
	}
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*Dependencies, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("unable to load service configuration: %w", err)
	}

	appLogger := infrastructure.New(cfg.Logging)

	appLogger.Info().Msg("initializing dependencies...")

	deps := &Dependencies{
		cfg:          cfg,
		configLoader: config.NewLoader(cfg),
		logger:       appLogger,
	}

	options := append(defaultOptions(ctx), opts...)

	for _, opt := range options {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	deps.logger.Info().Msg("dependencies initialized successfully")

	return deps, nil
}

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithMetrics(ctx),
		WithStorage(ctx),
		WithDataRepos(),
		WithDomainServices(),
		WithWorkers(),
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		metrics, err := infrastructure.NewMetrics(ctx, *d.cfg, d.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		d.Infra.Metrics = metrics

		return nil
	}
}

func WithStorage(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		storage, err := infrastructure.NewStorage(ctx, d.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		d.Infra.StorageClient = storage

		return nil
	}
}

func WithDataRepos() DependencyOption {
	return func(d *Dependencies) error {
		db := d.Infra.StorageClient.DB

		d.Repos = Repos{
			Transactor:      repos.NewTransactor(db),
			EventRepo:       repos.NewEventRepository(db),
			PlaceRepo:       repos.NewPlaceRepository(db),
			TicketRepo:      repos.NewTicketRepository(db),
			OutboxRepo:      repos.NewOutboxRepository(db),
			IdempotencyRepo: repos.NewIdempotencyRepository(db),
			SyncMetaRepo:    repos.NewSyncMetadataRepository(db),
		}

		return nil
	}
}

func WithDomainServices() DependencyOption {
	return func(d *Dependencies) error {
		strategy := backoff.NewExponentialStrategy(d.cfg.Backoff)

		providerClient := provider.NewClient(d.cfg.Provider, strategy, d.Infra.Metrics, d.logger)
		d.DomainServices.ProviderClient = providerClient
		d.DomainServices.Notifier = notifier.NewCapashinoClient(d.cfg.Notifier, d.logger)
		d.DomainServices.SeatsSource = seats.NewCache(d.cfg.SeatsCache, providerClient)
		d.DomainServices.HealthChecker = adapters.NewHealthChecker(d.Infra.StorageClient, providerClient, d.cfg.AppConfig)

		d.DomainServices.SyncService = service.NewSyncService(
			providerClient,
			d.Repos.Transactor,
			d.Repos.EventRepo,
			d.Repos.PlaceRepo,
			d.Repos.SyncMetaRepo,
			d.Infra.Metrics,
			d.logger,
			d.cfg.Sync,
		)

		d.DomainServices.TicketService = service.NewTicketService(
			providerClient,
			d.DomainServices.SyncService,
			d.DomainServices.SeatsSource,
			d.Repos.Transactor,
			d.Repos.EventRepo,
			d.Repos.TicketRepo,
			d.Repos.OutboxRepo,
			d.Repos.IdempotencyRepo,
			d.Infra.Metrics,
			d.logger,
			d.cfg.Idempotency,
		)

		d.DomainServices.CatalogService = service.NewCatalogService(
			d.Repos.EventRepo,
			d.DomainServices.SeatsSource,
		)

		return nil
	}
}

func WithWorkers() DependencyOption {
	return func(d *Dependencies) error {
		d.Workers.OutboxWorker = outbox.NewWorker(
			d.Repos.Transactor,
			d.Repos.OutboxRepo,
			d.Repos.IdempotencyRepo,
			d.DomainServices.Notifier,
			d.Infra.Metrics,
			d.logger,
			d.cfg.Outbox,
			d.cfg.Idempotency,
		)

		d.Workers.SyncScheduler = scheduler.NewScheduler(
			d.DomainServices.SyncService,
			d.logger,
			d.cfg.Sync,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *Dependencies) error {
		d.logger.Info().Msg("creating HTTP server...")

		reqHandler := httphandlers.NewRequestHandler(
			d.DomainServices.CatalogService,
			d.DomainServices.TicketService,
			d.DomainServices.SyncService,
			d.DomainServices.HealthChecker,
			d.logger,
		)

		router := httphandlers.NewRouter(reqHandler, d.logger, d.Infra.Metrics)

		d.Infra.HTTPServer = &http.Server{
			Addr:         net.JoinHostPort(d.cfg.HTTPServer.Host, fmt.Sprintf("%d", d.cfg.HTTPServer.Port)),
			Handler:      router,
			ReadTimeout:  d.cfg.HTTPServer.ReadTimeout,
			WriteTimeout: d.cfg.HTTPServer.WriteTimeout,
			IdleTimeout:  d.cfg.HTTPServer.IdleTimeout,
		}

		return nil
	}
}
