package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/orderpay/internal/health"
	"github.com/vladislavdragonenkov/orderpay/internal/service/payment"
	"github.com/vladislavdragonenkov/orderpay/internal/storage/memory"
	"github.com/vladislavdragonenkov/orderpay/internal/storage/postgres"
)

// runtimeDependencies содержит хранилище и платёжный шлюз приложения.
type runtimeDependencies struct {
	users   domain.UserRepository
	orders  domain.OrderRepository
	gateway domain.PaymentGateway

	storageChecker healthcheck.Checker
	closeFn        func() error
}

// initRuntimeDependencies выбирает хранилище по конфигу и собирает зависимости.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &runtimeDependencies{}

	switch cfg.StorageDriver {
	case "", StorageDriverMemory:
		deps.users = memory.NewUserRepository()
		deps.orders = memory.NewOrderRepository()
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres storage driver requires a DSN")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
		}
		deps.users = postgres.NewUserRepository(store)
		deps.orders = postgres.NewOrderRepository(store)
		deps.storageChecker = healthcheck.NewPingChecker("postgres", 2*time.Second, store.Ping)
		deps.closeFn = store.Close
		logger.Info("postgres storage initialized")
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}

	// NOTE: Without a gateway URL charges are approved by the built-in mock.
	// Point GatewayURL at a real provider in production.
	if cfg.GatewayURL != "" {
		deps.gateway = payment.NewClient(cfg.GatewayURL, logger.WithField("component", "payment"))
		logger.WithField("gateway_url", cfg.GatewayURL).Info("payment gateway client initialized")
	} else {
		deps.gateway = payment.NewMockGateway()
	}

	return deps, nil
}
