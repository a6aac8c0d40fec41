package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/service/payment"
)

func TestInitRuntimeDependencies_Memory(t *testing.T) {
	t.Parallel()

	deps, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverMemory,
	}, log.WithField("test", "memory-storage"))
	if err != nil {
		t.Fatalf("initRuntimeDependencies(memory) failed: %v", err)
	}
	if deps.users == nil {
		t.Fatal("users repo should not be nil for memory storage")
	}
	if deps.orders == nil {
		t.Fatal("orders repo should not be nil for memory storage")
	}
	if deps.gateway == nil {
		t.Fatal("gateway should not be nil")
	}
	if deps.storageChecker != nil {
		t.Fatal("memory storage should not register a checker")
	}
	if deps.closeFn != nil {
		t.Fatal("memory storage should not need a close func")
	}
}

func TestInitRuntimeDependencies_EmptyDriverDefaultsToMemory(t *testing.T) {
	t.Parallel()

	deps, err := initRuntimeDependencies(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("initRuntimeDependencies(empty driver) failed: %v", err)
	}
	if deps.users == nil || deps.orders == nil {
		t.Fatal("repositories should be initialized for empty driver")
	}
}

func TestInitRuntimeDependencies_PostgresRequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverPostgres,
	}, log.WithField("test", "postgres-missing-dsn"))
	if err == nil {
		t.Fatal("expected error when postgres driver is selected without DSN")
	}
}

func TestInitRuntimeDependencies_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: "sqlite",
	}, log.WithField("test", "unsupported-driver"))
	if err == nil {
		t.Fatal("expected error for unsupported storage driver")
	}
}

func TestInitRuntimeDependencies_GatewaySelection(t *testing.T) {
	t.Parallel()

	logger := log.WithField("test", "gateway-selection")

	deps, err := initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverMemory,
	}, logger)
	if err != nil {
		t.Fatalf("initRuntimeDependencies failed: %v", err)
	}
	if _, ok := deps.gateway.(*payment.MockGateway); !ok {
		t.Fatalf("expected mock gateway without GatewayURL, got %T", deps.gateway)
	}

	deps, err = initRuntimeDependencies(context.Background(), Config{
		StorageDriver: StorageDriverMemory,
		GatewayURL:    "http://payments.local",
	}, logger)
	if err != nil {
		t.Fatalf("initRuntimeDependencies failed: %v", err)
	}
	if _, ok := deps.gateway.(*payment.Client); !ok {
		t.Fatalf("expected HTTP gateway client with GatewayURL, got %T", deps.gateway)
	}
}
