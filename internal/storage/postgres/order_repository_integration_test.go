package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
)

func createIntegrationUser(t *testing.T, store *Store, id string) domain.User {
	t.Helper()

	user := domain.User{
		ID:        id,
		Name:      "Order Owner",
		Email:     id + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := NewUserRepository(store).Create(user); err != nil {
		t.Fatalf("create owner user: %v", err)
	}
	return user
}

func TestOrderRepository_PostgresCreateAndGet(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	user := createIntegrationUser(t, store, "order-owner-1")

	order := domain.Order{
		ID:         "order-pg-1",
		UserID:     user.ID,
		Amount:     149.90,
		Status:     domain.OrderStatusCreated,
		PaymentRef: "PAY-FAKE-123",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	loaded, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if loaded.UserID != order.UserID {
		t.Fatalf("unexpected user id: %s", loaded.UserID)
	}
	if loaded.Amount != order.Amount {
		t.Fatalf("unexpected amount: %v", loaded.Amount)
	}
	if loaded.Status != domain.OrderStatusCreated {
		t.Fatalf("unexpected status: %s", loaded.Status)
	}
	if loaded.PaymentRef != order.PaymentRef {
		t.Fatalf("unexpected payment ref: %s", loaded.PaymentRef)
	}
}

func TestOrderRepository_PostgresGetMissing(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	if _, err := repo.Get("missing-order"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_PostgresDuplicateID(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	user := createIntegrationUser(t, store, "order-owner-dup")

	order := domain.Order{
		ID:         "order-pg-dup",
		UserID:     user.ID,
		Amount:     10,
		Status:     domain.OrderStatusCreated,
		PaymentRef: "PAY-FAKE-123",
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := repo.Create(order); !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}
}

func TestOrderRepository_PostgresListByUser(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	owner := createIntegrationUser(t, store, "order-owner-list")
	other := createIntegrationUser(t, store, "order-owner-other")

	base := time.Now().UTC().Truncate(time.Microsecond)
	orders := []domain.Order{
		{ID: "order-pg-l1", UserID: owner.ID, Amount: 10, Status: domain.OrderStatusCreated, PaymentRef: "PAY-1", CreatedAt: base},
		{ID: "order-pg-l2", UserID: owner.ID, Amount: 20, Status: domain.OrderStatusCreated, PaymentRef: "PAY-2", CreatedAt: base.Add(time.Second)},
		{ID: "order-pg-l3", UserID: other.ID, Amount: 30, Status: domain.OrderStatusCreated, PaymentRef: "PAY-3", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, o := range orders {
		if err := repo.Create(o); err != nil {
			t.Fatalf("create order %s: %v", o.ID, err)
		}
	}

	listed, err := repo.ListByUser(owner.ID)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(listed))
	}
	// Newest first.
	if listed[0].ID != "order-pg-l2" || listed[1].ID != "order-pg-l1" {
		t.Fatalf("unexpected order: %s, %s", listed[0].ID, listed[1].ID)
	}

	empty, err := repo.ListByUser("unknown-user")
	if err != nil {
		t.Fatalf("list orders for unknown user: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d", len(empty))
	}
}
