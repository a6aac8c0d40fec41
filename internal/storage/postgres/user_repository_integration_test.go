package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
)

func TestUserRepository_PostgresCreateAndFind(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	user := domain.User{
		ID:        "user-pg-1",
		Name:      "Igor",
		Email:     "igor-pg@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if found.Name != user.Name || found.Email != user.Email {
		t.Fatalf("unexpected user loaded: %+v", found)
	}
}

func TestUserRepository_PostgresFindMissing(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	if _, err := repo.FindByID("missing-user"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_PostgresDuplicateEmail(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	first := domain.User{
		ID:        "user-pg-dup-1",
		Name:      "Anna",
		Email:     "dup-pg@example.com",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	second := domain.User{
		ID:        "user-pg-dup-2",
		Name:      "Boris",
		Email:     "dup-pg@example.com",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(second); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_PostgresListOrder(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewUserRepository(store)

	base := time.Now().UTC().Truncate(time.Microsecond)
	users := []domain.User{
		{ID: "user-pg-l1", Name: "First", Email: "first-pg@example.com", CreatedAt: base},
		{ID: "user-pg-l2", Name: "Second", Email: "second-pg@example.com", CreatedAt: base.Add(time.Second)},
		{ID: "user-pg-l3", Name: "Third", Email: "third-pg@example.com", CreatedAt: base.Add(2 * time.Second)},
	}
	for _, u := range users {
		if err := repo.Create(u); err != nil {
			t.Fatalf("create user %s: %v", u.ID, err)
		}
	}

	listed, err := repo.List()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(listed) != len(users) {
		t.Fatalf("expected %d users, got %d", len(users), len(listed))
	}
	for i, u := range users {
		if listed[i].ID != u.ID {
			t.Fatalf("unexpected order at %d: got %s want %s", i, listed[i].ID, u.ID)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be treated as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatal("nil error must not be treated as unique violation")
	}
}
