package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	"github.com/vladislavdragonenkov/orderpay/internal/storage/memory"
)

func newUser(id, email string) domain.User {
	return domain.User{
		ID:        id,
		Name:      "Igor",
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUserRepository_CreateFind(t *testing.T) {
	repo := memory.NewUserRepository()
	user := newUser("user-1", "igor@example.com")

	if err := repo.Create(user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Email != user.Email {
		t.Fatalf("expected email %s, got %s", user.Email, stored.Email)
	}
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := memory.NewUserRepository()

	if _, err := repo.FindByID("absent"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_EmailTaken(t *testing.T) {
	repo := memory.NewUserRepository()
	if err := repo.Create(newUser("user-1", "igor@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := repo.Create(newUser("user-2", "igor@example.com"))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_EmailCaseSensitive(t *testing.T) {
	repo := memory.NewUserRepository()
	if err := repo.Create(newUser("user-1", "igor@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Email хранится как прислал клиент, без нормализации регистра.
	if err := repo.Create(newUser("user-2", "Igor@example.com")); err != nil {
		t.Fatalf("expected different-case email to be accepted, got %v", err)
	}
}

func TestUserRepository_ListOrder(t *testing.T) {
	repo := memory.NewUserRepository()
	first := newUser("user-1", "a@example.com")
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	second := newUser("user-2", "b@example.com")

	if err := repo.Create(second); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	users, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "user-1" {
		t.Fatalf("expected oldest user first, got %s", users[0].ID)
	}
}
