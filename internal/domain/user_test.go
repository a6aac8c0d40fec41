package domain_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
)

func makeUser() domain.User {
	return domain.User{
		ID:        "user-1",
		Name:      "Igor",
		Email:     "igor@example.com",
		CreatedAt: time.Now().UTC(),
	}
}

func TestUserValidate_Ok(t *testing.T) {
	user := makeUser()
	if errs := user.Validate(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestUserValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(u *domain.User)
	}{
		{
			name: "no name",
			mut: func(u *domain.User) {
				u.Name = ""
			},
		},
		{
			name: "no email",
			mut: func(u *domain.User) {
				u.Email = ""
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := makeUser()
			tc.mut(&user)

			if len(user.Validate()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}
