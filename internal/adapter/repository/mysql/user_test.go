package mysql

import (
	"context"
	"errors"
	"testing"

	domain "fundraising-backend/internal/domain/user"
	"fundraising-backend/pkg/id"
)

func makeUser(name, phone string, role domain.Role) *domain.User {
	return &domain.User{
		UserID:       id.NewID32(),
		Name:         name,
		Phone:        phone,
		Role:         role,
		Active:       true,
		PasscodeHash: "$2a$04$notarealhashnotarealhashnotare",
	}
}

func TestUser_GetByPhone(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("Pat", "07123456789", domain.RoleRegistrar)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByPhone(ctx, "07123456789")
	if err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	if got.UserID != u.UserID || got.Role != domain.RoleRegistrar {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByPhone(ctx, "07999999999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUser_List_RoleAndActiveFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	admin := makeUser("Ada", "07111111111", domain.RoleAdmin)
	reg := makeUser("Reg", "07222222222", domain.RoleRegistrar)
	gone := makeUser("Gone", "07333333333", domain.RoleRegistrar)
	gone.Active = false
	for _, u := range []*domain.User{admin, reg, gone} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.List(ctx, domain.RoleRegistrar, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Reg" {
		t.Fatalf("active registrars = %+v, want just Reg", got)
	}

	got, err = repo.List(ctx, "", false)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// ordered by name
	if got[0].Name != "Ada" {
		t.Fatalf("order: %+v", got)
	}
}
