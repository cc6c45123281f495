package mysql

import (
	"context"
	"errors"
	"testing"

	domain "fundraising-backend/internal/domain/church"
	"fundraising-backend/pkg/id"
)

func makeChurch(name, city string) *domain.Church {
	return &domain.Church{
		ChurchID: id.NewID32(),
		Name:     name,
		City:     city,
		IsActive: true,
	}
}

func TestChurch_CreateGetList(t *testing.T) {
	db := openTestDB(t)
	repo := NewChurchRepository(db)
	ctx := context.Background()

	st := makeChurch("St Andrew", "Leeds")
	holy := makeChurch("Holy Trinity", "York")
	holy.IsActive = false
	for _, c := range []*domain.Church{st, holy} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByChurchID(ctx, st.ChurchID)
	if err != nil {
		t.Fatalf("GetByChurchID: %v", err)
	}
	if got.City != "Leeds" {
		t.Errorf("unexpected church: %+v", got)
	}

	if _, err := repo.GetByChurchID(ctx, id.NewID32()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// city search
	list, total, err := repo.List(ctx, domain.ListFilter{Search: "York"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || list[0].Name != "Holy Trinity" {
		t.Fatalf("search: total=%d list=%+v", total, list)
	}

	// active-only skips the deactivated row
	_, total, err = repo.List(ctx, domain.ListFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if total != 1 {
		t.Fatalf("active total = %d, want 1", total)
	}
}

func TestChurch_Delete(t *testing.T) {
	db := openTestDB(t)
	repo := NewChurchRepository(db)
	ctx := context.Background()

	c := makeChurch("St Andrew", "Leeds")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByChurchID(ctx, c.ChurchID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func makeRep(churchID uint64, name string, primary bool) *domain.Representative {
	return &domain.Representative{
		RepID:     id.NewID32(),
		ChurchID:  churchID,
		Name:      name,
		IsPrimary: primary,
		IsActive:  true,
	}
}

func TestRepresentative_ListByChurch_PrimaryFirst(t *testing.T) {
	db := openTestDB(t)
	churches := NewChurchRepository(db)
	reps := NewRepresentativeRepository(db)
	ctx := context.Background()

	c := makeChurch("St Andrew", "Leeds")
	if err := churches.Create(ctx, c); err != nil {
		t.Fatalf("Create church: %v", err)
	}

	alice := makeRep(c.ID, "Alice", false)
	zed := makeRep(c.ID, "Zed", true)
	retired := makeRep(c.ID, "Retired", false)
	retired.IsActive = false
	for _, rep := range []*domain.Representative{alice, zed, retired} {
		if err := reps.Create(ctx, rep); err != nil {
			t.Fatalf("Create rep: %v", err)
		}
	}

	got, err := reps.ListByChurch(ctx, c.ID, true)
	if err != nil {
		t.Fatalf("ListByChurch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (inactive excluded)", len(got))
	}
	if got[0].Name != "Zed" {
		t.Fatalf("primary should sort first, got %+v", got)
	}

	got, err = reps.ListByChurch(ctx, c.ID, false)
	if err != nil {
		t.Fatalf("ListByChurch all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestRepresentative_ActivePrimary(t *testing.T) {
	db := openTestDB(t)
	churches := NewChurchRepository(db)
	reps := NewRepresentativeRepository(db)
	ctx := context.Background()

	c := makeChurch("St Andrew", "Leeds")
	if err := churches.Create(ctx, c); err != nil {
		t.Fatalf("Create church: %v", err)
	}

	// slot free
	if _, err := reps.ActivePrimary(ctx, c.ID); !errors.Is(err, domain.ErrRepNotFound) {
		t.Fatalf("want ErrRepNotFound for free slot, got %v", err)
	}

	// a deactivated primary leaves the slot free
	old := makeRep(c.ID, "Old Primary", true)
	old.IsActive = false
	if err := reps.Create(ctx, old); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := reps.ActivePrimary(ctx, c.ID); !errors.Is(err, domain.ErrRepNotFound) {
		t.Fatalf("inactive primary should not hold the slot, got %v", err)
	}

	current := makeRep(c.ID, "Current", true)
	if err := reps.Create(ctx, current); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := reps.ActivePrimary(ctx, c.ID)
	if err != nil {
		t.Fatalf("ActivePrimary: %v", err)
	}
	if got.RepID != current.RepID {
		t.Fatalf("primary = %s, want %s", got.RepID, current.RepID)
	}
}
