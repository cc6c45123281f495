package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundraising-backend/internal/usecase/assignment"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newWizardStore(t *testing.T, ttl time.Duration) (*WizardStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewWizardStore(rdb, ttl), mr
}

func TestWizardStore_PutGetRoundtrip(t *testing.T) {
	store, _ := newWizardStore(t, time.Hour)
	ctx := context.Background()

	sess := &assignment.Session{
		Token:           "tok-123",
		State:           assignment.StateChurchChosen,
		DonorID:         "abcdefabcdefabcdefabcdefabcdef12",
		ChurchID:        "11112222333344445555666677778888",
		StartedByUserID: 7,
		CreatedAt:       time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "tok-123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.State != assignment.StateChurchChosen || got.DonorID != sess.DonorID || got.ChurchID != sess.ChurchID {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.StartedByUserID != 7 {
		t.Errorf("StartedByUserID = %d, want 7", got.StartedByUserID)
	}
}

func TestWizardStore_UnknownTokenNotFound(t *testing.T) {
	store, _ := newWizardStore(t, time.Hour)

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, assignment.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestWizardStore_ExpiryReadsAsNotFound(t *testing.T) {
	store, mr := newWizardStore(t, time.Minute)
	ctx := context.Background()

	sess := &assignment.Session{Token: "tok-exp", State: assignment.StateSearchingDonor}
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("Put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "tok-exp"); !errors.Is(err, assignment.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound after expiry, got %v", err)
	}
}

func TestWizardStore_DeleteRemovesSession(t *testing.T) {
	store, _ := newWizardStore(t, time.Hour)
	ctx := context.Background()

	sess := &assignment.Session{Token: "tok-del", State: assignment.StateConfirmed}
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "tok-del"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "tok-del"); !errors.Is(err, assignment.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound after delete, got %v", err)
	}
}
