package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "fundraising-backend/internal/domain/pledge"
	"fundraising-backend/pkg/id"
)

func makePledge(pledgeID, phone string, status domain.Status, amount float64) *domain.Pledge {
	return &domain.Pledge{
		PledgeID:   pledgeID,
		DonorName:  "Mary Jones",
		DonorPhone: phone,
		Amount:     amount,
		Status:     status,
		Type:       "pledge",
		Notes:      "1234",
		PackageID:  "1",
		ClientUUID: id.NewClientUUID(),
	}
}

func TestPledge_CreateAndGetByPledgeID(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)
	ctx := context.Background()

	pledgeID := id.NewID32()
	p := makePledge(pledgeID, "07123456789", domain.StatusPending, 500)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByPledgeID(ctx, pledgeID)
	if err != nil {
		t.Fatalf("GetByPledgeID: %v", err)
	}
	if got.PledgeID != pledgeID || got.DonorPhone != "07123456789" || got.Amount != 500 {
		t.Errorf("unexpected pledge: %+v", got)
	}
}

func TestPledge_GetByPledgeID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)

	_, err := repo.GetByPledgeID(context.Background(), id.NewID32())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPledge_ExistsByClientUUID(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)
	ctx := context.Background()

	p := makePledge(id.NewID32(), "07123456789", domain.StatusPending, 500)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	used, err := repo.ExistsByClientUUID(ctx, p.ClientUUID)
	if err != nil {
		t.Fatalf("ExistsByClientUUID: %v", err)
	}
	if !used {
		t.Fatalf("expected used=true for stored client uuid")
	}

	used, err = repo.ExistsByClientUUID(ctx, id.NewClientUUID())
	if err != nil {
		t.Fatalf("ExistsByClientUUID fresh: %v", err)
	}
	if used {
		t.Fatalf("expected used=false for fresh uuid")
	}
}

func TestPledge_ExistsActiveByPhone(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)
	ctx := context.Background()

	// rejected rows don't count as active
	if err := repo.Create(ctx, makePledge(id.NewID32(), "07111111111", domain.StatusRejected, 250)); err != nil {
		t.Fatalf("Create rejected: %v", err)
	}
	active, err := repo.ExistsActiveByPhone(ctx, "07111111111")
	if err != nil {
		t.Fatalf("ExistsActiveByPhone: %v", err)
	}
	if active {
		t.Fatalf("rejected pledge should not be active")
	}

	// pending counts
	if err := repo.Create(ctx, makePledge(id.NewID32(), "07111111111", domain.StatusPending, 250)); err != nil {
		t.Fatalf("Create pending: %v", err)
	}
	active, err = repo.ExistsActiveByPhone(ctx, "07111111111")
	if err != nil {
		t.Fatalf("ExistsActiveByPhone: %v", err)
	}
	if !active {
		t.Fatalf("pending pledge should be active")
	}
}

func TestPledge_SumAndLatestApprovedByPhone(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)
	ctx := context.Background()

	phone := "07222222222"
	first := makePledge(id.NewID32(), phone, domain.StatusApproved, 500)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := makePledge(id.NewID32(), phone, domain.StatusApproved, 250)
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// pending is excluded from both queries
	if err := repo.Create(ctx, makePledge(id.NewID32(), phone, domain.StatusPending, 125)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sum, err := repo.SumApprovedByPhone(ctx, phone)
	if err != nil {
		t.Fatalf("SumApprovedByPhone: %v", err)
	}
	if sum != 750 {
		t.Fatalf("sum = %v, want 750", sum)
	}

	latest, err := repo.LatestApprovedByPhone(ctx, phone)
	if err != nil {
		t.Fatalf("LatestApprovedByPhone: %v", err)
	}
	if latest.PledgeID != second.PledgeID {
		t.Fatalf("latest = %s, want %s", latest.PledgeID, second.PledgeID)
	}

	// no approved rows for an unknown phone
	if _, err := repo.LatestApprovedByPhone(ctx, "07999999999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	sum, err = repo.SumApprovedByPhone(ctx, "07999999999")
	if err != nil || sum != 0 {
		t.Fatalf("empty sum = %v err=%v, want 0", sum, err)
	}
}

func TestPledge_StatsForUserOn(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)
	ctx := context.Background()

	p1 := makePledge(id.NewID32(), "07333333333", domain.StatusPending, 500)
	p1.CreatedByUserID = 9
	if err := repo.Create(ctx, p1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	p2 := makePledge(id.NewID32(), "07444444444", domain.StatusPending, 250)
	p2.CreatedByUserID = 9
	if err := repo.Create(ctx, p2); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := makePledge(id.NewID32(), "07555555555", domain.StatusPending, 125)
	other.CreatedByUserID = 4
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	st, err := repo.StatsForUserOn(ctx, 9, time.Now())
	if err != nil {
		t.Fatalf("StatsForUserOn: %v", err)
	}
	if st.Count != 2 || st.Sum != 750 {
		t.Fatalf("stats = %+v, want count=2 sum=750", st)
	}

	// nothing for yesterday
	st, err = repo.StatsForUserOn(ctx, 9, time.Now().AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("StatsForUserOn yesterday: %v", err)
	}
	if st.Count != 0 || st.Sum != 0 {
		t.Fatalf("yesterday stats = %+v, want zeros", st)
	}
}

func TestPledge_StatsByUserBetween(t *testing.T) {
	db := openTestDB(t)
	repo := NewPledgeRepository(db)
	ctx := context.Background()

	for i, uid := range []uint64{9, 9, 4} {
		p := makePledge(id.NewID32(), "07333333333", domain.StatusPending, float64(100*(i+1)))
		p.CreatedByUserID = uid
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	got, err := repo.StatsByUserBetween(ctx, from, to)
	if err != nil {
		t.Fatalf("StatsByUserBetween: %v", err)
	}
	if got[9].Count != 2 || got[9].Sum != 300 {
		t.Fatalf("user 9 stats = %+v", got[9])
	}
	if got[4].Count != 1 || got[4].Sum != 300 {
		t.Fatalf("user 4 stats = %+v", got[4])
	}
}
