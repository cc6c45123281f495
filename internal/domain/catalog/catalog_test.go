package catalog

import (
	"errors"
	"testing"
)

func TestResolve_FixedPackages(t *testing.T) {
	cases := []struct {
		packID string
		want   float64
	}{
		{"1", 500.00},
		{"0.5", 250.00},
		{"0.25", 125.00},
	}
	for _, tc := range cases {
		p, amount, err := Resolve(tc.packID, 0)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.packID, err)
		}
		if amount != tc.want || p.Price != tc.want {
			t.Errorf("Resolve(%q) amount = %v, want %v", tc.packID, amount, tc.want)
		}
	}
}

func TestResolve_Custom(t *testing.T) {
	p, amount, err := Resolve(PackageCustom, 75.50)
	if err != nil {
		t.Fatalf("Resolve custom: %v", err)
	}
	if amount != 75.50 || p.ID != PackageCustom {
		t.Errorf("got %v / %+v", amount, p)
	}

	if _, _, err := Resolve(PackageCustom, 0); !errors.Is(err, ErrInvalidCustomAmount) {
		t.Fatalf("zero custom amount: want ErrInvalidCustomAmount, got %v", err)
	}
	if _, _, err := Resolve(PackageCustom, -3); !errors.Is(err, ErrInvalidCustomAmount) {
		t.Fatalf("negative custom amount: want ErrInvalidCustomAmount, got %v", err)
	}
}

func TestResolve_UnknownPackage(t *testing.T) {
	if _, _, err := Resolve("2", 0); !errors.Is(err, ErrUnknownPackage) {
		t.Fatalf("want ErrUnknownPackage, got %v", err)
	}
}

func TestAll_Order(t *testing.T) {
	got := All()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "0.5" || got[2].ID != "0.25" {
		t.Errorf("order: %+v", got)
	}
}
