package catalog

import "errors"

var (
	ErrUnknownPackage = errors.New("please select a valid package")
	// ErrInvalidCustomAmount matches the message surfaced on the form.
	ErrInvalidCustomAmount = errors.New("please select a valid amount greater than zero")
)

// PackageCustom is the selector for donor-chosen amounts.
const PackageCustom = "custom"

type Package struct {
	ID    string
	Label string
	Price float64
}

// Static grid-square catalog; read-only reference data.
var packages = map[string]Package{
	"1":    {ID: "1", Label: "1 m²", Price: 500.00},
	"0.5":  {ID: "0.5", Label: "1/2 m²", Price: 250.00},
	"0.25": {ID: "0.25", Label: "1/4 m²", Price: 125.00},
}

// Resolve maps a package selection to the donation amount. For
// PackageCustom the caller's customAmount is used and must be positive.
func Resolve(packID string, customAmount float64) (Package, float64, error) {
	if packID == PackageCustom {
		if customAmount <= 0 {
			return Package{}, 0, ErrInvalidCustomAmount
		}
		return Package{ID: PackageCustom, Label: "Custom"}, customAmount, nil
	}
	p, ok := packages[packID]
	if !ok {
		return Package{}, 0, ErrUnknownPackage
	}
	return p, p.Price, nil
}

// All returns the fixed packages in display order.
func All() []Package {
	return []Package{packages["1"], packages["0.5"], packages["0.25"]}
}
