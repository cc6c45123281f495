package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		DonorID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{DonorID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{DonorID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "DonorID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestUKMobileValidation(t *testing.T) {
	type P struct {
		Phone string `validate:"ukmobile"`
	}
	cv := NewValidator()

	for _, v := range []string{
		"07123456789",
		"+447123456789", // normalized to 07...
		"07123 456 789", // spacing stripped
	} {
		if err := cv.Validate(P{Phone: v}); err != nil {
			t.Fatalf("expected ukmobile OK for %q, got %v", v, err)
		}
	}
	for _, v := range []string{"", "0712345678", "071234567890", "02071234567", "notaphone"} {
		err := cv.Validate(P{Phone: v})
		if err == nil {
			t.Fatalf("expected ukmobile error for %q", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Phone", "UK mobile") {
			t.Fatalf("expected UK mobile message for %q, got %+v", v, fe)
		}
	}
}

func TestPasscodeValidation(t *testing.T) {
	type P struct {
		Passcode string `validate:"passcode"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Passcode: "123456"}); err != nil {
		t.Fatalf("expected passcode OK, got %v", err)
	}
	for _, v := range []string{"", "12345", "1234567", "12a456", "12 456"} {
		err := cv.Validate(P{Passcode: v})
		if err == nil {
			t.Fatalf("expected passcode error for %q", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Passcode", "exactly 6 digits") {
			t.Fatalf("expected passcode message for %q, got %+v", v, fe)
		}
	}
}

func TestTombolaValidation(t *testing.T) {
	type P struct {
		Code string `validate:"tombola"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Code: "0042"}); err != nil {
		t.Fatalf("expected tombola OK, got %v", err)
	}
	for _, v := range []string{"", "123", "12345", "12a4"} {
		err := cv.Validate(P{Code: v})
		if err == nil {
			t.Fatalf("expected tombola error for %q", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Code", "4-digit code") {
			t.Fatalf("expected tombola message for %q, got %+v", v, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{125.00, 250.5, 0.9, 1.2} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string  `validate:"required"`
		Min    int     `validate:"gte=10"`
		Max    int     `validate:"lte=5"`
		Amount float64 `validate:"dec2,gte=0.01"`
		Role   string  `validate:"oneof=admin registrar"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name:   "",      // required
		Min:    9,       // gte=10
		Max:    6,       // lte=5
		Amount: 1.333,   // dec2 triggers first
		Role:   "donor", // oneof
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Amount: %+v", fe)
	}
	if !containsFieldMsg(fe, "Role", "one of: admin registrar") {
		t.Fatalf("missing oneof message for Role: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
