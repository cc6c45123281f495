package phone

import "testing"

func TestNormalizeUK_RewritesPlus44ToLeadingZero(t *testing.T) {
	cases := map[string]string{
		"+447911223344":    "07911223344",
		"+44 7911 223344":  "07911223344",
		"+44-7911-223-344": "07911223344",
	}
	for in, want := range cases {
		if got := NormalizeUK(in); got != want {
			t.Fatalf("NormalizeUK(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeUK_StripsEverythingButDigitsAndPlus(t *testing.T) {
	cases := map[string]string{
		"07911 223 344": "07911223344",
		"(07911)223344": "07911223344",
		"07911-223344":  "07911223344",
		" 07911223344 ": "07911223344",
		"o7911223344":   "7911223344", // letters dropped
		"+17911223344":  "+17911223344",
		"":              "",
	}
	for in, want := range cases {
		if got := NormalizeUK(in); got != want {
			t.Fatalf("NormalizeUK(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsUKMobile(t *testing.T) {
	valid := []string{"07911223344", "07000000000"}
	for _, s := range valid {
		if !IsUKMobile(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	invalid := []string{
		"",
		"0791122334",    // 10 digits
		"079112233445",  // 12 digits
		"08911223344",   // not 07
		"+447911223344", // not normalized
		"07911a23344",
	}
	for _, s := range invalid {
		if IsUKMobile(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
