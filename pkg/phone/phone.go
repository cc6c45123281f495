package phone

import (
	"regexp"
	"strings"
)

var reUKMobile = regexp.MustCompile(`^07\d{9}$`)

// NormalizeUK rewrites a "+44" international prefix to the national leading
// zero and strips everything except digits and '+'. It does not validate;
// pair with IsUKMobile for that.
func NormalizeUK(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if strings.HasPrefix(s, "+44") {
		s = "0" + s[3:]
	}
	return s
}

// IsUKMobile reports whether s is a normalized UK mobile number:
// a leading 0, then 7, then 9 further digits (11 digits total).
func IsUKMobile(s string) bool { return reUKMobile.MatchString(s) }
