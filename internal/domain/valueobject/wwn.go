package valueobject

import (
	"fmt"
	"strings"

	"github.com/sanops/zonectl/internal/domain"
)

// WWN is a Fibre Channel World Wide Name in canonical Brocade form:
// eight lower-case hex pairs separated by colons, 23 characters total.
type WWN string

const (
	wwnHexDigits = 16
	wwnCanonLen  = 23
)

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
}

// ParseStrict accepts only the canonical Brocade form. Upper-case hex is
// normalized to lower-case; anything else is rejected.
func ParseStrict(s string) (WWN, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != wwnCanonLen {
		return "", fmt.Errorf("%w: %q has length %d, want %d", domain.ErrMalformedWWN, s, len(s), wwnCanonLen)
	}
	for i := 0; i < wwnCanonLen; i++ {
		if (i+1)%3 == 0 {
			if s[i] != ':' {
				return "", fmt.Errorf("%w: %q missing colon at position %d", domain.ErrMalformedWWN, s, i+1)
			}
			continue
		}
		if !isHexDigit(s[i]) {
			return "", fmt.Errorf("%w: %q has non-hex character at position %d", domain.ErrMalformedWWN, s, i+1)
		}
	}
	return WWN(s), nil
}

// ParseLoose extracts hex digits from arbitrary text, ignoring separators and
// other formatting characters, and requires exactly 16 of them. The result is
// returned in canonical form.
func ParseLoose(s string) (WWN, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < 128 && isHexDigit(byte(r)) {
			b.WriteRune(r)
		}
	}
	hex := b.String()
	if len(hex) != wwnHexDigits {
		return "", fmt.Errorf("%w: %q contains %d hex digits, want %d", domain.ErrMalformedWWN, s, len(hex), wwnHexDigits)
	}
	return WWN(joinPairs(hex, ":", 2)), nil
}

func joinPairs(hex, sep string, width int) string {
	var b strings.Builder
	for i := 0; i < len(hex); i += width {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(hex[i : i+width])
	}
	return b.String()
}

// String returns the canonical Brocade form.
func (w WWN) String() string {
	return string(w)
}

// Bare returns the 16 hex digits with no separators.
func (w WWN) Bare() string {
	return strings.ReplaceAll(string(w), ":", "")
}

// BareUpper returns the bare form with upper-case hex.
func (w WWN) BareUpper() string {
	return strings.ToUpper(w.Bare())
}

// VMS returns the OpenVMS rendering: four hyphen-separated quads.
func (w WWN) VMS() string {
	return joinPairs(w.Bare(), "-", 4)
}

func (w WWN) IsZero() bool {
	return w == ""
}
