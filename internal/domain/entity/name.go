package entity

import (
	"fmt"

	"github.com/sanops/zonectl/internal/domain"
)

// Brocade zoning object names (aliases, zones, cfgs) share one rule set:
// first character a letter, the rest letters, digits, underscore or hyphen,
// at most 64 characters.
const maxObjectNameLen = 64

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9') || b == '_' || b == '-'
}

func ValidateObjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidName)
	}
	if len(name) > maxObjectNameLen {
		return fmt.Errorf("%w: %q exceeds %d characters", domain.ErrInvalidName, name, maxObjectNameLen)
	}
	if !isAlpha(name[0]) {
		return fmt.Errorf("%w: %q must start with a letter", domain.ErrInvalidName, name)
	}
	for i := 1; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return fmt.Errorf("%w: %q contains invalid character %q", domain.ErrInvalidName, name, name[i])
		}
	}
	return nil
}
