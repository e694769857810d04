package entity

import (
	"github.com/sanops/zonectl/internal/domain"
	"github.com/sanops/zonectl/internal/domain/valueobject"
)

// Alias binds a friendly name to a single WWN. Alias names live in one
// switch-wide namespace shared with nothing else, but must not collide with
// each other.
type Alias struct {
	Name string          `yaml:"name"`
	WWN  valueobject.WWN `yaml:"wwn"`

	Row int `yaml:"-"`
}

func (a *Alias) Validate() error {
	if err := ValidateObjectName(a.Name); err != nil {
		return err
	}
	if a.WWN.IsZero() {
		return domain.RequiredField("wwn")
	}
	return nil
}
