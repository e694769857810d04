package entity

import (
	"github.com/sanops/zonectl/internal/domain"
)

// Zone is a named set of aliases allowed to communicate. Member order is
// preserved from the input so emitted scripts are reproducible.
type Zone struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`

	Row int `yaml:"-"`
}

func (z *Zone) Validate() error {
	if err := ValidateObjectName(z.Name); err != nil {
		return err
	}
	if len(z.Members) == 0 {
		return domain.ErrEmptyZone
	}
	return nil
}
