package entity

import (
	"github.com/sanops/zonectl/internal/domain"
)

// ZoneConfig is a named set of zones activated together. At most one config
// is effective on the switch at a time; which one is a deployment choice, so
// multiple Active entries are advisory only.
type ZoneConfig struct {
	Name   string   `yaml:"name"`
	Zones  []string `yaml:"zones"`
	Active bool     `yaml:"active,omitempty"`

	Row int `yaml:"-"`
}

func (c *ZoneConfig) Validate() error {
	if err := ValidateObjectName(c.Name); err != nil {
		return err
	}
	if len(c.Zones) == 0 {
		return domain.ErrEmptyConfig
	}
	return nil
}
