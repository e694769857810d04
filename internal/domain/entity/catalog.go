package entity

// Catalog holds the alias, zone and config tables known from previous runs.
// It lets each command run standalone against tables produced earlier in the
// pipeline.
type Catalog struct {
	Aliases []Alias      `yaml:"aliases,omitempty"`
	Zones   []Zone       `yaml:"zones,omitempty"`
	Configs []ZoneConfig `yaml:"configs,omitempty"`
}

func (c *Catalog) GetAliasMap() map[string]*Alias {
	m := make(map[string]*Alias, len(c.Aliases))
	for i := range c.Aliases {
		m[c.Aliases[i].Name] = &c.Aliases[i]
	}
	return m
}

func (c *Catalog) GetZoneMap() map[string]*Zone {
	m := make(map[string]*Zone, len(c.Zones))
	for i := range c.Zones {
		m[c.Zones[i].Name] = &c.Zones[i]
	}
	return m
}

func (c *Catalog) GetConfigMap() map[string]*ZoneConfig {
	m := make(map[string]*ZoneConfig, len(c.Configs))
	for i := range c.Configs {
		m[c.Configs[i].Name] = &c.Configs[i]
	}
	return m
}

// MergeAliases replaces the alias table with a fresh derivation.
func (c *Catalog) MergeAliases(aliases []Alias) {
	c.Aliases = aliases
}

// MergeZones replaces the zone table with a fresh composition.
func (c *Catalog) MergeZones(zones []Zone) {
	c.Zones = zones
}

// MergeConfigs replaces the config table with a fresh assembly.
func (c *Catalog) MergeConfigs(configs []ZoneConfig) {
	c.Configs = configs
}
