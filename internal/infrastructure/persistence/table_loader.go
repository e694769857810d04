package persistence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sanops/zonectl/internal/domain"
	"github.com/sanops/zonectl/internal/domain/entity"
)

func loadEntity[T any](path, yamlKey string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTableReadFailed, err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTableParseFailed, err)
	}

	node, ok := raw[yamlKey]
	if !ok {
		return nil, nil
	}

	var items []T
	if err := node.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTableParseFailed, err)
	}

	return items, nil
}

// LoadZones reads a zone-membership table:
//
//	zones:
//	  - name: zon_web1_fc0_array1
//	    members: [ali_web1_fc0_FA, ali_array1_cA_FA]
//
// Source line numbers are recovered from the YAML nodes for error reporting.
func LoadZones(path string) ([]entity.Zone, error) {
	zones, err := loadEntity[entity.Zone](path, "zones")
	if err != nil {
		return nil, err
	}
	lines, err := entryLines(path, "zones")
	if err == nil {
		for i := range zones {
			if i < len(lines) {
				zones[i].Row = lines[i]
			}
		}
	}
	return zones, nil
}

// LoadConfigs reads a cfg-membership table:
//
//	configs:
//	  - name: cfg_prod
//	    zones: [zon_web1_fc0_array1]
//	    active: true
func LoadConfigs(path string) ([]entity.ZoneConfig, error) {
	configs, err := loadEntity[entity.ZoneConfig](path, "configs")
	if err != nil {
		return nil, err
	}
	lines, err := entryLines(path, "configs")
	if err == nil {
		for i := range configs {
			if i < len(lines) {
				configs[i].Row = lines[i]
			}
		}
	}
	return configs, nil
}

func entryLines(path, yamlKey string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	mapping := doc.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != yamlKey {
			continue
		}
		seq := mapping.Content[i+1]
		lines := make([]int, len(seq.Content))
		for j, item := range seq.Content {
			lines[j] = item.Line
		}
		return lines, nil
	}
	return nil, nil
}
