package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sanops/zonectl/internal/domain/entity"
)

// Artifact is one generated script, held in memory until the whole plan is
// written.
type Artifact struct {
	Name    string
	Content string
}

// Plan is the full set of artifacts for a run plus the derived tables that
// back them, so the catalog can be updated alongside the scripts.
type Plan struct {
	Artifacts []Artifact

	Aliases []entity.Alias
	Zones   []entity.Zone
	Configs []entity.ZoneConfig
}

// Write materializes every artifact under dir. The directory is created if
// missing; existing files of the same names are replaced.
func (p *Plan) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	for _, a := range p.Artifacts {
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
