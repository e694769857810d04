// Package state persists the alias/zone/config catalog between runs so the
// zone and cfg commands can validate against tables produced by an earlier
// alias or generate run.
package state

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/sanops/zonectl/internal/domain"
	"github.com/sanops/zonectl/internal/domain/entity"
)

type CatalogStore struct {
	path  string
	flock *flock.Flock
}

func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

func (s *CatalogStore) Path() string {
	return s.path
}

// Load returns the persisted catalog, or an empty one when the file does not
// exist yet.
func (s *CatalogStore) Load() (*entity.Catalog, error) {
	if err := s.flock.Lock(); err != nil {
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	defer s.flock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &entity.Catalog{}, nil
		}
		return nil, fmt.Errorf("reading catalog %s: %w", s.path, domain.ErrCatalogReadFailed)
	}

	var catalog entity.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", s.path, domain.ErrCatalogReadFailed)
	}

	return &catalog, nil
}

// Save writes the catalog atomically: full marshal, temp file, rename.
func (s *CatalogStore) Save(catalog *entity.Catalog) error {
	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer s.flock.Unlock()

	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("serializing catalog: %w", domain.ErrCatalogWriteFailed)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", tmp, domain.ErrCatalogWriteFailed)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing catalog %s: %w", s.path, domain.ErrCatalogWriteFailed)
	}

	return nil
}
