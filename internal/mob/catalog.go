package mob

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/validation"
)

// SchemaID identifies the embedded catalog schema in the validator
const SchemaID = "mob-catalog.schema.json"

//go:embed schema.json
var schemaJSON []byte

// file is the on-disk layout of the catalog
type file struct {
	Version string       `yaml:"version"`
	Mobs    []domain.Mob `yaml:"mobs"`
}

// Catalog is the read-only set of mobs attack works can target
type Catalog struct {
	version string
	byID    map[string]domain.Mob
	sorted  []domain.Mob
}

// Load reads and validates a YAML catalog from path
func Load(path string, v validation.SchemaValidator) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mob catalog %s: %w", path, err)
	}
	return Parse(data, v)
}

// Parse validates raw YAML against the catalog schema and indexes the mobs
func Parse(data []byte, v validation.SchemaValidator) (*Catalog, error) {
	if err := v.Register(SchemaID, schemaJSON); err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse mob catalog: %w", err)
	}
	if err := v.Validate(SchemaID, doc); err != nil {
		return nil, fmt.Errorf("invalid mob catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode mob catalog: %w", err)
	}

	c := &Catalog{
		version: f.Version,
		byID:    make(map[string]domain.Mob, len(f.Mobs)),
		sorted:  make([]domain.Mob, 0, len(f.Mobs)),
	}
	for _, m := range f.Mobs {
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("invalid mob catalog: duplicate id %q", m.ID)
		}
		c.byID[m.ID] = m
		c.sorted = append(c.sorted, m)
	}
	sort.SliceStable(c.sorted, func(i, j int) bool {
		if c.sorted[i].Level != c.sorted[j].Level {
			return c.sorted[i].Level < c.sorted[j].Level
		}
		return c.sorted[i].ID < c.sorted[j].ID
	})

	return c, nil
}

// Get returns the mob with the given id
func (c *Catalog) Get(id string) (domain.Mob, error) {
	m, ok := c.byID[id]
	if !ok {
		return domain.Mob{}, fmt.Errorf("%w: %s", domain.ErrMobNotFound, id)
	}
	return m, nil
}

// List returns every mob ordered by level
func (c *Catalog) List() []domain.Mob {
	out := make([]domain.Mob, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// Version is the catalog's declared version
func (c *Catalog) Version() string {
	return c.version
}
