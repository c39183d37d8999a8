// Package loader builds a tree from a seed document.
package loader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/N3moAhead/familytree/internal/db"
	"github.com/N3moAhead/familytree/internal/family"
	"github.com/N3moAhead/familytree/internal/person"
	"github.com/N3moAhead/familytree/internal/tree"
)

// Load registers the families of d in order. Sons are added before
// daughters, each in listed order, so a later family may use an earlier
// family's child as husband or wife.
func Load(d db.Database, logger *zap.SugaredLogger) (*tree.Tree, error) {
	t := tree.New(logger)

	for i, rec := range d.Families {
		f := family.New(person.NewMale(rec.Husband), person.NewFemale(rec.Wife))
		if err := t.AddFamily(f); err != nil {
			return nil, fmt.Errorf("family %d: %w", i, err)
		}

		parent := rec.Husband
		if parent == "" {
			parent = rec.Wife
		}
		for _, name := range rec.Sons {
			if err := t.AddChild(parent, person.NewMale(name)); err != nil {
				return nil, fmt.Errorf("family %d: %w", i, err)
			}
		}
		for _, name := range rec.Daughters {
			if err := t.AddChild(parent, person.NewFemale(name)); err != nil {
				return nil, fmt.Errorf("family %d: %w", i, err)
			}
		}
	}
	return t, nil
}

// LoadFile reads the seed at path and loads it.
func LoadFile(path string, logger *zap.SugaredLogger) (*tree.Tree, error) {
	d, err := db.Read(path)
	if err != nil {
		return nil, err
	}

	t, err := Load(d, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if logger != nil {
		logger.Infow("Loaded family tree", "seed", path, "version", d.Version, "families", len(d.Families), "people", t.Len())
	}
	return t, nil
}
