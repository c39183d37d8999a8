package migration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the seed format the db package decodes.
const CurrentVersion = "1.0.0"

type Migration struct {
	FromVersion string
	ToVersion   string
	Apply       func(data map[string]any) (map[string]any, error)
}

var migrations = []Migration{
	{
		FromVersion: "0.0.1",
		ToVersion:   "1.0.0",
		Apply:       migrate_0_0_1_to_1_0_0,
	},
}

// Apply walks the migration chain starting from the document's version.
// A document without a version is taken to be current. The bool reports
// whether anything changed.
func Apply(data map[string]any) (map[string]any, bool, error) {
	currentVer := CurrentVersion
	if v, ok := data["version"]; ok && v != nil {
		currentVer = fmt.Sprint(v)
	}
	data["version"] = currentVer

	dirty := false
	for {
		var found *Migration
		for i := range migrations {
			if migrations[i].FromVersion == currentVer {
				found = &migrations[i]
				break
			}
		}
		if found == nil {
			break
		}

		newData, err := found.Apply(data)
		if err != nil {
			return nil, false, fmt.Errorf("migration %s -> %s failed: %w", currentVer, found.ToVersion, err)
		}

		data = newData
		currentVer = found.ToVersion
		data["version"] = currentVer
		dirty = true
	}

	if currentVer != CurrentVersion {
		return nil, false, fmt.Errorf("unsupported seed version %q", currentVer)
	}
	return data, dirty, nil
}

// RunMigrations upgrades the seed file at path in place. A missing file is not an error.
func RunMigrations(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	data, dirty, err := Apply(data)
	if err != nil || !dirty {
		return false, err
	}

	newContent, err := yaml.Marshal(data)
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(path, newContent, 0644)
}

// --- Migrations ---

// 0.0.1 listed children as [{name, male}]; 1.0.0 splits them into sons and daughters.
func migrate_0_0_1_to_1_0_0(data map[string]any) (map[string]any, error) {
	familiesRaw, ok := data["families"].([]any)
	if !ok {
		return data, nil
	}

	for i, f := range familiesRaw {
		familyMap, ok := f.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("family %d is not a mapping", i)
		}

		sons, daughters := []any{}, []any{}
		children, _ := familyMap["children"].([]any)
		for j, c := range children {
			childMap, ok := c.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("family %d child %d is not a mapping", i, j)
			}
			name, _ := childMap["name"].(string)
			if male, _ := childMap["male"].(bool); male {
				sons = append(sons, name)
			} else {
				daughters = append(daughters, name)
			}
		}

		delete(familyMap, "children")
		familyMap["sons"] = sons
		familyMap["daughters"] = daughters
		familiesRaw[i] = familyMap
	}

	data["families"] = familiesRaw
	return data, nil
}
