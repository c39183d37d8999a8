// Package db reads seed documents describing the families of a tree.
//
// A seed is YAML (JSON works too, being a subset):
//
//	version: "1.0.0"
//	families:
//	  - husband: Shan
//	    wife: Anga
//	    sons: [Ish, Chit, Vich]
//	    daughters: [Satya]
//
// Older documents are brought up to date by the migration package before
// they are decoded.
package db

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/N3moAhead/familytree/internal/migration"
)

type FamilyRecord struct {
	Husband   string   `json:"husband" yaml:"husband"`
	Wife      string   `json:"wife" yaml:"wife"`
	Sons      []string `json:"sons" yaml:"sons"`
	Daughters []string `json:"daughters" yaml:"daughters"`
}

type Database struct {
	Version  string         `json:"version" yaml:"version"`
	Families []FamilyRecord `json:"families" yaml:"families"`
}

// Read loads and migrates the seed at path.
func Read(path string) (Database, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Database{}, fmt.Errorf("failed to read seed: %w", err)
	}
	return Parse(content)
}

// Parse migrates content to the current version, then decodes it strictly:
// unknown keys are an error.
func Parse(content []byte) (Database, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return Database{}, fmt.Errorf("seed syntax error: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}

	data, _, err := migration.Apply(data)
	if err != nil {
		return Database{}, err
	}

	migrated, err := yaml.Marshal(data)
	if err != nil {
		return Database{}, fmt.Errorf("failed to re-encode seed: %w", err)
	}

	var d Database
	decoder := yaml.NewDecoder(bytes.NewReader(migrated))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return Database{}, fmt.Errorf("invalid seed: %w", err)
	}
	return d, nil
}
