package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse([]byte(`
version: "1.0.0"
families:
  - husband: Shan
    wife: Anga
    sons: [Ish, Chit]
    daughters: [Satya]
`))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", d.Version)
	require.Len(t, d.Families, 1)
	assert.Equal(t, FamilyRecord{
		Husband:   "Shan",
		Wife:      "Anga",
		Sons:      []string{"Ish", "Chit"},
		Daughters: []string{"Satya"},
	}, d.Families[0])
}

func TestParseStampsMissingVersion(t *testing.T) {
	d, err := Parse([]byte(`{"families": [{"husband": "Minu", "wife": "Driya"}]}`))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", d.Version)
	assert.Equal(t, "Minu", d.Families[0].Husband)
	assert.Empty(t, d.Families[0].Sons)
}

func TestParseMigratesLegacy(t *testing.T) {
	d, err := Parse([]byte(`
version: "0.0.1"
families:
  - husband: Drita
    wife: Jaya
    children:
      - {name: Jata, male: true}
      - {name: Driya, male: false}
`))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", d.Version)
	assert.Equal(t, []string{"Jata"}, d.Families[0].Sons)
	assert.Equal(t, []string{"Driya"}, d.Families[0].Daughters)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":           "families: [",
		"unknown field":    "families:\n  - husband: Shan\n    partner: Anga\n",
		"unknown version":  "version: \"9.9.9\"\nfamilies: []\n",
		"unquoted version": "version: 1.0\nfamilies: []\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	d, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, d.Families)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("families:\n  - husband: Shan\n    wife: Anga\n"), 0644))

	d, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Anga", d.Families[0].Wife)

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
