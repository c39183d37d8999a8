package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N3moAhead/familytree/internal/db"
	"github.com/N3moAhead/familytree/internal/person"
	"github.com/N3moAhead/familytree/internal/tree"
)

func join(people []*person.Person) string {
	return strings.Join(person.IDs(people), ",")
}

func TestLoadFile(t *testing.T) {
	for _, seed := range []string{"testdata/family.yaml", "testdata/family.json", "testdata/legacy.yaml"} {
		t.Run(seed, func(t *testing.T) {
			tr, err := LoadFile(seed, nil)
			require.NoError(t, err)

			root := tr.FamilyOf("Shan")
			assert.Equal(t, "Shan", root.Husband.ID)
			assert.Equal(t, "Anga", root.Wife.ID)
			assert.Equal(t, "Ish,Chit,Vich,Satya", join(root.Children))

			child := tr.FamilyOf("Chit")
			assert.Equal(t, "Chit", child.Husband.ID)
			assert.Equal(t, "Ambi", child.Wife.ID)
			assert.Equal(t, "Vrita,Drita", join(child.Children))

			grandChild := tr.FamilyOf("Minu")
			assert.Equal(t, "Minu", grandChild.Husband.ID)
			assert.Equal(t, "Driya", grandChild.Wife.ID)
			assert.Equal(t, "", join(grandChild.Children))
		})
	}
}

func TestLoadKeepsSexAndOrder(t *testing.T) {
	tr, err := Load(db.Database{Families: []db.FamilyRecord{
		{Husband: "Drita", Wife: "Jaya", Sons: []string{"Jata"}, Daughters: []string{"Driya"}},
	}}, nil)
	require.NoError(t, err)

	children := tr.FamilyOf("Jaya").Children
	require.Len(t, children, 2)
	assert.True(t, children[0].IsMale)
	assert.False(t, children[1].IsMale)
	assert.True(t, tr.FamilyOf("Drita").Husband.IsMale)
	assert.False(t, tr.FamilyOf("Drita").Wife.IsMale)
}

func TestLoadWifeOnlyFamily(t *testing.T) {
	tr, err := Load(db.Database{Families: []db.FamilyRecord{
		{Wife: "Jaya", Daughters: []string{"Driya"}},
	}}, nil)
	require.NoError(t, err)

	assert.True(t, tr.FamilyOf("Jaya").Husband.IsUnknown())
	assert.Equal(t, "Jaya", tr.ParentFamilyOf("Driya").Wife.ID)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		families []db.FamilyRecord
		want     error
	}{
		{
			name: "remarriage",
			families: []db.FamilyRecord{
				{Husband: "Shan", Wife: "Anga"},
				{Husband: "Shan", Wife: "Lata"},
			},
			want: tree.ErrDuplicateUnion,
		},
		{
			name: "child twice",
			families: []db.FamilyRecord{
				{Husband: "Shan", Wife: "Anga", Sons: []string{"Ish"}},
				{Husband: "Kal", Wife: "Lata", Sons: []string{"Ish"}},
			},
			want: tree.ErrDuplicateChild,
		},
		{
			name: "daughter as husband",
			families: []db.FamilyRecord{
				{Husband: "Shan", Wife: "Anga", Daughters: []string{"Satya"}},
				{Husband: "Satya", Wife: "Lata"},
			},
			want: tree.ErrSexMismatch,
		},
		{
			name:     "empty family",
			families: []db.FamilyRecord{{Sons: []string{"Ish"}}},
			want:     tree.ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(db.Database{Families: tt.families}, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml", nil)
	assert.Error(t, err)
}
