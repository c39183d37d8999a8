package family

import (
	"testing"

	"github.com/N3moAhead/familytree/internal/person"
	"github.com/stretchr/testify/assert"
)

func TestNewFillsUnknownParents(t *testing.T) {
	f := New(nil, person.NewFemale("Jaya"))

	assert.True(t, f.Husband.IsUnknown())
	assert.NotNil(t, f.Children)
	assert.Empty(t, f.Children)
}

func TestSpouse(t *testing.T) {
	f := New(person.NewMale("Chit"), person.NewFemale("Ambi"))

	assert.Equal(t, "Ambi", f.Spouse("Chit").ID)
	assert.Equal(t, "Chit", f.Spouse("Ambi").ID)
	assert.True(t, f.Spouse("Vrita").IsUnknown())
	assert.True(t, f.HasParent("Ambi"))
	assert.False(t, f.HasParent(""))
}

func TestSonsAndDaughters(t *testing.T) {
	f := New(person.NewMale("Drita"), person.NewFemale("Jaya"),
		person.NewMale("Jata"), person.NewFemale("Driya"))

	assert.Equal(t, []string{"Jata"}, person.IDs(f.Sons()))
	assert.Equal(t, []string{"Driya"}, person.IDs(f.Daughters()))
}

func TestUnknownFamily(t *testing.T) {
	assert.True(t, Unknown.IsUnknown())
	assert.True(t, Unknown.Husband.IsUnknown())
	assert.True(t, Unknown.Wife.IsUnknown())
	assert.Empty(t, Unknown.Children)
	assert.True(t, Unknown.Spouse("Shan").IsUnknown())
}
