// Package relation answers kinship questions over a tree.Tree.
//
// Every list query returns a non-nil slice, empty when nobody qualifies.
// FatherOf, MotherOf and SpouseOf are scalar and return person.Unknown
// instead of an empty slice.
package relation

import (
	"fmt"

	"github.com/N3moAhead/familytree/internal/family"
	"github.com/N3moAhead/familytree/internal/person"
	"github.com/N3moAhead/familytree/internal/tree"
)

type Relationships struct {
	tree *tree.Tree
}

func New(t *tree.Tree) *Relationships {
	return &Relationships{tree: t}
}

func (r *Relationships) Tree() *tree.Tree { return r.tree }

func (r *Relationships) FatherOf(id string) *person.Person {
	return r.tree.ParentFamilyOf(id).Husband
}

func (r *Relationships) MotherOf(id string) *person.Person {
	return r.tree.ParentFamilyOf(id).Wife
}

func (r *Relationships) ChildrenOf(id string) []*person.Person {
	return person.Filter(r.tree.FamilyOf(id).Children, person.Known)
}

func (r *Relationships) SonsOf(id string) []*person.Person {
	return person.Filter(r.ChildrenOf(id), person.Males)
}

func (r *Relationships) DaughtersOf(id string) []*person.Person {
	return person.Filter(r.ChildrenOf(id), person.Females)
}

// SiblingsOf returns the other children of id's parent family.
func (r *Relationships) SiblingsOf(id string) []*person.Person {
	return person.Filter(r.tree.ParentFamilyOf(id).Children, person.Not(id))
}

func (r *Relationships) SpouseOf(id string) *person.Person {
	return r.tree.FamilyOf(id).Spouse(id)
}

func (r *Relationships) BrothersOf(id string) []*person.Person {
	return person.Filter(r.SiblingsOf(id), person.Males)
}

func (r *Relationships) SistersOf(id string) []*person.Person {
	return person.Filter(r.SiblingsOf(id), person.Females)
}

func (r *Relationships) FathersSiblings(id string) []*person.Person {
	return r.SiblingsOf(r.FatherOf(id).ID)
}

func (r *Relationships) MothersSiblings(id string) []*person.Person {
	return r.SiblingsOf(r.MotherOf(id).ID)
}

// PaternalUnclesOf returns the father's brothers followed by his brothers-in-law.
func (r *Relationships) PaternalUnclesOf(id string) []*person.Person {
	father := r.FatherOf(id)
	return concat(r.BrothersOf(father.ID), r.BrotherInLawsOf(father.ID))
}

func (r *Relationships) MaternalUnclesOf(id string) []*person.Person {
	mother := r.MotherOf(id)
	return concat(r.BrothersOf(mother.ID), r.BrotherInLawsOf(mother.ID))
}

func (r *Relationships) PaternalAuntsOf(id string) []*person.Person {
	father := r.FatherOf(id)
	return concat(r.SistersOf(father.ID), r.SisterInLawsOf(father.ID))
}

func (r *Relationships) MaternalAuntsOf(id string) []*person.Person {
	mother := r.MotherOf(id)
	return concat(r.SistersOf(mother.ID), r.SisterInLawsOf(mother.ID))
}

// UnclesOf merges both sides. A mother's brother is also the father's
// brother-in-law, so the merge drops repeated ids.
func (r *Relationships) UnclesOf(id string) []*person.Person {
	return person.Distinct(concat(r.PaternalUnclesOf(id), r.MaternalUnclesOf(id)))
}

func (r *Relationships) AuntsOf(id string) []*person.Person {
	return person.Distinct(concat(r.PaternalAuntsOf(id), r.MaternalAuntsOf(id)))
}

// BrotherInLawsOf returns husbands of id's sisters, then brothers of id's spouse.
func (r *Relationships) BrotherInLawsOf(id string) []*person.Person {
	husbands := r.spousesOf(r.SistersOf(id))
	return concat(husbands, r.BrothersOf(r.SpouseOf(id).ID))
}

// SisterInLawsOf returns wives of id's brothers, then sisters of id's spouse.
func (r *Relationships) SisterInLawsOf(id string) []*person.Person {
	wives := r.spousesOf(r.BrothersOf(id))
	return concat(wives, r.SistersOf(r.SpouseOf(id).ID))
}

// CousinsOf returns the children of the mother's siblings, then of the
// father's siblings. When both parents' siblings married each other their
// children would show up twice, so repeats are dropped.
func (r *Relationships) CousinsOf(id string) []*person.Person {
	var cousins []*person.Person
	for _, s := range concat(r.MothersSiblings(id), r.FathersSiblings(id)) {
		cousins = append(cousins, r.ChildrenOf(s.ID)...)
	}
	return person.Distinct(cousins)
}

func (r *Relationships) GrandChildrenOf(id string) []*person.Person {
	grandChildren := []*person.Person{}
	for _, c := range r.ChildrenOf(id) {
		grandChildren = append(grandChildren, r.ChildrenOf(c.ID)...)
	}
	return grandChildren
}

func (r *Relationships) GrandSonsOf(id string) []*person.Person {
	return person.Filter(r.GrandChildrenOf(id), person.Males)
}

func (r *Relationships) GrandDaughtersOf(id string) []*person.Person {
	return person.Filter(r.GrandChildrenOf(id), person.Females)
}

// GrandFathersOf returns the paternal then the maternal grandfather, skipping unrecorded ones.
func (r *Relationships) GrandFathersOf(id string) []*person.Person {
	return person.Filter([]*person.Person{
		r.FatherOf(r.FatherOf(id).ID),
		r.FatherOf(r.MotherOf(id).ID),
	}, person.Known)
}

func (r *Relationships) GrandMothersOf(id string) []*person.Person {
	return person.Filter([]*person.Person{
		r.MotherOf(r.FatherOf(id).ID),
		r.MotherOf(r.MotherOf(id).ID),
	}, person.Known)
}

// MotherWithMostDaughters returns every recorded wife whose family has the
// highest daughter count. Ties are all included; no families means no mothers.
func (r *Relationships) MotherWithMostDaughters() []*person.Person {
	families := r.tree.Families()
	most := 0
	for _, f := range families {
		most = max(most, len(f.Daughters()))
	}

	mothers := []*person.Person{}
	for _, f := range families {
		if len(f.Daughters()) == most && !f.Wife.IsUnknown() {
			mothers = append(mothers, f.Wife)
		}
	}
	return mothers
}

func (r *Relationships) AddSon(parentID, name string) error {
	return r.tree.AddChild(parentID, person.NewMale(name))
}

func (r *Relationships) AddDaughter(parentID, name string) error {
	return r.tree.AddChild(parentID, person.NewFemale(name))
}

// AddSpouse registers a new union. Ids already in the tree resolve to the
// existing person, so marrying off a child links the same person.
func (r *Relationships) AddSpouse(husbandID, wifeID string) error {
	if husbandID == "" || wifeID == "" {
		return fmt.Errorf("add spouse %q+%q: %w", husbandID, wifeID, tree.ErrEmptyID)
	}
	return r.tree.AddFamily(family.New(person.NewMale(husbandID), person.NewFemale(wifeID)))
}

// spousesOf maps each person to their recorded spouse, dropping those without one.
func (r *Relationships) spousesOf(people []*person.Person) []*person.Person {
	spouses := make([]*person.Person, 0, len(people))
	for _, p := range people {
		if s := r.SpouseOf(p.ID); !s.IsUnknown() {
			spouses = append(spouses, s)
		}
	}
	return spouses
}

func concat(lists ...[]*person.Person) []*person.Person {
	out := []*person.Person{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
