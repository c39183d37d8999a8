package relation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/N3moAhead/familytree/internal/metrics"
	"github.com/N3moAhead/familytree/internal/person"
)

var ErrUnknownRelation = errors.New("unknown relation")

// Kind names a relation in the query vocabulary.
type Kind string

const (
	Father          Kind = "father"
	Mother          Kind = "mother"
	Spouse          Kind = "spouse"
	Children        Kind = "children"
	Sons            Kind = "sons"
	Daughters       Kind = "daughters"
	Siblings        Kind = "siblings"
	Brothers        Kind = "brothers"
	Sisters         Kind = "sisters"
	FathersSiblings Kind = "fathers-siblings"
	MothersSiblings Kind = "mothers-siblings"
	PaternalUncles  Kind = "paternal-uncles"
	MaternalUncles  Kind = "maternal-uncles"
	PaternalAunts   Kind = "paternal-aunts"
	MaternalAunts   Kind = "maternal-aunts"
	Uncles          Kind = "uncles"
	Aunts           Kind = "aunts"
	BrotherInLaws   Kind = "brother-in-laws"
	SisterInLaws    Kind = "sister-in-laws"
	Cousins         Kind = "cousins"
	GrandChildren   Kind = "grandchildren"
	GrandSons       Kind = "grandsons"
	GrandDaughters  Kind = "granddaughters"
	GrandFathers    Kind = "grandfathers"
	GrandMothers    Kind = "grandmothers"
)

type query func(r *Relationships, id string) []*person.Person

func scalar(f func(r *Relationships, id string) *person.Person) query {
	return func(r *Relationships, id string) []*person.Person {
		return person.Filter([]*person.Person{f(r, id)}, person.Known)
	}
}

// Order here is the order Kinds reports.
var queries = []struct {
	kind Kind
	run  query
}{
	{Father, scalar((*Relationships).FatherOf)},
	{Mother, scalar((*Relationships).MotherOf)},
	{Spouse, scalar((*Relationships).SpouseOf)},
	{Children, (*Relationships).ChildrenOf},
	{Sons, (*Relationships).SonsOf},
	{Daughters, (*Relationships).DaughtersOf},
	{Siblings, (*Relationships).SiblingsOf},
	{Brothers, (*Relationships).BrothersOf},
	{Sisters, (*Relationships).SistersOf},
	{FathersSiblings, (*Relationships).FathersSiblings},
	{MothersSiblings, (*Relationships).MothersSiblings},
	{PaternalUncles, (*Relationships).PaternalUnclesOf},
	{MaternalUncles, (*Relationships).MaternalUnclesOf},
	{PaternalAunts, (*Relationships).PaternalAuntsOf},
	{MaternalAunts, (*Relationships).MaternalAuntsOf},
	{Uncles, (*Relationships).UnclesOf},
	{Aunts, (*Relationships).AuntsOf},
	{BrotherInLaws, (*Relationships).BrotherInLawsOf},
	{SisterInLaws, (*Relationships).SisterInLawsOf},
	{Cousins, (*Relationships).CousinsOf},
	{GrandChildren, (*Relationships).GrandChildrenOf},
	{GrandSons, (*Relationships).GrandSonsOf},
	{GrandDaughters, (*Relationships).GrandDaughtersOf},
	{GrandFathers, (*Relationships).GrandFathersOf},
	{GrandMothers, (*Relationships).GrandMothersOf},
}

// Kinds lists every supported relation.
func Kinds() []Kind {
	kinds := make([]Kind, len(queries))
	for i, q := range queries {
		kinds[i] = q.kind
	}
	return kinds
}

// Query runs the named relation for id. Scalar relations come back as a
// slice of zero or one person.
func (r *Relationships) Query(kind Kind, id string) ([]*person.Person, error) {
	for _, q := range queries {
		if q.kind == kind {
			metrics.QueriesTotal.WithLabelValues(string(kind)).Inc()
			return q.run(r, id), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, kind)
}

// Wrapper for a query result to be used in bubbles/list
type Item struct {
	Kind   Kind
	People []*person.Person
}

func (i Item) Title() string { return string(i.Kind) }
func (i Item) Description() string {
	if len(i.People) == 0 {
		return "none"
	}
	return Join(i.People)
}
func (i Item) FilterValue() string { return string(i.Kind) + " " + Join(i.People) }

// All runs every relation for id, in Kinds order.
func (r *Relationships) All(id string) []Item {
	items := make([]Item, 0, len(queries))
	for _, q := range queries {
		people, _ := r.Query(q.kind, id)
		items = append(items, Item{Kind: q.kind, People: people})
	}
	return items
}

// Join renders people as comma separated ids.
func Join(people []*person.Person) string {
	return strings.Join(person.IDs(people), ",")
}
