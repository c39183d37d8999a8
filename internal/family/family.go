package family

import "github.com/N3moAhead/familytree/internal/person"

// Family is one union: a husband, a wife and their children in insertion
// order. Either parent slot may hold person.Unknown.
type Family struct {
	ID       string           `json:"id"`
	Husband  *person.Person   `json:"husband"`
	Wife     *person.Person   `json:"wife"`
	Children []*person.Person `json:"children"`
}

// Unknown is returned for lookups that find no family. It must not be mutated.
var Unknown = &Family{Husband: person.Unknown, Wife: person.Unknown}

// New builds a family. Nil parents become person.Unknown.
func New(husband, wife *person.Person, children ...*person.Person) *Family {
	if husband == nil {
		husband = person.Unknown
	}
	if wife == nil {
		wife = person.Unknown
	}
	return &Family{
		Husband:  husband,
		Wife:     wife,
		Children: append([]*person.Person{}, children...),
	}
}

func (f *Family) IsUnknown() bool {
	return f == nil || f == Unknown
}

// HasParent reports whether id is the husband or the wife.
func (f *Family) HasParent(id string) bool {
	return f.Husband.Is(id) || f.Wife.Is(id)
}

// Spouse returns the partner of id, or person.Unknown when id is not a parent here.
func (f *Family) Spouse(id string) *person.Person {
	switch {
	case f.Husband.Is(id):
		return f.Wife
	case f.Wife.Is(id):
		return f.Husband
	}
	return person.Unknown
}

func (f *Family) Sons() []*person.Person {
	return person.Filter(f.Children, person.Males)
}

func (f *Family) Daughters() []*person.Person {
	return person.Filter(f.Children, person.Females)
}
