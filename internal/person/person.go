package person

// Person is a single member of the tree. The ID is the person's name and is
// unique across a tree.
type Person struct {
	ID     string `json:"id" yaml:"id"`
	IsMale bool   `json:"is_male" yaml:"is_male"`
}

// Unknown stands in for a parent or spouse that was never recorded.
var Unknown = &Person{}

func New(id string, male bool) *Person {
	return &Person{ID: id, IsMale: male}
}

func NewMale(id string) *Person   { return New(id, true) }
func NewFemale(id string) *Person { return New(id, false) }

// IsUnknown reports whether p is the sentinel (or nil).
func (p *Person) IsUnknown() bool {
	return p == nil || p == Unknown || p.ID == ""
}

// Is compares by id. The sentinel never matches.
func (p *Person) Is(id string) bool {
	return !p.IsUnknown() && p.ID == id
}

func (p *Person) Sex() string {
	if p.IsMale {
		return "male"
	}
	return "female"
}

func (p *Person) String() string {
	if p.IsUnknown() {
		return "unknown"
	}
	return p.ID
}

// Implement list.Item interface
func (p *Person) Title() string       { return p.String() }
func (p *Person) Description() string { return p.Sex() }
func (p *Person) FilterValue() string { return p.ID }
