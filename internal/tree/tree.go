// Package tree holds the family graph: every registered family plus the two
// indices that answer "which family does this person head" and "which family
// was this person born into".
//
// Lookups never fail. An id missing from an index resolves to family.Unknown,
// whose parents are person.Unknown, so chained lookups on root ancestors or
// leaf descendants simply come back empty.
//
// Person ids are unique keys. Registering a family or child whose id is
// already known reuses the existing person instead of creating a second one.
//
// Tree is not safe for concurrent mutation.
package tree

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/btree"
	"go.uber.org/zap"

	"github.com/N3moAhead/familytree/internal/family"
	"github.com/N3moAhead/familytree/internal/metrics"
	"github.com/N3moAhead/familytree/internal/person"
)

type Tree struct {
	families       []*family.Family
	familyOfParent map[string]*family.Family
	familyOfChild  map[string]*family.Family
	people         *btree.BTreeG[*person.Person]
	logger         *zap.SugaredLogger
}

func byID(a, b *person.Person) bool { return a.ID < b.ID }

// New creates an empty tree. A nil logger disables logging.
func New(logger *zap.SugaredLogger) *Tree {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Tree{
		familyOfParent: make(map[string]*family.Family),
		familyOfChild:  make(map[string]*family.Family),
		people:         btree.NewBTreeGOptions(byID, btree.Options{NoLocks: true}),
		logger:         logger,
	}
}

// FamilyOf returns the family id heads as husband or wife.
func (t *Tree) FamilyOf(id string) *family.Family {
	if f, ok := t.familyOfParent[id]; ok {
		return f
	}
	return family.Unknown
}

// ParentFamilyOf returns the family id was born into.
func (t *Tree) ParentFamilyOf(id string) *family.Family {
	if f, ok := t.familyOfChild[id]; ok {
		return f
	}
	return family.Unknown
}

// Families returns every family in registration order.
func (t *Tree) Families() []*family.Family {
	return append([]*family.Family{}, t.families...)
}

// Person returns the person registered under id, or person.Unknown.
func (t *Tree) Person(id string) *person.Person {
	if p, ok := t.people.Get(&person.Person{ID: id}); ok {
		return p
	}
	return person.Unknown
}

// People returns everyone in the tree sorted by id.
func (t *Tree) People() []*person.Person {
	out := make([]*person.Person, 0, t.people.Len())
	t.people.Scan(func(p *person.Person) bool {
		out = append(out, p)
		return true
	})
	return out
}

func (t *Tree) Len() int { return t.people.Len() }

// FamilyCount returns the number of registered families.
func (t *Tree) FamilyCount() int { return len(t.families) }

// AddFamily registers a union and indexes both spouses. Children already on f
// are registered as its children. Nothing changes when an error is returned.
func (t *Tree) AddFamily(f *family.Family) error {
	err := t.addFamily(f)
	t.record("add_family", err)
	if f == nil {
		t.logger.Warnw("Rejected family", "error", err)
		return fmt.Errorf("add family: %w", err)
	}
	if err != nil {
		t.logger.Warnw("Rejected family", "husband", f.Husband.String(), "wife", f.Wife.String(), "error", err)
		return fmt.Errorf("add family %s+%s: %w", f.Husband, f.Wife, err)
	}
	t.logger.Debugw("Registered family", "id", f.ID, "husband", f.Husband.String(), "wife", f.Wife.String(), "children", len(f.Children))
	return nil
}

func (t *Tree) addFamily(f *family.Family) error {
	if f == nil {
		return ErrNilFamily
	}
	if f.Husband == nil {
		f.Husband = person.Unknown
	}
	if f.Wife == nil {
		f.Wife = person.Unknown
	}
	if f.Husband.IsUnknown() && f.Wife.IsUnknown() {
		return ErrEmptyID
	}
	if f.Husband.Is(f.Wife.ID) {
		return ErrDuplicateUnion
	}
	if (!f.Husband.IsUnknown() && !f.Husband.IsMale) || (!f.Wife.IsUnknown() && f.Wife.IsMale) {
		return ErrSexMismatch
	}

	husband, err := t.parentSlot(f.Husband)
	if err != nil {
		return err
	}
	wife, err := t.parentSlot(f.Wife)
	if err != nil {
		return err
	}

	children := make([]*person.Person, 0, len(f.Children))
	seen := make(map[string]struct{}, len(f.Children))
	for _, c := range f.Children {
		child, err := t.childSlot(c)
		if err != nil {
			return err
		}
		if _, dup := seen[child.ID]; dup || husband.Is(child.ID) || wife.Is(child.ID) {
			return ErrDuplicateChild
		}
		if t.isAncestor(child.ID, husband, wife) {
			return ErrDescendant
		}
		seen[child.ID] = struct{}{}
		children = append(children, child)
	}

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.Husband, f.Wife, f.Children = husband, wife, children
	t.families = append(t.families, f)
	for _, p := range []*person.Person{husband, wife} {
		if !p.IsUnknown() {
			t.familyOfParent[p.ID] = f
			t.people.Set(p)
		}
	}
	for _, c := range children {
		t.familyOfChild[c.ID] = f
		t.people.Set(c)
	}
	return nil
}

// AddChild appends p to the family headed by parentID.
func (t *Tree) AddChild(parentID string, p *person.Person) error {
	err := t.addChild(parentID, p)
	t.record("add_child", err)
	if err != nil {
		t.logger.Warnw("Rejected child", "parent", parentID, "child", p.String(), "error", err)
		return fmt.Errorf("add child %s to %s: %w", p, parentID, err)
	}
	t.logger.Debugw("Registered child", "parent", parentID, "child", p.ID, "male", p.IsMale)
	return nil
}

func (t *Tree) addChild(parentID string, p *person.Person) error {
	f, ok := t.familyOfParent[parentID]
	if !ok {
		return ErrNoSuchFamily
	}
	child, err := t.childSlot(p)
	if err != nil {
		return err
	}
	if f.HasParent(child.ID) {
		return ErrDuplicateChild
	}
	if t.isAncestor(child.ID, f.Husband, f.Wife) {
		return ErrDescendant
	}
	f.Children = append(f.Children, child)
	t.familyOfChild[child.ID] = f
	t.people.Set(child)
	return nil
}

// isAncestor reports whether id appears among the given parents or anyone
// above them. The walk ends at root ancestors because the tree has no cycles.
func (t *Tree) isAncestor(id string, parents ...*person.Person) bool {
	for len(parents) > 0 {
		p := parents[len(parents)-1]
		parents = parents[:len(parents)-1]
		if p.IsUnknown() {
			continue
		}
		if p.Is(id) {
			return true
		}
		up := t.ParentFamilyOf(p.ID)
		parents = append(parents, up.Husband, up.Wife)
	}
	return false
}

// parentSlot resolves a husband or wife against the directory.
func (t *Tree) parentSlot(p *person.Person) (*person.Person, error) {
	if p.IsUnknown() {
		return person.Unknown, nil
	}
	if _, heads := t.familyOfParent[p.ID]; heads {
		return nil, ErrDuplicateUnion
	}
	return t.resolve(p)
}

func (t *Tree) childSlot(p *person.Person) (*person.Person, error) {
	if p.IsUnknown() {
		return nil, ErrEmptyID
	}
	if _, born := t.familyOfChild[p.ID]; born {
		return nil, ErrDuplicateChild
	}
	return t.resolve(p)
}

// resolve returns the registered person with p's id, or p itself when the id is new.
func (t *Tree) resolve(p *person.Person) (*person.Person, error) {
	existing := t.Person(p.ID)
	if existing.IsUnknown() {
		return p, nil
	}
	if existing.IsMale != p.IsMale {
		return nil, ErrSexMismatch
	}
	return existing, nil
}

func (t *Tree) record(op string, err error) {
	metrics.MutationsTotal.WithLabelValues(op, reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoSuchFamily):
		return "no_such_family"
	case errors.Is(err, ErrDuplicateUnion):
		return "duplicate_union"
	case errors.Is(err, ErrDuplicateChild):
		return "duplicate_child"
	case errors.Is(err, ErrSexMismatch):
		return "sex_mismatch"
	case errors.Is(err, ErrEmptyID):
		return "empty_id"
	case errors.Is(err, ErrDescendant):
		return "descendant"
	case errors.Is(err, ErrNilFamily):
		return "nil_family"
	}
	return "error"
}
