package tree

import "errors"

var (
	// ErrNoSuchFamily is returned when adding a child under a person who heads no family.
	ErrNoSuchFamily = errors.New("no such family")

	// ErrDuplicateUnion is returned when a spouse already heads another family.
	ErrDuplicateUnion = errors.New("person already heads a family")

	// ErrDuplicateChild is returned when a person already has a birth family.
	ErrDuplicateChild = errors.New("person already belongs to a family as a child")

	// ErrSexMismatch is returned when a slot or an existing person disagrees on sex.
	ErrSexMismatch = errors.New("sex does not match")

	ErrEmptyID = errors.New("person id is empty")

	// ErrDescendant is returned when a child would become their own descendant.
	ErrDescendant = errors.New("person is an ancestor of the family")

	ErrNilFamily = errors.New("family is nil")
)
