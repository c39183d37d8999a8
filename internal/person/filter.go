package person

// Predicates used when filtering query results.
func Males(p *Person) bool   { return p.IsMale }
func Females(p *Person) bool { return !p.IsMale }
func Known(p *Person) bool   { return !p.IsUnknown() }

// Not matches everyone except id.
func Not(id string) func(*Person) bool {
	return func(p *Person) bool { return !p.Is(id) }
}

// Filter returns the members of people matching keep. The result is never nil.
func Filter(people []*Person, keep func(*Person) bool) []*Person {
	out := make([]*Person, 0, len(people))
	for _, p := range people {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Distinct drops repeated ids, keeping the first occurrence.
func Distinct(people []*Person) []*Person {
	seen := make(map[string]struct{}, len(people))
	out := make([]*Person, 0, len(people))
	for _, p := range people {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// IDs returns the ids of people in order.
func IDs(people []*Person) []string {
	ids := make([]string, len(people))
	for i, p := range people {
		ids[i] = p.ID
	}
	return ids
}
