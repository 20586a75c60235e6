// Package ingest is the host-boundary collaborator that turns named
// CSV rows into the core's opaque integer identifiers. None of this
// package's behavior is part of the specification's core contract —
// it exists purely to produce []maxcover.Recipe and a name table for
// display, per SPEC_FULL.md §4.6.
package ingest

// Interner maps ingredient and recipe names to compact, dense integer
// identifiers, and back. It is grounded on the teacher's VariableMapper
// (pkg/minikanren/fd_solver.go), which performs the analogous
// logic-variable ↔ finite-domain-variable bijection.
type Interner struct {
	nameToID map[string]int
	idToName []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{nameToID: make(map[string]int)}
}

// Intern returns the integer identifier for name, assigning a fresh
// one the first time name is seen.
func (in *Interner) Intern(name string) int {
	if id, ok := in.nameToID[name]; ok {
		return id
	}
	id := len(in.idToName)
	in.nameToID[name] = id
	in.idToName = append(in.idToName, name)
	return id
}

// Name returns the name originally interned for id. Panics if id is
// out of range, which would indicate a caller bug (an id this package
// never issued).
func (in *Interner) Name(id int) string {
	return in.idToName[id]
}

// Len returns the number of distinct names interned so far — the size
// of the ingredient universe N in the specification's terms.
func (in *Interner) Len() int {
	return len(in.idToName)
}
