package nominal

// A Subst is a finite mapping from names valid in an input scope to
// terms valid in an output scope. A name absent from the mapping is
// treated as free and injected unchanged as a Var.
//
// Substitutions are values: Add and AddRename return extended copies
// and never modify the receiver, so one substitution may be shared
// across sibling branches of a traversal.
type Subst struct {
	m map[Name]Term
}

// IdentitySubst returns the empty substitution: every lookup injects
// the name as a free variable.
func IdentitySubst() Subst { return Subst{} }

// Lookup returns the term name is mapped to, or &Var{name} if the
// mapping has no entry for it.
func (s Subst) Lookup(name Name) Term {
	if t, ok := s.m[name]; ok {
		return t
	}
	return &Var{Name: name}
}

// Add returns s extended so the name introduced by binder maps to term.
// The result is a substitution into the binder's inner scope.
func (s Subst) Add(binder NameBinder, term Term) Subst {
	m := make(map[Name]Term, len(s.m)+1)
	for k, v := range s.m {
		m[k] = v
	}
	m[binder.name] = term
	return Subst{m: m}
}

// AddRename returns s extended so the name introduced by binder maps to
// the free variable name. If the two identifiers coincide the entry is
// removed instead of inserted: an identity renaming must not grow the
// working set, or deeply nested non-clashing binders would pile up
// useless entries.
func (s Subst) AddRename(binder NameBinder, name Name) Subst {
	if binder.name == name {
		if _, ok := s.m[binder.name]; !ok {
			return s
		}
		m := make(map[Name]Term, len(s.m))
		for k, v := range s.m {
			if k != binder.name {
				m[k] = v
			}
		}
		return Subst{m: m}
	}
	return s.Add(binder, &Var{Name: name})
}

// Sink reinterprets s, valid for producing terms in some output scope O,
// as valid for any extension of O. Any term valid in O is valid
// unchanged in every extension, so this is the identity at runtime; the
// method exists to mark the places a traversal relies on that
// invariant.
func (s Subst) Sink() Subst { return s }

// Len returns the number of explicit entries in s.
func (s Subst) Len() int { return len(s.m) }
