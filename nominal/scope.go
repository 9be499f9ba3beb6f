// Package nominal provides a scope-safe representation of name binding
// for abstract syntax trees.
//
// A client defines its language by implementing the Signature interface
// for each node shape; the package supplies capture-avoiding
// substitution, binder refreshing, and alpha-equivalence over any such
// signature. Scopes, names, and binders can be obtained only through the
// allocator functions in this package (FreshName, FreshBinder,
// Refreshed); this is what makes the capture-freedom guarantee hold: a
// binder's identifier is distinct from every name in the scope it
// extends by construction, so no runtime check is ever needed.
package nominal

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

// scopeDegree is the branching factor of the btrees backing scopes.
// Scopes are small (bounded by binder depth) so a low degree keeps
// allocation down.
const scopeDegree = 8

// A Scope is an immutable set of the name identifiers valid at a point
// in a term. The zero value is the empty scope.
//
// Extension never modifies the receiver: the backing tree is a
// copy-on-write clone, so old scopes remain valid and may be shared
// freely across branches of a traversal.
type Scope struct {
	names *btree.BTreeG[int]
}

// EmptyScope returns the scope containing no names.
func EmptyScope() Scope { return Scope{} }

// Member reports whether name is valid in s.
func (s Scope) Member(n Name) bool {
	return s.names != nil && s.names.Has(n.id)
}

// Len returns the number of names in s.
func (s Scope) Len() int {
	if s.names == nil {
		return 0
	}
	return s.names.Len()
}

// Extend returns s plus the name introduced by b.
// s itself is unchanged.
func (s Scope) Extend(b NameBinder) Scope {
	return s.insert(b.name.id)
}

// Union returns s plus every name introduced by set.
func (s Scope) Union(set NameBinderSet) Scope {
	out := s
	set.forEach(func(id int) {
		out = out.insert(id)
	})
	return out
}

func (s Scope) insert(id int) Scope {
	var t *btree.BTreeG[int]
	if s.names == nil {
		t = btree.NewOrderedG[int](scopeDegree)
	} else {
		t = s.names.Clone()
	}
	t.ReplaceOrInsert(id)
	return Scope{names: t}
}

// max returns the largest identifier in s, or ok=false if s is empty.
func (s Scope) max() (int, bool) {
	if s.names == nil {
		return 0, false
	}
	return s.names.Max()
}

func (s Scope) String() string {
	var b strings.Builder
	b.WriteByte('{')
	if s.names != nil {
		first := true
		s.names.Ascend(func(id int) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&b, "%d", id)
			return true
		})
	}
	b.WriteByte('}')
	return b.String()
}
