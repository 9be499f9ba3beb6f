package nominal

import "fmt"

// A Name identifies a variable. At runtime it is just an integer; which
// scope it is valid in is a property of where it came from, not of the
// value itself. A name valid in scope S is also valid in every extension
// of S, which is why free variables survive descending under binders
// without being rewritten.
//
// Names cannot be forged: the only constructors are FreshName, FreshBinder,
// and Refreshed.
type Name struct {
	id int
}

// ID returns the raw integer identifier of n. It is intended for
// exporters that must render a name as concrete syntax; the exporter is
// responsible for keeping the printable names it derives distinct.
func (n Name) ID() int { return n.id }

func (n Name) String() string { return fmt.Sprintf("@%d", n.id) }

// A NameBinder is the single name introduced by one binding site,
// together with the promise that the name is fresh for the scope the
// binding site appears in. The binder owns the identity of that name:
// nothing else may introduce the same identifier into the extended
// scope.
//
// A NameBinder is also the single-name Pattern.
type NameBinder struct {
	name Name
}

// Name returns the name introduced by b, valid in the extended scope.
func (b NameBinder) Name() Name { return b.name }

func (b NameBinder) String() string { return b.name.String() }
