package nominal

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

// A Pattern is a generalized binder: zero or more names introduced
// simultaneously by one binding construct. A single NameBinder is a
// pattern; so is an ordered list of them, and clients may define their
// own composite shapes (a pair pattern, say) by implementing the two
// capabilities below.
//
// Both methods visit the pattern's atomic binders in left-to-right
// order, calling the callback with the scope as extended by the binders
// already visited; they differ in whether the pattern is rebuilt.
type Pattern interface {
	// FoldBinders extends outer with every binder in the pattern,
	// invoking f with each binder and the scope immediately preceding
	// it, and returns the fully extended scope.
	FoldBinders(outer Scope, f func(Scope, NameBinder)) Scope

	// RefreshBinders rebuilds the pattern with each atomic binder
	// replaced by f's result, extending the scope with the replacement
	// binders as it goes. It returns the rebuilt pattern and the
	// extended scope. When f returns every binder unchanged,
	// implementations should return the receiver — a renaming of the
	// ambient scope never requires the pattern's own identifiers to
	// change, which is what makes crossing a binder O(1).
	RefreshBinders(outer Scope, f func(Scope, NameBinder) NameBinder) (Pattern, Scope)
}

// EmptyPattern marks a pattern position that cannot be inhabited. It
// exists so a signature can state "no binder occurs here" in the type;
// invoking either capability is a contract violation.
type EmptyPattern struct{}

func (EmptyPattern) FoldBinders(Scope, func(Scope, NameBinder)) Scope {
	panic("nominal: EmptyPattern is uninhabited")
}

func (EmptyPattern) RefreshBinders(Scope, func(Scope, NameBinder) NameBinder) (Pattern, Scope) {
	panic("nominal: EmptyPattern is uninhabited")
}

// WildcardPattern binds nothing.
type WildcardPattern struct{}

func (WildcardPattern) FoldBinders(outer Scope, _ func(Scope, NameBinder)) Scope {
	return outer
}

func (w WildcardPattern) RefreshBinders(outer Scope, _ func(Scope, NameBinder) NameBinder) (Pattern, Scope) {
	return w, outer
}

func (WildcardPattern) String() string { return "_" }

// NameBinder is the single-name pattern.

func (b NameBinder) FoldBinders(outer Scope, f func(Scope, NameBinder)) Scope {
	f(outer, b)
	return outer.Extend(b)
}

func (b NameBinder) RefreshBinders(outer Scope, f func(Scope, NameBinder) NameBinder) (Pattern, Scope) {
	nb := f(outer, b)
	if nb == b {
		return b, outer.Extend(b)
	}
	return nb, outer.Extend(nb)
}

// A NameBinderList binds a sequence of names in order. The identifiers
// bound by one list are pairwise distinct when the list is produced by
// the allocator (each element is fresh for the scope extended by its
// predecessors).
type NameBinderList []NameBinder

func (l NameBinderList) FoldBinders(outer Scope, f func(Scope, NameBinder)) Scope {
	scope := outer
	for _, b := range l {
		f(scope, b)
		scope = scope.Extend(b)
	}
	return scope
}

func (l NameBinderList) RefreshBinders(outer Scope, f func(Scope, NameBinder) NameBinder) (Pattern, Scope) {
	scope := outer
	var out NameBinderList // allocated only if some binder changes
	for i, b := range l {
		nb := f(scope, b)
		if out == nil && nb != b {
			out = append(NameBinderList(nil), l[:i]...)
		}
		if out != nil {
			out = append(out, nb)
		}
		scope = scope.Extend(nb)
	}
	if out == nil {
		return l, scope
	}
	return out, scope
}

func (l NameBinderList) String() string {
	parts := make([]string, len(l))
	for i, b := range l {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Set returns the unordered view of l.
func (l NameBinderList) Set() NameBinderSet {
	t := btree.NewOrderedG[int](scopeDegree)
	for _, b := range l {
		t.ReplaceOrInsert(b.name.id)
	}
	return NameBinderSet{t: t}
}

// A NameBinderSet is the unordered view of a group of binders, used for
// membership and union operations. As a pattern it traverses in
// ascending identifier order, so converting set to list is
// deterministic.
type NameBinderSet struct {
	t *btree.BTreeG[int]
}

// Member reports whether the set introduces name.
func (s NameBinderSet) Member(n Name) bool {
	return s.t != nil && s.t.Has(n.id)
}

// Len returns the number of binders in the set.
func (s NameBinderSet) Len() int {
	if s.t == nil {
		return 0
	}
	return s.t.Len()
}

// Union returns the set introducing every name of s and of other.
func (s NameBinderSet) Union(other NameBinderSet) NameBinderSet {
	if s.t == nil {
		return other
	}
	t := s.t.Clone()
	other.forEach(func(id int) {
		t.ReplaceOrInsert(id)
	})
	return NameBinderSet{t: t}
}

// List returns the ordered view of s, ascending by identifier.
func (s NameBinderSet) List() NameBinderList {
	var l NameBinderList
	s.forEach(func(id int) {
		l = append(l, NameBinder{name: Name{id: id}})
	})
	return l
}

func (s NameBinderSet) forEach(f func(id int)) {
	if s.t == nil {
		return
	}
	s.t.Ascend(func(id int) bool {
		f(id)
		return true
	})
}

func (s NameBinderSet) FoldBinders(outer Scope, f func(Scope, NameBinder)) Scope {
	return s.List().FoldBinders(outer, f)
}

func (s NameBinderSet) RefreshBinders(outer Scope, f func(Scope, NameBinder) NameBinder) (Pattern, Scope) {
	p, scope := s.List().RefreshBinders(outer, f)
	if l, ok := p.(NameBinderList); ok {
		return l.Set(), scope
	}
	return p, scope
}

func (s NameBinderSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.forEach(func(id int) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "@%d", id)
	})
	b.WriteByte('}')
	return b.String()
}

// BindersOf collects the names introduced by p as an unordered set.
func BindersOf(p Pattern) NameBinderSet {
	t := btree.NewOrderedG[int](scopeDegree)
	p.FoldBinders(EmptyScope(), func(_ Scope, b NameBinder) {
		t.ReplaceOrInsert(b.name.id)
	})
	return NameBinderSet{t: t}
}

// refreshPattern rebinds p against the output scope of a substitution
// pass. Each binder that clashes with target (or every binder, when
// force is set) is renamed to a fresh identifier; non-clashing binders
// are kept as-is, which together with AddRename's no-op rule keeps the
// substitution's working set from growing. It returns the (possibly
// identical) pattern, the extended output scope, and the substitution
// extended to map each original binder to its replacement.
func refreshPattern(p Pattern, target Scope, subst Subst, force bool) (Pattern, Scope, Subst) {
	s := subst.Sink()
	p2, inner := p.RefreshBinders(target, func(scope Scope, b NameBinder) NameBinder {
		var nb NameBinder
		if force {
			nb, _ = FreshBinder(scope)
		} else {
			nb, _ = Refreshed(scope, b.Name())
		}
		s = s.AddRename(b, nb.Name())
		return nb
	})
	return p2, inner, s
}
