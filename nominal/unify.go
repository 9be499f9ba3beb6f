package nominal

// This file implements binder unification: deciding how two binders (or
// two composite patterns) extending a common outer scope can be aligned,
// so that alpha-equivalence can be checked without renaming more than
// necessary.

// A UnifyOutcome classifies how two binders were aligned, cheapest
// first.
type UnifyOutcome int

const (
	// Identical: both sides introduce the numerically same identifier;
	// the two inner scopes are the same scope and nothing is renamed.
	Identical UnifyOutcome = iota

	// RenameRight: renaming only the right side to the left side's
	// identifier suffices; the left binder is canonical.
	RenameRight

	// RenameLeft: the symmetric case.
	RenameLeft

	// RenameBoth: neither identifier can be reused; both sides are
	// renamed to a fresh one.
	RenameBoth

	// NotUnifiable: the two patterns have different shapes;
	// alpha-equivalence fails immediately. This is a normal result,
	// not an error.
	NotUnifiable
)

var outcomeNames = [...]string{
	Identical:    "identical",
	RenameRight:  "rename-right",
	RenameLeft:   "rename-left",
	RenameBoth:   "rename-both",
	NotUnifiable: "not-unifiable",
}

func (o UnifyOutcome) String() string { return outcomeNames[o] }

// A UnifyResult is the outcome of unifying two patterns, together with
// the canonical merged pattern and the renamings each side must undergo
// before their bodies can be compared in a shared inner scope.
type UnifyResult struct {
	Outcome UnifyOutcome
	Pattern Pattern // canonical merged pattern; nil iff NotUnifiable

	renameL map[Name]Name
	renameR map[Name]Name
}

// ApplyLeft applies the renaming the unification demands of the left
// body. innerScope is the scope extended by the canonical pattern.
func (r UnifyResult) ApplyLeft(innerScope Scope, body Term) Term {
	return applyRenaming(innerScope, r.renameL, body)
}

// ApplyRight is ApplyLeft for the right body.
func (r UnifyResult) ApplyRight(innerScope Scope, body Term) Term {
	return applyRenaming(innerScope, r.renameR, body)
}

func applyRenaming(scope Scope, ren map[Name]Name, body Term) Term {
	if len(ren) == 0 {
		return body
	}
	s := IdentitySubst()
	for from, to := range ren {
		s = s.Add(NameBinder{name: from}, &Var{Name: to})
	}
	return Substitute(scope, s, body)
}

// UnifyBinders unifies two single-name binders that extend the common
// outer scope. Tie-break: the smaller identifier is canonical and the
// other side is renamed to it — an arbitrary but deterministic choice.
// Reusing the smaller identifier is only safe if it is fresh for the
// outer scope (always true for allocator-produced binders); if not,
// both sides are renamed to a fresh identifier.
func UnifyBinders(scope Scope, l, r NameBinder) UnifyResult {
	switch {
	case l.name == r.name:
		return UnifyResult{Outcome: Identical, Pattern: l}
	case l.name.id < r.name.id && !scope.Member(l.name):
		return UnifyResult{
			Outcome: RenameRight,
			Pattern: l,
			renameR: map[Name]Name{r.name: l.name},
		}
	case r.name.id < l.name.id && !scope.Member(r.name):
		return UnifyResult{
			Outcome: RenameLeft,
			Pattern: r,
			renameL: map[Name]Name{l.name: r.name},
		}
	default:
		fresh := FreshName(scope.Extend(l).Extend(r))
		nb := NameBinder{name: fresh}
		return UnifyResult{
			Outcome: RenameBoth,
			Pattern: nb,
			renameL: map[Name]Name{l.name: fresh},
			renameR: map[Name]Name{r.name: fresh},
		}
	}
}

// A UnifiablePattern is a client-defined pattern shape that knows how to
// unify itself with another pattern. UnifyPatterns consults it before
// the built-in shapes.
type UnifiablePattern interface {
	Pattern
	Unify(scope Scope, other Pattern) UnifyResult
}

// UnifyPatterns unifies two patterns extending the common outer scope.
// Composite patterns unify binder-by-binder in traversal order and the
// component results are merged pairwise; any NotUnifiable component, or
// a shape mismatch, fails the whole unification.
func UnifyPatterns(scope Scope, l, r Pattern) UnifyResult {
	if u, ok := l.(UnifiablePattern); ok {
		return u.Unify(scope, r)
	}
	switch lp := l.(type) {
	case WildcardPattern:
		if _, ok := r.(WildcardPattern); ok {
			return UnifyResult{Outcome: Identical, Pattern: lp}
		}
	case EmptyPattern:
		// Uninhabited on both sides: vacuously identical.
		if _, ok := r.(EmptyPattern); ok {
			return UnifyResult{Outcome: Identical, Pattern: lp}
		}
	case NameBinder:
		if rb, ok := r.(NameBinder); ok {
			return UnifyBinders(scope, lp, rb)
		}
	case NameBinderList:
		if rl, ok := r.(NameBinderList); ok {
			return unifyBinderLists(scope, lp, rl)
		}
	case NameBinderSet:
		if rs, ok := r.(NameBinderSet); ok {
			res := unifyBinderLists(scope, lp.List(), rs.List())
			if res.Outcome != NotUnifiable {
				res.Pattern = res.Pattern.(NameBinderList).Set()
			}
			return res
		}
	}
	return UnifyResult{Outcome: NotUnifiable}
}

func unifyBinderLists(scope Scope, l, r NameBinderList) UnifyResult {
	if len(l) != len(r) {
		return UnifyResult{Outcome: NotUnifiable}
	}
	res := UnifyResult{Outcome: Identical, Pattern: NameBinderList(nil)}
	merged := make(NameBinderList, 0, len(l))
	cur := scope
	for i := range l {
		elem := UnifyBinders(cur, l[i], r[i])
		if elem.Outcome == NotUnifiable {
			return UnifyResult{Outcome: NotUnifiable}
		}
		res.Outcome = mergeOutcomes(res.Outcome, elem.Outcome)
		res.renameL = mergeRenamings(res.renameL, elem.renameL)
		res.renameR = mergeRenamings(res.renameR, elem.renameR)
		b := elem.Pattern.(NameBinder)
		merged = append(merged, b)
		cur = cur.Extend(b)
	}
	res.Pattern = merged
	return res
}

// mergeOutcomes is the fixed pairwise combination table:
// identical is the unit, equal-side renames stay on that side, and
// mixed-side renames escalate to rename-both.
func mergeOutcomes(a, b UnifyOutcome) UnifyOutcome {
	switch {
	case a == NotUnifiable || b == NotUnifiable:
		return NotUnifiable
	case a == Identical:
		return b
	case b == Identical:
		return a
	case a == b:
		return a
	default:
		return RenameBoth
	}
}

// mergeRenamings unions two renaming maps. The domains are disjoint
// because a pattern's binders are pairwise distinct.
func mergeRenamings(a, b map[Name]Name) map[Name]Name {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = make(map[Name]Name, len(b))
	}
	for k, v := range b {
		a[k] = v
	}
	return a
}
