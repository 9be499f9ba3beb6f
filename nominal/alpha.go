package nominal

import "fmt"

// Substitute applies subst to term, producing a term valid in scope
// (the output scope of the substitution). Crossing a binder renames it
// only if its identifier clashes with scope; otherwise the binder and
// the substitution are reused as-is, so non-clashing terms are rebuilt
// without any renaming work.
func Substitute(scope Scope, subst Subst, term Term) Term {
	return substitute(scope, subst, term, false)
}

// SubstituteRefreshed is Substitute but renames every binder it
// crosses, producing a canonical numbering of bound names. Its result
// is always alpha-equivalent to Substitute's.
func SubstituteRefreshed(scope Scope, subst Subst, term Term) Term {
	return substitute(scope, subst, term, true)
}

// RefreshTerm renumbers every bound name in term to the canonical
// numbering for scope, leaving free names untouched.
func RefreshTerm(scope Scope, term Term) Term {
	return substitute(scope, IdentitySubst(), term, true)
}

func substitute(scope Scope, subst Subst, term Term, force bool) Term {
	switch t := term.(type) {
	case *Var:
		return subst.Lookup(t.Name)
	case *Node:
		sig := t.Sig.Map(
			func(st ScopedTerm) ScopedTerm {
				pat, inner, s := refreshPattern(st.Pattern, scope, subst, force)
				return ScopedTerm{Pattern: pat, Body: substitute(inner, s, st.Body, force)}
			},
			func(sub Term) Term {
				return substitute(scope, subst, sub, force)
			},
		)
		return &Node{Sig: sig}
	default:
		panic(fmt.Sprintf("nominal: unexpected term %T", term))
	}
}

// AlphaEquiv reports whether a and b, both valid in scope, are equal up
// to consistent renaming of bound names. It aligns binders pairwise via
// unification, renaming only the sides the unification outcome demands,
// and never renames at all along all-Identical spines.
func AlphaEquiv(scope Scope, a, b Term) bool {
	switch a := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && a.Name == bv.Name
	case *Node:
		bn, ok := b.(*Node)
		if !ok {
			return false
		}
		pairs, err := a.Sig.ZipMatch(bn.Sig)
		if err != nil {
			return false
		}
		for _, pair := range pairs {
			switch p := pair.(type) {
			case TermPair:
				if !AlphaEquiv(scope, p.L, p.R) {
					return false
				}
			case ScopedPair:
				res := UnifyPatterns(scope, p.L.Pattern, p.R.Pattern)
				if res.Outcome == NotUnifiable {
					return false
				}
				inner := res.Pattern.FoldBinders(scope, func(Scope, NameBinder) {})
				lb := res.ApplyLeft(inner, p.L.Body)
				rb := res.ApplyRight(inner, p.R.Body)
				if !AlphaEquiv(inner, lb, rb) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

// AlphaEquivRefreshed decides the same relation as AlphaEquiv by fully
// renumbering both terms to the canonical form and comparing raw
// structure. Simpler, but does strictly more renaming work.
func AlphaEquivRefreshed(scope Scope, a, b Term) bool {
	return structurallyEqual(RefreshTerm(scope, a), RefreshTerm(scope, b))
}

func structurallyEqual(a, b Term) bool {
	switch a := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && a.Name == bv.Name
	case *Node:
		bn, ok := b.(*Node)
		if !ok {
			return false
		}
		pairs, err := a.Sig.ZipMatch(bn.Sig)
		if err != nil {
			return false
		}
		for _, pair := range pairs {
			switch p := pair.(type) {
			case TermPair:
				if !structurallyEqual(p.L, p.R) {
					return false
				}
			case ScopedPair:
				if !sameBinderSequence(p.L.Pattern, p.R.Pattern) {
					return false
				}
				if !structurallyEqual(p.L.Body, p.R.Body) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func sameBinderSequence(l, r Pattern) bool {
	li, ri := binderSequence(l), binderSequence(r)
	if len(li) != len(ri) {
		return false
	}
	for i := range li {
		if li[i] != ri[i] {
			return false
		}
	}
	return true
}

func binderSequence(p Pattern) []int {
	var ids []int
	p.FoldBinders(EmptyScope(), func(_ Scope, b NameBinder) {
		ids = append(ids, b.name.id)
	})
	return ids
}
