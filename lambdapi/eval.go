package lambdapi

import (
	"context"

	"go.nominal.dev/nominal"
)

// Whnf reduces t, valid in scope, to weak head normal form: the head
// redex is contracted repeatedly by capture-avoiding substitution, and
// nothing under an abstraction or to the right of a stuck head is
// touched. The context is consulted once per contraction, so a
// divergent reduction can be cancelled.
func Whnf(ctx context.Context, scope nominal.Scope, t nominal.Term) (nominal.Term, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node, ok := t.(*nominal.Node)
		if !ok {
			return t, nil
		}
		app, ok := node.Sig.(AppSig)
		if !ok {
			return t, nil
		}
		fn, err := Whnf(ctx, scope, app.Fn)
		if err != nil {
			return nil, err
		}
		lam, ok := asLam(fn)
		if !ok {
			if fn == app.Fn {
				return t, nil
			}
			return App(fn, app.Arg), nil
		}
		t = beta(scope, lam.Body, app.Arg)
	}
}

// Nf reduces t to full beta-normal form by normalizing the head and
// then every subterm, descending under binders.
func Nf(ctx context.Context, scope nominal.Scope, t nominal.Term) (nominal.Term, error) {
	head, err := Whnf(ctx, scope, t)
	if err != nil {
		return nil, err
	}
	switch head := head.(type) {
	case *nominal.Node:
		var walkErr error
		sig := head.Sig.Map(
			func(st nominal.ScopedTerm) nominal.ScopedTerm {
				if walkErr != nil {
					return st
				}
				inner := st.Pattern.FoldBinders(scope, func(nominal.Scope, nominal.NameBinder) {})
				body, err := Nf(ctx, inner, st.Body)
				if err != nil {
					walkErr = err
					return st
				}
				return nominal.ScopedTerm{Pattern: st.Pattern, Body: body}
			},
			func(sub nominal.Term) nominal.Term {
				if walkErr != nil {
					return sub
				}
				out, err := Nf(ctx, scope, sub)
				if err != nil {
					walkErr = err
					return sub
				}
				return out
			},
		)
		if walkErr != nil {
			return nil, walkErr
		}
		return &nominal.Node{Sig: sig}, nil
	default:
		return head, nil
	}
}

// Equiv reports whether a and b normalize to alpha-equivalent terms.
func Equiv(ctx context.Context, scope nominal.Scope, a, b nominal.Term) (bool, error) {
	na, err := Nf(ctx, scope, a)
	if err != nil {
		return false, err
	}
	nb, err := Nf(ctx, scope, b)
	if err != nil {
		return false, err
	}
	return nominal.AlphaEquiv(scope, na, nb), nil
}

func asLam(t nominal.Term) (LamSig, bool) {
	if node, ok := t.(*nominal.Node); ok {
		if lam, ok := node.Sig.(LamSig); ok {
			return lam, true
		}
	}
	return LamSig{}, false
}

// beta contracts (λpat. body) arg. For a name binder the argument is
// substituted for the bound name; a wildcard discards it.
func beta(scope nominal.Scope, st nominal.ScopedTerm, arg nominal.Term) nominal.Term {
	switch pat := st.Pattern.(type) {
	case nominal.WildcardPattern:
		return st.Body
	case nominal.NameBinder:
		subst := nominal.IdentitySubst().Add(pat, arg)
		return nominal.Substitute(scope, subst, st.Body)
	default:
		panic("lambdapi: abstraction with a non-single pattern")
	}
}
