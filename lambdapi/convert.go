package lambdapi

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"go.nominal.dev/lambdapi/syntax"
	"go.nominal.dev/nominal"
)

// ErrUnbound is reported (wrapped, with position) when a raw term
// refers to an identifier with no binding in the current environment.
var ErrUnbound = errors.New("unbound identifier")

// An Env maps raw identifiers to the names their binding sites
// introduced. Extension copies, so sibling subterms can share an
// environment the same way they share a scope.
type Env map[string]nominal.Name

func (e Env) extend(ident string, n nominal.Name) Env {
	e2 := make(Env, len(e)+1)
	for k, v := range e {
		e2[k] = v
	}
	e2[ident] = n
	return e2
}

// FromSyntax converts a raw term to a scope-indexed one. Every
// identifier must be bound either by an enclosing binder in the term or
// by env; otherwise the conversion fails with ErrUnbound. Binders are
// allocated freshly in source order, so conversion of a closed term is
// deterministic.
func FromSyntax(scope nominal.Scope, env Env, t syntax.Term) (nominal.Term, error) {
	switch t := syntax.Unparen(t).(type) {
	case *syntax.Var:
		n, ok := env[t.Name]
		if !ok {
			return nil, errors.Wrapf(ErrUnbound, "%v: %q", t.NamePos, t.Name)
		}
		return Var(n), nil

	case *syntax.App:
		fn, err := FromSyntax(scope, env, t.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := FromSyntax(scope, env, t.Arg)
		if err != nil {
			return nil, err
		}
		return App(fn, arg), nil

	case *syntax.Lam:
		pat, inner, env2 := importPattern(scope, env, t.Param)
		body, err := FromSyntax(inner, env2, t.Body)
		if err != nil {
			return nil, err
		}
		return Lam(pat, body), nil

	case *syntax.Pi:
		dom, err := FromSyntax(scope, env, t.Dom)
		if err != nil {
			return nil, err
		}
		pat, inner, env2 := importPattern(scope, env, t.Param)
		cod, err := FromSyntax(inner, env2, t.Cod)
		if err != nil {
			return nil, err
		}
		return Pi(dom, pat, cod), nil

	default:
		return nil, errors.Newf("unexpected syntax node %T", t)
	}
}

func importPattern(scope nominal.Scope, env Env, pat *syntax.Pattern) (nominal.Pattern, nominal.Scope, Env) {
	if pat.Wildcard() {
		return nominal.WildcardPattern{}, scope, env
	}
	b, inner := nominal.FreshBinder(scope)
	return b, inner, env.extend(pat.Name, b.Name())
}

// An IdentFunc turns a raw name identifier into a display identifier.
// The core guarantees distinct integers; the function must guarantee
// distinct strings.
type IdentFunc func(id int) string

// DefaultIdent is the IdentFunc used by the command line tools.
func DefaultIdent(id int) string { return fmt.Sprintf("x%d", id) }

// ToSyntax converts a scope-indexed term back to raw syntax, naming
// every bound and free variable via ident.
func ToSyntax(ident IdentFunc, t nominal.Term) (syntax.Term, error) {
	switch t := t.(type) {
	case *nominal.Var:
		return &syntax.Var{Name: ident(t.Name.ID())}, nil

	case *nominal.Node:
		switch sig := t.Sig.(type) {
		case AppSig:
			fn, err := ToSyntax(ident, sig.Fn)
			if err != nil {
				return nil, err
			}
			arg, err := ToSyntax(ident, sig.Arg)
			if err != nil {
				return nil, err
			}
			return &syntax.App{Fn: fn, Arg: arg}, nil

		case LamSig:
			pat, err := exportPattern(ident, sig.Body.Pattern)
			if err != nil {
				return nil, err
			}
			body, err := ToSyntax(ident, sig.Body.Body)
			if err != nil {
				return nil, err
			}
			return &syntax.Lam{Param: pat, Body: body}, nil

		case PiSig:
			dom, err := ToSyntax(ident, sig.Dom)
			if err != nil {
				return nil, err
			}
			pat, err := exportPattern(ident, sig.Cod.Pattern)
			if err != nil {
				return nil, err
			}
			cod, err := ToSyntax(ident, sig.Cod.Body)
			if err != nil {
				return nil, err
			}
			return &syntax.Pi{Param: pat, Dom: dom, Cod: cod}, nil
		}
	}
	return nil, errors.Newf("unexpected term %T", t)
}

func exportPattern(ident IdentFunc, pat nominal.Pattern) (*syntax.Pattern, error) {
	switch pat := pat.(type) {
	case nominal.WildcardPattern:
		return &syntax.Pattern{Name: "_"}, nil
	case nominal.NameBinder:
		return &syntax.Pattern{Name: ident(pat.Name().ID())}, nil
	default:
		return nil, errors.Newf("unexpected pattern %T", pat)
	}
}
