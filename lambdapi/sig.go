// Package lambdapi implements a lambda-Pi calculus on top of the
// nominal core: a Signature for its three node shapes, conversion
// between raw syntax trees and scope-indexed terms, and normalization
// by substitution.
//
// It is the reference client of the nominal package; any other language
// with binders is wired up the same way.
package lambdapi

import "go.nominal.dev/nominal"

// AppSig is application: Fn applied to Arg. Neither position binds.
type AppSig struct {
	Fn, Arg nominal.Term
}

func (s AppSig) Map(_ func(nominal.ScopedTerm) nominal.ScopedTerm, onTerm func(nominal.Term) nominal.Term) nominal.Signature {
	return AppSig{Fn: onTerm(s.Fn), Arg: onTerm(s.Arg)}
}

func (s AppSig) ZipMatch(other nominal.Signature) ([]nominal.ZipPair, error) {
	o, ok := other.(AppSig)
	if !ok {
		return nil, nominal.ErrShapeMismatch
	}
	return []nominal.ZipPair{
		nominal.TermPair{L: s.Fn, R: o.Fn},
		nominal.TermPair{L: s.Arg, R: o.Arg},
	}, nil
}

// LamSig is abstraction: the body's pattern binds in the body.
type LamSig struct {
	Body nominal.ScopedTerm
}

func (s LamSig) Map(onScoped func(nominal.ScopedTerm) nominal.ScopedTerm, _ func(nominal.Term) nominal.Term) nominal.Signature {
	return LamSig{Body: onScoped(s.Body)}
}

func (s LamSig) ZipMatch(other nominal.Signature) ([]nominal.ZipPair, error) {
	o, ok := other.(LamSig)
	if !ok {
		return nil, nominal.ErrShapeMismatch
	}
	return []nominal.ZipPair{nominal.ScopedPair{L: s.Body, R: o.Body}}, nil
}

// PiSig is the dependent function type Π (x : Dom) → Cod: the pattern
// binds in Cod but not in Dom.
type PiSig struct {
	Dom nominal.Term
	Cod nominal.ScopedTerm
}

func (s PiSig) Map(onScoped func(nominal.ScopedTerm) nominal.ScopedTerm, onTerm func(nominal.Term) nominal.Term) nominal.Signature {
	return PiSig{Dom: onTerm(s.Dom), Cod: onScoped(s.Cod)}
}

func (s PiSig) ZipMatch(other nominal.Signature) ([]nominal.ZipPair, error) {
	o, ok := other.(PiSig)
	if !ok {
		return nil, nominal.ErrShapeMismatch
	}
	return []nominal.ZipPair{
		nominal.TermPair{L: s.Dom, R: o.Dom},
		nominal.ScopedPair{L: s.Cod, R: o.Cod},
	}, nil
}

// Var injects a name as a term.
func Var(n nominal.Name) nominal.Term { return &nominal.Var{Name: n} }

// App builds an application node.
func App(fn, arg nominal.Term) nominal.Term {
	return &nominal.Node{Sig: AppSig{Fn: fn, Arg: arg}}
}

// Lam builds an abstraction binding pat in body.
func Lam(pat nominal.Pattern, body nominal.Term) nominal.Term {
	return &nominal.Node{Sig: LamSig{Body: nominal.ScopedTerm{Pattern: pat, Body: body}}}
}

// Pi builds a dependent function type binding pat in cod.
func Pi(dom nominal.Term, pat nominal.Pattern, cod nominal.Term) nominal.Term {
	return &nominal.Node{Sig: PiSig{
		Dom: dom,
		Cod: nominal.ScopedTerm{Pattern: pat, Body: cod},
	}}
}
