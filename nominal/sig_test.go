package nominal

// A minimal untyped lambda calculus with a unit constant, used to
// exercise the generic traversal from inside the package.

type unitSig struct{}

func (s unitSig) Map(func(ScopedTerm) ScopedTerm, func(Term) Term) Signature { return s }

func (unitSig) ZipMatch(other Signature) ([]ZipPair, error) {
	if _, ok := other.(unitSig); ok {
		return nil, nil
	}
	return nil, ErrShapeMismatch
}

type appSig struct {
	fun, arg Term
}

func (s appSig) Map(_ func(ScopedTerm) ScopedTerm, onTerm func(Term) Term) Signature {
	return appSig{fun: onTerm(s.fun), arg: onTerm(s.arg)}
}

func (s appSig) ZipMatch(other Signature) ([]ZipPair, error) {
	o, ok := other.(appSig)
	if !ok {
		return nil, ErrShapeMismatch
	}
	return []ZipPair{
		TermPair{L: s.fun, R: o.fun},
		TermPair{L: s.arg, R: o.arg},
	}, nil
}

type lamSig struct {
	body ScopedTerm
}

func (s lamSig) Map(onScoped func(ScopedTerm) ScopedTerm, _ func(Term) Term) Signature {
	return lamSig{body: onScoped(s.body)}
}

func (s lamSig) ZipMatch(other Signature) ([]ZipPair, error) {
	o, ok := other.(lamSig)
	if !ok {
		return nil, ErrShapeMismatch
	}
	return []ZipPair{ScopedPair{L: s.body, R: o.body}}, nil
}

func unit() Term         { return &Node{Sig: unitSig{}} }
func v(n Name) Term      { return &Var{Name: n} }
func app(f, a Term) Term { return &Node{Sig: appSig{fun: f, arg: a}} }
func lam(b NameBinder, body Term) Term {
	return &Node{Sig: lamSig{body: ScopedTerm{Pattern: b, Body: body}}}
}

// lamBinder extracts the binder of a lambda built by lam.
func lamBinder(t Term) NameBinder {
	return t.(*Node).Sig.(lamSig).body.Pattern.(NameBinder)
}

func lamBody(t Term) Term {
	return t.(*Node).Sig.(lamSig).body.Body
}
