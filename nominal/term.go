package nominal

import "github.com/cockroachdb/errors"

// A Term is a scope-indexed syntax tree: either a variable or a node
// whose shape is supplied by the client's Signature.
type Term interface {
	term()
}

func (*Var) term()  {}
func (*Node) term() {}

// A Var is a leaf referring to a name valid in the term's scope.
type Var struct {
	Name Name
}

// A Node holds one client-defined node shape. The shape's children are
// any mixture of subterms in the same scope and scoped subterms.
type Node struct {
	Sig Signature
}

// A ScopedTerm is a binder together with its body: the pattern extends
// the ambient scope before the body is interpreted.
type ScopedTerm struct {
	Pattern Pattern
	Body    Term
}

// A Signature is one node shape of a client language. Implementations
// are plain structs whose fields are Term or ScopedTerm values (for
// lambda calculus: application, abstraction, and so on).
//
// The two methods are all the traversal machinery needs to be generic
// over arbitrary languages.
type Signature interface {
	// Map rebuilds the shape with every scoped subterm passed through
	// onScoped and every plain subterm through onTerm, preserving the
	// constructor and field order.
	Map(onScoped func(ScopedTerm) ScopedTerm, onTerm func(Term) Term) Signature

	// ZipMatch pairs the shape's children with other's, position by
	// position. If other is a different constructor it returns
	// ErrShapeMismatch (wrapped); it never pairs a plain subterm with
	// a scoped one.
	ZipMatch(other Signature) ([]ZipPair, error)
}

// ErrShapeMismatch is returned (wrapped) by Signature.ZipMatch when the
// two shapes have different constructors.
var ErrShapeMismatch = errors.New("node shapes do not match")

// A ZipPair is one pair of corresponding children produced by ZipMatch:
// either two plain subterms or two scoped subterms.
type ZipPair interface {
	zipPair()
}

func (TermPair) zipPair()   {}
func (ScopedPair) zipPair() {}

// A TermPair pairs two plain subterms.
type TermPair struct {
	L, R Term
}

// A ScopedPair pairs two scoped subterms.
type ScopedPair struct {
	L, R ScopedTerm
}
