// Package syntax provides a lambda-Pi parser and raw abstract syntax tree.
//
// The trees in this package are "raw": variables are plain strings and
// nothing prevents capture or shadowing bugs. The lambdapi package
// converts them to and from scope-indexed terms.
package syntax

// A Node is a node in a lambda-Pi syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// A Program is a sequence of commands.
type Program struct {
	Commands []Command
}

func (x *Program) Span() (start, end Position) {
	if len(x.Commands) == 0 {
		return
	}
	start, _ = x.Commands[0].Span()
	_, end = x.Commands[len(x.Commands)-1].Span()
	return start, end
}

// A Command is a top-level instruction.
type Command interface {
	Node
	command()
}

func (*CheckCommand) command()   {}
func (*ComputeCommand) command() {}

// A CheckCommand asserts that two terms are equal up to renaming of
// bound variables and reduction to weak head normal form:
//
//	check e1 = e2 ;
type CheckCommand struct {
	Keyword Position
	L, R    Term
	Semi    Position
}

func (x *CheckCommand) Span() (start, end Position) {
	return x.Keyword, x.Semi.add(";")
}

// A ComputeCommand normalizes a term and prints it:
//
//	compute e ;
type ComputeCommand struct {
	Keyword Position
	X       Term
	Semi    Position
}

func (x *ComputeCommand) Span() (start, end Position) {
	return x.Keyword, x.Semi.add(";")
}

// A Term is a lambda-Pi term.
type Term interface {
	Node
	term()
}

func (*Var) term()   {}
func (*Lam) term()   {}
func (*Pi) term()    {}
func (*App) term()   {}
func (*Paren) term() {}

// A Var is a reference to a variable: x.
type Var struct {
	NamePos Position
	Name    string
}

func (x *Var) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// A Pattern is a binding occurrence: an identifier or the wildcard.
type Pattern struct {
	NamePos Position
	Name    string // "_" for the wildcard
}

func (x *Pattern) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// Wildcard reports whether the pattern binds nothing.
func (x *Pattern) Wildcard() bool { return x.Name == "_" }

// A Lam is an abstraction: λ x . e.
type Lam struct {
	Lambda Position
	Param  *Pattern
	Body   Term
}

func (x *Lam) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.Lambda, end
}

// A Pi is a dependent function type: Π (x : A) → B.
// The parameter is bound in B but not in A.
type Pi struct {
	PiPos Position
	Param *Pattern
	Dom   Term
	Cod   Term
}

func (x *Pi) Span() (start, end Position) {
	_, end = x.Cod.Span()
	return x.PiPos, end
}

// An App is an application: f e.
type App struct {
	Fn  Term
	Arg Term
}

func (x *App) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	_, end = x.Arg.Span()
	return start, end
}

// A Paren is a parenthesized term, kept so spans and printing are exact.
type Paren struct {
	Lparen, Rparen Position
	X              Term
}

func (x *Paren) Span() (start, end Position) {
	return x.Lparen, x.Rparen.add(")")
}

// Unparen strips any parentheses around t.
func Unparen(t Term) Term {
	for {
		p, ok := t.(*Paren)
		if !ok {
			return t
		}
		t = p.X
	}
}
