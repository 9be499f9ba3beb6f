package syntax

// Walk traverses a syntax tree in depth-first order. It calls f(n) for
// each node n before it visits the children of n. If f returns true,
// Walk visits each child, then calls f(nil).
func Walk(n Node, f func(n Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, cmd := range n.Commands {
			Walk(cmd, f)
		}
	case *CheckCommand:
		Walk(n.L, f)
		Walk(n.R, f)
	case *ComputeCommand:
		Walk(n.X, f)
	case *Var:
		// leaf
	case *Pattern:
		// leaf
	case *Lam:
		Walk(n.Param, f)
		Walk(n.Body, f)
	case *Pi:
		Walk(n.Param, f)
		Walk(n.Dom, f)
		Walk(n.Cod, f)
	case *App:
		Walk(n.Fn, f)
		Walk(n.Arg, f)
	case *Paren:
		Walk(n.X, f)
	default:
		panic(n)
	}

	f(nil)
}
