package syntax

import (
	"fmt"
	"strings"
)

// WriteTerm writes t to buf as concrete syntax, parenthesizing only
// where the grammar requires it. Abstractions and Pi types extend as
// far right as possible; application is left-associative and binds
// tightest.
func WriteTerm(buf *strings.Builder, t Term) {
	writeTerm(buf, t, precLow)
}

// TermString formats t as concrete syntax.
func TermString(t Term) string {
	var buf strings.Builder
	WriteTerm(&buf, t)
	return buf.String()
}

// CommandString formats cmd as concrete syntax, including the
// terminating semicolon.
func CommandString(cmd Command) string {
	var buf strings.Builder
	switch cmd := cmd.(type) {
	case *CheckCommand:
		buf.WriteString("check ")
		writeTerm(&buf, cmd.L, precLow)
		buf.WriteString(" = ")
		writeTerm(&buf, cmd.R, precLow)
	case *ComputeCommand:
		buf.WriteString("compute ")
		writeTerm(&buf, cmd.X, precLow)
	default:
		panic(cmd)
	}
	buf.WriteString(";")
	return buf.String()
}

// ProgramString formats prog with one command per line.
func ProgramString(prog *Program) string {
	lines := make([]string, len(prog.Commands))
	for i, cmd := range prog.Commands {
		lines[i] = CommandString(cmd)
	}
	return strings.Join(lines, "\n")
}

const (
	precLow  = iota // binder bodies, command positions
	precApp         // function and argument head positions
	precAtom        // application arguments
)

func writeTerm(buf *strings.Builder, t Term, prec int) {
	switch t := t.(type) {
	case *Var:
		buf.WriteString(t.Name)
	case *Paren:
		writeTerm(buf, t.X, prec)
	case *Lam:
		if prec > precLow {
			buf.WriteString("(")
			defer buf.WriteString(")")
		}
		fmt.Fprintf(buf, "λ%s. ", t.Param.Name)
		writeTerm(buf, t.Body, precLow)
	case *Pi:
		if prec > precLow {
			buf.WriteString("(")
			defer buf.WriteString(")")
		}
		fmt.Fprintf(buf, "Π (%s : ", t.Param.Name)
		writeTerm(buf, t.Dom, precLow)
		buf.WriteString(") → ")
		writeTerm(buf, t.Cod, precLow)
	case *App:
		if prec > precApp {
			buf.WriteString("(")
			defer buf.WriteString(")")
		}
		writeTerm(buf, t.Fn, precApp)
		buf.WriteString(" ")
		writeTerm(buf, t.Arg, precAtom)
	default:
		panic(t)
	}
}
