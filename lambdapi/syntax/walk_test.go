package syntax_test

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"go.nominal.dev/lambdapi/syntax"
)

func TestWalk(t *testing.T) {
	const src = `check λx. x = λy. f y y;`

	prog, err := syntax.Parse("hello.lp", src)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	var depth int
	syntax.Walk(prog, func(n syntax.Node) bool {
		if n == nil {
			depth--
			return true
		}
		fmt.Fprintf(&buf, "%s%s\n",
			strings.Repeat("  ", depth),
			strings.TrimPrefix(reflect.TypeOf(n).String(), "*syntax."))
		depth++
		return true
	})

	want := `Program
  CheckCommand
    Lam
      Pattern
      Var
    Lam
      Pattern
      App
        App
          Var
          Var
        Var
`
	if got := buf.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWalkPrune(t *testing.T) {
	prog, err := syntax.Parse("hello.lp", `compute f (λx. x);`)
	if err != nil {
		t.Fatal(err)
	}

	// Returning false prunes the descent.
	var visited []string
	syntax.Walk(prog, func(n syntax.Node) bool {
		if n == nil {
			return true
		}
		name := strings.TrimPrefix(reflect.TypeOf(n).String(), "*syntax.")
		visited = append(visited, name)
		return name != "Paren"
	})
	for _, name := range visited {
		if name == "Lam" {
			t.Errorf("Walk descended into a pruned subtree: %v", visited)
		}
	}
}
