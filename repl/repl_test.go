package repl

import (
	"strings"
	"testing"

	"go.nominal.dev/lambdapi/syntax"
)

func TestParseLine(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string // CommandString of the parsed command
	}{
		{`compute λx. x;`, `compute λx. x;`},
		{`compute λx. x`, `compute λx. x;`}, // semicolon optional
		{`check λx. x = λy. y;`, `check λx. x = λy. y;`},
		{`check λx. x = λy. y`, `check λx. x = λy. y;`},
		{`λx. x`, `compute λx. x;`}, // bare term
		{`λx. x;`, `compute λx. x;`},
		{`  (λf. f) (λx. x)  `, `compute (λf. f) (λx. x);`},
	} {
		cmd, err := ParseLine(test.input)
		if err != nil {
			t.Errorf("ParseLine(%q): %v", test.input, err)
			continue
		}
		if got := syntax.CommandString(cmd); got != test.want {
			t.Errorf("ParseLine(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{`λ. x`, "got ."},
		{`compute (x`, "want )"},
		{`check λx. x;`, "want ="},
		{`compute x; compute y;`, "one command per line"},
		{`compute x; compute y`, "one command per line"},
	} {
		_, err := ParseLine(test.input)
		if err == nil {
			t.Errorf("ParseLine(%q) succeeded, want error", test.input)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("ParseLine(%q) error %q, want substring %q", test.input, err, test.want)
		}
	}
}
