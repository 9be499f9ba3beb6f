package syntax

import (
	"strings"
	"testing"
)

func scan(src string) string {
	sc := newScanner("foo.lp", src)
	var parts []string
	var val tokenValue
	for {
		tok := sc.nextToken(&val)
		switch tok {
		case EOF:
			parts = append(parts, "EOF")
		case IDENT, ILLEGAL:
			parts = append(parts, val.raw)
		default:
			parts = append(parts, tok.String())
		}
		if tok == EOF {
			break
		}
	}
	return strings.Join(parts, " ")
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{``, "EOF"},
		{`x`, "x EOF"},
		{`λx. x`, "λ x . x EOF"},
		{`\x. x`, "λ x . x EOF"},
		{`(f x)`, "( f x ) EOF"},
		{`Π (x : A) → B`, "Π ( x : A ) → B EOF"},
		{`Pi (x : A) -> B`, "Π ( x : A ) → B EOF"},
		{`check x = y;`, "check x = y ; EOF"},
		{`compute x;`, "compute x ; EOF"},
		{`_`, "_ EOF"},
		{`x' x1 foo_bar`, "x' x1 foo_bar EOF"},
		{"x -- a comment\ny", "x y EOF"},
		{"-- only a comment", "EOF"},
		{"  \n\t f ", "f EOF"},
		{`f?`, "f ? EOF"},
	} {
		if got := scan(test.input); got != test.want {
			t.Errorf("scan `%s` = [%s], want [%s]", test.input, got, test.want)
		}
	}
}

func TestScannerPositions(t *testing.T) {
	sc := newScanner("foo.lp", "λx.\n  f x")
	var val tokenValue
	wants := []struct {
		tok  Token
		line int32
		col  int32
	}{
		{LAMBDA, 1, 1},
		{IDENT, 1, 2},
		{DOT, 1, 3},
		{IDENT, 2, 3},
		{IDENT, 2, 5},
		{EOF, 2, 6},
	}
	for i, want := range wants {
		tok := sc.nextToken(&val)
		if tok != want.tok || val.pos.Line != want.line || val.pos.Col != want.col {
			t.Errorf("#%d: got %v at %v, want %v at %d:%d",
				i, tok, val.pos, want.tok, want.line, want.col)
		}
	}
}
