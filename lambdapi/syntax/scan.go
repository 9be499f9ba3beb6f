package syntax

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// A Position describes the location of a rune of input, 1-based.
type Position struct {
	Line int32
	Col  int32 // in runes, not bytes
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// add returns the position just past s on the same line.
func (p Position) add(s string) Position {
	p.Col += int32(utf8.RuneCountInString(s))
	return p
}

// A Token is a lexical token of lambda-Pi.
type Token int8

const (
	ILLEGAL Token = iota
	EOF

	IDENT  // x
	LAMBDA // λ (or \)
	PI     // Π (or the keyword Pi)
	DOT    // .
	COLON  // :
	ARROW  // → (or ->)
	LPAREN // (
	RPAREN // )
	SEMI   // ;
	EQ     // =

	// keywords
	CHECK   // check
	COMPUTE // compute
)

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",
	IDENT:   "identifier",
	LAMBDA:  `λ`,
	PI:      `Π`,
	DOT:     ".",
	COLON:   ":",
	ARROW:   `→`,
	LPAREN:  "(",
	RPAREN:  ")",
	SEMI:    ";",
	EQ:      "=",
	CHECK:   "check",
	COMPUTE: "compute",
}

func (tok Token) String() string { return tokenNames[tok] }

var keywords = map[string]Token{
	"check":   CHECK,
	"compute": COMPUTE,
	"Pi":      PI,
}

// A tokenValue records the position and raw text of each token.
type tokenValue struct {
	raw string   // raw text of token
	pos Position // start position of token
}

type scanner struct {
	filename string
	rest     string
	pos      Position
}

func newScanner(filename, src string) *scanner {
	return &scanner{
		filename: filename,
		rest:     src,
		pos:      Position{Line: 1, Col: 1},
	}
}

// peekRune returns the next rune without consuming it, or 0 at EOF.
func (sc *scanner) peekRune() rune {
	if sc.rest == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(sc.rest)
	return r
}

func (sc *scanner) readRune() rune {
	r, size := utf8.DecodeRuneInString(sc.rest)
	sc.rest = sc.rest[size:]
	if r == '\n' {
		sc.pos.Line++
		sc.pos.Col = 1
	} else {
		sc.pos.Col++
	}
	return r
}

// nextToken scans the next token into val and returns its kind.
func (sc *scanner) nextToken(val *tokenValue) Token {
	// Skip whitespace and -- comments.
	for {
		r := sc.peekRune()
		if r == 0 {
			break
		}
		if unicode.IsSpace(r) {
			sc.readRune()
			continue
		}
		if r == '-' && len(sc.rest) > 1 && sc.rest[1] == '-' {
			for sc.rest != "" && sc.peekRune() != '\n' {
				sc.readRune()
			}
			continue
		}
		break
	}

	val.pos = sc.pos
	if sc.rest == "" {
		val.raw = ""
		return EOF
	}

	start := sc.rest
	r := sc.readRune()
	switch r {
	case 'λ', '\\':
		val.raw = string(r)
		return LAMBDA
	case 'Π':
		val.raw = string(r)
		return PI
	case '.':
		val.raw = "."
		return DOT
	case ':':
		val.raw = ":"
		return COLON
	case '(':
		val.raw = "("
		return LPAREN
	case ')':
		val.raw = ")"
		return RPAREN
	case ';':
		val.raw = ";"
		return SEMI
	case '=':
		val.raw = "="
		return EQ
	case '→':
		val.raw = string(r)
		return ARROW
	case '-':
		if sc.peekRune() == '>' {
			sc.readRune()
			val.raw = "->"
			return ARROW
		}
		val.raw = "-"
		return ILLEGAL
	}

	if isIdentStart(r) {
		n := len(start) - len(sc.rest)
		for sc.rest != "" && isIdentCont(sc.peekRune()) {
			sc.readRune()
			n = len(start) - len(sc.rest)
		}
		val.raw = start[:n]
		if tok, ok := keywords[val.raw]; ok {
			return tok
		}
		return IDENT
	}

	val.raw = string(r)
	return ILLEGAL
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) && r != 'λ' && r != 'Π'
}

func isIdentCont(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
