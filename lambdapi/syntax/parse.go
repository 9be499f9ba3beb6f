package syntax

import "github.com/cockroachdb/errors"

// Parse parses the complete input as a lambda-Pi program.
func Parse(filename, src string) (*Program, error) {
	p := &parser{sc: newScanner(filename, src)}
	p.next()
	prog := &Program{}
	for p.tok != EOF {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		prog.Commands = append(prog.Commands, cmd)
	}
	return prog, nil
}

// ParseTerm parses the complete input as a single term.
func ParseTerm(filename, src string) (Term, error) {
	p := &parser{sc: newScanner(filename, src)}
	p.next()
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.tok != EOF {
		return nil, p.errorf("got %v, want end of file", p.tok)
	}
	return t, nil
}

type parser struct {
	sc  *scanner
	tok Token
	val tokenValue
}

func (p *parser) next() {
	p.tok = p.sc.nextToken(&p.val)
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Newf("%s:%v: "+format,
		append([]interface{}{p.sc.filename, p.val.pos}, args...)...)
}

// consume checks that the current token is want, records its position,
// and advances.
func (p *parser) consume(want Token) (Position, error) {
	if p.tok != want {
		return Position{}, p.errorf("got %v, want %v", p.tok, want)
	}
	pos := p.val.pos
	p.next()
	return pos, nil
}

func (p *parser) parseCommand() (Command, error) {
	switch p.tok {
	case CHECK:
		kw := p.val.pos
		p.next()
		l, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(EQ); err != nil {
			return nil, err
		}
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(SEMI)
		if err != nil {
			return nil, err
		}
		return &CheckCommand{Keyword: kw, L: l, R: r, Semi: semi}, nil

	case COMPUTE:
		kw := p.val.pos
		p.next()
		x, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(SEMI)
		if err != nil {
			return nil, err
		}
		return &ComputeCommand{Keyword: kw, X: x, Semi: semi}, nil
	}
	return nil, p.errorf("got %v, want check or compute", p.tok)
}

func (p *parser) parseTerm() (Term, error) {
	switch p.tok {
	case LAMBDA:
		pos := p.val.pos
		p.next()
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(DOT); err != nil {
			return nil, err
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &Lam{Lambda: pos, Param: pat, Body: body}, nil

	case PI:
		pos := p.val.pos
		p.next()
		if _, err := p.consume(LPAREN); err != nil {
			return nil, err
		}
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(COLON); err != nil {
			return nil, err
		}
		dom, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.consume(ARROW); err != nil {
			return nil, err
		}
		cod, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &Pi{PiPos: pos, Param: pat, Dom: dom, Cod: cod}, nil
	}
	return p.parseApp()
}

// parseApp parses a left-associative application spine.
func (p *parser) parseApp() (Term, error) {
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.tok == IDENT || p.tok == LPAREN {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = &App{Fn: fn, Arg: arg}
	}
	return fn, nil
}

func (p *parser) parseAtom() (Term, error) {
	switch p.tok {
	case IDENT:
		x := &Var{NamePos: p.val.pos, Name: p.val.raw}
		p.next()
		return x, nil
	case LPAREN:
		lparen := p.val.pos
		p.next()
		x, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		rparen, err := p.consume(RPAREN)
		if err != nil {
			return nil, err
		}
		return &Paren{Lparen: lparen, Rparen: rparen, X: x}, nil
	}
	return nil, p.errorf("got %v, want term", p.tok)
}

func (p *parser) parsePattern() (*Pattern, error) {
	if p.tok != IDENT {
		return nil, p.errorf("got %v, want identifier or _", p.tok)
	}
	pat := &Pattern{NamePos: p.val.pos, Name: p.val.raw}
	p.next()
	return pat, nil
}
