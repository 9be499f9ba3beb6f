// Package siggen generates Signature types from a grammar description.
//
// A grammar is a TOML file listing one constructor per node shape of a
// client language, each field being either a plain subterm or a scoped
// subterm. The generator emits the struct types, their Map and ZipMatch
// methods, and a New constructor per shape — the boilerplate every
// client of the nominal package otherwise writes by hand.
package siggen

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"
	toml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const nominalPkg = "go.nominal.dev/nominal"

// A Grammar describes the node shapes of one client language.
type Grammar struct {
	// Package is the Go package name of the generated file.
	Package string `koanf:"package"`

	Constructors []Constructor `koanf:"constructor"`
}

// A Constructor is one node shape.
type Constructor struct {
	Name   string  `koanf:"name"`
	Doc    string  `koanf:"doc"`
	Fields []Field `koanf:"fields"`
}

// A Field is one child position of a shape. Kind is "term" for a plain
// subterm or "scoped" for a binder-plus-body position.
type Field struct {
	Name string `koanf:"name"`
	Kind string `koanf:"kind"`
}

// Load reads and validates a grammar file.
func Load(path string) (*Grammar, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "loading grammar %s", path)
	}
	var g Grammar
	if err := k.Unmarshal("", &g); err != nil {
		return nil, errors.Wrapf(err, "decoding grammar %s", path)
	}
	if err := g.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid grammar %s", path)
	}
	return &g, nil
}

func (g *Grammar) validate() error {
	if g.Package == "" {
		return errors.New("missing package name")
	}
	if len(g.Constructors) == 0 {
		return errors.New("no constructors")
	}
	seen := make(map[string]bool)
	for _, c := range g.Constructors {
		if !isGoIdent(c.Name) {
			return errors.Newf("constructor name %q is not a Go identifier", c.Name)
		}
		if seen[c.Name] {
			return errors.Newf("duplicate constructor %s", c.Name)
		}
		seen[c.Name] = true
		for _, f := range c.Fields {
			if !isGoIdent(f.Name) {
				return errors.Newf("%s: field name %q is not a Go identifier", c.Name, f.Name)
			}
			if f.Kind != "term" && f.Kind != "scoped" {
				return errors.Newf("%s.%s: kind %q, want term or scoped", c.Name, f.Name, f.Kind)
			}
		}
	}
	return nil
}

func isGoIdent(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return s != ""
}

// Generate renders the Go source for g.
func Generate(g *Grammar) ([]byte, error) {
	f := jen.NewFile(g.Package)
	f.HeaderComment("Code generated by signaturegen. DO NOT EDIT.")

	for _, c := range g.Constructors {
		writeConstructor(f, c)
	}

	var buf []byte
	w := &byteWriter{buf: &buf}
	if err := f.Render(w); err != nil {
		return nil, errors.Wrap(err, "rendering generated signatures")
	}
	return buf, nil
}

type byteWriter struct{ buf *[]byte }

func (w *byteWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

func writeConstructor(f *jen.File, c Constructor) {
	fieldType := func(kind string) *jen.Statement {
		if kind == "scoped" {
			return jen.Qual(nominalPkg, "ScopedTerm")
		}
		return jen.Qual(nominalPkg, "Term")
	}

	if c.Doc != "" {
		f.Comment(fmt.Sprintf("%s is %s.", c.Name, c.Doc))
	}
	f.Type().Id(c.Name).StructFunc(func(grp *jen.Group) {
		for _, fl := range c.Fields {
			grp.Id(fl.Name).Add(fieldType(fl.Kind))
		}
	})

	f.Func().Params(jen.Id("s").Id(c.Name)).Id("Map").Params(
		jen.Id("onScoped").Func().Params(jen.Qual(nominalPkg, "ScopedTerm")).Qual(nominalPkg, "ScopedTerm"),
		jen.Id("onTerm").Func().Params(jen.Qual(nominalPkg, "Term")).Qual(nominalPkg, "Term"),
	).Qual(nominalPkg, "Signature").Block(
		jen.Return(jen.Id(c.Name).ValuesFunc(func(grp *jen.Group) {
			for _, fl := range c.Fields {
				mapper := "onTerm"
				if fl.Kind == "scoped" {
					mapper = "onScoped"
				}
				grp.Id(fl.Name).Op(":").Id(mapper).Call(jen.Id("s").Dot(fl.Name))
			}
		})),
	)

	f.Func().Params(jen.Id("s").Id(c.Name)).Id("ZipMatch").Params(
		jen.Id("other").Qual(nominalPkg, "Signature"),
	).Params(
		jen.Index().Qual(nominalPkg, "ZipPair"),
		jen.Error(),
	).Block(
		jen.List(jen.Id("o"), jen.Id("ok")).Op(":=").Id("other").Assert(jen.Id(c.Name)),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), jen.Qual(nominalPkg, "ErrShapeMismatch")),
		),
		jen.Return(jen.Index().Qual(nominalPkg, "ZipPair").ValuesFunc(func(grp *jen.Group) {
			for _, fl := range c.Fields {
				pair := "TermPair"
				if fl.Kind == "scoped" {
					pair = "ScopedPair"
				}
				grp.Qual(nominalPkg, pair).Values(
					jen.Id("L").Op(":").Id("s").Dot(fl.Name),
					jen.Id("R").Op(":").Id("o").Dot(fl.Name),
				)
			}
		}), jen.Nil()),
	)

	f.Commentf("New%s builds a %s node.", c.Name, c.Name)
	f.Func().Id("New"+c.Name).ParamsFunc(func(grp *jen.Group) {
		for _, fl := range c.Fields {
			grp.Id(paramName(fl.Name)).Add(fieldType(fl.Kind))
		}
	}).Op("*").Qual(nominalPkg, "Node").Block(
		jen.Return(jen.Op("&").Qual(nominalPkg, "Node").Values(
			jen.Id("Sig").Op(":").Id(c.Name).ValuesFunc(func(grp *jen.Group) {
				for _, fl := range c.Fields {
					grp.Id(fl.Name).Op(":").Id(paramName(fl.Name))
				}
			}),
		)),
	)
}

// paramName lowercases a field name's first rune for use as a
// parameter.
func paramName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	name := string(unicode.ToLower(r)) + field[size:]
	switch name {
	// avoid shadowing predeclared identifiers and keywords
	case "type", "func", "len", "cap", "new", "map", "range":
		return name + "_"
	}
	return name
}
