// Package gen writes the closed union types of package oneof. Every
// remainder type it emits is derived with typeset, so the generated narrowing
// methods and the runtime discriminant remap agree by construction.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

const (
	DefaultPackage       = "oneof"
	DefaultTypesetImport = "github.com/ib-77/oneof/pkg/oneof/typeset"
	DefaultMaxArity      = 5
	MaxSupportedArity    = 8

	// Every remainder of Of3 is an Of2, so generation always starts there.
	minArity = 2
)

var ErrArity = errors.New("gen: invalid max arity")

var paramNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

type Config struct {
	Package       string
	TypesetImport string
	MaxArity      int

	// FileName is only used in error messages from the formatter.
	FileName string
}

func DefaultConfig() Config {
	return Config{
		Package:       DefaultPackage,
		TypesetImport: DefaultTypesetImport,
		MaxArity:      DefaultMaxArity,
		FileName:      "union_gen.go",
	}
}

func (c Config) Validate() error {
	if c.MaxArity < minArity || c.MaxArity > MaxSupportedArity {
		return fmt.Errorf("%d, want %d..%d: %w", c.MaxArity, minArity, MaxSupportedArity, ErrArity)
	}
	if c.Package == "" {
		return errors.New("gen: empty package name")
	}
	return typeset.Validate(paramNames[:c.MaxArity])
}

type variant struct {
	Pos     int
	Param   string
	Field   string
	Handler string
}

type assign struct {
	To   string
	From string
}

type narrowing struct {
	Pos      int
	Target   variant
	Collapse bool

	// Rest is the surface type of the remainder list.
	Rest string

	// Bare is the field holding the remaining member when Collapse is set.
	Bare    string
	Assigns []assign
}

type union struct {
	Arity      int
	Name       string
	Params     string
	Variants   []variant
	Narrowings []narrowing
	Last       variant

	// Wider is set when a union of Arity+1 is generated too.
	Wider       string
	WiderParams string
	NewParam    string
}

type file struct {
	Package       string
	TypesetImport string
	Unions        []union

	// Standalone files carry their own Either and formatting helpers, which
	// package oneof otherwise provides.
	Standalone bool
}

func typeName(arity int) string {
	return fmt.Sprintf("Of%d", arity)
}

func variantAt(pos int) variant {
	p := paramNames[pos]
	lower := strings.ToLower(p)
	return variant{Pos: pos, Param: p, Field: lower, Handler: "f" + lower}
}

// surface renders the Tuple Form of a list of member names.
func surface(list []string) string {
	switch typeset.FormOf(len(list)) {
	case typeset.Uninhabited:
		return "Never"
	case typeset.Bare:
		return list[0]
	}
	return fmt.Sprintf("%s[%s]", typeName(len(list)), strings.Join(list, ", "))
}

func buildUnion(arity, maxArity int) (union, error) {
	params := paramNames[:arity]
	u := union{
		Arity:  arity,
		Name:   typeName(arity),
		Params: strings.Join(params, ", "),
	}
	for i := range params {
		u.Variants = append(u.Variants, variantAt(i))
	}
	u.Last = u.Variants[arity-1]

	for k := range params {
		rest, err := typeset.Remove(params, k)
		if err != nil {
			return union{}, fmt.Errorf("narrow %s at %d: %w", u.Name, k, err)
		}
		n := narrowing{
			Pos:      k,
			Target:   u.Variants[k],
			Rest:     surface(rest),
			Collapse: typeset.FormOf(len(rest)) == typeset.Bare,
		}
		for i := range params {
			if i == k {
				continue
			}
			from := u.Variants[i].Field
			if n.Collapse {
				n.Bare = from
				continue
			}
			n.Assigns = append(n.Assigns, assign{To: variantAt(typeset.Shift(i, k)).Field, From: from})
		}
		u.Narrowings = append(u.Narrowings, n)
	}

	if arity < maxArity {
		u.Wider = typeName(arity + 1)
		u.WiderParams = strings.Join(paramNames[:arity+1], ", ")
		u.NewParam = paramNames[arity]
	}
	return u, nil
}

// Generate writes the formatted source of the union types to w.
func Generate(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	f := file{
		Package:       cfg.Package,
		TypesetImport: cfg.TypesetImport,
		Standalone:    cfg.Package != DefaultPackage,
	}
	for arity := minArity; arity <= cfg.MaxArity; arity++ {
		u, err := buildUnion(arity, cfg.MaxArity)
		if err != nil {
			return err
		}
		f.Unions = append(f.Unions, u)
	}

	var buf bytes.Buffer
	if err := unionTemplate.Execute(&buf, f); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(cfg.FileName, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("format %s: %w", cfg.FileName, err)
	}

	_, err = w.Write(src)
	return err
}
