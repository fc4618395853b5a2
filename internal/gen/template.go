package gen

import "text/template"

var unionTemplate = template.Must(template.New("union").Parse(unionSource))

const unionSource = `// Code generated by oneofgen. DO NOT EDIT.

package {{.Package}}
{{if .Standalone}}
import (
	"fmt"

	"{{.TypesetImport}}"
)

// Either holds a left or a right value. Narrowing puts the extracted member
// on the left and the remainder on the right.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, isLeft: true}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v}
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.isLeft
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, !e.isLeft
}

func (e Either[L, R]) Unpack() (left L, right R, ok bool) {
	return e.left, e.right, e.isLeft
}

func describe(v any) string {
	return fmt.Sprint(v)
}

// errorText goes through fmt, which copes with nil pointer receivers.
func errorText(v any) string {
	return fmt.Sprint(v)
}

func unwrapError(v any) error {
	err, _ := v.(error)
	return err
}
{{else}}
import "{{.TypesetImport}}"
{{end -}}
{{range $u := .Unions}}
// {{.Name}} holds exactly one member of its {{.Arity}} type parameters, tagged
// with the position of that member. The zero value holds the zero value of A.
type {{.Name}}[{{.Params}} any] struct {
	index uint8
{{- range .Variants}}
	{{.Field}} {{.Param}}
{{- end}}
}
{{range .Variants}}
// With{{.Pos}} returns a union holding v at position {{.Pos}}.
func ({{$u.Name}}[{{$u.Params}}]) With{{.Pos}}(v {{.Param}}) {{$u.Name}}[{{$u.Params}}] {
	return {{$u.Name}}[{{$u.Params}}]{index: {{.Pos}}, {{.Field}}: v}
}
{{end}}
// Index returns the discriminant, the position of the held member.
func (u {{.Name}}[{{.Params}}]) Index() int {
	return int(u.index)
}

// Len returns the length of the variant list.
func ({{.Name}}[{{.Params}}]) Len() int {
	return {{.Arity}}
}

func (u {{.Name}}[{{.Params}}]) Value() any {
	switch u.index {
{{- range .Variants}}{{if ne .Pos $u.Last.Pos}}
	case {{.Pos}}:
		return u.{{.Field}}
{{- end}}{{end}}
	default:
		return u.{{.Last.Field}}
	}
}

func (u {{.Name}}[{{.Params}}]) String() string {
	return describe(u.Value())
}

func (u {{.Name}}[{{.Params}}]) Error() string {
	return errorText(u.Value())
}

// Unwrap returns the held member when it is an error, nil otherwise.
func (u {{.Name}}[{{.Params}}]) Unwrap() error {
	return unwrapError(u.Value())
}
{{range .Variants}}
// Get{{.Pos}} returns the member at position {{.Pos}} and whether u holds it.
func (u {{$u.Name}}[{{$u.Params}}]) Get{{.Pos}}() ({{.Param}}, bool) {
	return u.{{.Field}}, u.index == {{.Pos}}
}
{{end}}
{{- range .Narrowings}}
// Narrow{{.Pos}} extracts the member at position {{.Pos}}, or returns the others as {{.Rest}}.
func (u {{$u.Name}}[{{$u.Params}}]) Narrow{{.Pos}}() Either[{{.Target.Param}}, {{.Rest}}] {
	if u.index == {{.Pos}} {
		return Left[{{.Target.Param}}, {{.Rest}}](u.{{.Target.Field}})
	}
{{- if .Collapse}}
	return Right[{{.Target.Param}}](u.{{.Bare}})
{{- else}}
	return Right[{{.Target.Param}}]({{.Rest}}{index: uint8(typeset.Shift(int(u.index), {{.Pos}})){{range .Assigns}}, {{.To}}: u.{{.From}}{{end}}})
{{- end}}
}
{{end}}
// Switch calls the handler matching the held member.
func (u {{.Name}}[{{.Params}}]) Switch({{range $i, $v := .Variants}}{{if $i}}, {{end}}{{.Handler}} func({{.Param}}){{end}}) {
	switch u.index {
{{- range .Variants}}{{if ne .Pos $u.Last.Pos}}
	case {{.Pos}}:
		{{.Handler}}(u.{{.Field}})
{{- end}}{{end}}
	default:
		{{.Last.Handler}}(u.{{.Last.Field}})
	}
}

// Match{{.Arity}} returns the result of the handler matching the held member of u.
func Match{{.Arity}}[{{.Params}}, R any](u {{.Name}}[{{.Params}}], {{range $i, $v := .Variants}}{{if $i}}, {{end}}{{.Handler}} func({{.Param}}) R{{end}}) R {
	switch u.index {
{{- range .Variants}}{{if ne .Pos $u.Last.Pos}}
	case {{.Pos}}:
		return {{.Handler}}(u.{{.Field}})
{{- end}}{{end}}
	default:
		return {{.Last.Handler}}(u.{{.Last.Field}})
	}
}
{{- if .Wider}}

// Extend{{.Arity}} widens u by a new last member {{.NewParam}}. The held member keeps its position.
func Extend{{.Arity}}[{{.WiderParams}} any](u {{.Name}}[{{.Params}}]) {{.Wider}}[{{.WiderParams}}] {
	return {{.Wider}}[{{.WiderParams}}]{index: u.index{{range .Variants}}, {{.Field}}: u.{{.Field}}{{end}}}
}
{{- end}}
{{end -}}
`
