// Package pkg provides the libraries of tiny-pretty, a Wadler-style pretty
// printing engine.
//
// # Overview
//
// tiny-pretty lays out abstract document trees against a width budget.
// Code formatters and pretty printers for structured data build a
// [pretty.Doc] from their own AST and receive back a concrete string that
// respects a maximum line width, an indentation style, and a line-ending
// style.
//
// The typical data flow:
//
//	caller AST
//	     ↓
//	[pretty] constructors (Text, Concat, Line, Indent, Group, LineSuffix)
//	     ↓
//	[pretty.Render] (fitting, line breaking, indentation)
//	     ↓
//	final string
//
// # Quick Start
//
//	import "github.com/g-plane/tiny-pretty/pkg/pretty"
//
//	doc := pretty.Group(pretty.Concat(
//	    pretty.Text("foo"),
//	    pretty.LineOrSpace(),
//	    pretty.Text("bar"),
//	))
//	out, err := pretty.Render(doc, pretty.DefaultOptions())
//	// out == "foo bar" at width 80, "foo\nbar" at width 5
//
// # Main Packages
//
// [pretty] - The core: the document algebra, print options, and the layout
// engine. This is the only package most consumers import.
//
// [errors] - Structured invalid-argument errors with machine-readable
// codes, plus the validators the constructors enforce.
//
// [textwidth] - Unicode display-width measurement (East-Asian wide
// characters, combining marks, grapheme clusters).
//
// [observability] - Optional render instrumentation hooks with a no-op
// default and a charmbracelet/log backend.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/pretty/...      # Core only
//	go test -run Example ./pkg/... # Examples only
//
// [pretty]: https://pkg.go.dev/github.com/g-plane/tiny-pretty/pkg/pretty
// [pretty.Doc]: https://pkg.go.dev/github.com/g-plane/tiny-pretty/pkg/pretty#Doc
// [pretty.Render]: https://pkg.go.dev/github.com/g-plane/tiny-pretty/pkg/pretty#Render
// [errors]: https://pkg.go.dev/github.com/g-plane/tiny-pretty/pkg/errors
// [textwidth]: https://pkg.go.dev/github.com/g-plane/tiny-pretty/pkg/textwidth
// [observability]: https://pkg.go.dev/github.com/g-plane/tiny-pretty/pkg/observability
package pkg
