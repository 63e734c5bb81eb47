// Package pretty implements a Wadler-style pretty printing engine.
//
// # Overview
//
// Callers build an immutable [Doc] tree that describes layout intent: runs
// of text, breakable points, indentation, and groups of content that should
// stay on one line when they fit. [Render] then walks the tree against a
// width budget and produces the final string, deciding at every group
// whether to print it flat or broken.
//
// The package is the layout core for code formatters and pretty printers of
// structured data: those tools translate their own AST into a Doc tree and
// delegate all line-breaking, indentation, and width accounting to this
// engine. Parsing and syntax-aware grouping decisions stay with the caller.
//
// # Building Documents
//
// One constructor exists per node kind: [Nil], [Text], [Concat], [Line],
// [Indent], [Group], and [LineSuffix]. Convenience builders cover the
// common line variants ([LineOrSpace], [LineOrNil], [HardLine],
// [LiteralLine], [SoftLine]) and composition patterns ([Join], [Doc.Append],
// [Doc.Nest], [Doc.Grouped]):
//
//	doc := pretty.Text("foo").
//		Append(pretty.Text("(")).
//		Append(pretty.LineOrNil().
//			Append(pretty.Join(pretty.Text(",").Append(pretty.LineOrSpace()), args...)).
//			Nest(1).
//			Append(pretty.LineOrNil()).
//			Grouped()).
//		Append(pretty.Text(")"))
//
// # Validation
//
// Constructors validate their arguments eagerly: a text payload may not
// contain raw line breaks, and indentation amounts may not be negative.
// A violation is recorded in the returned Doc at construction time, every
// composite constructor propagates the earliest violation of its children,
// and [Render] refuses a poisoned tree before emitting anything. [Doc.Err]
// reports the violation for callers that want to fail at build time.
//
// # Concurrency
//
// Docs are immutable after construction. A single tree may be rendered
// concurrently by any number of goroutines, with the same or different
// options; every render call owns its own state.
package pretty

import (
	perrors "github.com/g-plane/tiny-pretty/pkg/errors"
)

// docKind discriminates the node variants of the Doc tagged union.
type docKind uint8

const (
	docNil docKind = iota
	docText
	docConcat
	docLine
	docIndent
	docGroup
	docLineSuffix
)

// LineKind selects the behavior of a breakable line node.
type LineKind uint8

const (
	// LineSoft renders as a single space when flat and as a line break
	// with re-indentation when broken.
	LineSoft LineKind = iota

	// LineSoftNoSpace renders as nothing when flat and as a line break
	// with re-indentation when broken.
	LineSoftNoSpace

	// LineHard always renders as a line break with re-indentation and
	// forces every enclosing group to be broken.
	LineHard

	// LineLiteral always renders as a line break with zero indentation.
	// It is used for verbatim blocks whose own whitespace must survive.
	LineLiteral
)

// Doc is an immutable document tree node.
//
// Build Docs with the constructor functions of this package; the zero value
// is equivalent to [Nil]. Trees are finite and acyclic: every node is owned
// by exactly one parent and nothing is mutated after construction.
type Doc struct {
	kind  docKind
	text  string   // docText payload
	list  []Doc    // docConcat children
	child *Doc     // docIndent, docGroup, docLineSuffix child
	line  LineKind // docLine variant
	step  int      // docIndent level increase

	// forced reports whether the subtree contains a hard or literal line
	// outside any line suffix. Groups over a forced subtree are never
	// rendered flat.
	forced bool

	// nodes counts the nodes in the subtree, for buffer sizing and hooks.
	nodes int

	// err holds the first constraint violation recorded during
	// construction of this subtree, or nil.
	err error
}

// Nil returns the empty document. It produces no output and is the
// identity element of [Concat].
func Nil() Doc {
	return Doc{kind: docNil, nodes: 1}
}

// Text returns a document containing a literal run of characters.
// The payload must not contain raw line breaks; express those with line
// nodes so width accounting stays correct. A payload violating this
// constraint poisons the returned Doc with an invalid-argument error.
func Text(s string) Doc {
	return Doc{kind: docText, text: s, nodes: 1, err: perrors.ValidateText(s)}
}

// Concat returns the sequential composition of parts, rendered in order
// with no implicit separator. Nil documents are dropped and nested
// concatenations are flattened, so Concat() == Nil() and Nil is the
// identity: Concat(Nil(), d) renders exactly like d.
func Concat(parts ...Doc) Doc {
	flat := make([]Doc, 0, len(parts))
	for _, p := range parts {
		if p.kind == docNil && p.err == nil {
			continue
		}
		if p.kind == docConcat && p.err == nil {
			flat = append(flat, p.list...)
			continue
		}
		flat = append(flat, p)
	}
	switch len(flat) {
	case 0:
		return Nil()
	case 1:
		return flat[0]
	}
	d := Doc{kind: docConcat, list: flat, nodes: 1}
	for _, p := range flat {
		d.nodes += p.nodes
		d.forced = d.forced || p.forced
		if d.err == nil {
			d.err = p.err
		}
	}
	return d
}

// Line returns a breakable point of the given kind. See the [LineKind]
// constants for the flat and broken forms of each variant.
func Line(kind LineKind) Doc {
	d := Doc{kind: docLine, line: kind, nodes: 1}
	switch kind {
	case LineSoft, LineSoftNoSpace:
	case LineHard, LineLiteral:
		d.forced = true
	default:
		d.err = perrors.New(perrors.ErrCodeInvalidLine, "unknown line kind %d", kind)
	}
	return d
}

// Indent renders child with the indentation level increased by n units.
// The increase only affects indentation printed after line breaks inside
// child. Negative amounts poison the returned Doc with an
// invalid-argument error; zero is allowed and adds nothing.
func Indent(n int, child Doc) Doc {
	d := Doc{kind: docIndent, step: n, child: &child, nodes: child.nodes + 1, forced: child.forced, err: child.err}
	if d.err == nil {
		d.err = perrors.ValidateIndent(n)
	}
	return d
}

// Group marks child as a unit of alternative layout. When rendering, the
// engine first attempts to put the whole group on the current line with all
// its optional breaks flattened; if that exceeds the width budget, or the
// group contains a hard or literal line, the group is rendered broken. The
// decision recurses independently into nested groups.
func Group(child Doc) Doc {
	return Doc{kind: docGroup, child: &child, nodes: child.nodes + 1, forced: child.forced, err: child.err}
}

// LineSuffix defers child until just before the next line break, or the end
// of the output if no break follows. Multiple pending suffixes are flushed
// in registration order. The canonical use is a trailing line comment that
// must not force an early break: suffix content is rendered flat at flush
// time and contributes no width to fitting decisions.
func LineSuffix(child Doc) Doc {
	// Deferred content cannot force enclosing groups to break.
	return Doc{kind: docLineSuffix, child: &child, nodes: child.nodes + 1, err: child.err}
}

// Err returns the first constraint violation recorded while constructing
// this subtree, or nil if the tree is well formed. Render reports the same
// error for a poisoned tree.
func (d Doc) Err() error {
	return d.err
}
