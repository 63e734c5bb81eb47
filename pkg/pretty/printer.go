package pretty

import (
	"strings"
	"time"

	"github.com/g-plane/tiny-pretty/pkg/observability"
	"github.com/g-plane/tiny-pretty/pkg/textwidth"
)

// mode is the layout mode a group was resolved to. Non-group descendants
// inherit it until a nested group overrides it.
type mode uint8

const (
	// modeBreak renders optional line breaks as real line breaks.
	modeBreak mode = iota

	// modeFlat renders optional line breaks in their no-break form.
	modeFlat
)

// frame is one unit of pending work: a node together with the indentation
// level and mode inherited from its ancestors.
type frame struct {
	indent int
	mode   mode
	doc    *Doc
}

// Render lays out d within opts and returns the produced text.
//
// Rendering is deterministic, never blocks, and is linear in the size of
// the document. It fails only when the tree was constructed with an invalid
// argument (see [Doc.Err]) or the options are invalid; no error can arise
// during the walk itself. The walk uses an explicit work stack, so
// documents of arbitrary depth render without growing the native call
// stack.
func Render(d Doc, opts Options) (string, error) {
	if err := d.err; err != nil {
		return "", err
	}
	opts, err := opts.Normalize()
	if err != nil {
		return "", err
	}

	observability.Printer().OnRenderStart(d.nodes)
	start := time.Now()

	p := printer{opts: opts, newline: opts.lineBreak()}
	p.out.Grow(d.nodes * 4)
	p.run(&d)
	s := p.out.String()

	observability.Printer().OnRenderComplete(d.nodes, len(s), time.Since(start))
	return s, nil
}

// suffix is a deferred document waiting for the next line break.
type suffix struct {
	indent int
	doc    *Doc
}

type printer struct {
	opts    Options
	newline string
	out     strings.Builder

	// column is the current output column, advanced by display width on
	// text and suffix flushes and reset to the printed indentation on
	// every broken line.
	column int

	// stack holds the pending frames of the main walk, top at the end.
	// The fits check reads it past the candidate group, since content
	// after a group on the same line also consumes budget.
	stack []frame

	// suffixes queues deferred content in registration order.
	suffixes []suffix
}

func (p *printer) run(root *Doc) {
	p.stack = append(p.stack, frame{indent: 0, mode: modeBreak, doc: root})

	for len(p.stack) > 0 {
		f := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		switch f.doc.kind {
		case docNil:
		case docText:
			p.out.WriteString(f.doc.text)
			p.column += textwidth.String(f.doc.text)
		case docConcat:
			for i := len(f.doc.list) - 1; i >= 0; i-- {
				p.stack = append(p.stack, frame{indent: f.indent, mode: f.mode, doc: &f.doc.list[i]})
			}
		case docIndent:
			p.stack = append(p.stack, frame{indent: f.indent + f.doc.step, mode: f.mode, doc: f.doc.child})
		case docLine:
			p.printLine(f)
		case docGroup:
			m := f.mode
			if m == modeBreak && !f.doc.forced && p.fits(frame{indent: f.indent, mode: modeFlat, doc: f.doc.child}) {
				m = modeFlat
			}
			p.stack = append(p.stack, frame{indent: f.indent, mode: m, doc: f.doc.child})
		case docLineSuffix:
			p.suffixes = append(p.suffixes, suffix{indent: f.indent, doc: f.doc.child})
		}
	}

	p.flushSuffixes()
}

// printLine renders a line node. Soft variants collapse in flat mode; hard
// and literal lines break even there, since flat mode only suppresses
// optional breaks. Every real break flushes pending suffixes first.
func (p *printer) printLine(f frame) {
	if f.mode == modeFlat {
		switch f.doc.line {
		case LineSoft:
			p.out.WriteByte(' ')
			p.column++
			return
		case LineSoftNoSpace:
			return
		}
	}

	p.flushSuffixes()
	p.out.WriteString(p.newline)
	if f.doc.line == LineLiteral {
		p.column = 0
		return
	}
	n := f.indent * p.opts.IndentUnit
	p.out.WriteString(strings.Repeat(string(p.opts.indentChar()), n))
	p.column = n
}

// flushSuffixes renders all queued suffixes in registration order and
// clears the queue. Suffix content is treated as opaque trailing material:
// it renders flat at the current column and runs no fitting of its own.
func (p *printer) flushSuffixes() {
	if len(p.suffixes) == 0 {
		return
	}
	queued := p.suffixes
	p.suffixes = nil
	for _, s := range queued {
		p.renderFlat(s.indent, s.doc)
	}
}

// renderFlat walks doc in flat mode, appending to the output. Hard and
// literal lines inside a suffix still emit real breaks.
func (p *printer) renderFlat(indent int, doc *Doc) {
	local := []frame{{indent: indent, mode: modeFlat, doc: doc}}
	for len(local) > 0 {
		f := local[len(local)-1]
		local = local[:len(local)-1]

		switch f.doc.kind {
		case docNil:
		case docText:
			p.out.WriteString(f.doc.text)
			p.column += textwidth.String(f.doc.text)
		case docConcat:
			for i := len(f.doc.list) - 1; i >= 0; i-- {
				local = append(local, frame{indent: f.indent, mode: modeFlat, doc: &f.doc.list[i]})
			}
		case docIndent:
			local = append(local, frame{indent: f.indent + f.doc.step, mode: modeFlat, doc: f.doc.child})
		case docLine:
			switch f.doc.line {
			case LineSoft:
				p.out.WriteByte(' ')
				p.column++
			case LineSoftNoSpace:
			case LineLiteral:
				p.out.WriteString(p.newline)
				p.column = 0
			case LineHard:
				p.out.WriteString(p.newline)
				n := f.indent * p.opts.IndentUnit
				p.out.WriteString(strings.Repeat(string(p.opts.indentChar()), n))
				p.column = n
			}
		case docGroup:
			local = append(local, frame{indent: f.indent, mode: modeFlat, doc: f.doc.child})
		case docLineSuffix:
			// A suffix inside a suffix renders inline at this point.
			local = append(local, frame{indent: f.indent, mode: modeFlat, doc: f.doc.child})
		}
	}
}

// fits reports whether the candidate group rendered flat, followed by
// whatever remains on the main stack, stays within the width budget on the
// current line. There is no magic here: it simulates rendering in flat mode
// without producing output, charging display widths against the remaining
// budget. Reaching a line break ends the current line, so the check
// succeeds as soon as one is found; exhausting the whole document also
// succeeds. The remaining main stack is read in place through a cursor
// rather than copied.
func (p *printer) fits(first frame) bool {
	remaining := p.opts.MaxWidth - p.column
	if remaining < 0 {
		return false
	}

	local := make([]frame, 0, 32)
	local = append(local, first)
	rest := len(p.stack)

	for {
		var f frame
		switch {
		case len(local) > 0:
			f = local[len(local)-1]
			local = local[:len(local)-1]
		case rest > 0:
			rest--
			f = p.stack[rest]
		default:
			return true
		}

		switch f.doc.kind {
		case docNil:
		case docText:
			remaining -= textwidth.String(f.doc.text)
		case docConcat:
			for i := len(f.doc.list) - 1; i >= 0; i-- {
				local = append(local, frame{indent: f.indent, mode: f.mode, doc: &f.doc.list[i]})
			}
		case docIndent:
			local = append(local, frame{indent: f.indent + f.doc.step, mode: f.mode, doc: f.doc.child})
		case docLine:
			switch {
			case f.doc.line == LineHard || f.doc.line == LineLiteral:
				// Content after a forced break cannot overflow the
				// current line.
				return true
			case f.mode == modeBreak:
				return true
			case f.doc.line == LineSoft:
				remaining--
			}
		case docGroup:
			local = append(local, frame{indent: f.indent, mode: f.mode, doc: f.doc.child})
		case docLineSuffix:
			// Deferred content occupies no width on the current line.
		}

		if remaining < 0 {
			return false
		}
	}
}
