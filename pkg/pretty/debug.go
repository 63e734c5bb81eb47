package pretty

import (
	"strconv"
	"strings"
)

// String returns a compact s-expression dump of the tree for debugging and
// test failures. It never renders: line breaks and groups appear as their
// node names, not their output.
func (d Doc) String() string {
	var b strings.Builder

	// Work items are either a node to expand or a literal token.
	type item struct {
		doc *Doc
		lit string
	}
	stack := []item{{doc: &d}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.doc == nil {
			b.WriteString(it.lit)
			continue
		}

		switch it.doc.kind {
		case docNil:
			b.WriteString("nil")
		case docText:
			b.WriteString("(text ")
			b.WriteString(strconv.Quote(it.doc.text))
			b.WriteByte(')')
		case docLine:
			switch it.doc.line {
			case LineSoft:
				b.WriteString("(line space)")
			case LineSoftNoSpace:
				b.WriteString("(line none)")
			case LineHard:
				b.WriteString("(line hard)")
			case LineLiteral:
				b.WriteString("(line literal)")
			default:
				b.WriteString("(line ?)")
			}
		case docConcat:
			b.WriteString("(concat")
			stack = append(stack, item{lit: ")"})
			for i := len(it.doc.list) - 1; i >= 0; i-- {
				stack = append(stack, item{doc: &it.doc.list[i]}, item{lit: " "})
			}
		case docIndent:
			b.WriteString("(indent ")
			b.WriteString(strconv.Itoa(it.doc.step))
			b.WriteByte(' ')
			stack = append(stack, item{lit: ")"}, item{doc: it.doc.child})
		case docGroup:
			b.WriteString("(group ")
			stack = append(stack, item{lit: ")"}, item{doc: it.doc.child})
		case docLineSuffix:
			b.WriteString("(suffix ")
			stack = append(stack, item{lit: ")"}, item{doc: it.doc.child})
		}
	}

	return b.String()
}
