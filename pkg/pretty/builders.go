package pretty

// Space returns a single-space text document.
func Space() Doc {
	return Doc{kind: docText, text: " ", nodes: 1}
}

// LineOrSpace returns a breakable point that prints a space if the
// enclosing group fits on a single line and a line break otherwise.
// Outside of any group it just prints a line break.
func LineOrSpace() Doc {
	return Line(LineSoft)
}

// LineOrNil returns a breakable point that prints nothing if the enclosing
// group fits on a single line and a line break otherwise. Outside of any
// group it just prints a line break.
func LineOrNil() Doc {
	return Line(LineSoftNoSpace)
}

// HardLine returns an unconditional line break with re-indentation.
// Any group containing one is always rendered broken.
func HardLine() Doc {
	return Line(LineHard)
}

// LiteralLine returns an unconditional line break with zero indentation,
// for verbatim blocks whose own leading whitespace must survive.
func LiteralLine() Doc {
	return Line(LineLiteral)
}

// SoftLine returns an independently grouped [LineOrSpace]. A sequence of
// documents separated by SoftLine fills lines: as many items as fit stay on
// the current line and a break is inserted only where the budget runs out,
// whereas LineOrSpace separators inside one group break all together.
func SoftLine() Doc {
	return Group(Line(LineSoft))
}

// Join intersperses sep between parts and concatenates the result.
// Join with no parts is [Nil].
func Join(sep Doc, parts ...Doc) Doc {
	if len(parts) == 0 {
		return Nil()
	}
	joined := make([]Doc, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, p)
	}
	return Concat(joined...)
}

// Append concatenates d with others, in order.
func (d Doc) Append(others ...Doc) Doc {
	return Concat(append([]Doc{d}, others...)...)
}

// Nest renders d with the indentation level increased by n units.
// It is shorthand for [Indent] in fluent chains. Nest on plain text has no
// visible effect; the increase applies to line breaks inside d.
func (d Doc) Nest(n int) Doc {
	return Indent(n, d)
}

// Grouped marks d as a unit of alternative layout.
// It is shorthand for [Group] in fluent chains.
func (d Doc) Grouped() Doc {
	return Group(d)
}
