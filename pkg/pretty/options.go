package pretty

import (
	"github.com/BurntSushi/toml"

	perrors "github.com/g-plane/tiny-pretty/pkg/errors"
)

// IndentKind selects which character fills indentation after a broken line.
type IndentKind string

const (
	// IndentSpaces fills indentation with spaces.
	IndentSpaces IndentKind = "spaces"

	// IndentTabs fills indentation with tabs. Each indentation level still
	// prints IndentUnit characters; a tab counts as one column.
	IndentTabs IndentKind = "tabs"
)

// LineBreakKind selects the byte sequence a broken line emits.
type LineBreakKind string

const (
	// LineBreakLF emits "\n".
	LineBreakLF LineBreakKind = "lf"

	// LineBreakCRLF emits "\r\n".
	LineBreakCRLF LineBreakKind = "crlf"
)

// Options control rendering: the width budget, the indentation style, and
// the line-ending style.
//
// The zero value is usable: zero and empty fields select the documented
// defaults when rendering. Negative numbers and unrecognized kind names are
// invalid arguments. Options carry TOML tags so formatter front-ends can
// decode them from configuration bytes with [ParseOptions]:
//
//	max_width = 100
//	indent_unit = 4
//	indent_kind = "tabs"
//	line_break = "lf"
type Options struct {
	// MaxWidth is the target column budget for fitting decisions. The
	// printer tries to keep lines within it but a single item wider than
	// the budget still prints on one line. Default 80.
	MaxWidth int `toml:"max_width"`

	// IndentUnit is the number of indentation characters printed per
	// indentation level. Default 2.
	IndentUnit int `toml:"indent_unit"`

	// IndentKind selects spaces or tabs for indentation. Default spaces.
	IndentKind IndentKind `toml:"indent_kind"`

	// LineBreak selects LF or CRLF line endings. Default LF.
	LineBreak LineBreakKind `toml:"line_break"`
}

// DefaultOptions returns the fully populated default options:
// width 80, two spaces per indentation level, LF line endings.
func DefaultOptions() Options {
	return Options{
		MaxWidth:   80,
		IndentUnit: 2,
		IndentKind: IndentSpaces,
		LineBreak:  LineBreakLF,
	}
}

// ParseOptions decodes options from TOML bytes, applies defaults for
// omitted fields, and validates the result.
func ParseOptions(data []byte) (Options, error) {
	var o Options
	if err := toml.Unmarshal(data, &o); err != nil {
		return Options{}, perrors.Wrap(perrors.ErrCodeInvalidOptions, err, "malformed options")
	}
	return o.Normalize()
}

// Normalize applies the documented defaults to zero-valued fields and
// validates the rest. Render normalizes its options internally, so callers
// only need this to inspect the effective configuration or to fail early.
func (o Options) Normalize() (Options, error) {
	if err := perrors.ValidateMaxWidth(o.MaxWidth); err != nil {
		return Options{}, err
	}
	if err := perrors.ValidateIndentUnit(o.IndentUnit); err != nil {
		return Options{}, err
	}
	if err := perrors.ValidateIndentKind(string(o.IndentKind)); err != nil {
		return Options{}, err
	}
	if err := perrors.ValidateLineBreak(string(o.LineBreak)); err != nil {
		return Options{}, err
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = 80
	}
	if o.IndentUnit == 0 {
		o.IndentUnit = 2
	}
	if o.IndentKind == "" {
		o.IndentKind = IndentSpaces
	}
	if o.LineBreak == "" {
		o.LineBreak = LineBreakLF
	}
	return o, nil
}

// lineBreak returns the byte sequence for broken lines.
func (o Options) lineBreak() string {
	if o.LineBreak == LineBreakCRLF {
		return "\r\n"
	}
	return "\n"
}

// indentChar returns the character that fills indentation.
func (o Options) indentChar() byte {
	if o.IndentKind == IndentTabs {
		return '\t'
	}
	return ' '
}
