package errors

import "strings"

// ValidateText validates a text payload for a document text node.
// Text nodes must never contain raw line-break characters: a line break
// inside a text run would make column accounting wrong, so breaks must be
// expressed as line nodes instead.
func ValidateText(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return New(ErrCodeInvalidText, "text %q contains a raw line break; use a line node instead", s)
	}
	return nil
}

// ValidateIndent validates an indentation amount for an indent node.
// Amounts are counts of indentation levels and cannot be negative.
// Zero is allowed and means no additional indentation.
func ValidateIndent(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidIndent, "indent amount %d is negative", n)
	}
	return nil
}

// ValidateMaxWidth validates the maximum line width print option.
// Zero is allowed and selects the default width.
func ValidateMaxWidth(w int) error {
	if w < 0 {
		return New(ErrCodeInvalidOptions, "max width %d is negative", w)
	}
	return nil
}

// ValidateIndentUnit validates the characters-per-level print option.
// Zero is allowed and selects the default unit.
func ValidateIndentUnit(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidOptions, "indent unit %d is negative", n)
	}
	return nil
}

// ValidateIndentKind validates an indentation kind name.
// The empty string is allowed and selects the default kind.
func ValidateIndentKind(kind string) error {
	switch kind {
	case "", "spaces", "tabs":
		return nil
	}
	return New(ErrCodeInvalidOptions, "unknown indent kind %q (want %q or %q)", kind, "spaces", "tabs")
}

// ValidateLineBreak validates a line-break kind name.
// The empty string is allowed and selects the default kind.
func ValidateLineBreak(kind string) error {
	switch kind {
	case "", "lf", "crlf":
		return nil
	}
	return New(ErrCodeInvalidOptions, "unknown line break %q (want %q or %q)", kind, "lf", "crlf")
}
