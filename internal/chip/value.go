package chip

import "unicode/utf8"

// Range is a span of rune offsets into a text value. Start == End is a
// collapsed cursor.
type Range struct {
	Start int
	End   int
}

// Collapsed reports whether the range is a bare cursor.
func (r Range) Collapsed() bool {
	return r.Start == r.End
}

func (r Range) clamp(n int) Range {
	return Range{Start: clampInt(r.Start, 0, n), End: clampInt(r.End, 0, n)}
}

// TextValue is the working value of the inline editor: the text plus the
// selection and IME composition metadata the editor tracks alongside it.
type TextValue struct {
	Text        string
	Selection   Range
	Composition *Range // nil when no composition is active
}

// NewTextValue returns a value holding text with the cursor at the start.
func NewTextValue(text string) TextValue {
	return TextValue{Text: text}
}

// WithText returns a copy of v holding text, with the selection and
// composition clamped into the new text.
func (v TextValue) WithText(text string) TextValue {
	n := utf8.RuneCountInString(text)
	out := TextValue{Text: text, Selection: v.Selection.clamp(n)}
	if v.Composition != nil {
		c := v.Composition.clamp(n)
		out.Composition = &c
	}
	return out
}

// SameMetadata reports whether v and o carry the same selection and
// composition, ignoring the text.
func (v TextValue) SameMetadata(o TextValue) bool {
	if v.Selection != o.Selection {
		return false
	}
	if v.Composition == nil || o.Composition == nil {
		return v.Composition == nil && o.Composition == nil
	}
	return *v.Composition == *o.Composition
}

// Equal reports whether two values are identical in text and metadata.
func (v TextValue) Equal(o TextValue) bool {
	return v.Text == o.Text && v.SameMetadata(o)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
