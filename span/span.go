// Package span provides half-open character intervals over a document
// text. Offsets count unicode code points, not bytes, so a span is
// always sliced out of the []rune form of the text.
package span

// Span is a half-open interval [Start, End) of rune offsets into a
// document text.
type Span struct {
	Start int
	End   int
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Valid reports whether the span is well formed: non negative start and
// at least one rune long.
func (s Span) Valid() bool {
	return s.Start >= 0 && s.End > s.Start
}

// In reports whether s lies fully inside outer.
func (s Span) In(outer Span) bool {
	return s.Start >= outer.Start && s.End <= outer.End
}

// Contains reports whether the rune offset pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// Overlaps reports whether s and o share at least one rune offset.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Text slices the span out of the document runes.
func (s Span) Text(runes []rune) string {
	return string(runes[s.Start:s.End])
}

// Covered returns the indexes of the spans fully contained in outer, in
// input order.
func Covered(spans []Span, outer Span) []int {
	idx := []int{}
	for i, s := range spans {
		if s.In(outer) {
			idx = append(idx, i)
		}
	}

	return idx
}

// Find returns the index of the first span in spans that fully contains
// inner, or -1 if none does.
func Find(spans []Span, inner Span) int {
	for i, s := range spans {
		if inner.In(s) {
			return i
		}
	}

	return -1
}
