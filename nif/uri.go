package nif

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"

	"github.com/zeebo/blake3"

	"github.com/revelaction/nifex/span"
)

// DefaultBase is the base IRI used when a document declares none.
const DefaultBase = "http://example.org/doc#"

// OffsetURI returns the RFC 5147 style URI of the half-open interval
// [start, end) under base:
//
//	http://example.org/doc#char=7,12
func OffsetURI(base string, start, end int) string {
	return fmt.Sprintf("%schar=%d,%d", base, start, end)
}

// ContextURI returns the URI of the context resource under base.
func ContextURI(base string) string {
	return base + "context"
}

// HashBase derives a base IRI from the text content. Documents with
// equal text map to the same base.
func HashBase(text string) string {
	sum := blake3.Sum256([]byte(text))

	return "http://example.org/" + hex.EncodeToString(sum[:])[:16] + "#"
}

var offsetPattern = regexp.MustCompile(`char=([0-9]+),([0-9]+)$`)

// ParseOffsetURI extracts the span encoded in an RFC 5147 style URI.
// The second return value is false if the URI carries no char=
// fragment.
func ParseOffsetURI(uri string) (span.Span, bool) {
	m := offsetPattern.FindStringSubmatch(uri)
	if m == nil {
		return span.Span{}, false
	}

	// digits only, cannot fail
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])

	return span.New(start, end), true
}
