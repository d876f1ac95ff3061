package storage

import (
	"sort"
	"strings"

	"github.com/revelaction/nifex/annotation"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// If labelMatch is not empty, only documents with at least one label containing the string are returned.
	// Annotation content is not loaded.
	List(labelMatch string) (annotation.Library, error)

	// Read returns a document by ID, with all annotation layers loaded.
	Read(id int) (annotation.Doc, error)

	// Labels returns all unique labels found across all documents, sorted alphabetically.
	// If pattern is not empty, it returns labels that contain the pattern.
	Labels(pattern string) ([]string, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its annotation layers to storage
	Write(doc annotation.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// UniqueSorted returns the labels deduplicated, with empty entries
// dropped, sorted alphabetically.
func UniqueSorted(labels []string) []string {
	seen := map[string]bool{}
	out := []string{}

	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}

		seen[l] = true
		out = append(out, l)
	}

	sort.Strings(out)

	return out
}

// HasLabel reports whether one of the labels contains match. An empty
// match accepts every document.
func HasLabel(labels []string, match string) bool {
	if match == "" {
		return true
	}

	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}

	return false
}
