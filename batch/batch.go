// Package batch drives the conversion of stored documents to NIF
// graphs, one exporter run per document.
package batch

import (
	"fmt"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/export"
	"github.com/revelaction/nifex/graph"
	"github.com/revelaction/nifex/storage"
)

// Runner orchestrates the strategy selection for converting documents
// from a repository: a single document by id, or every document of the
// repository, optionally narrowed by label.
type Runner struct {
	exporter *export.Exporter
	repo     storage.DocReader
	docID    *int
	label    string
}

// New creates a Runner over the given exporter and repository.
func New(e *export.Exporter, repo storage.DocReader) *Runner {
	return &Runner{
		exporter: e,
		repo:     repo,
	}
}

// WithDocID restricts the run to a single document id. If set, the
// label filter is ignored.
func (r *Runner) WithDocID(id int) *Runner {
	r.docID = &id
	return r
}

// WithLabel restricts the run to documents with a label containing
// match.
func (r *Runner) WithLabel(match string) *Runner {
	r.label = match
	return r
}

// Run converts every selected document and hands each document with
// its graph to onDoc. It returns the number of converted documents. A
// failing conversion or callback stops the run.
func (r *Runner) Run(onDoc func(doc annotation.Doc, g *graph.Graph) error) (int, error) {
	// Strategy 1: single document
	if r.docID != nil {
		doc, err := r.repo.Read(*r.docID)
		if err != nil {
			return 0, err
		}

		// Read might return 0 if the backend does not populate the id
		doc.Id = *r.docID

		g, err := r.exporter.ExportDoc(doc)
		if err != nil {
			return 0, err
		}

		if err := onDoc(doc, g); err != nil {
			return 0, err
		}

		return 1, nil
	}

	// Strategy 2: whole repository
	metas, err := r.repo.List(r.label)
	if err != nil {
		return 0, fmt.Errorf("failed to list docs: %w", err)
	}

	done := 0
	for _, meta := range metas {
		doc, err := r.repo.Read(meta.Id)
		if err != nil {
			return done, err
		}

		doc.Id = meta.Id
		if doc.Title == "" {
			doc.Title = meta.Title
		}

		g, err := r.exporter.ExportDoc(doc)
		if err != nil {
			return done, fmt.Errorf("doc %d: %w", meta.Id, err)
		}

		if err := onDoc(doc, g); err != nil {
			return done, err
		}

		done++
	}

	return done, nil
}

// Count returns the number of documents a run would convert.
func (r *Runner) Count() (int, error) {
	if r.docID != nil {
		return 1, nil
	}

	metas, err := r.repo.List(r.label)
	if err != nil {
		return 0, err
	}

	return len(metas), nil
}
