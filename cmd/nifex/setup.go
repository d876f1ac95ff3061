package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/revelaction/nifex/storage"
	"github.com/revelaction/nifex/storage/filesystem"
	"github.com/revelaction/nifex/storage/sqlite/zombiezen"
)

// NewDocRepository selects the storage backend by the shape of path: a
// directory holds one JSON file per document, anything else is opened
// as a SQLite database.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	if path == "" {
		return nil, errors.New("no document repository, set --doc-path or NIFEX_DOC_PATH")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
