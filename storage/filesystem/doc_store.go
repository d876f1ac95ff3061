package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/file"
	"github.com/revelaction/nifex/storage"
)

// DocStore keeps one pipeline JSON file per document inside a
// directory. Document ids are positions in the scan order of the
// directory.
type DocStore struct {
	docDir string

	// file names in id order
	names []string
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over docDir.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if file.IsDoc(f.Name()) {
			names = append(names, f.Name())
		}
	}

	return &DocStore{
		docDir: docDir,
		names:  names,
	}, nil
}

// List reads the document files and returns their metadata. The
// annotation layers and the text are not carried over.
func (h *DocStore) List(labelMatch string) (annotation.Library, error) {
	docs := annotation.Library{}

	for id, name := range h.names {
		full, err := file.ReadDoc(filepath.Join(h.docDir, name))
		if err != nil {
			return nil, err
		}

		if !storage.HasLabel(full.Labels, labelMatch) {
			continue
		}

		docs = append(docs, annotation.Doc{
			Id:     id,
			Title:  file.Stem(name),
			URI:    full.URI,
			Lang:   full.Lang,
			Labels: full.Labels,
		})
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (annotation.Doc, error) {
	if id < 0 || id >= len(h.names) {
		return annotation.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc, err := file.ReadDoc(filepath.Join(h.docDir, h.names[id]))
	if err != nil {
		return annotation.Doc{}, err
	}

	doc.Id = id
	if doc.Title == "" {
		doc.Title = file.Stem(h.names[id])
	}

	return doc, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	docs, err := h.List("")
	if err != nil {
		return nil, err
	}

	labels := []string{}
	for _, d := range docs {
		for _, l := range d.Labels {
			if storage.HasLabel([]string{l}, pattern) {
				labels = append(labels, l)
			}
		}
	}

	return storage.UniqueSorted(labels), nil
}

// Write stores the document as <title>.json inside the directory. New
// titles are appended at the end of the id order.
func (h *DocStore) Write(doc annotation.Doc) error {
	if doc.Title == "" {
		return fmt.Errorf("doc has no title")
	}

	name := doc.Title + ".json"
	if err := file.WriteDoc(filepath.Join(h.docDir, name), doc); err != nil {
		return err
	}

	for _, n := range h.names {
		if n == name {
			return nil
		}
	}

	h.names = append(h.names, name)

	return nil
}
