// Package file reads pipeline documents and writes graphs on the
// filesystem. Files with an .xz suffix are transparently compressed
// and decompressed.
package file

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/graph"
)

// IsDoc reports whether a file name looks like a pipeline document.
func IsDoc(name string) bool {
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.xz")
}

// Stem returns the document title encoded in a file name, with the
// document and compression extensions removed.
func Stem(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, ".xz")

	return strings.TrimSuffix(name, ".json")
}

// DocPath builds the file name of a document inside dir.
func DocPath(dir, title string) string {
	return filepath.Join(dir, title+".json")
}

// GraphPath builds the output file name for a converted document.
func GraphPath(dir, title string, f graph.Format, compress bool) string {
	name := title + "." + f.String()
	if compress {
		name += ".xz"
	}

	return filepath.Join(dir, name)
}

// ReadDoc reads a document in the pipeline JSON form from the given
// path and unmarshals it.
func ReadDoc(path string) (annotation.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return annotation.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return annotation.Doc{}, fmt.Errorf("xz error: %w", err)
		}

		r = xr
	}

	var doc annotation.Doc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return annotation.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}

// WriteDoc writes the document as indented pipeline JSON.
func WriteDoc(path string, doc annotation.Doc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return nil
}

// WriteGraph serializes g to path in format f, compressing when the
// path carries an .xz suffix.
func WriteGraph(path string, g *graph.Graph, f graph.Format) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if err := writeGraph(out, path, g, f); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func writeGraph(out io.Writer, path string, g *graph.Graph, f graph.Format) error {
	if !strings.HasSuffix(path, ".xz") {
		return g.Write(out, f)
	}

	xw, err := xz.NewWriter(out)
	if err != nil {
		return fmt.Errorf("xz error: %w", err)
	}

	if err := g.Write(xw, f); err != nil {
		return err
	}

	if err := xw.Close(); err != nil {
		return fmt.Errorf("xz error: %w", err)
	}

	return nil
}

// FormatForPath derives the graph format from the file extension,
// ignoring a trailing .xz.
func FormatForPath(path string) (graph.Format, bool) {
	name := strings.TrimSuffix(path, ".xz")

	switch filepath.Ext(name) {
	case ".nt":
		return graph.NTriples, true
	case ".ttl":
		return graph.Turtle, true
	case ".jsonld":
		return graph.JSONLD, true
	}

	return graph.NTriples, false
}

// OpenGraph opens a serialized graph file for reading. The format is
// derived from the extension and .xz files are decompressed
// transparently. The caller closes the reader.
func OpenGraph(path string) (io.ReadCloser, graph.Format, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, format, fmt.Errorf("no graph format for %s, expected .nt, .ttl or .jsonld", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, fmt.Errorf("IO error: %w", err)
	}

	if !strings.HasSuffix(path, ".xz") {
		return f, format, nil
	}

	xr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, format, fmt.Errorf("xz error: %w", err)
	}

	return &xzReadCloser{Reader: xr, file: f}, format, nil
}

// xzReadCloser closes the underlying file of a decompressing reader.
type xzReadCloser struct {
	io.Reader
	file *os.File
}

func (c *xzReadCloser) Close() error {
	return c.file.Close()
}
