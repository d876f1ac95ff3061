package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/nifex/annotation"
	"github.com/revelaction/nifex/storage"
)

// Annotation layer kinds as stored in the annotations table.
const (
	kindSents  = "sents"
	kindTokens = "tokens"
	kindEnts   = "ents"
)

// DocStore keeps documents in two tables: docs carries the metadata
// and the text, annotations carries one JSON encoded layer per kind.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) (annotation.Library, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	docs := annotation.Library{}
	err = sqlitex.Execute(conn, "SELECT id, title, uri, lang, labels FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := annotation.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
				URI:   stmt.ColumnText(2),
				Lang:  stmt.ColumnText(3),
			}

			if labels := stmt.ColumnText(4); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}

			if !storage.HasLabel(doc.Labels, labelMatch) {
				return nil
			}

			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (annotation.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return annotation.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := annotation.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, uri, lang, labels, text FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.URI = stmt.ColumnText(1)
			doc.Lang = stmt.ColumnText(2)

			if labels := stmt.ColumnText(3); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}

			doc.Text = stmt.ColumnText(4)
			return nil
		},
	})
	if err != nil {
		return annotation.Doc{}, err
	}

	if !found {
		return annotation.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT kind, data FROM annotations WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			data := []byte(stmt.ColumnText(1))

			switch stmt.ColumnText(0) {
			case kindSents:
				return json.Unmarshal(data, &doc.Sents)
			case kindTokens:
				return json.Unmarshal(data, &doc.Tokens)
			case kindEnts:
				return json.Unmarshal(data, &doc.Ents)
			}

			return nil
		},
	})
	if err != nil {
		return annotation.Doc{}, err
	}

	return doc, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	labels := []string{}
	err = sqlitex.Execute(conn, "SELECT labels FROM docs", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			for _, l := range strings.Split(stmt.ColumnText(0), ",") {
				if storage.HasLabel([]string{l}, pattern) {
					labels = append(labels, l)
				}
			}

			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return storage.UniqueSorted(labels), nil
}

func (h *DocStore) Write(doc annotation.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn, "INSERT INTO docs (title, uri, lang, labels, text) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, doc.URI, doc.Lang, labels, doc.Text},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}

	docID := conn.LastInsertRowID()

	layers := []struct {
		kind string
		data interface{}
		n    int
	}{
		{kindSents, doc.Sents, len(doc.Sents)},
		{kindTokens, doc.Tokens, len(doc.Tokens)},
		{kindEnts, doc.Ents, len(doc.Ents)},
	}

	for _, layer := range layers {
		if layer.n == 0 {
			continue
		}

		data, marshalErr := json.Marshal(layer.data)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO annotations (doc_id, kind, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, layer.kind, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert %s layer: %w", layer.kind, err)
		}
	}

	return nil
}
