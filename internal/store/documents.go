package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wayfarerboy/lintstock-cli/internal/model"
)

// ErrNotFound is returned when no document exists for the requested id.
var ErrNotFound = errors.New("document not found")

// SaveDocument persists one parsed document under the given id, replacing
// any previous import of the same file name.
func (s *Store) SaveDocument(id, fileName string, doc *model.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM documents WHERE file_name = ?`, fileName); err != nil {
		return fmt.Errorf("failed to clear previous import: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO documents (id, file_name, client_name, created_date, body)
		VALUES (?, ?, ?, ?, ?)
	`, id, fileName, doc.ClientName, doc.CreatedDate, string(body))
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return tx.Commit()
}

// ListDocuments returns metadata for every stored document, newest first.
func (s *Store) ListDocuments() ([]model.StoredDocument, error) {
	rows, err := s.db.Query(`
		SELECT id, file_name, client_name, created_date, imported_at
		FROM documents
		ORDER BY imported_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []model.StoredDocument{}
	for rows.Next() {
		var d model.StoredDocument
		if err := rows.Scan(&d.ID, &d.FileName, &d.ClientName, &d.CreatedDate, &d.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// GetDocument loads one parsed document by id.
func (s *Store) GetDocument(id string) (*model.Document, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM documents WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// AllDocuments loads every stored document body in import order. Used by the
// summary endpoints, which reduce over the full batch.
func (s *Store) AllDocuments() ([]*model.Document, error) {
	rows, err := s.db.Query(`SELECT body FROM documents ORDER BY imported_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	defer rows.Close()

	var docs []*model.Document
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan document body: %w", err)
		}
		var doc model.Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes one stored document.
func (s *Store) DeleteDocument(id string) error {
	res, err := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountDocuments returns the number of stored documents.
func (s *Store) CountDocuments() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}
