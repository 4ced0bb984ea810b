package store

import "fmt"

// CreateImportLog records the start of one file import and returns its id.
func (s *Store) CreateImportLog(fileName string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (file_name, status)
		VALUES (?, 'processing')
	`, fileName)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// CompleteImportLog closes an import log entry with its final status.
func (s *Store) CompleteImportLog(id int64, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}
