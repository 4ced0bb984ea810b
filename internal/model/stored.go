package model

import "time"

// StoredDocument is the persistence wrapper around one parsed document.
type StoredDocument struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ClientName  string    `json:"clientName"`
	CreatedDate string    `json:"createdDate"`
	ImportedAt  time.Time `json:"importedAt"`
}
