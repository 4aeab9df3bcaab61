package models

import "time"

// Document is one stored contract draft. The storage package owns every
// instance; callers only ever receive copies and must re-fetch by ID.
type Document struct {
	ID              string      `json:"id"`
	Body            string      `json:"body"`
	ContractType    string      `json:"contract_type,omitempty"`
	OriginalRequest string      `json:"original_request"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	EditHistory     []EditEntry `json:"edit_history"`
}

// EditEntry records one accepted edit on a document.
type EditEntry struct {
	Question  string    `json:"question"`
	Timestamp time.Time `json:"timestamp"`
}

// DocumentSummary is the list-view projection of a Document. Request holds
// the original question truncated for display.
type DocumentSummary struct {
	ID           string    `json:"id"`
	ContractType string    `json:"contract_type,omitempty"`
	Request      string    `json:"request"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	EditCount    int       `json:"edit_count"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	cp := *d
	if d.EditHistory != nil {
		cp.EditHistory = make([]EditEntry, len(d.EditHistory))
		copy(cp.EditHistory, d.EditHistory)
	}
	return &cp
}
