// Package storage keeps contract drafts in process memory for the lifetime
// of the service. The store is the sole owner of every record: callers get
// copies in and out, and mutations happen only through Update under the
// store's lock, so a record update is atomic and writes are serialized.
package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"contractassist/internal/models"
)

// ErrNotFound is returned when no document exists for the given id.
var ErrNotFound = errors.New("document not found")

const summaryRequestLimit = 100

// Store is an in-memory document store safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*models.Document
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*models.Document)}
}

// Create stores a new document and returns a copy. The store generates the
// id; CreatedAt, UpdatedAt and OriginalRequest are fixed here for good.
func (s *Store) Create(body, contractType, originalRequest string) *models.Document {
	now := time.Now().UTC()
	doc := &models.Document{
		ID:              uuid.NewString(),
		Body:            body,
		ContractType:    contractType,
		OriginalRequest: originalRequest,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.mu.Unlock()
	return doc.Clone()
}

// Get returns a copy of the document, or ErrNotFound.
func (s *Store) Get(id string) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

// Update applies mutate to the stored document under the write lock and
// returns a copy of the result. The mutator must not retain the pointer it
// is handed.
func (s *Store) Update(id string, mutate func(*models.Document)) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(doc)
	return doc.Clone(), nil
}

// Delete removes the document, or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// List returns summaries for all documents ordered by last activity, newest
// first. Request text longer than 100 characters is truncated with an
// ellipsis.
func (s *Store) List() []models.DocumentSummary {
	s.mu.RLock()
	out := make([]models.DocumentSummary, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, models.DocumentSummary{
			ID:           doc.ID,
			ContractType: doc.ContractType,
			Request:      truncateRequest(doc.OriginalRequest),
			CreatedAt:    doc.CreatedAt,
			UpdatedAt:    doc.UpdatedAt,
			EditCount:    len(doc.EditHistory),
		})
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// Len reports the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Truncation counts characters, not bytes; the cut must not split a rune.
func truncateRequest(req string) string {
	runes := []rune(req)
	if len(runes) <= summaryRequestLimit {
		return req
	}
	return string(runes[:summaryRequestLimit]) + "..."
}
