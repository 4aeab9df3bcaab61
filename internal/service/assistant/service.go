// Package assistant orchestrates a single request through classification,
// prompt rendering, generation and the document store. Each request routes
// to exactly one of four terminal outcomes: rejected, created, edited or
// advised. A generation failure is terminal too and never mutates the store.
package assistant

import (
	"context"
	"time"

	"contractassist/internal/intent"
	"contractassist/internal/metrics"
	"contractassist/internal/models"
	"contractassist/internal/prompts"
	"contractassist/internal/storage"
)

// Generator is the surface the orchestrator needs from the generation
// client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Kind discriminates the terminal outcome of a request.
type Kind string

const (
	KindRejected Kind = "rejected"
	KindCreated  Kind = "created"
	KindEdited   Kind = "edited"
	KindAdvised  Kind = "advised"
)

// Answer is the shaped outcome of one request.
type Answer struct {
	Kind         Kind
	Question     string
	Response     string
	ContractType string
	Document     *models.Document
}

// Service wires the classifier, generator and store together.
type Service struct {
	store *storage.Store
	gen   Generator
}

func NewService(store *storage.Store, gen Generator) *Service {
	return &Service{store: store, gen: gen}
}

// Ask runs the request state machine. A supplied id that does not resolve is
// treated exactly like no id at all: the question falls through to creation
// or advice routing, never to a silent edit.
func (s *Service) Ask(ctx context.Context, question, documentID string) (*Answer, error) {
	cls := intent.Classify(question)
	if !cls.InDomain {
		metrics.RequestsRouted.WithLabelValues(string(KindRejected)).Inc()
		return &Answer{Kind: KindRejected, Question: question}, nil
	}
	if documentID != "" {
		if doc, err := s.store.Get(documentID); err == nil {
			return s.edit(ctx, question, doc)
		}
	}
	if cls.WantsNewDocument {
		return s.create(ctx, question)
	}
	return s.advise(ctx, question)
}

func (s *Service) create(ctx context.Context, question string) (*Answer, error) {
	reply, err := s.gen.Generate(ctx, prompts.BuildDraftPrompt(question))
	if err != nil {
		metrics.GenerationFailures.Inc()
		return nil, err
	}
	contractType, _ := intent.DetectType(question)
	doc := s.store.Create(prompts.ExtractDocument(reply), contractType, question)
	metrics.RequestsRouted.WithLabelValues(string(KindCreated)).Inc()
	return &Answer{
		Kind:         KindCreated,
		Question:     question,
		Response:     prompts.ExtractExplanation(reply),
		ContractType: doc.ContractType,
		Document:     doc,
	}, nil
}

func (s *Service) edit(ctx context.Context, question string, doc *models.Document) (*Answer, error) {
	reply, err := s.gen.Generate(ctx, prompts.BuildEditPrompt(doc.Body, question))
	if err != nil {
		metrics.GenerationFailures.Inc()
		return nil, err
	}
	body := prompts.ExtractDocument(reply)
	ts := time.Now().UTC()
	updated, err := s.store.Update(doc.ID, func(d *models.Document) {
		d.Body = body
		d.UpdatedAt = ts
		d.EditHistory = append(d.EditHistory, models.EditEntry{Question: question, Timestamp: ts})
	})
	if err != nil {
		// Deleted between fetch and update.
		return nil, err
	}
	metrics.RequestsRouted.WithLabelValues(string(KindEdited)).Inc()
	return &Answer{
		Kind:         KindEdited,
		Question:     question,
		Response:     prompts.ExtractExplanation(reply),
		ContractType: updated.ContractType,
		Document:     updated,
	}, nil
}

func (s *Service) advise(ctx context.Context, question string) (*Answer, error) {
	reply, err := s.gen.Generate(ctx, prompts.BuildGuidancePrompt(question))
	if err != nil {
		metrics.GenerationFailures.Inc()
		return nil, err
	}
	contractType, _ := intent.DetectType(question)
	metrics.RequestsRouted.WithLabelValues(string(KindAdvised)).Inc()
	return &Answer{
		Kind:         KindAdvised,
		Question:     question,
		Response:     reply,
		ContractType: contractType,
	}, nil
}

// Document fetches a stored document by id.
func (s *Service) Document(id string) (*models.Document, error) {
	return s.store.Get(id)
}

// Documents lists summaries for all stored documents.
func (s *Service) Documents() []models.DocumentSummary {
	return s.store.List()
}

// DeleteDocument removes a stored document by id.
func (s *Service) DeleteDocument(id string) error {
	return s.store.Delete(id)
}

// ActiveDocuments reports how many documents are currently stored.
func (s *Service) ActiveDocuments() int {
	return s.store.Len()
}
