package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contractassist/internal/intent"
	"contractassist/internal/prompts"
	"contractassist/internal/service/assistant"
	"contractassist/internal/storage"
)

// Handler wires HTTP routes to the assistant service.
type Handler struct {
	assistant *assistant.Service
}

// NewHandler constructs a Handler instance.
func NewHandler(service *assistant.Service) *Handler {
	return &Handler{assistant: service}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.root)
	router.GET("/health", h.health)
	api := router.Group("/api")
	api.POST("/assistant", h.ask)
	api.GET("/documents", h.listDocuments)
	api.GET("/documents/:id", h.getDocument)
	api.DELETE("/documents/:id", h.deleteDocument)
	api.GET("/contract-types", h.contractTypes)
	api.GET("/sample-questions", h.sampleQuestions)
}

type askRequest struct {
	Question string `json:"question"`
	ID       string `json:"id"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := h.assistant.Ask(c.Request.Context(), question, strings.TrimSpace(req.ID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch answer.Kind {
	case assistant.KindRejected:
		c.JSON(http.StatusOK, gin.H{
			"success":  false,
			"question": answer.Question,
			"error":    prompts.RefusalMessage,
		})
	case assistant.KindCreated:
		// Minimal shape on purpose: the id is all a client needs to keep
		// editing, the body is the draft itself.
		c.JSON(http.StatusOK, gin.H{
			"id":   answer.Document.ID,
			"body": answer.Document.Body,
		})
	case assistant.KindEdited:
		payload := gin.H{
			"success":  true,
			"question": answer.Question,
			"response": answer.Response,
			"id":       answer.Document.ID,
			"body":     answer.Document.Body,
			"is_new":   false,
		}
		if answer.ContractType != "" {
			payload["contract_type"] = answer.ContractType
		}
		c.JSON(http.StatusOK, payload)
	default: // advised
		payload := gin.H{
			"success":  true,
			"question": answer.Question,
			"response": answer.Response,
		}
		if answer.ContractType != "" {
			payload["contract_type"] = answer.ContractType
		}
		c.JSON(http.StatusOK, payload)
	}
}

func (h *Handler) getDocument(c *gin.Context) {
	doc, err := h.assistant.Document(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) listDocuments(c *gin.Context) {
	docs := h.assistant.Documents()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(docs),
		"documents": docs,
	})
}

func (h *Handler) deleteDocument(c *gin.Context) {
	id := c.Param("id")
	if err := h.assistant.DeleteDocument(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document " + id + " deleted"})
}

func (h *Handler) contractTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contract_types": intent.Categories()})
}

var sampleQuestions = []string{
	"Draft an employment agreement for a software engineer in Bangalore",
	"Create an NDA between two startups sharing product roadmaps",
	"Prepare a lease agreement for a commercial property in Mumbai",
	"Draft a loan agreement between family members with a two year repayment plan",
	"What clauses should a service agreement include under the Indian Contract Act?",
	"Is a verbal agreement legally binding in India?",
}

func (h *Handler) sampleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sample_questions": sampleQuestions})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service":          "contract assistant",
		"active_documents": h.assistant.ActiveDocuments(),
	})
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Contract Assistant API",
		"description": "Ask contract-law questions, draft new contracts, and revise stored drafts by id",
		"usage_flow": []string{
			"1. POST /api/assistant with a question to get guidance or a new draft",
			"2. Keep the returned id and POST follow-up edit requests with it",
			"3. Fetch, list or delete stored drafts under /api/documents",
		},
		"main_endpoints": []string{
			"POST /api/assistant",
			"GET /api/documents",
			"GET /api/documents/:id",
			"DELETE /api/documents/:id",
			"GET /api/contract-types",
			"GET /api/sample-questions",
		},
	})
}
