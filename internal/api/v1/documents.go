package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerboy/lintstock-cli/internal/parser"
	"github.com/wayfarerboy/lintstock-cli/internal/store"
)

// ListDocuments returns metadata for every stored document.
// GET /api/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	docs, err := h.store.ListDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetDocument returns one parsed document. The optional question query
// parameter restricts the result to questions with that number, dropping
// reports left empty.
// GET /api/documents/:id?question=N
func (h *Handler) GetDocument(c *gin.Context) {
	doc, err := h.store.GetDocument(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if q := c.Query("question"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question must be an integer"})
			return
		}
		doc = parser.FilterByQuestionNumber(doc, n)
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes one stored document.
// DELETE /api/documents/:id
func (h *Handler) DeleteDocument(c *gin.Context) {
	err := h.store.DeleteDocument(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
