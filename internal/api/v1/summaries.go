package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerboy/lintstock-cli/internal/summary"
)

// ClientSummaries compiles the per-client roster over all stored documents.
// GET /api/summaries/clients
func (h *Handler) ClientSummaries(c *gin.Context) {
	docs, err := h.store.AllDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary.Clients(docs))
}

// QuestionSummaries compiles the per-question roster over all stored
// documents.
// GET /api/summaries/questions
func (h *Handler) QuestionSummaries(c *gin.Context) {
	docs, err := h.store.AllDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary.Questions(docs))
}
