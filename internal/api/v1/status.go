package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time.
var Version = "dev"

// GetStatus reports service health and the stored document count.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   Version,
		"documents": count,
		"surveyDir": h.surveyDir,
	})
}
