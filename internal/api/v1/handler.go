// Package v1 exposes the survey documents and summaries over the local HTTP
// API.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/wayfarerboy/lintstock-cli/internal/importer"
	"github.com/wayfarerboy/lintstock-cli/internal/store"
)

// Handler bundles the v1 API endpoints.
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator
	surveyDir   string
}

// NewHandler creates the v1 API handler.
func NewHandler(s *store.Store, coordinator *importer.Coordinator, surveyDir string) *Handler {
	return &Handler{
		store:       s,
		coordinator: coordinator,
		surveyDir:   surveyDir,
	}
}

// RegisterRoutes registers the v1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/import", h.ImportUpload)
	router.POST("/import/dir", h.ImportDir)

	router.GET("/documents", h.ListDocuments)
	router.GET("/documents/:id", h.GetDocument)
	router.DELETE("/documents/:id", h.DeleteDocument)

	router.GET("/summaries/clients", h.ClientSummaries)
	router.GET("/summaries/questions", h.QuestionSummaries)
}
