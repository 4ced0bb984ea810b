package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "github.com/wayfarerboy/lintstock-cli/internal/api/v1"
	"github.com/wayfarerboy/lintstock-cli/internal/config"
	"github.com/wayfarerboy/lintstock-cli/internal/importer"
	"github.com/wayfarerboy/lintstock-cli/internal/store"
)

// Server is the local HTTP server over the parsed survey documents.
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
}

// NewServer builds the server: SQLite store, import coordinator, API routes,
// and static browsing of the JSON output directory.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "lintstock.db")
	jsonDir := filepath.Join(dataDir, "json")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	coordinator := importer.NewCoordinator(sqliteStore, jsonDir)
	v1Handler := v1.NewHandler(sqliteStore, coordinator, cfg.Data.SurveyDir)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		v1:     v1Handler,
	}

	s.setupRoutes(jsonDir)

	return s
}

func (s *Server) setupRoutes(jsonDir string) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	// Raw JSON documents for browsing and diffing.
	s.router.Static("/files", jsonDir)
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore exposes the backing store.
func (s *Server) GetStore() *store.Store {
	return s.store
}
