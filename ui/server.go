package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amanshaikhx1/Auto-Dashboard/app"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/internal"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/config"
	apperrors "github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/session"
)

// Server exposes the dataset pipeline over a JSON API.
type Server struct {
	router   *gin.Engine
	pipeline *app.Pipeline
	catalog  *catalog.Registry
	cfg      config.ServerConfig
	logger   *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(pipeline *app.Pipeline, reg *catalog.Registry, cfg config.ServerConfig, logger *internal.Logger) *Server {
	gin.SetMode(cfg.GinMode)
	s := &Server{
		router:   gin.Default(),
		pipeline: pipeline,
		catalog:  reg,
		cfg:      cfg,
		logger:   logger.With("Server"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = s.cfg.MaxUploadBytes

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/api/catalog", s.handleCatalog)

	s.router.POST("/api/datasets", s.handleUpload)
	s.router.GET("/api/datasets/:id/mappings", s.handleMappings)
	s.router.PUT("/api/datasets/:id/mappings/:column", s.handleOverride)
	s.router.GET("/api/datasets/:id/metrics", s.handleMetrics)
	s.router.DELETE("/api/datasets/:id", s.handleDelete)
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	s.logger.Info("listening on :%s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "catalog_fields": s.catalog.Len()})
}

// handleCatalog lists the business field catalog grouped by category.
func (s *Server) handleCatalog(c *gin.Context) {
	grouped := gin.H{}
	for _, cat := range catalog.Categories {
		fields := s.catalog.ByCategory(cat)
		out := make([]gin.H, 0, len(fields))
		for _, f := range fields {
			out = append(out, gin.H{
				"id":            f.ID,
				"display_name":  f.DisplayName,
				"expected_type": f.ExpectedType,
			})
		}
		grouped[string(cat)] = out
	}
	c.JSON(http.StatusOK, grouped)
}

// handleUpload ingests a multipart CSV or XLSX upload and returns the
// resolved mappings and metrics. An upload whose file has headers but no data
// rows succeeds with zero metrics and a note.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	if fileHeader.Size > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds size limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	entry, err := s.pipeline.Ingest(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		if apperrors.GetCode(err) != apperrors.CodeEmptyDataset {
			s.respondError(c, err)
			return
		}
		// Empty-file and headerless uploads never produce a dataset; they
		// still answer with a well-defined body, not a failure.
		if entry.Dataset == nil {
			c.JSON(http.StatusOK, gin.H{"note": "no data available"})
			return
		}
	}

	body := entryResponse(entry)
	if err != nil {
		body["note"] = "no data available"
	}
	c.JSON(http.StatusCreated, body)
}

func (s *Server) handleMappings(c *gin.Context) {
	entry, err := s.getEntry(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dataset_id": entry.Dataset.ID,
		"mappings":   entry.Dataset.Mappings,
	})
}

// overrideRequest is the body of a mapping override. An empty field id
// unmaps the column.
type overrideRequest struct {
	BusinessField string `json:"business_field"`
}

func (s *Server) handleOverride(c *gin.Context) {
	id, ok := s.datasetID(c)
	if !ok {
		return
	}

	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := s.pipeline.Override(id, c.Param("column"), core.FieldID(req.BusinessField))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entryResponse(entry))
}

func (s *Server) handleMetrics(c *gin.Context) {
	entry, err := s.getEntry(c)
	if err != nil {
		return
	}
	if entry.Dataset.RowCount == 0 {
		c.JSON(http.StatusOK, gin.H{"metrics": entry.Metrics, "note": "no data available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": entry.Metrics})
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := s.datasetID(c)
	if !ok {
		return
	}
	s.pipeline.Delete(id)
	c.Status(http.StatusNoContent)
}

func (s *Server) datasetID(c *gin.Context) (core.DatasetID, bool) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset id"})
		return "", false
	}
	return id, true
}

func (s *Server) getEntry(c *gin.Context) (session.Entry, error) {
	id, ok := s.datasetID(c)
	if !ok {
		return session.Entry{}, apperrors.InvalidInput("invalid dataset id")
	}
	entry, err := s.pipeline.Get(id)
	if err != nil {
		s.respondError(c, err)
		return session.Entry{}, err
	}
	return entry, nil
}

// respondError maps application error codes onto HTTP statuses.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeEmptyDataset:
		status = http.StatusOK
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": apperrors.GetCode(err)})
}

func entryResponse(entry session.Entry) gin.H {
	return gin.H{
		"dataset_id": entry.Dataset.ID,
		"file_name":  entry.Dataset.FileName,
		"row_count":  entry.Dataset.RowCount,
		"columns":    entry.Dataset.Columns,
		"mappings":   entry.Dataset.Mappings,
		"metrics":    entry.Metrics,
	}
}
