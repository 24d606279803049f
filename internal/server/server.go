// Package server hosts the live log dashboard: the analyzed report served
// over HTTP plus a websocket that pushes a refresh when the log file changes.
package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/engine"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

//go:embed all:web
var webFS embed.FS

// Server holds the Gin engine and dependencies for the dashboard.
type Server struct {
	engine *gin.Engine
	hub    *reportHub
	watch  *fileWatch
	port   string
}

// New creates a dashboard server for the given report. The report's source
// file is watched; each rewrite triggers a full re-analysis with cfg.
func New(rep *model.Report, cfg engine.Config, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery())

	// Disable automatic redirects that cause 301 issues.
	e.RedirectTrailingSlash = false
	e.RedirectFixedPath = false

	hub := newReportHub(rep)
	s := &Server{
		engine: e,
		hub:    hub,
		watch:  &fileWatch{path: rep.SourcePath, cfg: cfg, hub: hub},
		port:   port,
	}

	s.setupRoutes()
	return s
}

// serveEmbedded reads a file from the embedded FS and writes it with the given content type.
func serveEmbedded(webContent fs.FS, name string, contentType string) gin.HandlerFunc {
	// Pre-read the file at startup so we don't read on every request.
	data, err := fs.ReadFile(webContent, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) setupRoutes() {
	webContent, _ := fs.Sub(webFS, "web")

	// Dashboard — serve embedded files directly with correct content types.
	s.engine.GET("/", serveEmbedded(webContent, "index.html", "text/html; charset=utf-8"))
	s.engine.GET("/style.css", serveEmbedded(webContent, "style.css", "text/css; charset=utf-8"))
	s.engine.GET("/app.js", serveEmbedded(webContent, "app.js", "application/javascript; charset=utf-8"))

	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		rep := s.hub.Current()
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"source":         rep.SourcePath,
			"total_entries":  rep.TotalEntries,
			"parse_errors":   rep.ErrorCount,
			"dropped_pushes": s.hub.Dropped(),
		})
	})

	// Report API.
	s.engine.GET("/api/report", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.hub.Current())
	})

	// WebSocket refresh stream.
	s.engine.GET("/ws", s.handleWebSocket)
}

// Start runs the file watcher and the HTTP server. Blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		if err := s.watch.Start(ctx); err != nil {
			// Watching is best-effort; the dashboard still serves the last report.
			return
		}
	}()
	defer s.hub.closeAll()
	return s.engine.Run(":" + s.port)
}
