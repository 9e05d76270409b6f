// Package ui serves the visualizer web application: the upload page
// and the JSON chart-data API consumed by the charting surface.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	visualizer "mitoviz/app"
	"mitoviz/domain/abundance"
	"mitoviz/internal"
	"mitoviz/ports"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	service   *visualizer.VisualizerService
	exporter  ports.TableExporter
	templates *template.Template
	config    Config
	preloaded *abundance.Table
	log       *internal.Logger
}

// Config holds UI application configuration
type Config struct {
	Port           string
	MaxUploadBytes int64
	DemoEnabled    bool
	PreloadFile    string // optional results file served before any upload
}

// NewApp creates a new UI application
func NewApp(config Config, service *visualizer.VisualizerService, exporter ports.TableExporter, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = 50 * 1024 * 1024
	}

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		service:   service,
		exporter:  exporter,
		templates: templates,
		config:    config,
		log:       logger.WithComponent("UI"),
	}

	if config.PreloadFile != "" {
		app.loadPreloadFile(config.PreloadFile)
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// loadPreloadFile processes the configured results file once at
// startup. A bad file is logged and skipped; the app still serves
// uploads.
func (a *App) loadPreloadFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		a.log.Warn("preload file %s unavailable: %v", path, err)
		return
	}
	defer f.Close()

	tbl, err := a.service.ProcessUpload(f, path)
	if err != nil {
		a.log.Warn("preload file %s unusable: %v", path, err)
		return
	}
	a.preloaded = tbl
	a.log.Info("preloaded %s: %d species × %d samples", path, tbl.SpeciesCount(), tbl.SampleCount())
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)

	// Chart-data API: the uploaded file travels with every request
	// because nothing is persisted between renders
	a.router.Post("/api/visualize", a.handleVisualize)
	a.router.Post("/api/dashboard", a.handleDashboard)

	// Cleaned-table downloads
	a.router.Post("/api/export/csv", a.handleExportCSV)
	a.router.Post("/api/export/xlsx", a.handleExportXLSX)

	// UI metadata
	a.router.Get("/api/schemes", a.handleSchemes)

	if a.config.DemoEnabled {
		a.router.Get("/api/demo", a.handleDemo)
	}
	if a.preloaded != nil {
		a.router.Get("/api/preload", a.handlePreload)
	}
}

// Router exposes the handler for tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Port
	a.log.Info("starting visualizer on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
