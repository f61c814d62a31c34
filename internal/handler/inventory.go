package handler

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"inventoryviewer/internal/codec"
	"inventoryviewer/internal/domain"
	"inventoryviewer/internal/service"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// emptyCell is shown for blank table cells
const emptyCell = "—"

// InventoryReader supplies the rendered inventory
type InventoryReader interface {
	Overview(ctx context.Context) (*service.Overview, error)
}

// InventoryHandler serves the inventory page and its exports
type InventoryHandler struct {
	svc       InventoryReader
	exporters *codec.Registry
	router    *Router
	pages     *template.Template
	logger    *zap.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(svc InventoryReader, exporters *codec.Registry, router *Router, logger *zap.Logger) (*InventoryHandler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporters == nil {
		exporters = codec.DefaultRegistry()
	}

	pages, err := template.New("").Funcs(template.FuncMap{
		"cell": cell,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &InventoryHandler{
		svc:       svc,
		exporters: exporters,
		router:    router,
		pages:     pages,
		logger:    logger,
	}, nil
}

// Register adds the handler's routes to mux
func (h *InventoryHandler) Register(mux *http.ServeMux) {
	base := h.router.Base()

	mux.HandleFunc("GET "+base+"/{$}", h.List)
	mux.HandleFunc("GET "+base+"/export/{format}", h.Export)
	mux.HandleFunc("GET /healthz", h.Health)

	if base != "" {
		mux.HandleFunc("GET "+base, h.redirectToList)
		mux.HandleFunc("GET /{$}", h.redirectToList)
	}
}

type exportLink struct {
	Format string
	URL    string
}

type pageData struct {
	Title         string
	Plugin        PluginInfo
	Menu          []menuLink
	Columns       []domain.Column
	Tables        []domain.ModuleTable
	ModuleCount   int
	LastImport    *domain.ImportInfo
	LastImportAge string
	Exports       []exportLink
}

type errorData struct {
	Title   string
	Plugin  PluginInfo
	Menu    []menuLink
	Status  int
	Message string
}

// List renders one table per module type
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		h.logger.Error("Failed to load inventory",
			zap.Error(err),
			zap.String("request_id", r.Header.Get(RequestIDHeader)))
		h.renderError(w, r, http.StatusInternalServerError, "The inventory could not be loaded.")
		return
	}

	data := pageData{
		Title:       Plugin.VerboseName,
		Plugin:      Plugin,
		Menu:        h.router.menu(MenuItems, r.URL.Path),
		Columns:     domain.Columns,
		Tables:      overview.Tables,
		ModuleCount: overview.ModuleCount,
		LastImport:  overview.LastImport,
	}
	if overview.LastImport != nil {
		data.LastImportAge = humanize.Time(overview.LastImport.ImportedAt)
	}
	for _, format := range h.exporters.Formats() {
		data.Exports = append(data.Exports, exportLink{
			Format: format,
			URL:    h.router.Reverse(RouteExport, format),
		})
	}

	h.render(w, "inventory_view.html", data, http.StatusOK)
}

// Export downloads the inventory tables in the requested format
func (h *InventoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.PathValue("format")
	exporter, ok := h.exporters.Get(format)
	if !ok {
		h.writeError(w, "Unknown export format",
			fmt.Sprintf("%q is not one of %v", format, h.exporters.Formats()),
			http.StatusNotFound)
		return
	}

	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		h.logger.Error("Failed to load inventory for export",
			zap.String("format", format),
			zap.Error(err))
		h.writeError(w, "Failed to export inventory", err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := exporter.Export(overview.Tables, &buf); err != nil {
		h.logger.Error("Failed to encode export", zap.String("format", format), zap.Error(err))
		h.writeError(w, "Failed to export inventory", err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", Plugin.Name+"."+format))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Health reports liveness
func (h *InventoryHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *InventoryHandler) redirectToList(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.router.Reverse(RouteInventory), http.StatusFound)
}

func (h *InventoryHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, "error.html", errorData{
		Title:   http.StatusText(status),
		Plugin:  Plugin,
		Menu:    h.router.menu(MenuItems, r.URL.Path),
		Status:  status,
		Message: message,
	}, status)
}

// render buffers the page; a template failure answers a plain 500
func (h *InventoryHandler) render(w http.ResponseWriter, name string, data any, status int) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *InventoryHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	writeError(w, h.logger, error, details, statusCode)
}

func cell(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}
