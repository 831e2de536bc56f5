package handlers

import (
	"log/slog"
	"net/http"

	"github.com/proteinmeals/backend/internal/config"
	"github.com/proteinmeals/backend/internal/repository"
)

const (
	// maxDiagnosticCollections bounds the collection listing in the report.
	maxDiagnosticCollections = 10
	// maxDiagnosticErrorLen bounds the error detail embedded in a status string.
	maxDiagnosticErrorLen = 50
)

// DiagnosticsHandler serves the service identity and the store probe report.
type DiagnosticsHandler struct {
	store *repository.Store
	cfg   config.StoreConfig
	log   *slog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(store *repository.Store, cfg config.StoreConfig, log *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

// Info handles GET /. It identifies the service with a static payload.
func (h *DiagnosticsHandler) Info(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Protein-focused Food Delivery Backend",
	}, h.log)
}

// DiagnosticsReport describes the backend and its store connection in
// human-readable status strings.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnose handles GET /test. The probe itself never fails: any problem it
// finds is rendered as a status string inside a 200 report.
func (h *DiagnosticsHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	report := DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setMarker(h.cfg.URL != ""),
		DatabaseName:     setMarker(h.cfg.Database != ""),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store.Available() {
		report.ConnectionStatus = "Connected"

		names, err := h.store.CollectionNames(r.Context())
		if err != nil {
			h.log.Warn("store probe failed", "error", err)
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxDiagnosticErrorLen)
		} else {
			if len(names) > maxDiagnosticCollections {
				names = names[:maxDiagnosticCollections]
			}
			report.Collections = append(report.Collections, names...)
			report.Database = "✅ Connected & Working"
		}
	}

	WriteJSON(w, http.StatusOK, report, h.log)
}

func setMarker(configured bool) string {
	if configured {
		return "✅ Set"
	}
	return "❌ Not Set"
}
