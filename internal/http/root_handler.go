package http

import (
	"fmt"
	"net/http"

	"github.com/salesdesk/salesdesk/pkg/logger"
)

// RootHandler answers the health check, the client config script and unknown paths
type RootHandler struct {
	logger      logger.Logger
	apiEndpoint string
	version     string
	timezone    string
}

func NewRootHandler(logger logger.Logger, apiEndpoint, version, timezone string) *RootHandler {
	return &RootHandler{
		logger:      logger,
		apiEndpoint: apiEndpoint,
		version:     version,
		timezone:    timezone,
	}
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/", h.Handle)
}

func (h *RootHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/config.js":
		h.serveConfigJS(w, r)
	case "/api", "/api/":
		writeJSON(w, http.StatusOK, map[string]string{"status": "api running"})
	default:
		h.logger.WithField("path", r.URL.Path).Debug("Route not found")
		WriteJSONError(w, "Not found", http.StatusNotFound)
	}
}

func (h *RootHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  "ok",
		"version": h.version,
	})
}

// serveConfigJS exposes the API endpoint, version and timezone to the client-rendered dashboard
func (h *RootHandler) serveConfigJS(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	configJS := fmt.Sprintf(
		"window.API_ENDPOINT = %q;\nwindow.VERSION = %q;\nwindow.TIMEZONE = %q;",
		h.apiEndpoint,
		h.version,
		h.timezone,
	)
	_, _ = w.Write([]byte(configJS))
}
