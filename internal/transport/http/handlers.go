package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"urlshort/internal/domain"
	"urlshort/internal/service"
)

// Handler holds the HTTP handlers for the URL shortener
type Handler struct {
	shortener service.URLShortener
	baseURL   string
}

// NewHandler creates a new HTTP handler. baseURL is used only to format
// the short_url response field and must not end with a slash.
func NewHandler(shortener service.URLShortener, baseURL string) *Handler {
	return &Handler{
		shortener: shortener,
		baseURL:   baseURL,
	}
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] Failed to encode response: %v", err)
	}
}

// writeError writes a JSON error body of the form {"error": "..."}
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Health handles GET /health. It reports liveness only and never touches
// storage.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Shorten handles POST /shorten
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// A malformed body and a missing url field get the same answer: the
	// caller did not supply a url.
	var req domain.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	entry, err := h.shortener.Shorten(r.Context(), req.URL)
	if err != nil {
		log.Printf("[ERROR] Failed to create short URL for '%s': %v", req.URL, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, domain.ShortenResponse{
		Code:     entry.Code,
		ShortURL: h.baseURL + "/" + entry.Code,
		URL:      entry.OriginalURL,
	})
}

// Redirect handles GET /{code} and redirects to the original URL
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/")
	if code == "" || strings.Contains(code, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	entry, err := h.shortener.Resolve(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		log.Printf("[ERROR] Failed to resolve code '%s': %v", code, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.Redirect(w, r, entry.OriginalURL, http.StatusFound)
}
