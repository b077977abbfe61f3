package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

// MediaStore is the store surface the API layer needs.
type MediaStore interface {
	List(ctx context.Context) ([]types.MediaItem, error)
	Create(ctx context.Context, item types.MediaItem) (types.MediaItem, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]types.MediaItem, error)
}

// Handler serves the media catalog routes.
type Handler struct {
	store  MediaStore
	logger *log.Logger
}

// NewHandler creates a Handler backed by the given store. A nil logger
// falls back to the standard logger.
func NewHandler(store MediaStore, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Routes returns the fully wired request mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /media", h.instrument("GET /media", http.HandlerFunc(h.list)))
	mux.Handle("POST /media", h.instrument("POST /media", http.HandlerFunc(h.create)))
	mux.Handle("DELETE /media/{id}", h.instrument("DELETE /media/{id}", http.HandlerFunc(h.delete)))
	mux.Handle("GET /media/search", h.instrument("GET /media/search", http.HandlerFunc(h.search)))

	mux.HandleFunc("GET /openapi.json", h.openapi)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// list handles GET /media: all records as a JSON array.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list media", err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

// create handles POST /media: validate the body, insert, return the created
// record with its assigned id.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.store.Create(r.Context(), req.toItem())
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr.FieldMap())
			return
		}
		h.internalError(w, r, "create media", err)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

// delete handles DELETE /media/{id}.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "media id must be an integer")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrInvalidID):
			writeError(w, http.StatusNotFound, "media not found")
		default:
			h.internalError(w, r, "delete media", err)
		}
		return
	}

	writeJSON(w, deleteResponse{
		Message: fmt.Sprintf("media %d deleted successfully", id),
	}, http.StatusOK)
}

// search handles GET /media/search?query=...
// A missing or empty query parameter is a 400; a query that matches nothing
// is a 200 with an empty array.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing 'query' parameter")
		return
	}

	items, err := h.store.Search(r.Context(), query)
	if err != nil {
		h.internalError(w, r, "search media", err)
		return
	}
	writeJSON(w, items, http.StatusOK)
}

// internalError logs the failure with the request id and returns a generic
// 500 envelope; storage detail never reaches the client.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Printf("[%s] %s: %v", requestIDFromContext(r.Context()), op, err)
	writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}
