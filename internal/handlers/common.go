package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/lehigh-university-libraries/wardrobe/internal/outfit"
	"github.com/lehigh-university-libraries/wardrobe/internal/render"
	"github.com/lehigh-university-libraries/wardrobe/internal/storage"
	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

type Handler struct {
	store      *storage.LibraryStore
	selector   *outfit.Selector
	renderer   *render.Renderer
	uploadsDir string
}

// ItemResponse is the API view of a stored item
type ItemResponse struct {
	Category string `json:"category,omitempty"`
	Path     string `json:"path"`
	Size     *int   `json:"size"`
}

func New(store *storage.LibraryStore, renderer *render.Renderer, uploadsDir string) *Handler {
	if renderer == nil {
		renderer = render.New()
	}
	return &Handler{
		store:      store,
		selector:   outfit.NewSelector(),
		renderer:   renderer,
		uploadsDir: uploadsDir,
	}
}

// Routes registers every endpoint on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/library", h.HandleLibrary)
	mux.HandleFunc("/api/library/", h.HandleCategory)
	mux.HandleFunc("/api/items", h.HandleUpload)
	mux.HandleFunc("/api/outfit", h.HandleOutfit)
	mux.HandleFunc("/api/outfit.png", h.HandleOutfitImage)
	mux.HandleFunc("/uploads/", h.HandleUploads)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	return mux
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	h.writeJSONStatus(w, http.StatusOK, data)
}

func (h *Handler) writeJSONStatus(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// writeStoreError maps domain errors onto status codes
func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	var verr *wardrobe.ValidationError
	var serr *wardrobe.SelectionError
	switch {
	case errors.As(err, &verr):
		h.writeError(w, verr.Error(), http.StatusBadRequest)
	case errors.As(err, &serr):
		h.writeError(w, serr.Error(), http.StatusConflict)
	default:
		h.writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
	}
}

// File operation helpers
func (h *Handler) ensureUploadsDir() error {
	return os.MkdirAll(h.uploadsDir, 0755)
}

func toItemResponses(category wardrobe.Category, items []wardrobe.ClothingItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = ItemResponse{Category: string(category), Path: item.Path, Size: item.Size}
	}
	return out
}
