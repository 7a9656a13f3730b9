package handlers

import (
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

func (h *Handler) HandleLibrary(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		lib := h.store.Library()
		response := make(map[string][]ItemResponse, len(wardrobe.Categories))
		for _, c := range wardrobe.Categories {
			response[string(c)] = toItemResponses(c, lib[c])
		}
		h.writeJSON(w, response)
	case "DELETE":
		if err := h.store.ClearAll(); err != nil {
			h.writeStoreError(w, err)
			return
		}
		h.writeJSON(w, map[string]any{
			"cleared": true,
			"message": "All stored images have been removed",
		})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleCategory(w http.ResponseWriter, r *http.Request) {
	category, err := wardrobe.ParseCategory(strings.TrimPrefix(r.URL.Path, "/api/library/"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	switch r.Method {
	case "GET":
		items, err := h.store.Items(category)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		h.writeJSON(w, toItemResponses(category, items))
	case "DELETE":
		cleared, err := h.store.ClearCategory(category)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		message := "All images from " + string(category) + " have been removed"
		if !cleared {
			message = "No images stored in " + string(category)
		}
		h.writeJSON(w, map[string]any{
			"category": category,
			"cleared":  cleared,
			"message":  message,
		})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
