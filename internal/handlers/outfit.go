package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
)

func (h *Handler) HandleOutfit(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	o, err := h.selector.Generate(h.store.Library())
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	items := make([]ItemResponse, 0, len(o))
	for _, sel := range o.Items() {
		items = append(items, ItemResponse{Category: string(sel.Category), Path: sel.Item.Path, Size: sel.Item.Size})
	}
	h.writeJSON(w, map[string]any{"items": items})
}

func (h *Handler) HandleOutfitImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	o, err := h.selector.Generate(h.store.Library())
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	// Render fully before writing so a broken image still yields an error status
	var buf bytes.Buffer
	if err := h.renderer.Encode(&buf, o); err != nil {
		h.writeError(w, "Failed to render outfit: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("Unable to write outfit image", "err", err)
	}
}
