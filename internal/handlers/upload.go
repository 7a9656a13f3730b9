package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

const maxUploadBytes = 10 * 1024 * 1024

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		file, header, err = r.FormFile("files")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	category, err := wardrobe.ParseCategory(r.FormValue("category"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	var size *int
	if sizeText := strings.TrimSpace(r.FormValue("size")); sizeText != "" {
		n, err := wardrobe.ParseSize(category, sizeText)
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		size = &n
	}

	if !isSupportedImage(header.Filename) {
		h.writeError(w, "Unsupported image type. Must be .png, .jpg or .jpeg", http.StatusBadRequest)
		return
	}

	if err := h.ensureUploadsDir(); err != nil {
		h.writeError(w, "Failed to create uploads directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Read one byte past the limit to detect oversized files
	fileData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fileData) > maxUploadBytes {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}

	result, err := h.processImageFile(fileData, header.Filename)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := wardrobe.NewItem(result.ImageFilePath, size)
	if err := h.store.AddItem(category, item); err != nil {
		if result.Created {
			if rmErr := os.Remove(result.ImageFilePath); rmErr != nil {
				slog.Error("Unable to remove orphaned upload", "path", result.ImageFilePath, "err", rmErr)
			}
		}
		h.writeStoreError(w, err)
		return
	}

	h.writeJSONStatus(w, http.StatusCreated, map[string]any{
		"message": "Image added to " + string(category),
		"item":    ItemResponse{Category: string(category), Path: item.Path, Size: item.Size},
		"width":   result.Width,
		"height":  result.Height,
	})
}
