package handlers

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type ImageProcessResult struct {
	ImageFilename string
	ImageFilePath string
	Width         int
	Height        int
	// Created is false when an identical upload was already on disk
	Created bool
}

var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func isSupportedImage(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

func calculateDataMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// processImageFile checks the bytes decode as an image and stores them under
// their content hash, so re-uploading the same picture reuses one file
func (h *Handler) processImageFile(fileData []byte, filename string) (*ImageProcessResult, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("file is not a readable image: %w", err)
	}

	imageFilename := calculateDataMD5(fileData) + strings.ToLower(filepath.Ext(filename))
	imageFilePath, err := filepath.Abs(filepath.Join(h.uploadsDir, imageFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image path: %w", err)
	}

	_, statErr := os.Stat(imageFilePath)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := os.WriteFile(imageFilePath, fileData, 0644); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	slog.Info("Image saved", "filename", imageFilename, "width", cfg.Width, "height", cfg.Height)

	return &ImageProcessResult{
		ImageFilename: imageFilename,
		ImageFilePath: imageFilePath,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Created:       created,
	}, nil
}

// HandleUploads serves stored images back to the browser
func (h *Handler) HandleUploads(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/uploads/")

	// Prevent directory traversal attacks
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.uploadsDir, name))
}
