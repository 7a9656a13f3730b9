package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/wardrobe/internal/storage"
	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Row is one item flattened with its category
type Row struct {
	Category string `json:"category" yaml:"category" parquet:"category"`
	Path     string `json:"path" yaml:"path" parquet:"path"`
	Size     *int   `json:"size,omitempty" yaml:"size,omitempty" parquet:"size,optional"`
}

type yamlCategory struct {
	Name  string                  `yaml:"name"`
	Items []wardrobe.ClothingItem `yaml:"items"`
}

type yamlDocument struct {
	Categories []yamlCategory `yaml:"categories"`
}

// Rows flattens a library in category order
func Rows(lib wardrobe.Library) []Row {
	rows := make([]Row, 0, lib.Count())
	for _, c := range wardrobe.Categories {
		for _, item := range lib[c] {
			rows = append(rows, Row{Category: string(c), Path: item.Path, Size: item.Size})
		}
	}
	return rows
}

// Write exports the library; the format follows the file extension
func Write(lib wardrobe.Library, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonl":
		return writeJSONL(Rows(lib), path)
	case ".yaml", ".yml":
		return writeYAML(lib, path)
	case ".parquet":
		return writeParquet(Rows(lib), path)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: .jsonl, .yaml, .parquet)", ext)
	}
}

// Read loads rows from an export file as store entries, unvalidated
func Read(path string) ([]storage.Entry, error) {
	var rows []Row
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonl":
		rows, err = readJSONL(path)
	case ".yaml", ".yml":
		rows, err = readYAML(path)
	case ".parquet":
		rows, err = readParquet(path)
	default:
		return nil, fmt.Errorf("unsupported import format: %s (supported: .jsonl, .yaml, .parquet)", ext)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]storage.Entry, len(rows))
	for i, r := range rows {
		entries[i] = storage.Entry{Category: r.Category, Item: wardrobe.NewItem(r.Path, r.Size)}
	}
	slog.Debug("Read export file", "path", path, "rows", len(entries))
	return entries, nil
}

func writeJSONL(rows []Row, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return file.Close()
}

func readJSONL(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	var rows []Row
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var r Row
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", lineNum, err)
		}
		rows = append(rows, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return rows, nil
}

func writeYAML(lib wardrobe.Library, path string) error {
	doc := yamlDocument{Categories: make([]yamlCategory, 0, len(wardrobe.Categories))}
	for _, c := range wardrobe.Categories {
		items := lib[c]
		if items == nil {
			items = []wardrobe.ClothingItem{}
		}
		doc.Categories = append(doc.Categories, yamlCategory{Name: string(c), Items: items})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}

func readYAML(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var rows []Row
	for _, c := range doc.Categories {
		for _, item := range c.Items {
			rows = append(rows, Row{Category: c.Name, Path: item.Path, Size: item.Size})
		}
	}
	return rows, nil
}

func writeParquet(rows []Row, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return file.Close()
}

func readParquet(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}
	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	var rows []Row
	for {
		batch := make([]Row, 128)
		n, err := reader.Read(batch)
		rows = append(rows, batch[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}
	return rows, nil
}
