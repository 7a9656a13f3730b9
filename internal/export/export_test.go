package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/wardrobe/internal/storage"
	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

func sampleLibrary() wardrobe.Library {
	lib := wardrobe.NewLibrary()
	lib[wardrobe.Tops] = []wardrobe.ClothingItem{
		wardrobe.NewItem("a.png", wardrobe.SizeOf(10)),
		wardrobe.NewItem("legacy.png", nil),
	}
	lib[wardrobe.Shoes] = []wardrobe.ClothingItem{
		wardrobe.NewItem("c.png", wardrobe.SizeOf(9)),
	}
	return lib
}

func TestRowsOrder(t *testing.T) {
	rows := Rows(sampleLibrary())
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	expected := []string{"Tops", "Tops", "Shoes"}
	for i, c := range expected {
		if rows[i].Category != c {
			t.Errorf("Row %d: expected %s, got %s", i, c, rows[i].Category)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, ext := range []string{".jsonl", ".yaml", ".yml", ".parquet"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library"+ext)
			if err := Write(sampleLibrary(), path); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			entries, err := Read(path)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}

			s := storage.New(filepath.Join(t.TempDir(), "library.json"))
			if err := s.AddItems(entries); err != nil {
				t.Fatalf("AddItems failed: %v", err)
			}

			want := sampleLibrary()
			got := s.Library()
			for _, c := range wardrobe.Categories {
				if len(got[c]) != len(want[c]) {
					t.Fatalf("%s: expected %d items, got %d", c, len(want[c]), len(got[c]))
				}
				for i := range want[c] {
					if !got[c][i].Equal(want[c][i]) {
						t.Errorf("%s[%d]: expected %+v, got %+v", c, i, want[c][i], got[c][i])
					}
				}
			}
		})
	}
}

func TestWriteJSONLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.jsonl")
	if err := Write(sampleLibrary(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	expected := `{"category":"Tops","path":"a.png","size":10}
{"category":"Tops","path":"legacy.png"}
{"category":"Shoes","path":"c.png","size":9}
`
	if string(data) != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, data)
	}
}

func TestWriteYAMLKeepsEmptyCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	if err := Write(sampleLibrary(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if !strings.Contains(string(data), "name: Bottoms") {
		t.Errorf("Expected Bottoms to be listed, got:\n%s", data)
	}
}

func TestReadJSONLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	data := "{\"category\":\"Tops\",\"path\":\"a.png\"}\n\n{broken\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := Read(path)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected error on line 3, got %v", err)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if err := Write(sampleLibrary(), "library.csv"); err == nil {
		t.Error("Expected error for unsupported export format")
	}
	if _, err := Read("library.csv"); err == nil {
		t.Error("Expected error for unsupported import format")
	}
}

func TestReadNonExistentFile(t *testing.T) {
	for _, ext := range []string{".jsonl", ".yaml", ".parquet"} {
		if _, err := Read("/nonexistent/path/library" + ext); err == nil {
			t.Errorf("Expected error for missing %s file", ext)
		}
	}
}
