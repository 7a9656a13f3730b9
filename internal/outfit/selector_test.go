package outfit

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/wardrobe/internal/storage"
	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

func fullLibrary() wardrobe.Library {
	lib := wardrobe.NewLibrary()
	lib[wardrobe.Tops] = []wardrobe.ClothingItem{
		wardrobe.NewItem("t1.png", wardrobe.SizeOf(8)),
		wardrobe.NewItem("t2.png", wardrobe.SizeOf(10)),
		wardrobe.NewItem("t3.png", nil),
	}
	lib[wardrobe.Bottoms] = []wardrobe.ClothingItem{
		wardrobe.NewItem("b1.png", wardrobe.SizeOf(12)),
		wardrobe.NewItem("b2.png", wardrobe.SizeOf(14)),
	}
	lib[wardrobe.Shoes] = []wardrobe.ClothingItem{
		wardrobe.NewItem("s1.png", wardrobe.SizeOf(9)),
	}
	return lib
}

func contains(items []wardrobe.ClothingItem, item wardrobe.ClothingItem) bool {
	for _, candidate := range items {
		if candidate.Equal(item) {
			return true
		}
	}
	return false
}

func TestGenerateMembership(t *testing.T) {
	lib := fullLibrary()
	s := NewSelector()

	for i := 0; i < 500; i++ {
		o, err := s.Generate(lib)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(o) != len(wardrobe.Categories) {
			t.Fatalf("Expected %d items, got %d", len(wardrobe.Categories), len(o))
		}
		for _, c := range wardrobe.Categories {
			if !contains(lib[c], o[c]) {
				t.Fatalf("Item %+v not drawn from %s", o[c], c)
			}
		}
	}
}

func TestGenerateReachesEveryItem(t *testing.T) {
	lib := fullLibrary()
	s := NewSelectorWithRand(rand.New(rand.NewPCG(1, 2)))

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		o, err := s.Generate(lib)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, sel := range o.Items() {
			seen[sel.Item.Path] = true
		}
	}

	for _, c := range wardrobe.Categories {
		for _, item := range lib[c] {
			if !seen[item.Path] {
				t.Errorf("Expected %s to be picked at least once", item.Path)
			}
		}
	}
}

func TestGenerateFailsOnFirstEmptyCategory(t *testing.T) {
	tests := []struct {
		name     string
		empty    []wardrobe.Category
		expected wardrobe.Category
	}{
		{name: "all empty reports tops", empty: wardrobe.Categories, expected: wardrobe.Tops},
		{name: "bottoms and shoes empty reports bottoms", empty: []wardrobe.Category{wardrobe.Bottoms, wardrobe.Shoes}, expected: wardrobe.Bottoms},
		{name: "only shoes empty", empty: []wardrobe.Category{wardrobe.Shoes}, expected: wardrobe.Shoes},
		{name: "tops and shoes empty reports tops", empty: []wardrobe.Category{wardrobe.Shoes, wardrobe.Tops}, expected: wardrobe.Tops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := fullLibrary()
			for _, c := range tt.empty {
				lib[c] = nil
			}

			o, err := Generate(lib)
			if o != nil {
				t.Errorf("Expected no partial outfit, got %v", o)
			}
			if !errors.Is(err, wardrobe.ErrEmptyCategory) {
				t.Fatalf("Expected ErrEmptyCategory, got %v", err)
			}
			var serr *wardrobe.SelectionError
			if !errors.As(err, &serr) {
				t.Fatalf("Expected *SelectionError, got %T", err)
			}
			if serr.Category != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, serr.Category)
			}
		})
	}
}

func TestClearAllThenGenerateReportsTops(t *testing.T) {
	s := storage.New(filepath.Join(t.TempDir(), "library.json"))
	for _, c := range wardrobe.Categories {
		if err := s.AddItem(c, wardrobe.NewItem(string(c)+".png", nil)); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
	}
	if err := s.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	_, err := Generate(s.Library())
	var serr *wardrobe.SelectionError
	if !errors.As(err, &serr) || serr.Category != wardrobe.Tops {
		t.Fatalf("Expected EmptyCategory(Tops), got %v", err)
	}
}

func TestGenerateScenario(t *testing.T) {
	s := storage.New(filepath.Join(t.TempDir(), "library.json"))
	top := wardrobe.NewItem("a.png", wardrobe.SizeOf(10))
	bottom := wardrobe.NewItem("b.png", wardrobe.SizeOf(12))
	shoe := wardrobe.NewItem("c.png", wardrobe.SizeOf(9))

	if err := s.AddItem(wardrobe.Tops, top); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := s.AddItem(wardrobe.Bottoms, bottom); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	_, err := Generate(s.Library())
	var serr *wardrobe.SelectionError
	if !errors.As(err, &serr) || serr.Category != wardrobe.Shoes {
		t.Fatalf("Expected EmptyCategory(Shoes), got %v", err)
	}

	if err := s.AddItem(wardrobe.Shoes, shoe); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	o, err := Generate(s.Library())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !o[wardrobe.Tops].Equal(top) || !o[wardrobe.Bottoms].Equal(bottom) || !o[wardrobe.Shoes].Equal(shoe) {
		t.Errorf("Unexpected outfit: %+v", o)
	}
}

func TestItemsOrder(t *testing.T) {
	o, err := Generate(fullLibrary())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	items := o.Items()
	if len(items) != len(wardrobe.Categories) {
		t.Fatalf("Expected %d selections, got %d", len(wardrobe.Categories), len(items))
	}
	for i, c := range wardrobe.Categories {
		if items[i].Category != c {
			t.Errorf("Position %d: expected %s, got %s", i, c, items[i].Category)
		}
	}
}
