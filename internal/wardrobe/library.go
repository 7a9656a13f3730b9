package wardrobe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Library groups stored items by category, in insertion order
type Library map[Category][]ClothingItem

// NewLibrary returns a library with every known category present and empty
func NewLibrary() Library {
	lib := make(Library, len(Categories))
	for _, c := range Categories {
		lib[c] = []ClothingItem{}
	}
	return lib
}

// Clone deep-copies the library so callers cannot mutate the original
func (l Library) Clone() Library {
	out := make(Library, len(l))
	for c, items := range l {
		copied := make([]ClothingItem, len(items))
		for i, item := range items {
			copied[i] = item
			if item.Size != nil {
				copied[i].Size = SizeOf(*item.Size)
			}
		}
		out[c] = copied
	}
	return out
}

// Count returns the total number of items across categories
func (l Library) Count() int {
	n := 0
	for _, items := range l {
		n += len(items)
	}
	return n
}

// Schema describes which item shape a stored document used
type Schema int

const (
	// SchemaEmpty means the document held no items to tell the shape from
	SchemaEmpty Schema = iota
	// SchemaLegacy stores each item as a bare path string
	SchemaLegacy
	// SchemaSized stores each item as a [path, size] pair
	SchemaSized
	// SchemaMixed holds both shapes
	SchemaMixed
)

func (s Schema) String() string {
	switch s {
	case SchemaEmpty:
		return "empty"
	case SchemaLegacy:
		return "legacy"
	case SchemaSized:
		return "sized"
	case SchemaMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// EncodeLibrary serializes every category, always in the sized schema
func EncodeLibrary(l Library) ([]byte, error) {
	doc := make(map[string][]ClothingItem, len(Categories))
	for _, c := range Categories {
		items := l[c]
		if items == nil {
			items = []ClothingItem{}
		}
		doc[string(c)] = items
	}
	return json.Marshal(doc)
}

// DecodeLibrary parses a stored document, detects which schema it used and
// migrates legacy items in memory. Unknown keys and items without a path or
// with an out-of-range size are dropped; missing categories are created empty.
func DecodeLibrary(data []byte) (Library, Schema, error) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, SchemaEmpty, fmt.Errorf("failed to parse library: %w", err)
	}
	if raw == nil {
		return nil, SchemaEmpty, fmt.Errorf("failed to parse library: document is null")
	}

	schema := detectSchema(raw)
	lib := NewLibrary()
	for key, elems := range raw {
		c := Category(key)
		if !c.Valid() {
			slog.Warn("Dropping unknown category from library", "category", key, "items", len(elems))
			continue
		}
		items := make([]ClothingItem, 0, len(elems))
		for idx, elem := range elems {
			var item ClothingItem
			if err := json.Unmarshal(elem, &item); err != nil {
				return nil, schema, fmt.Errorf("failed to parse %s item %d: %w", key, idx, err)
			}
			if err := checkStored(c, item); err != nil {
				slog.Warn("Dropping invalid library item", "category", key, "index", idx, "err", err)
				continue
			}
			items = append(items, item)
		}
		lib[c] = items
	}

	return lib, schema, nil
}

// checkStored applies the rules AddItem enforces to an item read from disk
func checkStored(c Category, item ClothingItem) error {
	if item.Path == "" {
		return fmt.Errorf("item has no path")
	}
	if item.Size != nil {
		return ValidateSize(c, *item.Size)
	}
	return nil
}

func detectSchema(raw map[string][]json.RawMessage) Schema {
	var paths, pairs int
	for _, elems := range raw {
		for _, elem := range elems {
			switch shapeOf(bytes.TrimSpace(elem)) {
			case shapePath:
				paths++
			case shapePair:
				pairs++
			}
		}
	}

	switch {
	case paths == 0 && pairs == 0:
		return SchemaEmpty
	case pairs == 0:
		return SchemaLegacy
	case paths == 0:
		return SchemaSized
	default:
		return SchemaMixed
	}
}
