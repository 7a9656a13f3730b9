package wardrobe

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ClothingItem is one stored image with its optional AU size
type ClothingItem struct {
	Path string `yaml:"path"`
	Size *int   `yaml:"size,omitempty"`
}

// NewItem builds an item; pass nil size when the size is unknown
func NewItem(path string, size *int) ClothingItem {
	return ClothingItem{Path: path, Size: size}
}

// SizeOf is a helper for literal sizes
func SizeOf(n int) *int {
	return &n
}

// HasSize reports whether a size was recorded
func (i ClothingItem) HasSize() bool {
	return i.Size != nil
}

// SizeLabel returns the size as text, or "-" when absent
func (i ClothingItem) SizeLabel() string {
	if i.Size == nil {
		return "-"
	}
	return strconv.Itoa(*i.Size)
}

// Equal compares path and size by value
func (i ClothingItem) Equal(other ClothingItem) bool {
	if i.Path != other.Path {
		return false
	}
	if i.Size == nil || other.Size == nil {
		return i.Size == nil && other.Size == nil
	}
	return *i.Size == *other.Size
}

// MarshalJSON writes the current on-disk shape: [path, size]
func (i ClothingItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{i.Path, i.Size})
}

// UnmarshalJSON accepts both the legacy bare path and the [path, size] pair
func (i *ClothingItem) UnmarshalJSON(data []byte) error {
	switch shapeOf(data) {
	case shapePath:
		var path string
		if err := json.Unmarshal(data, &path); err != nil {
			return err
		}
		*i = ClothingItem{Path: path}
		return nil
	case shapePair:
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) == 0 || len(parts) > 2 {
			return fmt.Errorf("item must be [path, size], got %d elements", len(parts))
		}
		var item ClothingItem
		if err := json.Unmarshal(parts[0], &item.Path); err != nil {
			return fmt.Errorf("item path: %w", err)
		}
		if len(parts) == 2 {
			if err := json.Unmarshal(parts[1], &item.Size); err != nil {
				return fmt.Errorf("item size: %w", err)
			}
		}
		*i = item
		return nil
	default:
		return fmt.Errorf("item must be a path or [path, size], got %s", data)
	}
}

type itemShape int

const (
	shapeUnknown itemShape = iota
	shapePath
	shapePair
)

func shapeOf(data []byte) itemShape {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '"':
			return shapePath
		case '[':
			return shapePair
		default:
			return shapeUnknown
		}
	}
	return shapeUnknown
}
