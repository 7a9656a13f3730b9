package wardrobe

import (
	"strconv"
	"strings"
)

// Category is one of the fixed clothing classes
type Category string

const (
	Tops    Category = "Tops"
	Bottoms Category = "Bottoms"
	Shoes   Category = "Shoes"
)

// Categories lists every known category in the order outfits are scanned
var Categories = []Category{Tops, Bottoms, Shoes}

// AU size bounds per category
var sizeRanges = map[Category][2]int{
	Tops:    {4, 18},
	Bottoms: {4, 18},
	Shoes:   {5, 13},
}

// Valid reports whether c belongs to the closed category set
func (c Category) Valid() bool {
	_, ok := sizeRanges[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// CategoryNames returns the category names joined for prompts and messages
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// ParseCategory matches free text against the category set, ignoring ASCII case
func ParseCategory(text string) (Category, error) {
	trimmed := strings.TrimSpace(text)
	for _, c := range Categories {
		if equalFoldASCII(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", &ValidationError{Kind: UnknownCategory, Input: text}
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if 'A' <= x && x <= 'Z' {
			x += 'a' - 'A'
		}
		if 'A' <= y && y <= 'Z' {
			y += 'a' - 'A'
		}
		if x != y {
			return false
		}
	}
	return true
}

// SizeRange returns the inclusive AU size bounds for a category
func SizeRange(c Category) (min, max int, ok bool) {
	r, ok := sizeRanges[c]
	return r[0], r[1], ok
}

// SizeRangeLabel renders the bounds as "4-18" for prompts
func SizeRangeLabel(c Category) string {
	min, max, ok := SizeRange(c)
	if !ok {
		return ""
	}
	return strconv.Itoa(min) + "-" + strconv.Itoa(max)
}

// ValidateSize checks size against the category bounds
func ValidateSize(c Category, size int) error {
	min, max, ok := SizeRange(c)
	if !ok {
		return &ValidationError{Kind: UnknownCategory, Input: string(c)}
	}
	if size < min || size > max {
		return &ValidationError{
			Kind:     SizeOutOfRange,
			Category: c,
			Input:    strconv.Itoa(size),
			Min:      min,
			Max:      max,
		}
	}
	return nil
}

// ParseSize parses free text as an AU size for the category
func ParseSize(c Category, text string) (int, error) {
	if !c.Valid() {
		return 0, &ValidationError{Kind: UnknownCategory, Input: string(c)}
	}

	size, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		min, max, _ := SizeRange(c)
		return 0, &ValidationError{
			Kind:     SizeNotNumeric,
			Category: c,
			Input:    text,
			Min:      min,
			Max:      max,
		}
	}

	if err := ValidateSize(c, size); err != nil {
		return 0, err
	}
	return size, nil
}
