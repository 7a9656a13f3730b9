package render

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/lehigh-university-libraries/wardrobe/internal/outfit"
	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

var (
	red   = color.NRGBA{R: 0xFF, A: 0xFF}
	blue  = color.NRGBA{B: 0xFF, A: 0xFF}
	green = color.NRGBA{G: 0xFF, A: 0xFF}
)

func writeImage(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(imaging.New(w, h, c), path); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	return path
}

func testOutfit(t *testing.T) outfit.Outfit {
	t.Helper()
	dir := t.TempDir()
	return outfit.Outfit{
		wardrobe.Tops:    wardrobe.NewItem(writeImage(t, dir, "top.png", 600, 200, red), wardrobe.SizeOf(10)),
		wardrobe.Bottoms: wardrobe.NewItem(writeImage(t, dir, "bottom.png", 100, 100, blue), wardrobe.SizeOf(12)),
		wardrobe.Shoes:   wardrobe.NewItem(writeImage(t, dir, "shoe.png", 420, 170, green), nil),
	}
}

func sameColor(got color.Color, want color.NRGBA) bool {
	c := color.NRGBAModel.Convert(got).(color.NRGBA)
	return c == want
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		box   box
		wantW int
		wantH int
	}{
		{name: "wide image limited by width", w: 600, h: 100, box: box{300, 120}, wantW: 300, wantH: 50},
		{name: "tall image limited by height", w: 100, h: 600, box: box{300, 120}, wantW: 20, wantH: 120},
		{name: "small image scaled up", w: 100, h: 100, box: box{300, 120}, wantW: 120, wantH: 120},
		{name: "shoe box", w: 420, h: 170, box: box{210, 85}, wantW: 210, wantH: 85},
		{name: "empty image", w: 0, h: 10, box: box{210, 85}, wantW: 0, wantH: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitSize(tt.w, tt.h, tt.box)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestRenderLayout(t *testing.T) {
	img, err := New().Render(testOutfit(t))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if img.Bounds().Dx() != DefaultWidth || img.Bounds().Dy() != DefaultHeight {
		t.Fatalf("Expected %dx%d canvas, got %v", DefaultWidth, DefaultHeight, img.Bounds())
	}

	// top: 300x100 at y=0, bottom: 120x120 at y=140, shoes: 210x85 at y=300
	checks := []struct {
		name string
		pt   image.Point
		want color.NRGBA
	}{
		{name: "top centre", pt: image.Pt(200, 50), want: red},
		{name: "bottom centre", pt: image.Pt(200, 200), want: blue},
		{name: "shoe centre", pt: image.Pt(200, 342), want: green},
		{name: "left of top", pt: image.Pt(40, 50), want: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{name: "border", pt: image.Pt(0, 250), want: borderColor},
	}
	for _, c := range checks {
		if got := img.At(c.pt.X, c.pt.Y); !sameColor(got, c.want) {
			t.Errorf("%s: expected %v at %v, got %v", c.name, c.want, c.pt, got)
		}
	}
}

func TestRenderDrawsLabels(t *testing.T) {
	img, err := New().Render(testOutfit(t))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// label bands sit 20px under each image
	for _, centreY := range []int{120, 280, 405} {
		found := false
		for y := centreY - 8; y <= centreY+8 && !found; y++ {
			for x := 150; x < 250; x++ {
				if sameColor(img.At(x, y), labelColor) {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("Expected label pixels around y=%d", centreY)
		}
	}
}

func TestRenderMissingImage(t *testing.T) {
	o := testOutfit(t)
	o[wardrobe.Bottoms] = wardrobe.NewItem(filepath.Join(t.TempDir(), "gone.png"), nil)

	if _, err := New().Render(o); err == nil {
		t.Fatal("Expected error for missing image")
	}
}

func TestEncodeAndRenderToFile(t *testing.T) {
	o := testOutfit(t)
	r := New()

	var buf bytes.Buffer
	if err := r.Encode(&buf, o); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := imaging.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != DefaultWidth {
		t.Errorf("Expected width %d, got %d", DefaultWidth, decoded.Bounds().Dx())
	}

	out := filepath.Join(t.TempDir(), "outfit.png")
	if err := r.RenderToFile(o, out); err != nil {
		t.Fatalf("RenderToFile failed: %v", err)
	}
	saved, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("Failed to open saved outfit: %v", err)
	}
	if saved.Bounds().Dy() != DefaultHeight {
		t.Errorf("Expected height %d, got %d", DefaultHeight, saved.Bounds().Dy())
	}
}
