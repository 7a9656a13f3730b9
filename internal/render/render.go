package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/lehigh-university-libraries/wardrobe/internal/outfit"
	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 500

	borderWidth = 2
	labelOffset = 20 // from image bottom to label centre
	itemSpacing = 40 // from image bottom to the next image
)

var (
	borderColor = color.NRGBA{R: 0x2F, G: 0x48, B: 0x58, A: 0xFF}
	labelColor  = borderColor
)

// box is the largest area an item image may occupy
type box struct {
	width  int
	height int
}

var boxes = map[wardrobe.Category]box{
	wardrobe.Tops:    {300, 120},
	wardrobe.Bottoms: {300, 120},
	wardrobe.Shoes:   {210, 85},
}

// Renderer stacks an outfit's images on a single canvas
type Renderer struct {
	Width  int
	Height int
}

// New returns a renderer with the default canvas size
func New() *Renderer {
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight}
}

// Render opens each selected image, scales it into its category box keeping
// the aspect ratio and lays the images out top to bottom with a size label
// under each. Images are released when the call returns.
func (r *Renderer) Render(o outfit.Outfit) (*image.NRGBA, error) {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	canvas := imaging.New(width, height, color.White)
	centerX := width / 2
	y := 0

	for _, sel := range o.Items() {
		src, err := imaging.Open(sel.Item.Path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s image %s: %w", sel.Category, sel.Item.Path, err)
		}

		w, h := fitSize(src.Bounds().Dx(), src.Bounds().Dy(), boxes[sel.Category])
		if w == 0 || h == 0 {
			return nil, fmt.Errorf("%s image %s has no pixels", sel.Category, sel.Item.Path)
		}
		scaled := imaging.Resize(src, w, h, imaging.Lanczos)

		canvas = imaging.Overlay(canvas, scaled, image.Pt(centerX-w/2, y), 1.0)
		drawLabel(canvas, "AU Size: "+sel.Item.SizeLabel(), centerX, y+h+labelOffset)

		slog.Debug("Rendered outfit item", "category", sel.Category, "path", sel.Item.Path, "width", w, "height", h)
		y += h + itemSpacing
	}

	drawBorder(canvas)
	return canvas, nil
}

// Encode writes the rendered outfit as PNG
func (r *Renderer) Encode(w io.Writer, o outfit.Outfit) error {
	img, err := r.Render(o)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode outfit: %w", err)
	}
	return nil
}

// RenderToFile saves the outfit image; the format follows the extension
func (r *Renderer) RenderToFile(o outfit.Outfit, path string) error {
	img, err := r.Render(o)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save outfit image: %w", err)
	}
	return nil
}

// fitSize scales w x h by the largest ratio that fits the box; small images
// are scaled up as well
func fitSize(w, h int, b box) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	ratio := min(float64(b.width)/float64(w), float64(b.height)/float64(h))
	return int(float64(w) * ratio), int(float64(h) * ratio)
}

func drawLabel(dst draw.Image, text string, centerX, centerY int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}
	metrics := face.Metrics()
	baseline := centerY + (metrics.Ascent.Round()-metrics.Descent.Round())/2
	d.Dot = fixed.P(centerX-d.MeasureString(text).Round()/2, baseline)
	d.DrawString(text)
}

func drawBorder(dst draw.Image) {
	b := dst.Bounds()
	src := image.NewUniform(borderColor)
	edges := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+borderWidth),
		image.Rect(b.Min.X, b.Max.Y-borderWidth, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+borderWidth, b.Max.Y),
		image.Rect(b.Max.X-borderWidth, b.Min.Y, b.Max.X, b.Max.Y),
	}
	for _, edge := range edges {
		draw.Draw(dst, edge, src, image.Point{}, draw.Src)
	}
}
