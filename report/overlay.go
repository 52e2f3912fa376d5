package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/sections/model"
)

// OverlayOptions controls overlay rendering
type OverlayOptions struct {
	// Scale is pixels per PDF point (default: 1)
	Scale float64

	// Margin is the blank border around the page content, in points
	// (default: 10; negative for none)
	Margin float64
}

// MaxOverlaySide is the largest overlay width or height in pixels
const MaxOverlaySide = 16384

var (
	columnColor  = color.RGBA{R: 0x1f, G: 0x6f, B: 0xd0, A: 0xff}
	sectionColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	labelColor   = color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
)

// Overlay draws the columns and sections of one page: columns in blue,
// sections in green labelled with their index in the sections slice.
// The image covers the union of the page's column and section boxes.
func Overlay(page int, columns []model.Column, sections []*model.Section, opts OverlayOptions) (*image.RGBA, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	} else if opts.Margin == 0 {
		opts.Margin = 10
	}

	var extent model.BBox
	found := false
	include := func(b model.BBox) {
		if !found {
			extent = b
			found = true
			return
		}
		extent = extent.Union(b)
	}
	for _, c := range columns {
		if c.Page == page {
			include(c.BBox)
		}
	}
	for _, s := range sections {
		if s.Page == page {
			include(s.BBox)
		}
	}
	if !found {
		return nil, fmt.Errorf("page %d has no columns or sections", page)
	}

	w := math.Ceil((extent.Width + 2*opts.Margin) * opts.Scale)
	h := math.Ceil((extent.Height + 2*opts.Margin) * opts.Scale)
	if !(w <= MaxOverlaySide && h <= MaxOverlaySide) {
		return nil, fmt.Errorf("page %d overlay would be %.0fx%.0f pixels, limit is %d per side", page, w, h, MaxOverlaySide)
	}
	width, height := int(w), int(h)
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	// Page space has Y growing upwards, the image grows downwards
	toImage := func(b model.BBox) image.Rectangle {
		x0 := (b.Left() - extent.Left() + opts.Margin) * opts.Scale
		x1 := (b.Right() - extent.Left() + opts.Margin) * opts.Scale
		y0 := (extent.Top() - b.Top() + opts.Margin) * opts.Scale
		y1 := (extent.Top() - b.Bottom() + opts.Margin) * opts.Scale
		return image.Rect(int(x0), int(y0), int(x1), int(y1))
	}

	for _, c := range columns {
		if c.Page == page {
			strokeRect(img, toImage(c.BBox), columnColor)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for i, s := range sections {
		if s.Page != page {
			continue
		}
		r := toImage(s.BBox)
		strokeRect(img, r, sectionColor)
		d.Dot = fixed.P(r.Min.X+2, r.Min.Y+basicfont.Face7x13.Ascent+1)
		d.DrawString(strconv.Itoa(i))
	}

	return img, nil
}

// WriteOverlayPNG renders an overlay and encodes it as PNG
func WriteOverlayPNG(w io.Writer, page int, columns []model.Column, sections []*model.Section, opts OverlayOptions) error {
	img, err := Overlay(page, columns, sections, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding overlay: %w", err)
	}
	return nil
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Canon()
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X, y, c)
	}
}
