package graphics

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell metrics of the fixed-width face used by RasterizeText.
const (
	CellWidth  = 7
	CellHeight = 13
)

// TextStyle selects the colors used by RasterizeText.
type TextStyle struct {
	Color      Color
	Background Color
}

// RasterizeText draws lines of monospaced text, one per row, centered
// horizontally in a w by h image. Lines that do not fit are clipped.
func RasterizeText(lines []string, w, h int, style TextStyle) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background.NRGBA()), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: face,
	}
	top := (h - len(lines)*CellHeight) / 2
	for i, line := range lines {
		width := d.MeasureString(line).Ceil()
		x := (w - width) / 2
		if x < 0 {
			x = 0
		}
		baseline := top + i*CellHeight + face.Ascent
		d.Dot = fixed.P(x, baseline)
		d.DrawString(line)
	}
	return img
}
