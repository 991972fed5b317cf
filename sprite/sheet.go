package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/clockface"
)

// Sheet cell geometry. Each digit occupies one tenth of the sheet's
// width, so a card's UV cell is simply digit/10 .. (digit+1)/10.
const (
	sheetCellWidth  = 32
	sheetCellHeight = 48
	// upscale multiplies the 7x13 base glyph so the cards do not look
	// postage-stamp small at clock scale.
	upscale = 3
)

// DigitSheet builds the 10-cell horizontal digit sprite sheet the
// wheel cards sample. Glyphs come from the fixed basicfont face,
// scaled up with nearest-neighbor; the blocky look suits a mechanical
// counter.
func DigitSheet() *clockface.Pixmap {
	face := basicfont.Face7x13

	// Render each glyph small, then upscale into its cell.
	small := image.NewRGBA(image.Rect(0, 0, face.Width, face.Height))
	sheet := clockface.NewPixmap(sheetCellWidth*10, sheetCellHeight)

	for digit := 0; digit < 10; digit++ {
		draw.Draw(small, small.Bounds(), image.Transparent, image.Point{}, draw.Src)

		d := font.Drawer{
			Dst:  small,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(0, face.Ascent),
		}
		d.DrawString(string(rune('0' + digit)))

		blitCell(sheet, small, digit)
	}
	return sheet
}

// blitCell upscales the small glyph into the digit's sheet cell,
// centering it.
func blitCell(sheet *clockface.Pixmap, small *image.RGBA, digit int) {
	gw := small.Bounds().Dx() * upscale
	gh := small.Bounds().Dy() * upscale
	ox := digit*sheetCellWidth + (sheetCellWidth-gw)/2
	oy := (sheetCellHeight - gh) / 2

	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			c := small.RGBAAt(x/upscale, y/upscale)
			if c.A == 0 {
				continue
			}
			sheet.SetPixel(ox+x, oy+y, rgbaFrom8(c))
		}
	}
}

func rgbaFrom8(c color.RGBA) clockface.RGBA {
	const s = 1.0 / 255.0
	return clockface.RGBA{
		R: float32(c.R) * s,
		G: float32(c.G) * s,
		B: float32(c.B) * s,
		A: float32(c.A) * s,
	}
}
