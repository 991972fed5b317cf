package clockface

import (
	"image"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// It backs offscreen color targets in the shader-equivalent pipelines.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds reads return Transparent, which gives samplers
// clamp-to-transparent-border semantics without a bounds contract.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	const scale = 1.0 / 255.0
	return RGBA{
		R: float32(p.data[i+0]) * scale,
		G: float32(p.data[i+1]) * scale,
		B: float32(p.data[i+2]) * scale,
		A: float32(p.data[i+3]) * scale,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Sample returns the bilinearly filtered color at the given normalized
// UV coordinates with clamp-to-edge addressing, matching the filtering
// sampler the GPU pipelines bind.
func (p *Pixmap) Sample(u, v float32) RGBA {
	fx := u*float32(p.width) - 0.5
	fy := v*float32(p.height) - 0.5

	x0 := int(floorf(fx))
	y0 := int(floorf(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := p.getClamped(x0, y0)
	c10 := p.getClamped(x0+1, y0)
	c01 := p.getClamped(x0, y0+1)
	c11 := p.getClamped(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

// getClamped reads a pixel with clamp-to-edge addressing.
func (p *Pixmap) getClamped(x, y int) RGBA {
	if x < 0 {
		x = 0
	} else if x >= p.width {
		x = p.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= p.height {
		y = p.height - 1
	}
	return p.GetPixel(x, y)
}

func floorf(x float32) float32 {
	i := float32(int(x))
	if x < i {
		return i - 1
	}
	return i
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			pm.data[i+0] = uint8(r >> 8)
			pm.data[i+1] = uint8(g >> 8)
			pm.data[i+2] = uint8(b >> 8)
			pm.data[i+3] = uint8(a >> 8)
		}
	}
	return pm
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.ToImage())
}
