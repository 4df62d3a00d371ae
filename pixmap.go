package raster2d

import "fmt"

// ColorType enumerates the pixel layouts a Pixmap can declare, per
// spec.md §3.
type ColorType int

const (
	ColorTypeRGBA8 ColorType = iota
	ColorTypeBGRA8
	ColorTypeRGB565
	ColorTypeA8
)

// AlphaType describes how a Pixmap's alpha channel relates to its color
// channels.
type AlphaType int

const (
	AlphaTypeOpaque AlphaType = iota
	AlphaTypePremul
	AlphaTypeUnpremul
)

// bytesPerPixel returns the storage width of one pixel for a ColorType.
func bytesPerPixel(ct ColorType) int {
	switch ct {
	case ColorTypeRGBA8, ColorTypeBGRA8:
		return 4
	case ColorTypeRGB565:
		return 2
	case ColorTypeA8:
		return 1
	default:
		return 4
	}
}

// Pixmap is a contiguous pixel buffer: width, height, row-stride in
// bytes, a ColorType and an AlphaType. Invariant: stride >= width *
// bytesPerPixel(colorType). Pixmap itself does not track ownership —
// that's Bitmap's job (spec.md §3's "Pixmap... Lifetime owned by the
// Bitmap or an externally supplied reference").
type Pixmap struct {
	width, height int
	stride        int
	colorType     ColorType
	alphaType     AlphaType
	pix           []byte
}

// NewPixmap allocates a zero-filled Pixmap. Returns an error if width,
// height, or the derived stride are non-positive — this is a
// construction-time boundary check, not a per-draw one (spec.md §7
// reserves silent no-ops for malformed *geometry*, not malformed
// buffers).
func NewPixmap(width, height int, colorType ColorType, alphaType AlphaType) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster2d: NewPixmap: non-positive dimensions %dx%d", width, height)
	}
	bpp := bytesPerPixel(colorType)
	stride := width * bpp
	return &Pixmap{
		width:     width,
		height:    height,
		stride:    stride,
		colorType: colorType,
		alphaType: alphaType,
		pix:       make([]byte, stride*height),
	}, nil
}

// NewPixmapWithStride wraps an externally supplied buffer, e.g. a
// caller-owned row-padded allocation. Returns an error if the buffer is
// too small for the declared stride/height.
func NewPixmapWithStride(buf []byte, width, height, stride int, colorType ColorType, alphaType AlphaType) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster2d: NewPixmapWithStride: non-positive dimensions %dx%d", width, height)
	}
	if stride < width*bytesPerPixel(colorType) {
		return nil, fmt.Errorf("raster2d: NewPixmapWithStride: stride %d too small for width %d", stride, width)
	}
	if len(buf) < stride*height {
		return nil, fmt.Errorf("raster2d: NewPixmapWithStride: buffer length %d too small for %d rows of stride %d", len(buf), height, stride)
	}
	return &Pixmap{width: width, height: height, stride: stride, colorType: colorType, alphaType: alphaType, pix: buf}, nil
}

func (p *Pixmap) Width() int          { return p.width }
func (p *Pixmap) Height() int         { return p.height }
func (p *Pixmap) RowBytes() int       { return p.stride }
func (p *Pixmap) ColorType() ColorType { return p.colorType }
func (p *Pixmap) AlphaType() AlphaType { return p.alphaType }
func (p *Pixmap) Bytes() []byte       { return p.pix }

func (p *Pixmap) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

func (p *Pixmap) offset(x, y int) int {
	return y*p.stride + x*bytesPerPixel(p.colorType)
}

// GetPMColor returns the premultiplied color at (x, y), converting from
// the Pixmap's declared AlphaType. Out-of-bounds reads return
// transparent rather than panicking, matching the rasterizer's
// never-fail contract (spec.md §4.1 "rasterization never fails").
func (p *Pixmap) GetPMColor(x, y int) PMColor {
	if !p.contains(x, y) {
		return Transparent
	}
	off := p.offset(x, y)
	switch p.colorType {
	case ColorTypeRGBA8:
		return p.rawToPM(p.pix[off], p.pix[off+1], p.pix[off+2], p.pix[off+3])
	case ColorTypeBGRA8:
		return p.rawToPM(p.pix[off+2], p.pix[off+1], p.pix[off], p.pix[off+3])
	case ColorTypeA8:
		a := p.pix[off]
		return PMColor{A: a}
	case ColorTypeRGB565:
		v := uint16(p.pix[off]) | uint16(p.pix[off+1])<<8
		r := uint8((v >> 11) & 0x1F)
		g := uint8((v >> 5) & 0x3F)
		b := uint8(v & 0x1F)
		return PMColor{R: expand5(r), G: expand6(g), B: expand5(b), A: 255}
	default:
		return Transparent
	}
}

func (p *Pixmap) rawToPM(r, g, b, a uint8) PMColor {
	switch p.alphaType {
	case AlphaTypeOpaque:
		return PMColor{R: r, G: g, B: b, A: 255}
	case AlphaTypePremul:
		return PMColor{R: r, G: g, B: b, A: a}
	case AlphaTypeUnpremul:
		return Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
			A: float64(a) / 255.0,
		}.Premultiply()
	default:
		return PMColor{R: r, G: g, B: b, A: a}
	}
}

// SetPMColor writes a premultiplied color at (x, y), converting to the
// Pixmap's declared AlphaType. Out-of-bounds writes are silently
// dropped.
func (p *Pixmap) SetPMColor(x, y int, c PMColor) {
	if !p.contains(x, y) {
		return
	}
	off := p.offset(x, y)
	var r, g, b, a uint8
	switch p.alphaType {
	case AlphaTypeOpaque:
		r, g, b, a = c.R, c.G, c.B, 255
	case AlphaTypePremul:
		r, g, b, a = c.R, c.G, c.B, c.A
	case AlphaTypeUnpremul:
		straight := c.Unpremultiply()
		r = to8(straight.R)
		g = to8(straight.G)
		b = to8(straight.B)
		a = to8(straight.A)
	}
	switch p.colorType {
	case ColorTypeRGBA8:
		p.pix[off], p.pix[off+1], p.pix[off+2], p.pix[off+3] = r, g, b, a
	case ColorTypeBGRA8:
		p.pix[off], p.pix[off+1], p.pix[off+2], p.pix[off+3] = b, g, r, a
	case ColorTypeA8:
		p.pix[off] = a
	case ColorTypeRGB565:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		p.pix[off], p.pix[off+1] = uint8(v), uint8(v>>8)
	}
}

func expand5(v uint8) uint8 { return (v << 3) | (v >> 2) }
func expand6(v uint8) uint8 { return (v << 2) | (v >> 4) }

// Erase fills the entire pixmap with a premultiplied color, bypassing
// any blend mode — used by Canvas.Clear / layer initialization.
func (p *Pixmap) Erase(c PMColor) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.SetPMColor(x, y, c)
		}
	}
}
