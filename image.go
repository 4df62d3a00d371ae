package raster2d

import "github.com/inkpath/raster2d/internal/transform"

// Image is an immutable, read-only view over a Pixmap, the draw-time
// counterpart of Bitmap: DrawImage/DrawImageRect and the image Shader
// variant both sample through this type rather than a mutable Bitmap.
type Image struct {
	pixmap *Pixmap
}

// NewImage wraps pm as a read-only Image.
func NewImage(pm *Pixmap) *Image { return &Image{pixmap: pm} }

func (img *Image) Width() int  { return img.pixmap.Width() }
func (img *Image) Height() int { return img.pixmap.Height() }

func (img *Image) Pixmap() *Pixmap { return img.pixmap }

// MakeShader builds a Shader sampling img with the given per-axis tile
// modes, filter mode and local matrix, per spec.md §4.4's Image/Pixmap
// brush variant.
func (img *Image) MakeShader(tileX, tileY TileMode, filter FilterMode, localMatrix *transform.TransAffine) Shader {
	return NewImageShader(img, tileX, tileY, filter, localMatrix)
}
