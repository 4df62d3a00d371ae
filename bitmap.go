package raster2d

// Bitmap is a shared-ownership wrapper over a Pixmap plus a read-only
// flag, per spec.md §3. Multiple Bitmaps (e.g. a saveLayer's parent and
// the Image later read back from it) may reference the same Pixmap;
// Go's garbage collector retires the Pixmap once the last Bitmap
// referencing it is gone, matching AGG/skity's shared_ptr<Pixmap>
// without needing an explicit refcount.
type Bitmap struct {
	pixmap   *Pixmap
	readOnly bool
}

// NewBitmap wraps pm as a writable Bitmap.
func NewBitmap(pm *Pixmap) *Bitmap {
	return &Bitmap{pixmap: pm}
}

// NewReadOnlyBitmap wraps pm as a read-only Bitmap; SetPixel becomes a
// no-op, matching spec.md §3.
func NewReadOnlyBitmap(pm *Pixmap) *Bitmap {
	return &Bitmap{pixmap: pm, readOnly: true}
}

func (b *Bitmap) Width() int    { return b.pixmap.Width() }
func (b *Bitmap) Height() int   { return b.pixmap.Height() }
func (b *Bitmap) Empty() bool   { return b == nil || b.pixmap == nil || b.pixmap.width <= 0 || b.pixmap.height <= 0 }
func (b *Bitmap) Pixmap() *Pixmap { return b.pixmap }
func (b *Bitmap) ReadOnly() bool { return b.readOnly }

// SetPixel writes a single premultiplied pixel, ignored when the Bitmap
// is read-only.
func (b *Bitmap) SetPixel(x, y int, c PMColor) {
	if b.readOnly {
		return
	}
	b.pixmap.SetPMColor(x, y, c)
}

func (b *Bitmap) GetPixel(x, y int) PMColor {
	return b.pixmap.GetPMColor(x, y)
}

// AsImage returns a read-only Image view over this Bitmap's Pixmap,
// suitable for Shader.makeImageShader / drawImage sources.
func (b *Bitmap) AsImage() *Image {
	return &Image{pixmap: b.pixmap}
}
