package raster2d

// Span is a horizontal run of constant-coverage pixels: the unit of
// communication between the rasterizer, the clip model, and the brush
// (spec.md §3).
type Span struct {
	X, Y, Len int
	Cover     uint8
}
