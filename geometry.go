package raster2d

// Point is a 2-D coordinate in whatever space the caller is working in
// (local, local-post-localMatrix, or device, depending on context).
type Point struct {
	X, Y float64
}
