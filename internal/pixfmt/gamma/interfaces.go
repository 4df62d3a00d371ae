package gamma

import "github.com/inkpath/raster2d/internal/basics"

// Keep a tiny interface (exactly what you need)
type LUT8 interface {
	Dir(basics.Int8u) basics.Int8u
	Inv(basics.Int8u) basics.Int8u
}
