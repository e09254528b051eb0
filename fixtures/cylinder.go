package fixtures

import (
	"math"

	"github.com/iceisfun/gomesh3d/types3"
)

// Cylinder builds an n-sided prism approximating a cylinder of the
// given radius and half-height, centered on the z axis at the origin.
// Circle coordinates are irrational in general, so they are quantized
// onto the integer lattice at the given scale (coordinates are
// multiplied by scale and rounded) the same way meshio expects any
// input mesh to already be welded onto a consistent lattice.
func Cylinder(n int, radius, halfHeight float64, scale int64) types3.Mesh {
	if n < 3 {
		n = 3
	}
	f := float64(scale)

	lat := func(x, y, z float64) types3.Point {
		return types3.Point{
			X: int64(math.Round(x * f)),
			Y: int64(math.Round(y * f)),
			Z: int64(math.Round(z * f)),
		}
	}

	bottom := make([]types3.Point, n)
	top := make([]types3.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		bottom[i] = lat(x, y, -halfHeight)
		top[i] = lat(x, y, halfHeight)
	}
	bottomCenter := lat(0, 0, -halfHeight)
	topCenter := lat(0, 0, halfHeight)
	center := lat(0, 0, 0)

	var tris []types3.Triangle
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		tris = append(tris, orientOutward(bottomCenter, bottom[j], bottom[i], center))
		tris = append(tris, orientOutward(topCenter, top[i], top[j], center))
		tris = append(tris, orientOutward(bottom[i], bottom[j], top[j], center))
		tris = append(tris, orientOutward(bottom[i], top[j], top[i], center))
	}

	return types3.Mesh{Triangles: tris}
}
