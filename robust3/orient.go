// Package robust3 provides adaptive-precision 3D geometric
// predicates: which side of a plane a point lies on, and the signed
// volume of a tetrahedron. The fast path is a float64 determinant
// with an adaptive error filter; ties fall back to math/big
// big.Float arithmetic at 256-bit precision.
package robust3

import (
	"math"
	"math/big"

	"github.com/golang/geo/r3"
)

const orientFilter = 1e-13

// Orient3D returns the orientation of point d relative to the plane
// through (a,b,c): +1 if d is on the side the right-hand normal of
// (b-a)x(c-a) points toward, -1 on the opposite side, 0 if d is
// (numerically) coplanar with a, b, c.
func Orient3D(a, b, c, d r3.Vector) int {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)

	det := ab.Cross(ac).Dot(ad)

	maxMag := maxAbs(a, b, c, d)
	eps := maxMag * maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient3DExact(a, b, c, d)
	}
}

func orient3DExact(a, b, c, d r3.Vector) int {
	ab := subBig(b, a)
	ac := subBig(c, a)
	ad := subBig(d, a)

	cross := crossBig(ab, ac)
	det := dotBig(cross, ad)
	return det.Sign()
}

// SignedVolume6 returns six times the signed volume of the
// tetrahedron (a,b,c,d); its sign matches Orient3D's.
func SignedVolume6(a, b, c, d r3.Vector) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	return ab.Cross(ac).Dot(ad)
}

type bigVec struct{ X, Y, Z *big.Float }

func subBig(p, q r3.Vector) bigVec {
	return bigVec{
		X: new(big.Float).SetPrec(256).Sub(bigFloat(p.X), bigFloat(q.X)),
		Y: new(big.Float).SetPrec(256).Sub(bigFloat(p.Y), bigFloat(q.Y)),
		Z: new(big.Float).SetPrec(256).Sub(bigFloat(p.Z), bigFloat(q.Z)),
	}
}

func crossBig(a, b bigVec) bigVec {
	t1 := bigFloat(0)
	t2 := bigFloat(0)
	x := bigFloat(0)
	x.Sub(t1.Mul(a.Y, b.Z), t2.Mul(a.Z, b.Y))

	t3 := bigFloat(0)
	t4 := bigFloat(0)
	y := bigFloat(0)
	y.Sub(t3.Mul(a.Z, b.X), t4.Mul(a.X, b.Z))

	t5 := bigFloat(0)
	t6 := bigFloat(0)
	z := bigFloat(0)
	z.Sub(t5.Mul(a.X, b.Y), t6.Mul(a.Y, b.X))

	return bigVec{X: x, Y: y, Z: z}
}

func dotBig(a, b bigVec) *big.Float {
	out := bigFloat(0)
	tmp := bigFloat(0)
	out.Mul(a.X, b.X)
	out.Add(out, tmp.Mul(a.Y, b.Y))
	tmp2 := bigFloat(0)
	out.Add(out, tmp2.Mul(a.Z, b.Z))
	return out
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}

func maxAbs(pts ...r3.Vector) float64 {
	max := 0.0
	for _, p := range pts {
		if m := math.Abs(p.X); m > max {
			max = m
		}
		if m := math.Abs(p.Y); m > max {
			max = m
		}
		if m := math.Abs(p.Z); m > max {
			max = m
		}
	}
	return max
}
