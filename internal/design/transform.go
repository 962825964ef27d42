package design

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Identity returns the identity placement transform.
func Identity() sdf.M44 {
	return sdf.Identity3d()
}

// Translation returns a transform that moves by (x, y, z) in design units.
func Translation(x, y, z float64) sdf.M44 {
	return sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
}

// Placement builds a placement transform from a translation and Euler
// rotation angles in degrees, applied in X, Y, Z order.
func Placement(x, y, z, rx, ry, rz float64) sdf.M44 {
	xRad := rx * math.Pi / 180.0
	yRad := ry * math.Pi / 180.0
	zRad := rz * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}).Mul(m)
}

// mulDirection applies only the rotational part of a transform to a
// direction vector. MulPosition would also pick up the translation.
func mulDirection(m sdf.M44, d v3.Vec) v3.Vec {
	return m.MulPosition(d).Sub(m.MulPosition(v3.Vec{}))
}
