package design

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// KeyPoint names a reference location on a face or edge used to anchor
// joint geometry. KeyPointNone marks geometry variants that carry no key
// point at all (spherical faces).
type KeyPoint int

const (
	KeyPointNone KeyPoint = iota
	KeyPointCenter
	KeyPointStart
	KeyPointEnd
	KeyPointMiddle
)

// String returns the key point name as accepted by commands.
func (k KeyPoint) String() string {
	switch k {
	case KeyPointCenter:
		return "center"
	case KeyPointStart:
		return "start"
	case KeyPointEnd:
		return "end"
	case KeyPointMiddle:
		return "middle"
	default:
		return "none"
	}
}

// GeometryClass tags which construction variant produced a JointGeometry.
type GeometryClass int

const (
	GeometryPlanar GeometryClass = iota
	GeometryCylindrical
	GeometrySpherical
	GeometryNonPlanar
	GeometryCurve
)

// String returns the class name used in joint reports.
func (c GeometryClass) String() string {
	switch c {
	case GeometryPlanar:
		return "planar"
	case GeometryCylindrical:
		return "cylindrical"
	case GeometrySpherical:
		return "spherical"
	case GeometryNonPlanar:
		return "non_planar"
	default:
		return "curve"
	}
}

// JointGeometry is a concrete geometric reference bound to an
// occurrence's assembly context, ready to construct a joint. Origin and
// Direction are in root coordinates.
type JointGeometry struct {
	Class     GeometryClass
	Face      *FaceRef
	Edge      *EdgeRef
	KeyPoint  KeyPoint
	Origin    v3.Vec
	Direction v3.Vec
}

// OwningOccurrence returns the occurrence the geometry is bound to, or
// nil for root-context geometry.
func (g *JointGeometry) OwningOccurrence() *Occurrence {
	if g.Face != nil {
		return g.Face.Occurrence
	}
	if g.Edge != nil {
		return g.Edge.Occurrence
	}
	return nil
}

// JointGeometryByPlanarFace constructs joint geometry on a planar face
// with an optional reference edge for orientation and a key point.
func JointGeometryByPlanarFace(f FaceRef, refEdge *EdgeRef, kp KeyPoint) (*JointGeometry, error) {
	if f.Face == nil {
		return nil, fmt.Errorf("planar joint geometry: no face")
	}
	if f.Face.Surface != SurfacePlane {
		return nil, fmt.Errorf("planar joint geometry: face surface is %s, not Plane", f.Face.Surface)
	}
	_ = refEdge // reserved for edge-aligned orientation
	return &JointGeometry{
		Class:     GeometryPlanar,
		Face:      &f,
		KeyPoint:  kp,
		Origin:    f.worldPoint(f.Face.Origin),
		Direction: f.worldDirection(f.Face.Normal),
	}, nil
}

// JointGeometryByCylindricalFace constructs joint geometry on a
// cylindrical or conical face with a key point on its axis.
func JointGeometryByCylindricalFace(f FaceRef, kp KeyPoint) (*JointGeometry, error) {
	if f.Face == nil {
		return nil, fmt.Errorf("cylindrical joint geometry: no face")
	}
	if f.Face.Surface != SurfaceCylinder && f.Face.Surface != SurfaceCone {
		return nil, fmt.Errorf("cylindrical joint geometry: face surface is %s, not Cylinder or Cone", f.Face.Surface)
	}
	return &JointGeometry{
		Class:     GeometryCylindrical,
		Face:      &f,
		KeyPoint:  kp,
		Origin:    f.worldPoint(f.Face.Origin),
		Direction: f.worldDirection(f.Face.Normal),
	}, nil
}

// JointGeometryBySphereFace constructs joint geometry on a spherical
// face. The variant takes no key point: the anchor is always the sphere
// center, and the returned geometry reports KeyPointNone even if the
// caller requested one upstream.
func JointGeometryBySphereFace(f FaceRef) (*JointGeometry, error) {
	if f.Face == nil {
		return nil, fmt.Errorf("sphere joint geometry: no face")
	}
	if f.Face.Surface != SurfaceSphere {
		return nil, fmt.Errorf("sphere joint geometry: face surface is %s, not Sphere", f.Face.Surface)
	}
	return &JointGeometry{
		Class:    GeometrySpherical,
		Face:     &f,
		KeyPoint: KeyPointNone,
		Origin:   f.worldPoint(f.Face.Origin),
	}, nil
}

// JointGeometryByNonPlanarFace is the generic fallback for faces whose
// surface classification has no dedicated variant.
func JointGeometryByNonPlanarFace(f FaceRef, kp KeyPoint) (*JointGeometry, error) {
	if f.Face == nil {
		return nil, fmt.Errorf("non-planar joint geometry: no face")
	}
	if f.Face.Surface == SurfacePlane {
		return nil, fmt.Errorf("non-planar joint geometry: face is planar, use the planar variant")
	}
	return &JointGeometry{
		Class:     GeometryNonPlanar,
		Face:      &f,
		KeyPoint:  kp,
		Origin:    f.worldPoint(f.Face.Origin),
		Direction: f.worldDirection(f.Face.Normal),
	}, nil
}

// JointGeometryByCurve constructs joint geometry anchored on an edge at
// the given key point.
func JointGeometryByCurve(e EdgeRef, kp KeyPoint) (*JointGeometry, error) {
	if e.Edge == nil {
		return nil, fmt.Errorf("curve joint geometry: no edge")
	}
	local, err := edgeKeyPoint(e.Edge, kp)
	if err != nil {
		return nil, err
	}
	return &JointGeometry{
		Class:    GeometryCurve,
		Edge:     &e,
		KeyPoint: kp,
		Origin:   e.worldPoint(local),
	}, nil
}

// edgeKeyPoint locates a key point on an edge in local coordinates.
func edgeKeyPoint(e *Edge, kp KeyPoint) (v3.Vec, error) {
	mid := e.Start.Add(e.End).MulScalar(0.5)
	switch e.Curve {
	case CurveCircle, CurveArc:
		switch kp {
		case KeyPointCenter, KeyPointMiddle, KeyPointNone:
			return e.Center, nil
		case KeyPointStart:
			return e.Start, nil
		case KeyPointEnd:
			return e.End, nil
		}
	default:
		switch kp {
		case KeyPointStart:
			return e.Start, nil
		case KeyPointEnd:
			return e.End, nil
		case KeyPointCenter, KeyPointMiddle, KeyPointNone:
			return mid, nil
		}
	}
	return v3.Vec{}, fmt.Errorf("curve joint geometry: key point %s not defined for %s edges", kp, e.Curve)
}
