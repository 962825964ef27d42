package design

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SurfaceKind classifies a face's underlying surface.
type SurfaceKind int

const (
	SurfaceUnknown SurfaceKind = iota
	SurfacePlane
	SurfaceCylinder
	SurfaceCone
	SurfaceSphere
	SurfaceTorus
)

// String returns the surface kind name used in body listings.
func (k SurfaceKind) String() string {
	switch k {
	case SurfacePlane:
		return "Plane"
	case SurfaceCylinder:
		return "Cylinder"
	case SurfaceCone:
		return "Cone"
	case SurfaceSphere:
		return "Sphere"
	case SurfaceTorus:
		return "Torus"
	default:
		return "Other"
	}
}

// CurveKind classifies an edge's underlying curve.
type CurveKind int

const (
	CurveUnknown CurveKind = iota
	CurveLine
	CurveCircle
	CurveArc
)

// String returns the curve kind name used in edge listings.
func (k CurveKind) String() string {
	switch k {
	case CurveLine:
		return "Line"
	case CurveCircle:
		return "Circle"
	case CurveArc:
		return "Arc"
	default:
		return "Other"
	}
}

// Face is one bounded surface of a body, in the owning component's local
// coordinates. Origin is the surface's representative point: the face
// center for planes, a point on the axis for cylinders and cones, the
// center for spheres. Normal is the outward plane normal, or the axis
// direction for cylinders and cones.
type Face struct {
	Surface SurfaceKind
	Origin  v3.Vec
	Normal  v3.Vec
	Radius  float64
}

// Edge is one bounded curve of a body, in local coordinates. Circles use
// Center and Radius with Start holding the seam point; lines use Start
// and End.
type Edge struct {
	Curve  CurveKind
	Start  v3.Vec
	End    v3.Vec
	Center v3.Vec
	Radius float64
}

// Body is a B-rep solid owned by a component.
type Body struct {
	Name    string
	Solid   bool
	Faces   []*Face
	Edges   []*Edge
	BoxMin  v3.Vec
	BoxMax  v3.Vec
	Volume  float64
	Area    float64
}

// FaceRef binds a face to the assembly context of a specific occurrence,
// so geometry selected on a deeply nested component stays valid when a
// joint is built at the top level. A nil occurrence means the root
// component's own context.
type FaceRef struct {
	Face       *Face
	Body       *Body
	Occurrence *Occurrence
}

// NewFaceRef creates an assembly-context proxy for a face.
func NewFaceRef(f *Face, b *Body, occ *Occurrence) FaceRef {
	return FaceRef{Face: f, Body: b, Occurrence: occ}
}

// worldPoint maps a local point through the occurrence placement.
func (r FaceRef) worldPoint(p v3.Vec) v3.Vec {
	if r.Occurrence == nil {
		return p
	}
	return r.Occurrence.WorldTransform().MulPosition(p)
}

// worldDirection maps a local direction through the occurrence placement.
func (r FaceRef) worldDirection(dir v3.Vec) v3.Vec {
	if r.Occurrence == nil {
		return dir
	}
	return mulDirection(r.Occurrence.WorldTransform(), dir)
}

// EdgeRef binds an edge to the assembly context of a specific occurrence.
type EdgeRef struct {
	Edge       *Edge
	Body       *Body
	Occurrence *Occurrence
}

// NewEdgeRef creates an assembly-context proxy for an edge.
func NewEdgeRef(e *Edge, b *Body, occ *Occurrence) EdgeRef {
	return EdgeRef{Edge: e, Body: b, Occurrence: occ}
}

func (r EdgeRef) worldPoint(p v3.Vec) v3.Vec {
	if r.Occurrence == nil {
		return p
	}
	return r.Occurrence.WorldTransform().MulPosition(p)
}

// BoxBody builds a rectangular solid with its minimum corner at the
// local origin. Face order is fixed: bottom, top, front (-y), back (+y),
// left (-x), right (+x). Edges are the four bottom lines, four top
// lines, then four verticals.
func BoxBody(name string, dx, dy, dz float64) *Body {
	b := &Body{
		Name:   name,
		Solid:  true,
		BoxMin: v3.Vec{},
		BoxMax: v3.Vec{X: dx, Y: dy, Z: dz},
		Volume: dx * dy * dz,
		Area:   2 * (dx*dy + dy*dz + dx*dz),
	}

	cx, cy, cz := dx/2, dy/2, dz/2
	b.Faces = []*Face{
		{Surface: SurfacePlane, Origin: v3.Vec{X: cx, Y: cy, Z: 0}, Normal: v3.Vec{Z: -1}},
		{Surface: SurfacePlane, Origin: v3.Vec{X: cx, Y: cy, Z: dz}, Normal: v3.Vec{Z: 1}},
		{Surface: SurfacePlane, Origin: v3.Vec{X: cx, Y: 0, Z: cz}, Normal: v3.Vec{Y: -1}},
		{Surface: SurfacePlane, Origin: v3.Vec{X: cx, Y: dy, Z: cz}, Normal: v3.Vec{Y: 1}},
		{Surface: SurfacePlane, Origin: v3.Vec{X: 0, Y: cy, Z: cz}, Normal: v3.Vec{X: -1}},
		{Surface: SurfacePlane, Origin: v3.Vec{X: dx, Y: cy, Z: cz}, Normal: v3.Vec{X: 1}},
	}

	line := func(sx, sy, sz, ex, ey, ez float64) *Edge {
		return &Edge{
			Curve: CurveLine,
			Start: v3.Vec{X: sx, Y: sy, Z: sz},
			End:   v3.Vec{X: ex, Y: ey, Z: ez},
		}
	}
	b.Edges = []*Edge{
		// bottom loop
		line(0, 0, 0, dx, 0, 0),
		line(dx, 0, 0, dx, dy, 0),
		line(dx, dy, 0, 0, dy, 0),
		line(0, dy, 0, 0, 0, 0),
		// top loop
		line(0, 0, dz, dx, 0, dz),
		line(dx, 0, dz, dx, dy, dz),
		line(dx, dy, dz, 0, dy, dz),
		line(0, dy, dz, 0, 0, dz),
		// verticals
		line(0, 0, 0, 0, 0, dz),
		line(dx, 0, 0, dx, 0, dz),
		line(dx, dy, 0, dx, dy, dz),
		line(0, dy, 0, 0, dy, dz),
	}
	return b
}

// CylinderBody builds a solid cylinder with its base center at the local
// origin and its axis along +z. Face order: cylindrical wall, bottom cap,
// top cap. Edge order: bottom circle, top circle.
func CylinderBody(name string, radius, height float64) *Body {
	b := &Body{
		Name:   name,
		Solid:  true,
		BoxMin: v3.Vec{X: -radius, Y: -radius, Z: 0},
		BoxMax: v3.Vec{X: radius, Y: radius, Z: height},
		Volume: math.Pi * radius * radius * height,
		Area:   2*math.Pi*radius*height + 2*math.Pi*radius*radius,
	}
	b.Faces = []*Face{
		{Surface: SurfaceCylinder, Origin: v3.Vec{Z: height / 2}, Normal: v3.Vec{Z: 1}, Radius: radius},
		{Surface: SurfacePlane, Origin: v3.Vec{}, Normal: v3.Vec{Z: -1}},
		{Surface: SurfacePlane, Origin: v3.Vec{Z: height}, Normal: v3.Vec{Z: 1}},
	}
	b.Edges = []*Edge{
		{Curve: CurveCircle, Center: v3.Vec{}, Start: v3.Vec{X: radius}, End: v3.Vec{X: radius}, Radius: radius},
		{Curve: CurveCircle, Center: v3.Vec{Z: height}, Start: v3.Vec{X: radius, Z: height}, End: v3.Vec{X: radius, Z: height}, Radius: radius},
	}
	return b
}

// SphereBody builds a solid sphere centered at the local origin. It has
// a single spherical face and no edges.
func SphereBody(name string, radius float64) *Body {
	return &Body{
		Name:   name,
		Solid:  true,
		BoxMin: v3.Vec{X: -radius, Y: -radius, Z: -radius},
		BoxMax: v3.Vec{X: radius, Y: radius, Z: radius},
		Volume: 4.0 / 3.0 * math.Pi * radius * radius * radius,
		Area:   4 * math.Pi * radius * radius,
		Faces: []*Face{
			{Surface: SurfaceSphere, Origin: v3.Vec{}, Radius: radius},
		},
	}
}

// ConeBody builds a solid cone with its base center at the local origin
// and its apex at (0, 0, height). Face order: conical wall, base cap.
func ConeBody(name string, radius, height float64) *Body {
	b := &Body{
		Name:   name,
		Solid:  true,
		BoxMin: v3.Vec{X: -radius, Y: -radius, Z: 0},
		BoxMax: v3.Vec{X: radius, Y: radius, Z: height},
		Volume: math.Pi * radius * radius * height / 3,
	}
	b.Faces = []*Face{
		{Surface: SurfaceCone, Origin: v3.Vec{Z: height / 2}, Normal: v3.Vec{Z: 1}, Radius: radius},
		{Surface: SurfacePlane, Origin: v3.Vec{}, Normal: v3.Vec{Z: -1}},
	}
	b.Edges = []*Edge{
		{Curve: CurveCircle, Center: v3.Vec{}, Start: v3.Vec{X: radius}, End: v3.Vec{X: radius}, Radius: radius},
	}
	return b
}
