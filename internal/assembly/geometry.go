package assembly

import (
	"strings"

	"github.com/viselabs/vise/internal/design"
)

// GeometrySpec is the declarative description of which face or edge of
// which body anchors one side of a joint. It is resolved against an
// occurrence on every use, never stored.
type GeometrySpec struct {
	Kind      string // face, edge, or point; empty defaults to face
	BodyIndex int
	FaceIndex int
	EdgeIndex int
	KeyPoint  string // center, start, end, middle; empty defaults to center
}

// ResolveGeometry turns a spec into a concrete joint geometry bound to
// the occurrence's assembly context. The same body and face indices mean
// different physical faces depending on which occurrence supplies them:
// indices are always relative to the occurrence's own component.
func ResolveGeometry(occ *design.Occurrence, spec *GeometrySpec) (*design.JointGeometry, error) {
	if spec == nil {
		return nil, Validationf("no geometry specification provided")
	}
	kp, err := ParseKeyPoint(spec.KeyPoint)
	if err != nil {
		return nil, err
	}

	comp := occ.Component
	if comp == nil {
		return nil, Resolutionf("occurrence %q has no component", occ.Name)
	}
	body, err := bodyAt(comp, spec.BodyIndex)
	if err != nil {
		return nil, err
	}

	kind := strings.ToLower(spec.Kind)
	if kind == "" {
		kind = "face"
	}
	switch kind {
	case "face":
		return resolveFace(occ, body, spec.FaceIndex, kp)
	case "edge":
		return resolveEdge(occ, body, spec.EdgeIndex, kp)
	case "point":
		return nil, Unsupportedf("point geometry is not supported yet: use face or edge")
	default:
		return nil, Validationf("invalid geometry kind %q: use face, edge, or point", spec.Kind)
	}
}

func bodyAt(comp *design.Component, i int) (*design.Body, error) {
	n := len(comp.Bodies)
	if n == 0 {
		return nil, Resolutionf("component %q has no bodies", comp.Name)
	}
	if i < 0 || i >= n {
		return nil, Validationf("invalid body index %d: component %q has %d bodies (0-%d)", i, comp.Name, n, n-1)
	}
	return comp.Bodies[i], nil
}

// resolveFace selects the construction variant from the face's surface
// classification: planar faces combine the key point with no reference
// edge, cylindrical and conical faces keep the key point on the axis,
// spherical faces take no key point at all, and anything unclassified
// falls back to the generic non-planar path.
func resolveFace(occ *design.Occurrence, body *design.Body, i int, kp design.KeyPoint) (*design.JointGeometry, error) {
	n := len(body.Faces)
	if n == 0 {
		return nil, Resolutionf("body %q has no faces", body.Name)
	}
	if i < 0 || i >= n {
		return nil, Validationf("invalid face index %d: body %q has %d faces (0-%d)", i, body.Name, n, n-1)
	}
	ref := design.NewFaceRef(body.Faces[i], body, occ)

	var (
		g   *design.JointGeometry
		err error
	)
	switch body.Faces[i].Surface {
	case design.SurfacePlane:
		g, err = design.JointGeometryByPlanarFace(ref, nil, kp)
	case design.SurfaceCylinder, design.SurfaceCone:
		g, err = design.JointGeometryByCylindricalFace(ref, kp)
	case design.SurfaceSphere:
		g, err = design.JointGeometryBySphereFace(ref)
	default:
		g, err = design.JointGeometryByNonPlanarFace(ref, kp)
	}
	if err != nil {
		return nil, EngineWrap(err, "joint geometry from face %d of body %q", i, body.Name)
	}
	return g, nil
}

func resolveEdge(occ *design.Occurrence, body *design.Body, i int, kp design.KeyPoint) (*design.JointGeometry, error) {
	n := len(body.Edges)
	if n == 0 {
		return nil, Resolutionf("body %q has no edges", body.Name)
	}
	if i < 0 || i >= n {
		return nil, Validationf("invalid edge index %d: body %q has %d edges (0-%d)", i, body.Name, n, n-1)
	}
	ref := design.NewEdgeRef(body.Edges[i], body, occ)
	g, err := design.JointGeometryByCurve(ref, kp)
	if err != nil {
		return nil, EngineWrap(err, "joint geometry from edge %d of body %q", i, body.Name)
	}
	return g, nil
}
