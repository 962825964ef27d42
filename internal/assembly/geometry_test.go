package assembly_test

import (
	"strings"
	"testing"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

func TestResolveGeometry_DefaultsToFaceCenter(t *testing.T) {
	d := bench(t)
	occ := d.Occurrences()[0]

	g, err := assembly.ResolveGeometry(occ, &assembly.GeometrySpec{FaceIndex: 1})
	if err != nil {
		t.Fatalf("ResolveGeometry: %v", err)
	}
	if g.Class != design.GeometryPlanar {
		t.Errorf("class = %s, want planar", g.Class)
	}
	if g.KeyPoint != design.KeyPointCenter {
		t.Errorf("key point = %s, want center", g.KeyPoint)
	}
	if g.OwningOccurrence() != occ {
		t.Error("geometry not bound to its occurrence")
	}
}

func TestResolveGeometry_ClassFollowsSurface(t *testing.T) {
	d := design.NewDesign("Shapes", "cm")
	occ := d.AddComponent(nil, "Shapes", design.Identity())
	occ.Component.AddBody(design.CylinderBody("Pin", 1, 4))
	occ.Component.AddBody(design.SphereBody("Knob", 1))
	occ.Component.AddBody(design.ConeBody("Tip", 1, 2))

	cases := []struct {
		name string
		spec assembly.GeometrySpec
		want design.GeometryClass
	}{
		{"cylinder wall", assembly.GeometrySpec{BodyIndex: 0, FaceIndex: 0}, design.GeometryCylindrical},
		{"cylinder cap", assembly.GeometrySpec{BodyIndex: 0, FaceIndex: 2}, design.GeometryPlanar},
		{"sphere", assembly.GeometrySpec{BodyIndex: 1, FaceIndex: 0}, design.GeometrySpherical},
		{"cone wall", assembly.GeometrySpec{BodyIndex: 2, FaceIndex: 0}, design.GeometryCylindrical},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := assembly.ResolveGeometry(occ, &c.spec)
			if err != nil {
				t.Fatalf("ResolveGeometry: %v", err)
			}
			if g.Class != c.want {
				t.Errorf("class = %s, want %s", g.Class, c.want)
			}
		})
	}
}

func TestResolveGeometry_SphereIgnoresKeyPoint(t *testing.T) {
	d := design.NewDesign("Shapes", "cm")
	occ := d.AddComponent(nil, "Shapes", design.Identity())
	occ.Component.AddBody(design.SphereBody("Knob", 1))

	g, err := assembly.ResolveGeometry(occ, &assembly.GeometrySpec{KeyPoint: "start"})
	if err != nil {
		t.Fatalf("ResolveGeometry: %v", err)
	}
	if g.KeyPoint != design.KeyPointNone {
		t.Errorf("key point = %s, want none for spherical faces", g.KeyPoint)
	}
}

func TestResolveGeometry_EdgeWithKeyPoint(t *testing.T) {
	d := bench(t)
	occ := d.Occurrences()[0]

	g, err := assembly.ResolveGeometry(occ, &assembly.GeometrySpec{
		Kind:      "edge",
		EdgeIndex: 0,
		KeyPoint:  "start",
	})
	if err != nil {
		t.Fatalf("ResolveGeometry: %v", err)
	}
	if g.Class != design.GeometryCurve {
		t.Errorf("class = %s, want curve", g.Class)
	}
	if g.KeyPoint != design.KeyPointStart {
		t.Errorf("key point = %s, want start", g.KeyPoint)
	}
}

func TestResolveGeometry_SameIndicesDifferentOccurrences(t *testing.T) {
	d := design.NewDesign("Twins", "cm")
	a := d.AddComponent(nil, "Plate", design.Identity())
	a.Component.AddBody(design.BoxBody("Slab", 2, 2, 2))
	b := d.AddOccurrence(nil, a.Component, design.Translation(10, 0, 0))

	spec := &assembly.GeometrySpec{FaceIndex: 1}
	ga, err := assembly.ResolveGeometry(a, spec)
	if err != nil {
		t.Fatalf("ResolveGeometry(a): %v", err)
	}
	gb, err := assembly.ResolveGeometry(b, spec)
	if err != nil {
		t.Fatalf("ResolveGeometry(b): %v", err)
	}
	if ga.Origin == gb.Origin {
		t.Errorf("both geometries resolved to origin %v despite different placements", ga.Origin)
	}
	if gb.Origin.X-ga.Origin.X != 10 {
		t.Errorf("origin x delta = %v, want 10", gb.Origin.X-ga.Origin.X)
	}
}

func TestResolveGeometry_Failures(t *testing.T) {
	d := bench(t)
	occ := d.Occurrences()[0]

	empty := design.NewDesign("Empty", "cm")
	bare := empty.AddComponent(nil, "Bare", design.Identity())

	cases := []struct {
		name string
		occ  *design.Occurrence
		spec *assembly.GeometrySpec
		code assembly.Code
		msg  string
	}{
		{"nil spec", occ, nil, assembly.CodeValidation, "no geometry"},
		{"bad kind", occ, &assembly.GeometrySpec{Kind: "vertex"}, assembly.CodeValidation, "vertex"},
		{"point kind", occ, &assembly.GeometrySpec{Kind: "point"}, assembly.CodeUnsupported, "point geometry"},
		{"bad key point", occ, &assembly.GeometrySpec{KeyPoint: "corner"}, assembly.CodeValidation, "corner"},
		{"body out of range", occ, &assembly.GeometrySpec{BodyIndex: 3}, assembly.CodeValidation, "body index 3"},
		{"face out of range", occ, &assembly.GeometrySpec{FaceIndex: 99}, assembly.CodeValidation, "face index 99"},
		{"edge out of range", occ, &assembly.GeometrySpec{Kind: "edge", EdgeIndex: 99}, assembly.CodeValidation, "edge index 99"},
		{"no bodies", bare, &assembly.GeometrySpec{}, assembly.CodeResolution, "no bodies"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := assembly.ResolveGeometry(c.occ, c.spec)
			wantCode(t, err, c.code)
			if !strings.Contains(err.Error(), c.msg) {
				t.Errorf("error %v does not mention %q", err, c.msg)
			}
		})
	}
}
