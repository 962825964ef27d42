package assembly_test

import (
	"math"
	"strings"
	"testing"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

// bench builds a small three-occurrence design: a base plate with an
// arm nested under it, and a free-standing wheel. Pre-order flattening
// yields Base:1 (0), Arm:1 (1), Wheel:1 (2).
func bench(t *testing.T) *design.Design {
	t.Helper()
	d := design.NewDesign("Bench", "cm")
	base := d.AddComponent(nil, "Base", design.Identity())
	base.Component.AddBody(design.BoxBody("Plate", 4, 4, 1))
	arm := d.AddComponent(base, "Arm", design.Translation(0, 0, 1))
	arm.Component.AddBody(design.BoxBody("ArmBody", 1, 1, 3))
	wheel := d.AddComponent(nil, "Wheel", design.Translation(10, 0, 0))
	wheel.Component.AddBody(design.CylinderBody("Rim", 2, 1))
	return d
}

func wantCode(t *testing.T, err error, code assembly.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := assembly.CodeOf(err); got != code {
		t.Fatalf("error code = %q, want %q (err: %v)", got, code, err)
	}
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// faceSpec selects a face of body 0 with the default center key point.
func faceSpec(face int) *assembly.GeometrySpec {
	return &assembly.GeometrySpec{Kind: "face", FaceIndex: face}
}

// --- full joints ---

func TestCreateJoint_RevoluteBetweenPlanarFaces(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	// Top face of the base plate (face 1) against the bottom face of
	// the arm (face 0).
	sum, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(1)},
		GeometryOne: faceSpec(1),
		GeometryTwo: faceSpec(0),
		JointType:   "revolute",
		Direction:   "z",
	})
	if err != nil {
		t.Fatalf("CreateJoint: %v", err)
	}
	if sum.Index != 0 {
		t.Errorf("joint index = %d, want 0", sum.Index)
	}
	if sum.Name != "Revolute1" {
		t.Errorf("joint name = %q, want Revolute1", sum.Name)
	}
	if sum.Type != "revolute" {
		t.Errorf("joint type = %q, want revolute", sum.Type)
	}
	if sum.OccurrenceOne != "Base:1" || sum.OccurrenceTwo != "Arm:1" {
		t.Errorf("occurrences = %q, %q, want Base:1, Arm:1", sum.OccurrenceOne, sum.OccurrenceTwo)
	}
	if d.Joints().Count() != 1 {
		t.Fatalf("joint count = %d, want 1", d.Joints().Count())
	}
}

func TestCreateJoint_ByOccurrenceName(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	sum, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Name: strPtr("Base")},
		Two:         assembly.OccurrenceSelector{Name: strPtr("Wheel:1")},
		GeometryOne: faceSpec(1),
		GeometryTwo: faceSpec(2),
		JointType:   "rigid",
	})
	if err != nil {
		t.Fatalf("CreateJoint: %v", err)
	}
	if sum.OccurrenceOne != "Base:1" {
		t.Errorf("occurrence one = %q, want Base:1", sum.OccurrenceOne)
	}
	if sum.OccurrenceTwo != "Wheel:1" {
		t.Errorf("occurrence two = %q, want Wheel:1", sum.OccurrenceTwo)
	}
}

func TestCreateJoint_IndexOutOfRangeLeavesDesignUntouched(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(5)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(0)},
		GeometryOne: faceSpec(0),
		GeometryTwo: faceSpec(0),
	})
	wantCode(t, err, assembly.CodeValidation)
	if !strings.Contains(err.Error(), "0-2") {
		t.Errorf("error should cite the valid range 0-2, got: %v", err)
	}
	if !strings.Contains(err.Error(), "occurrence one") {
		t.Errorf("error should name the failing parameter, got: %v", err)
	}
	if d.Joints().Count() != 0 {
		t.Errorf("joint count = %d after failed create, want 0", d.Joints().Count())
	}
}

func TestCreateJoint_PointGeometryUnsupported(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(2)},
		GeometryOne: &assembly.GeometrySpec{Kind: "point"},
		GeometryTwo: faceSpec(0),
	})
	wantCode(t, err, assembly.CodeUnsupported)
	if d.Joints().Count() != 0 {
		t.Errorf("joint count = %d after unsupported geometry, want 0", d.Joints().Count())
	}
}

func TestCreateJoint_MissingGeometry(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateJoint(assembly.JointRequest{
		One: assembly.OccurrenceSelector{Index: intPtr(0)},
		Two: assembly.OccurrenceSelector{Index: intPtr(1)},
	})
	wantCode(t, err, assembly.CodeValidation)
	if !strings.Contains(err.Error(), "geometry_one") {
		t.Errorf("error should name geometry_one, got: %v", err)
	}
}

func TestCreateJoint_MissingSelector(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateJoint(assembly.JointRequest{
		Two:         assembly.OccurrenceSelector{Index: intPtr(1)},
		GeometryOne: faceSpec(0),
		GeometryTwo: faceSpec(0),
	})
	wantCode(t, err, assembly.CodeValidation)
	if !strings.Contains(err.Error(), "occurrence one") {
		t.Errorf("error should name occurrence one, got: %v", err)
	}
}

func TestCreateJoint_AngleOffsetFlip(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	sum, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(1)},
		GeometryOne: faceSpec(1),
		GeometryTwo: faceSpec(0),
		JointType:   "revolute",
		AngleDeg:    45,
		Offset:      2.0,
		Flipped:     true,
	})
	if err != nil {
		t.Fatalf("CreateJoint: %v", err)
	}
	j := d.Joints().Item(sum.Index)
	if math.Abs(j.Angle-math.Pi/4) > 1e-12 {
		t.Errorf("angle = %v rad, want pi/4", j.Angle)
	}
	if j.Offset != 2.0 {
		t.Errorf("offset = %v, want 2.0", j.Offset)
	}
	if !j.Flipped {
		t.Error("flipped not set")
	}
}

func TestCreateJoint_InvalidJointType(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(1)},
		GeometryOne: faceSpec(1),
		GeometryTwo: faceSpec(0),
		JointType:   "hinge",
	})
	wantCode(t, err, assembly.CodeValidation)
	if d.Joints().Count() != 0 {
		t.Errorf("joint count = %d after invalid type, want 0", d.Joints().Count())
	}
}

func TestCreateJoint_SelfJointRejected(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(0)},
		GeometryOne: faceSpec(0),
		GeometryTwo: faceSpec(1),
	})
	wantCode(t, err, assembly.CodeEngine)
	if d.Joints().Count() != 0 {
		t.Errorf("joint count = %d after rejected self-joint, want 0", d.Joints().Count())
	}
}

// --- as-built joints ---

func TestCreateAsBuiltJoint_RepeatCallsAreDistinct(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	req := assembly.AsBuiltRequest{
		One:       assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:       assembly.OccurrenceSelector{Index: intPtr(2)},
		JointType: "rigid",
	}
	first, err := b.CreateAsBuiltJoint(req)
	if err != nil {
		t.Fatalf("first CreateAsBuiltJoint: %v", err)
	}
	second, err := b.CreateAsBuiltJoint(req)
	if err != nil {
		t.Fatalf("second CreateAsBuiltJoint: %v", err)
	}
	if first.Index != 0 || second.Index != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", first.Index, second.Index)
	}
	if first.Name == second.Name {
		t.Errorf("both joints named %q, want distinct names", first.Name)
	}
	if d.AsBuiltJoints().Count() != 2 {
		t.Errorf("as-built count = %d, want 2", d.AsBuiltJoints().Count())
	}
}

func TestCreateAsBuiltJoint_SameOccurrenceRejected(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	_, err := b.CreateAsBuiltJoint(assembly.AsBuiltRequest{
		One: assembly.OccurrenceSelector{Index: intPtr(1)},
		Two: assembly.OccurrenceSelector{Index: intPtr(1)},
	})
	wantCode(t, err, assembly.CodeEngine)
	if d.AsBuiltJoints().Count() != 0 {
		t.Errorf("as-built count = %d after rejection, want 0", d.AsBuiltJoints().Count())
	}
}

// --- listing ---

func TestListJoints_CombinesBothCollections(t *testing.T) {
	d := bench(t)
	b := assembly.NewBuilder(d)

	if _, err := b.CreateJoint(assembly.JointRequest{
		One:         assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:         assembly.OccurrenceSelector{Index: intPtr(1)},
		GeometryOne: faceSpec(1),
		GeometryTwo: faceSpec(0),
		JointType:   "revolute",
	}); err != nil {
		t.Fatalf("CreateJoint: %v", err)
	}
	if _, err := b.CreateAsBuiltJoint(assembly.AsBuiltRequest{
		One:       assembly.OccurrenceSelector{Index: intPtr(0)},
		Two:       assembly.OccurrenceSelector{Index: intPtr(2)},
		JointType: "slider",
		Direction: "x",
	}); err != nil {
		t.Fatalf("CreateAsBuiltJoint: %v", err)
	}

	infos := b.ListJoints()
	if len(infos) != 2 {
		t.Fatalf("listed %d joints, want 2", len(infos))
	}

	full := infos[0]
	if full.Index != 0 || full.Kind != "joint" || full.AsBuiltIndex != nil {
		t.Errorf("full joint entry = %+v", full)
	}
	if full.Type != "revolute" {
		t.Errorf("full joint type = %q, want revolute", full.Type)
	}

	ab := infos[1]
	if ab.Index != 1 || ab.Kind != "as_built" {
		t.Errorf("as-built entry = %+v", ab)
	}
	if ab.AsBuiltIndex == nil || *ab.AsBuiltIndex != 0 {
		t.Errorf("as-built index = %v, want 0", ab.AsBuiltIndex)
	}
	if ab.Type != "slider" {
		t.Errorf("as-built type = %q, want slider", ab.Type)
	}
	if ab.OccurrenceOne != "Base:1" || ab.OccurrenceTwo != "Wheel:1" {
		t.Errorf("as-built occurrences = %q, %q", ab.OccurrenceOne, ab.OccurrenceTwo)
	}
}

func TestListJoints_EmptyDesign(t *testing.T) {
	d := design.NewDesign("Empty", "cm")
	b := assembly.NewBuilder(d)
	if infos := b.ListJoints(); len(infos) != 0 {
		t.Errorf("listed %d joints in empty design, want 0", len(infos))
	}
}
