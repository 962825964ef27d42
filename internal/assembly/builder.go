package assembly

import (
	"math"

	"github.com/viselabs/vise/internal/design"
)

// OccurrenceSelector addresses one occurrence by global index or by
// name. Exactly one field needs to be set; when both are, the index is
// checked first.
type OccurrenceSelector struct {
	Index *int
	Name  *string
}

// JointRequest carries everything needed to build a full joint.
type JointRequest struct {
	One         OccurrenceSelector
	Two         OccurrenceSelector
	GeometryOne *GeometrySpec
	GeometryTwo *GeometrySpec
	JointType   string  // default rigid
	Direction   string  // default z
	AngleDeg    float64 // degrees; converted to radians on apply
	Offset      float64 // design length units
	Flipped     bool
}

// AsBuiltRequest carries everything needed to build an as-built joint,
// which derives its placement from the occurrences' current relative
// transform instead of explicit geometry.
type AsBuiltRequest struct {
	One       OccurrenceSelector
	Two       OccurrenceSelector
	JointType string
	Direction string
}

// JointSummary reports a committed joint. Index is the joint's position
// in its collection at commit time; it shifts if earlier joints are
// later removed.
type JointSummary struct {
	Index         int    `json:"joint_index"`
	Name          string `json:"joint_name"`
	Type          string `json:"joint_type"`
	OccurrenceOne string `json:"occurrence_one"`
	OccurrenceTwo string `json:"occurrence_two"`
}

// JointInfo is one entry of the combined joint listing.
type JointInfo struct {
	Index         int    `json:"index"`
	AsBuiltIndex  *int   `json:"as_built_index,omitempty"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Kind          string `json:"joint_kind"` // "joint" or "as_built"
	OccurrenceOne string `json:"occurrence_one"`
	OccurrenceTwo string `json:"occurrence_two"`
	Suppressed    bool   `json:"is_suppressed"`
	Locked        bool   `json:"is_locked"`
}

// Builder constructs joints against one design session. Each call
// re-flattens the occurrence tree; nothing is cached between calls.
type Builder struct {
	d *design.Design
}

// NewBuilder creates a Builder over the design.
func NewBuilder(d *design.Design) *Builder {
	return &Builder{d: d}
}

// CreateJoint resolves both occurrences and both geometries, validates
// the symbolic parameters, configures the joint input, and commits it.
// Every resolution step short-circuits before any engine mutation, and
// engine failures are reported without leaving a partial joint behind.
func (b *Builder) CreateJoint(req JointRequest) (*JointSummary, error) {
	idx := NewIndex(b.d)

	occ1, err := resolveSelector(idx, "occurrence one", req.One)
	if err != nil {
		return nil, err
	}
	occ2, err := resolveSelector(idx, "occurrence two", req.Two)
	if err != nil {
		return nil, err
	}

	if req.GeometryOne == nil {
		return nil, Validationf("geometry_one is required")
	}
	if req.GeometryTwo == nil {
		return nil, Validationf("geometry_two is required")
	}
	geo1, err := ResolveGeometry(occ1, req.GeometryOne)
	if err != nil {
		return nil, prefix("geometry one", err)
	}
	geo2, err := ResolveGeometry(occ2, req.GeometryTwo)
	if err != nil {
		return nil, prefix("geometry two", err)
	}

	motionType, err := ParseMotionType(req.JointType)
	if err != nil {
		return nil, err
	}
	axis, err := ParseAxis(req.Direction)
	if err != nil {
		return nil, err
	}

	in, err := b.d.Joints().CreateInput(geo1, geo2)
	if err != nil {
		return nil, EngineWrap(err, "create joint input")
	}
	if req.AngleDeg != 0 {
		in.Angle = req.AngleDeg * math.Pi / 180
	}
	if req.Offset != 0 {
		in.Offset = req.Offset
	}
	if req.Flipped {
		in.Flipped = true
	}
	if err := ApplyMotion(in, motionType, axis); err != nil {
		return nil, err
	}

	j, err := b.d.Joints().Add(in)
	if err != nil {
		return nil, EngineWrap(err, "create joint")
	}
	return &JointSummary{
		Index:         b.d.Joints().Count() - 1,
		Name:          j.Name,
		Type:          motionType.String(),
		OccurrenceOne: occurrenceName(j.OccurrenceOne),
		OccurrenceTwo: occurrenceName(j.OccurrenceTwo),
	}, nil
}

// CreateAsBuiltJoint resolves both occurrences and commits a joint from
// their current relative placement. Two identical calls produce two
// distinct joints: creation is not idempotent.
func (b *Builder) CreateAsBuiltJoint(req AsBuiltRequest) (*JointSummary, error) {
	idx := NewIndex(b.d)

	occ1, err := resolveSelector(idx, "occurrence one", req.One)
	if err != nil {
		return nil, err
	}
	occ2, err := resolveSelector(idx, "occurrence two", req.Two)
	if err != nil {
		return nil, err
	}

	motionType, err := ParseMotionType(req.JointType)
	if err != nil {
		return nil, err
	}
	axis, err := ParseAxis(req.Direction)
	if err != nil {
		return nil, err
	}

	in, err := b.d.AsBuiltJoints().CreateInput(occ1, occ2)
	if err != nil {
		return nil, EngineWrap(err, "create as-built joint input")
	}
	if err := ApplyMotion(in, motionType, axis); err != nil {
		return nil, err
	}

	j, err := b.d.AsBuiltJoints().Add(in)
	if err != nil {
		return nil, EngineWrap(err, "create as-built joint")
	}
	return &JointSummary{
		Index:         b.d.AsBuiltJoints().Count() - 1,
		Name:          j.Name,
		Type:          motionType.String(),
		OccurrenceOne: occurrenceName(j.OccurrenceOne),
		OccurrenceTwo: occurrenceName(j.OccurrenceTwo),
	}, nil
}

// ListJoints returns the combined joint listing: full joints first at
// their collection indices, then as-built joints offset by the
// full-joint count.
func (b *Builder) ListJoints() []JointInfo {
	joints := b.d.Joints().All()
	asBuilt := b.d.AsBuiltJoints().All()

	out := make([]JointInfo, 0, len(joints)+len(asBuilt))
	for i, j := range joints {
		out = append(out, JointInfo{
			Index:         i,
			Name:          j.Name,
			Type:          j.Motion.Type.String(),
			Kind:          "joint",
			OccurrenceOne: occurrenceName(j.OccurrenceOne),
			OccurrenceTwo: occurrenceName(j.OccurrenceTwo),
			Suppressed:    j.Suppressed,
			Locked:        j.Locked,
		})
	}
	offset := len(joints)
	for i, j := range asBuilt {
		abi := i
		out = append(out, JointInfo{
			Index:         offset + i,
			AsBuiltIndex:  &abi,
			Name:          j.Name,
			Type:          j.Motion.Type.String(),
			Kind:          "as_built",
			OccurrenceOne: occurrenceName(j.OccurrenceOne),
			OccurrenceTwo: occurrenceName(j.OccurrenceTwo),
			Suppressed:    j.Suppressed,
			Locked:        j.Locked,
		})
	}
	return out
}

// resolveSelector applies the index-first, name-second policy and
// reports a required-parameter error when neither is supplied.
func resolveSelector(idx *Index, label string, sel OccurrenceSelector) (*design.Occurrence, error) {
	switch {
	case sel.Index != nil:
		occ, err := idx.ByIndex(*sel.Index)
		if err != nil {
			return nil, prefix(label, err)
		}
		return occ, nil
	case sel.Name != nil:
		occ, err := idx.ByName(*sel.Name)
		if err != nil {
			return nil, prefix(label, err)
		}
		return occ, nil
	default:
		return nil, Validationf("%s: provide an occurrence index or name", label)
	}
}

// occurrenceName reports "Ground" for an absent occurrence.
func occurrenceName(o *design.Occurrence) string {
	if o == nil {
		return "Ground"
	}
	return o.Name
}
