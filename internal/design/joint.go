package design

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Axis is a joint motion axis in the design's model space.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Vector returns the unit direction of the axis.
func (a Axis) Vector() v3.Vec {
	switch a {
	case AxisX:
		return v3.Vec{X: 1}
	case AxisY:
		return v3.Vec{Y: 1}
	default:
		return v3.Vec{Z: 1}
	}
}

func (a Axis) valid() bool { return a >= AxisX && a <= AxisZ }

// MotionType is the closed set of joint motion kinds. Dispatch over it
// is exhaustive; adding a kind is a compile-visible change.
type MotionType int

const (
	MotionRigid MotionType = iota
	MotionRevolute
	MotionSlider
	MotionCylindrical
	MotionBall
	MotionPlanar
	MotionPinSlot
)

// String returns the command-facing tag, e.g. "pin_slot".
func (t MotionType) String() string {
	switch t {
	case MotionRigid:
		return "rigid"
	case MotionRevolute:
		return "revolute"
	case MotionSlider:
		return "slider"
	case MotionCylindrical:
		return "cylindrical"
	case MotionBall:
		return "ball"
	case MotionPlanar:
		return "planar"
	case MotionPinSlot:
		return "pin_slot"
	default:
		return fmt.Sprintf("motion(%d)", int(t))
	}
}

// Label returns the CamelCase form used in engine joint names.
func (t MotionType) Label() string {
	switch t {
	case MotionRigid:
		return "Rigid"
	case MotionRevolute:
		return "Revolute"
	case MotionSlider:
		return "Slider"
	case MotionCylindrical:
		return "Cylindrical"
	case MotionBall:
		return "Ball"
	case MotionPlanar:
		return "Planar"
	case MotionPinSlot:
		return "PinSlot"
	default:
		return "Unknown"
	}
}

// RequiresAxis reports whether the motion kind takes an axis parameter.
func (t MotionType) RequiresAxis() bool {
	switch t {
	case MotionRigid, MotionBall:
		return false
	default:
		return true
	}
}

// Motion is a configured joint motion: the kind plus whatever axes it
// uses. PinSlot carries both a slot and a pin axis; the other axial
// kinds use Axis alone.
type Motion struct {
	Type     MotionType
	Axis     Axis
	SlotAxis Axis
	PinAxis  Axis
}

// MotionInput is the engine surface for configuring an in-progress
// joint input's degrees of freedom. Both full and as-built joint inputs
// implement it.
type MotionInput interface {
	SetRigidMotion() error
	SetRevoluteMotion(axis Axis) error
	SetSliderMotion(axis Axis) error
	SetCylindricalMotion(axis Axis) error
	SetBallMotion() error
	SetPlanarMotion(normal Axis) error
	SetPinSlotMotion(slot, pin Axis) error
}

// motionState is the shared motion configuration embedded in both input
// kinds. A setter that fails leaves the previous motion untouched.
type motionState struct {
	motion *Motion
}

// Motion returns the configured motion, or nil if none was set.
func (m *motionState) Motion() *Motion { return m.motion }

func (m *motionState) SetRigidMotion() error {
	m.motion = &Motion{Type: MotionRigid}
	return nil
}

func (m *motionState) SetRevoluteMotion(axis Axis) error {
	return m.setAxial(MotionRevolute, axis)
}

func (m *motionState) SetSliderMotion(axis Axis) error {
	return m.setAxial(MotionSlider, axis)
}

func (m *motionState) SetCylindricalMotion(axis Axis) error {
	return m.setAxial(MotionCylindrical, axis)
}

func (m *motionState) SetBallMotion() error {
	m.motion = &Motion{Type: MotionBall}
	return nil
}

func (m *motionState) SetPlanarMotion(normal Axis) error {
	return m.setAxial(MotionPlanar, normal)
}

func (m *motionState) SetPinSlotMotion(slot, pin Axis) error {
	if !slot.valid() {
		return fmt.Errorf("pin_slot motion: invalid slot axis %d", int(slot))
	}
	if !pin.valid() {
		return fmt.Errorf("pin_slot motion: invalid pin axis %d", int(pin))
	}
	m.motion = &Motion{Type: MotionPinSlot, Axis: slot, SlotAxis: slot, PinAxis: pin}
	return nil
}

func (m *motionState) setAxial(t MotionType, axis Axis) error {
	if !axis.valid() {
		return fmt.Errorf("%s motion: invalid axis %d", t, int(axis))
	}
	m.motion = &Motion{Type: t, Axis: axis}
	return nil
}

// JointInput is an in-progress full joint: two resolved geometries plus
// optional angle (radians), offset, and flip, and a configured motion.
type JointInput struct {
	motionState

	GeometryOne *JointGeometry
	GeometryTwo *JointGeometry
	Angle       float64
	Offset      float64
	Flipped     bool
}

// Joint is a committed kinematic connector between two occurrences.
// Either occurrence may be nil, meaning the joint anchors to ground
// (root-context geometry).
type Joint struct {
	Name          string
	Motion        Motion
	OccurrenceOne *Occurrence
	OccurrenceTwo *Occurrence
	GeometryOne   *JointGeometry
	GeometryTwo   *JointGeometry
	Angle         float64
	Offset        float64
	Flipped       bool
	Suppressed    bool
	Locked        bool
}

// Joints is the design's ordered full-joint collection. Indices are
// positional and shift when earlier joints are removed.
type Joints struct {
	d     *Design
	items []*Joint
}

// CreateInput starts a full joint between two resolved geometries.
func (js *Joints) CreateInput(one, two *JointGeometry) (*JointInput, error) {
	if one == nil || two == nil {
		return nil, fmt.Errorf("joint input: both geometries are required")
	}
	return &JointInput{GeometryOne: one, GeometryTwo: two}, nil
}

// Add validates the input completely and then appends the new joint.
// Nothing is committed on failure; the append is the only mutation.
func (js *Joints) Add(in *JointInput) (*Joint, error) {
	if in == nil {
		return nil, fmt.Errorf("add joint: nil input")
	}
	if in.GeometryOne == nil || in.GeometryTwo == nil {
		return nil, fmt.Errorf("add joint: input is missing geometry")
	}
	if in.motion == nil {
		return nil, fmt.Errorf("add joint: no motion configured")
	}
	occ1 := in.GeometryOne.OwningOccurrence()
	occ2 := in.GeometryTwo.OwningOccurrence()
	if occ1 != nil && occ1 == occ2 {
		return nil, fmt.Errorf("add joint: cannot join occurrence %q to itself", occ1.Name)
	}

	j := &Joint{
		Name:          js.d.nextJointName(in.motion.Type),
		Motion:        *in.motion,
		OccurrenceOne: occ1,
		OccurrenceTwo: occ2,
		GeometryOne:   in.GeometryOne,
		GeometryTwo:   in.GeometryTwo,
		Angle:         in.Angle,
		Offset:        in.Offset,
		Flipped:       in.Flipped,
	}
	js.items = append(js.items, j)
	return j, nil
}

// Count returns the number of joints in the collection.
func (js *Joints) Count() int { return len(js.items) }

// Item returns the joint at a positional index.
func (js *Joints) Item(i int) *Joint { return js.items[i] }

// All returns the joints in collection order.
func (js *Joints) All() []*Joint { return js.items }

// AsBuiltJointInput is an in-progress as-built joint: the occurrence
// pair plus their relative placement captured at input creation.
type AsBuiltJointInput struct {
	motionState

	OccurrenceOne *Occurrence
	OccurrenceTwo *Occurrence
	Relative      sdf.M44
}

// AsBuiltJoint is a committed joint derived from the occurrences'
// positions at creation time rather than explicit geometry.
type AsBuiltJoint struct {
	Name          string
	Motion        Motion
	OccurrenceOne *Occurrence
	OccurrenceTwo *Occurrence
	Relative      sdf.M44
	Suppressed    bool
	Locked        bool
}

// AsBuiltJoints is the design's ordered as-built joint collection,
// separate from the full-joint collection.
type AsBuiltJoints struct {
	d     *Design
	items []*AsBuiltJoint
}

// CreateInput starts an as-built joint between two placed occurrences,
// snapshotting their current relative transform.
func (js *AsBuiltJoints) CreateInput(one, two *Occurrence) (*AsBuiltJointInput, error) {
	if one == nil || two == nil {
		return nil, fmt.Errorf("as-built joint input: both occurrences are required")
	}
	if one == two {
		return nil, fmt.Errorf("as-built joint input: cannot join occurrence %q to itself", one.Name)
	}
	rel := one.WorldTransform().Inverse().Mul(two.WorldTransform())
	return &AsBuiltJointInput{OccurrenceOne: one, OccurrenceTwo: two, Relative: rel}, nil
}

// Add validates the input completely and then appends the new joint.
func (js *AsBuiltJoints) Add(in *AsBuiltJointInput) (*AsBuiltJoint, error) {
	if in == nil {
		return nil, fmt.Errorf("add as-built joint: nil input")
	}
	if in.OccurrenceOne == nil || in.OccurrenceTwo == nil {
		return nil, fmt.Errorf("add as-built joint: input is missing an occurrence")
	}
	if in.motion == nil {
		return nil, fmt.Errorf("add as-built joint: no motion configured")
	}

	j := &AsBuiltJoint{
		Name:          js.d.nextJointName(in.motion.Type),
		Motion:        *in.motion,
		OccurrenceOne: in.OccurrenceOne,
		OccurrenceTwo: in.OccurrenceTwo,
		Relative:      in.Relative,
	}
	js.items = append(js.items, j)
	return j, nil
}

// Count returns the number of as-built joints in the collection.
func (js *AsBuiltJoints) Count() int { return len(js.items) }

// Item returns the as-built joint at a positional index.
func (js *AsBuiltJoints) Item(i int) *AsBuiltJoint { return js.items[i] }

// All returns the as-built joints in collection order.
func (js *AsBuiltJoints) All() []*AsBuiltJoint { return js.items }
