// Package design implements the in-process parametric assembly engine:
// components, placed occurrences, B-rep bodies, and kinematic joints.
//
// The model follows the usual CAD split between definitions and
// instances: a Component owns bodies and may be instanced any number of
// times, each instance being an Occurrence placed by a transform. The
// engine exposes no stable handles; callers address entities positionally
// through the assembly layer, which re-derives indices on every command.
package design

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// Design is a single open assembly session. It owns the root component,
// the occurrence tree, and the joint collections. It is not safe for
// concurrent use; commands run strictly one at a time.
type Design struct {
	root  *Component
	units string

	// Top-level occurrences placed directly in the root component.
	occurrences []*Occurrence

	joints        *Joints
	asBuiltJoints *AsBuiltJoints

	compSeq  int
	jointSeq int
}

// NewDesign creates an empty design whose root component has the given
// name and whose lengths are expressed in units. An empty units falls
// back to centimeters, the engine's internal length unit.
func NewDesign(name, units string) *Design {
	if units == "" {
		units = "cm"
	}
	d := &Design{
		root:  &Component{Name: name},
		units: units,
	}
	d.joints = &Joints{d: d}
	d.asBuiltJoints = &AsBuiltJoints{d: d}
	return d
}

// Root returns the root component. The root is a distinguished entity:
// it is not an occurrence and is always grounded.
func (d *Design) Root() *Component { return d.root }

// Units returns the design's length unit.
func (d *Design) Units() string { return d.units }

// Occurrences returns the top-level occurrences placed in the root.
func (d *Design) Occurrences() []*Occurrence { return d.occurrences }

// Joints returns the design's joint collection.
func (d *Design) Joints() *Joints { return d.joints }

// AsBuiltJoints returns the design's as-built joint collection.
func (d *Design) AsBuiltJoints() *AsBuiltJoints { return d.asBuiltJoints }

// Component is a reusable definition of bodies that may be instanced by
// multiple occurrences (shared definition, independent placement).
type Component struct {
	Name   string
	Bodies []*Body

	instances int
}

// AddBody appends a body to the component and returns its index.
func (c *Component) AddBody(b *Body) int {
	c.Bodies = append(c.Bodies, b)
	return len(c.Bodies) - 1
}

// Occurrence is a placed instance of a component. Occurrences nest:
// a child occurrence is placed relative to its parent. FullPath is
// maintained by the engine on creation so callers never have to probe
// for it.
type Occurrence struct {
	Name      string
	FullPath  string
	Component *Component
	Parent    *Occurrence // nil when placed directly in the root
	Transform sdf.M44
	Grounded  bool
	Visible   bool

	children []*Occurrence
}

// Children returns the occurrences nested under this occurrence.
func (o *Occurrence) Children() []*Occurrence { return o.children }

// WorldTransform returns the occurrence's placement in root coordinates,
// the product of every transform on the path from the root.
func (o *Occurrence) WorldTransform() sdf.M44 {
	if o.Parent == nil {
		return o.Transform
	}
	return o.Parent.WorldTransform().Mul(o.Transform)
}

// AddComponent creates a new component and places one occurrence of it
// under parent (or directly in the root when parent is nil). An empty
// name gets an engine-assigned one.
func (d *Design) AddComponent(parent *Occurrence, name string, transform sdf.M44) *Occurrence {
	d.compSeq++
	if name == "" {
		name = fmt.Sprintf("Component%d", d.compSeq)
	}
	comp := &Component{Name: name}
	return d.AddOccurrence(parent, comp, transform)
}

// AddOccurrence places a new instance of an existing component under
// parent (or directly in the root when parent is nil).
func (d *Design) AddOccurrence(parent *Occurrence, comp *Component, transform sdf.M44) *Occurrence {
	comp.instances++
	occ := &Occurrence{
		Name:      fmt.Sprintf("%s:%d", comp.Name, comp.instances),
		Component: comp,
		Parent:    parent,
		Transform: transform,
		Visible:   true,
	}
	if parent == nil {
		occ.FullPath = occ.Name
		d.occurrences = append(d.occurrences, occ)
	} else {
		occ.FullPath = parent.FullPath + "+" + occ.Name
		parent.children = append(parent.children, occ)
	}
	return occ
}

// nextJointName assigns an engine joint name such as "Revolute3". The
// counter is shared between full and as-built joints.
func (d *Design) nextJointName(t MotionType) string {
	d.jointSeq++
	return fmt.Sprintf("%s%d", t.Label(), d.jointSeq)
}
