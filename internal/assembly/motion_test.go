package assembly_test

import (
	"testing"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

func TestApplyMotion_AllKinds(t *testing.T) {
	kinds := []design.MotionType{
		design.MotionRigid,
		design.MotionRevolute,
		design.MotionSlider,
		design.MotionCylindrical,
		design.MotionBall,
		design.MotionPlanar,
		design.MotionPinSlot,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			in := &design.JointInput{}
			if err := assembly.ApplyMotion(in, kind, design.AxisY); err != nil {
				t.Fatalf("ApplyMotion(%s): %v", kind, err)
			}
			m := in.Motion()
			if m == nil {
				t.Fatal("no motion configured")
			}
			if m.Type != kind {
				t.Errorf("motion type = %s, want %s", m.Type, kind)
			}
			if kind.RequiresAxis() && kind != design.MotionPinSlot && m.Axis != design.AxisY {
				t.Errorf("motion axis = %s, want y", m.Axis)
			}
		})
	}
}

func TestApplyMotion_PinSlotReusesAxis(t *testing.T) {
	in := &design.JointInput{}
	if err := assembly.ApplyMotion(in, design.MotionPinSlot, design.AxisX); err != nil {
		t.Fatalf("ApplyMotion: %v", err)
	}
	m := in.Motion()
	if m.SlotAxis != design.AxisX || m.PinAxis != design.AxisX {
		t.Errorf("slot axis = %s, pin axis = %s, want x for both", m.SlotAxis, m.PinAxis)
	}
}

func TestApplyMotion_AsBuiltInput(t *testing.T) {
	in := &design.AsBuiltJointInput{}
	if err := assembly.ApplyMotion(in, design.MotionRevolute, design.AxisZ); err != nil {
		t.Fatalf("ApplyMotion: %v", err)
	}
	if in.Motion().Type != design.MotionRevolute {
		t.Errorf("motion type = %s, want revolute", in.Motion().Type)
	}
}
