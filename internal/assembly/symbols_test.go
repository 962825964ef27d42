package assembly_test

import (
	"testing"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

func TestParseAxis(t *testing.T) {
	cases := []struct {
		in   string
		want design.Axis
	}{
		{"", design.AxisZ},
		{"z", design.AxisZ},
		{"Z", design.AxisZ},
		{"x", design.AxisX},
		{"Y", design.AxisY},
	}
	for _, c := range cases {
		got, err := assembly.ParseAxis(c.in)
		if err != nil {
			t.Errorf("ParseAxis(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	_, err := assembly.ParseAxis("w")
	wantCode(t, err, assembly.CodeValidation)
}

func TestParseKeyPoint(t *testing.T) {
	cases := []struct {
		in   string
		want design.KeyPoint
	}{
		{"", design.KeyPointCenter},
		{"center", design.KeyPointCenter},
		{"Start", design.KeyPointStart},
		{"end", design.KeyPointEnd},
		{"MIDDLE", design.KeyPointMiddle},
	}
	for _, c := range cases {
		got, err := assembly.ParseKeyPoint(c.in)
		if err != nil {
			t.Errorf("ParseKeyPoint(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseKeyPoint(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	_, err := assembly.ParseKeyPoint("corner")
	wantCode(t, err, assembly.CodeValidation)
}

func TestParseMotionType(t *testing.T) {
	cases := []struct {
		in   string
		want design.MotionType
	}{
		{"", design.MotionRigid},
		{"rigid", design.MotionRigid},
		{"Revolute", design.MotionRevolute},
		{"slider", design.MotionSlider},
		{"cylindrical", design.MotionCylindrical},
		{"ball", design.MotionBall},
		{"planar", design.MotionPlanar},
		{"pin_slot", design.MotionPinSlot},
		{"Pin-Slot", design.MotionPinSlot},
		{"pin slot", design.MotionPinSlot},
	}
	for _, c := range cases {
		got, err := assembly.ParseMotionType(c.in)
		if err != nil {
			t.Errorf("ParseMotionType(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMotionType(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	_, err := assembly.ParseMotionType("hinge")
	wantCode(t, err, assembly.CodeValidation)
}
