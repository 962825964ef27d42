package assembly

import (
	"strings"

	"github.com/viselabs/vise/internal/design"
)

// ParseAxis maps a direction string onto an engine axis. Matching is
// case-insensitive; an empty string defaults to the z axis.
func ParseAxis(s string) (design.Axis, error) {
	switch strings.ToLower(s) {
	case "", "z":
		return design.AxisZ, nil
	case "x":
		return design.AxisX, nil
	case "y":
		return design.AxisY, nil
	default:
		return 0, Validationf("invalid joint direction %q: use one of x, y, z", s)
	}
}

// ParseKeyPoint maps a key point string onto an engine key point kind.
// Matching is case-insensitive; an empty string defaults to center.
func ParseKeyPoint(s string) (design.KeyPoint, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return design.KeyPointCenter, nil
	case "start":
		return design.KeyPointStart, nil
	case "end":
		return design.KeyPointEnd, nil
	case "middle":
		return design.KeyPointMiddle, nil
	default:
		return 0, Validationf("invalid key point %q: use one of center, start, end, middle", s)
	}
}

// ParseMotionType maps a joint type string onto a motion kind. Input is
// normalized first: lowercased, with spaces and dashes folded to
// underscores, so "Pin-Slot" and "pin slot" both mean pin_slot. An
// empty string defaults to rigid.
func ParseMotionType(s string) (design.MotionType, error) {
	key := strings.ToLower(s)
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	switch key {
	case "", "rigid":
		return design.MotionRigid, nil
	case "revolute":
		return design.MotionRevolute, nil
	case "slider":
		return design.MotionSlider, nil
	case "cylindrical":
		return design.MotionCylindrical, nil
	case "ball":
		return design.MotionBall, nil
	case "planar":
		return design.MotionPlanar, nil
	case "pin_slot":
		return design.MotionPinSlot, nil
	default:
		return 0, Validationf("invalid joint type %q: use one of rigid, revolute, slider, cylindrical, ball, planar, pin_slot", s)
	}
}
