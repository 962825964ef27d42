package assembly

import (
	"github.com/viselabs/vise/internal/design"
)

// ApplyMotion configures the degrees of freedom of an in-progress joint
// input. The switch is exhaustive over the closed motion set; axis is
// ignored for kinds that take none. An engine rejection is wrapped and
// the input's motion stays unconfigured, so a later commit still fails.
func ApplyMotion(in design.MotionInput, t design.MotionType, axis design.Axis) error {
	var err error
	switch t {
	case design.MotionRigid:
		err = in.SetRigidMotion()
	case design.MotionRevolute:
		err = in.SetRevoluteMotion(axis)
	case design.MotionSlider:
		err = in.SetSliderMotion(axis)
	case design.MotionCylindrical:
		err = in.SetCylindricalMotion(axis)
	case design.MotionBall:
		err = in.SetBallMotion()
	case design.MotionPlanar:
		err = in.SetPlanarMotion(axis)
	case design.MotionPinSlot:
		// The one resolved axis serves as both the slot and the pin
		// direction. Known limitation: the two directions cannot be
		// chosen independently through this path.
		err = in.SetPinSlotMotion(axis, axis)
	default:
		return Validationf("unknown joint type %d", int(t))
	}
	if err != nil {
		return EngineWrap(err, "set %s joint motion", t)
	}
	return nil
}
