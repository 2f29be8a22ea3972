package slippi

import "math"

// JoystickRegion discretizes a stick position into one of the 8 octants, or
// the dead zone, matching original_source/slippistats/stats/common.py's
// JoystickRegion IntEnum. Cardinals are even ordinals, diagonals are odd —
// SDI extraction (detector_takehit.go) depends on that parity.
type JoystickRegion int8

// JoystickRegions
const (
	RegionDeadZone JoystickRegion = -1
	RegionUp       JoystickRegion = 0
	RegionUpRight  JoystickRegion = 1
	RegionRight    JoystickRegion = 2
	RegionDownRight JoystickRegion = 3
	RegionDown     JoystickRegion = 4
	RegionDownLeft JoystickRegion = 5
	RegionLeft     JoystickRegion = 6
	RegionUpLeft   JoystickRegion = 7
)

// deadZoneThreshold is the stick-magnitude threshold below which a stick
// position is reported as RegionDeadZone, per common.py's get_joystick_region.
const deadZoneThreshold = 0.2875

// Stick is a raw analog stick (or c-stick) sample.
type Stick struct {
	X, Y float32
}

// GetJoystickRegion buckets a stick sample into one of the 8 octants or the
// dead zone, following common.py's cascading if/elif thresholds.
func GetJoystickRegion(s Stick) JoystickRegion {
	x, y := s.X, s.Y
	switch {
	case x >= deadZoneThreshold && y >= deadZoneThreshold:
		return RegionUpRight
	case x >= deadZoneThreshold && y <= -deadZoneThreshold:
		return RegionDownRight
	case x <= -deadZoneThreshold && y >= deadZoneThreshold:
		return RegionUpLeft
	case x <= -deadZoneThreshold && y <= -deadZoneThreshold:
		return RegionDownLeft
	case x >= deadZoneThreshold:
		return RegionRight
	case x <= -deadZoneThreshold:
		return RegionLeft
	case y >= deadZoneThreshold:
		return RegionUp
	case y <= -deadZoneThreshold:
		return RegionDown
	default:
		return RegionDeadZone
	}
}

// isCardinal reports whether r is one of Up/Right/Down/Left (even ordinal),
// per spec.md §4.3.4's SDI rule ("the previous was a cardinal (even enum
// ordinal)").
func (r JoystickRegion) isCardinal() bool {
	return r != RegionDeadZone && int(r)%2 == 0
}

// isDiagonal reports whether r is one of the four diagonal octants (odd
// ordinal).
func (r JoystickRegion) isDiagonal() bool {
	return r != RegionDeadZone && int(r)%2 == 1
}

// getAngle returns atan2(y, x) in degrees, matching common.py's get_angle.
func getAngle(s Stick) float64 {
	return math.Atan2(float64(s.Y), float64(s.X)) * 180 / math.Pi
}

func getTotalVelocity(x, y float32) float64 {
	return math.Hypot(float64(x), float64(y))
}
