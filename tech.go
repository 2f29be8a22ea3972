package slippi

// TechType enumerates the ways a hard-knockdown tech attempt can resolve,
// grounded on original_source/slippistats/stats/common.py's TechType enum.
// Unlike that source, a missed tech is split into MissedTechRollLeft and
// MissedTechRollRight (generic MissedTech remains for the non-rolling
// missed-tech-in-place case) — spec.md's seed scenarios name a directional
// missed-tech-roll outcome explicitly, so getTechType resolves the
// direction from the joystick input sampled at the missed-tech state's
// first frame (see DESIGN.md's Open Question decision).
type TechType uint8

// TechTypes
const (
	TechInPlace TechType = iota
	TechLeft
	TechRight
	GetUpAttack
	MissedTech
	MissedTechRollLeft
	MissedTechRollRight
	WallTech
	MissedWallTech
	WallJumpTech
	CeilingTech
	MissedCeilingTech
	JabReset
)

func (t TechType) String() string {
	switch t {
	case TechInPlace:
		return "TECH_IN_PLACE"
	case TechLeft:
		return "TECH_LEFT"
	case TechRight:
		return "TECH_RIGHT"
	case GetUpAttack:
		return "GET_UP_ATTACK"
	case MissedTech:
		return "MISSED_TECH"
	case MissedTechRollLeft:
		return "MISSED_TECH_ROLL_LEFT"
	case MissedTechRollRight:
		return "MISSED_TECH_ROLL_RIGHT"
	case WallTech:
		return "WALL_TECH"
	case MissedWallTech:
		return "MISSED_WALL_TECH"
	case WallJumpTech:
		return "WALL_JUMP_TECH"
	case CeilingTech:
		return "CEILING_TECH"
	case MissedCeilingTech:
		return "MISSED_CEILING_TECH"
	case JabReset:
		return "JAB_RESET"
	default:
		return "UNKNOWN"
	}
}

// getTechType classifies a tech/missed-tech action state. direction is the
// character's FacingDirection captured at the tech's start frame (spec.md's
// Open Question: tech direction is read once at tech-start, not re-sampled
// on every state change). rollStick is the joystick sample on the missed
// tech's first frame, used only to pick MissedTechRollLeft/Right over the
// generic MissedTech; pass a zero Stick if unavailable.
func getTechType(state ActionState, direction FacingDirection, rollStick Stick) (TechType, bool) {
	switch state {
	case Passive, DownStandU, DownStandD:
		return TechInPlace, true

	case PassiveStandF, DownFowardU, DownFowardD:
		if direction > 0 {
			return TechRight, true
		}
		return TechLeft, true

	case PassiveStandB, DownBackU, DownBackD:
		if direction > 0 {
			return TechLeft, true
		}
		return TechRight, true

	case DownAttackU, DownAttackD:
		return GetUpAttack, true

	case DownBoundU, DownBoundD, DownWaitD, DownWaitU:
		switch {
		case rollStick.X >= deadZoneThreshold:
			return MissedTechRollRight, true
		case rollStick.X <= -deadZoneThreshold:
			return MissedTechRollLeft, true
		default:
			return MissedTech, true
		}

	case DownDamageU, DownDamageD:
		return JabReset, true

	case PassiveWall:
		return WallTech, true

	case PassiveWallJump:
		return WallJumpTech, true

	case PassiveCeil:
		return CeilingTech, true

	default:
		return 0, false
	}
}
