package slippi

// This file collects the small boolean predicates shared across detectors,
// grounded on original_source/slippistats/stats/common.py. Each predicate
// mirrors its Python counterpart's exact ActionState/flag logic; only the
// signatures are reshaped to take the already-decoded Go structs instead of
// a bare int/flags value.

func actionStateOf(post *PostFrame) ActionState { return ActionState(post.ActionState) }

// isDamaged reports whether post's action state is a generic hitstun
// variant.
func isDamaged(post *PostFrame) bool { return damageRange.contains(actionStateOf(post)) }

// isInHitstun reports the hitstun bitflag, always false on replays recorded
// before the flags block existed (pre-2.0.0).
func isInHitstun(post *PostFrame) bool {
	return post.Extra2 != nil && post.Extra2.Flags.InHitstun()
}

// isInHitlag reports the hitlag bitflag, always false pre-2.0.0.
func isInHitlag(post *PostFrame) bool {
	return post.Extra2 != nil && post.Extra2.Flags.InHitlag()
}

// isFastFalling reports the fast-fall bitflag, always false pre-2.0.0.
func isFastFalling(post *PostFrame) bool {
	return post.Extra2 != nil && post.Extra2.Flags.FastFalling()
}

// isGrabbed reports whether post's action state is a generic grab-capture
// variant.
func isGrabbed(post *PostFrame) bool { return captureRange.contains(actionStateOf(post)) }

// isCmdGrabbed reports whether post's action state is a command-grab
// variant (Falcon's up-B, Kirby's inhale, cargo throw, ice/egg captures,
// etc), excluding the barrel-wait state that otherwise falls in range 1.
func isCmdGrabbed(post *PostFrame) bool {
	s := actionStateOf(post)
	return (commandGrabRange1.contains(s) || commandGrabRange2.contains(s)) && s != barrelWait
}

// barrelWait is Donkey Kong's barrel-cannon-wait state; it falls inside the
// command-grab id range but is not itself a grab.
const barrelWait ActionState = 293

// isTeching reports whether post's action state is a tech (including
// wall/ceiling tech variants outside the main contiguous range).
func isTeching(post *PostFrame) bool {
	s := actionStateOf(post)
	return techRange.contains(s) || s == FlyReflectCeil || s == FlyReflectWall
}

// isDying reports whether post's action state is a death animation, for any
// blast zone.
func isDying(post *PostFrame) bool { return dyingRange.contains(actionStateOf(post)) }

// isDowned reports whether post's action state is "downed" (missed tech).
func isDowned(post *PostFrame) bool { return downRange.contains(actionStateOf(post)) }

// isShielding reports whether post's action state is a shield-holding
// variant.
func isShielding(post *PostFrame) bool { return guardRange.contains(actionStateOf(post)) }

// isShieldBroken reports whether post's action state is a shield-break
// variant.
func isShieldBroken(post *PostFrame) bool { return guardBreakRange.contains(actionStateOf(post)) }

// isDodging reports whether post's action state is a shielded escape
// option: roll, spot dodge, or air dodge.
func isDodging(post *PostFrame) bool { return dodgeRange.contains(actionStateOf(post)) }

// isLedgeAction reports whether post's action state is any ledge-hang or
// ledge-option variant.
func isLedgeAction(post *PostFrame) bool { return ledgeActionRange.contains(actionStateOf(post)) }

// isSpecialFall reports whether post's action state is a "special fall"
// (helpless) variant.
func isSpecialFall(post *PostFrame) bool { return fallSpecialRange.contains(actionStateOf(post)) }

// didLoseStock reports whether curr has fewer stocks than prev.
func didLoseStock(curr, prev *PostFrame) bool {
	if curr == nil || prev == nil {
		return false
	}
	return int(prev.StocksRemaining)-int(curr.StocksRemaining) > 0
}

// isWavedashing reports whether curr's frame is the airdodge-cancel frame
// of a wavedash: the player is in EscapeAir, and one of the preceding three
// frames for this port+leader-or-follower landed in LandFallSpecial.
// frames must be ordered ascending by index and frameIndex must be a valid
// index into frames.
func isWavedashing(post *PostFrame, port int, isFollower bool, frames []Frame, frameIndex int) bool {
	if post == nil || actionStateOf(post) != EscapeAir {
		return false
	}
	for i := 1; i <= 3 && frameIndex-i >= 0; i++ {
		prevPost := characterPost(&frames[frameIndex-i], port, isFollower)
		if prevPost != nil && actionStateOf(prevPost) == LandFallSpecial {
			return true
		}
	}
	return false
}

func characterPost(f *Frame, port int, isFollower bool) *PostFrame {
	if f == nil || f.Ports[port] == nil {
		return nil
	}
	cf := f.Ports[port].Leader
	if isFollower {
		cf = f.Ports[port].Follower
	}
	if cf == nil {
		return nil
	}
	return cf.Post
}

// isUpBLag reports whether the current frame is the first frame of landing
// lag following an up-B ("special fall") recovery move, excluding the
// ordinary air-dodge/jump-squat transitions into the same state.
func isUpBLag(state, prevState ActionState) bool {
	return state == LandFallSpecial &&
		prevState != LandFallSpecial &&
		prevState != KneeBend &&
		prevState != EscapeAir &&
		(prevState <= ControlledJumpStart || prevState >= ControlledJumpEnd)
}

// isAerialLandLag reports whether state is one of the five aerial-landing
// lag states.
func isAerialLandLag(state ActionState) bool {
	return state >= LandingAirN && state <= LandingAirLw
}

// justEnteredState reports whether curr equals target and prev does not.
func justEnteredState(target, curr, prev ActionState) bool {
	return curr == target && prev != target
}

// justExitedState reports whether prev equals target and curr does not.
func justExitedState(target, curr, prev ActionState) bool {
	return prev == target && curr != target
}

// calcDamageTaken returns the percent delta between two consecutive Post
// frames for the same character.
func calcDamageTaken(curr, prev *PostFrame) float32 {
	return curr.Percent - prev.Percent
}

// justTookDamage reports whether curr shows more damage than prev.
func justTookDamage(curr, prev *PostFrame) bool {
	return calcDamageTaken(curr, prev) > 0
}

// justInputLCancel reports whether pre's physical buttons include an
// L-cancel input (L, R, or Z) on this frame. Bit values match the wire
// format's PhysicalButtons field, documented in spec.md's GLOSSARY.
func justInputLCancel(pre *PreFrame) bool {
	const (
		physicalZ = 0x0010
		physicalR = 0x0020
		physicalL = 0x0040
	)
	return pre.ButtonsPhysical&(physicalZ|physicalR|physicalL) != 0
}

// getDeathDirection names the blast zone a death animation's action state
// indicates.
func getDeathDirection(state ActionState) string {
	switch state {
	case 0:
		return "Bottom"
	case 1:
		return "Left"
	case 2:
		return "Right"
	case 3, 4, 5, 6, 7, 8, 9, 10:
		return "Top"
	default:
		return "Invalid action state"
	}
}

// maxDIAngles returns the two directional-influence angles (in degrees)
// that are maximally perpendicular to angle: angle-90, raised by 360 when it
// is below 180, and angle+90, lowered by 360 when it is above 180.
func maxDIAngles(angle float64) [2]float64 {
	a0, a1 := angle-90, angle+90
	if a0 < 180 {
		a0 += 360
	}
	if a1 > 180 {
		a1 -= 360
	}
	return [2]float64{a0, a1}
}
