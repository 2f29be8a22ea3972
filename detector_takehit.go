package slippi

import "math"

// attackFromLastAttackLanded maps a wire-format "last hitting attack id" to
// the Attack enum. The full attack-id space is much larger than the five
// aerials this module names (spec.md only requires aerial identification
// for the L-cancel detector); anything else reports AttackUnknown rather
// than guessing at an unverified id table.
func attackFromLastAttackLanded(id uint8) Attack {
	return AttackUnknown
}

// normalizeAngle wraps a radian angle into (-π, π].
func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// postDIKnockbackAngle computes the post-DI knockback angle (in degrees) and
// the DI efficacy percentage for a hitlag span's raw knockback vector and
// effective DI stick, following spec.md §4.3.4's kb_angle/stick_angle
// decomposition: the stick's component perpendicular to the knockback
// direction rotates the angle by up to 18 degrees, scaled by its own
// square.
func postDIKnockbackAngle(kb, stick Stick) (postAngleDeg, efficacy float64) {
	kbAngle := math.Atan2(float64(kb.Y), float64(kb.X))
	stickAngle := math.Atan2(float64(stick.Y), float64(stick.X))

	diff := normalizeAngle(kbAngle - stickAngle)
	stickMagnitude := math.Hypot(float64(stick.X), float64(stick.Y))
	perp := math.Sin(diff) * stickMagnitude

	offsetDeg := math.Min(18, perp*perp*18)
	if diff > -math.Pi && diff < 0 {
		offsetDeg = -offsetDeg
	}

	origAngleDeg := kbAngle * 180 / math.Pi
	postAngleDeg = origAngleDeg - offsetDeg

	efficacy = math.Min(100, math.Abs(postAngleDeg-origAngleDeg)/18*100)
	efficacy = math.Trunc(efficacy*100) / 100
	return postAngleDeg, efficacy
}

// DetectTakeHits appends one TakeHitData per hitlag span player was put
// into by opponent, grounded on
// original_source/slippistats/stats/stats_computer.py's take_hit_compute.
// Requires recorder version >= 2.0.0 for any output, and >= 3.5.0 for
// knockback/DI fields (spec.md §4.1.5's version gating already reflects
// this: Extra2/Extra4 are nil below those versions).
func DetectTakeHits(player, opponent *Player) {
	frames := player.Frames
	var hit *TakeHitData

	for i := 1; i < len(frames); i++ {
		cur := frames[i]
		prev := frames[i-1]
		if cur == nil || cur.Post == nil || prev == nil || prev.Post == nil {
			continue
		}
		var oppPost *PostFrame
		if i < len(opponent.Frames) && opponent.Frames[i] != nil {
			oppPost = opponent.Frames[i].Post
		}

		inHitlag := isInHitlag(cur.Post) && !isShielding(prev.Post)
		wasInHitlag := isInHitlag(prev.Post) && !isShielding(prev.Post)

		if !inHitlag {
			if wasInHitlag && hit != nil {
				hit.EndPosition = Stick{X: prev.Post.PositionX, Y: prev.Post.PositionY}
				if oppPost != nil {
					hit.LastHitBy = attackFromLastAttackLanded(oppPost.LastAttackLanded)
				}

				effective := Stick{}
				if cur.Pre != nil {
					effective = cur.Pre.Joystick
				}
				switch GetJoystickRegion(effective) {
				case RegionUp, RegionDown:
					effective.X = 0
				case RegionLeft, RegionRight:
					effective.Y = 0
				case RegionDeadZone:
					effective = Stick{}
				}
				hit.DIStickPosition = effective

				if hit.KnockbackAngle != nil {
					postAngle, efficacy := postDIKnockbackAngle(hit.KnockbackVelocity, effective)
					hit.FinalKnockbackAngle = &postAngle
					hit.DIEfficacy = &efficacy

					kbMagnitude := getTotalVelocity(hit.KnockbackVelocity.X, hit.KnockbackVelocity.Y)
					rad := postAngle * math.Pi / 180
					hit.FinalKnockbackVelocity = Stick{
						X: float32(kbMagnitude * math.Cos(rad)),
						Y: float32(kbMagnitude * math.Sin(rad)),
					}
				}

				var cstickRegion JoystickRegion = RegionDeadZone
				if cur.Pre != nil {
					cstickRegion = GetJoystickRegion(cur.Pre.CStick)
				}
				if cstickRegion != RegionDeadZone {
					hit.ASDI = cstickRegion
				} else if cur.Pre != nil {
					hit.ASDI = GetJoystickRegion(cur.Pre.Joystick)
				}

				hit.findValidSDI()
				player.Stats.TakeHits = append(player.Stats.TakeHits, *hit)
				hit = nil
			}
			continue
		}

		if !wasInHitlag && justTookDamage(cur.Post, prev.Post) {
			hit = &TakeHitData{
				FrameIndex:     i,
				StateBeforeHit: actionStateOf(prev.Post),
				StartPosition:  Stick{X: cur.Post.PositionX, Y: cur.Post.PositionY},
				Percent:        cur.Post.Percent,
				Grounded:       cur.Post.Extra2 == nil || !cur.Post.Extra2.IsAirborne,
			}
			if cur.Post.Extra4 != nil {
				hit.KnockbackVelocity = cur.Post.Extra4.KnockbackVelocity
				angle := getAngle(hit.KnockbackVelocity)
				hit.KnockbackAngle = &angle
			}
			hit.CrouchCancel = squatRange.start <= actionStateOf(prev.Post) && actionStateOf(prev.Post) < squatRange.end
		}

		if hit != nil {
			region := RegionDeadZone
			if cur.Pre != nil {
				region = GetJoystickRegion(cur.Pre.Joystick)
			}
			hit.StickRegionsDuringHitlag = append(hit.StickRegionsDuringHitlag, region)
			hit.HitlagFrames++
		}
	}
}
