package slippi

// attackFromAerialState maps an aerial-attack (or aerial-landing-lag)
// action state to the named Attack it represents, grounded on
// original_source/slippistats/stats/stat_types.py's LCancelData.__init__
// move-mapping match statement.
func attackFromAerialState(state ActionState) Attack {
	switch state {
	case AttackAirN, LandingAirN:
		return AttackNair
	case AttackAirF, LandingAirF:
		return AttackFair
	case AttackAirB, LandingAirB:
		return AttackBair
	case AttackAirHi, LandingAirHi:
		return AttackUair
	case AttackAirLw, LandingAirLw:
		return AttackDair
	default:
		return AttackUnknown
	}
}

// DetectLCancels appends one LCancelData per aerial landing to player's
// stats, grounded on
// original_source/slippistats/stats/stats_computer.py's l_cancel_compute.
// Requires recorder version >= 2.0.0 (the LCancelStatus field is nil
// below that, via Post.Extra2).
func DetectLCancels(player *Player, stage Stage) {
	frames := player.Frames

	for i := range frames {
		cur := frames[i]
		if cur == nil || cur.Post == nil || cur.Post.Extra2 == nil {
			continue
		}
		status := cur.Post.Extra2.LCancelStatus
		if status == LCancelNotApplicable {
			continue
		}

		// Backward scan: 15 frames, ignoring hitlag. Each hitlag frame
		// encountered extends the window by one frame rather than cutting
		// the scan short, per spec.md §4.3.5.
		var triggerInputFrame *int
		duringHitlag := false
		limit := 15
		hitlagSeen := 0
		for j := 0; j < limit && i-j >= 0; j++ {
			f := frames[i-j]
			if f != nil && f.Post != nil && isInHitlag(f.Post) {
				hitlagSeen++
				limit = 15 + hitlagSeen
			}
			if i-j-1 >= 0 && justInputLCancelEdge(frames[i-j], frames[i-j-1]) {
				v := -j
				triggerInputFrame = &v
				duringHitlag = f != nil && f.Post != nil && isInHitlag(f.Post)
				break
			}
		}

		// No backward match on a Failure: scan forward up to 5 frames to
		// attribute a late press.
		if triggerInputFrame == nil && status == LCancelFailure {
			for j := 1; j <= 5; j++ {
				if i+j < len(frames) && i+j-1 >= 0 && justInputLCancelEdge(frames[i+j], frames[i+j-1]) {
					v := j
					triggerInputFrame = &v
					f := frames[i+j]
					duringHitlag = f != nil && f.Post != nil && isInHitlag(f.Post)
					break
				}
			}
		}

		var move ActionState
		fastfall := false
		if i-1 >= 0 && frames[i-1] != nil && frames[i-1].Post != nil {
			move = actionStateOf(frames[i-1].Post)
			fastfall = isFastFalling(frames[i-1].Post)
		}

		ground, _ := GetGround(stage, cur.Post.Extra2.LastGroundID)

		player.Stats.LCancels = append(player.Stats.LCancels, LCancelData{
			FrameIndex:        i,
			LCancel:           status == LCancelSuccess,
			Move:              attackFromAerialState(move),
			TriggerInputFrame: triggerInputFrame,
			Position:          ground,
			DuringHitlag:      duringHitlag,
			Fastfall:          fastfall,
		})
	}
}

// justInputLCancelEdge reports whether cur is the first frame an L-cancel
// button (L, R, or Z) transitioned from unpressed to pressed, comparing
// against prev's buttons. Delegates the button test itself to predicates.go's
// justInputLCancel so the button set has one definition.
func justInputLCancelEdge(cur, prev *CharacterFrame) bool {
	if cur == nil || cur.Pre == nil || prev == nil || prev.Pre == nil {
		return false
	}
	return justInputLCancel(cur.Pre) && !justInputLCancel(prev.Pre)
}
