package slippi

// DetectTechs appends one TechData per tech/missed-tech span to player's
// stats, grounded on
// original_source/slippistats/stats/stats_computer.py's tech_compute.
// opponent supplies the most-recent-hit attribution and relative position
// used for towards_center/towards_opponent.
func DetectTechs(player, opponent *Player) {
	frames := player.Frames
	var tech *TechData
	var lastState ActionState
	haveLastState := false
	var direction FacingDirection
	var rollStick Stick

	for i := 1; i < len(frames); i++ {
		cur := frames[i]
		prev := frames[i-1]
		if cur == nil || cur.Post == nil || prev == nil || prev.Post == nil {
			continue
		}

		state := actionStateOf(cur.Post)

		curTeching := isTeching(cur.Post) || isDowned(cur.Post)
		wasTeching := isTeching(prev.Post) || isDowned(prev.Post)

		if !curTeching {
			if wasTeching && tech != nil {
				if isDamaged(cur.Post) {
					tech.WasPunished = true
				}
				player.Stats.Techs = append(player.Stats.Techs, *tech)
				tech = nil
				haveLastState = false
			}
			continue
		}

		var oppPost *PostFrame
		if i < len(opponent.Frames) && opponent.Frames[i] != nil {
			oppPost = opponent.Frames[i].Post
		}

		if !wasTeching {
			tech = &TechData{FrameIndex: i, Position: Stick{X: cur.Post.PositionX, Y: cur.Post.PositionY}}
			tech.IsOnPlatform = cur.Post.PositionY > 5
			direction = cur.Post.Facing
			rollStick = Stick{}
			if cur.Pre != nil {
				rollStick = cur.Pre.Joystick
			}
		}

		if haveLastState && state == lastState {
			continue
		}
		lastState = state
		haveLastState = true

		techType, ok := getTechType(state, direction, rollStick)
		if !ok || tech == nil {
			continue
		}

		switch techType {
		case MissedTech:
			tech.IsMissedTech = true
			f := false
			tech.JabReset = &f

		case JabReset:
			t := true
			tech.JabReset = &t

		case TechLeft, MissedTechRollLeft:
			towardsCenter := cur.Post.Facing > 0
			towardsOpponent := false
			if oppPost != nil {
				towardsOpponent = oppPost.PositionX-cur.Post.PositionX > 0
			}
			tech.TowardsCenter = &towardsCenter
			tech.TowardsOpponent = &towardsOpponent

		case TechRight, MissedTechRollRight:
			towardsCenter := cur.Post.Facing <= 0
			towardsOpponent := false
			if oppPost != nil {
				towardsOpponent = oppPost.PositionX-cur.Post.PositionX <= 0
			}
			tech.TowardsCenter = &towardsCenter
			tech.TowardsOpponent = &towardsOpponent
		}

		tech.TechType = techType
	}
}
