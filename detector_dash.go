package slippi

// DetectDashes appends one DashData per dash (marking dash-dance pairs),
// grounded on
// original_source/slippistats/stats/stats_computer.py's dash_compute.
func DetectDashes(player *Player) {
	frames := player.Frames
	var active *DashData

	for i := 2; i < len(frames); i++ {
		cur := frames[i]
		prev := frames[i-1]
		prevPrev := frames[i-2]
		if cur == nil || cur.Post == nil || prev == nil || prev.Post == nil || prevPrev == nil || prevPrev.Post == nil {
			continue
		}

		state := actionStateOf(cur.Post)
		prevState := actionStateOf(prev.Post)
		prevPrevState := actionStateOf(prevPrev.Post)

		if justEnteredState(Dash, state, prevState) {
			direction := "RIGHT"
			if cur.Post.Facing == FacingLeft {
				direction = "LEFT"
			}
			d := DashData{
				FrameIndex: i,
				StartPos:   cur.Post.PositionX,
				Direction:  direction,
			}
			active = &d

			if prevState == Turn && prevPrevState == Dash {
				active.IsDashdance = true
				if n := len(player.Stats.Dashes); n > 0 {
					player.Stats.Dashes[n-1].IsDashdance = true
				}
			}
		}

		if justExitedState(Dash, state, prevState) && active != nil {
			active.EndPos = cur.Post.PositionX
			player.Stats.Dashes = append(player.Stats.Dashes, *active)
			active = nil
		}
	}
}
