package slippi

const (
	physicalButtonZ = 0x0010
	physicalButtonR = 0x0020
	physicalButtonL = 0x0040
)

func physicalHeld(pre *PreFrame, mask uint16) bool {
	return pre != nil && pre.ButtonsPhysical&mask != 0
}

// DetectWavedashes appends one WavedashData for every waveland/wavedash
// performed by player, grounded on
// original_source/slippistats/stats/stats_computer.py's wavedash_compute.
func DetectWavedashes(player *Player) {
	frames := player.Frames
	for i := 1; i < len(frames); i++ {
		cur := frames[i]
		prev := frames[i-1]
		if cur == nil || cur.Post == nil || cur.Pre == nil || prev == nil || prev.Post == nil {
			continue
		}
		if actionStateOf(cur.Post) != LandFallSpecial {
			continue
		}
		if actionStateOf(prev.Post) == LandFallSpecial {
			continue
		}

		for j := 0; j <= 5 && i-j >= 0; j++ {
			past := frames[i-j]
			if past == nil || past.Pre == nil {
				continue
			}
			if physicalHeld(past.Pre, physicalButtonR) || physicalHeld(past.Pre, physicalButtonL) {
				angle, direction := wavedashAngleDirection(cur.Pre.Joystick)
				wd := WavedashData{
					FrameIndex:     i,
					Angle:          &angle,
					Direction:      direction,
					RFrame:         0,
					AirdodgeFrames: j,
					Waveland:       true,
				}

				for k := 0; k <= 5 && i-j-k >= 0; k++ {
					past2 := frames[i-j-k]
					if past2 != nil && past2.Post != nil && actionStateOf(past2.Post) == KneeBend {
						wd.RFrame = k
						wd.Waveland = false
						break
					}
				}

				player.Stats.Wavedashes = append(player.Stats.Wavedashes, wd)
				break
			}
		}
	}
}
