package slippi

// DetectShieldDrops appends one ShieldDropData whenever player transitions
// directly from a shielding state into Pass (dropping through a platform),
// grounded on
// original_source/slippistats/stats/stats_computer.py's shield_drop_compute.
// The predecessor set follows this module's Guard/GuardOn/GuardReflect/
// GuardSetOff naming rather than the Python source's GUARD/GUARD_ON/
// GUARD_REFLECT/GUARD_DAMAGE, per the matching Open Question decision
// recorded in DESIGN.md.
func DetectShieldDrops(player *Player, stage Stage) {
	frames := player.Frames

	for i := 1; i < len(frames); i++ {
		cur := frames[i]
		prev := frames[i-1]
		if cur == nil || cur.Post == nil || prev == nil || prev.Post == nil {
			continue
		}

		if actionStateOf(cur.Post) != Pass {
			continue
		}

		prevState := actionStateOf(prev.Post)
		wasShielding := prevState == GuardOn || prevState == Guard ||
			prevState == GuardReflect || prevState == GuardSetOff
		if !wasShielding {
			continue
		}

		var groundID uint16
		if cur.Post.Extra2 != nil {
			groundID = cur.Post.Extra2.LastGroundID
		}
		ground, _ := GetGround(stage, groundID)

		player.Stats.ShieldDrops = append(player.Stats.ShieldDrops, ShieldDropData{
			FrameIndex: i,
			Position:   ground,
		})
	}
}
