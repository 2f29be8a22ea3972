package slippi

// DetectCombos appends one ComboData per combo span to player's stats.
// Supplemented (SPEC_FULL.md §4.3.7): the original combo_computer.py was
// filtered out of the retrieval pack, so this groups consecutive frames
// where Post.ComboCount is non-decreasing and greater than zero into a
// span, closing it when ComboCount resets to zero or player's stock count
// drops (a kill closes and counts the span).
func DetectCombos(player *Player) {
	frames := player.Frames
	var combo *ComboData
	var lastCount uint8

	closeCombo := func(endIndex int, didKill bool) {
		if combo == nil {
			return
		}
		combo.EndFrame = endIndex
		combo.DidKill = didKill
		player.Stats.Combos = append(player.Stats.Combos, *combo)
		combo = nil
	}

	for i := range frames {
		cur := frames[i]
		if cur == nil || cur.Post == nil {
			continue
		}

		count := cur.Post.ComboCount
		killed := i > 0 && frames[i-1] != nil && frames[i-1].Post != nil && didLoseStock(cur.Post, frames[i-1].Post)

		if count == 0 {
			if combo != nil {
				closeCombo(i-1, killed)
			}
			lastCount = 0
			continue
		}

		if combo == nil {
			combo = &ComboData{
				StartFrame: i,
				OpeningAt:  actionStateOf(cur.Post),
				MoveCount:  1,
			}
		} else if count > lastCount {
			combo.MoveCount++
		} else if count < lastCount {
			closeCombo(i-1, false)
			combo = &ComboData{
				StartFrame: i,
				OpeningAt:  actionStateOf(cur.Post),
				MoveCount:  1,
			}
		}

		lastCount = count

		if killed {
			closeCombo(i, true)
			lastCount = 0
		}
	}

	if combo != nil {
		closeCombo(len(frames)-1, false)
	}
}
