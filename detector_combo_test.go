package slippi

import "testing"

func TestDetectCombosGroupsIncreasingHits(t *testing.T) {
	mk := func(combo, stocks uint8) *CharacterFrame {
		return &CharacterFrame{Post: &PostFrame{ComboCount: combo, StocksRemaining: stocks}}
	}
	frames := []*CharacterFrame{
		mk(0, 4),
		mk(1, 4),
		mk(2, 4),
		mk(0, 4),
	}
	player := &Player{Frames: frames}
	DetectCombos(player)

	if len(player.Stats.Combos) != 1 {
		t.Fatalf("len(Combos) = %d, want 1", len(player.Stats.Combos))
	}
	c := player.Stats.Combos[0]
	if c.StartFrame != 1 || c.EndFrame != 2 {
		t.Errorf("combo span = [%d,%d], want [1,2]", c.StartFrame, c.EndFrame)
	}
	if c.MoveCount != 2 {
		t.Errorf("MoveCount = %d, want 2", c.MoveCount)
	}
	if c.DidKill {
		t.Error("DidKill should be false: stock count never dropped")
	}
}

func TestDetectCombosMarksKill(t *testing.T) {
	mk := func(combo, stocks uint8) *CharacterFrame {
		return &CharacterFrame{Post: &PostFrame{ComboCount: combo, StocksRemaining: stocks}}
	}
	frames := []*CharacterFrame{
		mk(0, 4),
		mk(1, 4),
		mk(2, 3), // stock lost on this frame: combo closes here and counts as a kill
	}
	player := &Player{Frames: frames}
	DetectCombos(player)

	if len(player.Stats.Combos) != 1 {
		t.Fatalf("len(Combos) = %d, want 1", len(player.Stats.Combos))
	}
	if !player.Stats.Combos[0].DidKill {
		t.Error("DidKill should be true: stock count dropped during the combo span")
	}
}
