package slippi

import "testing"

func TestDetectWavedashesFindsRLPress(t *testing.T) {
	mk := func(state ActionState, buttons uint16, x, y float32) *CharacterFrame {
		return &CharacterFrame{
			Pre:  &PreFrame{ButtonsPhysical: buttons, Joystick: Stick{X: x, Y: y}},
			Post: &PostFrame{ActionState: uint16(state)},
		}
	}

	frames := []*CharacterFrame{
		mk(KneeBend, 0, 0, 0),
		mk(KneeBend, physicalButtonR, 0, 0), // R press 2 frames before landing
		mk(ActionState(999), 0, 0, -1),
		mk(LandFallSpecial, 0, 0, -1),
	}

	player := &Player{Frames: frames}
	DetectWavedashes(player)

	if len(player.Stats.Wavedashes) != 1 {
		t.Fatalf("len(Wavedashes) = %d, want 1", len(player.Stats.Wavedashes))
	}
	wd := player.Stats.Wavedashes[0]
	if wd.FrameIndex != 3 {
		t.Errorf("FrameIndex = %d, want 3", wd.FrameIndex)
	}
	if wd.Waveland {
		t.Error("Waveland should be false: a KneeBend precedes the R press")
	}
}

func TestDetectWavedashesNoPressEmitsNothing(t *testing.T) {
	mk := func(state ActionState, buttons uint16) *CharacterFrame {
		return &CharacterFrame{
			Pre:  &PreFrame{ButtonsPhysical: buttons},
			Post: &PostFrame{ActionState: uint16(state)},
		}
	}
	frames := []*CharacterFrame{
		mk(ActionState(999), 0),
		mk(LandFallSpecial, 0),
	}
	player := &Player{Frames: frames}
	DetectWavedashes(player)
	if len(player.Stats.Wavedashes) != 0 {
		t.Errorf("len(Wavedashes) = %d, want 0: no R/L press was ever held", len(player.Stats.Wavedashes))
	}
}
