package slippi

import (
	"math"
	"testing"
)

func TestPostDIKnockbackAngleParallelStickDoesNotRotate(t *testing.T) {
	post, efficacy := postDIKnockbackAngle(Stick{X: 1, Y: 0}, Stick{X: 1, Y: 0})
	if post != 0 {
		t.Errorf("post = %v, want 0: a stick parallel to the knockback vector shouldn't rotate it", post)
	}
	if efficacy != 0 {
		t.Errorf("efficacy = %v, want 0", efficacy)
	}
}

func TestPostDIKnockbackAnglePerpendicularStickMaximizesRotation(t *testing.T) {
	post, efficacy := postDIKnockbackAngle(Stick{X: 1, Y: 0}, Stick{X: 0, Y: 1})
	if post != 18 {
		t.Errorf("post = %v, want 18: full-magnitude perpendicular stick should hit the 18-degree cap", post)
	}
	if efficacy != 100 {
		t.Errorf("efficacy = %v, want 100", efficacy)
	}

	post, efficacy = postDIKnockbackAngle(Stick{X: 1, Y: 0}, Stick{X: 0, Y: -1})
	if post != -18 {
		t.Errorf("post = %v, want -18: rotation direction should flip with the opposite perpendicular stick", post)
	}
	if efficacy != 100 {
		t.Errorf("efficacy = %v, want 100", efficacy)
	}
}

func TestDetectTakeHitsPopulatesFinalKnockbackVelocity(t *testing.T) {
	hitlagFlags := StateFlags{0, 1 << 5, 0, 0, 0}

	frame0 := &CharacterFrame{Post: &PostFrame{Percent: 0}}
	frame1 := &CharacterFrame{
		Post: &PostFrame{
			Percent: 10,
			Extra2:  &PostFrameExtra2{Flags: hitlagFlags},
			Extra4:  &PostFrameExtra4{KnockbackVelocity: Stick{X: 1, Y: 0}},
		},
	}
	frame2 := &CharacterFrame{
		Pre:  &PreFrame{Joystick: Stick{X: 0, Y: 1}},
		Post: &PostFrame{Percent: 10, Extra2: &PostFrameExtra2{}},
	}

	player := &Player{Frames: []*CharacterFrame{frame0, frame1, frame2}}
	opponent := &Player{Frames: []*CharacterFrame{nil, nil, nil}}

	DetectTakeHits(player, opponent)

	if len(player.Stats.TakeHits) != 1 {
		t.Fatalf("len(TakeHits) = %d, want 1", len(player.Stats.TakeHits))
	}
	hit := player.Stats.TakeHits[0]

	if hit.DIEfficacy == nil || *hit.DIEfficacy != 100 {
		t.Fatalf("DIEfficacy = %v, want 100", hit.DIEfficacy)
	}
	if hit.FinalKnockbackAngle == nil || *hit.FinalKnockbackAngle != 18 {
		t.Fatalf("FinalKnockbackAngle = %v, want 18", hit.FinalKnockbackAngle)
	}

	wantX := float32(math.Cos(18 * math.Pi / 180))
	wantY := float32(math.Sin(18 * math.Pi / 180))
	if math.Abs(float64(hit.FinalKnockbackVelocity.X-wantX)) > 1e-4 {
		t.Errorf("FinalKnockbackVelocity.X = %v, want %v", hit.FinalKnockbackVelocity.X, wantX)
	}
	if math.Abs(float64(hit.FinalKnockbackVelocity.Y-wantY)) > 1e-4 {
		t.Errorf("FinalKnockbackVelocity.Y = %v, want %v", hit.FinalKnockbackVelocity.Y, wantY)
	}
}
