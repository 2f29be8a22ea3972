package slippi

import "testing"

func TestGetTechTypeInPlace(t *testing.T) {
	got, ok := getTechType(Passive, FacingRight, Stick{})
	if !ok || got != TechInPlace {
		t.Errorf("getTechType(Passive) = (%v, %v), want (TechInPlace, true)", got, ok)
	}
}

func TestGetTechTypeDirectional(t *testing.T) {
	cases := []struct {
		state     ActionState
		direction FacingDirection
		want      TechType
	}{
		{PassiveStandF, FacingRight, TechRight},
		{PassiveStandF, FacingLeft, TechLeft},
		{PassiveStandB, FacingRight, TechLeft},
		{PassiveStandB, FacingLeft, TechRight},
	}
	for _, c := range cases {
		got, ok := getTechType(c.state, c.direction, Stick{})
		if !ok || got != c.want {
			t.Errorf("getTechType(%v, %v) = (%v, %v), want %v", c.state, c.direction, got, ok, c.want)
		}
	}
}

func TestGetTechTypeMissedTechRollDirection(t *testing.T) {
	cases := []struct {
		stick Stick
		want  TechType
	}{
		{Stick{X: 1}, MissedTechRollRight},
		{Stick{X: -1}, MissedTechRollLeft},
		{Stick{X: 0}, MissedTech},
	}
	for _, c := range cases {
		got, ok := getTechType(DownBoundD, FacingRight, c.stick)
		if !ok || got != c.want {
			t.Errorf("getTechType(DownBoundD, stick=%v) = (%v, %v), want %v", c.stick, got, ok, c.want)
		}
	}
}

func TestGetTechTypeUnknownState(t *testing.T) {
	if _, ok := getTechType(ActionState(1), FacingRight, Stick{}); ok {
		t.Error("getTechType should report false for a non-tech action state")
	}
}
