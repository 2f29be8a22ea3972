package slippi

import "testing"

func TestGetJoystickRegionDeadZone(t *testing.T) {
	cases := []Stick{{0, 0}, {0.1, 0.1}, {0.28, 0}, {0, -0.28}}
	for _, s := range cases {
		if r := GetJoystickRegion(s); r != RegionDeadZone {
			t.Errorf("GetJoystickRegion(%v) = %v, want RegionDeadZone", s, r)
		}
	}
}

func TestGetJoystickRegionCardinalsAndDiagonals(t *testing.T) {
	cases := []struct {
		s    Stick
		want JoystickRegion
	}{
		{Stick{0, 1}, RegionUp},
		{Stick{1, 0}, RegionRight},
		{Stick{0, -1}, RegionDown},
		{Stick{-1, 0}, RegionLeft},
		{Stick{1, 1}, RegionUpRight},
		{Stick{1, -1}, RegionDownRight},
		{Stick{-1, 1}, RegionUpLeft},
		{Stick{-1, -1}, RegionDownLeft},
	}
	for _, c := range cases {
		if got := GetJoystickRegion(c.s); got != c.want {
			t.Errorf("GetJoystickRegion(%v) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestRegionParity(t *testing.T) {
	cardinals := []JoystickRegion{RegionUp, RegionRight, RegionDown, RegionLeft}
	for _, r := range cardinals {
		if !r.isCardinal() || r.isDiagonal() {
			t.Errorf("%v should be cardinal, not diagonal", r)
		}
	}
	diagonals := []JoystickRegion{RegionUpRight, RegionDownRight, RegionUpLeft, RegionDownLeft}
	for _, r := range diagonals {
		if !r.isDiagonal() || r.isCardinal() {
			t.Errorf("%v should be diagonal, not cardinal", r)
		}
	}
	if RegionDeadZone.isCardinal() || RegionDeadZone.isDiagonal() {
		t.Error("RegionDeadZone should be neither cardinal nor diagonal")
	}
}
