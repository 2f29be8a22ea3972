package slippi

import "testing"

func TestFindValidSDICardinalToAnyAlwaysCounts(t *testing.T) {
	hit := &TakeHitData{StickRegionsDuringHitlag: []JoystickRegion{RegionUp, RegionUpRight}}
	hit.findValidSDI()
	if len(hit.SDIInputs) != 1 {
		t.Fatalf("len(SDIInputs) = %d, want 1: a cardinal-to-any transition always counts", len(hit.SDIInputs))
	}
}

func TestFindValidSDIDiagonalToOppositeQuadrantCounts(t *testing.T) {
	// RegionUpRight(1) -> RegionDownLeft(5): a diagonal-to-diagonal move, counts.
	hit := &TakeHitData{StickRegionsDuringHitlag: []JoystickRegion{RegionUpRight, RegionDownLeft}}
	hit.findValidSDI()
	if len(hit.SDIInputs) != 1 {
		t.Errorf("len(SDIInputs) = %d, want 1: crossing into the opposite quadrant should count", len(hit.SDIInputs))
	}
}

func TestFindValidSDIDiagonalToAdjacentCardinalDoesNotCount(t *testing.T) {
	// RegionUpRight(1) -> RegionRight(2): diff = 1, not in [3,7), doesn't count.
	hit := &TakeHitData{StickRegionsDuringHitlag: []JoystickRegion{RegionUpRight, RegionRight}}
	hit.findValidSDI()
	if len(hit.SDIInputs) != 0 {
		t.Errorf("len(SDIInputs) = %d, want 0: an adjacent diagonal-to-cardinal move shouldn't count", len(hit.SDIInputs))
	}
}

func TestFindValidSDIDeadZoneExitAlwaysCounts(t *testing.T) {
	hit := &TakeHitData{StickRegionsDuringHitlag: []JoystickRegion{RegionDeadZone, RegionUp}}
	hit.findValidSDI()
	if len(hit.SDIInputs) != 1 {
		t.Errorf("len(SDIInputs) = %d, want 1: a dead-zone exit always counts", len(hit.SDIInputs))
	}
}
