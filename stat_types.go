package slippi

// This file holds the per-detector result record types, grounded on
// original_source/slippistats/stats/stat_types.py's dataclasses. Each
// detector in detector_*.go appends these to a Player's Stats.

// WavedashData records one wavedash (or waveland, when Waveland is set
// because no jump-squat preceded the airdodge).
type WavedashData struct {
	FrameIndex     int
	Angle          *float64 // degrees, from the landing frame's stick
	Direction      string   // "LEFT", "RIGHT", "DOWN", or ""
	RFrame         int      // frames from the jump-squat to the airdodge input; 0 when no jump-squat was found
	AirdodgeFrames int
	Waveland       bool
}

// wavedashAngleDirection normalizes get_angle's raw atan2 degrees into the
// direction bucket and adjusted angle wavedash_compute's __init__ uses,
// grounded on stat_types.py's WavedashData.__init__.
func wavedashAngleDirection(stick Stick) (angle float64, direction string) {
	angle = getAngle(stick)
	switch {
	case angle < -90 && angle > -180:
		angle += 180
		direction = "LEFT"
	case angle > -90 && angle < 0:
		angle += 90
		direction = "RIGHT"
	case angle == 180 || angle == -180:
		angle = 0
		direction = "LEFT"
	case angle == 0:
		direction = "RIGHT"
	case angle == -90:
		angle = 90
		direction = "DOWN"
	}
	return angle, direction
}

// DashData records one dash (or dash-dance pair) event.
type DashData struct {
	FrameIndex  int
	StartPos    float32
	EndPos      float32
	Direction   string
	IsDashdance bool
}

// Distance returns the horizontal travel distance of the dash.
func (d DashData) Distance() float32 {
	if d.EndPos > d.StartPos {
		return d.EndPos - d.StartPos
	}
	return d.StartPos - d.EndPos
}

// TechData records one tech (successful or missed) event.
type TechData struct {
	FrameIndex       int
	TechType         TechType
	Position         Stick
	IsOnPlatform     bool
	IsMissedTech     bool
	TowardsCenter    *bool
	TowardsOpponent  *bool
	JabReset         *bool
	LastHitBy        Attack
	WasPunished      bool
}

// TakeHitData records one "got hit" event, spanning from the first hitlag
// frame to the last.
type TakeHitData struct {
	FrameIndex               int
	StateBeforeHit           ActionState
	LastHitBy                Attack
	Grounded                 bool
	CrouchCancel             bool
	HitlagFrames             int
	StickRegionsDuringHitlag []JoystickRegion
	SDIInputs                []JoystickRegion
	ASDI                     JoystickRegion
	Percent                  float32
	KnockbackVelocity        Stick
	KnockbackAngle           *float64
	FinalKnockbackVelocity   Stick
	FinalKnockbackAngle      *float64
	StartPosition            Stick
	EndPosition              Stick
	DIStickPosition          Stick
	DIEfficacy               *float64
}

// findValidSDI populates SDIInputs from StickRegionsDuringHitlag, matching
// stat_types.py's TakeHitData.find_valid_sdi: a stick-region change counts
// as an SDI input unless it's the first sample, a dead-zone sample, a
// same-region repeat, or a diagonal-to-cardinal transition that doesn't
// cross into the opposite quadrant.
func (t *TakeHitData) findValidSDI() {
	for i, region := range t.StickRegionsDuringHitlag {
		if i == 0 || region == RegionDeadZone {
			continue
		}
		prev := t.StickRegionsDuringHitlag[i-1]
		if region == prev {
			continue
		}
		if prev == RegionDeadZone {
			t.SDIInputs = append(t.SDIInputs, region)
			continue
		}
		if prev.isCardinal() {
			t.SDIInputs = append(t.SDIInputs, region)
			continue
		}
		// prev is diagonal.
		if region.isDiagonal() {
			t.SDIInputs = append(t.SDIInputs, region)
			continue
		}
		if diff := int(region) - int(prev); diff >= 3 && diff < 7 || diff <= -3 && diff > -7 {
			t.SDIInputs = append(t.SDIInputs, region)
		}
	}
}

// LCancelData records one aerial-landing L-cancel attempt.
type LCancelData struct {
	FrameIndex   int
	LCancel      bool
	Move         Attack
	// Slideoff is never set: no source in the retrieved corpus defines the
	// is_slideoff_action condition it's meant to carry (see DESIGN.md).
	Slideoff          bool
	TriggerInputFrame *int
	Position          GroundID
	DuringHitlag      bool
	Fastfall          bool
}

// ShieldDropData records one shield-drop-through-platform event.
type ShieldDropData struct {
	FrameIndex int
	Position   GroundID
}

// ComboData records a combo span: a run of consecutive frames on which the
// player's Post.ComboCount is above zero and does not decrease.
// Supplemented (spec.md's distillation excluded the
// dedicated combo detector present in the original tool), grounded
// conservatively on the already-decoded Post.ComboCount field rather than
// on the filtered-out original combo_computer.py (see DESIGN.md).
type ComboData struct {
	StartFrame  int
	EndFrame    int
	MoveCount   int
	DidKill     bool
	OpeningAt   ActionState
}
