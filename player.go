package slippi

// Stats is the set of per-detector result vectors accumulated for a player.
// Populated by the detector_*.go functions; a bag of empty slices until a
// detector runs.
type Stats struct {
	Wavedashes  []WavedashData
	Dashes      []DashData
	Techs       []TechData
	TakeHits    []TakeHitData
	LCancels    []LCancelData
	ShieldDrops []ShieldDropData
	Combos      []ComboData
}

// Player is one of the two human participants in a replay, grounded on
// original_source/slippistats/stats/computer.py's Player dataclass: it
// aggregates the Start record's slot info, the metadata section's
// self-reported identity, and the reconstructed per-port frame sequence
// that every detector walks.
type Player struct {
	Port        int
	Character   InGameCharacter
	Costume     uint8
	ConnectCode string
	DisplayName string
	DidWin      bool

	// Frames is this player's leader character-frame sequence, one entry
	// per reconstructed Frame, in the same order as Game.Frames.
	Frames []*CharacterFrame
	// FollowerFrames is non-nil only for an Ice Climbers player: the
	// follower (Nana)'s parallel character-frame sequence.
	FollowerFrames []*CharacterFrame

	Stats Stats
}
