package slippi

// This file holds the raw wire-format payload structs decoded from each
// event's fixed-size byte buffer. Field offsets are grounded on
// _examples/ZadenRB-go-slippi/reader.go's parsePayload (the teacher's own
// byte-exact layout), cross-checked against
// _examples/original_source/slippistats/event.py's _parse classmethods.
//
// Unlike the teacher, optional (version-gated) fields are not assumed
// present: they're modeled as pointers, populated only when the payload was
// long enough to contain them (spec.md §4.1.5). See decode.go for the
// length-gated reads that populate these structs.

// PlayerSlot describes one of the four port slots in the Start record.
type PlayerSlot struct {
	CharacterCSSID  uint8
	Type            PlayerType
	StartingStocks  uint8
	CostumeID       uint8
	TeamColor       *TeamColor
	UCF             UCFToggles
	Tag             string // shift-JIS decoded nametag, "" if absent
	DisplayName     string
	ConnectCode     string
	SlippiUID       string
}

// Empty reports whether this slot has no occupant.
func (p PlayerSlot) Empty() bool { return p.Type == EmptySlot }

// Start is the decoded GameStart record (spec.md §3.4).
type Start struct {
	SlippiVersion RecorderVersion

	IsTeams       bool
	ItemSpawnRate ItemSpawnRate
	Stage         Stage
	RandomSeed    uint32

	Players [4]PlayerSlot

	// Version-gated (nil when the recording version didn't carry them).
	IsPAL           *bool
	IsFrozenStadium *bool
	MatchID         *string
	MatchType       MatchType
	GameNumber      *uint32
	TiebreakNumber  *uint32
}

// PreFrame is the "Pre" half of a per-port frame record (spec.md §3.5),
// collected just before controller inputs are resolved.
type PreFrame struct {
	ActionState     uint16
	PositionX       float32
	PositionY       float32
	Facing          FacingDirection
	Joystick        Stick
	CStick          Stick
	TriggerAnalog   float32
	ButtonsLogical  uint32
	ButtonsPhysical uint16
	TriggerPhysicalL float32
	TriggerPhysicalR float32
	RandomSeed      uint32

	// Version-gated.
	RawAnalogX *uint8
	Percent    *float32
}

// PostFrameExtra2 is the second cumulative version-gated block of a Post
// frame (spec.md §3.5).
type PostFrameExtra2 struct {
	Flags          StateFlags
	MiscTimer      float32
	IsAirborne     bool
	LastGroundID   uint16
	JumpsRemaining uint8
	LCancelStatus  LCancelStatus
}

// PostFrameExtra4 is the fourth cumulative version-gated block of a Post
// frame.
type PostFrameExtra4 struct {
	SelfAirVelocity   Stick // x: self-induced air speed, y: shared with ground
	KnockbackVelocity Stick
	SelfGroundVelocityX float32
}

// PostFrame is the "Post" half of a per-port frame record, collected after
// collision resolution.
type PostFrame struct {
	Character   InGameCharacter
	ActionState uint16
	PositionX   float32
	PositionY   float32
	Facing      FacingDirection
	Percent     float32

	ShieldSize        float32
	LastAttackLanded  uint8
	ComboCount        uint8
	LastHitByPort     *uint8 // nil if >= 4 (no attacker)
	StocksRemaining   uint8

	// Version-gated, strictly cumulative: a later block is never present
	// unless every earlier one is.
	StateAge        *float32
	Extra2          *PostFrameExtra2
	HurtboxStatus   *HurtboxStatus
	Extra4          *PostFrameExtra4
	HitlagRemaining *float32
	AnimationIndex  *uint32
}

// ItemFrame is a per-frame item record (spec.md §3.6).
type ItemFrame struct {
	TypeID          uint16
	State           uint8
	FacingDirection *FacingDirection // nil if the wire value was 0
	Velocity        Stick
	Position        Stick
	DamageTaken     uint16
	Timer           float32
	SpawnID         uint32

	// Version-gated.
	MissileType      *uint8
	TurnipFace       *uint8
	IsShotLaunched   *bool
	ChargePower      *uint8
	OwnerPort        *int8
}

// FrameStartPayload carries a per-frame random seed, present from recorder
// version 2.2.0 onward.
type FrameStartPayload struct {
	FrameNumber       int32
	RandomSeed        uint32
	SceneFrameCounter uint32
}

// FrameBookendPayload bookends a frame, present from recorder version 3.0.0
// onward.
type FrameBookendPayload struct {
	FrameNumber          int32
	LatestFinalizedFrame int32
}

// End is the decoded GameEnd record (spec.md §3.7).
type End struct {
	Method           GameEndMethod
	LRASInitiatorPort *uint8 // nil if no player initiated LRAS, or not valid (>=4)
	PlayerPlacements *[4]int8 // nil pre-3.13.0
}
