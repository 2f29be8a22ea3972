package slippi

// Command enumerates the command bytes of Slippi events (spec.md §3.3).
type Command byte

// Commands
const (
	EventPayloads Command = 0x35
	GameStart     Command = 0x36
	PreFrameUpdate Command = 0x37
	PostFrameUpdate Command = 0x38
	GameEnd       Command = 0x39
	FrameStart    Command = 0x3A
	ItemUpdate    Command = 0x3B
	FrameBookend  Command = 0x3C
	GeckoList     Command = 0x3D
	MessageSplitter Command = 0x10
)

// PlayerType enumerates the slot occupant kinds in the Start record.
type PlayerType uint8

// PlayerTypes
const (
	Human PlayerType = iota
	CPU
	Demo
	EmptySlot
)

// TeamShade enumerates the coloration changes for multiples of the same
// character on the same team.
type TeamShade uint8

// TeamShades
const (
	ShadeNormal TeamShade = iota
	ShadeLight
	ShadeDark
)

// TeamColor enumerates the possible team colors.
type TeamColor uint8

// TeamColors
const (
	TeamRed TeamColor = iota
	TeamBlue
	TeamGreen
)

// UCFState enumerates the three states a UCF controller-fix toggle can be
// in. original_source/slippi/event.py models this as a 3-valued enum
// (Off/UCF/Arduino), richer than spec.md's bare {dashback, shield_drop}
// toggle wording; kept since it costs nothing extra (see DESIGN.md).
type UCFState uint32

// UCFStates
const (
	UCFOff UCFState = iota
	UCFOn
	UCFArduino
)

// UCFToggles holds a player's dashback and shield-drop controller-fix
// settings.
type UCFToggles struct {
	DashBack   UCFState
	ShieldDrop UCFState
}

// ItemSpawnRate enumerates the item-spawn-frequency setting of a match.
type ItemSpawnRate int8

// ItemSpawnRates
const (
	ItemsVeryLow ItemSpawnRate = iota
	ItemsLow
	ItemsMedium
	ItemsHigh
	ItemsVeryHigh
	Items5
	Items6
	Items7
	Items8
	ItemsOff ItemSpawnRate = -1
)

// Language enumerates the in-game text language setting.
type Language uint8

// Languages
const (
	LanguageJapanese Language = iota
	LanguageEnglish
)

// GameEndMethod enumerates how a match concluded.
type GameEndMethod uint8

// GameEndMethods
const (
	EndInconclusive GameEndMethod = 0 // obsoleted 2.0.0
	EndTime         GameEndMethod = 1
	EndGame         GameEndMethod = 2
	EndConclusive   GameEndMethod = 3 // obsoleted 2.0.0
	EndNoContest    GameEndMethod = 7
)

// LCancelStatus enumerates whether, and how, an aerial landing was
// L-cancelled.
type LCancelStatus uint8

// LCancelStatuses
const (
	LCancelNotApplicable LCancelStatus = iota
	LCancelSuccess
	LCancelFailure
)

// HurtboxStatus enumerates a character's hurtbox collision state.
type HurtboxStatus uint8

// HurtboxStatuses
const (
	Vulnerable HurtboxStatus = iota
	Invulnerable
	Intangible
)

// FacingDirection enumerates a character's horizontal facing, matching the
// sign of the wire format's facing-direction float.
type FacingDirection int8

// FacingDirections
const (
	FacingLeft  FacingDirection = -1
	FacingRight FacingDirection = 1
)

// DirectionFromFloat returns the FacingDirection encoded in a raw wire-format facing
// float, which is always exactly -1.0 or 1.0.
func DirectionFromFloat(f float32) FacingDirection {
	if f < 0 {
		return FacingLeft
	}
	return FacingRight
}

// Attack enumerates the aerial moves relevant to the L-cancel detector. The
// raw wire format carries a wider "last hitting attack id" space than this;
// spec.md only names the five aerials by move name for L-cancel output, so
// this enum covers exactly that set plus Unknown for everything else.
type Attack uint8

// Attacks
const (
	AttackUnknown Attack = iota
	AttackNair
	AttackFair
	AttackBair
	AttackUair
	AttackDair
)

func (a Attack) String() string {
	switch a {
	case AttackNair:
		return "NAIR"
	case AttackFair:
		return "FAIR"
	case AttackBair:
		return "BAIR"
	case AttackUair:
		return "UAIR"
	case AttackDair:
		return "DAIR"
	default:
		return "UNKNOWN"
	}
}

// MatchType enumerates the kind of match a replay's match id encodes.
type MatchType uint8

// MatchTypes
const (
	MatchOffline MatchType = iota
	MatchRanked
	MatchUnranked
	MatchDirect
	MatchOther
)

// matchTypeFromChar decodes the 6th character of a replay's match id
// (spec.md §3.4: "its 6th character encodes the match type").
func matchTypeFromChar(c byte) MatchType {
	switch c {
	case 'r':
		return MatchRanked
	case 'u':
		return MatchUnranked
	case 'd':
		return MatchDirect
	default:
		return MatchOther
	}
}
