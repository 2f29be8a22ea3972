package slippi

// CharacterFrame is one port-occupant's state for a single game frame,
// combining its Pre and Post records. Unlike
// _examples/ZadenRB-go-slippi/parser.go's FrameUpdates (which stores raw
// event bytes and defers struct decoding until first access), fields here
// are decoded eagerly at construction and the raw bytes are dropped — spec.md
// §9 explicitly permits this simplification for an immutable frame model
// ("decode once at construction and drop the raw bytes — the lazy variant is
// an optimization, not required for correctness").
type CharacterFrame struct {
	Pre  *PreFrame
	Post *PostFrame
}

// PortFrame holds a single port's leader (and, for Ice Climbers, follower)
// character state for one frame.
type PortFrame struct {
	Leader   *CharacterFrame
	Follower *CharacterFrame
}

// Frame is one fully-reconstructed game frame: every port's character state,
// any items active that frame, and the FrameStart/FrameBookend payloads that
// bracket it (nil on recorder versions that predate them).
type Frame struct {
	Index int32
	Ports [4]*PortFrame
	Items []ItemFrame

	Start *FrameStartPayload
	End   *FrameBookendPayload
}

// newFrame allocates an empty Frame for the given index; ports are
// allocated lazily via port() as decoded events for them arrive.
func newFrame(index int32) *Frame {
	return &Frame{Index: index}
}

func (f *Frame) port(i int) *PortFrame {
	if f.Ports[i] == nil {
		f.Ports[i] = &PortFrame{}
	}
	return f.Ports[i]
}
