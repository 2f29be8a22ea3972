package slippi

import (
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/jmank88/ubjson"
	"github.com/pkg/errors"
)

// Platform enumerates where a replay was recorded, matching
// original_source/slippistats/metadata.py's Platform enum string values.
type Platform string

// Platforms
const (
	PlatformDolphin Platform = "dolphin"
	PlatformConsole Platform = "console"
	PlatformNetwork Platform = "network"
)

// rawMetadata is the wire-format shape of the trailing metadata object,
// grounded on _examples/ZadenRB-go-slippi/reader.go's Metadata /
// PlayerMetadata / Names structs and their ubjson struct tags.
type rawMetadata struct {
	StartAt     string                       `ubjson:"startAt"`
	LastFrame   int32                        `ubjson:"lastFrame"`
	Players     map[string]rawPlayerMetadata `ubjson:"players"`
	PlayedOn    string                       `ubjson:"playedOn"`
	ConsoleNick string                       `ubjson:"consoleNick"`
}

type rawPlayerMetadata struct {
	Characters map[string]int32 `ubjson:"characters"`
	Names      rawNames         `ubjson:"names"`
}

type rawNames struct {
	Netplay string `ubjson:"netplay"`
	Code    string `ubjson:"code"`
}

// PlayerMetadata is one port's decoded metadata-section entry: per-character
// frame counts (how long each costume/character was played, for the rare
// Zelda/Sheik-transformation or coach-swap case) plus the player's
// self-reported display name and connect code.
type PlayerMetadata struct {
	Characters  map[InGameCharacter]int32
	DisplayName string
	ConnectCode string
}

// Metadata is the decoded trailing metadata object (spec.md §3.8).
type Metadata struct {
	StartAt     time.Time
	Duration    int32
	Platform    Platform
	ConsoleNick string
	Players     map[int]PlayerMetadata
}

// startAtPattern loosens ubjson's startAt string to the handful of
// timestamp shapes recorders have actually emitted: a plain RFC3339
// instant, and the same with a numeric (colonless) UTC offset.
var startAtPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})(Z|[+-]\d{2}:?\d{2})?$`)

func parseStartAt(raw string) (time.Time, error) {
	m := startAtPattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, errors.Errorf("metadata: unrecognized startAt timestamp %q", raw)
	}
	offset := m[2]
	switch {
	case offset == "" || offset == "Z":
		return time.Parse(time.RFC3339, m[1]+"Z")
	case len(offset) == 5: // +HHMM, no colon
		return time.Parse(time.RFC3339, m[1]+offset[:3]+":"+offset[3:])
	default:
		return time.Parse(time.RFC3339, m[1]+offset)
	}
}

// decodeMetadata decodes a ubjson metadata object read from r (positioned at
// the value immediately following the literal "metadata" key) into a
// Metadata. Duration is computed the way metadata.py does:
// 1 + lastFrame - FIRST_FRAME_INDEX, where lastFrame is the metadata's own
// lastFrame value, or reconstructedLastFrame (the highest frame index
// observed while reconstructing frames) when that value is 0.
func decodeMetadata(r io.Reader, reconstructedLastFrame int32) (*Metadata, error) {
	var raw rawMetadata
	if err := ubjson.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "metadata: decode")
	}

	lastFrame := raw.LastFrame
	if lastFrame == 0 {
		lastFrame = reconstructedLastFrame
	}

	md := &Metadata{
		Duration:    1 + lastFrame - FirstFrameIndex,
		Platform:    Platform(raw.PlayedOn),
		ConsoleNick: raw.ConsoleNick,
		Players:     make(map[int]PlayerMetadata, len(raw.Players)),
	}

	if raw.StartAt != "" {
		if t, err := parseStartAt(raw.StartAt); err == nil {
			md.StartAt = t
		}
	}

	for portStr, rp := range raw.Players {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			continue
		}
		chars := make(map[InGameCharacter]int32, len(rp.Characters))
		for cssIDStr, frames := range rp.Characters {
			cssID, err := strconv.Atoi(cssIDStr)
			if err != nil {
				continue
			}
			chars[InGameCharacter(cssID)] = frames
		}
		md.Players[port] = PlayerMetadata{
			Characters:  chars,
			DisplayName: rp.Names.Netplay,
			ConnectCode: rp.Names.Code,
		}
	}

	return md, nil
}
