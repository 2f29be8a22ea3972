package slippi

import (
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/japanese"
)

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func readInt32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

func decodeShiftJIS(b []byte) string {
	dst := make([]byte, 256)
	n, _, err := japanese.ShiftJIS.NewDecoder().Transform(dst, b, true)
	if err != nil {
		return ""
	}
	return string(nullTerminate(dst[:n]))
}

func nullTerminate(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// boolAt reports whether offset off of b is non-zero, treating a one-byte
// bool field the way the wire format encodes it.
func boolAt(b []byte, off int) bool {
	return b[off] != 0
}

// decodeStart decodes a GameStart payload (spec.md §3.4). Field order and
// offsets are grounded on _examples/ZadenRB-go-slippi/reader.go's
// parsePayload GameStart case; version-gated blocks are read only when the
// payload is long enough to contain them (spec.md §4.1.5), rather than
// assumed present the way the teacher reads them unconditionally.
func decodeStart(b []byte) (*Start, error) {
	if len(b) < 0x14 {
		return nil, errShortPayload
	}

	version := NewRecorderVersion(uint64(b[0]), uint64(b[1]), uint64(b[2]))

	start := &Start{
		SlippiVersion: version,
		IsTeams:       boolAt(b, 0xC),
		ItemSpawnRate: ItemSpawnRate(int8(b[0xF])),
		Stage:         Stage(binary.BigEndian.Uint16(b[0x12:0x14])),
	}

	if len(b) >= 0x140 {
		start.RandomSeed = binary.BigEndian.Uint32(b[0x13C:0x140])
	}

	for i := 0; i < 4; i++ {
		gameInfoOffset := 0x24 * i
		base := 0x64 + gameInfoOffset
		if len(b) < base+0xD {
			break
		}

		slot := PlayerSlot{
			CharacterCSSID: b[base+0x0],
			Type:           PlayerType(b[base+0x1]),
			StartingStocks: b[base+0x2],
			CostumeID:      b[base+0x3],
		}

		start.Players[i] = slot
	}

	// v1.0.0: per-player dashback/shield-drop UCF fix, 8 bytes each.
	if len(b) >= 0x148+0x8*3 {
		for i := 0; i < 4; i++ {
			fixOffset := 0x8 * i
			base := 0x140 + fixOffset
			if len(b) < base+0x8 {
				break
			}
			start.Players[i].UCF = UCFToggles{
				DashBack:   UCFState(binary.BigEndian.Uint32(b[base : base+4])),
				ShieldDrop: UCFState(binary.BigEndian.Uint32(b[base+4 : base+8])),
			}
		}
	}

	// v1.3.0: per-player 16-byte shift-JIS nametag.
	if len(b) >= 0x160+0x10*3+0x10 {
		for i := 0; i < 4; i++ {
			off := 0x160 + 0x10*i
			if len(b) < off+0x10 {
				break
			}
			start.Players[i].Tag = decodeShiftJIS(b[off : off+0x10])
		}
	}

	// v1.5.0: is_pal.
	if len(b) > 0x1A0 {
		v := boolAt(b, 0x1A0)
		start.IsPAL = &v
	}

	// v2.0.0: is_frozen_stadium.
	if len(b) > 0x1A1 {
		v := boolAt(b, 0x1A1)
		start.IsFrozenStadium = &v
	}

	// Display name / connect code / slippi UID appeared alongside the
	// nametag block in practice; gate on the same region the teacher reads
	// them from.
	if len(b) >= 0x1A4+0x1F*3+0x1F {
		for i := 0; i < 4; i++ {
			off := 0x1A4 + 0x1F*i
			if len(b) < off+0x1F {
				break
			}
			start.Players[i].DisplayName = decodeShiftJIS(b[off : off+0x1F])
		}
	}
	if len(b) >= 0x220+0xA*3+0xB {
		for i := 0; i < 4; i++ {
			off := 0x220 + 0xA*i
			if len(b) < off+0xB {
				break
			}
			start.Players[i].ConnectCode = decodeShiftJIS(b[off : off+0xB])
		}
	}

	// v3.14.0: 50-byte match id.
	if len(b) >= 0x2BE+50 {
		raw := string(nullTerminate(b[0x2BE : 0x2BE+50]))
		if raw != "" {
			start.MatchID = &raw
			if len(raw) > 5 {
				start.MatchType = matchTypeFromChar(raw[5])
			}
		} else {
			start.MatchType = MatchOffline
		}
	}
	if len(b) >= 0x2F0+4 {
		v := binary.BigEndian.Uint32(b[0x2F0 : 0x2F0+4])
		start.GameNumber = &v
	}
	if len(b) >= 0x2F4+4 {
		v := binary.BigEndian.Uint32(b[0x2F4 : 0x2F4+4])
		start.TiebreakNumber = &v
	}

	return start, nil
}

// decodeEnd decodes a GameEnd payload (spec.md §3.7).
func decodeEnd(b []byte) (*End, error) {
	if len(b) < 1 {
		return nil, errShortPayload
	}
	end := &End{Method: GameEndMethod(b[0])}

	if len(b) > 1 {
		if b[1] < 4 {
			v := b[1]
			end.LRASInitiatorPort = &v
		}
	}

	if len(b) >= 2+4 {
		var placements [4]int8
		for i := 0; i < 4; i++ {
			placements[i] = int8(b[2+i])
		}
		end.PlayerPlacements = &placements
	}

	return end, nil
}

// decodeFrameStart decodes a FrameStart payload (version >= 2.2).
func decodeFrameStart(b []byte) (int32, *FrameStartPayload, error) {
	if len(b) < 4 {
		return 0, nil, errShortPayload
	}
	frameNumber := readInt32(b[0:4])
	fs := &FrameStartPayload{FrameNumber: frameNumber}
	if len(b) >= 8 {
		fs.RandomSeed = binary.BigEndian.Uint32(b[4:8])
	}
	if len(b) >= 12 {
		fs.SceneFrameCounter = binary.BigEndian.Uint32(b[8:12])
	}
	return frameNumber, fs, nil
}

// decodeFrameBookend decodes a FrameBookend payload (version >= 3.0).
func decodeFrameBookend(b []byte) (int32, *FrameBookendPayload, error) {
	if len(b) < 8 {
		return 0, nil, errShortPayload
	}
	frameNumber := readInt32(b[0:4])
	return frameNumber, &FrameBookendPayload{
		FrameNumber:          frameNumber,
		LatestFinalizedFrame: readInt32(b[4:8]),
	}, nil
}

// preHeader is the (frame, port, is_follower) identifier common to Pre and
// Post events.
type preHeader struct {
	FrameNumber int32
	PlayerIndex uint8
	IsFollower  bool
}

func decodeEventHeader(b []byte) (preHeader, error) {
	if len(b) < 6 {
		return preHeader{}, errShortPayload
	}
	return preHeader{
		FrameNumber: readInt32(b[0:4]),
		PlayerIndex: b[4],
		IsFollower:  boolAt(b, 5),
	}, nil
}

// decodePreFrame decodes a PreFrameUpdate payload's data fields (the header
// has already been stripped by the caller via decodeEventHeader). Offsets
// grounded on _examples/ZadenRB-go-slippi/reader.go's PreFrameUpdate case.
func decodePreFrame(b []byte) (*PreFrame, error) {
	if len(b) < 0x34 {
		return nil, errShortPayload
	}

	pre := &PreFrame{
		RandomSeed:       binary.BigEndian.Uint32(b[0x0:0x4]),
		ActionState:      binary.BigEndian.Uint16(b[0x4:0x6]),
		PositionX:        readFloat32(b[0x6:0xA]),
		PositionY:        readFloat32(b[0xA:0xE]),
		Facing:           DirectionFromFloat(readFloat32(b[0xE:0x12])),
		Joystick:         Stick{X: readFloat32(b[0x12:0x16]), Y: readFloat32(b[0x16:0x1A])},
		CStick:           Stick{X: readFloat32(b[0x1A:0x1E]), Y: readFloat32(b[0x1E:0x22])},
		TriggerAnalog:    readFloat32(b[0x22:0x26]),
		ButtonsLogical:   binary.BigEndian.Uint32(b[0x26:0x2A]),
		ButtonsPhysical:  binary.BigEndian.Uint16(b[0x2A:0x2C]),
		TriggerPhysicalL: readFloat32(b[0x2C:0x30]),
		TriggerPhysicalR: readFloat32(b[0x30:0x34]),
	}

	// v1.2.0: raw analog x.
	if len(b) > 0x34 {
		v := b[0x34]
		pre.RawAnalogX = &v
	}
	// v1.4.0: percent.
	if len(b) >= 0x35+4 {
		v := readFloat32(b[0x35 : 0x35+4])
		pre.Percent = &v
	}

	return pre, nil
}

// decodePostFrame decodes a PostFrameUpdate payload's data fields. Offsets
// grounded on _examples/ZadenRB-go-slippi/reader.go's PostFrameUpdate case.
// Every block past StocksRemaining is strictly cumulative (spec.md §4.1.5,
// §3.5): reading stops at the first block the payload is too short to hold.
func decodePostFrame(b []byte) (*PostFrame, error) {
	if len(b) < 0x1B {
		return nil, errShortPayload
	}

	post := &PostFrame{
		Character:   asLeaderCharacter(InGameCharacter(b[0x0])),
		ActionState: binary.BigEndian.Uint16(b[0x1:0x3]),
		PositionX:   readFloat32(b[0x3:0x7]),
		PositionY:   readFloat32(b[0x7:0xB]),
		Facing:      DirectionFromFloat(readFloat32(b[0xB:0xF])),
		Percent:     readFloat32(b[0xF:0x13]),

		ShieldSize:       readFloat32(b[0x13:0x17]),
		LastAttackLanded: b[0x17],
		ComboCount:       b[0x18],
		StocksRemaining:  b[0x1A],
	}

	if b[0x19] < 4 {
		v := b[0x19]
		post.LastHitByPort = &v
	}

	// v0.2.0: state_age.
	if len(b) >= 0x1B+4 {
		v := readFloat32(b[0x1B : 0x1B+4])
		post.StateAge = &v
	} else {
		return post, nil
	}

	// v2.0.0: flags[5], misc_timer, is_airborne, last_ground_id,
	// jumps_remaining, l_cancel_status.
	const extra2Off = 0x1F
	if len(b) >= extra2Off+12 {
		post.Extra2 = &PostFrameExtra2{
			Flags:          StateFlags{b[extra2Off], b[extra2Off+1], b[extra2Off+2], b[extra2Off+3], b[extra2Off+4]},
			MiscTimer:      readFloat32(b[extra2Off+5 : extra2Off+9]),
			IsAirborne:     boolAt(b, extra2Off+9),
			LastGroundID:   binary.BigEndian.Uint16(b[extra2Off+10 : extra2Off+12]),
		}
	} else {
		return post, nil
	}
	const extra2TailOff = extra2Off + 12
	if len(b) >= extra2TailOff+2 {
		post.Extra2.JumpsRemaining = b[extra2TailOff]
		post.Extra2.LCancelStatus = LCancelStatus(b[extra2TailOff+1])
	} else {
		return post, nil
	}

	// v2.1.0: hurtbox_status.
	const hurtboxOff = extra2TailOff + 2
	if len(b) > hurtboxOff {
		v := HurtboxStatus(b[hurtboxOff])
		post.HurtboxStatus = &v
	} else {
		return post, nil
	}

	// v3.5.0: self_air_x, self_y, kb_x, kb_y, self_ground_x.
	const extra4Off = hurtboxOff + 1
	if len(b) >= extra4Off+20 {
		selfAirX := readFloat32(b[extra4Off : extra4Off+4])
		selfY := readFloat32(b[extra4Off+4 : extra4Off+8])
		kbX := readFloat32(b[extra4Off+8 : extra4Off+12])
		kbY := readFloat32(b[extra4Off+12 : extra4Off+16])
		selfGroundX := readFloat32(b[extra4Off+16 : extra4Off+20])
		post.Extra4 = &PostFrameExtra4{
			SelfAirVelocity:     Stick{X: selfAirX, Y: selfY},
			KnockbackVelocity:   Stick{X: kbX, Y: kbY},
			SelfGroundVelocityX: selfGroundX,
		}
	} else {
		return post, nil
	}

	// v3.8.0: hitlag_remaining.
	const hitlagOff = extra4Off + 20
	if len(b) >= hitlagOff+4 {
		v := readFloat32(b[hitlagOff : hitlagOff+4])
		post.HitlagRemaining = &v
	} else {
		return post, nil
	}

	// v3.11.0: animation_index.
	const animOff = hitlagOff + 4
	if len(b) >= animOff+4 {
		v := binary.BigEndian.Uint32(b[animOff : animOff+4])
		post.AnimationIndex = &v
	}

	return post, nil
}

// decodeItemFrame decodes an Item payload's data fields (the
// (frame_number) header has already been stripped by the caller). Offsets
// grounded on _examples/ZadenRB-go-slippi/reader.go's ItemUpdate case.
func decodeItemFrame(b []byte) (*ItemFrame, error) {
	if len(b) < 0x21 {
		return nil, errShortPayload
	}

	item := &ItemFrame{
		TypeID:      binary.BigEndian.Uint16(b[0x0:0x2]),
		State:       b[0x2],
		Velocity:    Stick{X: readFloat32(b[0x7:0xB]), Y: readFloat32(b[0xB:0xF])},
		Position:    Stick{X: readFloat32(b[0xF:0x13]), Y: readFloat32(b[0x13:0x17])},
		DamageTaken: binary.BigEndian.Uint16(b[0x17:0x19]),
		Timer:       readFloat32(b[0x19:0x1D]),
		SpawnID:     binary.BigEndian.Uint32(b[0x1D:0x21]),
	}

	if facing := readFloat32(b[0x3:0x7]); facing != 0 {
		d := DirectionFromFloat(facing)
		item.FacingDirection = &d
	}

	if len(b) >= 0x25+5 {
		missile := b[0x21]
		turnip := b[0x22]
		launched := boolAt(b, 0x23)
		charge := b[0x24]
		owner := int8(b[0x25])
		item.MissileType = &missile
		item.TurnipFace = &turnip
		item.IsShotLaunched = &launched
		item.ChargePower = &charge
		item.OwnerPort = &owner
	}

	return item, nil
}

var errShortPayload = newParseError(Truncated, "", 0, nil)
