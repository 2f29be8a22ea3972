package slippi

import (
	"encoding/binary"
	"math"
	"testing"
)

func putF32(b []byte, off int, v float32) {
	binary.BigEndian.PutUint32(b[off:], math.Float32bits(v))
}

// minimal GameStart payload: version bytes + required header through the
// Stage field (offset 0x12..0x14), nothing version-gated.
func minimalStartPayload() []byte {
	b := make([]byte, 0x14)
	b[0], b[1], b[2] = 0, 1, 0 // v0.1.0
	b[0xC] = 0                 // not teams
	b[0xF] = 1                 // item spawn rate
	binary.BigEndian.PutUint16(b[0x12:0x14], 8)
	return b
}

func TestDecodeStartRejectsShortPayload(t *testing.T) {
	if _, err := decodeStart(make([]byte, 0x13)); err == nil {
		t.Fatal("expected error for payload shorter than the Stage field")
	}
}

func TestDecodeStartMinimal(t *testing.T) {
	start, err := decodeStart(minimalStartPayload())
	if err != nil {
		t.Fatalf("decodeStart: %v", err)
	}
	if start.Stage != Stage(8) {
		t.Errorf("Stage = %v, want 8", start.Stage)
	}
	if start.IsPAL != nil {
		t.Error("IsPAL should be nil for a payload that doesn't carry it")
	}
	if start.MatchID != nil {
		t.Error("MatchID should be nil for a payload that doesn't carry it")
	}
}

func TestDecodeStartVersionGatedIsPAL(t *testing.T) {
	b := minimalStartPayload()
	b = append(b, make([]byte, 0x1A0-len(b))...)
	b = append(b, 1) // is_pal byte at 0x1A0
	start, err := decodeStart(b)
	if err != nil {
		t.Fatalf("decodeStart: %v", err)
	}
	if start.IsPAL == nil || !*start.IsPAL {
		t.Error("IsPAL should be true when the payload carries the byte")
	}
	if start.IsFrozenStadium != nil {
		t.Error("IsFrozenStadium should stay nil since that block wasn't supplied")
	}
}

func TestDecodePostFrameCumulativeGating(t *testing.T) {
	base := make([]byte, 0x1B)
	base[0x0] = 0x02 // character id
	putF32(base, 0x3, 10)
	putF32(base, 0x7, 20)
	putF32(base, 0xB, 1)
	putF32(base, 0xF, 35.5)
	putF32(base, 0x13, 60)
	base[0x17] = 5
	base[0x18] = 2
	base[0x19] = 4 // no last-hit-by port (>= 4 sentinel)
	base[0x1A] = 3

	post, err := decodePostFrame(base)
	if err != nil {
		t.Fatalf("decodePostFrame: %v", err)
	}
	if post.StocksRemaining != 3 {
		t.Errorf("StocksRemaining = %d, want 3", post.StocksRemaining)
	}
	if post.StateAge != nil {
		t.Error("StateAge should be nil: payload too short for that block")
	}
	if post.Extra2 != nil {
		t.Error("Extra2 should be nil: payload too short for that block")
	}

	withAge := append(base, make([]byte, 4)...)
	putF32(withAge, 0x1B, 42)
	post2, err := decodePostFrame(withAge)
	if err != nil {
		t.Fatalf("decodePostFrame: %v", err)
	}
	if post2.StateAge == nil || *post2.StateAge != 42 {
		t.Fatal("StateAge should decode once the payload is long enough")
	}
	if post2.Extra2 != nil {
		t.Error("Extra2 still should be nil: the v2.0.0 block wasn't supplied")
	}
}

func TestDecodeItemFrameOptionalTrailingBlock(t *testing.T) {
	base := make([]byte, 0x21)
	binary.BigEndian.PutUint16(base[0:2], 99)
	base[2] = 1
	binary.BigEndian.PutUint32(base[0x1D:0x21], 77)

	item, err := decodeItemFrame(base)
	if err != nil {
		t.Fatalf("decodeItemFrame: %v", err)
	}
	if item.SpawnID != 77 {
		t.Errorf("SpawnID = %d, want 77", item.SpawnID)
	}
	if item.MissileType != nil {
		t.Error("MissileType should be nil for the 0x21-byte payload")
	}

	withOwner := append(base, make([]byte, 9)...)
	withOwner[0x25] = 0xFF // owner port -1 as int8
	item2, err := decodeItemFrame(withOwner)
	if err != nil {
		t.Fatalf("decodeItemFrame: %v", err)
	}
	if item2.OwnerPort == nil || *item2.OwnerPort != -1 {
		t.Fatal("OwnerPort should decode to -1 once the trailing block is present")
	}
}
