package slippi

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint computes a stable BLAKE2b-256 identity hash over start's
// stage, random seed, and, per port, whether it is occupied plus the
// character CSS id, starting stocks and costume id of each occupied port
// (spec.md §3.11). Two decodes of byte-identical input always produce the
// same fingerprint; changing stage, seed, or any occupied port's
// character/stocks/costume changes it.
func Fingerprint(start *Start) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // only fails for an oversized key, and we pass none
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(start.Stage))
	h.Write(buf[:])
	binary.BigEndian.PutUint32(buf[:], start.RandomSeed)
	h.Write(buf[:])

	for _, p := range start.Players {
		if p.Empty() {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1, p.CharacterCSSID, p.StartingStocks, p.CostumeID})
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
