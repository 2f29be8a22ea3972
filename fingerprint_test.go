package slippi

import "testing"

func TestFingerprintStableAndSensitive(t *testing.T) {
	base := &Start{
		Stage:      Stage(8),
		RandomSeed: 12345,
		Players: [4]PlayerSlot{
			{CharacterCSSID: 2, StartingStocks: 4, CostumeID: 0, Type: Human},
			{CharacterCSSID: 3, StartingStocks: 4, CostumeID: 1, Type: Human},
			{Type: EmptySlot},
			{Type: EmptySlot},
		},
	}

	a := Fingerprint(base)
	b := Fingerprint(base)
	if a != b {
		t.Error("Fingerprint should be stable across two calls on identical input")
	}

	changedStage := *base
	changedStage.Stage = Stage(3)
	if Fingerprint(&changedStage) == a {
		t.Error("Fingerprint should differ when stage changes")
	}

	changedChar := *base
	changedChar.Players[0].CharacterCSSID = 9
	if Fingerprint(&changedChar) == a {
		t.Error("Fingerprint should differ when a player's character changes")
	}
}
