package slpstore

import (
	"path/filepath"
	"testing"
)

type fakeRecord struct {
	FrameIndex int    `json:"frame_index"`
	Note       string `json:"note"`
}

func TestPutRowGetRowRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	want := fakeRecord{FrameIndex: 42, Note: "wavedash"}
	if err := store.PutRow(Row{Fingerprint: "abc", Port: 0, Kind: "wavedash", FrameIndex: 42}, want); err != nil {
		t.Fatalf("PutRow: %v", err)
	}

	var got fakeRecord
	if err := store.GetRow(1, &got); err != nil {
		t.Fatalf("GetRow: %v", err)
	}
	if got != want {
		t.Errorf("GetRow = %+v, want %+v", got, want)
	}
}

func TestGetRowMissingIDErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var got fakeRecord
	if err := store.GetRow(99, &got); err == nil {
		t.Error("GetRow with no matching id should error")
	}
}
