package slippi

import "testing"

func TestFrameReconstructorRollbackOverwrite(t *testing.T) {
	r := NewFrameReconstructor(ReconstructorOptions{})

	first := &PostFrame{StocksRemaining: 4}
	if err := r.AddPost("f", preHeader{FrameNumber: 10, PlayerIndex: 0}, first); err != nil {
		t.Fatalf("AddPost: %v", err)
	}

	rolledBack := &PostFrame{StocksRemaining: 3}
	if err := r.AddPost("f", preHeader{FrameNumber: 10, PlayerIndex: 0}, rolledBack); err != nil {
		t.Fatalf("AddPost (rollback): %v", err)
	}

	frames := r.Frames()
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}
	got := frames[0].Ports[0].Leader.Post.StocksRemaining
	if got != 3 {
		t.Errorf("StocksRemaining after rollback = %d, want 3 (the later write should win)", got)
	}
}

func TestFrameReconstructorGapIsFatal(t *testing.T) {
	r := NewFrameReconstructor(ReconstructorOptions{})

	if err := r.AddPost("f", preHeader{FrameNumber: 0, PlayerIndex: 0}, &PostFrame{}); err != nil {
		t.Fatalf("AddPost: %v", err)
	}
	err := r.AddPost("f", preHeader{FrameNumber: 5, PlayerIndex: 0}, &PostFrame{})
	if err == nil {
		t.Fatal("expected a MissingFrames error for a frame-index jump greater than 1")
	}
}

func TestFrameReconstructorLatestFrame(t *testing.T) {
	r := NewFrameReconstructor(ReconstructorOptions{})
	if _, ok := r.LatestFrame(); ok {
		t.Fatal("LatestFrame should report false before any frame is added")
	}
	for _, idx := range []int32{0, 1, 2} {
		if err := r.AddPost("f", preHeader{FrameNumber: idx, PlayerIndex: 0}, &PostFrame{}); err != nil {
			t.Fatalf("AddPost(%d): %v", idx, err)
		}
	}
	latest, ok := r.LatestFrame()
	if !ok || latest != 2 {
		t.Errorf("LatestFrame() = (%d, %v), want (2, true)", latest, ok)
	}
}
