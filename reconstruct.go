package slippi

import "sort"

// FirstFrameIndex is the frame number of the first frame of any replay
// (Melee's frame counter starts three seconds before "GO!").
const FirstFrameIndex int32 = -123

// MaxRollbackFrames is the largest number of frames a recorder is expected
// to roll back and re-emit in a single correction, per
// _examples/ZadenRB-go-slippi/parser.go's Rollbacks.checkIfRollbackFrame.
const MaxRollbackFrames = 7

// ReconstructorOptions configures a FrameReconstructor.
type ReconstructorOptions struct {
	// Strict, when true, rejects a FrameBookend event whose declared
	// LatestFinalizedFrame implies a rollback distance greater than
	// MaxRollbackFrames, treating it as corrupt rather than silently
	// accepting it.
	Strict bool
}

// FrameReconstructor assembles the frame event stream into an ordered
// sequence of Frame values, replacing (not appending) whenever a later event
// repeats an already-seen frame index — the mechanism by which Slippi
// recorders encode rollback: a restated frame supersedes its predecessor.
// Grounded on _examples/ZadenRB-go-slippi/parser.go's SlpParser, whose
// map-keyed-by-frame-index FrameEntry storage gives replace-on-repeat
// semantics for free; this type keeps that idiom but drops the
// channel/handler event-emission machinery the teacher layers on top, since
// nothing downstream here needs per-event streaming.
type FrameReconstructor struct {
	opts ReconstructorOptions

	frames map[int32]*Frame
	order  []int32 // first-seen order; later deduplicated at Frames()

	maxIndexSeen    int32
	haveMaxIndex    bool
	latestFinalized int32
}

// NewFrameReconstructor returns an empty FrameReconstructor.
func NewFrameReconstructor(opts ReconstructorOptions) *FrameReconstructor {
	return &FrameReconstructor{
		opts:   opts,
		frames: make(map[int32]*Frame),
	}
}

func (r *FrameReconstructor) frameFor(index int32) *Frame {
	f, ok := r.frames[index]
	if !ok {
		f = newFrame(index)
		r.frames[index] = f
		r.order = append(r.order, index)
	}
	return f
}

// checkGap validates that index does not skip ahead of the highest index
// seen so far by more than one frame; a larger forward jump means frames
// were dropped from the stream, which is always fatal (spec.md §7,
// MissingFrames).
func (r *FrameReconstructor) checkGap(filename string, index int32) error {
	if !r.haveMaxIndex {
		r.maxIndexSeen = index
		r.haveMaxIndex = true
		return nil
	}
	if index > r.maxIndexSeen+1 {
		return newParseError(MissingFrames, filename, 0, nil)
	}
	if index > r.maxIndexSeen {
		r.maxIndexSeen = index
	}
	return nil
}

// AddPre folds a decoded PreFrameUpdate into the frame at hdr.FrameNumber.
func (r *FrameReconstructor) AddPre(filename string, hdr preHeader, pre *PreFrame) error {
	if err := r.checkGap(filename, hdr.FrameNumber); err != nil {
		return err
	}
	f := r.frameFor(hdr.FrameNumber)
	port := f.port(int(hdr.PlayerIndex))
	if hdr.IsFollower {
		port.Follower = &CharacterFrame{Pre: pre}
	} else {
		if port.Leader == nil {
			port.Leader = &CharacterFrame{}
		}
		port.Leader.Pre = pre
	}
	return nil
}

// AddPost folds a decoded PostFrameUpdate into the frame at hdr.FrameNumber.
func (r *FrameReconstructor) AddPost(filename string, hdr preHeader, post *PostFrame) error {
	if err := r.checkGap(filename, hdr.FrameNumber); err != nil {
		return err
	}
	f := r.frameFor(hdr.FrameNumber)
	port := f.port(int(hdr.PlayerIndex))
	if hdr.IsFollower {
		if port.Follower == nil {
			port.Follower = &CharacterFrame{}
		}
		port.Follower.Post = post
	} else {
		if port.Leader == nil {
			port.Leader = &CharacterFrame{}
		}
		port.Leader.Post = post
	}
	return nil
}

// AddItem appends a decoded item record to the frame's item list.
func (r *FrameReconstructor) AddItem(filename string, frameNumber int32, item *ItemFrame) error {
	if err := r.checkGap(filename, frameNumber); err != nil {
		return err
	}
	f := r.frameFor(frameNumber)
	f.Items = append(f.Items, *item)
	return nil
}

// AddFrameStart attaches a decoded FrameStart payload to its frame.
func (r *FrameReconstructor) AddFrameStart(filename string, fs *FrameStartPayload) error {
	if err := r.checkGap(filename, fs.FrameNumber); err != nil {
		return err
	}
	f := r.frameFor(fs.FrameNumber)
	f.Start = fs
	return nil
}

// AddFrameBookend attaches a decoded FrameBookend payload to its frame and,
// in strict mode, rejects a rollback distance larger than
// MaxRollbackFrames.
func (r *FrameReconstructor) AddFrameBookend(filename string, fb *FrameBookendPayload) error {
	if err := r.checkGap(filename, fb.FrameNumber); err != nil {
		return err
	}
	if r.opts.Strict && r.latestFinalized != 0 {
		if dist := fb.FrameNumber - fb.LatestFinalizedFrame; dist > MaxRollbackFrames {
			return newParseError(UnexpectedEvent, filename, 0, nil)
		}
	}
	r.latestFinalized = fb.LatestFinalizedFrame
	f := r.frameFor(fb.FrameNumber)
	f.End = fb
	return nil
}

// Frames returns every reconstructed frame in ascending index order. Because
// frameFor replaces in place on a repeated index, a rolled-back frame's
// final content is whatever the last event for that index wrote — the
// replacement semantics spec.md §4.1.3 requires.
func (r *FrameReconstructor) Frames() []Frame {
	indices := make([]int32, 0, len(r.frames))
	seen := make(map[int32]bool, len(r.frames))
	for _, idx := range r.order {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	out := make([]Frame, 0, len(indices))
	for _, idx := range indices {
		out = append(out, *r.frames[idx])
	}
	return out
}

// LatestFrame returns the highest frame index seen, or false if none.
func (r *FrameReconstructor) LatestFrame() (int32, bool) {
	return r.maxIndexSeen, r.haveMaxIndex
}
