package slippi

import (
	"bytes"
	"io"
	"os"
)

// Game is a fully parsed and reconstructed replay (spec.md §3.1): the
// Start record, every reconstructed frame in ascending order, the End
// record (nil for an in-progress recording with no GameEnd event), and the
// decoded metadata object.
type Game struct {
	Start    *Start
	Frames   []Frame
	End      *End
	Metadata *Metadata

	filename string
}

// ParseOptions configures NewGame.
type ParseOptions struct {
	// Strict enables FrameReconstructor's rollback-distance validation.
	Strict bool
	// SkipFrames, when true, stops after decoding Start and skips straight
	// to GameEnd/metadata, for callers that only need match-level
	// information (spec.md §6.2).
	SkipFrames bool
}

// NewGameFromFile opens and fully parses a replay file.
func NewGameFromFile(path string) (*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewGame(f, path, ParseOptions{})
}

// NewGameFromBytes fully parses a replay already in memory.
func NewGameFromBytes(b []byte) (*Game, error) {
	return NewGame(bytes.NewReader(b), "", ParseOptions{})
}

// NewGame parses a complete replay from src, reconstructing every frame and
// decoding the trailing metadata object. filename is used only to annotate
// ParseError; it may be empty.
func NewGame(src io.ReadSeeker, filename string, opts ParseOptions) (*Game, error) {
	cr, err := newContainerReader(src, filename)
	if err != nil {
		return nil, err
	}

	g := &Game{filename: filename}
	recon := NewFrameReconstructor(ReconstructorOptions{Strict: opts.Strict})

	for {
		ev, err := cr.nextEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch ev.command {
		case GameStart:
			start, err := decodeStart(ev.payload)
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			g.Start = start
			if opts.SkipFrames {
				if err := skipToGameEnd(cr, g); err != nil {
					return nil, err
				}
				return finishGame(cr, g, recon, filename)
			}

		case PreFrameUpdate:
			hdr, err := decodeEventHeader(ev.payload)
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			pre, err := decodePreFrame(ev.payload[6:])
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			if err := recon.AddPre(filename, hdr, pre); err != nil {
				return nil, err
			}

		case PostFrameUpdate:
			hdr, err := decodeEventHeader(ev.payload)
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			post, err := decodePostFrame(ev.payload[6:])
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			if err := recon.AddPost(filename, hdr, post); err != nil {
				return nil, err
			}
			applyTransformedCharacterFixup(g, hdr, post)

		case ItemUpdate:
			if len(ev.payload) < 4 {
				return nil, newParseError(Truncated, filename, 0, nil)
			}
			frameNumber := readInt32(ev.payload[0:4])
			item, err := decodeItemFrame(ev.payload[4:])
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			if err := recon.AddItem(filename, frameNumber, item); err != nil {
				return nil, err
			}

		case FrameStart:
			_, fs, err := decodeFrameStart(ev.payload)
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			if err := recon.AddFrameStart(filename, fs); err != nil {
				return nil, err
			}

		case FrameBookend:
			_, fb, err := decodeFrameBookend(ev.payload)
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			if err := recon.AddFrameBookend(filename, fb); err != nil {
				return nil, err
			}

		case GameEnd:
			end, err := decodeEnd(ev.payload)
			if err != nil {
				return nil, annotateParseError(err, filename, ev.command)
			}
			g.End = end

		default:
			// GeckoList, MessageSplitter, and any future code the
			// EventPayloads table declared a size for: consumed above,
			// nothing further to do.
		}

		if cr.done() {
			break
		}
	}

	return finishGame(cr, g, recon, filename)
}

// skipToGameEnd drains the event stream without reconstructing frames,
// stopping once GameEnd is seen or the stream is exhausted.
func skipToGameEnd(cr *containerReader, g *Game) error {
	for {
		ev, err := cr.nextEvent()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if ev.command == GameEnd {
			end, err := decodeEnd(ev.payload)
			if err != nil {
				return annotateParseError(err, cr.filename, ev.command)
			}
			g.End = end
			return nil
		}
		if cr.done() {
			return nil
		}
	}
}

func finishGame(cr *containerReader, g *Game, recon *FrameReconstructor, filename string) (*Game, error) {
	g.Frames = recon.Frames()

	if err := cr.seekToMetadata(); err != nil {
		// A replay with no trailing metadata (or one truncated before it)
		// is still a usable Game; metadata is supplementary.
		return g, nil
	}

	lastFrame, _ := recon.LatestFrame()
	md, err := decodeMetadata(cr.src, lastFrame)
	if err != nil {
		return g, nil
	}
	g.Metadata = md

	return g, nil
}

// applyTransformedCharacterFixup corrects the Start record's CharacterCSSID
// for a Zelda/Sheik pick using the first frame's reported internal
// character id, matching
// _examples/ZadenRB-go-slippi/parser.go's handlePostFrameUpdate: the CSS
// selection screen can't distinguish a Sheik-transformed-from-Zelda pick
// from a direct Sheik pick, so the authoritative id is read off frame
// FirstFrameIndex instead.
func applyTransformedCharacterFixup(g *Game, hdr preHeader, post *PostFrame) {
	if g.Start == nil || hdr.FrameNumber > FirstFrameIndex {
		return
	}
	switch InGameCharacter(post.Character) {
	case CharSheik:
		g.Start.Players[hdr.PlayerIndex].CharacterCSSID = 0x13
	case 0x13:
		g.Start.Players[hdr.PlayerIndex].CharacterCSSID = 0x12
	}
}

func annotateParseError(err error, filename string, cmd Command) error {
	if pe, ok := err.(*ParseError); ok && pe.Filename == "" {
		pe.Filename = filename
		return pe
	}
	return err
}
