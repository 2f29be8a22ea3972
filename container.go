package slippi

import (
	"bytes"
	"encoding/binary"
	"io"
)

// containerPreamble is the literal byte sequence that opens the top-level
// dictionary and the `raw` length-prefixed byte array header (spec.md
// §6.1), matching parse.py's `expect_bytes(b"{U\x03raw[$U#l", stream)`.
var containerPreamble = []byte{0x7B, 0x55, 0x03, 0x72, 0x61, 0x77, 0x5B, 0x24, 0x55, 0x23, 0x6C}

// metadataKeyLiteral is the literal bytes preceding the metadata object,
// matching parse.py's `expect_bytes(b"U\x08metadata", stream)`.
var metadataKeyLiteral = []byte{0x55, 0x08, 'm', 'e', 't', 'a', 'd', 'a', 't', 'a'}

// closingLiteral is the single byte that closes the top-level dictionary.
var closingLiteral = []byte{'}'}

// eventPayloadSizes maps an event command byte to its declared payload size
// for this replay, built once from the leading EventPayloads event
// (spec.md §3.3, §4.1.1 step 2). Sizes are authoritative for the whole
// stream, including for codes this implementation does not understand.
type eventPayloadSizes map[byte]uint16

// containerReader wraps a ReadSeeker positioned at the start of a replay
// and exposes the framing needed to stream its event section and then
// decode its metadata. Grounded on
// _examples/ZadenRB-go-slippi/reader.go's SlpReader/NewSlpReader.
type containerReader struct {
	src      io.ReadSeeker
	filename string

	rawStart  int64
	rawLength int64 // 0 means "in-progress, no declared upper bound"

	metadataStart int64

	sizes eventPayloadSizes
}

func expectLiteral(r io.Reader, filename string, literal []byte, pos int64, kind ParseErrorKind) error {
	buf := make([]byte, len(literal))
	if _, err := io.ReadFull(r, buf); err != nil {
		return newParseError(Truncated, filename, pos, err)
	}
	if !bytes.Equal(buf, literal) {
		return newParseError(kind, filename, pos, nil)
	}
	return nil
}

// newContainerReader reads and verifies the container preamble, the raw
// section length, and the EventPayloads table, leaving src positioned at
// the first post-EventPayloads event (i.e. GameStart).
func newContainerReader(src io.ReadSeeker, filename string) (*containerReader, error) {
	if err := expectLiteral(src, filename, containerPreamble, 0, BadContainerLiteral); err != nil {
		return nil, err
	}

	lenBuf := make([]byte, 4)
	if _, err := io.ReadFull(src, lenBuf); err != nil {
		return nil, newParseError(Truncated, filename, int64(len(containerPreamble)), err)
	}
	rawLength := int64(binary.BigEndian.Uint32(lenBuf))

	rawStart := int64(len(containerPreamble)) + 4

	sizes, bytesRead, err := parseEventPayloadsTable(src, filename, rawStart)
	if err != nil {
		return nil, err
	}

	var metadataStart int64
	if rawLength != 0 {
		metadataStart = rawStart + rawLength
	}

	return &containerReader{
		src:           src,
		filename:      filename,
		rawStart:      rawStart + int64(bytesRead),
		rawLength:     rawLength - int64(bytesRead),
		metadataStart: metadataStart,
		sizes:         sizes,
	}, nil
}

// parseEventPayloadsTable reads the leading EventPayloads event: a code
// byte (0x35), a one-byte "self size" (includes the size byte itself), then
// (code:u8, size:u16) triples. Returns the size table and the number of
// bytes consumed, including the code byte.
func parseEventPayloadsTable(src io.Reader, filename string, pos int64) (eventPayloadSizes, int, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(src, header); err != nil {
		return nil, 0, newParseError(Truncated, filename, pos, err)
	}
	if Command(header[0]) != EventPayloads {
		return nil, 0, newParseError(UnexpectedEvent, filename, pos, nil)
	}

	selfSize := int(header[1])
	remaining := selfSize - 1
	if remaining%3 != 0 {
		return nil, 0, newParseError(BadContainerLiteral, filename, pos, nil)
	}

	sizes := make(eventPayloadSizes, remaining/3)
	entry := make([]byte, 3)
	for i := 0; i < remaining; i += 3 {
		if _, err := io.ReadFull(src, entry); err != nil {
			return nil, 0, newParseError(Truncated, filename, pos, err)
		}
		sizes[entry[0]] = binary.BigEndian.Uint16(entry[1:3])
	}

	return sizes, 2 + remaining, nil
}

// rawEvent is one (command, payload bytes) pair read from the event stream.
type rawEvent struct {
	command Command
	payload []byte
}

// nextEvent reads the next event's command byte and exactly its declared
// payload size (spec.md §4.1.2). An unknown code is still consumable if it
// happens to be in the size table (forward-compat); if it is not, that is
// UnknownCode.
func (c *containerReader) nextEvent() (*rawEvent, error) {
	codeBuf := make([]byte, 1)
	if _, err := io.ReadFull(c.src, codeBuf); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, newParseError(Truncated, c.filename, c.rawStart, err)
	}

	size, ok := c.sizes[codeBuf[0]]
	if !ok {
		return nil, newParseError(UnknownCode, c.filename, c.rawStart, nil)
	}

	payload := make([]byte, size)
	if size > 0 {
		if _, err := io.ReadFull(c.src, payload); err != nil {
			return nil, newParseError(Truncated, c.filename, c.rawStart, err)
		}
	}

	c.rawStart += 1 + int64(size)
	if c.rawLength > 0 {
		c.rawLength -= 1 + int64(size)
	}

	return &rawEvent{command: Command(codeBuf[0]), payload: payload}, nil
}

// done reports whether the declared raw section has been fully consumed.
// When the replay's declared length was 0 (in-progress), it never reports
// true; reading then ends only at EOF.
func (c *containerReader) done() bool {
	return c.rawLength <= 0 && c.metadataStart != 0
}

// seekToMetadata seeks the source to the start of the metadata object and
// verifies the literal key that precedes it.
func (c *containerReader) seekToMetadata() error {
	if c.metadataStart != 0 {
		if _, err := c.src.Seek(c.metadataStart, io.SeekStart); err != nil {
			return newParseError(Truncated, c.filename, c.metadataStart, err)
		}
	}
	return expectLiteral(c.src, c.filename, metadataKeyLiteral, c.metadataStart, BadContainerLiteral)
}
