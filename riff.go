package regions

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	// CIDCue is the chunk ID of the cue point table.
	CIDCue = [4]byte{'c', 'u', 'e', 0x20}
	// CIDLabl is the chunk ID of a standalone label chunk.
	CIDLabl = [4]byte{'l', 'a', 'b', 'l'}
	// CIDSmpl is the chunk ID of the sampler chunk.
	CIDSmpl = [4]byte{'s', 'm', 'p', 'l'}
	// CIDList is the chunk ID of a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}

	// ErrNoRIFFTag is returned when the leading RIFF tag is missing.
	ErrNoRIFFTag = errors.New("no RIFF tag found")
	// ErrNoWAVETag is returned when the WAVE form tag is missing.
	ErrNoWAVETag = errors.New("no WAVE tag found")
)

// ChunkType classifies a chunk by the role it plays in marker recovery.
// Anything outside the closed set is ChunkOther and is carried through
// untouched so the container can be rewritten without losing it.
type ChunkType int

const (
	ChunkOther ChunkType = iota
	ChunkFormat
	ChunkCue
	ChunkLabel
	ChunkSampler
	ChunkList
	ChunkData
)

var chunkTypeNames = map[ChunkType]string{
	ChunkOther:   "other",
	ChunkFormat:  "format",
	ChunkCue:     "cue",
	ChunkLabel:   "label",
	ChunkSampler: "sampler",
	ChunkList:    "list",
	ChunkData:    "data",
}

func (t ChunkType) String() string {
	if name, ok := chunkTypeNames[t]; ok {
		return name
	}

	return "unknown"
}

func classifyChunk(id [4]byte) ChunkType {
	switch id {
	case riff.FmtID:
		return ChunkFormat
	case CIDCue:
		return ChunkCue
	case CIDLabl:
		return ChunkLabel
	case CIDSmpl:
		return ChunkSampler
	case CIDList:
		return ChunkList
	case riff.DataFormatID:
		return ChunkData
	default:
		return ChunkOther
	}
}

// Chunk is a single RIFF chunk: its raw 4-byte ID and the payload exactly
// as declared. The on-disk pad byte after an odd-sized payload is not part
// of Data.
type Chunk struct {
	ID   [4]byte
	Type ChunkType
	Data []byte
}

// RiffFile is the ordered chunk sequence of one WAV container.
type RiffFile struct {
	Path   string
	Chunks []Chunk
}

// First returns the first chunk of the given type, or nil.
func (f *RiffFile) First(t ChunkType) *Chunk {
	for i := range f.Chunks {
		if f.Chunks[i].Type == t {
			return &f.Chunks[i]
		}
	}

	return nil
}

// All returns every chunk of the given type in container order.
func (f *RiffFile) All(t ChunkType) []Chunk {
	var out []Chunk

	for _, c := range f.Chunks {
		if c.Type == t {
			out = append(out, c)
		}
	}

	return out
}

// ParseRiff walks a WAV container and collects every chunk in order. The
// declared chunk size is authoritative: exactly that many payload bytes are
// read and a single pad byte is skipped after odd sizes. A chunk declaring
// more bytes than the stream holds is a fatal error, never clamped.
func ParseRiff(r io.Reader, path string) (*RiffFile, error) {
	parser := riff.New(r)

	id, _, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("failed to read the RIFF header: %w", err)
	}

	if id != riff.RiffID {
		return nil, ErrNoRIFFTag
	}

	var form [4]byte
	if _, err := io.ReadFull(r, form[:]); err != nil {
		return nil, fmt.Errorf("failed to read the form tag: %w", err)
	}

	if form != riff.WavFormatID {
		return nil, ErrNoWAVETag
	}

	f := &RiffFile{Path: path}

	for {
		id, size, err := parser.IDnSize()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read chunk header: %w", err)
		}

		data := make([]byte, size)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("chunk %q declares %d bytes beyond the end of the container: %w", string(id[:]), size, err)
		}

		if size%2 == 1 {
			// a missing pad byte at the very end of the stream is tolerated
			var pad [1]byte
			if _, err := io.ReadFull(r, pad[:]); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to skip the pad byte after chunk %q: %w", string(id[:]), err)
			}
		}

		c := Chunk{ID: id, Type: classifyChunk(id), Data: data}
		log.Debugw("found chunk", "id", string(id[:]), "type", c.Type.String(), "size", size)

		f.Chunks = append(f.Chunks, c)
	}

	return f, nil
}
