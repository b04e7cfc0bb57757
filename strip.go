package regions

import (
	"bytes"
	"encoding/binary"

	"github.com/go-audio/riff"
)

// Strip rewrites the container with its data chunk emptied, leaving every
// other chunk byte-for-byte intact. REAPER markers, loops and any vendor
// chunks survive; only the audio goes. The declared RIFF size is patched
// to the rewritten total minus 8.
func Strip(f *RiffFile) []byte {
	var buf bytes.Buffer

	buf.Write(riff.RiffID[:])
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	buf.Write(riff.WavFormatID[:])

	for _, c := range f.Chunks {
		if c.Type == ChunkData {
			buf.Write(c.ID[:])
			binary.Write(&buf, binary.LittleEndian, uint32(0))

			continue
		}

		writeRawChunk(&buf, c)
	}

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

// writeRawChunk re-emits one chunk unchanged, restoring the pad byte that
// keeps the next chunk aligned after an odd-sized payload.
func writeRawChunk(buf *bytes.Buffer, c Chunk) {
	buf.Write(c.ID[:])
	binary.Write(buf, binary.LittleEndian, uint32(len(c.Data)))
	buf.Write(c.Data)

	if len(c.Data)%2 == 1 {
		buf.WriteByte(0)
	}
}
