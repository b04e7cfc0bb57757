package regions

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrMissingFormatChunk is returned when the container has no fmt chunk.
	ErrMissingFormatChunk = errors.New("no format chunk found in the file")
	// ErrInvalidFormatChunk is returned when the fmt payload is too short to
	// hold a sample rate.
	ErrInvalidFormatChunk = errors.New("format chunk length: expected >= 8")
)

// sampleRate pulls the sample rate out of a fmt chunk payload. Only bytes
// 4 through 7 matter here; channel count, bit depth and the extensible
// tail are irrelevant to marker timing.
func sampleRate(c *Chunk) (uint32, error) {
	if c == nil {
		return 0, ErrMissingFormatChunk
	}

	if len(c.Data) < 8 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidFormatChunk, len(c.Data))
	}

	return binary.LittleEndian.Uint32(c.Data[4:8]), nil
}
