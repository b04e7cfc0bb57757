package regions

import "encoding/binary"

// cuePointSize is the fixed on-disk size of one cue point record.
const cuePointSize = 24

// decodeCuePoints extracts the cue point table as a map from cue point ID
// to sample offset. The payload starts with a little-endian count followed
// by 24-byte records carrying the ID at offset 0 and the playback position
// at offset 20. Records that would overrun the payload are dropped. A
// missing chunk or a payload too short to hold the count reports !ok, the
// same as no cue chunk at all.
func decodeCuePoints(c *Chunk) (map[uint32]uint32, bool) {
	if c == nil || len(c.Data) < 4 {
		return nil, false
	}

	count := int(binary.LittleEndian.Uint32(c.Data[:4]))
	if fit := (len(c.Data) - 4) / cuePointSize; count > fit {
		log.Warnw("cue chunk declares more points than it holds", "declared", count, "fit", fit)
		count = fit
	}

	points := make(map[uint32]uint32, count)

	for i := 0; i < count; i++ {
		rec := c.Data[4+i*cuePointSize:]
		id := binary.LittleEndian.Uint32(rec[:4])
		points[id] = binary.LittleEndian.Uint32(rec[20:24])
	}

	return points, true
}
