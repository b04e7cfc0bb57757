package regions

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// adtlID is the LIST form type that carries associated data such as labels.
var adtlID = [4]byte{'a', 'd', 't', 'l'}

// Label pairs a cue point ID with the marker name REAPER stored for it.
type Label struct {
	CuePointID uint32
	Name       string
}

// trimName decodes raw label text: invalid UTF-8 is replaced rather than
// rejected, and trailing NUL terminators are dropped.
func trimName(b []byte) string {
	return strings.TrimRight(strings.ToValidUTF8(string(b), "�"), "\x00")
}

// decodeLabels gathers marker names for the whole container. Standalone
// labl chunks take precedence: as soon as at least one exists, LIST adtl
// labels are ignored entirely, even when every standalone payload turned
// out to be unusable. The fallback consults only the first LIST chunk.
func decodeLabels(f *RiffFile) []Label {
	var labels []Label

	standalone := f.All(ChunkLabel)
	for _, c := range standalone {
		if len(c.Data) < 4 {
			log.Debugw("skipping short label chunk", "size", len(c.Data))
			continue
		}

		labels = append(labels, Label{
			CuePointID: binary.LittleEndian.Uint32(c.Data[:4]),
			Name:       trimName(c.Data[4:]),
		})
	}

	if len(standalone) > 0 {
		return labels
	}

	if list := f.First(ChunkList); list != nil {
		return decodeAdtlLabels(list.Data)
	}

	return nil
}

// decodeAdtlLabels walks the sub-records of a LIST payload. Each record is
// a 4-byte tag and a little-endian size that counts the 4-byte cue point ID
// at the start of the body, with the body padded to an even length. Records
// other than labl are skipped; a record that would overrun the payload ends
// the walk.
func decodeAdtlLabels(data []byte) []Label {
	if len(data) < 4 || !bytes.Equal(data[:4], adtlID[:]) {
		return nil
	}

	var labels []Label

	pos := 4
	for pos+8 <= len(data) {
		var tag [4]byte
		copy(tag[:], data[pos:pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))

		body := pos + 8
		if body+size > len(data) {
			log.Warnw("adtl record overruns the LIST payload", "tag", string(tag[:]), "size", size)
			break
		}

		if tag == CIDLabl && size >= 4 {
			labels = append(labels, Label{
				CuePointID: binary.LittleEndian.Uint32(data[body : body+4]),
				Name:       trimName(data[body+4 : body+size]),
			})
		}

		pos = body + (size+1)&^1
	}

	return labels
}
