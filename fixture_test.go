package regions

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// In-memory WAV builders shared by the package tests. Fixtures are built
// from scratch on every run so the tests carry no binary test data.

type testChunk struct {
	id      string
	payload []byte
}

func buildWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")

	if err := binary.Write(&b, binary.LittleEndian, uint32(0)); err != nil {
		t.Fatalf("write riff size placeholder: %v", err)
	}

	b.WriteString("WAVE")

	for _, c := range chunks {
		writeTestChunk(t, &b, c.id, c.payload)
	}

	out := b.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id must be 4 bytes, got %q", id)
	}

	b.WriteString(id)

	if err := binary.Write(b, binary.LittleEndian, uint32(len(payload))); err != nil {
		t.Fatalf("write chunk size for %q: %v", id, err)
	}

	if _, err := b.Write(payload); err != nil {
		t.Fatalf("write chunk payload for %q: %v", id, err)
	}

	if len(payload)%2 == 1 {
		if err := b.WriteByte(0); err != nil {
			t.Fatalf("write chunk pad for %q: %v", id, err)
		}
	}
}

func fmtPayload(rate uint32) []byte {
	out := make([]byte, 16)
	binary.LittleEndian.PutUint16(out[0:2], 1)
	binary.LittleEndian.PutUint16(out[2:4], 1)
	binary.LittleEndian.PutUint32(out[4:8], rate)
	binary.LittleEndian.PutUint32(out[8:12], rate*2)
	binary.LittleEndian.PutUint16(out[12:14], 2)
	binary.LittleEndian.PutUint16(out[14:16], 16)

	return out
}

type cueEntry struct {
	id       uint32
	position uint32
}

func cuePayload(entries ...cueEntry) []byte {
	out := make([]byte, 4+len(entries)*cuePointSize)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(entries)))

	for i, e := range entries {
		rec := out[4+i*cuePointSize:]
		binary.LittleEndian.PutUint32(rec[0:4], e.id)
		binary.LittleEndian.PutUint32(rec[20:24], e.position)
	}

	return out
}

func lablPayload(id uint32, name string) []byte {
	out := make([]byte, 4, 4+len(name)+1)
	binary.LittleEndian.PutUint32(out[0:4], id)
	out = append(out, name...)
	out = append(out, 0)

	return out
}

type loopEntry struct {
	id    uint32
	start uint32
	end   uint32
}

func smplPayload(loops ...loopEntry) []byte {
	out := make([]byte, 36+len(loops)*24)
	binary.LittleEndian.PutUint32(out[28:32], uint32(len(loops)))

	for i, l := range loops {
		rec := out[36+i*24:]
		binary.LittleEndian.PutUint32(rec[0:4], l.id)
		binary.LittleEndian.PutUint32(rec[8:12], l.start)
		binary.LittleEndian.PutUint32(rec[12:16], l.end)
	}

	return out
}

type adtlRecord struct {
	tag  string
	id   uint32
	text string
}

func adtlPayload(records ...adtlRecord) []byte {
	out := []byte("adtl")

	for _, r := range records {
		body := make([]byte, 4, 4+len(r.text))
		binary.LittleEndian.PutUint32(body[0:4], r.id)
		body = append(body, r.text...)

		var hdr [8]byte
		copy(hdr[0:4], r.tag)
		binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(body)))

		out = append(out, hdr[:]...)
		out = append(out, body...)

		if len(body)%2 == 1 {
			out = append(out, 0)
		}
	}

	return out
}

func parseWav(t *testing.T, wav []byte, path string) *RiffFile {
	t.Helper()

	f, err := ParseRiff(bytes.NewReader(wav), path)
	if err != nil {
		t.Fatalf("parse riff: %v", err)
	}

	return f
}
