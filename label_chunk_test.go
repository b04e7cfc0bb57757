package regions

import (
	"encoding/binary"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestDecodeLabelsStandalone(t *testing.T) {
	wav := buildWav(t,
		testChunk{"fmt ", fmtPayload(44100)},
		testChunk{"labl", lablPayload(1, "Verse")},
		testChunk{"labl", lablPayload(2, "Chorus")},
	)

	got := decodeLabels(parseWav(t, wav, "standalone.wav"))
	want := []Label{
		{CuePointID: 1, Name: "Verse"},
		{CuePointID: 2, Name: "Chorus"},
	}

	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("label mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLabelsSkipsShortStandalone(t *testing.T) {
	wav := buildWav(t,
		testChunk{"labl", []byte{0x01, 0x00}},
		testChunk{"labl", lablPayload(2, "Bridge")},
	)

	got := decodeLabels(parseWav(t, wav, "short.wav"))

	if len(got) != 1 || got[0].CuePointID != 2 || got[0].Name != "Bridge" {
		t.Fatalf("expected only the usable label, got %+v", got)
	}
}

func TestDecodeLabelsStandalonePrecedence(t *testing.T) {
	wav := buildWav(t,
		testChunk{"labl", lablPayload(1, "Standalone")},
		testChunk{"LIST", adtlPayload(adtlRecord{tag: "labl", id: 1, text: "Adtl\x00"})},
	)

	got := decodeLabels(parseWav(t, wav, "precedence.wav"))

	if len(got) != 1 || got[0].Name != "Standalone" {
		t.Fatalf("expected the standalone label to win, got %+v", got)
	}
}

func TestDecodeLabelsStandaloneExistenceBlocksFallback(t *testing.T) {
	// The standalone chunk is too short to use, but its existence alone
	// keeps the LIST fallback switched off.
	wav := buildWav(t,
		testChunk{"labl", []byte{0x01}},
		testChunk{"LIST", adtlPayload(adtlRecord{tag: "labl", id: 1, text: "Adtl\x00"})},
	)

	if got := decodeLabels(parseWav(t, wav, "blocked.wav")); len(got) != 0 {
		t.Fatalf("expected no labels, got %+v", got)
	}
}

func TestDecodeLabelsAdtlFallback(t *testing.T) {
	wav := buildWav(t,
		testChunk{"fmt ", fmtPayload(44100)},
		testChunk{"LIST", adtlPayload(
			adtlRecord{tag: "labl", id: 1, text: "Intro\x00"},
			adtlRecord{tag: "note", id: 1, text: "a performance note\x00"},
			adtlRecord{tag: "labl", id: 2, text: "Outro\x00"},
		)},
	)

	got := decodeLabels(parseWav(t, wav, "adtl.wav"))
	want := []Label{
		{CuePointID: 1, Name: "Intro"},
		{CuePointID: 2, Name: "Outro"},
	}

	if diff := pretty.Compare(want, got); diff != "" {
		t.Fatalf("label mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLabelsFirstListChunkOnly(t *testing.T) {
	wav := buildWav(t,
		testChunk{"LIST", adtlPayload(adtlRecord{tag: "labl", id: 1, text: "First\x00"})},
		testChunk{"LIST", adtlPayload(adtlRecord{tag: "labl", id: 2, text: "Second\x00"})},
	)

	got := decodeLabels(parseWav(t, wav, "twolists.wav"))

	if len(got) != 1 || got[0].Name != "First" {
		t.Fatalf("expected only the first LIST chunk to be consulted, got %+v", got)
	}
}

func TestDecodeLabelsIgnoresNonAdtlList(t *testing.T) {
	info := append([]byte("INFO"), []byte("IART\x06\x00\x00\x00artist")...)

	wav := buildWav(t, testChunk{"LIST", info})

	if got := decodeLabels(parseWav(t, wav, "info.wav")); len(got) != 0 {
		t.Fatalf("expected no labels from an INFO list, got %+v", got)
	}
}

func TestDecodeAdtlLabelsStopsAtOverrun(t *testing.T) {
	data := adtlPayload(adtlRecord{tag: "labl", id: 1, text: "Kept\x00"})

	// append a record whose declared size overruns the payload
	data = append(data, "labl"...)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], 64)
	data = append(data, size[:]...)
	data = append(data, 0x05, 0x00, 0x00, 0x00)

	got := decodeAdtlLabels(data)

	if len(got) != 1 || got[0].Name != "Kept" {
		t.Fatalf("expected the walk to stop after the good record, got %+v", got)
	}
}

func TestDecodeLabelsReplacesInvalidUTF8(t *testing.T) {
	raw := append(lablPayload(3, "Dr"), 0xFF, 'p')

	wav := buildWav(t, testChunk{"labl", raw})

	got := decodeLabels(parseWav(t, wav, "lossy.wav"))

	if len(got) != 1 {
		t.Fatalf("expected one label, got %+v", got)
	}

	if got[0].Name != "Dr\x00�p" {
		t.Fatalf("expected lossy decoding, got %q", got[0].Name)
	}
}
