package regions

import (
	"encoding/json"
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("regions")

// WavData is everything recovered from one WAV file: where it came from,
// its sample rate, the reconciled markers, and when the marker list is
// empty for an identifiable cause, a Reason saying why.
type WavData struct {
	Path       string   `json:"path"`
	SampleRate uint32   `json:"sample_rate"`
	Markers    []Marker `json:"markers"`
	Reason     Reason   `json:"reason,omitempty"`
	ReasonText string   `json:"reason_text,omitempty"`
}

// SetReason records why the parse yielded no markers, along with the
// matching human-readable text.
func (w *WavData) SetReason(r Reason) {
	w.Reason = r
	w.ReasonText = r.Text()
}

// ClearReason drops the diagnostic state.
func (w *WavData) ClearReason() {
	w.Reason = ""
	w.ReasonText = ""
}

// JSON renders the result as indented JSON. Marker times are rounded to
// milliseconds on the way out.
func (w *WavData) JSON() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

// ParseFile opens a WAV file and recovers the REAPER markers and regions
// stored in its metadata chunks.
func ParseFile(path string) (*WavData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	riffFile, err := ParseRiff(f, path)
	if err != nil {
		return nil, err
	}

	return Parse(riffFile)
}

// Parse reconciles the metadata chunks of an already-walked container into
// markers. Missing metadata is not an error: the result then carries zero
// markers and, when the cause is identifiable, a Reason. Only a container
// that cannot be decoded at all, such as a malformed fmt chunk or a
// truncated smpl chunk, returns an error.
//
// Regions need all three of labels, cue points and sample loops, so the
// prerequisites are checked in that order of severity: no smpl chunk means
// nothing can be a region and the parse stops with NoSamplerData, and no
// usable cue table stops it with NoCuePoints. A file that still yields no
// markers past those gates simply has nothing labeled, which needs no
// explanation.
func Parse(f *RiffFile) (*WavData, error) {
	rate, err := sampleRate(f.First(ChunkFormat))
	if err != nil {
		return nil, err
	}

	data := &WavData{
		Path:       f.Path,
		SampleRate: rate,
		Markers:    []Marker{},
	}

	smplChunk := f.First(ChunkSampler)
	if smplChunk == nil {
		log.Debugw("no sampler chunk", "path", f.Path)
		data.SetReason(NoSamplerData)

		return data, nil
	}

	sampler, err := decodeSamplerChunk(smplChunk)
	if err != nil {
		return nil, err
	}

	cues, ok := decodeCuePoints(f.First(ChunkCue))
	if !ok {
		log.Debugw("no usable cue chunk", "path", f.Path)
		data.SetReason(NoCuePoints)

		return data, nil
	}

	data.Markers = matchMarkers(decodeLabels(f), cues, sampler, rate)

	return data, nil
}
