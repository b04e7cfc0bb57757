package regions

// Reason explains why a parse yielded zero markers even though the
// container itself was readable. It is diagnostic state, not an error:
// a WAV file with no REAPER metadata is still a perfectly good WAV file.
type Reason string

const (
	// NoLabels reports that no label chunks exist anywhere in the file.
	NoLabels Reason = "NoLabels"
	// NoSamplerData reports that the smpl chunk is missing, so region
	// ends are unknowable.
	NoSamplerData Reason = "NoSamplerData"
	// NoCuePoints reports that labels or sampler data exist but the cue
	// point table does not.
	NoCuePoints Reason = "NoCuePoints"
	// NoMarkersMatched reports that metadata exists but nothing joined
	// up into a marker.
	NoMarkersMatched Reason = "NoMarkersMatched"
)

var reasonTexts = map[Reason]string{
	NoLabels:         "No label chunks were found in the file",
	NoSamplerData:    "No 'smpl' (sampler) chunk was found in the file",
	NoCuePoints:      "Labels and/or sampler data found but no 'cue ' chunk",
	NoMarkersMatched: "Metadata exists but couldn't be matched into markers",
}

// Text returns the fixed human-readable explanation for the reason.
func (r Reason) Text() string {
	return reasonTexts[r]
}
