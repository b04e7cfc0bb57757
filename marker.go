package regions

import (
	"encoding/json"
	"math"
	"sort"
)

// MarkerType distinguishes point markers from regions.
type MarkerType string

const (
	MarkerTypeMarker MarkerType = "Marker"
	MarkerTypeRegion MarkerType = "Region"
)

// Marker is one recovered REAPER marker or region. Sample positions are
// authoritative; the *Time fields are derived seconds kept at full float64
// precision and rounded only when serialized.
type Marker struct {
	ID        uint32     `json:"id"`
	Name      string     `json:"name"`
	Type      MarkerType `json:"type"`
	Start     uint32     `json:"start"`
	End       *uint32    `json:"end,omitempty"`
	StartTime float64    `json:"start_time"`
	EndTime   *float64   `json:"end_time,omitempty"`
	Duration  *float64   `json:"duration,omitempty"`
}

// Round3 rounds a time in seconds to three decimal places. Marker times
// stay exact internally and pass through this only at output boundaries.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// MarshalJSON emits the marker with its times rounded to milliseconds.
func (m Marker) MarshalJSON() ([]byte, error) {
	type alias Marker

	out := alias(m)
	out.StartTime = Round3(out.StartTime)

	if out.EndTime != nil {
		v := Round3(*out.EndTime)
		out.EndTime = &v
	}

	if out.Duration != nil {
		v := Round3(*out.Duration)
		out.Duration = &v
	}

	return json.Marshal(out)
}

func newMarker(id uint32, name string, start uint32, end *uint32, rate uint32) Marker {
	m := Marker{
		ID:        id,
		Name:      name,
		Type:      MarkerTypeMarker,
		Start:     start,
		StartTime: float64(start) / float64(rate),
	}

	if end != nil {
		m.Type = MarkerTypeRegion
		m.End = end

		endTime := float64(*end) / float64(rate)
		duration := endTime - m.StartTime
		m.EndTime = &endTime
		m.Duration = &duration
	}

	return m
}

// matchMarkers joins labels, cue points and sample loops on the cue point
// ID. Labels drive the join: every labeled ID yields exactly one marker,
// with duplicate labels, cue points or loops resolved last-wins. An ID
// with a loop end becomes a region, otherwise a point marker. A label
// without a cue point sits at sample 0. The result is ordered by start
// position, then by ID.
func matchMarkers(labels []Label, cues map[uint32]uint32, sampler *SamplerInfo, rate uint32) []Marker {
	names := make(map[uint32]string, len(labels))
	for _, l := range labels {
		names[l.CuePointID] = l.Name
	}

	ends := make(map[uint32]uint32)
	if sampler != nil {
		for _, lp := range sampler.Loops {
			ends[lp.CuePointID] = lp.End
		}
	}

	markers := make([]Marker, 0, len(names))

	for id, name := range names {
		var end *uint32
		if e, ok := ends[id]; ok {
			end = &e
		}

		markers = append(markers, newMarker(id, name, cues[id], end, rate))
	}

	sort.Slice(markers, func(i, j int) bool {
		if markers[i].Start != markers[j].Start {
			return markers[i].Start < markers[j].Start
		}

		return markers[i].ID < markers[j].ID
	})

	return markers
}
