package regions

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// smpl chunk is documented here:
// https://sites.google.com/site/musicgapi/technical-documents/wav-file-format#smpl

// SamplerInfo is the decoded smpl chunk header plus its sample loops.
type SamplerInfo struct {
	Manufacturer      uint32
	Product           uint32
	SamplePeriod      uint32
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	NumSampleLoops    uint32
	SamplerData       uint32
	Loops             []SampleLoop
}

// SampleLoop is one 24-byte loop record. REAPER stores a region as a loop
// whose CuePointID names a cue point and whose End is the region end in
// samples.
type SampleLoop struct {
	CuePointID uint32
	Type       uint32
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32
}

// decodeSamplerChunk decodes a smpl payload. Unlike cue and label decoding,
// truncation here is fatal: a sampler chunk that cannot hold what it
// declares poisons the whole parse.
func decodeSamplerChunk(c *Chunk) (*SamplerInfo, error) {
	r := bytes.NewReader(c.Data)
	info := &SamplerInfo{}

	if err := binary.Read(r, binary.LittleEndian, &info.Manufacturer); err != nil {
		return nil, fmt.Errorf("failed to read the smpl manufacturer: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.Product); err != nil {
		return nil, fmt.Errorf("failed to read the smpl product: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.SamplePeriod); err != nil {
		return nil, fmt.Errorf("failed to read the sample period: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.MIDIUnityNote); err != nil {
		return nil, fmt.Errorf("failed to read the MIDI unity note: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.MIDIPitchFraction); err != nil {
		return nil, fmt.Errorf("failed to read the MIDI pitch fraction: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.SMPTEFormat); err != nil {
		return nil, fmt.Errorf("failed to read the SMPTE format: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.SMPTEOffset); err != nil {
		return nil, fmt.Errorf("failed to read the SMPTE offset: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.NumSampleLoops); err != nil {
		return nil, fmt.Errorf("failed to read the number of sample loops: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &info.SamplerData); err != nil {
		return nil, fmt.Errorf("failed to read the sampler data size: %w", err)
	}

	for range info.NumSampleLoops {
		var sampleLoop SampleLoop

		if err := binary.Read(r, binary.LittleEndian, &sampleLoop.CuePointID); err != nil {
			return nil, fmt.Errorf("failed to read the sample loop cue point id: %w", err)
		}

		if err := binary.Read(r, binary.LittleEndian, &sampleLoop.Type); err != nil {
			return nil, fmt.Errorf("failed to read the sample loop type: %w", err)
		}

		if err := binary.Read(r, binary.LittleEndian, &sampleLoop.Start); err != nil {
			return nil, fmt.Errorf("failed to read the sample loop start: %w", err)
		}

		if err := binary.Read(r, binary.LittleEndian, &sampleLoop.End); err != nil {
			return nil, fmt.Errorf("failed to read the sample loop end: %w", err)
		}

		if err := binary.Read(r, binary.LittleEndian, &sampleLoop.Fraction); err != nil {
			return nil, fmt.Errorf("failed to read the sample loop fraction: %w", err)
		}

		if err := binary.Read(r, binary.LittleEndian, &sampleLoop.PlayCount); err != nil {
			return nil, fmt.Errorf("failed to read the sample loop play count: %w", err)
		}

		info.Loops = append(info.Loops, sampleLoop)
	}

	return info, nil
}
