// This tool generates a sine-tone wav carrying REAPER marker metadata:
// cue points, standalone labels and sampler loops laid out evenly across
// the file. Handy for producing deterministic test inputs.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-markers", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "tone frequency in hertz")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Int("rate", 44100, "sample rate in hertz")
	markers := flagSet.Int("markers", 1, "number of point markers to embed")
	regionCount := flagSet.Int("regions", 1, "number of regions to embed")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	numSamples := int(float64(*rate) * *length)

	log.Printf("generating %s: %f sec at %d hz with %d markers and %d regions",
		*output, *length, *rate, *markers, *regionCount)

	if err := writeTone(*output, *rate, numSamples, *frequency); err != nil {
		return err
	}

	specs := layoutMarkers(*markers, *regionCount, uint32(numSamples))

	return appendMarkers(*output, specs, uint32(*rate))
}

func writeTone(path string, rate, numSamples int, frequency float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	enc := wav.NewEncoder(file, rate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, numSamples),
	}

	for i := range buf.Data {
		fv := math.Sin(float64(i) / float64(rate) * frequency * 2 * math.Pi)
		buf.Data[i] = int(fv * 32767)
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}

// markerSpec is one planned entry; end stays 0 for point markers.
type markerSpec struct {
	id    uint32
	name  string
	start uint32
	end   uint32
}

// layoutMarkers spreads the requested entries evenly across the file,
// regions first, each region spanning half the spacing interval.
func layoutMarkers(numMarkers, numRegions int, totalSamples uint32) []markerSpec {
	n := numMarkers + numRegions
	if n <= 0 {
		return nil
	}

	specs := make([]markerSpec, 0, n)
	step := totalSamples / uint32(n+1)

	for i := range n {
		spec := markerSpec{
			id:    uint32(i + 1),
			start: step * uint32(i+1),
		}

		if i < numRegions {
			spec.name = fmt.Sprintf("Region %d", i+1)
			spec.end = spec.start + step/2
		} else {
			spec.name = fmt.Sprintf("Marker %d", i-numRegions+1)
		}

		specs = append(specs, spec)
	}

	return specs
}

// appendMarkers tacks the metadata chunks onto an encoded wav and patches
// the declared RIFF size to cover them.
func appendMarkers(path string, specs []markerSpec, rate uint32) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	raw = appendChunk(raw, "cue ", cuePayload(specs))

	for _, s := range specs {
		raw = appendChunk(raw, "labl", lablPayload(s))
	}

	raw = appendChunk(raw, "smpl", smplPayload(specs, rate))

	binary.LittleEndian.PutUint32(raw[4:8], uint32(len(raw)-8))

	return os.WriteFile(path, raw, 0o644)
}

func appendChunk(buf []byte, id string, payload []byte) []byte {
	buf = append(buf, id...)

	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(payload)))
	buf = append(buf, size[:]...)

	buf = append(buf, payload...)

	if len(payload)%2 == 1 {
		buf = append(buf, 0)
	}

	return buf
}

func cuePayload(specs []markerSpec) []byte {
	out := make([]byte, 4+len(specs)*24)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(specs)))

	for i, s := range specs {
		rec := out[4+i*24:]
		binary.LittleEndian.PutUint32(rec[0:4], s.id)
		binary.LittleEndian.PutUint32(rec[4:8], s.start)
		copy(rec[8:12], "data")
		binary.LittleEndian.PutUint32(rec[20:24], s.start)
	}

	return out
}

func lablPayload(s markerSpec) []byte {
	out := make([]byte, 4, 5+len(s.name))
	binary.LittleEndian.PutUint32(out[0:4], s.id)
	out = append(out, s.name...)
	out = append(out, 0)

	return out
}

func smplPayload(specs []markerSpec, rate uint32) []byte {
	var loops []markerSpec

	for _, s := range specs {
		if s.end > 0 {
			loops = append(loops, s)
		}
	}

	out := make([]byte, 36+len(loops)*24)
	binary.LittleEndian.PutUint32(out[8:12], 1_000_000_000/rate)
	binary.LittleEndian.PutUint32(out[12:16], 60)
	binary.LittleEndian.PutUint32(out[28:32], uint32(len(loops)))

	for i, s := range loops {
		rec := out[36+i*24:]
		binary.LittleEndian.PutUint32(rec[0:4], s.id)
		binary.LittleEndian.PutUint32(rec[8:12], s.start)
		binary.LittleEndian.PutUint32(rec[12:16], s.end)
	}

	return out
}
