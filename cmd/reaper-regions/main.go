// This tool prints the REAPER markers and regions stored in a wav file.
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	regions "github.com/dra11y/reaper-regions"
)

const missingPathMessage = "You must pass the path of the wav file to read"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("reaper-regions", flag.ContinueOnError)

	format := flagSet.String("format", "human", "output format: human, json, csv, tsv or psv")
	noHeader := flagSet.Bool("no-header", false, "omit the header row in delimited formats")
	debug := flagSet.Bool("debug", false, "enable debug logging")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	switch *format {
	case "human", "json", "csv", "tsv", "psv":
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	level := "warn"
	if *debug {
		level = "debug"
	}

	if err := logging.SetLogLevel("regions", level); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	data, err := regions.ParseFile(flagSet.Arg(0))
	if err != nil {
		// keep stdout machine readable even on failure
		if *format == "json" {
			writeJSONError(out, err)
		}

		return err
	}

	switch *format {
	case "json":
		return writeJSON(out, data)
	case "csv":
		return writeDelimited(out, data, ',', !*noHeader)
	case "tsv":
		return writeDelimited(out, data, '\t', !*noHeader)
	case "psv":
		return writeDelimited(out, data, '|', !*noHeader)
	default:
		writeHuman(out, data)

		return nil
	}
}

func writeHuman(out io.Writer, data *regions.WavData) {
	fmt.Fprintf(out, "File: %s\n", data.Path)
	fmt.Fprintf(out, "Sample rate: %d Hz\n", data.SampleRate)
	fmt.Fprintf(out, "Total markers: %d\n", len(data.Markers))

	if data.Reason != "" {
		fmt.Fprintf(out, "Reason: %s: %s\n", data.Reason, data.ReasonText)
	}

	fmt.Fprintln(out)

	for _, m := range data.Markers {
		if m.Type == regions.MarkerTypeRegion {
			fmt.Fprintf(out, "Region (ID: %d): '%s'\n", m.ID, m.Name)
			fmt.Fprintf(out, "  Start: %.3fs (%d samples)\n", regions.Round3(m.StartTime), m.Start)
			fmt.Fprintf(out, "  End: %.3fs (%d samples)\n", regions.Round3(*m.EndTime), *m.End)
			fmt.Fprintf(out, "  Duration: %.3fs\n", regions.Round3(*m.Duration))
		} else {
			fmt.Fprintf(out, "Marker (ID: %d): '%s'\n", m.ID, m.Name)
			fmt.Fprintf(out, "  Position: %.3fs (%d samples)\n", regions.Round3(m.StartTime), m.Start)
		}

		fmt.Fprintln(out)
	}
}

func writeJSON(out io.Writer, data *regions.WavData) error {
	buf, err := data.JSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(buf))

	return err
}

func writeJSONError(out io.Writer, parseErr error) {
	buf, err := json.MarshalIndent(map[string]string{"error": parseErr.Error()}, "", "  ")
	if err != nil {
		return
	}

	fmt.Fprintln(out, string(buf))
}

func writeDelimited(out io.Writer, data *regions.WavData, comma rune, header bool) error {
	w := csv.NewWriter(out)
	w.Comma = comma

	if header {
		err := w.Write([]string{
			"type", "id", "name", "start", "end",
			"start_time", "end_time", "duration", "sample_rate",
		})
		if err != nil {
			return err
		}
	}

	for _, m := range data.Markers {
		rec := []string{
			strings.ToLower(string(m.Type)),
			strconv.FormatUint(uint64(m.ID), 10),
			m.Name,
			strconv.FormatUint(uint64(m.Start), 10),
			"",
			fmt.Sprintf("%.3f", regions.Round3(m.StartTime)),
			"",
			"",
			strconv.FormatUint(uint64(data.SampleRate), 10),
		}

		if m.End != nil {
			rec[4] = strconv.FormatUint(uint64(*m.End), 10)
		}

		if m.EndTime != nil {
			rec[6] = fmt.Sprintf("%.3f", regions.Round3(*m.EndTime))
		}

		if m.Duration != nil {
			rec[7] = fmt.Sprintf("%.3f", regions.Round3(*m.Duration))
		}

		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
