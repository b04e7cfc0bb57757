// This tool strips the audio data out of wav files in bulk, leaving the
// REAPER marker metadata intact. Stripped copies are written beside their
// sources with a suffix, so a project folder can be archived at a fraction
// of its size without losing a single marker.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	regions "github.com/dra11y/reaper-regions"
)

const missingDirMessage = "You must pass the folder containing the wav files to strip"

var errMissingDir = errors.New("missing folder argument")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingDir) {
		fmt.Println(missingDirMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out, errOut io.Writer) error {
	flagSet := flag.NewFlagSet("wavstrip", flag.ContinueOnError)

	suffix := flagSet.String("suffix", "_stripped", "suffix appended to output file names")
	debug := flagSet.Bool("debug", false, "enable debug logging")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	level := "warn"
	if *debug {
		level = "debug"
	}

	if err := logging.SetLogLevel("regions", level); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingDir
	}

	root := flagSet.Arg(0)
	fmt.Fprintf(out, "Processing WAV files in: %s\n", root)

	files, err := findWavFiles(root, *suffix)
	if err != nil {
		return err
	}

	type result struct {
		line string
		err  error
	}

	results := make([]result, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			line, err := stripFile(path, *suffix)
			results[i] = result{line: line, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	processed, failed := 0, 0

	for i, r := range results {
		if r.err != nil {
			fmt.Fprintf(errOut, "Error processing %s: %v\n", files[i], r.err)
			failed++

			continue
		}

		fmt.Fprintln(out, r.line)
		processed++
	}

	fmt.Fprintf(out, "\nDone! Processed: %d, Errors: %d\n", processed, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}

	return nil
}

// findWavFiles walks the tree collecting wav files, skipping any whose stem
// already carries the output suffix so reruns never strip their own output.
func findWavFiles(root, suffix string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".wav") {
			return nil
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if strings.HasSuffix(stem, suffix) {
			return nil
		}

		files = append(files, path)

		return nil
	})

	return files, err
}

func stripFile(path, suffix string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	f, err := regions.ParseRiff(in, path)
	if err != nil {
		return "", err
	}

	stripped := regions.Strip(f)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(filepath.Dir(path), stem+suffix+".wav")

	if err := os.WriteFile(outPath, stripped, 0o644); err != nil {
		return "", err
	}

	info, err := in.Stat()
	if err != nil {
		return "", err
	}

	reduction := float64(info.Size()-int64(len(stripped))) / float64(info.Size()) * 100

	return fmt.Sprintf("Stripped %s -> %s (%d KB, %.1f%% reduction)",
		filepath.Base(path), filepath.Base(outPath), len(stripped)/1024, reduction), nil
}
