// Package regions recovers REAPER marker and region metadata from WAV files.
//
// REAPER writes project markers into standard RIFF chunks: cue points into
// "cue ", marker names into standalone "labl" chunks or LIST/adtl
// sub-records, and region end offsets into "smpl" sampler loops. The package
// walks the container, decodes the three tables, and joins them on their
// shared identifiers into an ordered list of named markers and regions.
//
// Missing metadata is not an error: a file without a sampler or cue chunk
// parses to an empty marker list with a Reason describing what was absent.
// Only structural problems (a broken container, an unreadable format or
// sampler chunk) surface as errors.
//
// Strip re-emits a container with the audio payload emptied while preserving
// every other chunk byte for byte, which turns multi-megabyte project files
// into kilobyte-sized metadata carriers.
package regions
