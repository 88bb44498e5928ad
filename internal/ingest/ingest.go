// Package ingest discovers receipt documents on the filesystem and turns them
// into parser input. It accepts plain-text OCR dumps (.txt), serialized OCR
// results with word geometry (.json), and receipt images handed to the OCR
// extractor.
package ingest

import (
	"context"

	"github.com/ecotally/ecotally/internal/ocr"
)

// Document is one receipt ready for parsing.
type Document struct {
	SourcePath string
	RawText    string
	Words      []ocr.WordAnnotation
}

// DocResult is the per-file ingest outcome.
type DocResult struct {
	Path         string
	Deduplicated bool
	HashHex      string
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Loader is the behavior the batch and daemon commands depend on.
type Loader interface {
	// LoadPath reads a single document.
	LoadPath(ctx context.Context, path string) (Document, error)
	// LoadDirectory loads all matching documents under root.
	LoadDirectory(ctx context.Context, root string, skipHidden bool) ([]Document, []DocResult, DirStats, error)
}
