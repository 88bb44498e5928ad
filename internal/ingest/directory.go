package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var defaultExts = map[string]struct{}{
	"txt":  {},
	"json": {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// LoadDirectory walks root, filters by the supported extensions, skips hidden
// entries if requested, and loads each file. Duplicate file contents (by
// SHA-256) are loaded once. Returns documents, per-file results, and
// aggregate stats.
func (l *FSLoader) LoadDirectory(ctx context.Context, root string, skipHidden bool) ([]Document, []DocResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, DirStats{}, errors.New("root path is required")
	}

	var docs []Document
	var results []DocResult
	var stats DirStats
	seen := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, DocResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if _, ok := defaultExts[ext]; !ok {
			return nil
		}
		stats.Matched++

		hashHex, err := hashFile(path)
		if err != nil {
			results = append(results, DocResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		if _, dup := seen[hashHex]; dup {
			results = append(results, DocResult{Path: path, Deduplicated: true, HashHex: hashHex})
			stats.Succeeded++
			stats.Deduplicated++
			return nil
		}
		seen[hashHex] = struct{}{}

		doc, err := l.LoadPath(ctx, path)
		if err != nil {
			results = append(results, DocResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		docs = append(docs, doc)
		results = append(results, DocResult{Path: path, HashHex: hashHex})
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return docs, results, stats, err
	}
	return docs, results, stats, nil
}

func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
