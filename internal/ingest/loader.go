package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecotally/ecotally/internal/ocr"
)

// FSLoader reads receipt documents from the local filesystem.
type FSLoader struct {
	extractor *ocr.Extractor
	logger    *slog.Logger
}

// NewFSLoader builds a loader. extractor may be nil, in which case image
// files are rejected instead of run through tesseract.
func NewFSLoader(extractor *ocr.Extractor, logger *slog.Logger) *FSLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSLoader{extractor: extractor, logger: logger}
}

func (l *FSLoader) LoadPath(ctx context.Context, path string) (Document, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read text file: %w", err)
		}
		return Document{SourcePath: path, RawText: ocr.Normalize(string(data))}, nil

	case "json":
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read ocr dump: %w", err)
		}
		var res ocr.Result
		if err := json.Unmarshal(data, &res); err != nil {
			return Document{}, fmt.Errorf("decode ocr dump %s: %w", path, err)
		}
		return Document{SourcePath: path, RawText: res.Text, Words: res.Words}, nil

	case "png", "jpg", "jpeg":
		if l.extractor == nil {
			return Document{}, fmt.Errorf("no OCR extractor configured for image %s", path)
		}
		res, err := l.extractor.Extract(ctx, path)
		if err != nil {
			return Document{}, fmt.Errorf("ocr %s: %w", path, err)
		}
		for _, w := range res.Warnings {
			l.logger.Warn("ocr warning", "path", path, "warning", w)
		}
		return Document{SourcePath: path, RawText: res.Text, Words: res.Words}, nil

	default:
		return Document{}, fmt.Errorf("unsupported file extension %q", ext)
	}
}
