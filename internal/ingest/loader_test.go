package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const ocrDumpJSON = `{
	"text": "WALMART\nMILK 3.50",
	"words": [
		{"text": "MILK", "bounding_box": {"vertices": [{"x":10,"y":50},{"x":50,"y":50},{"x":50,"y":62},{"x":10,"y":62}]}},
		{"text": "3.50", "bounding_box": {"vertices": [{"x":120,"y":50},{"x":160,"y":50},{"x":160,"y":62},{"x":120,"y":62}]}}
	],
	"confidence": 0.91
}`

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()
	l := NewFSLoader(nil, nil)
	ctx := context.Background()

	t.Run("text file", func(t *testing.T) {
		path := writeFile(t, dir, "receipt.txt", "WALMART\n\n\nMILK  3.50\n")
		doc, err := l.LoadPath(ctx, path)
		if err != nil {
			t.Fatalf("LoadPath() error: %v", err)
		}
		if doc.SourcePath != path {
			t.Errorf("SourcePath = %q", doc.SourcePath)
		}
		if doc.RawText == "" || len(doc.Words) != 0 {
			t.Errorf("doc = %+v, want raw text only", doc)
		}
	})

	t.Run("ocr dump", func(t *testing.T) {
		path := writeFile(t, dir, "receipt.json", ocrDumpJSON)
		doc, err := l.LoadPath(ctx, path)
		if err != nil {
			t.Fatalf("LoadPath() error: %v", err)
		}
		if len(doc.Words) != 2 {
			t.Fatalf("Words = %d, want 2", len(doc.Words))
		}
		if doc.Words[0].Text != "MILK" || doc.Words[0].BoundingBox.MidY() != 56 {
			t.Errorf("word 0 = %+v", doc.Words[0])
		}
	})

	t.Run("malformed ocr dump", func(t *testing.T) {
		path := writeFile(t, dir, "broken.json", "{not json")
		if _, err := l.LoadPath(ctx, path); err == nil {
			t.Errorf("LoadPath() accepted malformed json")
		}
	})

	t.Run("image without extractor", func(t *testing.T) {
		path := writeFile(t, dir, "receipt.png", "fake")
		if _, err := l.LoadPath(ctx, path); err == nil {
			t.Errorf("LoadPath() accepted image with nil extractor")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "receipt.pdf", "x")
		if _, err := l.LoadPath(ctx, path); err == nil {
			t.Errorf("LoadPath() accepted unsupported extension")
		}
	})
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "WALMART\nMILK 3.50")
	writeFile(t, dir, "copy-of-a.txt", "WALMART\nMILK 3.50") // same content, deduplicated
	writeFile(t, dir, "b.json", ocrDumpJSON)
	writeFile(t, dir, "notes.md", "ignore me")
	writeFile(t, dir, ".hidden.txt", "ignore me too")

	l := NewFSLoader(nil, nil)
	docs, results, stats, err := l.LoadDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("LoadDirectory() error: %v", err)
	}

	if len(docs) != 2 {
		t.Errorf("docs = %d, want 2", len(docs))
	}
	if stats.Matched != 3 {
		t.Errorf("Matched = %d, want 3", stats.Matched)
	}
	if stats.Succeeded != 3 {
		t.Errorf("Succeeded = %d, want 3", stats.Succeeded)
	}
	if stats.Deduplicated != 1 {
		t.Errorf("Deduplicated = %d, want 1", stats.Deduplicated)
	}
	if stats.Failed != 0 {
		t.Errorf("Failed = %d, want 0", stats.Failed)
	}

	dedups := 0
	for _, r := range results {
		if r.Deduplicated {
			dedups++
		}
		if r.HashHex == "" && r.Err == "" {
			t.Errorf("result %q has neither hash nor error", r.Path)
		}
	}
	if dedups != 1 {
		t.Errorf("deduplicated results = %d, want 1", dedups)
	}
}

func TestLoadDirectoryEmptyRoot(t *testing.T) {
	l := NewFSLoader(nil, nil)
	if _, _, _, err := l.LoadDirectory(context.Background(), "  ", true); err == nil {
		t.Errorf("LoadDirectory() accepted empty root")
	}
}
