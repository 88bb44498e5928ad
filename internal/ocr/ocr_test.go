package ocr

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

// fakeRunner serves canned stdout per invocation mode. The TSV pass is
// recognized by the trailing "tsv" argument.
type fakeRunner struct {
	text   string
	tsv    string
	tsvErr error
}

func (f fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		return []byte(f.tsv), nil, f.tsvErr
	}
	return []byte(f.text), nil, nil
}

func tsvRow(level string, left, top, width, height int, conf, text string) string {
	cols := []string{level, "1", "1", "1", "1", "1"}
	for _, v := range []int{left, top, width, height} {
		cols = append(cols, strconv.Itoa(v))
	}
	cols = append(cols, conf, text)
	return strings.Join(cols, "\t")
}

func sampleTSV() string {
	return strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		tsvRow("4", 10, 50, 200, 12, "-1", ""), // line row, skipped
		tsvRow("5", 10, 50, 40, 12, "95", "MILK"),
		tsvRow("5", 120, 50, 40, 12, "90", "3.50"),
		tsvRow("5", 10, 90, 40, 12, "-1", "TOTAL"), // no confidence reported
		tsvRow("5", 60, 90, 40, 12, "85", " "),     // whitespace text, skipped
		"",
	}, "\n")
}

func TestExtract(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{
		text: "MILK 3.50\nTOTAL $3.50\n",
		tsv:  sampleTSV(),
	}

	res, err := e.Extract(context.Background(), "receipt.png")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if res.Text != "MILK 3.50\nTOTAL $3.50" {
		t.Errorf("Text = %q", res.Text)
	}
	if len(res.Words) != 3 {
		t.Fatalf("Words = %d, want 3", len(res.Words))
	}
	if res.Words[0].Text != "MILK" {
		t.Errorf("word 0 = %+v", res.Words[0])
	}
	if got := res.Words[0].BoundingBox; got.MidY() != 56 || got.MidX() != 30 {
		t.Errorf("word 0 box midpoint = (%v, %v), want (30, 56)", got.MidX(), got.MidY())
	}
	if res.Language != "eng" {
		t.Errorf("Language = %q, want eng", res.Language)
	}

	// TSV mean is (95+90)/2 = 92.5%; the heuristic sees currency and amount
	// shapes (0.2 + 0.15 + 0.15). Blend: 0.7*0.925 + 0.3*0.5.
	want := 0.7*0.925 + 0.3*0.5
	if math.Abs(float64(res.Confidence)-want) > 1e-6 {
		t.Errorf("Confidence = %v, want %v", res.Confidence, want)
	}
}

func TestExtractDegradesWithoutTSV(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = fakeRunner{
		text:   "MILK 3.50\n",
		tsvErr: errors.New("boom"),
	}

	res, err := e.Extract(context.Background(), "receipt.png")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(res.Words) != 0 {
		t.Errorf("Words = %+v, want none after TSV failure", res.Words)
	}
	if len(res.Warnings) == 0 {
		t.Errorf("Warnings empty, want TSV failure recorded")
	}
	if res.Text == "" {
		t.Errorf("Text lost on TSV failure")
	}
}

func TestBaseArgs(t *testing.T) {
	e := NewExtractor(Config{TesseractLang: "deu", PSM: 6, OEM: 1, TessdataDir: "/opt/tessdata"}, nil)
	got := strings.Join(e.baseArgs("r.png"), " ")
	want := "r.png stdout -l deu --psm 6 --oem 1 --tessdata-dir /opt/tessdata"
	if got != want {
		t.Errorf("baseArgs = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows line endings", "A\r\nB\r\n", "A\nB"},
		{"trailing spaces stripped", "MILK 3.50   \nBREAD 2.00\t\n", "MILK 3.50\nBREAD 2.00"},
		{"surrounding blank lines trimmed", "\n\nWALMART\n\n", "WALMART"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
