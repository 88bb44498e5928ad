package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

var reBoxNoise = regexp.MustCompile(`(?m)^[|_\\derw]{1,3}$\n?`)

// Extract runs the OCR engine twice: once for plain text and once in TSV mode
// for word positions and confidence. Word annotations are best-effort; a TSV
// failure degrades to text-only output.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	e.logger.Debug("starting ocr extraction", "path", path, "lang", e.cfg.TesseractLang)

	txt, warns, err := e.tesseractText(ctx, path)
	if err != nil {
		return Result{Warnings: warns}, err
	}
	txt = Normalize(txt)

	words, conf, tsvWarns, tsvErr := e.tesseractTSV(ctx, path)
	warns = append(warns, tsvWarns...)
	if tsvErr != nil {
		e.logger.Warn("tsv extraction failed, continuing text-only", "path", path, "error", tsvErr)
		warns = append(warns, tsvErr.Error())
		words = nil
	}

	heurConf := heuristicConfidence(txt)
	if conf > 0 {
		conf = 0.7*conf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return Result{
		Text:       txt,
		Words:      words,
		Language:   e.cfg.TesseractLang,
		Confidence: conf,
		Warnings:   warns,
	}, nil
}

func (e *Extractor) tesseractText(ctx context.Context, path string) (string, []string, error) {
	args := e.baseArgs(path)

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}

func (e *Extractor) baseArgs(path string) []string {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}

// Normalize collapses noisy whitespace while preserving line structure.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		out = append(out, strings.TrimRight(ln, " \t"))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
