package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// tesseract TSV columns: level page_num block_num par_num line_num word_num
// left top width height conf text. Word rows have level 5.
const (
	tsvLevelWord = "5"
	tsvMinCols   = 12
)

// tesseractTSV runs tesseract in TSV mode and returns word annotations with
// bounding boxes plus the mean word confidence in 0..1.
func (e *Extractor) tesseractTSV(ctx context.Context, path string) ([]WordAnnotation, float32, []string, error) {
	args := append(e.baseArgs(path), "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}

	lines := strings.Split(string(out), "\n")
	var words []WordAnnotation
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < tsvMinCols {
			continue // defensive
		}
		if cols[0] != tsvLevelWord {
			continue
		}
		text := strings.TrimSpace(cols[len(cols)-1])
		if text == "" {
			continue
		}

		left, err1 := strconv.Atoi(cols[6])
		top, err2 := strconv.Atoi(cols[7])
		width, err3 := strconv.Atoi(cols[8])
		height, err4 := strconv.Atoi(cols[9])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		words = append(words, WordAnnotation{
			Text:        text,
			BoundingBox: Box(left, top, width, height),
		})

		if confStr := cols[10]; confStr != "" && confStr != "-1" {
			if v, err := strconv.ParseFloat(confStr, 64); err == nil {
				sum += v
				n++
			}
		}
	}
	if n == 0 {
		return words, 0, nil, nil
	}
	mean := sum / n // 0..100
	return words, float32(mean / 100.0), nil, nil
}
