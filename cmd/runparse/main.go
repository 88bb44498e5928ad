// runparse parses a single receipt document offline and prints the result as
// JSON. No database is needed; it is the quickest way to see what the parser
// makes of a file.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/ecotally/ecotally/internal/classify"
	"github.com/ecotally/ecotally/internal/common"
	"github.com/ecotally/ecotally/internal/ecoscore"
	"github.com/ecotally/ecotally/internal/ingest"
	"github.com/ecotally/ecotally/internal/ocr"
	"github.com/ecotally/ecotally/internal/parser"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runparse <receipt file (.txt, .json, .png, .jpg)>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	tables := classify.DefaultTables()
	if cfg.Parser.TablesPath != "" {
		loaded, err := classify.LoadTables(cfg.Parser.TablesPath)
		if err != nil {
			logger.Error("failed to load category tables", "path", cfg.Parser.TablesPath, "error", err)
			os.Exit(1)
		}
		tables = loaded
	}
	mode := ecoscore.ModeEnhanced
	if cfg.Parser.LegacyScoring {
		mode = ecoscore.ModeLegacy
	}
	p := parser.New(
		classify.NewClassifier(tables),
		ecoscore.NewScorer(mode, tables.SustainablePatterns()),
	)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	loader := ingest.NewFSLoader(extractor, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	doc, err := loader.LoadPath(ctx, path)
	if err != nil {
		logger.Error("failed to load document", "path", path, "error", err)
		os.Exit(1)
	}

	receipt := p.Parse(doc.RawText, doc.Words)
	logger.Info("parse OK",
		"store", receipt.StoreName,
		"items", len(receipt.Items),
		"eco_score", receipt.EcoScore,
		"duration_ms", time.Since(start).Milliseconds())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(receipt); err != nil {
		logger.Error("failed to encode receipt", "error", err)
		os.Exit(1)
	}
}
