package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ecotally/ecotally/internal/async"
	"github.com/ecotally/ecotally/internal/classify"
	"github.com/ecotally/ecotally/internal/common"
	"github.com/ecotally/ecotally/internal/ecoscore"
	"github.com/ecotally/ecotally/internal/export"
	"github.com/ecotally/ecotally/internal/ingest"
	"github.com/ecotally/ecotally/internal/ocr"
	"github.com/ecotally/ecotally/internal/parser"
	"github.com/ecotally/ecotally/internal/repository"
	"github.com/ecotally/ecotally/internal/server"
	"github.com/ecotally/ecotally/internal/utils"
)

func main() {
	var (
		dir     = flag.String("dir", "", "directory to process receipt documents from (required)")
		out     = flag.String("out", "", "output XLSX file path (defaults to <dir>/../receipts.xlsx)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
		workers = flag.Int("workers", 4, "parse workers")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "receipts.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := utils.ParseYMD(*fromStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := utils.ParseYMD(*toStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL is required")
		os.Exit(1)
	}

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	p, err := buildParser(cfg, logger)
	if err != nil {
		logger.Error("failed to build parser", "error", err)
		os.Exit(1)
	}
	receiptRepo := repository.NewReceiptRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	loader := ingest.NewFSLoader(extractor, logger)

	logger.Info("scanning directory", "dir", *dir)
	docs, results, stats, err := loader.LoadDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to load directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("document skipped", "path", r.Path, "error", r.Err)
		}
	}
	logger.Info("scan complete",
		"documents", len(docs),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	queue := async.NewParseQueue(p, receiptRepo, logger, async.WithWorkers(*workers))
	for _, doc := range docs {
		_ = queue.Enqueue(ctx, async.Job{Doc: doc, SubmittedAt: time.Now()})
	}
	drainCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	queue.Shutdown(drainCtx)
	cancel()

	logger.Info("exporting to XLSX", "output", *out)
	exportSvc := export.NewService(receiptRepo, logger)
	xlsxBytes, err := exportSvc.ExportReceiptsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export receipts", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents loaded: %d\n", len(docs))
	fmt.Printf("- Failures: %d\n", stats.Failed)
	fmt.Printf("- Output: %s\n", *out)
}

func buildParser(cfg *common.Config, logger *slog.Logger) (*parser.Parser, error) {
	tables := classify.DefaultTables()
	if cfg.Parser.TablesPath != "" {
		loaded, err := classify.LoadTables(cfg.Parser.TablesPath)
		if err != nil {
			return nil, err
		}
		tables = loaded
		logger.Info("loaded category tables", "path", cfg.Parser.TablesPath)
	}

	mode := ecoscore.ModeEnhanced
	if cfg.Parser.LegacyScoring {
		mode = ecoscore.ModeLegacy
	}

	return parser.New(
		classify.NewClassifier(tables),
		ecoscore.NewScorer(mode, tables.SustainablePatterns()),
	), nil
}
