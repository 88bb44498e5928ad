package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ecotallypb "github.com/ecotally/ecotally/gen/proto/ecotally/v1"
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
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, 3*time.Second); err != nil {
		os.Exit(1)
	}
	logger.Info("database health OK")

	p, err := buildParser(cfg, logger)
	if err != nil {
		logger.Error("failed to build parser", "error", err)
		os.Exit(1)
	}

	receiptRepo := repository.NewReceiptRepository(entc, logger)
	exportSvc := export.NewService(receiptRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	ecotallypb.RegisterReceiptsServiceServer(grpcServer, server.NewReceiptService(p, receiptRepo, logger))
	ecotallypb.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))

	// Optional drop-directory watcher: documents landing under WATCH_DIR are
	// parsed and persisted without an RPC.
	var queue *async.ParseQueue
	if watchDir := os.Getenv("WATCH_DIR"); watchDir != "" {
		queue = startWatchPipeline(ctx, watchDir, cfg, p, receiptRepo, logger)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	if queue != nil {
		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		queue.Shutdown(drainCtx)
		cancel()
	}
	logger.Info("stopped")
}

// buildParser assembles the classifier, scorer, and parser from configuration.
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
		logger.Warn("legacy eco scoring enabled")
	}

	classifier := classify.NewClassifier(tables)
	scorer := ecoscore.NewScorer(mode, tables.SustainablePatterns())
	return parser.New(classifier, scorer), nil
}

func startWatchPipeline(ctx context.Context, watchDir string, cfg *common.Config, p *parser.Parser, repo repository.ReceiptRepository, logger *slog.Logger) *async.ParseQueue {
	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)
	loader := ingest.NewFSLoader(extractor, logger)
	queue := async.NewParseQueue(p, repo, logger)

	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{watchDir},
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher, continuing without it", "dir", watchDir, "error", err)
		return queue
	}
	logger.Info("watching for receipt documents", "dir", watchDir)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-paths:
				if !ok {
					return
				}
				doc, err := loader.LoadPath(ctx, path)
				if err != nil {
					logger.Error("failed to load document", "path", path, "error", err)
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{Doc: doc, SubmittedAt: time.Now()})
			case err, ok := <-errs:
				if ok && err != nil {
					logger.Error("watch error", "error", err)
				}
			}
		}
	}()
	return queue
}
