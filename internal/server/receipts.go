package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	ecotallypb "github.com/ecotally/ecotally/gen/proto/ecotally/v1"
	"github.com/ecotally/ecotally/internal/common"
	"github.com/ecotally/ecotally/internal/parser"
	"github.com/ecotally/ecotally/internal/repository"
	"github.com/ecotally/ecotally/internal/utils"
)

type ReceiptService struct {
	ecotallypb.UnimplementedReceiptsServiceServer
	parser      *parser.Parser
	receiptRepo repository.ReceiptRepository
	logger      *slog.Logger
}

func NewReceiptService(p *parser.Parser, receiptRepo repository.ReceiptRepository, logger *slog.Logger) *ReceiptService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptService{
		parser:      p,
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

func (s *ReceiptService) ParseReceipt(ctx context.Context, req *ecotallypb.ParseReceiptRequest) (*ecotallypb.ParseReceiptResponse, error) {
	rawText := req.GetRawText()
	if strings.TrimSpace(rawText) == "" && len(req.GetWords()) == 0 {
		s.logger.Error("parse receipt request has no text and no words")
		return nil, common.InvalidArgumentError("raw_text or words is required")
	}

	parsed := s.parser.Parse(rawText, utils.FromPBWords(req.GetWords()))
	s.logger.Info("receipt parsed",
		"store", parsed.StoreName,
		"items", len(parsed.Items),
		"total", parsed.Total,
		"eco_score", parsed.EcoScore)

	rec, err := s.receiptRepo.SaveParsed(ctx, parsed)
	if err != nil {
		s.logger.Error("failed to save parsed receipt", "store", parsed.StoreName, "error", err)
		return nil, common.InternalErrorf("save receipt: %v", err)
	}

	return &ecotallypb.ParseReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptService) GetReceipt(ctx context.Context, req *ecotallypb.GetReceiptRequest) (*ecotallypb.GetReceiptResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		s.logger.Error("invalid receipt id", "id", req.GetId(), "error", err)
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	rec, err := s.receiptRepo.GetReceipt(ctx, id)
	if err != nil {
		s.logger.Error("failed to get receipt", "receipt_id", id, "error", err)
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundErrorf("receipt %s not found", id)
		}
		return nil, common.InternalErrorf("get receipt: %v", err)
	}

	return &ecotallypb.GetReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, req *ecotallypb.ListReceiptsRequest) (*ecotallypb.ListReceiptsResponse, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing receipts", "from_date", fromDate, "to_date", toDate)
	recs, err := s.receiptRepo.ListReceipts(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list receipts", "error", err)
		return nil, common.InternalErrorf("list receipts: %v", err)
	}
	s.logger.Info("receipts listed successfully", "count", len(recs))

	out := make([]*ecotallypb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &ecotallypb.ListReceiptsResponse{Receipts: out}, nil
}
