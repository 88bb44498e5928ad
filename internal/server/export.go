package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	ecotallypb "github.com/ecotally/ecotally/gen/proto/ecotally/v1"
	"github.com/ecotally/ecotally/internal/common"
	"github.com/ecotally/ecotally/internal/export"
	"github.com/ecotally/ecotally/internal/utils"
)

type ExportServer struct {
	ecotallypb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportReceipts(ctx context.Context, req *ecotallypb.ExportReceiptsRequest) (*ecotallypb.ExportReceiptsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportReceiptsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalErrorf("export receipts: %v", err)
	}

	return &ecotallypb.ExportReceiptsResponse{Xlsx: xlsx}, nil
}
