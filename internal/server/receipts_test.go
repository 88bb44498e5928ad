package server

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ecotallypb "github.com/ecotally/ecotally/gen/proto/ecotally/v1"
	"github.com/ecotally/ecotally/internal/classify"
	"github.com/ecotally/ecotally/internal/common"
	"github.com/ecotally/ecotally/internal/ecoscore"
	"github.com/ecotally/ecotally/internal/entity"
	"github.com/ecotally/ecotally/internal/parser"
)

type stubReceiptRepo struct {
	saved   *parser.Receipt
	saveErr error
	getRec  *entity.Receipt
	getErr  error
}

func (s *stubReceiptRepo) SaveParsed(_ context.Context, parsed parser.Receipt) (*entity.Receipt, error) {
	s.saved = &parsed
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	return &entity.Receipt{
		ID:           uuid.New(),
		StoreName:    parsed.StoreName,
		PurchaseDate: parsed.PurchaseDate,
		Total:        parsed.Total,
		CurrencyCode: parsed.Currency,
		Category:     parsed.Category,
		EcoScore:     parsed.EcoScore,
	}, nil
}

func (s *stubReceiptRepo) GetReceipt(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return s.getRec, s.getErr
}

func (s *stubReceiptRepo) ListReceipts(context.Context, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func testReceiptService(repo *stubReceiptRepo) *ReceiptService {
	p := parser.New(
		classify.NewClassifier(classify.DefaultTables()),
		ecoscore.NewScorer(ecoscore.ModeEnhanced, nil),
	)
	return NewReceiptService(p, repo, nil)
}

func TestParseReceiptRejectsEmptyRequest(t *testing.T) {
	svc := testReceiptService(&stubReceiptRepo{})

	_, err := svc.ParseReceipt(context.Background(), &ecotallypb.ParseReceiptRequest{RawText: "   "})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("ParseReceipt(empty) code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestParseReceiptPersistsParsedReceipt(t *testing.T) {
	repo := &stubReceiptRepo{}
	svc := testReceiptService(repo)

	resp, err := svc.ParseReceipt(context.Background(), &ecotallypb.ParseReceiptRequest{
		RawText: "WALMART\nMILK 3.50\nTOTAL 3.50\n",
	})
	if err != nil {
		t.Fatalf("ParseReceipt() error: %v", err)
	}
	if repo.saved == nil {
		t.Fatalf("parsed receipt never reached the repository")
	}
	if repo.saved.Total != 3.50 {
		t.Errorf("saved total = %v, want 3.50", repo.saved.Total)
	}
	if resp.GetReceipt().GetStoreName() != "Walmart" {
		t.Errorf("response store = %q, want Walmart", resp.GetReceipt().GetStoreName())
	}
}

func TestGetReceiptErrorMapping(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name string
		id   string
		repo *stubReceiptRepo
		want codes.Code
	}{
		{
			name: "malformed id",
			id:   "not-a-uuid",
			repo: &stubReceiptRepo{},
			want: codes.InvalidArgument,
		},
		{
			name: "missing receipt",
			id:   id.String(),
			repo: &stubReceiptRepo{getErr: fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)},
			want: codes.NotFound,
		},
		{
			name: "repository failure",
			id:   id.String(),
			repo: &stubReceiptRepo{getErr: errors.New("connection reset")},
			want: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testReceiptService(tt.repo)
			_, err := svc.GetReceipt(context.Background(), &ecotallypb.GetReceiptRequest{Id: tt.id})
			if status.Code(err) != tt.want {
				t.Errorf("GetReceipt() code = %v, want %v", status.Code(err), tt.want)
			}
		})
	}
}

func TestListReceiptsRejectsBadDates(t *testing.T) {
	svc := testReceiptService(&stubReceiptRepo{})

	_, err := svc.ListReceipts(context.Background(), &ecotallypb.ListReceiptsRequest{FromDate: "30-08-2026"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("ListReceipts(bad from_date) code = %v, want InvalidArgument", status.Code(err))
	}
}
