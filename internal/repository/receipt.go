package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecotally/ecotally/gen/ent"
	"github.com/ecotally/ecotally/gen/ent/receipt"
	"github.com/ecotally/ecotally/internal/common"
	"github.com/ecotally/ecotally/internal/entity"
	"github.com/ecotally/ecotally/internal/parser"
	"github.com/ecotally/ecotally/internal/utils"
)

type ReceiptRepository interface {
	// SaveParsed persists a parsed receipt together with its line items.
	SaveParsed(ctx context.Context, parsed parser.Receipt) (*entity.Receipt, error)
	GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListReceipts(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) SaveParsed(ctx context.Context, parsed parser.Receipt) (*entity.Receipt, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	rec, err := tx.Receipt.Create().
		SetStoreName(parsed.StoreName).
		SetPurchaseDate(parsed.PurchaseDate).
		SetTotal(parsed.Total).
		SetCurrencyCode(parsed.Currency).
		SetCategory(parsed.Category).
		SetEcoScore(parsed.EcoScore).
		SetRawText(parsed.RawText).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create receipt: %w", err))
	}

	items := make([]*ent.ReceiptItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		saved, err := tx.ReceiptItem.Create().
			SetReceiptID(rec.ID).
			SetName(it.Name).
			SetPrice(it.Price).
			SetQuantity(it.Quantity).
			SetCategory(it.Category).
			SetConfidence(it.Confidence).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("create receipt item %q: %w", it.Name, err))
		}
		items = append(items, saved)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	r.logger.Info("receipt saved", "receipt_id", rec.ID, "store", rec.StoreName, "items", len(items))
	return utils.ToReceipt(rec, items), nil
}

func (r *receiptRepository) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Query().
		Where(receipt.ID(id)).
		WithItems().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapError(err, "get receipt")
	}
	return utils.ToReceipt(rec, rec.Edges.Items), nil
}

func (r *receiptRepository) ListReceipts(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query()
	if fromDate != nil {
		q = q.Where(receipt.PurchaseDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.PurchaseDateLTE(*toDate))
	}
	recs, err := q.WithItems().Order(receipt.ByPurchaseDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec, rec.Edges.Items)
	}
	return result, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}
