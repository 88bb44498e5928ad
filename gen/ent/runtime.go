// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ecotally/ecotally/db/ent/schema"
	"github.com/ecotally/ecotally/gen/ent/receipt"
	"github.com/ecotally/ecotally/gen/ent/receiptitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescStoreName is the schema descriptor for store_name field.
	receiptDescStoreName := receiptFields[1].Descriptor()
	// receipt.StoreNameValidator is a validator for the "store_name" field. It is called by the builders before save.
	receipt.StoreNameValidator = receiptDescStoreName.Validators[0].(func(string) error)
	// receiptDescTotal is the schema descriptor for total field.
	receiptDescTotal := receiptFields[3].Descriptor()
	// receipt.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	receipt.TotalValidator = receiptDescTotal.Validators[0].(func(float64) error)
	// receiptDescCurrencyCode is the schema descriptor for currency_code field.
	receiptDescCurrencyCode := receiptFields[4].Descriptor()
	// receipt.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	receipt.CurrencyCodeValidator = func() func(string) error {
		validators := receiptDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptDescCategory is the schema descriptor for category field.
	receiptDescCategory := receiptFields[5].Descriptor()
	// receipt.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	receipt.CategoryValidator = receiptDescCategory.Validators[0].(func(string) error)
	// receiptDescEcoScore is the schema descriptor for eco_score field.
	receiptDescEcoScore := receiptFields[6].Descriptor()
	// receipt.EcoScoreValidator is a validator for the "eco_score" field. It is called by the builders before save.
	receipt.EcoScoreValidator = receiptDescEcoScore.Validators[0].(func(int) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[8].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[9].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	receiptitemFields := schema.ReceiptItem{}.Fields()
	_ = receiptitemFields
	// receiptitemDescName is the schema descriptor for name field.
	receiptitemDescName := receiptitemFields[2].Descriptor()
	// receiptitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	receiptitem.NameValidator = func() func(string) error {
		validators := receiptitemDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptitemDescPrice is the schema descriptor for price field.
	receiptitemDescPrice := receiptitemFields[3].Descriptor()
	// receiptitem.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	receiptitem.PriceValidator = receiptitemDescPrice.Validators[0].(func(float64) error)
	// receiptitemDescQuantity is the schema descriptor for quantity field.
	receiptitemDescQuantity := receiptitemFields[4].Descriptor()
	// receiptitem.DefaultQuantity holds the default value on creation for the quantity field.
	receiptitem.DefaultQuantity = receiptitemDescQuantity.Default.(int)
	// receiptitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	receiptitem.QuantityValidator = receiptitemDescQuantity.Validators[0].(func(int) error)
	// receiptitemDescCategory is the schema descriptor for category field.
	receiptitemDescCategory := receiptitemFields[5].Descriptor()
	// receiptitem.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	receiptitem.CategoryValidator = receiptitemDescCategory.Validators[0].(func(string) error)
	// receiptitemDescConfidence is the schema descriptor for confidence field.
	receiptitemDescConfidence := receiptitemFields[6].Descriptor()
	// receiptitem.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	receiptitem.ConfidenceValidator = receiptitemDescConfidence.Validators[0].(func(float64) error)
	// receiptitemDescID is the schema descriptor for id field.
	receiptitemDescID := receiptitemFields[0].Descriptor()
	// receiptitem.DefaultID holds the default value on creation for the id field.
	receiptitem.DefaultID = receiptitemDescID.Default.(func() uuid.UUID)
}
