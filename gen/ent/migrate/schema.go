// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "store_name", Type: field.TypeString},
		{Name: "purchase_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "category", Type: field.TypeString},
		{Name: "eco_score", Type: field.TypeInt},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
	}
	// ReceiptItemsColumns holds the columns for the "receipt_items" table.
	ReceiptItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "category", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// ReceiptItemsTable holds the schema information for the "receipt_items" table.
	ReceiptItemsTable = &schema.Table{
		Name:       "receipt_items",
		Columns:    ReceiptItemsColumns,
		PrimaryKey: []*schema.Column{ReceiptItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_items_receipts_items",
				Columns:    []*schema.Column{ReceiptItemsColumns[6]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReceiptsTable,
		ReceiptItemsTable,
	}
)

func init() {
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ReceiptItemsTable.ForeignKeys[0].RefTable = ReceiptsTable
	ReceiptItemsTable.Annotation = &entsql.Annotation{
		Table: "receipt_items",
	}
}
