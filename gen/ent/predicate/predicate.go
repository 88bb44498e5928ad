// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ReceiptItem is the predicate function for receiptitem builders.
type ReceiptItem func(*sql.Selector)
