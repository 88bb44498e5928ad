package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/ecotally/ecotally/constants"
)

type ReceiptItem struct{ ent.Schema }

func (ReceiptItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_items"},
	}
}

func (ReceiptItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("receipt_id", uuid.UUID{}),
		field.String("name").NotEmpty().MaxLen(100),
		field.Float("price").
			Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("quantity").
			Min(1).
			Default(1),
		field.String("category").
			Validate(oneOf(constants.AsStringSlice())),
		field.Float("confidence").
			Optional().
			Range(0, 1),
	}
}

func (ReceiptItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE receipt (FK: receipt_items.receipt_id)
		edge.From("receipt", Receipt.Type).
			Ref("items").
			Field("receipt_id").
			Required().
			Unique(),
	}
}
