package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Supplier is a directory entry for an upstream drop-shipping supplier.
type Supplier struct {
	ent.Schema
}

// Fields of the Supplier.
func (Supplier) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("supplier_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("default_email"),
		field.JSON("contacts", map[string]string{}).
			Optional().
			Comment("Purpose -> address, e.g. returns, invoices"),
		field.String("language").
			Default("en"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
