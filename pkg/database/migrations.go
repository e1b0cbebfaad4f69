package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes
// that Ent cannot express. Currently one: at most one supplier message per
// (supplier, ticket) awaiting a response.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS suppliermessage_active_obligation
		ON supplier_messages (supplier_email, ticket_number)
		WHERE response_received = false`)
	if err != nil {
		return fmt.Errorf("failed to create active supplier obligation index: %w", err)
	}

	return nil
}
