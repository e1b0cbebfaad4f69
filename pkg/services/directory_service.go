package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/supplier"
	"github.com/shipdesk/shipdesk/pkg/database"
)

// DirectoryService maintains the supplier directory. The pipeline reads it
// to resolve contact aliases to the supplier role and to collect company
// names for the customer-draft leak check.
type DirectoryService struct {
	db  *database.Client
	log *slog.Logger
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(db *database.Client) *DirectoryService {
	return &DirectoryService{
		db:  db,
		log: slog.Default().With("component", "directory-service"),
	}
}

// SupplierUpsert is an operator-provided directory entry, keyed by name.
type SupplierUpsert struct {
	Name         string            `json:"name"`
	DefaultEmail string            `json:"default_email"`
	Contacts     map[string]string `json:"contacts,omitempty"`
	Language     string            `json:"language,omitempty"`
}

// List returns the directory ordered by name.
func (s *DirectoryService) List(ctx context.Context) ([]*ent.Supplier, error) {
	suppliers, err := s.db.Supplier.Query().
		Order(ent.Asc(supplier.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// Upsert creates or replaces the entry with the given name. Addresses are
// canonicalized to lower case; the next pipeline run picks the entry up.
func (s *DirectoryService) Upsert(ctx context.Context, in SupplierUpsert) (*ent.Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, NewValidationError("name", "is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.DefaultEmail))
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("default_email", "must be an e-mail address")
	}
	contacts := make(map[string]string, len(in.Contacts))
	for purpose, addr := range in.Contacts {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if !strings.Contains(addr, "@") {
			return nil, NewValidationError("contacts", purpose+" must be an e-mail address")
		}
		contacts[purpose] = addr
	}

	existing, err := s.db.Supplier.Query().
		Where(supplier.NameEQ(in.Name)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetDefaultEmail(email).
			SetContacts(contacts)
		if in.Language != "" {
			upd.SetLanguage(in.Language)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update supplier %s: %w", in.Name, err)
		}
		s.log.Info("Supplier directory entry updated", "name", in.Name)
		return updated, nil

	case ent.IsNotFound(err):
		create := s.db.Supplier.Create().
			SetID(uuid.New().String()).
			SetName(in.Name).
			SetDefaultEmail(email).
			SetContacts(contacts)
		if in.Language != "" {
			create.SetLanguage(in.Language)
		}
		created, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("supplier %s already exists: %w", in.Name, ErrConflict)
			}
			return nil, fmt.Errorf("create supplier %s: %w", in.Name, err)
		}
		s.log.Info("Supplier directory entry created", "name", in.Name)
		return created, nil

	default:
		return nil, fmt.Errorf("lookup supplier %s: %w", in.Name, err)
	}
}
