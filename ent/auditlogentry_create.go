// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/auditlogentry"
)

// AuditLogEntryCreate is the builder for creating a AuditLogEntry entity.
type AuditLogEntryCreate struct {
	config
	mutation *AuditLogEntryMutation
	hooks    []Hook
}

// SetAt sets the "at" field.
func (_c *AuditLogEntryCreate) SetAt(v time.Time) *AuditLogEntryCreate {
	_c.mutation.SetAt(v)
	return _c
}

// SetNillableAt sets the "at" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableAt(v *time.Time) *AuditLogEntryCreate {
	if v != nil {
		_c.SetAt(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *AuditLogEntryCreate) SetActor(v string) *AuditLogEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *AuditLogEntryCreate) SetTicketNumber(v string) *AuditLogEntryCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetNillableTicketNumber sets the "ticket_number" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableTicketNumber(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetTicketNumber(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *AuditLogEntryCreate) SetEntityID(v string) *AuditLogEntryCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableEntityID(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetField sets the "field" field.
func (_c *AuditLogEntryCreate) SetField(v string) *AuditLogEntryCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableField(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetField(*v)
	}
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *AuditLogEntryCreate) SetOldValue(v string) *AuditLogEntryCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableOldValue(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetOldValue(*v)
	}
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *AuditLogEntryCreate) SetNewValue(v string) *AuditLogEntryCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableNewValue(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetNewValue(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AuditLogEntryCreate) SetDescription(v string) *AuditLogEntryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AuditLogEntryCreate) SetNillableDescription(v *string) *AuditLogEntryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditLogEntryCreate) SetID(v string) *AuditLogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditLogEntryMutation object of the builder.
func (_c *AuditLogEntryCreate) Mutation() *AuditLogEntryMutation {
	return _c.mutation
}

// Save creates the AuditLogEntry in the database.
func (_c *AuditLogEntryCreate) Save(ctx context.Context) (*AuditLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditLogEntryCreate) SaveX(ctx context.Context) *AuditLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditLogEntryCreate) defaults() {
	if _, ok := _c.mutation.At(); !ok {
		v := auditlogentry.DefaultAt()
		_c.mutation.SetAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditLogEntryCreate) check() error {
	if _, ok := _c.mutation.At(); !ok {
		return &ValidationError{Name: "at", err: errors.New(`ent: missing required field "AuditLogEntry.at"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "AuditLogEntry.actor"`)}
	}
	return nil
}

func (_c *AuditLogEntryCreate) sqlSave(ctx context.Context) (*AuditLogEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuditLogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditLogEntryCreate) createSpec() (*AuditLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditlogentry.Table, sqlgraph.NewFieldSpec(auditlogentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.At(); ok {
		_spec.SetField(auditlogentry.FieldAt, field.TypeTime, value)
		_node.At = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(auditlogentry.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.TicketNumber(); ok {
		_spec.SetField(auditlogentry.FieldTicketNumber, field.TypeString, value)
		_node.TicketNumber = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(auditlogentry.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(auditlogentry.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(auditlogentry.FieldOldValue, field.TypeString, value)
		_node.OldValue = value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(auditlogentry.FieldNewValue, field.TypeString, value)
		_node.NewValue = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(auditlogentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// AuditLogEntryCreateBulk is the builder for creating many AuditLogEntry entities in bulk.
type AuditLogEntryCreateBulk struct {
	config
	err      error
	builders []*AuditLogEntryCreate
}

// Save creates the AuditLogEntry entities in the database.
func (_c *AuditLogEntryCreateBulk) Save(ctx context.Context) ([]*AuditLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditLogEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditLogEntryCreateBulk) SaveX(ctx context.Context) []*AuditLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
