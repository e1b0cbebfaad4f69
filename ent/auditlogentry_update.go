// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/auditlogentry"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// AuditLogEntryUpdate is the builder for updating AuditLogEntry entities.
type AuditLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogEntryMutation
}

// Where appends a list predicates to the AuditLogEntryUpdate builder.
func (_u *AuditLogEntryUpdate) Where(ps ...predicate.AuditLogEntry) *AuditLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AuditLogEntryMutation object of the builder.
func (_u *AuditLogEntryUpdate) Mutation() *AuditLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditlogentry.Table, auditlogentry.Columns, sqlgraph.NewFieldSpec(auditlogentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TicketNumberCleared() {
		_spec.ClearField(auditlogentry.FieldTicketNumber, field.TypeString)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(auditlogentry.FieldEntityID, field.TypeString)
	}
	if _u.mutation.FieldFieldCleared() {
		_spec.ClearField(auditlogentry.FieldField, field.TypeString)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(auditlogentry.FieldOldValue, field.TypeString)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(auditlogentry.FieldNewValue, field.TypeString)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(auditlogentry.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditLogEntryUpdateOne is the builder for updating a single AuditLogEntry entity.
type AuditLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogEntryMutation
}

// Mutation returns the AuditLogEntryMutation object of the builder.
func (_u *AuditLogEntryUpdateOne) Mutation() *AuditLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditLogEntryUpdate builder.
func (_u *AuditLogEntryUpdateOne) Where(ps ...predicate.AuditLogEntry) *AuditLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditLogEntryUpdateOne) Select(field string, fields ...string) *AuditLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditLogEntry entity.
func (_u *AuditLogEntryUpdateOne) Save(ctx context.Context) (*AuditLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogEntryUpdateOne) SaveX(ctx context.Context) *AuditLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditlogentry.Table, auditlogentry.Columns, sqlgraph.NewFieldSpec(auditlogentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlogentry.FieldID)
		for _, f := range fields {
			if !auditlogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlogentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TicketNumberCleared() {
		_spec.ClearField(auditlogentry.FieldTicketNumber, field.TypeString)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(auditlogentry.FieldEntityID, field.TypeString)
	}
	if _u.mutation.FieldFieldCleared() {
		_spec.ClearField(auditlogentry.FieldField, field.TypeString)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(auditlogentry.FieldOldValue, field.TypeString)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(auditlogentry.FieldNewValue, field.TypeString)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(auditlogentry.FieldDescription, field.TypeString)
	}
	_node = &AuditLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
