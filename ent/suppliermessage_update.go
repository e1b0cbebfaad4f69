// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
)

// SupplierMessageUpdate is the builder for updating SupplierMessage entities.
type SupplierMessageUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierMessageMutation
}

// Where appends a list predicates to the SupplierMessageUpdate builder.
func (_u *SupplierMessageUpdate) Where(ps ...predicate.SupplierMessage) *SupplierMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *SupplierMessageUpdate) SetReminderSentAt(v time.Time) *SupplierMessageUpdate {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *SupplierMessageUpdate) SetNillableReminderSentAt(v *time.Time) *SupplierMessageUpdate {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *SupplierMessageUpdate) ClearReminderSentAt() *SupplierMessageUpdate {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetResponseReceived sets the "response_received" field.
func (_u *SupplierMessageUpdate) SetResponseReceived(v bool) *SupplierMessageUpdate {
	_u.mutation.SetResponseReceived(v)
	return _u
}

// SetNillableResponseReceived sets the "response_received" field if the given value is not nil.
func (_u *SupplierMessageUpdate) SetNillableResponseReceived(v *bool) *SupplierMessageUpdate {
	if v != nil {
		_u.SetResponseReceived(*v)
	}
	return _u
}

// SetNextCheckAt sets the "next_check_at" field.
func (_u *SupplierMessageUpdate) SetNextCheckAt(v time.Time) *SupplierMessageUpdate {
	_u.mutation.SetNextCheckAt(v)
	return _u
}

// SetNillableNextCheckAt sets the "next_check_at" field if the given value is not nil.
func (_u *SupplierMessageUpdate) SetNillableNextCheckAt(v *time.Time) *SupplierMessageUpdate {
	if v != nil {
		_u.SetNextCheckAt(*v)
	}
	return _u
}

// Mutation returns the SupplierMessageMutation object of the builder.
func (_u *SupplierMessageUpdate) Mutation() *SupplierMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierMessageUpdate) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierMessage.ticket"`)
	}
	return nil
}

func (_u *SupplierMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suppliermessage.Table, suppliermessage.Columns, sqlgraph.NewFieldSpec(suppliermessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(suppliermessage.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(suppliermessage.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseReceived(); ok {
		_spec.SetField(suppliermessage.FieldResponseReceived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextCheckAt(); ok {
		_spec.SetField(suppliermessage.FieldNextCheckAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suppliermessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierMessageUpdateOne is the builder for updating a single SupplierMessage entity.
type SupplierMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierMessageMutation
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_u *SupplierMessageUpdateOne) SetReminderSentAt(v time.Time) *SupplierMessageUpdateOne {
	_u.mutation.SetReminderSentAt(v)
	return _u
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_u *SupplierMessageUpdateOne) SetNillableReminderSentAt(v *time.Time) *SupplierMessageUpdateOne {
	if v != nil {
		_u.SetReminderSentAt(*v)
	}
	return _u
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (_u *SupplierMessageUpdateOne) ClearReminderSentAt() *SupplierMessageUpdateOne {
	_u.mutation.ClearReminderSentAt()
	return _u
}

// SetResponseReceived sets the "response_received" field.
func (_u *SupplierMessageUpdateOne) SetResponseReceived(v bool) *SupplierMessageUpdateOne {
	_u.mutation.SetResponseReceived(v)
	return _u
}

// SetNillableResponseReceived sets the "response_received" field if the given value is not nil.
func (_u *SupplierMessageUpdateOne) SetNillableResponseReceived(v *bool) *SupplierMessageUpdateOne {
	if v != nil {
		_u.SetResponseReceived(*v)
	}
	return _u
}

// SetNextCheckAt sets the "next_check_at" field.
func (_u *SupplierMessageUpdateOne) SetNextCheckAt(v time.Time) *SupplierMessageUpdateOne {
	_u.mutation.SetNextCheckAt(v)
	return _u
}

// SetNillableNextCheckAt sets the "next_check_at" field if the given value is not nil.
func (_u *SupplierMessageUpdateOne) SetNillableNextCheckAt(v *time.Time) *SupplierMessageUpdateOne {
	if v != nil {
		_u.SetNextCheckAt(*v)
	}
	return _u
}

// Mutation returns the SupplierMessageMutation object of the builder.
func (_u *SupplierMessageUpdateOne) Mutation() *SupplierMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the SupplierMessageUpdate builder.
func (_u *SupplierMessageUpdateOne) Where(ps ...predicate.SupplierMessage) *SupplierMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierMessageUpdateOne) Select(field string, fields ...string) *SupplierMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplierMessage entity.
func (_u *SupplierMessageUpdateOne) Save(ctx context.Context) (*SupplierMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierMessageUpdateOne) SaveX(ctx context.Context) *SupplierMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierMessageUpdateOne) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierMessage.ticket"`)
	}
	return nil
}

func (_u *SupplierMessageUpdateOne) sqlSave(ctx context.Context) (_node *SupplierMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suppliermessage.Table, suppliermessage.Columns, sqlgraph.NewFieldSpec(suppliermessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplierMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suppliermessage.FieldID)
		for _, f := range fields {
			if !suppliermessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suppliermessage.FieldID {
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
	if value, ok := _u.mutation.ReminderSentAt(); ok {
		_spec.SetField(suppliermessage.FieldReminderSentAt, field.TypeTime, value)
	}
	if _u.mutation.ReminderSentAtCleared() {
		_spec.ClearField(suppliermessage.FieldReminderSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseReceived(); ok {
		_spec.SetField(suppliermessage.FieldResponseReceived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NextCheckAt(); ok {
		_spec.SetField(suppliermessage.FieldNextCheckAt, field.TypeTime, value)
	}
	_node = &SupplierMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suppliermessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
