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
	"github.com/shipdesk/shipdesk/ent/processedemail"
)

// ProcessedEmailUpdate is the builder for updating ProcessedEmail entities.
type ProcessedEmailUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedEmailMutation
}

// Where appends a list predicates to the ProcessedEmailUpdate builder.
func (_u *ProcessedEmailUpdate) Where(ps ...predicate.ProcessedEmail) *ProcessedEmailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ProcessedEmailUpdate) SetThreadID(v string) *ProcessedEmailUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableThreadID(v *string) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *ProcessedEmailUpdate) ClearThreadID() *ProcessedEmailUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProcessedEmailUpdate) SetSubject(v string) *ProcessedEmailUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableSubject(v *string) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ProcessedEmailUpdate) ClearSubject() *ProcessedEmailUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *ProcessedEmailUpdate) SetFromAddress(v string) *ProcessedEmailUpdate {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableFromAddress(v *string) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// ClearFromAddress clears the value of the "from_address" field.
func (_u *ProcessedEmailUpdate) ClearFromAddress() *ProcessedEmailUpdate {
	_u.mutation.ClearFromAddress()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *ProcessedEmailUpdate) SetReceivedAt(v time.Time) *ProcessedEmailUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableReceivedAt(v *time.Time) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// ClearReceivedAt clears the value of the "received_at" field.
func (_u *ProcessedEmailUpdate) ClearReceivedAt() *ProcessedEmailUpdate {
	_u.mutation.ClearReceivedAt()
	return _u
}

// SetTicketNumber sets the "ticket_number" field.
func (_u *ProcessedEmailUpdate) SetTicketNumber(v string) *ProcessedEmailUpdate {
	_u.mutation.SetTicketNumber(v)
	return _u
}

// SetNillableTicketNumber sets the "ticket_number" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableTicketNumber(v *string) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetTicketNumber(*v)
	}
	return _u
}

// ClearTicketNumber clears the value of the "ticket_number" field.
func (_u *ProcessedEmailUpdate) ClearTicketNumber() *ProcessedEmailUpdate {
	_u.mutation.ClearTicketNumber()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ProcessedEmailUpdate) SetSuccess(v bool) *ProcessedEmailUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableSuccess(v *bool) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessedEmailUpdate) SetErrorMessage(v string) *ProcessedEmailUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableErrorMessage(v *string) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessedEmailUpdate) ClearErrorMessage() *ProcessedEmailUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedEmailUpdate) SetProcessedAt(v time.Time) *ProcessedEmailUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ProcessedEmailUpdate) SetNillableProcessedAt(v *time.Time) *ProcessedEmailUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// Mutation returns the ProcessedEmailMutation object of the builder.
func (_u *ProcessedEmailUpdate) Mutation() *ProcessedEmailMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedEmailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedEmailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedEmailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedEmailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessedEmailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processedemail.Table, processedemail.Columns, sqlgraph.NewFieldSpec(processedemail.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(processedemail.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(processedemail.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(processedemail.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(processedemail.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(processedemail.FieldFromAddress, field.TypeString, value)
	}
	if _u.mutation.FromAddressCleared() {
		_spec.ClearField(processedemail.FieldFromAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(processedemail.FieldReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceivedAtCleared() {
		_spec.ClearField(processedemail.FieldReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TicketNumber(); ok {
		_spec.SetField(processedemail.FieldTicketNumber, field.TypeString, value)
	}
	if _u.mutation.TicketNumberCleared() {
		_spec.ClearField(processedemail.FieldTicketNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(processedemail.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processedemail.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processedemail.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedemail.FieldProcessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedEmailUpdateOne is the builder for updating a single ProcessedEmail entity.
type ProcessedEmailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedEmailMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *ProcessedEmailUpdateOne) SetThreadID(v string) *ProcessedEmailUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableThreadID(v *string) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *ProcessedEmailUpdateOne) ClearThreadID() *ProcessedEmailUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProcessedEmailUpdateOne) SetSubject(v string) *ProcessedEmailUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableSubject(v *string) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ProcessedEmailUpdateOne) ClearSubject() *ProcessedEmailUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *ProcessedEmailUpdateOne) SetFromAddress(v string) *ProcessedEmailUpdateOne {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableFromAddress(v *string) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// ClearFromAddress clears the value of the "from_address" field.
func (_u *ProcessedEmailUpdateOne) ClearFromAddress() *ProcessedEmailUpdateOne {
	_u.mutation.ClearFromAddress()
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *ProcessedEmailUpdateOne) SetReceivedAt(v time.Time) *ProcessedEmailUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableReceivedAt(v *time.Time) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// ClearReceivedAt clears the value of the "received_at" field.
func (_u *ProcessedEmailUpdateOne) ClearReceivedAt() *ProcessedEmailUpdateOne {
	_u.mutation.ClearReceivedAt()
	return _u
}

// SetTicketNumber sets the "ticket_number" field.
func (_u *ProcessedEmailUpdateOne) SetTicketNumber(v string) *ProcessedEmailUpdateOne {
	_u.mutation.SetTicketNumber(v)
	return _u
}

// SetNillableTicketNumber sets the "ticket_number" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableTicketNumber(v *string) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetTicketNumber(*v)
	}
	return _u
}

// ClearTicketNumber clears the value of the "ticket_number" field.
func (_u *ProcessedEmailUpdateOne) ClearTicketNumber() *ProcessedEmailUpdateOne {
	_u.mutation.ClearTicketNumber()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ProcessedEmailUpdateOne) SetSuccess(v bool) *ProcessedEmailUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableSuccess(v *bool) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessedEmailUpdateOne) SetErrorMessage(v string) *ProcessedEmailUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableErrorMessage(v *string) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessedEmailUpdateOne) ClearErrorMessage() *ProcessedEmailUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedEmailUpdateOne) SetProcessedAt(v time.Time) *ProcessedEmailUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ProcessedEmailUpdateOne) SetNillableProcessedAt(v *time.Time) *ProcessedEmailUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// Mutation returns the ProcessedEmailMutation object of the builder.
func (_u *ProcessedEmailUpdateOne) Mutation() *ProcessedEmailMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessedEmailUpdate builder.
func (_u *ProcessedEmailUpdateOne) Where(ps ...predicate.ProcessedEmail) *ProcessedEmailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedEmailUpdateOne) Select(field string, fields ...string) *ProcessedEmailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedEmail entity.
func (_u *ProcessedEmailUpdateOne) Save(ctx context.Context) (*ProcessedEmail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedEmailUpdateOne) SaveX(ctx context.Context) *ProcessedEmail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedEmailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedEmailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessedEmailUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedEmail, err error) {
	_spec := sqlgraph.NewUpdateSpec(processedemail.Table, processedemail.Columns, sqlgraph.NewFieldSpec(processedemail.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedEmail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedemail.FieldID)
		for _, f := range fields {
			if !processedemail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processedemail.FieldID {
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
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(processedemail.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(processedemail.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(processedemail.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(processedemail.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(processedemail.FieldFromAddress, field.TypeString, value)
	}
	if _u.mutation.FromAddressCleared() {
		_spec.ClearField(processedemail.FieldFromAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(processedemail.FieldReceivedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceivedAtCleared() {
		_spec.ClearField(processedemail.FieldReceivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TicketNumber(); ok {
		_spec.SetField(processedemail.FieldTicketNumber, field.TypeString, value)
	}
	if _u.mutation.TicketNumberCleared() {
		_spec.ClearField(processedemail.FieldTicketNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(processedemail.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processedemail.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processedemail.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedemail.FieldProcessedAt, field.TypeTime, value)
	}
	_node = &ProcessedEmail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedemail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
