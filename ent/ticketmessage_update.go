// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
)

// TicketMessageUpdate is the builder for updating TicketMessage entities.
type TicketMessageUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMessageMutation
}

// Where appends a list predicates to the TicketMessageUpdate builder.
func (_u *TicketMessageUpdate) Where(ps ...predicate.TicketMessage) *TicketMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDirection sets the "direction" field.
func (_u *TicketMessageUpdate) SetDirection(v ticketmessage.Direction) *TicketMessageUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableDirection(v *ticketmessage.Direction) *TicketMessageUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *TicketMessageUpdate) SetRole(v ticketmessage.Role) *TicketMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableRole(v *ticketmessage.Role) *TicketMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *TicketMessageUpdate) SetSender(v string) *TicketMessageUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableSender(v *string) *TicketMessageUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// ClearSender clears the value of the "sender" field.
func (_u *TicketMessageUpdate) ClearSender() *TicketMessageUpdate {
	_u.mutation.ClearSender()
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *TicketMessageUpdate) SetRecipient(v string) *TicketMessageUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableRecipient(v *string) *TicketMessageUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// ClearRecipient clears the value of the "recipient" field.
func (_u *TicketMessageUpdate) ClearRecipient() *TicketMessageUpdate {
	_u.mutation.ClearRecipient()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TicketMessageUpdate) SetSubject(v string) *TicketMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableSubject(v *string) *TicketMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *TicketMessageUpdate) ClearSubject() *TicketMessageUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *TicketMessageUpdate) SetBody(v string) *TicketMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableBody(v *string) *TicketMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *TicketMessageUpdate) SetSourceMessageID(v string) *TicketMessageUpdate {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableSourceMessageID(v *string) *TicketMessageUpdate {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *TicketMessageUpdate) ClearSourceMessageID() *TicketMessageUpdate {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_u *TicketMessageUpdate) SetUpstreamMessageID(v string) *TicketMessageUpdate {
	_u.mutation.SetUpstreamMessageID(v)
	return _u
}

// SetNillableUpstreamMessageID sets the "upstream_message_id" field if the given value is not nil.
func (_u *TicketMessageUpdate) SetNillableUpstreamMessageID(v *string) *TicketMessageUpdate {
	if v != nil {
		_u.SetUpstreamMessageID(*v)
	}
	return _u
}

// ClearUpstreamMessageID clears the value of the "upstream_message_id" field.
func (_u *TicketMessageUpdate) ClearUpstreamMessageID() *TicketMessageUpdate {
	_u.mutation.ClearUpstreamMessageID()
	return _u
}

// Mutation returns the TicketMessageMutation object of the builder.
func (_u *TicketMessageUpdate) Mutation() *TicketMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketMessageUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := ticketmessage.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "TicketMessage.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := ticketmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TicketMessage.role": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketMessage.ticket"`)
	}
	return nil
}

func (_u *TicketMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketmessage.Table, ticketmessage.Columns, sqlgraph.NewFieldSpec(ticketmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(ticketmessage.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(ticketmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(ticketmessage.FieldSender, field.TypeString, value)
	}
	if _u.mutation.SenderCleared() {
		_spec.ClearField(ticketmessage.FieldSender, field.TypeString)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(ticketmessage.FieldRecipient, field.TypeString, value)
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(ticketmessage.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(ticketmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(ticketmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(ticketmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(ticketmessage.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(ticketmessage.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamMessageID(); ok {
		_spec.SetField(ticketmessage.FieldUpstreamMessageID, field.TypeString, value)
	}
	if _u.mutation.UpstreamMessageIDCleared() {
		_spec.ClearField(ticketmessage.FieldUpstreamMessageID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketMessageUpdateOne is the builder for updating a single TicketMessage entity.
type TicketMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMessageMutation
}

// SetDirection sets the "direction" field.
func (_u *TicketMessageUpdateOne) SetDirection(v ticketmessage.Direction) *TicketMessageUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableDirection(v *ticketmessage.Direction) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *TicketMessageUpdateOne) SetRole(v ticketmessage.Role) *TicketMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableRole(v *ticketmessage.Role) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *TicketMessageUpdateOne) SetSender(v string) *TicketMessageUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableSender(v *string) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// ClearSender clears the value of the "sender" field.
func (_u *TicketMessageUpdateOne) ClearSender() *TicketMessageUpdateOne {
	_u.mutation.ClearSender()
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *TicketMessageUpdateOne) SetRecipient(v string) *TicketMessageUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableRecipient(v *string) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// ClearRecipient clears the value of the "recipient" field.
func (_u *TicketMessageUpdateOne) ClearRecipient() *TicketMessageUpdateOne {
	_u.mutation.ClearRecipient()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TicketMessageUpdateOne) SetSubject(v string) *TicketMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableSubject(v *string) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *TicketMessageUpdateOne) ClearSubject() *TicketMessageUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *TicketMessageUpdateOne) SetBody(v string) *TicketMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableBody(v *string) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *TicketMessageUpdateOne) SetSourceMessageID(v string) *TicketMessageUpdateOne {
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableSourceMessageID(v *string) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (_u *TicketMessageUpdateOne) ClearSourceMessageID() *TicketMessageUpdateOne {
	_u.mutation.ClearSourceMessageID()
	return _u
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_u *TicketMessageUpdateOne) SetUpstreamMessageID(v string) *TicketMessageUpdateOne {
	_u.mutation.SetUpstreamMessageID(v)
	return _u
}

// SetNillableUpstreamMessageID sets the "upstream_message_id" field if the given value is not nil.
func (_u *TicketMessageUpdateOne) SetNillableUpstreamMessageID(v *string) *TicketMessageUpdateOne {
	if v != nil {
		_u.SetUpstreamMessageID(*v)
	}
	return _u
}

// ClearUpstreamMessageID clears the value of the "upstream_message_id" field.
func (_u *TicketMessageUpdateOne) ClearUpstreamMessageID() *TicketMessageUpdateOne {
	_u.mutation.ClearUpstreamMessageID()
	return _u
}

// Mutation returns the TicketMessageMutation object of the builder.
func (_u *TicketMessageUpdateOne) Mutation() *TicketMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketMessageUpdate builder.
func (_u *TicketMessageUpdateOne) Where(ps ...predicate.TicketMessage) *TicketMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketMessageUpdateOne) Select(field string, fields ...string) *TicketMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketMessage entity.
func (_u *TicketMessageUpdateOne) Save(ctx context.Context) (*TicketMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketMessageUpdateOne) SaveX(ctx context.Context) *TicketMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := ticketmessage.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "TicketMessage.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := ticketmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TicketMessage.role": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketMessage.ticket"`)
	}
	return nil
}

func (_u *TicketMessageUpdateOne) sqlSave(ctx context.Context) (_node *TicketMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketmessage.Table, ticketmessage.Columns, sqlgraph.NewFieldSpec(ticketmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketmessage.FieldID)
		for _, f := range fields {
			if !ticketmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketmessage.FieldID {
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
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(ticketmessage.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(ticketmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(ticketmessage.FieldSender, field.TypeString, value)
	}
	if _u.mutation.SenderCleared() {
		_spec.ClearField(ticketmessage.FieldSender, field.TypeString)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(ticketmessage.FieldRecipient, field.TypeString, value)
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(ticketmessage.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(ticketmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(ticketmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(ticketmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(ticketmessage.FieldSourceMessageID, field.TypeString, value)
	}
	if _u.mutation.SourceMessageIDCleared() {
		_spec.ClearField(ticketmessage.FieldSourceMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamMessageID(); ok {
		_spec.SetField(ticketmessage.FieldUpstreamMessageID, field.TypeString, value)
	}
	if _u.mutation.UpstreamMessageIDCleared() {
		_spec.ClearField(ticketmessage.FieldUpstreamMessageID, field.TypeString)
	}
	_node = &TicketMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
