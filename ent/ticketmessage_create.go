// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// TicketMessageCreate is the builder for creating a TicketMessage entity.
type TicketMessageCreate struct {
	config
	mutation *TicketMessageMutation
	hooks    []Hook
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *TicketMessageCreate) SetTicketNumber(v string) *TicketMessageCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *TicketMessageCreate) SetDirection(v ticketmessage.Direction) *TicketMessageCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *TicketMessageCreate) SetRole(v ticketmessage.Role) *TicketMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableRole(v *ticketmessage.Role) *TicketMessageCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSender sets the "sender" field.
func (_c *TicketMessageCreate) SetSender(v string) *TicketMessageCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableSender(v *string) *TicketMessageCreate {
	if v != nil {
		_c.SetSender(*v)
	}
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *TicketMessageCreate) SetRecipient(v string) *TicketMessageCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableRecipient(v *string) *TicketMessageCreate {
	if v != nil {
		_c.SetRecipient(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *TicketMessageCreate) SetSubject(v string) *TicketMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableSubject(v *string) *TicketMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *TicketMessageCreate) SetBody(v string) *TicketMessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *TicketMessageCreate) SetSourceMessageID(v string) *TicketMessageCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableSourceMessageID(v *string) *TicketMessageCreate {
	if v != nil {
		_c.SetSourceMessageID(*v)
	}
	return _c
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_c *TicketMessageCreate) SetUpstreamMessageID(v string) *TicketMessageCreate {
	_c.mutation.SetUpstreamMessageID(v)
	return _c
}

// SetNillableUpstreamMessageID sets the "upstream_message_id" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableUpstreamMessageID(v *string) *TicketMessageCreate {
	if v != nil {
		_c.SetUpstreamMessageID(*v)
	}
	return _c
}

// SetAt sets the "at" field.
func (_c *TicketMessageCreate) SetAt(v time.Time) *TicketMessageCreate {
	_c.mutation.SetAt(v)
	return _c
}

// SetNillableAt sets the "at" field if the given value is not nil.
func (_c *TicketMessageCreate) SetNillableAt(v *time.Time) *TicketMessageCreate {
	if v != nil {
		_c.SetAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketMessageCreate) SetID(v string) *TicketMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicketID sets the "ticket" edge to the TicketState entity by ID.
func (_c *TicketMessageCreate) SetTicketID(id string) *TicketMessageCreate {
	_c.mutation.SetTicketID(id)
	return _c
}

// SetTicket sets the "ticket" edge to the TicketState entity.
func (_c *TicketMessageCreate) SetTicket(v *TicketState) *TicketMessageCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the TicketMessageMutation object of the builder.
func (_c *TicketMessageCreate) Mutation() *TicketMessageMutation {
	return _c.mutation
}

// Save creates the TicketMessage in the database.
func (_c *TicketMessageCreate) Save(ctx context.Context) (*TicketMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketMessageCreate) SaveX(ctx context.Context) *TicketMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketMessageCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := ticketmessage.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.At(); !ok {
		v := ticketmessage.DefaultAt()
		_c.mutation.SetAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketMessageCreate) check() error {
	if _, ok := _c.mutation.TicketNumber(); !ok {
		return &ValidationError{Name: "ticket_number", err: errors.New(`ent: missing required field "TicketMessage.ticket_number"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "TicketMessage.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := ticketmessage.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "TicketMessage.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "TicketMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := ticketmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TicketMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "TicketMessage.body"`)}
	}
	if _, ok := _c.mutation.At(); !ok {
		return &ValidationError{Name: "at", err: errors.New(`ent: missing required field "TicketMessage.at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "TicketMessage.ticket"`)}
	}
	return nil
}

func (_c *TicketMessageCreate) sqlSave(ctx context.Context) (*TicketMessage, error) {
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
			return nil, fmt.Errorf("unexpected TicketMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketMessageCreate) createSpec() (*TicketMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketmessage.Table, sqlgraph.NewFieldSpec(ticketmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(ticketmessage.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(ticketmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(ticketmessage.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(ticketmessage.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(ticketmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(ticketmessage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(ticketmessage.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = value
	}
	if value, ok := _c.mutation.UpstreamMessageID(); ok {
		_spec.SetField(ticketmessage.FieldUpstreamMessageID, field.TypeString, value)
		_node.UpstreamMessageID = value
	}
	if value, ok := _c.mutation.At(); ok {
		_spec.SetField(ticketmessage.FieldAt, field.TypeTime, value)
		_node.At = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticketmessage.TicketTable,
			Columns: []string{ticketmessage.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TicketNumber = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TicketMessageCreateBulk is the builder for creating many TicketMessage entities in bulk.
type TicketMessageCreateBulk struct {
	config
	err      error
	builders []*TicketMessageCreate
}

// Save creates the TicketMessage entities in the database.
func (_c *TicketMessageCreateBulk) Save(ctx context.Context) ([]*TicketMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMessageMutation)
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
func (_c *TicketMessageCreateBulk) SaveX(ctx context.Context) []*TicketMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
