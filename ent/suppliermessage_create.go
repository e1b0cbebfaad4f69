// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// SupplierMessageCreate is the builder for creating a SupplierMessage entity.
type SupplierMessageCreate struct {
	config
	mutation *SupplierMessageMutation
	hooks    []Hook
}

// SetSupplierEmail sets the "supplier_email" field.
func (_c *SupplierMessageCreate) SetSupplierEmail(v string) *SupplierMessageCreate {
	_c.mutation.SetSupplierEmail(v)
	return _c
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *SupplierMessageCreate) SetTicketNumber(v string) *SupplierMessageCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *SupplierMessageCreate) SetSentAt(v time.Time) *SupplierMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *SupplierMessageCreate) SetNillableSentAt(v *time.Time) *SupplierMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (_c *SupplierMessageCreate) SetReminderSentAt(v time.Time) *SupplierMessageCreate {
	_c.mutation.SetReminderSentAt(v)
	return _c
}

// SetNillableReminderSentAt sets the "reminder_sent_at" field if the given value is not nil.
func (_c *SupplierMessageCreate) SetNillableReminderSentAt(v *time.Time) *SupplierMessageCreate {
	if v != nil {
		_c.SetReminderSentAt(*v)
	}
	return _c
}

// SetResponseReceived sets the "response_received" field.
func (_c *SupplierMessageCreate) SetResponseReceived(v bool) *SupplierMessageCreate {
	_c.mutation.SetResponseReceived(v)
	return _c
}

// SetNillableResponseReceived sets the "response_received" field if the given value is not nil.
func (_c *SupplierMessageCreate) SetNillableResponseReceived(v *bool) *SupplierMessageCreate {
	if v != nil {
		_c.SetResponseReceived(*v)
	}
	return _c
}

// SetNextCheckAt sets the "next_check_at" field.
func (_c *SupplierMessageCreate) SetNextCheckAt(v time.Time) *SupplierMessageCreate {
	_c.mutation.SetNextCheckAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierMessageCreate) SetID(v string) *SupplierMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicketID sets the "ticket" edge to the TicketState entity by ID.
func (_c *SupplierMessageCreate) SetTicketID(id string) *SupplierMessageCreate {
	_c.mutation.SetTicketID(id)
	return _c
}

// SetTicket sets the "ticket" edge to the TicketState entity.
func (_c *SupplierMessageCreate) SetTicket(v *TicketState) *SupplierMessageCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the SupplierMessageMutation object of the builder.
func (_c *SupplierMessageCreate) Mutation() *SupplierMessageMutation {
	return _c.mutation
}

// Save creates the SupplierMessage in the database.
func (_c *SupplierMessageCreate) Save(ctx context.Context) (*SupplierMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierMessageCreate) SaveX(ctx context.Context) *SupplierMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierMessageCreate) defaults() {
	if _, ok := _c.mutation.SentAt(); !ok {
		v := suppliermessage.DefaultSentAt()
		_c.mutation.SetSentAt(v)
	}
	if _, ok := _c.mutation.ResponseReceived(); !ok {
		v := suppliermessage.DefaultResponseReceived
		_c.mutation.SetResponseReceived(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierMessageCreate) check() error {
	if _, ok := _c.mutation.SupplierEmail(); !ok {
		return &ValidationError{Name: "supplier_email", err: errors.New(`ent: missing required field "SupplierMessage.supplier_email"`)}
	}
	if _, ok := _c.mutation.TicketNumber(); !ok {
		return &ValidationError{Name: "ticket_number", err: errors.New(`ent: missing required field "SupplierMessage.ticket_number"`)}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "SupplierMessage.sent_at"`)}
	}
	if _, ok := _c.mutation.ResponseReceived(); !ok {
		return &ValidationError{Name: "response_received", err: errors.New(`ent: missing required field "SupplierMessage.response_received"`)}
	}
	if _, ok := _c.mutation.NextCheckAt(); !ok {
		return &ValidationError{Name: "next_check_at", err: errors.New(`ent: missing required field "SupplierMessage.next_check_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "SupplierMessage.ticket"`)}
	}
	return nil
}

func (_c *SupplierMessageCreate) sqlSave(ctx context.Context) (*SupplierMessage, error) {
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
			return nil, fmt.Errorf("unexpected SupplierMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupplierMessageCreate) createSpec() (*SupplierMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplierMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suppliermessage.Table, sqlgraph.NewFieldSpec(suppliermessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SupplierEmail(); ok {
		_spec.SetField(suppliermessage.FieldSupplierEmail, field.TypeString, value)
		_node.SupplierEmail = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(suppliermessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if value, ok := _c.mutation.ReminderSentAt(); ok {
		_spec.SetField(suppliermessage.FieldReminderSentAt, field.TypeTime, value)
		_node.ReminderSentAt = &value
	}
	if value, ok := _c.mutation.ResponseReceived(); ok {
		_spec.SetField(suppliermessage.FieldResponseReceived, field.TypeBool, value)
		_node.ResponseReceived = value
	}
	if value, ok := _c.mutation.NextCheckAt(); ok {
		_spec.SetField(suppliermessage.FieldNextCheckAt, field.TypeTime, value)
		_node.NextCheckAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suppliermessage.TicketTable,
			Columns: []string{suppliermessage.TicketColumn},
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

// SupplierMessageCreateBulk is the builder for creating many SupplierMessage entities in bulk.
type SupplierMessageCreateBulk struct {
	config
	err      error
	builders []*SupplierMessageCreate
}

// Save creates the SupplierMessage entities in the database.
func (_c *SupplierMessageCreateBulk) Save(ctx context.Context) ([]*SupplierMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplierMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierMessageMutation)
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
func (_c *SupplierMessageCreateBulk) SaveX(ctx context.Context) []*SupplierMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
