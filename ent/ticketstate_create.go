// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// TicketStateCreate is the builder for creating a TicketState entity.
type TicketStateCreate struct {
	config
	mutation *TicketStateMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *TicketStateCreate) SetTicketID(v string) *TicketStateCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableTicketID(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TicketStateCreate) SetStatus(v ticketstate.Status) *TicketStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableStatus(v *ticketstate.Status) *TicketStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCustomStatusID sets the "custom_status_id" field.
func (_c *TicketStateCreate) SetCustomStatusID(v int) *TicketStateCreate {
	_c.mutation.SetCustomStatusID(v)
	return _c
}

// SetNillableCustomStatusID sets the "custom_status_id" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableCustomStatusID(v *int) *TicketStateCreate {
	if v != nil {
		_c.SetCustomStatusID(*v)
	}
	return _c
}

// SetCustomerEmail sets the "customer_email" field.
func (_c *TicketStateCreate) SetCustomerEmail(v string) *TicketStateCreate {
	_c.mutation.SetCustomerEmail(v)
	return _c
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableCustomerEmail(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetCustomerEmail(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *TicketStateCreate) SetLanguage(v string) *TicketStateCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableLanguage(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *TicketStateCreate) SetOrderNumber(v string) *TicketStateCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableOrderNumber(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetOrderNumber(*v)
	}
	return _c
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (_c *TicketStateCreate) SetPurchaseOrderNumber(v string) *TicketStateCreate {
	_c.mutation.SetPurchaseOrderNumber(v)
	return _c
}

// SetNillablePurchaseOrderNumber sets the "purchase_order_number" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillablePurchaseOrderNumber(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetPurchaseOrderNumber(*v)
	}
	return _c
}

// SetSupplierEmail sets the "supplier_email" field.
func (_c *TicketStateCreate) SetSupplierEmail(v string) *TicketStateCreate {
	_c.mutation.SetSupplierEmail(v)
	return _c
}

// SetNillableSupplierEmail sets the "supplier_email" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableSupplierEmail(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetSupplierEmail(*v)
	}
	return _c
}

// SetSupplierTicketReferences sets the "supplier_ticket_references" field.
func (_c *TicketStateCreate) SetSupplierTicketReferences(v []string) *TicketStateCreate {
	_c.mutation.SetSupplierTicketReferences(v)
	return _c
}

// SetEscalated sets the "escalated" field.
func (_c *TicketStateCreate) SetEscalated(v bool) *TicketStateCreate {
	_c.mutation.SetEscalated(v)
	return _c
}

// SetNillableEscalated sets the "escalated" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableEscalated(v *bool) *TicketStateCreate {
	if v != nil {
		_c.SetEscalated(*v)
	}
	return _c
}

// SetEscalationReason sets the "escalation_reason" field.
func (_c *TicketStateCreate) SetEscalationReason(v string) *TicketStateCreate {
	_c.mutation.SetEscalationReason(v)
	return _c
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableEscalationReason(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetEscalationReason(*v)
	}
	return _c
}

// SetEscalationAt sets the "escalation_at" field.
func (_c *TicketStateCreate) SetEscalationAt(v time.Time) *TicketStateCreate {
	_c.mutation.SetEscalationAt(v)
	return _c
}

// SetNillableEscalationAt sets the "escalation_at" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableEscalationAt(v *time.Time) *TicketStateCreate {
	if v != nil {
		_c.SetEscalationAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *TicketStateCreate) SetLastSeenAt(v time.Time) *TicketStateCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableLastSeenAt(v *time.Time) *TicketStateCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetGmailThreadID sets the "gmail_thread_id" field.
func (_c *TicketStateCreate) SetGmailThreadID(v string) *TicketStateCreate {
	_c.mutation.SetGmailThreadID(v)
	return _c
}

// SetNillableGmailThreadID sets the "gmail_thread_id" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableGmailThreadID(v *string) *TicketStateCreate {
	if v != nil {
		_c.SetGmailThreadID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketStateCreate) SetCreatedAt(v time.Time) *TicketStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketStateCreate) SetNillableCreatedAt(v *time.Time) *TicketStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketStateCreate) SetID(v string) *TicketStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by IDs.
func (_c *TicketStateCreate) AddMessageIDs(ids ...string) *TicketStateCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the TicketMessage entity.
func (_c *TicketStateCreate) AddMessages(v ...*TicketMessage) *TicketStateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddDecisionIDs adds the "decisions" edge to the AIDecision entity by IDs.
func (_c *TicketStateCreate) AddDecisionIDs(ids ...string) *TicketStateCreate {
	_c.mutation.AddDecisionIDs(ids...)
	return _c
}

// AddDecisions adds the "decisions" edges to the AIDecision entity.
func (_c *TicketStateCreate) AddDecisions(v ...*AIDecision) *TicketStateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDecisionIDs(ids...)
}

// AddPendingMessageIDs adds the "pending_messages" edge to the PendingMessage entity by IDs.
func (_c *TicketStateCreate) AddPendingMessageIDs(ids ...string) *TicketStateCreate {
	_c.mutation.AddPendingMessageIDs(ids...)
	return _c
}

// AddPendingMessages adds the "pending_messages" edges to the PendingMessage entity.
func (_c *TicketStateCreate) AddPendingMessages(v ...*PendingMessage) *TicketStateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPendingMessageIDs(ids...)
}

// AddSupplierMessageIDs adds the "supplier_messages" edge to the SupplierMessage entity by IDs.
func (_c *TicketStateCreate) AddSupplierMessageIDs(ids ...string) *TicketStateCreate {
	_c.mutation.AddSupplierMessageIDs(ids...)
	return _c
}

// AddSupplierMessages adds the "supplier_messages" edges to the SupplierMessage entity.
func (_c *TicketStateCreate) AddSupplierMessages(v ...*SupplierMessage) *TicketStateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSupplierMessageIDs(ids...)
}

// Mutation returns the TicketStateMutation object of the builder.
func (_c *TicketStateCreate) Mutation() *TicketStateMutation {
	return _c.mutation
}

// Save creates the TicketState in the database.
func (_c *TicketStateCreate) Save(ctx context.Context) (*TicketState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketStateCreate) SaveX(ctx context.Context) *TicketState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ticketstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Escalated(); !ok {
		v := ticketstate.DefaultEscalated
		_c.mutation.SetEscalated(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := ticketstate.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketStateCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TicketState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ticketstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TicketState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Escalated(); !ok {
		return &ValidationError{Name: "escalated", err: errors.New(`ent: missing required field "TicketState.escalated"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "TicketState.last_seen_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketState.created_at"`)}
	}
	return nil
}

func (_c *TicketStateCreate) sqlSave(ctx context.Context) (*TicketState, error) {
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
			return nil, fmt.Errorf("unexpected TicketState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketStateCreate) createSpec() (*TicketState, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketstate.Table, sqlgraph.NewFieldSpec(ticketstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(ticketstate.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ticketstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CustomStatusID(); ok {
		_spec.SetField(ticketstate.FieldCustomStatusID, field.TypeInt, value)
		_node.CustomStatusID = &value
	}
	if value, ok := _c.mutation.CustomerEmail(); ok {
		_spec.SetField(ticketstate.FieldCustomerEmail, field.TypeString, value)
		_node.CustomerEmail = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(ticketstate.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(ticketstate.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = &value
	}
	if value, ok := _c.mutation.PurchaseOrderNumber(); ok {
		_spec.SetField(ticketstate.FieldPurchaseOrderNumber, field.TypeString, value)
		_node.PurchaseOrderNumber = &value
	}
	if value, ok := _c.mutation.SupplierEmail(); ok {
		_spec.SetField(ticketstate.FieldSupplierEmail, field.TypeString, value)
		_node.SupplierEmail = value
	}
	if value, ok := _c.mutation.SupplierTicketReferences(); ok {
		_spec.SetField(ticketstate.FieldSupplierTicketReferences, field.TypeJSON, value)
		_node.SupplierTicketReferences = value
	}
	if value, ok := _c.mutation.Escalated(); ok {
		_spec.SetField(ticketstate.FieldEscalated, field.TypeBool, value)
		_node.Escalated = value
	}
	if value, ok := _c.mutation.EscalationReason(); ok {
		_spec.SetField(ticketstate.FieldEscalationReason, field.TypeString, value)
		_node.EscalationReason = &value
	}
	if value, ok := _c.mutation.EscalationAt(); ok {
		_spec.SetField(ticketstate.FieldEscalationAt, field.TypeTime, value)
		_node.EscalationAt = &value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(ticketstate.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.GmailThreadID(); ok {
		_spec.SetField(ticketstate.FieldGmailThreadID, field.TypeString, value)
		_node.GmailThreadID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticketstate.MessagesTable,
			Columns: []string{ticketstate.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticketstate.DecisionsTable,
			Columns: []string{ticketstate.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aidecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PendingMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticketstate.PendingMessagesTable,
			Columns: []string{ticketstate.PendingMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pendingmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SupplierMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticketstate.SupplierMessagesTable,
			Columns: []string{ticketstate.SupplierMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suppliermessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TicketStateCreateBulk is the builder for creating many TicketState entities in bulk.
type TicketStateCreateBulk struct {
	config
	err      error
	builders []*TicketStateCreate
}

// Save creates the TicketState entities in the database.
func (_c *TicketStateCreateBulk) Save(ctx context.Context) ([]*TicketState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketStateMutation)
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
func (_c *TicketStateCreateBulk) SaveX(ctx context.Context) []*TicketState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
