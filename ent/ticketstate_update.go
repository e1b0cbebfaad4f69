// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// TicketStateUpdate is the builder for updating TicketState entities.
type TicketStateUpdate struct {
	config
	hooks    []Hook
	mutation *TicketStateMutation
}

// Where appends a list predicates to the TicketStateUpdate builder.
func (_u *TicketStateUpdate) Where(ps ...predicate.TicketState) *TicketStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *TicketStateUpdate) SetTicketID(v string) *TicketStateUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableTicketID(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *TicketStateUpdate) ClearTicketID() *TicketStateUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketStateUpdate) SetStatus(v ticketstate.Status) *TicketStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableStatus(v *ticketstate.Status) *TicketStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCustomStatusID sets the "custom_status_id" field.
func (_u *TicketStateUpdate) SetCustomStatusID(v int) *TicketStateUpdate {
	_u.mutation.ResetCustomStatusID()
	_u.mutation.SetCustomStatusID(v)
	return _u
}

// SetNillableCustomStatusID sets the "custom_status_id" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableCustomStatusID(v *int) *TicketStateUpdate {
	if v != nil {
		_u.SetCustomStatusID(*v)
	}
	return _u
}

// AddCustomStatusID adds value to the "custom_status_id" field.
func (_u *TicketStateUpdate) AddCustomStatusID(v int) *TicketStateUpdate {
	_u.mutation.AddCustomStatusID(v)
	return _u
}

// ClearCustomStatusID clears the value of the "custom_status_id" field.
func (_u *TicketStateUpdate) ClearCustomStatusID() *TicketStateUpdate {
	_u.mutation.ClearCustomStatusID()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *TicketStateUpdate) SetCustomerEmail(v string) *TicketStateUpdate {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableCustomerEmail(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *TicketStateUpdate) ClearCustomerEmail() *TicketStateUpdate {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TicketStateUpdate) SetLanguage(v string) *TicketStateUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableLanguage(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *TicketStateUpdate) ClearLanguage() *TicketStateUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *TicketStateUpdate) SetOrderNumber(v string) *TicketStateUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableOrderNumber(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// ClearOrderNumber clears the value of the "order_number" field.
func (_u *TicketStateUpdate) ClearOrderNumber() *TicketStateUpdate {
	_u.mutation.ClearOrderNumber()
	return _u
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (_u *TicketStateUpdate) SetPurchaseOrderNumber(v string) *TicketStateUpdate {
	_u.mutation.SetPurchaseOrderNumber(v)
	return _u
}

// SetNillablePurchaseOrderNumber sets the "purchase_order_number" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillablePurchaseOrderNumber(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetPurchaseOrderNumber(*v)
	}
	return _u
}

// ClearPurchaseOrderNumber clears the value of the "purchase_order_number" field.
func (_u *TicketStateUpdate) ClearPurchaseOrderNumber() *TicketStateUpdate {
	_u.mutation.ClearPurchaseOrderNumber()
	return _u
}

// SetSupplierEmail sets the "supplier_email" field.
func (_u *TicketStateUpdate) SetSupplierEmail(v string) *TicketStateUpdate {
	_u.mutation.SetSupplierEmail(v)
	return _u
}

// SetNillableSupplierEmail sets the "supplier_email" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableSupplierEmail(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetSupplierEmail(*v)
	}
	return _u
}

// ClearSupplierEmail clears the value of the "supplier_email" field.
func (_u *TicketStateUpdate) ClearSupplierEmail() *TicketStateUpdate {
	_u.mutation.ClearSupplierEmail()
	return _u
}

// SetSupplierTicketReferences sets the "supplier_ticket_references" field.
func (_u *TicketStateUpdate) SetSupplierTicketReferences(v []string) *TicketStateUpdate {
	_u.mutation.SetSupplierTicketReferences(v)
	return _u
}

// AppendSupplierTicketReferences appends value to the "supplier_ticket_references" field.
func (_u *TicketStateUpdate) AppendSupplierTicketReferences(v []string) *TicketStateUpdate {
	_u.mutation.AppendSupplierTicketReferences(v)
	return _u
}

// ClearSupplierTicketReferences clears the value of the "supplier_ticket_references" field.
func (_u *TicketStateUpdate) ClearSupplierTicketReferences() *TicketStateUpdate {
	_u.mutation.ClearSupplierTicketReferences()
	return _u
}

// SetEscalated sets the "escalated" field.
func (_u *TicketStateUpdate) SetEscalated(v bool) *TicketStateUpdate {
	_u.mutation.SetEscalated(v)
	return _u
}

// SetNillableEscalated sets the "escalated" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableEscalated(v *bool) *TicketStateUpdate {
	if v != nil {
		_u.SetEscalated(*v)
	}
	return _u
}

// SetEscalationReason sets the "escalation_reason" field.
func (_u *TicketStateUpdate) SetEscalationReason(v string) *TicketStateUpdate {
	_u.mutation.SetEscalationReason(v)
	return _u
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableEscalationReason(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetEscalationReason(*v)
	}
	return _u
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (_u *TicketStateUpdate) ClearEscalationReason() *TicketStateUpdate {
	_u.mutation.ClearEscalationReason()
	return _u
}

// SetEscalationAt sets the "escalation_at" field.
func (_u *TicketStateUpdate) SetEscalationAt(v time.Time) *TicketStateUpdate {
	_u.mutation.SetEscalationAt(v)
	return _u
}

// SetNillableEscalationAt sets the "escalation_at" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableEscalationAt(v *time.Time) *TicketStateUpdate {
	if v != nil {
		_u.SetEscalationAt(*v)
	}
	return _u
}

// ClearEscalationAt clears the value of the "escalation_at" field.
func (_u *TicketStateUpdate) ClearEscalationAt() *TicketStateUpdate {
	_u.mutation.ClearEscalationAt()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *TicketStateUpdate) SetLastSeenAt(v time.Time) *TicketStateUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableLastSeenAt(v *time.Time) *TicketStateUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetGmailThreadID sets the "gmail_thread_id" field.
func (_u *TicketStateUpdate) SetGmailThreadID(v string) *TicketStateUpdate {
	_u.mutation.SetGmailThreadID(v)
	return _u
}

// SetNillableGmailThreadID sets the "gmail_thread_id" field if the given value is not nil.
func (_u *TicketStateUpdate) SetNillableGmailThreadID(v *string) *TicketStateUpdate {
	if v != nil {
		_u.SetGmailThreadID(*v)
	}
	return _u
}

// ClearGmailThreadID clears the value of the "gmail_thread_id" field.
func (_u *TicketStateUpdate) ClearGmailThreadID() *TicketStateUpdate {
	_u.mutation.ClearGmailThreadID()
	return _u
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by IDs.
func (_u *TicketStateUpdate) AddMessageIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the TicketMessage entity.
func (_u *TicketStateUpdate) AddMessages(v ...*TicketMessage) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddDecisionIDs adds the "decisions" edge to the AIDecision entity by IDs.
func (_u *TicketStateUpdate) AddDecisionIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the AIDecision entity.
func (_u *TicketStateUpdate) AddDecisions(v ...*AIDecision) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// AddPendingMessageIDs adds the "pending_messages" edge to the PendingMessage entity by IDs.
func (_u *TicketStateUpdate) AddPendingMessageIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.AddPendingMessageIDs(ids...)
	return _u
}

// AddPendingMessages adds the "pending_messages" edges to the PendingMessage entity.
func (_u *TicketStateUpdate) AddPendingMessages(v ...*PendingMessage) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPendingMessageIDs(ids...)
}

// AddSupplierMessageIDs adds the "supplier_messages" edge to the SupplierMessage entity by IDs.
func (_u *TicketStateUpdate) AddSupplierMessageIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.AddSupplierMessageIDs(ids...)
	return _u
}

// AddSupplierMessages adds the "supplier_messages" edges to the SupplierMessage entity.
func (_u *TicketStateUpdate) AddSupplierMessages(v ...*SupplierMessage) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSupplierMessageIDs(ids...)
}

// Mutation returns the TicketStateMutation object of the builder.
func (_u *TicketStateUpdate) Mutation() *TicketStateMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the TicketMessage entity.
func (_u *TicketStateUpdate) ClearMessages() *TicketStateUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to TicketMessage entities by IDs.
func (_u *TicketStateUpdate) RemoveMessageIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to TicketMessage entities.
func (_u *TicketStateUpdate) RemoveMessages(v ...*TicketMessage) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearDecisions clears all "decisions" edges to the AIDecision entity.
func (_u *TicketStateUpdate) ClearDecisions() *TicketStateUpdate {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to AIDecision entities by IDs.
func (_u *TicketStateUpdate) RemoveDecisionIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to AIDecision entities.
func (_u *TicketStateUpdate) RemoveDecisions(v ...*AIDecision) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// ClearPendingMessages clears all "pending_messages" edges to the PendingMessage entity.
func (_u *TicketStateUpdate) ClearPendingMessages() *TicketStateUpdate {
	_u.mutation.ClearPendingMessages()
	return _u
}

// RemovePendingMessageIDs removes the "pending_messages" edge to PendingMessage entities by IDs.
func (_u *TicketStateUpdate) RemovePendingMessageIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.RemovePendingMessageIDs(ids...)
	return _u
}

// RemovePendingMessages removes "pending_messages" edges to PendingMessage entities.
func (_u *TicketStateUpdate) RemovePendingMessages(v ...*PendingMessage) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePendingMessageIDs(ids...)
}

// ClearSupplierMessages clears all "supplier_messages" edges to the SupplierMessage entity.
func (_u *TicketStateUpdate) ClearSupplierMessages() *TicketStateUpdate {
	_u.mutation.ClearSupplierMessages()
	return _u
}

// RemoveSupplierMessageIDs removes the "supplier_messages" edge to SupplierMessage entities by IDs.
func (_u *TicketStateUpdate) RemoveSupplierMessageIDs(ids ...string) *TicketStateUpdate {
	_u.mutation.RemoveSupplierMessageIDs(ids...)
	return _u
}

// RemoveSupplierMessages removes "supplier_messages" edges to SupplierMessage entities.
func (_u *TicketStateUpdate) RemoveSupplierMessages(v ...*SupplierMessage) *TicketStateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSupplierMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticketstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TicketState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketstate.Table, ticketstate.Columns, sqlgraph.NewFieldSpec(ticketstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(ticketstate.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(ticketstate.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticketstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CustomStatusID(); ok {
		_spec.SetField(ticketstate.FieldCustomStatusID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomStatusID(); ok {
		_spec.AddField(ticketstate.FieldCustomStatusID, field.TypeInt, value)
	}
	if _u.mutation.CustomStatusIDCleared() {
		_spec.ClearField(ticketstate.FieldCustomStatusID, field.TypeInt)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(ticketstate.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(ticketstate.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(ticketstate.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(ticketstate.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(ticketstate.FieldOrderNumber, field.TypeString, value)
	}
	if _u.mutation.OrderNumberCleared() {
		_spec.ClearField(ticketstate.FieldOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PurchaseOrderNumber(); ok {
		_spec.SetField(ticketstate.FieldPurchaseOrderNumber, field.TypeString, value)
	}
	if _u.mutation.PurchaseOrderNumberCleared() {
		_spec.ClearField(ticketstate.FieldPurchaseOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierEmail(); ok {
		_spec.SetField(ticketstate.FieldSupplierEmail, field.TypeString, value)
	}
	if _u.mutation.SupplierEmailCleared() {
		_spec.ClearField(ticketstate.FieldSupplierEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierTicketReferences(); ok {
		_spec.SetField(ticketstate.FieldSupplierTicketReferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupplierTicketReferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticketstate.FieldSupplierTicketReferences, value)
		})
	}
	if _u.mutation.SupplierTicketReferencesCleared() {
		_spec.ClearField(ticketstate.FieldSupplierTicketReferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Escalated(); ok {
		_spec.SetField(ticketstate.FieldEscalated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationReason(); ok {
		_spec.SetField(ticketstate.FieldEscalationReason, field.TypeString, value)
	}
	if _u.mutation.EscalationReasonCleared() {
		_spec.ClearField(ticketstate.FieldEscalationReason, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationAt(); ok {
		_spec.SetField(ticketstate.FieldEscalationAt, field.TypeTime, value)
	}
	if _u.mutation.EscalationAtCleared() {
		_spec.ClearField(ticketstate.FieldEscalationAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(ticketstate.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GmailThreadID(); ok {
		_spec.SetField(ticketstate.FieldGmailThreadID, field.TypeString, value)
	}
	if _u.mutation.GmailThreadIDCleared() {
		_spec.ClearField(ticketstate.FieldGmailThreadID, field.TypeString)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PendingMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPendingMessagesIDs(); len(nodes) > 0 && !_u.mutation.PendingMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PendingMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupplierMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSupplierMessagesIDs(); len(nodes) > 0 && !_u.mutation.SupplierMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketStateUpdateOne is the builder for updating a single TicketState entity.
type TicketStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketStateMutation
}

// SetTicketID sets the "ticket_id" field.
func (_u *TicketStateUpdateOne) SetTicketID(v string) *TicketStateUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableTicketID(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *TicketStateUpdateOne) ClearTicketID() *TicketStateUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketStateUpdateOne) SetStatus(v ticketstate.Status) *TicketStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableStatus(v *ticketstate.Status) *TicketStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCustomStatusID sets the "custom_status_id" field.
func (_u *TicketStateUpdateOne) SetCustomStatusID(v int) *TicketStateUpdateOne {
	_u.mutation.ResetCustomStatusID()
	_u.mutation.SetCustomStatusID(v)
	return _u
}

// SetNillableCustomStatusID sets the "custom_status_id" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableCustomStatusID(v *int) *TicketStateUpdateOne {
	if v != nil {
		_u.SetCustomStatusID(*v)
	}
	return _u
}

// AddCustomStatusID adds value to the "custom_status_id" field.
func (_u *TicketStateUpdateOne) AddCustomStatusID(v int) *TicketStateUpdateOne {
	_u.mutation.AddCustomStatusID(v)
	return _u
}

// ClearCustomStatusID clears the value of the "custom_status_id" field.
func (_u *TicketStateUpdateOne) ClearCustomStatusID() *TicketStateUpdateOne {
	_u.mutation.ClearCustomStatusID()
	return _u
}

// SetCustomerEmail sets the "customer_email" field.
func (_u *TicketStateUpdateOne) SetCustomerEmail(v string) *TicketStateUpdateOne {
	_u.mutation.SetCustomerEmail(v)
	return _u
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableCustomerEmail(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetCustomerEmail(*v)
	}
	return _u
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (_u *TicketStateUpdateOne) ClearCustomerEmail() *TicketStateUpdateOne {
	_u.mutation.ClearCustomerEmail()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TicketStateUpdateOne) SetLanguage(v string) *TicketStateUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableLanguage(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *TicketStateUpdateOne) ClearLanguage() *TicketStateUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *TicketStateUpdateOne) SetOrderNumber(v string) *TicketStateUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableOrderNumber(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// ClearOrderNumber clears the value of the "order_number" field.
func (_u *TicketStateUpdateOne) ClearOrderNumber() *TicketStateUpdateOne {
	_u.mutation.ClearOrderNumber()
	return _u
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (_u *TicketStateUpdateOne) SetPurchaseOrderNumber(v string) *TicketStateUpdateOne {
	_u.mutation.SetPurchaseOrderNumber(v)
	return _u
}

// SetNillablePurchaseOrderNumber sets the "purchase_order_number" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillablePurchaseOrderNumber(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetPurchaseOrderNumber(*v)
	}
	return _u
}

// ClearPurchaseOrderNumber clears the value of the "purchase_order_number" field.
func (_u *TicketStateUpdateOne) ClearPurchaseOrderNumber() *TicketStateUpdateOne {
	_u.mutation.ClearPurchaseOrderNumber()
	return _u
}

// SetSupplierEmail sets the "supplier_email" field.
func (_u *TicketStateUpdateOne) SetSupplierEmail(v string) *TicketStateUpdateOne {
	_u.mutation.SetSupplierEmail(v)
	return _u
}

// SetNillableSupplierEmail sets the "supplier_email" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableSupplierEmail(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetSupplierEmail(*v)
	}
	return _u
}

// ClearSupplierEmail clears the value of the "supplier_email" field.
func (_u *TicketStateUpdateOne) ClearSupplierEmail() *TicketStateUpdateOne {
	_u.mutation.ClearSupplierEmail()
	return _u
}

// SetSupplierTicketReferences sets the "supplier_ticket_references" field.
func (_u *TicketStateUpdateOne) SetSupplierTicketReferences(v []string) *TicketStateUpdateOne {
	_u.mutation.SetSupplierTicketReferences(v)
	return _u
}

// AppendSupplierTicketReferences appends value to the "supplier_ticket_references" field.
func (_u *TicketStateUpdateOne) AppendSupplierTicketReferences(v []string) *TicketStateUpdateOne {
	_u.mutation.AppendSupplierTicketReferences(v)
	return _u
}

// ClearSupplierTicketReferences clears the value of the "supplier_ticket_references" field.
func (_u *TicketStateUpdateOne) ClearSupplierTicketReferences() *TicketStateUpdateOne {
	_u.mutation.ClearSupplierTicketReferences()
	return _u
}

// SetEscalated sets the "escalated" field.
func (_u *TicketStateUpdateOne) SetEscalated(v bool) *TicketStateUpdateOne {
	_u.mutation.SetEscalated(v)
	return _u
}

// SetNillableEscalated sets the "escalated" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableEscalated(v *bool) *TicketStateUpdateOne {
	if v != nil {
		_u.SetEscalated(*v)
	}
	return _u
}

// SetEscalationReason sets the "escalation_reason" field.
func (_u *TicketStateUpdateOne) SetEscalationReason(v string) *TicketStateUpdateOne {
	_u.mutation.SetEscalationReason(v)
	return _u
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableEscalationReason(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetEscalationReason(*v)
	}
	return _u
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (_u *TicketStateUpdateOne) ClearEscalationReason() *TicketStateUpdateOne {
	_u.mutation.ClearEscalationReason()
	return _u
}

// SetEscalationAt sets the "escalation_at" field.
func (_u *TicketStateUpdateOne) SetEscalationAt(v time.Time) *TicketStateUpdateOne {
	_u.mutation.SetEscalationAt(v)
	return _u
}

// SetNillableEscalationAt sets the "escalation_at" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableEscalationAt(v *time.Time) *TicketStateUpdateOne {
	if v != nil {
		_u.SetEscalationAt(*v)
	}
	return _u
}

// ClearEscalationAt clears the value of the "escalation_at" field.
func (_u *TicketStateUpdateOne) ClearEscalationAt() *TicketStateUpdateOne {
	_u.mutation.ClearEscalationAt()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *TicketStateUpdateOne) SetLastSeenAt(v time.Time) *TicketStateUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableLastSeenAt(v *time.Time) *TicketStateUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetGmailThreadID sets the "gmail_thread_id" field.
func (_u *TicketStateUpdateOne) SetGmailThreadID(v string) *TicketStateUpdateOne {
	_u.mutation.SetGmailThreadID(v)
	return _u
}

// SetNillableGmailThreadID sets the "gmail_thread_id" field if the given value is not nil.
func (_u *TicketStateUpdateOne) SetNillableGmailThreadID(v *string) *TicketStateUpdateOne {
	if v != nil {
		_u.SetGmailThreadID(*v)
	}
	return _u
}

// ClearGmailThreadID clears the value of the "gmail_thread_id" field.
func (_u *TicketStateUpdateOne) ClearGmailThreadID() *TicketStateUpdateOne {
	_u.mutation.ClearGmailThreadID()
	return _u
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by IDs.
func (_u *TicketStateUpdateOne) AddMessageIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the TicketMessage entity.
func (_u *TicketStateUpdateOne) AddMessages(v ...*TicketMessage) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddDecisionIDs adds the "decisions" edge to the AIDecision entity by IDs.
func (_u *TicketStateUpdateOne) AddDecisionIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the AIDecision entity.
func (_u *TicketStateUpdateOne) AddDecisions(v ...*AIDecision) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// AddPendingMessageIDs adds the "pending_messages" edge to the PendingMessage entity by IDs.
func (_u *TicketStateUpdateOne) AddPendingMessageIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.AddPendingMessageIDs(ids...)
	return _u
}

// AddPendingMessages adds the "pending_messages" edges to the PendingMessage entity.
func (_u *TicketStateUpdateOne) AddPendingMessages(v ...*PendingMessage) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPendingMessageIDs(ids...)
}

// AddSupplierMessageIDs adds the "supplier_messages" edge to the SupplierMessage entity by IDs.
func (_u *TicketStateUpdateOne) AddSupplierMessageIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.AddSupplierMessageIDs(ids...)
	return _u
}

// AddSupplierMessages adds the "supplier_messages" edges to the SupplierMessage entity.
func (_u *TicketStateUpdateOne) AddSupplierMessages(v ...*SupplierMessage) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSupplierMessageIDs(ids...)
}

// Mutation returns the TicketStateMutation object of the builder.
func (_u *TicketStateUpdateOne) Mutation() *TicketStateMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the TicketMessage entity.
func (_u *TicketStateUpdateOne) ClearMessages() *TicketStateUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to TicketMessage entities by IDs.
func (_u *TicketStateUpdateOne) RemoveMessageIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to TicketMessage entities.
func (_u *TicketStateUpdateOne) RemoveMessages(v ...*TicketMessage) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearDecisions clears all "decisions" edges to the AIDecision entity.
func (_u *TicketStateUpdateOne) ClearDecisions() *TicketStateUpdateOne {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to AIDecision entities by IDs.
func (_u *TicketStateUpdateOne) RemoveDecisionIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to AIDecision entities.
func (_u *TicketStateUpdateOne) RemoveDecisions(v ...*AIDecision) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// ClearPendingMessages clears all "pending_messages" edges to the PendingMessage entity.
func (_u *TicketStateUpdateOne) ClearPendingMessages() *TicketStateUpdateOne {
	_u.mutation.ClearPendingMessages()
	return _u
}

// RemovePendingMessageIDs removes the "pending_messages" edge to PendingMessage entities by IDs.
func (_u *TicketStateUpdateOne) RemovePendingMessageIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.RemovePendingMessageIDs(ids...)
	return _u
}

// RemovePendingMessages removes "pending_messages" edges to PendingMessage entities.
func (_u *TicketStateUpdateOne) RemovePendingMessages(v ...*PendingMessage) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePendingMessageIDs(ids...)
}

// ClearSupplierMessages clears all "supplier_messages" edges to the SupplierMessage entity.
func (_u *TicketStateUpdateOne) ClearSupplierMessages() *TicketStateUpdateOne {
	_u.mutation.ClearSupplierMessages()
	return _u
}

// RemoveSupplierMessageIDs removes the "supplier_messages" edge to SupplierMessage entities by IDs.
func (_u *TicketStateUpdateOne) RemoveSupplierMessageIDs(ids ...string) *TicketStateUpdateOne {
	_u.mutation.RemoveSupplierMessageIDs(ids...)
	return _u
}

// RemoveSupplierMessages removes "supplier_messages" edges to SupplierMessage entities.
func (_u *TicketStateUpdateOne) RemoveSupplierMessages(v ...*SupplierMessage) *TicketStateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSupplierMessageIDs(ids...)
}

// Where appends a list predicates to the TicketStateUpdate builder.
func (_u *TicketStateUpdateOne) Where(ps ...predicate.TicketState) *TicketStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketStateUpdateOne) Select(field string, fields ...string) *TicketStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketState entity.
func (_u *TicketStateUpdateOne) Save(ctx context.Context) (*TicketState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketStateUpdateOne) SaveX(ctx context.Context) *TicketState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ticketstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TicketState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketStateUpdateOne) sqlSave(ctx context.Context) (_node *TicketState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketstate.Table, ticketstate.Columns, sqlgraph.NewFieldSpec(ticketstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketstate.FieldID)
		for _, f := range fields {
			if !ticketstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketstate.FieldID {
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
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(ticketstate.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(ticketstate.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticketstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CustomStatusID(); ok {
		_spec.SetField(ticketstate.FieldCustomStatusID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCustomStatusID(); ok {
		_spec.AddField(ticketstate.FieldCustomStatusID, field.TypeInt, value)
	}
	if _u.mutation.CustomStatusIDCleared() {
		_spec.ClearField(ticketstate.FieldCustomStatusID, field.TypeInt)
	}
	if value, ok := _u.mutation.CustomerEmail(); ok {
		_spec.SetField(ticketstate.FieldCustomerEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerEmailCleared() {
		_spec.ClearField(ticketstate.FieldCustomerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(ticketstate.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(ticketstate.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(ticketstate.FieldOrderNumber, field.TypeString, value)
	}
	if _u.mutation.OrderNumberCleared() {
		_spec.ClearField(ticketstate.FieldOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PurchaseOrderNumber(); ok {
		_spec.SetField(ticketstate.FieldPurchaseOrderNumber, field.TypeString, value)
	}
	if _u.mutation.PurchaseOrderNumberCleared() {
		_spec.ClearField(ticketstate.FieldPurchaseOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierEmail(); ok {
		_spec.SetField(ticketstate.FieldSupplierEmail, field.TypeString, value)
	}
	if _u.mutation.SupplierEmailCleared() {
		_spec.ClearField(ticketstate.FieldSupplierEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierTicketReferences(); ok {
		_spec.SetField(ticketstate.FieldSupplierTicketReferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupplierTicketReferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticketstate.FieldSupplierTicketReferences, value)
		})
	}
	if _u.mutation.SupplierTicketReferencesCleared() {
		_spec.ClearField(ticketstate.FieldSupplierTicketReferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Escalated(); ok {
		_spec.SetField(ticketstate.FieldEscalated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationReason(); ok {
		_spec.SetField(ticketstate.FieldEscalationReason, field.TypeString, value)
	}
	if _u.mutation.EscalationReasonCleared() {
		_spec.ClearField(ticketstate.FieldEscalationReason, field.TypeString)
	}
	if value, ok := _u.mutation.EscalationAt(); ok {
		_spec.SetField(ticketstate.FieldEscalationAt, field.TypeTime, value)
	}
	if _u.mutation.EscalationAtCleared() {
		_spec.ClearField(ticketstate.FieldEscalationAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(ticketstate.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GmailThreadID(); ok {
		_spec.SetField(ticketstate.FieldGmailThreadID, field.TypeString, value)
	}
	if _u.mutation.GmailThreadIDCleared() {
		_spec.ClearField(ticketstate.FieldGmailThreadID, field.TypeString)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PendingMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPendingMessagesIDs(); len(nodes) > 0 && !_u.mutation.PendingMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PendingMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupplierMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSupplierMessagesIDs(); len(nodes) > 0 && !_u.mutation.SupplierMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupplierMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TicketState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
