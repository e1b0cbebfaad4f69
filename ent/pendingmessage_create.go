// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/models"
)

// PendingMessageCreate is the builder for creating a PendingMessage entity.
type PendingMessageCreate struct {
	config
	mutation *PendingMessageMutation
	hooks    []Hook
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *PendingMessageCreate) SetTicketNumber(v string) *PendingMessageCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PendingMessageCreate) SetKind(v pendingmessage.Kind) *PendingMessageCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTo sets the "to" field.
func (_c *PendingMessageCreate) SetTo(v string) *PendingMessageCreate {
	_c.mutation.SetTo(v)
	return _c
}

// SetNillableTo sets the "to" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableTo(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetTo(*v)
	}
	return _c
}

// SetCc sets the "cc" field.
func (_c *PendingMessageCreate) SetCc(v []string) *PendingMessageCreate {
	_c.mutation.SetCc(v)
	return _c
}

// SetBcc sets the "bcc" field.
func (_c *PendingMessageCreate) SetBcc(v []string) *PendingMessageCreate {
	_c.mutation.SetBcc(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PendingMessageCreate) SetSubject(v string) *PendingMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableSubject(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *PendingMessageCreate) SetBody(v string) *PendingMessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *PendingMessageCreate) SetAttachments(v []models.Attachment) *PendingMessageCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PendingMessageCreate) SetConfidence(v float64) *PendingMessageCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableConfidence(v *float64) *PendingMessageCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetDecisionID sets the "decision_id" field.
func (_c *PendingMessageCreate) SetDecisionID(v string) *PendingMessageCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableDecisionID(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetDecisionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingMessageCreate) SetStatus(v pendingmessage.Status) *PendingMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableStatus(v *pendingmessage.Status) *PendingMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *PendingMessageCreate) SetRetryCount(v int) *PendingMessageCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableRetryCount(v *int) *PendingMessageCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PendingMessageCreate) SetLastError(v string) *PendingMessageCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableLastError(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *PendingMessageCreate) SetNextAttemptAt(v time.Time) *PendingMessageCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableNextAttemptAt(v *time.Time) *PendingMessageCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingMessageCreate) SetCreatedAt(v time.Time) *PendingMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableCreatedAt(v *time.Time) *PendingMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *PendingMessageCreate) SetReviewedAt(v time.Time) *PendingMessageCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableReviewedAt(v *time.Time) *PendingMessageCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *PendingMessageCreate) SetReviewedBy(v string) *PendingMessageCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableReviewedBy(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *PendingMessageCreate) SetSentAt(v time.Time) *PendingMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableSentAt(v *time.Time) *PendingMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_c *PendingMessageCreate) SetUpstreamMessageID(v string) *PendingMessageCreate {
	_c.mutation.SetUpstreamMessageID(v)
	return _c
}

// SetNillableUpstreamMessageID sets the "upstream_message_id" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableUpstreamMessageID(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetUpstreamMessageID(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *PendingMessageCreate) SetRejectionReason(v string) *PendingMessageCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *PendingMessageCreate) SetNillableRejectionReason(v *string) *PendingMessageCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingMessageCreate) SetID(v string) *PendingMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicketID sets the "ticket" edge to the TicketState entity by ID.
func (_c *PendingMessageCreate) SetTicketID(id string) *PendingMessageCreate {
	_c.mutation.SetTicketID(id)
	return _c
}

// SetTicket sets the "ticket" edge to the TicketState entity.
func (_c *PendingMessageCreate) SetTicket(v *TicketState) *PendingMessageCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the PendingMessageMutation object of the builder.
func (_c *PendingMessageCreate) Mutation() *PendingMessageMutation {
	return _c.mutation
}

// Save creates the PendingMessage in the database.
func (_c *PendingMessageCreate) Save(ctx context.Context) (*PendingMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingMessageCreate) SaveX(ctx context.Context) *PendingMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingMessageCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := pendingmessage.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := pendingmessage.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingMessageCreate) check() error {
	if _, ok := _c.mutation.TicketNumber(); !ok {
		return &ValidationError{Name: "ticket_number", err: errors.New(`ent: missing required field "PendingMessage.ticket_number"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PendingMessage.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := pendingmessage.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingMessage.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "PendingMessage.body"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PendingMessage.confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "PendingMessage.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingMessage.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "PendingMessage.ticket"`)}
	}
	return nil
}

func (_c *PendingMessageCreate) sqlSave(ctx context.Context) (*PendingMessage, error) {
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
			return nil, fmt.Errorf("unexpected PendingMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingMessageCreate) createSpec() (*PendingMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingmessage.Table, sqlgraph.NewFieldSpec(pendingmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(pendingmessage.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.To(); ok {
		_spec.SetField(pendingmessage.FieldTo, field.TypeString, value)
		_node.To = value
	}
	if value, ok := _c.mutation.Cc(); ok {
		_spec.SetField(pendingmessage.FieldCc, field.TypeJSON, value)
		_node.Cc = value
	}
	if value, ok := _c.mutation.Bcc(); ok {
		_spec.SetField(pendingmessage.FieldBcc, field.TypeJSON, value)
		_node.Bcc = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(pendingmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(pendingmessage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(pendingmessage.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(pendingmessage.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.DecisionID(); ok {
		_spec.SetField(pendingmessage.FieldDecisionID, field.TypeString, value)
		_node.DecisionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(pendingmessage.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(pendingmessage.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(pendingmessage.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(pendingmessage.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(pendingmessage.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(pendingmessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.UpstreamMessageID(); ok {
		_spec.SetField(pendingmessage.FieldUpstreamMessageID, field.TypeString, value)
		_node.UpstreamMessageID = value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(pendingmessage.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pendingmessage.TicketTable,
			Columns: []string{pendingmessage.TicketColumn},
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

// PendingMessageCreateBulk is the builder for creating many PendingMessage entities in bulk.
type PendingMessageCreateBulk struct {
	config
	err      error
	builders []*PendingMessageCreate
}

// Save creates the PendingMessage entities in the database.
func (_c *PendingMessageCreateBulk) Save(ctx context.Context) ([]*PendingMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingMessageMutation)
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
func (_c *PendingMessageCreateBulk) SaveX(ctx context.Context) []*PendingMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
