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
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// AIDecisionCreate is the builder for creating a AIDecision entity.
type AIDecisionCreate struct {
	config
	mutation *AIDecisionMutation
	hooks    []Hook
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *AIDecisionCreate) SetTicketNumber(v string) *AIDecisionCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetAt sets the "at" field.
func (_c *AIDecisionCreate) SetAt(v time.Time) *AIDecisionCreate {
	_c.mutation.SetAt(v)
	return _c
}

// SetNillableAt sets the "at" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableAt(v *time.Time) *AIDecisionCreate {
	if v != nil {
		_c.SetAt(*v)
	}
	return _c
}

// SetDetectedLanguage sets the "detected_language" field.
func (_c *AIDecisionCreate) SetDetectedLanguage(v string) *AIDecisionCreate {
	_c.mutation.SetDetectedLanguage(v)
	return _c
}

// SetNillableDetectedLanguage sets the "detected_language" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableDetectedLanguage(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetDetectedLanguage(*v)
	}
	return _c
}

// SetDetectedIntent sets the "detected_intent" field.
func (_c *AIDecisionCreate) SetDetectedIntent(v string) *AIDecisionCreate {
	_c.mutation.SetDetectedIntent(v)
	return _c
}

// SetNillableDetectedIntent sets the "detected_intent" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableDetectedIntent(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetDetectedIntent(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AIDecisionCreate) SetConfidence(v float64) *AIDecisionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetRecommendedAction sets the "recommended_action" field.
func (_c *AIDecisionCreate) SetRecommendedAction(v string) *AIDecisionCreate {
	_c.mutation.SetRecommendedAction(v)
	return _c
}

// SetNillableRecommendedAction sets the "recommended_action" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableRecommendedAction(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetRecommendedAction(*v)
	}
	return _c
}

// SetCustomerDraft sets the "customer_draft" field.
func (_c *AIDecisionCreate) SetCustomerDraft(v string) *AIDecisionCreate {
	_c.mutation.SetCustomerDraft(v)
	return _c
}

// SetNillableCustomerDraft sets the "customer_draft" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableCustomerDraft(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetCustomerDraft(*v)
	}
	return _c
}

// SetSupplierDraft sets the "supplier_draft" field.
func (_c *AIDecisionCreate) SetSupplierDraft(v string) *AIDecisionCreate {
	_c.mutation.SetSupplierDraft(v)
	return _c
}

// SetNillableSupplierDraft sets the "supplier_draft" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableSupplierDraft(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetSupplierDraft(*v)
	}
	return _c
}

// SetRequiresEscalation sets the "requires_escalation" field.
func (_c *AIDecisionCreate) SetRequiresEscalation(v bool) *AIDecisionCreate {
	_c.mutation.SetRequiresEscalation(v)
	return _c
}

// SetNillableRequiresEscalation sets the "requires_escalation" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableRequiresEscalation(v *bool) *AIDecisionCreate {
	if v != nil {
		_c.SetRequiresEscalation(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AIDecisionCreate) SetPhase(v aidecision.Phase) *AIDecisionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AIDecisionCreate) SetSummary(v string) *AIDecisionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableSummary(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetOperatorFeedback sets the "operator_feedback" field.
func (_c *AIDecisionCreate) SetOperatorFeedback(v aidecision.OperatorFeedback) *AIDecisionCreate {
	_c.mutation.SetOperatorFeedback(v)
	return _c
}

// SetNillableOperatorFeedback sets the "operator_feedback" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableOperatorFeedback(v *aidecision.OperatorFeedback) *AIDecisionCreate {
	if v != nil {
		_c.SetOperatorFeedback(*v)
	}
	return _c
}

// SetFeedbackNotes sets the "feedback_notes" field.
func (_c *AIDecisionCreate) SetFeedbackNotes(v string) *AIDecisionCreate {
	_c.mutation.SetFeedbackNotes(v)
	return _c
}

// SetNillableFeedbackNotes sets the "feedback_notes" field if the given value is not nil.
func (_c *AIDecisionCreate) SetNillableFeedbackNotes(v *string) *AIDecisionCreate {
	if v != nil {
		_c.SetFeedbackNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AIDecisionCreate) SetID(v string) *AIDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicketID sets the "ticket" edge to the TicketState entity by ID.
func (_c *AIDecisionCreate) SetTicketID(id string) *AIDecisionCreate {
	_c.mutation.SetTicketID(id)
	return _c
}

// SetTicket sets the "ticket" edge to the TicketState entity.
func (_c *AIDecisionCreate) SetTicket(v *TicketState) *AIDecisionCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the AIDecisionMutation object of the builder.
func (_c *AIDecisionCreate) Mutation() *AIDecisionMutation {
	return _c.mutation
}

// Save creates the AIDecision in the database.
func (_c *AIDecisionCreate) Save(ctx context.Context) (*AIDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AIDecisionCreate) SaveX(ctx context.Context) *AIDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AIDecisionCreate) defaults() {
	if _, ok := _c.mutation.At(); !ok {
		v := aidecision.DefaultAt()
		_c.mutation.SetAt(v)
	}
	if _, ok := _c.mutation.RequiresEscalation(); !ok {
		v := aidecision.DefaultRequiresEscalation
		_c.mutation.SetRequiresEscalation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AIDecisionCreate) check() error {
	if _, ok := _c.mutation.TicketNumber(); !ok {
		return &ValidationError{Name: "ticket_number", err: errors.New(`ent: missing required field "AIDecision.ticket_number"`)}
	}
	if _, ok := _c.mutation.At(); !ok {
		return &ValidationError{Name: "at", err: errors.New(`ent: missing required field "AIDecision.at"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AIDecision.confidence"`)}
	}
	if _, ok := _c.mutation.RequiresEscalation(); !ok {
		return &ValidationError{Name: "requires_escalation", err: errors.New(`ent: missing required field "AIDecision.requires_escalation"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AIDecision.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := aidecision.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AIDecision.phase": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OperatorFeedback(); ok {
		if err := aidecision.OperatorFeedbackValidator(v); err != nil {
			return &ValidationError{Name: "operator_feedback", err: fmt.Errorf(`ent: validator failed for field "AIDecision.operator_feedback": %w`, err)}
		}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "AIDecision.ticket"`)}
	}
	return nil
}

func (_c *AIDecisionCreate) sqlSave(ctx context.Context) (*AIDecision, error) {
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
			return nil, fmt.Errorf("unexpected AIDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AIDecisionCreate) createSpec() (*AIDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &AIDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aidecision.Table, sqlgraph.NewFieldSpec(aidecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.At(); ok {
		_spec.SetField(aidecision.FieldAt, field.TypeTime, value)
		_node.At = value
	}
	if value, ok := _c.mutation.DetectedLanguage(); ok {
		_spec.SetField(aidecision.FieldDetectedLanguage, field.TypeString, value)
		_node.DetectedLanguage = value
	}
	if value, ok := _c.mutation.DetectedIntent(); ok {
		_spec.SetField(aidecision.FieldDetectedIntent, field.TypeString, value)
		_node.DetectedIntent = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(aidecision.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RecommendedAction(); ok {
		_spec.SetField(aidecision.FieldRecommendedAction, field.TypeString, value)
		_node.RecommendedAction = value
	}
	if value, ok := _c.mutation.CustomerDraft(); ok {
		_spec.SetField(aidecision.FieldCustomerDraft, field.TypeString, value)
		_node.CustomerDraft = value
	}
	if value, ok := _c.mutation.SupplierDraft(); ok {
		_spec.SetField(aidecision.FieldSupplierDraft, field.TypeString, value)
		_node.SupplierDraft = value
	}
	if value, ok := _c.mutation.RequiresEscalation(); ok {
		_spec.SetField(aidecision.FieldRequiresEscalation, field.TypeBool, value)
		_node.RequiresEscalation = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(aidecision.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(aidecision.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.OperatorFeedback(); ok {
		_spec.SetField(aidecision.FieldOperatorFeedback, field.TypeEnum, value)
		_node.OperatorFeedback = &value
	}
	if value, ok := _c.mutation.FeedbackNotes(); ok {
		_spec.SetField(aidecision.FieldFeedbackNotes, field.TypeString, value)
		_node.FeedbackNotes = &value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   aidecision.TicketTable,
			Columns: []string{aidecision.TicketColumn},
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

// AIDecisionCreateBulk is the builder for creating many AIDecision entities in bulk.
type AIDecisionCreateBulk struct {
	config
	err      error
	builders []*AIDecisionCreate
}

// Save creates the AIDecision entities in the database.
func (_c *AIDecisionCreateBulk) Save(ctx context.Context) ([]*AIDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AIDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AIDecisionMutation)
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
func (_c *AIDecisionCreateBulk) SaveX(ctx context.Context) []*AIDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
