// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// AIDecisionUpdate is the builder for updating AIDecision entities.
type AIDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *AIDecisionMutation
}

// Where appends a list predicates to the AIDecisionUpdate builder.
func (_u *AIDecisionUpdate) Where(ps ...predicate.AIDecision) *AIDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperatorFeedback sets the "operator_feedback" field.
func (_u *AIDecisionUpdate) SetOperatorFeedback(v aidecision.OperatorFeedback) *AIDecisionUpdate {
	_u.mutation.SetOperatorFeedback(v)
	return _u
}

// SetNillableOperatorFeedback sets the "operator_feedback" field if the given value is not nil.
func (_u *AIDecisionUpdate) SetNillableOperatorFeedback(v *aidecision.OperatorFeedback) *AIDecisionUpdate {
	if v != nil {
		_u.SetOperatorFeedback(*v)
	}
	return _u
}

// ClearOperatorFeedback clears the value of the "operator_feedback" field.
func (_u *AIDecisionUpdate) ClearOperatorFeedback() *AIDecisionUpdate {
	_u.mutation.ClearOperatorFeedback()
	return _u
}

// SetFeedbackNotes sets the "feedback_notes" field.
func (_u *AIDecisionUpdate) SetFeedbackNotes(v string) *AIDecisionUpdate {
	_u.mutation.SetFeedbackNotes(v)
	return _u
}

// SetNillableFeedbackNotes sets the "feedback_notes" field if the given value is not nil.
func (_u *AIDecisionUpdate) SetNillableFeedbackNotes(v *string) *AIDecisionUpdate {
	if v != nil {
		_u.SetFeedbackNotes(*v)
	}
	return _u
}

// ClearFeedbackNotes clears the value of the "feedback_notes" field.
func (_u *AIDecisionUpdate) ClearFeedbackNotes() *AIDecisionUpdate {
	_u.mutation.ClearFeedbackNotes()
	return _u
}

// Mutation returns the AIDecisionMutation object of the builder.
func (_u *AIDecisionUpdate) Mutation() *AIDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AIDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AIDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIDecisionUpdate) check() error {
	if v, ok := _u.mutation.OperatorFeedback(); ok {
		if err := aidecision.OperatorFeedbackValidator(v); err != nil {
			return &ValidationError{Name: "operator_feedback", err: fmt.Errorf(`ent: validator failed for field "AIDecision.operator_feedback": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AIDecision.ticket"`)
	}
	return nil
}

func (_u *AIDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aidecision.Table, aidecision.Columns, sqlgraph.NewFieldSpec(aidecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetectedLanguageCleared() {
		_spec.ClearField(aidecision.FieldDetectedLanguage, field.TypeString)
	}
	if _u.mutation.DetectedIntentCleared() {
		_spec.ClearField(aidecision.FieldDetectedIntent, field.TypeString)
	}
	if _u.mutation.RecommendedActionCleared() {
		_spec.ClearField(aidecision.FieldRecommendedAction, field.TypeString)
	}
	if _u.mutation.CustomerDraftCleared() {
		_spec.ClearField(aidecision.FieldCustomerDraft, field.TypeString)
	}
	if _u.mutation.SupplierDraftCleared() {
		_spec.ClearField(aidecision.FieldSupplierDraft, field.TypeString)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(aidecision.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OperatorFeedback(); ok {
		_spec.SetField(aidecision.FieldOperatorFeedback, field.TypeEnum, value)
	}
	if _u.mutation.OperatorFeedbackCleared() {
		_spec.ClearField(aidecision.FieldOperatorFeedback, field.TypeEnum)
	}
	if value, ok := _u.mutation.FeedbackNotes(); ok {
		_spec.SetField(aidecision.FieldFeedbackNotes, field.TypeString, value)
	}
	if _u.mutation.FeedbackNotesCleared() {
		_spec.ClearField(aidecision.FieldFeedbackNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aidecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AIDecisionUpdateOne is the builder for updating a single AIDecision entity.
type AIDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AIDecisionMutation
}

// SetOperatorFeedback sets the "operator_feedback" field.
func (_u *AIDecisionUpdateOne) SetOperatorFeedback(v aidecision.OperatorFeedback) *AIDecisionUpdateOne {
	_u.mutation.SetOperatorFeedback(v)
	return _u
}

// SetNillableOperatorFeedback sets the "operator_feedback" field if the given value is not nil.
func (_u *AIDecisionUpdateOne) SetNillableOperatorFeedback(v *aidecision.OperatorFeedback) *AIDecisionUpdateOne {
	if v != nil {
		_u.SetOperatorFeedback(*v)
	}
	return _u
}

// ClearOperatorFeedback clears the value of the "operator_feedback" field.
func (_u *AIDecisionUpdateOne) ClearOperatorFeedback() *AIDecisionUpdateOne {
	_u.mutation.ClearOperatorFeedback()
	return _u
}

// SetFeedbackNotes sets the "feedback_notes" field.
func (_u *AIDecisionUpdateOne) SetFeedbackNotes(v string) *AIDecisionUpdateOne {
	_u.mutation.SetFeedbackNotes(v)
	return _u
}

// SetNillableFeedbackNotes sets the "feedback_notes" field if the given value is not nil.
func (_u *AIDecisionUpdateOne) SetNillableFeedbackNotes(v *string) *AIDecisionUpdateOne {
	if v != nil {
		_u.SetFeedbackNotes(*v)
	}
	return _u
}

// ClearFeedbackNotes clears the value of the "feedback_notes" field.
func (_u *AIDecisionUpdateOne) ClearFeedbackNotes() *AIDecisionUpdateOne {
	_u.mutation.ClearFeedbackNotes()
	return _u
}

// Mutation returns the AIDecisionMutation object of the builder.
func (_u *AIDecisionUpdateOne) Mutation() *AIDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AIDecisionUpdate builder.
func (_u *AIDecisionUpdateOne) Where(ps ...predicate.AIDecision) *AIDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AIDecisionUpdateOne) Select(field string, fields ...string) *AIDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AIDecision entity.
func (_u *AIDecisionUpdateOne) Save(ctx context.Context) (*AIDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIDecisionUpdateOne) SaveX(ctx context.Context) *AIDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AIDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.OperatorFeedback(); ok {
		if err := aidecision.OperatorFeedbackValidator(v); err != nil {
			return &ValidationError{Name: "operator_feedback", err: fmt.Errorf(`ent: validator failed for field "AIDecision.operator_feedback": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AIDecision.ticket"`)
	}
	return nil
}

func (_u *AIDecisionUpdateOne) sqlSave(ctx context.Context) (_node *AIDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aidecision.Table, aidecision.Columns, sqlgraph.NewFieldSpec(aidecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AIDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aidecision.FieldID)
		for _, f := range fields {
			if !aidecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aidecision.FieldID {
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
	if _u.mutation.DetectedLanguageCleared() {
		_spec.ClearField(aidecision.FieldDetectedLanguage, field.TypeString)
	}
	if _u.mutation.DetectedIntentCleared() {
		_spec.ClearField(aidecision.FieldDetectedIntent, field.TypeString)
	}
	if _u.mutation.RecommendedActionCleared() {
		_spec.ClearField(aidecision.FieldRecommendedAction, field.TypeString)
	}
	if _u.mutation.CustomerDraftCleared() {
		_spec.ClearField(aidecision.FieldCustomerDraft, field.TypeString)
	}
	if _u.mutation.SupplierDraftCleared() {
		_spec.ClearField(aidecision.FieldSupplierDraft, field.TypeString)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(aidecision.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OperatorFeedback(); ok {
		_spec.SetField(aidecision.FieldOperatorFeedback, field.TypeEnum, value)
	}
	if _u.mutation.OperatorFeedbackCleared() {
		_spec.ClearField(aidecision.FieldOperatorFeedback, field.TypeEnum)
	}
	if value, ok := _u.mutation.FeedbackNotes(); ok {
		_spec.SetField(aidecision.FieldFeedbackNotes, field.TypeString, value)
	}
	if _u.mutation.FeedbackNotesCleared() {
		_spec.ClearField(aidecision.FieldFeedbackNotes, field.TypeString)
	}
	_node = &AIDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aidecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
