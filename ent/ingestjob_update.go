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
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/pkg/models"
)

// IngestJobUpdate is the builder for updating IngestJob entities.
type IngestJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestJobMutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdate) Where(ps ...predicate.IngestJob) *IngestJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdate) SetStatus(v ingestjob.Status) *IngestJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStatus(v *ingestjob.Status) *IngestJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *IngestJobUpdate) SetPayload(v models.InboundEmail) *IngestJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillablePayload(v *models.InboundEmail) *IngestJobUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IngestJobUpdate) SetAttempts(v int) *IngestJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableAttempts(v *int) *IngestJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *IngestJobUpdate) AddAttempts(v int) *IngestJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *IngestJobUpdate) SetNextAttemptAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableNextAttemptAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *IngestJobUpdate) SetLastError(v string) *IngestJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableLastError(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *IngestJobUpdate) ClearLastError() *IngestJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *IngestJobUpdate) SetClaimedBy(v string) *IngestJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableClaimedBy(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *IngestJobUpdate) ClearClaimedBy() *IngestJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestJobUpdate) SetUpdatedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdate) Mutation() *IngestJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(ingestjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(ingestjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ingestjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ingestjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(ingestjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(ingestjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestJobUpdateOne is the builder for updating a single IngestJob entity.
type IngestJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestJobMutation
}

// SetStatus sets the "status" field.
func (_u *IngestJobUpdateOne) SetStatus(v ingestjob.Status) *IngestJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStatus(v *ingestjob.Status) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *IngestJobUpdateOne) SetPayload(v models.InboundEmail) *IngestJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillablePayload(v *models.InboundEmail) *IngestJobUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *IngestJobUpdateOne) SetAttempts(v int) *IngestJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableAttempts(v *int) *IngestJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *IngestJobUpdateOne) AddAttempts(v int) *IngestJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *IngestJobUpdateOne) SetNextAttemptAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableNextAttemptAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *IngestJobUpdateOne) SetLastError(v string) *IngestJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableLastError(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *IngestJobUpdateOne) ClearLastError() *IngestJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *IngestJobUpdateOne) SetClaimedBy(v string) *IngestJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableClaimedBy(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *IngestJobUpdateOne) ClearClaimedBy() *IngestJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IngestJobUpdateOne) SetUpdatedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdateOne) Mutation() *IngestJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdateOne) Where(ps ...predicate.IngestJob) *IngestJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestJobUpdateOne) Select(field string, fields ...string) *IngestJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestJob entity.
func (_u *IngestJobUpdateOne) Save(ctx context.Context) (*IngestJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdateOne) SaveX(ctx context.Context) *IngestJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IngestJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ingestjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestjob.FieldID)
		for _, f := range fields {
			if !ingestjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(ingestjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ingestjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(ingestjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ingestjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ingestjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(ingestjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(ingestjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &IngestJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
