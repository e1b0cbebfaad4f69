// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/pkg/models"
)

// IngestJobCreate is the builder for creating a IngestJob entity.
type IngestJobCreate struct {
	config
	mutation *IngestJobMutation
	hooks    []Hook
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *IngestJobCreate) SetSourceMessageID(v string) *IngestJobCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestJobCreate) SetStatus(v ingestjob.Status) *IngestJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStatus(v *ingestjob.Status) *IngestJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *IngestJobCreate) SetPayload(v models.InboundEmail) *IngestJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *IngestJobCreate) SetAttempts(v int) *IngestJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableAttempts(v *int) *IngestJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *IngestJobCreate) SetNextAttemptAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableNextAttemptAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *IngestJobCreate) SetLastError(v string) *IngestJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableLastError(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *IngestJobCreate) SetClaimedBy(v string) *IngestJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableClaimedBy(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IngestJobCreate) SetCreatedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableCreatedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IngestJobCreate) SetUpdatedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableUpdatedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestJobCreate) SetID(v string) *IngestJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IngestJobMutation object of the builder.
func (_c *IngestJobCreate) Mutation() *IngestJobMutation {
	return _c.mutation
}

// Save creates the IngestJob in the database.
func (_c *IngestJobCreate) Save(ctx context.Context) (*IngestJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestJobCreate) SaveX(ctx context.Context) *IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ingestjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := ingestjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := ingestjob.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ingestjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ingestjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestJobCreate) check() error {
	if _, ok := _c.mutation.SourceMessageID(); !ok {
		return &ValidationError{Name: "source_message_id", err: errors.New(`ent: missing required field "IngestJob.source_message_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "IngestJob.payload"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "IngestJob.attempts"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "IngestJob.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IngestJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "IngestJob.updated_at"`)}
	}
	return nil
}

func (_c *IngestJobCreate) sqlSave(ctx context.Context) (*IngestJob, error) {
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
			return nil, fmt.Errorf("unexpected IngestJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestJobCreate) createSpec() (*IngestJob, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestjob.Table, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(ingestjob.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(ingestjob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(ingestjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(ingestjob.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(ingestjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(ingestjob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ingestjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ingestjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IngestJobCreateBulk is the builder for creating many IngestJob entities in bulk.
type IngestJobCreateBulk struct {
	config
	err      error
	builders []*IngestJobCreate
}

// Save creates the IngestJob entities in the database.
func (_c *IngestJobCreateBulk) Save(ctx context.Context) ([]*IngestJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestJobMutation)
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
func (_c *IngestJobCreateBulk) SaveX(ctx context.Context) []*IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
