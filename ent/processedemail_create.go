// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/processedemail"
)

// ProcessedEmailCreate is the builder for creating a ProcessedEmail entity.
type ProcessedEmailCreate struct {
	config
	mutation *ProcessedEmailMutation
	hooks    []Hook
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *ProcessedEmailCreate) SetSourceMessageID(v string) *ProcessedEmailCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *ProcessedEmailCreate) SetThreadID(v string) *ProcessedEmailCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableThreadID(v *string) *ProcessedEmailCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ProcessedEmailCreate) SetSubject(v string) *ProcessedEmailCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableSubject(v *string) *ProcessedEmailCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetFromAddress sets the "from_address" field.
func (_c *ProcessedEmailCreate) SetFromAddress(v string) *ProcessedEmailCreate {
	_c.mutation.SetFromAddress(v)
	return _c
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableFromAddress(v *string) *ProcessedEmailCreate {
	if v != nil {
		_c.SetFromAddress(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ProcessedEmailCreate) SetReceivedAt(v time.Time) *ProcessedEmailCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableReceivedAt(v *time.Time) *ProcessedEmailCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *ProcessedEmailCreate) SetTicketNumber(v string) *ProcessedEmailCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetNillableTicketNumber sets the "ticket_number" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableTicketNumber(v *string) *ProcessedEmailCreate {
	if v != nil {
		_c.SetTicketNumber(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ProcessedEmailCreate) SetSuccess(v bool) *ProcessedEmailCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableSuccess(v *bool) *ProcessedEmailCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessedEmailCreate) SetErrorMessage(v string) *ProcessedEmailCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableErrorMessage(v *string) *ProcessedEmailCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ProcessedEmailCreate) SetProcessedAt(v time.Time) *ProcessedEmailCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ProcessedEmailCreate) SetNillableProcessedAt(v *time.Time) *ProcessedEmailCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedEmailCreate) SetID(v string) *ProcessedEmailCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessedEmailMutation object of the builder.
func (_c *ProcessedEmailCreate) Mutation() *ProcessedEmailMutation {
	return _c.mutation
}

// Save creates the ProcessedEmail in the database.
func (_c *ProcessedEmailCreate) Save(ctx context.Context) (*ProcessedEmail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedEmailCreate) SaveX(ctx context.Context) *ProcessedEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedEmailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedEmailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedEmailCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := processedemail.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := processedemail.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedEmailCreate) check() error {
	if _, ok := _c.mutation.SourceMessageID(); !ok {
		return &ValidationError{Name: "source_message_id", err: errors.New(`ent: missing required field "ProcessedEmail.source_message_id"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ProcessedEmail.success"`)}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "ProcessedEmail.processed_at"`)}
	}
	return nil
}

func (_c *ProcessedEmailCreate) sqlSave(ctx context.Context) (*ProcessedEmail, error) {
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
			return nil, fmt.Errorf("unexpected ProcessedEmail.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedEmailCreate) createSpec() (*ProcessedEmail, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedEmail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedemail.Table, sqlgraph.NewFieldSpec(processedemail.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(processedemail.FieldSourceMessageID, field.TypeString, value)
		_node.SourceMessageID = value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(processedemail.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(processedemail.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.FromAddress(); ok {
		_spec.SetField(processedemail.FieldFromAddress, field.TypeString, value)
		_node.FromAddress = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(processedemail.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = &value
	}
	if value, ok := _c.mutation.TicketNumber(); ok {
		_spec.SetField(processedemail.FieldTicketNumber, field.TypeString, value)
		_node.TicketNumber = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(processedemail.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processedemail.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(processedemail.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	return _node, _spec
}

// ProcessedEmailCreateBulk is the builder for creating many ProcessedEmail entities in bulk.
type ProcessedEmailCreateBulk struct {
	config
	err      error
	builders []*ProcessedEmailCreate
}

// Save creates the ProcessedEmail entities in the database.
func (_c *ProcessedEmailCreateBulk) Save(ctx context.Context) ([]*ProcessedEmail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedEmail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedEmailMutation)
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
func (_c *ProcessedEmailCreateBulk) SaveX(ctx context.Context) []*ProcessedEmail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedEmailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedEmailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
