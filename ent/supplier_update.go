// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/supplier"
)

// SupplierUpdate is the builder for updating Supplier entities.
type SupplierUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierMutation
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdate) Where(ps ...predicate.Supplier) *SupplierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SupplierUpdate) SetName(v string) *SupplierUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableName(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultEmail sets the "default_email" field.
func (_u *SupplierUpdate) SetDefaultEmail(v string) *SupplierUpdate {
	_u.mutation.SetDefaultEmail(v)
	return _u
}

// SetNillableDefaultEmail sets the "default_email" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableDefaultEmail(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetDefaultEmail(*v)
	}
	return _u
}

// SetContacts sets the "contacts" field.
func (_u *SupplierUpdate) SetContacts(v map[string]string) *SupplierUpdate {
	_u.mutation.SetContacts(v)
	return _u
}

// ClearContacts clears the value of the "contacts" field.
func (_u *SupplierUpdate) ClearContacts() *SupplierUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SupplierUpdate) SetLanguage(v string) *SupplierUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SupplierUpdate) SetNillableLanguage(v *string) *SupplierUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdate) Mutation() *SupplierMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SupplierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultEmail(); ok {
		_spec.SetField(supplier.FieldDefaultEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contacts(); ok {
		_spec.SetField(supplier.FieldContacts, field.TypeJSON, value)
	}
	if _u.mutation.ContactsCleared() {
		_spec.ClearField(supplier.FieldContacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(supplier.FieldLanguage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierUpdateOne is the builder for updating a single Supplier entity.
type SupplierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierMutation
}

// SetName sets the "name" field.
func (_u *SupplierUpdateOne) SetName(v string) *SupplierUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableName(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultEmail sets the "default_email" field.
func (_u *SupplierUpdateOne) SetDefaultEmail(v string) *SupplierUpdateOne {
	_u.mutation.SetDefaultEmail(v)
	return _u
}

// SetNillableDefaultEmail sets the "default_email" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableDefaultEmail(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetDefaultEmail(*v)
	}
	return _u
}

// SetContacts sets the "contacts" field.
func (_u *SupplierUpdateOne) SetContacts(v map[string]string) *SupplierUpdateOne {
	_u.mutation.SetContacts(v)
	return _u
}

// ClearContacts clears the value of the "contacts" field.
func (_u *SupplierUpdateOne) ClearContacts() *SupplierUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SupplierUpdateOne) SetLanguage(v string) *SupplierUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SupplierUpdateOne) SetNillableLanguage(v *string) *SupplierUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the SupplierMutation object of the builder.
func (_u *SupplierUpdateOne) Mutation() *SupplierMutation {
	return _u.mutation
}

// Where appends a list predicates to the SupplierUpdate builder.
func (_u *SupplierUpdateOne) Where(ps ...predicate.Supplier) *SupplierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierUpdateOne) Select(field string, fields ...string) *SupplierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Supplier entity.
func (_u *SupplierUpdateOne) Save(ctx context.Context) (*Supplier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierUpdateOne) SaveX(ctx context.Context) *Supplier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SupplierUpdateOne) sqlSave(ctx context.Context) (_node *Supplier, err error) {
	_spec := sqlgraph.NewUpdateSpec(supplier.Table, supplier.Columns, sqlgraph.NewFieldSpec(supplier.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Supplier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplier.FieldID)
		for _, f := range fields {
			if !supplier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplier.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(supplier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultEmail(); ok {
		_spec.SetField(supplier.FieldDefaultEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contacts(); ok {
		_spec.SetField(supplier.FieldContacts, field.TypeJSON, value)
	}
	if _u.mutation.ContactsCleared() {
		_spec.ClearField(supplier.FieldContacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(supplier.FieldLanguage, field.TypeString, value)
	}
	_node = &Supplier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
