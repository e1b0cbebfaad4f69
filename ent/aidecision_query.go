// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// AIDecisionQuery is the builder for querying AIDecision entities.
type AIDecisionQuery struct {
	config
	ctx        *QueryContext
	order      []aidecision.OrderOption
	inters     []Interceptor
	predicates []predicate.AIDecision
	withTicket *TicketStateQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AIDecisionQuery builder.
func (_q *AIDecisionQuery) Where(ps ...predicate.AIDecision) *AIDecisionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AIDecisionQuery) Limit(limit int) *AIDecisionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AIDecisionQuery) Offset(offset int) *AIDecisionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AIDecisionQuery) Unique(unique bool) *AIDecisionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AIDecisionQuery) Order(o ...aidecision.OrderOption) *AIDecisionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTicket chains the current query on the "ticket" edge.
func (_q *AIDecisionQuery) QueryTicket() *TicketStateQuery {
	query := (&TicketStateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(aidecision.Table, aidecision.FieldID, selector),
			sqlgraph.To(ticketstate.Table, ticketstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aidecision.TicketTable, aidecision.TicketColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AIDecision entity from the query.
// Returns a *NotFoundError when no AIDecision was found.
func (_q *AIDecisionQuery) First(ctx context.Context) (*AIDecision, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{aidecision.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AIDecisionQuery) FirstX(ctx context.Context) *AIDecision {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AIDecision ID from the query.
// Returns a *NotFoundError when no AIDecision ID was found.
func (_q *AIDecisionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{aidecision.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AIDecisionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AIDecision entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AIDecision entity is found.
// Returns a *NotFoundError when no AIDecision entities are found.
func (_q *AIDecisionQuery) Only(ctx context.Context) (*AIDecision, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{aidecision.Label}
	default:
		return nil, &NotSingularError{aidecision.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AIDecisionQuery) OnlyX(ctx context.Context) *AIDecision {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AIDecision ID in the query.
// Returns a *NotSingularError when more than one AIDecision ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AIDecisionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{aidecision.Label}
	default:
		err = &NotSingularError{aidecision.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AIDecisionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AIDecisions.
func (_q *AIDecisionQuery) All(ctx context.Context) ([]*AIDecision, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AIDecision, *AIDecisionQuery]()
	return withInterceptors[[]*AIDecision](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AIDecisionQuery) AllX(ctx context.Context) []*AIDecision {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AIDecision IDs.
func (_q *AIDecisionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(aidecision.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AIDecisionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AIDecisionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AIDecisionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AIDecisionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AIDecisionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AIDecisionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AIDecisionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AIDecisionQuery) Clone() *AIDecisionQuery {
	if _q == nil {
		return nil
	}
	return &AIDecisionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]aidecision.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.AIDecision{}, _q.predicates...),
		withTicket: _q.withTicket.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTicket tells the query-builder to eager-load the nodes that are connected to
// the "ticket" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AIDecisionQuery) WithTicket(opts ...func(*TicketStateQuery)) *AIDecisionQuery {
	query := (&TicketStateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTicket = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TicketNumber string `json:"ticket_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AIDecision.Query().
//		GroupBy(aidecision.FieldTicketNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AIDecisionQuery) GroupBy(field string, fields ...string) *AIDecisionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AIDecisionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = aidecision.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TicketNumber string `json:"ticket_number,omitempty"`
//	}
//
//	client.AIDecision.Query().
//		Select(aidecision.FieldTicketNumber).
//		Scan(ctx, &v)
func (_q *AIDecisionQuery) Select(fields ...string) *AIDecisionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AIDecisionSelect{AIDecisionQuery: _q}
	sbuild.label = aidecision.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AIDecisionSelect configured with the given aggregations.
func (_q *AIDecisionQuery) Aggregate(fns ...AggregateFunc) *AIDecisionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AIDecisionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !aidecision.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AIDecisionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AIDecision, error) {
	var (
		nodes       = []*AIDecision{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTicket != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AIDecision).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AIDecision{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTicket; query != nil {
		if err := _q.loadTicket(ctx, query, nodes, nil,
			func(n *AIDecision, e *TicketState) { n.Edges.Ticket = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AIDecisionQuery) loadTicket(ctx context.Context, query *TicketStateQuery, nodes []*AIDecision, init func(*AIDecision), assign func(*AIDecision, *TicketState)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AIDecision)
	for i := range nodes {
		fk := nodes[i].TicketNumber
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(ticketstate.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "ticket_number" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AIDecisionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AIDecisionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(aidecision.Table, aidecision.Columns, sqlgraph.NewFieldSpec(aidecision.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aidecision.FieldID)
		for i := range fields {
			if fields[i] != aidecision.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTicket != nil {
			_spec.Node.AddColumnOnce(aidecision.FieldTicketNumber)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AIDecisionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(aidecision.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = aidecision.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AIDecisionGroupBy is the group-by builder for AIDecision entities.
type AIDecisionGroupBy struct {
	selector
	build *AIDecisionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AIDecisionGroupBy) Aggregate(fns ...AggregateFunc) *AIDecisionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AIDecisionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AIDecisionQuery, *AIDecisionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AIDecisionGroupBy) sqlScan(ctx context.Context, root *AIDecisionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AIDecisionSelect is the builder for selecting fields of AIDecision entities.
type AIDecisionSelect struct {
	*AIDecisionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AIDecisionSelect) Aggregate(fns ...AggregateFunc) *AIDecisionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AIDecisionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AIDecisionQuery, *AIDecisionSelect](ctx, _s.AIDecisionQuery, _s, _s.inters, v)
}

func (_s *AIDecisionSelect) sqlScan(ctx context.Context, root *AIDecisionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
