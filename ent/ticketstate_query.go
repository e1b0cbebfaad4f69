// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// TicketStateQuery is the builder for querying TicketState entities.
type TicketStateQuery struct {
	config
	ctx                  *QueryContext
	order                []ticketstate.OrderOption
	inters               []Interceptor
	predicates           []predicate.TicketState
	withMessages         *TicketMessageQuery
	withDecisions        *AIDecisionQuery
	withPendingMessages  *PendingMessageQuery
	withSupplierMessages *SupplierMessageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TicketStateQuery builder.
func (_q *TicketStateQuery) Where(ps ...predicate.TicketState) *TicketStateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TicketStateQuery) Limit(limit int) *TicketStateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TicketStateQuery) Offset(offset int) *TicketStateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TicketStateQuery) Unique(unique bool) *TicketStateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TicketStateQuery) Order(o ...ticketstate.OrderOption) *TicketStateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *TicketStateQuery) QueryMessages() *TicketMessageQuery {
	query := (&TicketMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, selector),
			sqlgraph.To(ticketmessage.Table, ticketmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.MessagesTable, ticketstate.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDecisions chains the current query on the "decisions" edge.
func (_q *TicketStateQuery) QueryDecisions() *AIDecisionQuery {
	query := (&AIDecisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, selector),
			sqlgraph.To(aidecision.Table, aidecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.DecisionsTable, ticketstate.DecisionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPendingMessages chains the current query on the "pending_messages" edge.
func (_q *TicketStateQuery) QueryPendingMessages() *PendingMessageQuery {
	query := (&PendingMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, selector),
			sqlgraph.To(pendingmessage.Table, pendingmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.PendingMessagesTable, ticketstate.PendingMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySupplierMessages chains the current query on the "supplier_messages" edge.
func (_q *TicketStateQuery) QuerySupplierMessages() *SupplierMessageQuery {
	query := (&SupplierMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, selector),
			sqlgraph.To(suppliermessage.Table, suppliermessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.SupplierMessagesTable, ticketstate.SupplierMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TicketState entity from the query.
// Returns a *NotFoundError when no TicketState was found.
func (_q *TicketStateQuery) First(ctx context.Context) (*TicketState, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{ticketstate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TicketStateQuery) FirstX(ctx context.Context) *TicketState {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TicketState ID from the query.
// Returns a *NotFoundError when no TicketState ID was found.
func (_q *TicketStateQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{ticketstate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TicketStateQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TicketState entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TicketState entity is found.
// Returns a *NotFoundError when no TicketState entities are found.
func (_q *TicketStateQuery) Only(ctx context.Context) (*TicketState, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{ticketstate.Label}
	default:
		return nil, &NotSingularError{ticketstate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TicketStateQuery) OnlyX(ctx context.Context) *TicketState {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TicketState ID in the query.
// Returns a *NotSingularError when more than one TicketState ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TicketStateQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{ticketstate.Label}
	default:
		err = &NotSingularError{ticketstate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TicketStateQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TicketStates.
func (_q *TicketStateQuery) All(ctx context.Context) ([]*TicketState, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TicketState, *TicketStateQuery]()
	return withInterceptors[[]*TicketState](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TicketStateQuery) AllX(ctx context.Context) []*TicketState {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TicketState IDs.
func (_q *TicketStateQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(ticketstate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TicketStateQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TicketStateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TicketStateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TicketStateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TicketStateQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TicketStateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TicketStateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TicketStateQuery) Clone() *TicketStateQuery {
	if _q == nil {
		return nil
	}
	return &TicketStateQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]ticketstate.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.TicketState{}, _q.predicates...),
		withMessages:         _q.withMessages.Clone(),
		withDecisions:        _q.withDecisions.Clone(),
		withPendingMessages:  _q.withPendingMessages.Clone(),
		withSupplierMessages: _q.withSupplierMessages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TicketStateQuery) WithMessages(opts ...func(*TicketMessageQuery)) *TicketStateQuery {
	query := (&TicketMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithDecisions tells the query-builder to eager-load the nodes that are connected to
// the "decisions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TicketStateQuery) WithDecisions(opts ...func(*AIDecisionQuery)) *TicketStateQuery {
	query := (&AIDecisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDecisions = query
	return _q
}

// WithPendingMessages tells the query-builder to eager-load the nodes that are connected to
// the "pending_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TicketStateQuery) WithPendingMessages(opts ...func(*PendingMessageQuery)) *TicketStateQuery {
	query := (&PendingMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPendingMessages = query
	return _q
}

// WithSupplierMessages tells the query-builder to eager-load the nodes that are connected to
// the "supplier_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TicketStateQuery) WithSupplierMessages(opts ...func(*SupplierMessageQuery)) *TicketStateQuery {
	query := (&SupplierMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSupplierMessages = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TicketID string `json:"ticket_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TicketState.Query().
//		GroupBy(ticketstate.FieldTicketID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TicketStateQuery) GroupBy(field string, fields ...string) *TicketStateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TicketStateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = ticketstate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TicketID string `json:"ticket_id,omitempty"`
//	}
//
//	client.TicketState.Query().
//		Select(ticketstate.FieldTicketID).
//		Scan(ctx, &v)
func (_q *TicketStateQuery) Select(fields ...string) *TicketStateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TicketStateSelect{TicketStateQuery: _q}
	sbuild.label = ticketstate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TicketStateSelect configured with the given aggregations.
func (_q *TicketStateQuery) Aggregate(fns ...AggregateFunc) *TicketStateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TicketStateQuery) prepareQuery(ctx context.Context) error {
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
		if !ticketstate.ValidColumn(f) {
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

func (_q *TicketStateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TicketState, error) {
	var (
		nodes       = []*TicketState{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withMessages != nil,
			_q.withDecisions != nil,
			_q.withPendingMessages != nil,
			_q.withSupplierMessages != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TicketState).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TicketState{config: _q.config}
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
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *TicketState) { n.Edges.Messages = []*TicketMessage{} },
			func(n *TicketState, e *TicketMessage) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDecisions; query != nil {
		if err := _q.loadDecisions(ctx, query, nodes,
			func(n *TicketState) { n.Edges.Decisions = []*AIDecision{} },
			func(n *TicketState, e *AIDecision) { n.Edges.Decisions = append(n.Edges.Decisions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPendingMessages; query != nil {
		if err := _q.loadPendingMessages(ctx, query, nodes,
			func(n *TicketState) { n.Edges.PendingMessages = []*PendingMessage{} },
			func(n *TicketState, e *PendingMessage) { n.Edges.PendingMessages = append(n.Edges.PendingMessages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSupplierMessages; query != nil {
		if err := _q.loadSupplierMessages(ctx, query, nodes,
			func(n *TicketState) { n.Edges.SupplierMessages = []*SupplierMessage{} },
			func(n *TicketState, e *SupplierMessage) {
				n.Edges.SupplierMessages = append(n.Edges.SupplierMessages, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TicketStateQuery) loadMessages(ctx context.Context, query *TicketMessageQuery, nodes []*TicketState, init func(*TicketState), assign func(*TicketState, *TicketMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TicketState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ticketmessage.FieldTicketNumber)
	}
	query.Where(predicate.TicketMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(ticketstate.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TicketNumber
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "ticket_number" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TicketStateQuery) loadDecisions(ctx context.Context, query *AIDecisionQuery, nodes []*TicketState, init func(*TicketState), assign func(*TicketState, *AIDecision)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TicketState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(aidecision.FieldTicketNumber)
	}
	query.Where(predicate.AIDecision(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(ticketstate.DecisionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TicketNumber
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "ticket_number" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TicketStateQuery) loadPendingMessages(ctx context.Context, query *PendingMessageQuery, nodes []*TicketState, init func(*TicketState), assign func(*TicketState, *PendingMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TicketState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(pendingmessage.FieldTicketNumber)
	}
	query.Where(predicate.PendingMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(ticketstate.PendingMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TicketNumber
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "ticket_number" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TicketStateQuery) loadSupplierMessages(ctx context.Context, query *SupplierMessageQuery, nodes []*TicketState, init func(*TicketState), assign func(*TicketState, *SupplierMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*TicketState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(suppliermessage.FieldTicketNumber)
	}
	query.Where(predicate.SupplierMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(ticketstate.SupplierMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TicketNumber
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "ticket_number" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TicketStateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TicketStateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(ticketstate.Table, ticketstate.Columns, sqlgraph.NewFieldSpec(ticketstate.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketstate.FieldID)
		for i := range fields {
			if fields[i] != ticketstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *TicketStateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(ticketstate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = ticketstate.Columns
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

// TicketStateGroupBy is the group-by builder for TicketState entities.
type TicketStateGroupBy struct {
	selector
	build *TicketStateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TicketStateGroupBy) Aggregate(fns ...AggregateFunc) *TicketStateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TicketStateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TicketStateQuery, *TicketStateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TicketStateGroupBy) sqlScan(ctx context.Context, root *TicketStateQuery, v any) error {
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

// TicketStateSelect is the builder for selecting fields of TicketState entities.
type TicketStateSelect struct {
	*TicketStateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TicketStateSelect) Aggregate(fns ...AggregateFunc) *TicketStateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TicketStateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TicketStateQuery, *TicketStateSelect](ctx, _s.TicketStateQuery, _s, _s.inters, v)
}

func (_s *TicketStateSelect) sqlScan(ctx context.Context, root *TicketStateQuery, v any) error {
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
