// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/shipdesk/shipdesk/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/auditlogentry"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/ent/supplier"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AIDecision is the client for interacting with the AIDecision builders.
	AIDecision *AIDecisionClient
	// AuditLogEntry is the client for interacting with the AuditLogEntry builders.
	AuditLogEntry *AuditLogEntryClient
	// IngestJob is the client for interacting with the IngestJob builders.
	IngestJob *IngestJobClient
	// PendingMessage is the client for interacting with the PendingMessage builders.
	PendingMessage *PendingMessageClient
	// ProcessedEmail is the client for interacting with the ProcessedEmail builders.
	ProcessedEmail *ProcessedEmailClient
	// Supplier is the client for interacting with the Supplier builders.
	Supplier *SupplierClient
	// SupplierMessage is the client for interacting with the SupplierMessage builders.
	SupplierMessage *SupplierMessageClient
	// TicketMessage is the client for interacting with the TicketMessage builders.
	TicketMessage *TicketMessageClient
	// TicketState is the client for interacting with the TicketState builders.
	TicketState *TicketStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AIDecision = NewAIDecisionClient(c.config)
	c.AuditLogEntry = NewAuditLogEntryClient(c.config)
	c.IngestJob = NewIngestJobClient(c.config)
	c.PendingMessage = NewPendingMessageClient(c.config)
	c.ProcessedEmail = NewProcessedEmailClient(c.config)
	c.Supplier = NewSupplierClient(c.config)
	c.SupplierMessage = NewSupplierMessageClient(c.config)
	c.TicketMessage = NewTicketMessageClient(c.config)
	c.TicketState = NewTicketStateClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AIDecision:      NewAIDecisionClient(cfg),
		AuditLogEntry:   NewAuditLogEntryClient(cfg),
		IngestJob:       NewIngestJobClient(cfg),
		PendingMessage:  NewPendingMessageClient(cfg),
		ProcessedEmail:  NewProcessedEmailClient(cfg),
		Supplier:        NewSupplierClient(cfg),
		SupplierMessage: NewSupplierMessageClient(cfg),
		TicketMessage:   NewTicketMessageClient(cfg),
		TicketState:     NewTicketStateClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AIDecision:      NewAIDecisionClient(cfg),
		AuditLogEntry:   NewAuditLogEntryClient(cfg),
		IngestJob:       NewIngestJobClient(cfg),
		PendingMessage:  NewPendingMessageClient(cfg),
		ProcessedEmail:  NewProcessedEmailClient(cfg),
		Supplier:        NewSupplierClient(cfg),
		SupplierMessage: NewSupplierMessageClient(cfg),
		TicketMessage:   NewTicketMessageClient(cfg),
		TicketState:     NewTicketStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AIDecision.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AIDecision, c.AuditLogEntry, c.IngestJob, c.PendingMessage, c.ProcessedEmail,
		c.Supplier, c.SupplierMessage, c.TicketMessage, c.TicketState,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AIDecision, c.AuditLogEntry, c.IngestJob, c.PendingMessage, c.ProcessedEmail,
		c.Supplier, c.SupplierMessage, c.TicketMessage, c.TicketState,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AIDecisionMutation:
		return c.AIDecision.mutate(ctx, m)
	case *AuditLogEntryMutation:
		return c.AuditLogEntry.mutate(ctx, m)
	case *IngestJobMutation:
		return c.IngestJob.mutate(ctx, m)
	case *PendingMessageMutation:
		return c.PendingMessage.mutate(ctx, m)
	case *ProcessedEmailMutation:
		return c.ProcessedEmail.mutate(ctx, m)
	case *SupplierMutation:
		return c.Supplier.mutate(ctx, m)
	case *SupplierMessageMutation:
		return c.SupplierMessage.mutate(ctx, m)
	case *TicketMessageMutation:
		return c.TicketMessage.mutate(ctx, m)
	case *TicketStateMutation:
		return c.TicketState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AIDecisionClient is a client for the AIDecision schema.
type AIDecisionClient struct {
	config
}

// NewAIDecisionClient returns a client for the AIDecision from the given config.
func NewAIDecisionClient(c config) *AIDecisionClient {
	return &AIDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `aidecision.Hooks(f(g(h())))`.
func (c *AIDecisionClient) Use(hooks ...Hook) {
	c.hooks.AIDecision = append(c.hooks.AIDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `aidecision.Intercept(f(g(h())))`.
func (c *AIDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AIDecision = append(c.inters.AIDecision, interceptors...)
}

// Create returns a builder for creating a AIDecision entity.
func (c *AIDecisionClient) Create() *AIDecisionCreate {
	mutation := newAIDecisionMutation(c.config, OpCreate)
	return &AIDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AIDecision entities.
func (c *AIDecisionClient) CreateBulk(builders ...*AIDecisionCreate) *AIDecisionCreateBulk {
	return &AIDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AIDecisionClient) MapCreateBulk(slice any, setFunc func(*AIDecisionCreate, int)) *AIDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AIDecisionCreateBulk{err: fmt.Errorf("calling to AIDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AIDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AIDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AIDecision.
func (c *AIDecisionClient) Update() *AIDecisionUpdate {
	mutation := newAIDecisionMutation(c.config, OpUpdate)
	return &AIDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AIDecisionClient) UpdateOne(_m *AIDecision) *AIDecisionUpdateOne {
	mutation := newAIDecisionMutation(c.config, OpUpdateOne, withAIDecision(_m))
	return &AIDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AIDecisionClient) UpdateOneID(id string) *AIDecisionUpdateOne {
	mutation := newAIDecisionMutation(c.config, OpUpdateOne, withAIDecisionID(id))
	return &AIDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AIDecision.
func (c *AIDecisionClient) Delete() *AIDecisionDelete {
	mutation := newAIDecisionMutation(c.config, OpDelete)
	return &AIDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AIDecisionClient) DeleteOne(_m *AIDecision) *AIDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AIDecisionClient) DeleteOneID(id string) *AIDecisionDeleteOne {
	builder := c.Delete().Where(aidecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AIDecisionDeleteOne{builder}
}

// Query returns a query builder for AIDecision.
func (c *AIDecisionClient) Query() *AIDecisionQuery {
	return &AIDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAIDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a AIDecision entity by its id.
func (c *AIDecisionClient) Get(ctx context.Context, id string) (*AIDecision, error) {
	return c.Query().Where(aidecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AIDecisionClient) GetX(ctx context.Context, id string) *AIDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a AIDecision.
func (c *AIDecisionClient) QueryTicket(_m *AIDecision) *TicketStateQuery {
	query := (&TicketStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(aidecision.Table, aidecision.FieldID, id),
			sqlgraph.To(ticketstate.Table, ticketstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, aidecision.TicketTable, aidecision.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AIDecisionClient) Hooks() []Hook {
	return c.hooks.AIDecision
}

// Interceptors returns the client interceptors.
func (c *AIDecisionClient) Interceptors() []Interceptor {
	return c.inters.AIDecision
}

func (c *AIDecisionClient) mutate(ctx context.Context, m *AIDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AIDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AIDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AIDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AIDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AIDecision mutation op: %q", m.Op())
	}
}

// AuditLogEntryClient is a client for the AuditLogEntry schema.
type AuditLogEntryClient struct {
	config
}

// NewAuditLogEntryClient returns a client for the AuditLogEntry from the given config.
func NewAuditLogEntryClient(c config) *AuditLogEntryClient {
	return &AuditLogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlogentry.Hooks(f(g(h())))`.
func (c *AuditLogEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditLogEntry = append(c.hooks.AuditLogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlogentry.Intercept(f(g(h())))`.
func (c *AuditLogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLogEntry = append(c.inters.AuditLogEntry, interceptors...)
}

// Create returns a builder for creating a AuditLogEntry entity.
func (c *AuditLogEntryClient) Create() *AuditLogEntryCreate {
	mutation := newAuditLogEntryMutation(c.config, OpCreate)
	return &AuditLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLogEntry entities.
func (c *AuditLogEntryClient) CreateBulk(builders ...*AuditLogEntryCreate) *AuditLogEntryCreateBulk {
	return &AuditLogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogEntryClient) MapCreateBulk(slice any, setFunc func(*AuditLogEntryCreate, int)) *AuditLogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogEntryCreateBulk{err: fmt.Errorf("calling to AuditLogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLogEntry.
func (c *AuditLogEntryClient) Update() *AuditLogEntryUpdate {
	mutation := newAuditLogEntryMutation(c.config, OpUpdate)
	return &AuditLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogEntryClient) UpdateOne(_m *AuditLogEntry) *AuditLogEntryUpdateOne {
	mutation := newAuditLogEntryMutation(c.config, OpUpdateOne, withAuditLogEntry(_m))
	return &AuditLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogEntryClient) UpdateOneID(id string) *AuditLogEntryUpdateOne {
	mutation := newAuditLogEntryMutation(c.config, OpUpdateOne, withAuditLogEntryID(id))
	return &AuditLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLogEntry.
func (c *AuditLogEntryClient) Delete() *AuditLogEntryDelete {
	mutation := newAuditLogEntryMutation(c.config, OpDelete)
	return &AuditLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogEntryClient) DeleteOne(_m *AuditLogEntry) *AuditLogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogEntryClient) DeleteOneID(id string) *AuditLogEntryDeleteOne {
	builder := c.Delete().Where(auditlogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogEntryDeleteOne{builder}
}

// Query returns a query builder for AuditLogEntry.
func (c *AuditLogEntryClient) Query() *AuditLogEntryQuery {
	return &AuditLogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLogEntry entity by its id.
func (c *AuditLogEntryClient) Get(ctx context.Context, id string) (*AuditLogEntry, error) {
	return c.Query().Where(auditlogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogEntryClient) GetX(ctx context.Context, id string) *AuditLogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogEntryClient) Hooks() []Hook {
	return c.hooks.AuditLogEntry
}

// Interceptors returns the client interceptors.
func (c *AuditLogEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditLogEntry
}

func (c *AuditLogEntryClient) mutate(ctx context.Context, m *AuditLogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLogEntry mutation op: %q", m.Op())
	}
}

// IngestJobClient is a client for the IngestJob schema.
type IngestJobClient struct {
	config
}

// NewIngestJobClient returns a client for the IngestJob from the given config.
func NewIngestJobClient(c config) *IngestJobClient {
	return &IngestJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestjob.Hooks(f(g(h())))`.
func (c *IngestJobClient) Use(hooks ...Hook) {
	c.hooks.IngestJob = append(c.hooks.IngestJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestjob.Intercept(f(g(h())))`.
func (c *IngestJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestJob = append(c.inters.IngestJob, interceptors...)
}

// Create returns a builder for creating a IngestJob entity.
func (c *IngestJobClient) Create() *IngestJobCreate {
	mutation := newIngestJobMutation(c.config, OpCreate)
	return &IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestJob entities.
func (c *IngestJobClient) CreateBulk(builders ...*IngestJobCreate) *IngestJobCreateBulk {
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestJobClient) MapCreateBulk(slice any, setFunc func(*IngestJobCreate, int)) *IngestJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestJobCreateBulk{err: fmt.Errorf("calling to IngestJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestJob.
func (c *IngestJobClient) Update() *IngestJobUpdate {
	mutation := newIngestJobMutation(c.config, OpUpdate)
	return &IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestJobClient) UpdateOne(_m *IngestJob) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJob(_m))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestJobClient) UpdateOneID(id string) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJobID(id))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestJob.
func (c *IngestJobClient) Delete() *IngestJobDelete {
	mutation := newIngestJobMutation(c.config, OpDelete)
	return &IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestJobClient) DeleteOne(_m *IngestJob) *IngestJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestJobClient) DeleteOneID(id string) *IngestJobDeleteOne {
	builder := c.Delete().Where(ingestjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestJobDeleteOne{builder}
}

// Query returns a query builder for IngestJob.
func (c *IngestJobClient) Query() *IngestJobQuery {
	return &IngestJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestJob},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestJob entity by its id.
func (c *IngestJobClient) Get(ctx context.Context, id string) (*IngestJob, error) {
	return c.Query().Where(ingestjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestJobClient) GetX(ctx context.Context, id string) *IngestJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestJobClient) Hooks() []Hook {
	return c.hooks.IngestJob
}

// Interceptors returns the client interceptors.
func (c *IngestJobClient) Interceptors() []Interceptor {
	return c.inters.IngestJob
}

func (c *IngestJobClient) mutate(ctx context.Context, m *IngestJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestJob mutation op: %q", m.Op())
	}
}

// PendingMessageClient is a client for the PendingMessage schema.
type PendingMessageClient struct {
	config
}

// NewPendingMessageClient returns a client for the PendingMessage from the given config.
func NewPendingMessageClient(c config) *PendingMessageClient {
	return &PendingMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingmessage.Hooks(f(g(h())))`.
func (c *PendingMessageClient) Use(hooks ...Hook) {
	c.hooks.PendingMessage = append(c.hooks.PendingMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingmessage.Intercept(f(g(h())))`.
func (c *PendingMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingMessage = append(c.inters.PendingMessage, interceptors...)
}

// Create returns a builder for creating a PendingMessage entity.
func (c *PendingMessageClient) Create() *PendingMessageCreate {
	mutation := newPendingMessageMutation(c.config, OpCreate)
	return &PendingMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingMessage entities.
func (c *PendingMessageClient) CreateBulk(builders ...*PendingMessageCreate) *PendingMessageCreateBulk {
	return &PendingMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingMessageClient) MapCreateBulk(slice any, setFunc func(*PendingMessageCreate, int)) *PendingMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingMessageCreateBulk{err: fmt.Errorf("calling to PendingMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingMessage.
func (c *PendingMessageClient) Update() *PendingMessageUpdate {
	mutation := newPendingMessageMutation(c.config, OpUpdate)
	return &PendingMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingMessageClient) UpdateOne(_m *PendingMessage) *PendingMessageUpdateOne {
	mutation := newPendingMessageMutation(c.config, OpUpdateOne, withPendingMessage(_m))
	return &PendingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingMessageClient) UpdateOneID(id string) *PendingMessageUpdateOne {
	mutation := newPendingMessageMutation(c.config, OpUpdateOne, withPendingMessageID(id))
	return &PendingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingMessage.
func (c *PendingMessageClient) Delete() *PendingMessageDelete {
	mutation := newPendingMessageMutation(c.config, OpDelete)
	return &PendingMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingMessageClient) DeleteOne(_m *PendingMessage) *PendingMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingMessageClient) DeleteOneID(id string) *PendingMessageDeleteOne {
	builder := c.Delete().Where(pendingmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingMessageDeleteOne{builder}
}

// Query returns a query builder for PendingMessage.
func (c *PendingMessageClient) Query() *PendingMessageQuery {
	return &PendingMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingMessage entity by its id.
func (c *PendingMessageClient) Get(ctx context.Context, id string) (*PendingMessage, error) {
	return c.Query().Where(pendingmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingMessageClient) GetX(ctx context.Context, id string) *PendingMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a PendingMessage.
func (c *PendingMessageClient) QueryTicket(_m *PendingMessage) *TicketStateQuery {
	query := (&TicketStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pendingmessage.Table, pendingmessage.FieldID, id),
			sqlgraph.To(ticketstate.Table, ticketstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pendingmessage.TicketTable, pendingmessage.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PendingMessageClient) Hooks() []Hook {
	return c.hooks.PendingMessage
}

// Interceptors returns the client interceptors.
func (c *PendingMessageClient) Interceptors() []Interceptor {
	return c.inters.PendingMessage
}

func (c *PendingMessageClient) mutate(ctx context.Context, m *PendingMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingMessage mutation op: %q", m.Op())
	}
}

// ProcessedEmailClient is a client for the ProcessedEmail schema.
type ProcessedEmailClient struct {
	config
}

// NewProcessedEmailClient returns a client for the ProcessedEmail from the given config.
func NewProcessedEmailClient(c config) *ProcessedEmailClient {
	return &ProcessedEmailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedemail.Hooks(f(g(h())))`.
func (c *ProcessedEmailClient) Use(hooks ...Hook) {
	c.hooks.ProcessedEmail = append(c.hooks.ProcessedEmail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedemail.Intercept(f(g(h())))`.
func (c *ProcessedEmailClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedEmail = append(c.inters.ProcessedEmail, interceptors...)
}

// Create returns a builder for creating a ProcessedEmail entity.
func (c *ProcessedEmailClient) Create() *ProcessedEmailCreate {
	mutation := newProcessedEmailMutation(c.config, OpCreate)
	return &ProcessedEmailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedEmail entities.
func (c *ProcessedEmailClient) CreateBulk(builders ...*ProcessedEmailCreate) *ProcessedEmailCreateBulk {
	return &ProcessedEmailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedEmailClient) MapCreateBulk(slice any, setFunc func(*ProcessedEmailCreate, int)) *ProcessedEmailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedEmailCreateBulk{err: fmt.Errorf("calling to ProcessedEmailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedEmailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedEmailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedEmail.
func (c *ProcessedEmailClient) Update() *ProcessedEmailUpdate {
	mutation := newProcessedEmailMutation(c.config, OpUpdate)
	return &ProcessedEmailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedEmailClient) UpdateOne(_m *ProcessedEmail) *ProcessedEmailUpdateOne {
	mutation := newProcessedEmailMutation(c.config, OpUpdateOne, withProcessedEmail(_m))
	return &ProcessedEmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedEmailClient) UpdateOneID(id string) *ProcessedEmailUpdateOne {
	mutation := newProcessedEmailMutation(c.config, OpUpdateOne, withProcessedEmailID(id))
	return &ProcessedEmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedEmail.
func (c *ProcessedEmailClient) Delete() *ProcessedEmailDelete {
	mutation := newProcessedEmailMutation(c.config, OpDelete)
	return &ProcessedEmailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedEmailClient) DeleteOne(_m *ProcessedEmail) *ProcessedEmailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedEmailClient) DeleteOneID(id string) *ProcessedEmailDeleteOne {
	builder := c.Delete().Where(processedemail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedEmailDeleteOne{builder}
}

// Query returns a query builder for ProcessedEmail.
func (c *ProcessedEmailClient) Query() *ProcessedEmailQuery {
	return &ProcessedEmailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedEmail},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedEmail entity by its id.
func (c *ProcessedEmailClient) Get(ctx context.Context, id string) (*ProcessedEmail, error) {
	return c.Query().Where(processedemail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedEmailClient) GetX(ctx context.Context, id string) *ProcessedEmail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedEmailClient) Hooks() []Hook {
	return c.hooks.ProcessedEmail
}

// Interceptors returns the client interceptors.
func (c *ProcessedEmailClient) Interceptors() []Interceptor {
	return c.inters.ProcessedEmail
}

func (c *ProcessedEmailClient) mutate(ctx context.Context, m *ProcessedEmailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedEmailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedEmailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedEmailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedEmailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedEmail mutation op: %q", m.Op())
	}
}

// SupplierClient is a client for the Supplier schema.
type SupplierClient struct {
	config
}

// NewSupplierClient returns a client for the Supplier from the given config.
func NewSupplierClient(c config) *SupplierClient {
	return &SupplierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplier.Hooks(f(g(h())))`.
func (c *SupplierClient) Use(hooks ...Hook) {
	c.hooks.Supplier = append(c.hooks.Supplier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplier.Intercept(f(g(h())))`.
func (c *SupplierClient) Intercept(interceptors ...Interceptor) {
	c.inters.Supplier = append(c.inters.Supplier, interceptors...)
}

// Create returns a builder for creating a Supplier entity.
func (c *SupplierClient) Create() *SupplierCreate {
	mutation := newSupplierMutation(c.config, OpCreate)
	return &SupplierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Supplier entities.
func (c *SupplierClient) CreateBulk(builders ...*SupplierCreate) *SupplierCreateBulk {
	return &SupplierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierClient) MapCreateBulk(slice any, setFunc func(*SupplierCreate, int)) *SupplierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierCreateBulk{err: fmt.Errorf("calling to SupplierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Supplier.
func (c *SupplierClient) Update() *SupplierUpdate {
	mutation := newSupplierMutation(c.config, OpUpdate)
	return &SupplierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierClient) UpdateOne(_m *Supplier) *SupplierUpdateOne {
	mutation := newSupplierMutation(c.config, OpUpdateOne, withSupplier(_m))
	return &SupplierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierClient) UpdateOneID(id string) *SupplierUpdateOne {
	mutation := newSupplierMutation(c.config, OpUpdateOne, withSupplierID(id))
	return &SupplierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Supplier.
func (c *SupplierClient) Delete() *SupplierDelete {
	mutation := newSupplierMutation(c.config, OpDelete)
	return &SupplierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierClient) DeleteOne(_m *Supplier) *SupplierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierClient) DeleteOneID(id string) *SupplierDeleteOne {
	builder := c.Delete().Where(supplier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierDeleteOne{builder}
}

// Query returns a query builder for Supplier.
func (c *SupplierClient) Query() *SupplierQuery {
	return &SupplierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplier},
		inters: c.Interceptors(),
	}
}

// Get returns a Supplier entity by its id.
func (c *SupplierClient) Get(ctx context.Context, id string) (*Supplier, error) {
	return c.Query().Where(supplier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierClient) GetX(ctx context.Context, id string) *Supplier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SupplierClient) Hooks() []Hook {
	return c.hooks.Supplier
}

// Interceptors returns the client interceptors.
func (c *SupplierClient) Interceptors() []Interceptor {
	return c.inters.Supplier
}

func (c *SupplierClient) mutate(ctx context.Context, m *SupplierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Supplier mutation op: %q", m.Op())
	}
}

// SupplierMessageClient is a client for the SupplierMessage schema.
type SupplierMessageClient struct {
	config
}

// NewSupplierMessageClient returns a client for the SupplierMessage from the given config.
func NewSupplierMessageClient(c config) *SupplierMessageClient {
	return &SupplierMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `suppliermessage.Hooks(f(g(h())))`.
func (c *SupplierMessageClient) Use(hooks ...Hook) {
	c.hooks.SupplierMessage = append(c.hooks.SupplierMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `suppliermessage.Intercept(f(g(h())))`.
func (c *SupplierMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplierMessage = append(c.inters.SupplierMessage, interceptors...)
}

// Create returns a builder for creating a SupplierMessage entity.
func (c *SupplierMessageClient) Create() *SupplierMessageCreate {
	mutation := newSupplierMessageMutation(c.config, OpCreate)
	return &SupplierMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplierMessage entities.
func (c *SupplierMessageClient) CreateBulk(builders ...*SupplierMessageCreate) *SupplierMessageCreateBulk {
	return &SupplierMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierMessageClient) MapCreateBulk(slice any, setFunc func(*SupplierMessageCreate, int)) *SupplierMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierMessageCreateBulk{err: fmt.Errorf("calling to SupplierMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplierMessage.
func (c *SupplierMessageClient) Update() *SupplierMessageUpdate {
	mutation := newSupplierMessageMutation(c.config, OpUpdate)
	return &SupplierMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierMessageClient) UpdateOne(_m *SupplierMessage) *SupplierMessageUpdateOne {
	mutation := newSupplierMessageMutation(c.config, OpUpdateOne, withSupplierMessage(_m))
	return &SupplierMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierMessageClient) UpdateOneID(id string) *SupplierMessageUpdateOne {
	mutation := newSupplierMessageMutation(c.config, OpUpdateOne, withSupplierMessageID(id))
	return &SupplierMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplierMessage.
func (c *SupplierMessageClient) Delete() *SupplierMessageDelete {
	mutation := newSupplierMessageMutation(c.config, OpDelete)
	return &SupplierMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierMessageClient) DeleteOne(_m *SupplierMessage) *SupplierMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierMessageClient) DeleteOneID(id string) *SupplierMessageDeleteOne {
	builder := c.Delete().Where(suppliermessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierMessageDeleteOne{builder}
}

// Query returns a query builder for SupplierMessage.
func (c *SupplierMessageClient) Query() *SupplierMessageQuery {
	return &SupplierMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplierMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplierMessage entity by its id.
func (c *SupplierMessageClient) Get(ctx context.Context, id string) (*SupplierMessage, error) {
	return c.Query().Where(suppliermessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierMessageClient) GetX(ctx context.Context, id string) *SupplierMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a SupplierMessage.
func (c *SupplierMessageClient) QueryTicket(_m *SupplierMessage) *TicketStateQuery {
	query := (&TicketStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(suppliermessage.Table, suppliermessage.FieldID, id),
			sqlgraph.To(ticketstate.Table, ticketstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, suppliermessage.TicketTable, suppliermessage.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupplierMessageClient) Hooks() []Hook {
	return c.hooks.SupplierMessage
}

// Interceptors returns the client interceptors.
func (c *SupplierMessageClient) Interceptors() []Interceptor {
	return c.inters.SupplierMessage
}

func (c *SupplierMessageClient) mutate(ctx context.Context, m *SupplierMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplierMessage mutation op: %q", m.Op())
	}
}

// TicketMessageClient is a client for the TicketMessage schema.
type TicketMessageClient struct {
	config
}

// NewTicketMessageClient returns a client for the TicketMessage from the given config.
func NewTicketMessageClient(c config) *TicketMessageClient {
	return &TicketMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticketmessage.Hooks(f(g(h())))`.
func (c *TicketMessageClient) Use(hooks ...Hook) {
	c.hooks.TicketMessage = append(c.hooks.TicketMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticketmessage.Intercept(f(g(h())))`.
func (c *TicketMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TicketMessage = append(c.inters.TicketMessage, interceptors...)
}

// Create returns a builder for creating a TicketMessage entity.
func (c *TicketMessageClient) Create() *TicketMessageCreate {
	mutation := newTicketMessageMutation(c.config, OpCreate)
	return &TicketMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TicketMessage entities.
func (c *TicketMessageClient) CreateBulk(builders ...*TicketMessageCreate) *TicketMessageCreateBulk {
	return &TicketMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketMessageClient) MapCreateBulk(slice any, setFunc func(*TicketMessageCreate, int)) *TicketMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketMessageCreateBulk{err: fmt.Errorf("calling to TicketMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TicketMessage.
func (c *TicketMessageClient) Update() *TicketMessageUpdate {
	mutation := newTicketMessageMutation(c.config, OpUpdate)
	return &TicketMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketMessageClient) UpdateOne(_m *TicketMessage) *TicketMessageUpdateOne {
	mutation := newTicketMessageMutation(c.config, OpUpdateOne, withTicketMessage(_m))
	return &TicketMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketMessageClient) UpdateOneID(id string) *TicketMessageUpdateOne {
	mutation := newTicketMessageMutation(c.config, OpUpdateOne, withTicketMessageID(id))
	return &TicketMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TicketMessage.
func (c *TicketMessageClient) Delete() *TicketMessageDelete {
	mutation := newTicketMessageMutation(c.config, OpDelete)
	return &TicketMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketMessageClient) DeleteOne(_m *TicketMessage) *TicketMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketMessageClient) DeleteOneID(id string) *TicketMessageDeleteOne {
	builder := c.Delete().Where(ticketmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketMessageDeleteOne{builder}
}

// Query returns a query builder for TicketMessage.
func (c *TicketMessageClient) Query() *TicketMessageQuery {
	return &TicketMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicketMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a TicketMessage entity by its id.
func (c *TicketMessageClient) Get(ctx context.Context, id string) (*TicketMessage, error) {
	return c.Query().Where(ticketmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketMessageClient) GetX(ctx context.Context, id string) *TicketMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a TicketMessage.
func (c *TicketMessageClient) QueryTicket(_m *TicketMessage) *TicketStateQuery {
	query := (&TicketStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketmessage.Table, ticketmessage.FieldID, id),
			sqlgraph.To(ticketstate.Table, ticketstate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticketmessage.TicketTable, ticketmessage.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketMessageClient) Hooks() []Hook {
	return c.hooks.TicketMessage
}

// Interceptors returns the client interceptors.
func (c *TicketMessageClient) Interceptors() []Interceptor {
	return c.inters.TicketMessage
}

func (c *TicketMessageClient) mutate(ctx context.Context, m *TicketMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TicketMessage mutation op: %q", m.Op())
	}
}

// TicketStateClient is a client for the TicketState schema.
type TicketStateClient struct {
	config
}

// NewTicketStateClient returns a client for the TicketState from the given config.
func NewTicketStateClient(c config) *TicketStateClient {
	return &TicketStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticketstate.Hooks(f(g(h())))`.
func (c *TicketStateClient) Use(hooks ...Hook) {
	c.hooks.TicketState = append(c.hooks.TicketState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticketstate.Intercept(f(g(h())))`.
func (c *TicketStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TicketState = append(c.inters.TicketState, interceptors...)
}

// Create returns a builder for creating a TicketState entity.
func (c *TicketStateClient) Create() *TicketStateCreate {
	mutation := newTicketStateMutation(c.config, OpCreate)
	return &TicketStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TicketState entities.
func (c *TicketStateClient) CreateBulk(builders ...*TicketStateCreate) *TicketStateCreateBulk {
	return &TicketStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketStateClient) MapCreateBulk(slice any, setFunc func(*TicketStateCreate, int)) *TicketStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketStateCreateBulk{err: fmt.Errorf("calling to TicketStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TicketState.
func (c *TicketStateClient) Update() *TicketStateUpdate {
	mutation := newTicketStateMutation(c.config, OpUpdate)
	return &TicketStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketStateClient) UpdateOne(_m *TicketState) *TicketStateUpdateOne {
	mutation := newTicketStateMutation(c.config, OpUpdateOne, withTicketState(_m))
	return &TicketStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketStateClient) UpdateOneID(id string) *TicketStateUpdateOne {
	mutation := newTicketStateMutation(c.config, OpUpdateOne, withTicketStateID(id))
	return &TicketStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TicketState.
func (c *TicketStateClient) Delete() *TicketStateDelete {
	mutation := newTicketStateMutation(c.config, OpDelete)
	return &TicketStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketStateClient) DeleteOne(_m *TicketState) *TicketStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketStateClient) DeleteOneID(id string) *TicketStateDeleteOne {
	builder := c.Delete().Where(ticketstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketStateDeleteOne{builder}
}

// Query returns a query builder for TicketState.
func (c *TicketStateClient) Query() *TicketStateQuery {
	return &TicketStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicketState},
		inters: c.Interceptors(),
	}
}

// Get returns a TicketState entity by its id.
func (c *TicketStateClient) Get(ctx context.Context, id string) (*TicketState, error) {
	return c.Query().Where(ticketstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketStateClient) GetX(ctx context.Context, id string) *TicketState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a TicketState.
func (c *TicketStateClient) QueryMessages(_m *TicketState) *TicketMessageQuery {
	query := (&TicketMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, id),
			sqlgraph.To(ticketmessage.Table, ticketmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.MessagesTable, ticketstate.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDecisions queries the decisions edge of a TicketState.
func (c *TicketStateClient) QueryDecisions(_m *TicketState) *AIDecisionQuery {
	query := (&AIDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, id),
			sqlgraph.To(aidecision.Table, aidecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.DecisionsTable, ticketstate.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPendingMessages queries the pending_messages edge of a TicketState.
func (c *TicketStateClient) QueryPendingMessages(_m *TicketState) *PendingMessageQuery {
	query := (&PendingMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, id),
			sqlgraph.To(pendingmessage.Table, pendingmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.PendingMessagesTable, ticketstate.PendingMessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySupplierMessages queries the supplier_messages edge of a TicketState.
func (c *TicketStateClient) QuerySupplierMessages(_m *TicketState) *SupplierMessageQuery {
	query := (&SupplierMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticketstate.Table, ticketstate.FieldID, id),
			sqlgraph.To(suppliermessage.Table, suppliermessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticketstate.SupplierMessagesTable, ticketstate.SupplierMessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketStateClient) Hooks() []Hook {
	return c.hooks.TicketState
}

// Interceptors returns the client interceptors.
func (c *TicketStateClient) Interceptors() []Interceptor {
	return c.inters.TicketState
}

func (c *TicketStateClient) mutate(ctx context.Context, m *TicketStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TicketState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AIDecision, AuditLogEntry, IngestJob, PendingMessage, ProcessedEmail, Supplier,
		SupplierMessage, TicketMessage, TicketState []ent.Hook
	}
	inters struct {
		AIDecision, AuditLogEntry, IngestJob, PendingMessage, ProcessedEmail, Supplier,
		SupplierMessage, TicketMessage, TicketState []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
