// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/filingwatch/regdocs-monitor/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Filing is the client for interacting with the Filing builders.
	Filing *FilingClient
	// RunHistory is the client for interacting with the RunHistory builders.
	RunHistory *RunHistoryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.Filing = NewFilingClient(c.config)
	c.RunHistory = NewRunHistoryClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Document:   NewDocumentClient(cfg),
		Filing:     NewFilingClient(cfg),
		RunHistory: NewRunHistoryClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Document:   NewDocumentClient(cfg),
		Filing:     NewFilingClient(cfg),
		RunHistory: NewRunHistoryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
	c.Document.Use(hooks...)
	c.Filing.Use(hooks...)
	c.RunHistory.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.Filing.Intercept(interceptors...)
	c.RunHistory.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *FilingMutation:
		return c.Filing.mutate(ctx, m)
	case *RunHistoryMutation:
		return c.RunHistory.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiling queries the filing edge of a Document.
func (c *DocumentClient) QueryFiling(_m *Document) *FilingQuery {
	query := (&FilingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(filing.Table, filing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.FilingTable, document.FilingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// FilingClient is a client for the Filing schema.
type FilingClient struct {
	config
}

// NewFilingClient returns a client for the Filing from the given config.
func NewFilingClient(c config) *FilingClient {
	return &FilingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filing.Hooks(f(g(h())))`.
func (c *FilingClient) Use(hooks ...Hook) {
	c.hooks.Filing = append(c.hooks.Filing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filing.Intercept(f(g(h())))`.
func (c *FilingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Filing = append(c.inters.Filing, interceptors...)
}

// Create returns a builder for creating a Filing entity.
func (c *FilingClient) Create() *FilingCreate {
	mutation := newFilingMutation(c.config, OpCreate)
	return &FilingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Filing entities.
func (c *FilingClient) CreateBulk(builders ...*FilingCreate) *FilingCreateBulk {
	return &FilingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FilingClient) MapCreateBulk(slice any, setFunc func(*FilingCreate, int)) *FilingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FilingCreateBulk{err: fmt.Errorf("calling to FilingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FilingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FilingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Filing.
func (c *FilingClient) Update() *FilingUpdate {
	mutation := newFilingMutation(c.config, OpUpdate)
	return &FilingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FilingClient) UpdateOne(_m *Filing) *FilingUpdateOne {
	mutation := newFilingMutation(c.config, OpUpdateOne, withFiling(_m))
	return &FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FilingClient) UpdateOneID(id uuid.UUID) *FilingUpdateOne {
	mutation := newFilingMutation(c.config, OpUpdateOne, withFilingID(id))
	return &FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Filing.
func (c *FilingClient) Delete() *FilingDelete {
	mutation := newFilingMutation(c.config, OpDelete)
	return &FilingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FilingClient) DeleteOne(_m *Filing) *FilingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FilingClient) DeleteOneID(id uuid.UUID) *FilingDeleteOne {
	builder := c.Delete().Where(filing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FilingDeleteOne{builder}
}

// Query returns a query builder for Filing.
func (c *FilingClient) Query() *FilingQuery {
	return &FilingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFiling},
		inters: c.Interceptors(),
	}
}

// Get returns a Filing entity by its id.
func (c *FilingClient) Get(ctx context.Context, id uuid.UUID) (*Filing, error) {
	return c.Query().Where(filing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FilingClient) GetX(ctx context.Context, id uuid.UUID) *Filing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Filing.
func (c *FilingClient) QueryDocuments(_m *Filing) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filing.Table, filing.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, filing.DocumentsTable, filing.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FilingClient) Hooks() []Hook {
	return c.hooks.Filing
}

// Interceptors returns the client interceptors.
func (c *FilingClient) Interceptors() []Interceptor {
	return c.inters.Filing
}

func (c *FilingClient) mutate(ctx context.Context, m *FilingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FilingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FilingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FilingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Filing mutation op: %q", m.Op())
	}
}

// RunHistoryClient is a client for the RunHistory schema.
type RunHistoryClient struct {
	config
}

// NewRunHistoryClient returns a client for the RunHistory from the given config.
func NewRunHistoryClient(c config) *RunHistoryClient {
	return &RunHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runhistory.Hooks(f(g(h())))`.
func (c *RunHistoryClient) Use(hooks ...Hook) {
	c.hooks.RunHistory = append(c.hooks.RunHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runhistory.Intercept(f(g(h())))`.
func (c *RunHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunHistory = append(c.inters.RunHistory, interceptors...)
}

// Create returns a builder for creating a RunHistory entity.
func (c *RunHistoryClient) Create() *RunHistoryCreate {
	mutation := newRunHistoryMutation(c.config, OpCreate)
	return &RunHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunHistory entities.
func (c *RunHistoryClient) CreateBulk(builders ...*RunHistoryCreate) *RunHistoryCreateBulk {
	return &RunHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunHistoryClient) MapCreateBulk(slice any, setFunc func(*RunHistoryCreate, int)) *RunHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunHistoryCreateBulk{err: fmt.Errorf("calling to RunHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunHistory.
func (c *RunHistoryClient) Update() *RunHistoryUpdate {
	mutation := newRunHistoryMutation(c.config, OpUpdate)
	return &RunHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunHistoryClient) UpdateOne(_m *RunHistory) *RunHistoryUpdateOne {
	mutation := newRunHistoryMutation(c.config, OpUpdateOne, withRunHistory(_m))
	return &RunHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunHistoryClient) UpdateOneID(id uuid.UUID) *RunHistoryUpdateOne {
	mutation := newRunHistoryMutation(c.config, OpUpdateOne, withRunHistoryID(id))
	return &RunHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunHistory.
func (c *RunHistoryClient) Delete() *RunHistoryDelete {
	mutation := newRunHistoryMutation(c.config, OpDelete)
	return &RunHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunHistoryClient) DeleteOne(_m *RunHistory) *RunHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunHistoryClient) DeleteOneID(id uuid.UUID) *RunHistoryDeleteOne {
	builder := c.Delete().Where(runhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunHistoryDeleteOne{builder}
}

// Query returns a query builder for RunHistory.
func (c *RunHistoryClient) Query() *RunHistoryQuery {
	return &RunHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a RunHistory entity by its id.
func (c *RunHistoryClient) Get(ctx context.Context, id uuid.UUID) (*RunHistory, error) {
	return c.Query().Where(runhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunHistoryClient) GetX(ctx context.Context, id uuid.UUID) *RunHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunHistoryClient) Hooks() []Hook {
	return c.hooks.RunHistory
}

// Interceptors returns the client interceptors.
func (c *RunHistoryClient) Interceptors() []Interceptor {
	return c.inters.RunHistory
}

func (c *RunHistoryClient) mutate(ctx context.Context, m *RunHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunHistory mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, Filing, RunHistory []ent.Hook
	}
	inters struct {
		Document, Filing, RunHistory []ent.Interceptor
	}
)
