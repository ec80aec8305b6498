// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"quizdeck/ent/migrate"

	"quizdeck/ent/customquiz"
	"quizdeck/ent/historyentry"
	"quizdeck/ent/progress"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CustomQuiz is the client for interacting with the CustomQuiz builders.
	CustomQuiz *CustomQuizClient
	// HistoryEntry is the client for interacting with the HistoryEntry builders.
	HistoryEntry *HistoryEntryClient
	// Progress is the client for interacting with the Progress builders.
	Progress *ProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CustomQuiz = NewCustomQuizClient(c.config)
	c.HistoryEntry = NewHistoryEntryClient(c.config)
	c.Progress = NewProgressClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		CustomQuiz:   NewCustomQuizClient(cfg),
		HistoryEntry: NewHistoryEntryClient(cfg),
		Progress:     NewProgressClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		CustomQuiz:   NewCustomQuizClient(cfg),
		HistoryEntry: NewHistoryEntryClient(cfg),
		Progress:     NewProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CustomQuiz.
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
	c.CustomQuiz.Use(hooks...)
	c.HistoryEntry.Use(hooks...)
	c.Progress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CustomQuiz.Intercept(interceptors...)
	c.HistoryEntry.Intercept(interceptors...)
	c.Progress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CustomQuizMutation:
		return c.CustomQuiz.mutate(ctx, m)
	case *HistoryEntryMutation:
		return c.HistoryEntry.mutate(ctx, m)
	case *ProgressMutation:
		return c.Progress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CustomQuizClient is a client for the CustomQuiz schema.
type CustomQuizClient struct {
	config
}

// NewCustomQuizClient returns a client for the CustomQuiz from the given config.
func NewCustomQuizClient(c config) *CustomQuizClient {
	return &CustomQuizClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customquiz.Hooks(f(g(h())))`.
func (c *CustomQuizClient) Use(hooks ...Hook) {
	c.hooks.CustomQuiz = append(c.hooks.CustomQuiz, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customquiz.Intercept(f(g(h())))`.
func (c *CustomQuizClient) Intercept(interceptors ...Interceptor) {
	c.inters.CustomQuiz = append(c.inters.CustomQuiz, interceptors...)
}

// Create returns a builder for creating a CustomQuiz entity.
func (c *CustomQuizClient) Create() *CustomQuizCreate {
	mutation := newCustomQuizMutation(c.config, OpCreate)
	return &CustomQuizCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CustomQuiz entities.
func (c *CustomQuizClient) CreateBulk(builders ...*CustomQuizCreate) *CustomQuizCreateBulk {
	return &CustomQuizCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomQuizClient) MapCreateBulk(slice any, setFunc func(*CustomQuizCreate, int)) *CustomQuizCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomQuizCreateBulk{err: fmt.Errorf("calling to CustomQuizClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomQuizCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomQuizCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CustomQuiz.
func (c *CustomQuizClient) Update() *CustomQuizUpdate {
	mutation := newCustomQuizMutation(c.config, OpUpdate)
	return &CustomQuizUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomQuizClient) UpdateOne(_m *CustomQuiz) *CustomQuizUpdateOne {
	mutation := newCustomQuizMutation(c.config, OpUpdateOne, withCustomQuiz(_m))
	return &CustomQuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomQuizClient) UpdateOneID(id int) *CustomQuizUpdateOne {
	mutation := newCustomQuizMutation(c.config, OpUpdateOne, withCustomQuizID(id))
	return &CustomQuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CustomQuiz.
func (c *CustomQuizClient) Delete() *CustomQuizDelete {
	mutation := newCustomQuizMutation(c.config, OpDelete)
	return &CustomQuizDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomQuizClient) DeleteOne(_m *CustomQuiz) *CustomQuizDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomQuizClient) DeleteOneID(id int) *CustomQuizDeleteOne {
	builder := c.Delete().Where(customquiz.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomQuizDeleteOne{builder}
}

// Query returns a query builder for CustomQuiz.
func (c *CustomQuizClient) Query() *CustomQuizQuery {
	return &CustomQuizQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomQuiz},
		inters: c.Interceptors(),
	}
}

// Get returns a CustomQuiz entity by its id.
func (c *CustomQuizClient) Get(ctx context.Context, id int) (*CustomQuiz, error) {
	return c.Query().Where(customquiz.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomQuizClient) GetX(ctx context.Context, id int) *CustomQuiz {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CustomQuizClient) Hooks() []Hook {
	return c.hooks.CustomQuiz
}

// Interceptors returns the client interceptors.
func (c *CustomQuizClient) Interceptors() []Interceptor {
	return c.inters.CustomQuiz
}

func (c *CustomQuizClient) mutate(ctx context.Context, m *CustomQuizMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomQuizCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomQuizUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomQuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomQuizDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CustomQuiz mutation op: %q", m.Op())
	}
}

// HistoryEntryClient is a client for the HistoryEntry schema.
type HistoryEntryClient struct {
	config
}

// NewHistoryEntryClient returns a client for the HistoryEntry from the given config.
func NewHistoryEntryClient(c config) *HistoryEntryClient {
	return &HistoryEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `historyentry.Hooks(f(g(h())))`.
func (c *HistoryEntryClient) Use(hooks ...Hook) {
	c.hooks.HistoryEntry = append(c.hooks.HistoryEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `historyentry.Intercept(f(g(h())))`.
func (c *HistoryEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.HistoryEntry = append(c.inters.HistoryEntry, interceptors...)
}

// Create returns a builder for creating a HistoryEntry entity.
func (c *HistoryEntryClient) Create() *HistoryEntryCreate {
	mutation := newHistoryEntryMutation(c.config, OpCreate)
	return &HistoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HistoryEntry entities.
func (c *HistoryEntryClient) CreateBulk(builders ...*HistoryEntryCreate) *HistoryEntryCreateBulk {
	return &HistoryEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryEntryClient) MapCreateBulk(slice any, setFunc func(*HistoryEntryCreate, int)) *HistoryEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryEntryCreateBulk{err: fmt.Errorf("calling to HistoryEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HistoryEntry.
func (c *HistoryEntryClient) Update() *HistoryEntryUpdate {
	mutation := newHistoryEntryMutation(c.config, OpUpdate)
	return &HistoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryEntryClient) UpdateOne(_m *HistoryEntry) *HistoryEntryUpdateOne {
	mutation := newHistoryEntryMutation(c.config, OpUpdateOne, withHistoryEntry(_m))
	return &HistoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryEntryClient) UpdateOneID(id int) *HistoryEntryUpdateOne {
	mutation := newHistoryEntryMutation(c.config, OpUpdateOne, withHistoryEntryID(id))
	return &HistoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HistoryEntry.
func (c *HistoryEntryClient) Delete() *HistoryEntryDelete {
	mutation := newHistoryEntryMutation(c.config, OpDelete)
	return &HistoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryEntryClient) DeleteOne(_m *HistoryEntry) *HistoryEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryEntryClient) DeleteOneID(id int) *HistoryEntryDeleteOne {
	builder := c.Delete().Where(historyentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryEntryDeleteOne{builder}
}

// Query returns a query builder for HistoryEntry.
func (c *HistoryEntryClient) Query() *HistoryEntryQuery {
	return &HistoryEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistoryEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a HistoryEntry entity by its id.
func (c *HistoryEntryClient) Get(ctx context.Context, id int) (*HistoryEntry, error) {
	return c.Query().Where(historyentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryEntryClient) GetX(ctx context.Context, id int) *HistoryEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryEntryClient) Hooks() []Hook {
	return c.hooks.HistoryEntry
}

// Interceptors returns the client interceptors.
func (c *HistoryEntryClient) Interceptors() []Interceptor {
	return c.inters.HistoryEntry
}

func (c *HistoryEntryClient) mutate(ctx context.Context, m *HistoryEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HistoryEntry mutation op: %q", m.Op())
	}
}

// ProgressClient is a client for the Progress schema.
type ProgressClient struct {
	config
}

// NewProgressClient returns a client for the Progress from the given config.
func NewProgressClient(c config) *ProgressClient {
	return &ProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progress.Hooks(f(g(h())))`.
func (c *ProgressClient) Use(hooks ...Hook) {
	c.hooks.Progress = append(c.hooks.Progress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progress.Intercept(f(g(h())))`.
func (c *ProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.Progress = append(c.inters.Progress, interceptors...)
}

// Create returns a builder for creating a Progress entity.
func (c *ProgressClient) Create() *ProgressCreate {
	mutation := newProgressMutation(c.config, OpCreate)
	return &ProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Progress entities.
func (c *ProgressClient) CreateBulk(builders ...*ProgressCreate) *ProgressCreateBulk {
	return &ProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressClient) MapCreateBulk(slice any, setFunc func(*ProgressCreate, int)) *ProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressCreateBulk{err: fmt.Errorf("calling to ProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Progress.
func (c *ProgressClient) Update() *ProgressUpdate {
	mutation := newProgressMutation(c.config, OpUpdate)
	return &ProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressClient) UpdateOne(_m *Progress) *ProgressUpdateOne {
	mutation := newProgressMutation(c.config, OpUpdateOne, withProgress(_m))
	return &ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressClient) UpdateOneID(id int) *ProgressUpdateOne {
	mutation := newProgressMutation(c.config, OpUpdateOne, withProgressID(id))
	return &ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Progress.
func (c *ProgressClient) Delete() *ProgressDelete {
	mutation := newProgressMutation(c.config, OpDelete)
	return &ProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressClient) DeleteOne(_m *Progress) *ProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressClient) DeleteOneID(id int) *ProgressDeleteOne {
	builder := c.Delete().Where(progress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressDeleteOne{builder}
}

// Query returns a query builder for Progress.
func (c *ProgressClient) Query() *ProgressQuery {
	return &ProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a Progress entity by its id.
func (c *ProgressClient) Get(ctx context.Context, id int) (*Progress, error) {
	return c.Query().Where(progress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressClient) GetX(ctx context.Context, id int) *Progress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressClient) Hooks() []Hook {
	return c.hooks.Progress
}

// Interceptors returns the client interceptors.
func (c *ProgressClient) Interceptors() []Interceptor {
	return c.inters.Progress
}

func (c *ProgressClient) mutate(ctx context.Context, m *ProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Progress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CustomQuiz, HistoryEntry, Progress []ent.Hook
	}
	inters struct {
		CustomQuiz, HistoryEntry, Progress []ent.Interceptor
	}
)
