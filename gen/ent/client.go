// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/renalbridge/docpipeline/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/renalbridge/docpipeline/gen/ent/patientdocument"
	"github.com/renalbridge/docpipeline/gen/ent/stagingrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PatientDocument is the client for interacting with the PatientDocument builders.
	PatientDocument *PatientDocumentClient
	// StagingRecord is the client for interacting with the StagingRecord builders.
	StagingRecord *StagingRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PatientDocument = NewPatientDocumentClient(c.config)
	c.StagingRecord = NewStagingRecordClient(c.config)
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
		PatientDocument: NewPatientDocumentClient(cfg),
		StagingRecord:   NewStagingRecordClient(cfg),
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
		PatientDocument: NewPatientDocumentClient(cfg),
		StagingRecord:   NewStagingRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PatientDocument.
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
	c.PatientDocument.Use(hooks...)
	c.StagingRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.PatientDocument.Intercept(interceptors...)
	c.StagingRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PatientDocumentMutation:
		return c.PatientDocument.mutate(ctx, m)
	case *StagingRecordMutation:
		return c.StagingRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PatientDocumentClient is a client for the PatientDocument schema.
type PatientDocumentClient struct {
	config
}

// NewPatientDocumentClient returns a client for the PatientDocument from the given config.
func NewPatientDocumentClient(c config) *PatientDocumentClient {
	return &PatientDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientdocument.Hooks(f(g(h())))`.
func (c *PatientDocumentClient) Use(hooks ...Hook) {
	c.hooks.PatientDocument = append(c.hooks.PatientDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientdocument.Intercept(f(g(h())))`.
func (c *PatientDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientDocument = append(c.inters.PatientDocument, interceptors...)
}

// Create returns a builder for creating a PatientDocument entity.
func (c *PatientDocumentClient) Create() *PatientDocumentCreate {
	mutation := newPatientDocumentMutation(c.config, OpCreate)
	return &PatientDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientDocument entities.
func (c *PatientDocumentClient) CreateBulk(builders ...*PatientDocumentCreate) *PatientDocumentCreateBulk {
	return &PatientDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientDocumentClient) MapCreateBulk(slice any, setFunc func(*PatientDocumentCreate, int)) *PatientDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientDocumentCreateBulk{err: fmt.Errorf("calling to PatientDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientDocument.
func (c *PatientDocumentClient) Update() *PatientDocumentUpdate {
	mutation := newPatientDocumentMutation(c.config, OpUpdate)
	return &PatientDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientDocumentClient) UpdateOne(_m *PatientDocument) *PatientDocumentUpdateOne {
	mutation := newPatientDocumentMutation(c.config, OpUpdateOne, withPatientDocument(_m))
	return &PatientDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientDocumentClient) UpdateOneID(id uuid.UUID) *PatientDocumentUpdateOne {
	mutation := newPatientDocumentMutation(c.config, OpUpdateOne, withPatientDocumentID(id))
	return &PatientDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientDocument.
func (c *PatientDocumentClient) Delete() *PatientDocumentDelete {
	mutation := newPatientDocumentMutation(c.config, OpDelete)
	return &PatientDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientDocumentClient) DeleteOne(_m *PatientDocument) *PatientDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientDocumentClient) DeleteOneID(id uuid.UUID) *PatientDocumentDeleteOne {
	builder := c.Delete().Where(patientdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDocumentDeleteOne{builder}
}

// Query returns a query builder for PatientDocument.
func (c *PatientDocumentClient) Query() *PatientDocumentQuery {
	return &PatientDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientDocument entity by its id.
func (c *PatientDocumentClient) Get(ctx context.Context, id uuid.UUID) (*PatientDocument, error) {
	return c.Query().Where(patientdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientDocumentClient) GetX(ctx context.Context, id uuid.UUID) *PatientDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStagingRecords queries the staging_records edge of a PatientDocument.
func (c *PatientDocumentClient) QueryStagingRecords(_m *PatientDocument) *StagingRecordQuery {
	query := (&StagingRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patientdocument.Table, patientdocument.FieldID, id),
			sqlgraph.To(stagingrecord.Table, stagingrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patientdocument.StagingRecordsTable, patientdocument.StagingRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientDocumentClient) Hooks() []Hook {
	return c.hooks.PatientDocument
}

// Interceptors returns the client interceptors.
func (c *PatientDocumentClient) Interceptors() []Interceptor {
	return c.inters.PatientDocument
}

func (c *PatientDocumentClient) mutate(ctx context.Context, m *PatientDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatientDocument mutation op: %q", m.Op())
	}
}

// StagingRecordClient is a client for the StagingRecord schema.
type StagingRecordClient struct {
	config
}

// NewStagingRecordClient returns a client for the StagingRecord from the given config.
func NewStagingRecordClient(c config) *StagingRecordClient {
	return &StagingRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingrecord.Hooks(f(g(h())))`.
func (c *StagingRecordClient) Use(hooks ...Hook) {
	c.hooks.StagingRecord = append(c.hooks.StagingRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingrecord.Intercept(f(g(h())))`.
func (c *StagingRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingRecord = append(c.inters.StagingRecord, interceptors...)
}

// Create returns a builder for creating a StagingRecord entity.
func (c *StagingRecordClient) Create() *StagingRecordCreate {
	mutation := newStagingRecordMutation(c.config, OpCreate)
	return &StagingRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingRecord entities.
func (c *StagingRecordClient) CreateBulk(builders ...*StagingRecordCreate) *StagingRecordCreateBulk {
	return &StagingRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingRecordClient) MapCreateBulk(slice any, setFunc func(*StagingRecordCreate, int)) *StagingRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingRecordCreateBulk{err: fmt.Errorf("calling to StagingRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingRecord.
func (c *StagingRecordClient) Update() *StagingRecordUpdate {
	mutation := newStagingRecordMutation(c.config, OpUpdate)
	return &StagingRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingRecordClient) UpdateOne(_m *StagingRecord) *StagingRecordUpdateOne {
	mutation := newStagingRecordMutation(c.config, OpUpdateOne, withStagingRecord(_m))
	return &StagingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingRecordClient) UpdateOneID(id uuid.UUID) *StagingRecordUpdateOne {
	mutation := newStagingRecordMutation(c.config, OpUpdateOne, withStagingRecordID(id))
	return &StagingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingRecord.
func (c *StagingRecordClient) Delete() *StagingRecordDelete {
	mutation := newStagingRecordMutation(c.config, OpDelete)
	return &StagingRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingRecordClient) DeleteOne(_m *StagingRecord) *StagingRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingRecordClient) DeleteOneID(id uuid.UUID) *StagingRecordDeleteOne {
	builder := c.Delete().Where(stagingrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingRecordDeleteOne{builder}
}

// Query returns a query builder for StagingRecord.
func (c *StagingRecordClient) Query() *StagingRecordQuery {
	return &StagingRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingRecord entity by its id.
func (c *StagingRecordClient) Get(ctx context.Context, id uuid.UUID) (*StagingRecord, error) {
	return c.Query().Where(stagingrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingRecordClient) GetX(ctx context.Context, id uuid.UUID) *StagingRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySourceDocument queries the source_document edge of a StagingRecord.
func (c *StagingRecordClient) QuerySourceDocument(_m *StagingRecord) *PatientDocumentQuery {
	query := (&PatientDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stagingrecord.Table, stagingrecord.FieldID, id),
			sqlgraph.To(patientdocument.Table, patientdocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stagingrecord.SourceDocumentTable, stagingrecord.SourceDocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StagingRecordClient) Hooks() []Hook {
	return c.hooks.StagingRecord
}

// Interceptors returns the client interceptors.
func (c *StagingRecordClient) Interceptors() []Interceptor {
	return c.inters.StagingRecord
}

func (c *StagingRecordClient) mutate(ctx context.Context, m *StagingRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PatientDocument, StagingRecord []ent.Hook
	}
	inters struct {
		PatientDocument, StagingRecord []ent.Interceptor
	}
)
