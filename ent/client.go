// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mailscope/mailscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/emailpolicy"
	"github.com/mailscope/mailscope/ent/eventrecord"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/ent/paymentrecord"
	"github.com/mailscope/mailscope/ent/pipelinekv"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ArchiveOutbox is the client for interacting with the ArchiveOutbox builders.
	ArchiveOutbox *ArchiveOutboxClient
	// EmailCluster is the client for interacting with the EmailCluster builders.
	EmailCluster *EmailClusterClient
	// EmailMessage is the client for interacting with the EmailMessage builders.
	EmailMessage *EmailMessageClient
	// EmailPolicy is the client for interacting with the EmailPolicy builders.
	EmailPolicy *EmailPolicyClient
	// EventRecord is the client for interacting with the EventRecord builders.
	EventRecord *EventRecordClient
	// LabelOutbox is the client for interacting with the LabelOutbox builders.
	LabelOutbox *LabelOutboxClient
	// PaymentRecord is the client for interacting with the PaymentRecord builders.
	PaymentRecord *PaymentRecordClient
	// PipelineKV is the client for interacting with the PipelineKV builders.
	PipelineKV *PipelineKVClient
	// TaxonomyAssignment is the client for interacting with the TaxonomyAssignment builders.
	TaxonomyAssignment *TaxonomyAssignmentClient
	// TaxonomyLabel is the client for interacting with the TaxonomyLabel builders.
	TaxonomyLabel *TaxonomyLabelClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ArchiveOutbox = NewArchiveOutboxClient(c.config)
	c.EmailCluster = NewEmailClusterClient(c.config)
	c.EmailMessage = NewEmailMessageClient(c.config)
	c.EmailPolicy = NewEmailPolicyClient(c.config)
	c.EventRecord = NewEventRecordClient(c.config)
	c.LabelOutbox = NewLabelOutboxClient(c.config)
	c.PaymentRecord = NewPaymentRecordClient(c.config)
	c.PipelineKV = NewPipelineKVClient(c.config)
	c.TaxonomyAssignment = NewTaxonomyAssignmentClient(c.config)
	c.TaxonomyLabel = NewTaxonomyLabelClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ArchiveOutbox:      NewArchiveOutboxClient(cfg),
		EmailCluster:       NewEmailClusterClient(cfg),
		EmailMessage:       NewEmailMessageClient(cfg),
		EmailPolicy:        NewEmailPolicyClient(cfg),
		EventRecord:        NewEventRecordClient(cfg),
		LabelOutbox:        NewLabelOutboxClient(cfg),
		PaymentRecord:      NewPaymentRecordClient(cfg),
		PipelineKV:         NewPipelineKVClient(cfg),
		TaxonomyAssignment: NewTaxonomyAssignmentClient(cfg),
		TaxonomyLabel:      NewTaxonomyLabelClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ArchiveOutbox:      NewArchiveOutboxClient(cfg),
		EmailCluster:       NewEmailClusterClient(cfg),
		EmailMessage:       NewEmailMessageClient(cfg),
		EmailPolicy:        NewEmailPolicyClient(cfg),
		EventRecord:        NewEventRecordClient(cfg),
		LabelOutbox:        NewLabelOutboxClient(cfg),
		PaymentRecord:      NewPaymentRecordClient(cfg),
		PipelineKV:         NewPipelineKVClient(cfg),
		TaxonomyAssignment: NewTaxonomyAssignmentClient(cfg),
		TaxonomyLabel:      NewTaxonomyLabelClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ArchiveOutbox.
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
		c.ArchiveOutbox, c.EmailCluster, c.EmailMessage, c.EmailPolicy, c.EventRecord,
		c.LabelOutbox, c.PaymentRecord, c.PipelineKV, c.TaxonomyAssignment,
		c.TaxonomyLabel,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ArchiveOutbox, c.EmailCluster, c.EmailMessage, c.EmailPolicy, c.EventRecord,
		c.LabelOutbox, c.PaymentRecord, c.PipelineKV, c.TaxonomyAssignment,
		c.TaxonomyLabel,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArchiveOutboxMutation:
		return c.ArchiveOutbox.mutate(ctx, m)
	case *EmailClusterMutation:
		return c.EmailCluster.mutate(ctx, m)
	case *EmailMessageMutation:
		return c.EmailMessage.mutate(ctx, m)
	case *EmailPolicyMutation:
		return c.EmailPolicy.mutate(ctx, m)
	case *EventRecordMutation:
		return c.EventRecord.mutate(ctx, m)
	case *LabelOutboxMutation:
		return c.LabelOutbox.mutate(ctx, m)
	case *PaymentRecordMutation:
		return c.PaymentRecord.mutate(ctx, m)
	case *PipelineKVMutation:
		return c.PipelineKV.mutate(ctx, m)
	case *TaxonomyAssignmentMutation:
		return c.TaxonomyAssignment.mutate(ctx, m)
	case *TaxonomyLabelMutation:
		return c.TaxonomyLabel.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArchiveOutboxClient is a client for the ArchiveOutbox schema.
type ArchiveOutboxClient struct {
	config
}

// NewArchiveOutboxClient returns a client for the ArchiveOutbox from the given config.
func NewArchiveOutboxClient(c config) *ArchiveOutboxClient {
	return &ArchiveOutboxClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `archiveoutbox.Hooks(f(g(h())))`.
func (c *ArchiveOutboxClient) Use(hooks ...Hook) {
	c.hooks.ArchiveOutbox = append(c.hooks.ArchiveOutbox, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `archiveoutbox.Intercept(f(g(h())))`.
func (c *ArchiveOutboxClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArchiveOutbox = append(c.inters.ArchiveOutbox, interceptors...)
}

// Create returns a builder for creating a ArchiveOutbox entity.
func (c *ArchiveOutboxClient) Create() *ArchiveOutboxCreate {
	mutation := newArchiveOutboxMutation(c.config, OpCreate)
	return &ArchiveOutboxCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArchiveOutbox entities.
func (c *ArchiveOutboxClient) CreateBulk(builders ...*ArchiveOutboxCreate) *ArchiveOutboxCreateBulk {
	return &ArchiveOutboxCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArchiveOutboxClient) MapCreateBulk(slice any, setFunc func(*ArchiveOutboxCreate, int)) *ArchiveOutboxCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArchiveOutboxCreateBulk{err: fmt.Errorf("calling to ArchiveOutboxClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArchiveOutboxCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArchiveOutboxCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArchiveOutbox.
func (c *ArchiveOutboxClient) Update() *ArchiveOutboxUpdate {
	mutation := newArchiveOutboxMutation(c.config, OpUpdate)
	return &ArchiveOutboxUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArchiveOutboxClient) UpdateOne(_m *ArchiveOutbox) *ArchiveOutboxUpdateOne {
	mutation := newArchiveOutboxMutation(c.config, OpUpdateOne, withArchiveOutbox(_m))
	return &ArchiveOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArchiveOutboxClient) UpdateOneID(id int) *ArchiveOutboxUpdateOne {
	mutation := newArchiveOutboxMutation(c.config, OpUpdateOne, withArchiveOutboxID(id))
	return &ArchiveOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArchiveOutbox.
func (c *ArchiveOutboxClient) Delete() *ArchiveOutboxDelete {
	mutation := newArchiveOutboxMutation(c.config, OpDelete)
	return &ArchiveOutboxDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArchiveOutboxClient) DeleteOne(_m *ArchiveOutbox) *ArchiveOutboxDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArchiveOutboxClient) DeleteOneID(id int) *ArchiveOutboxDeleteOne {
	builder := c.Delete().Where(archiveoutbox.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArchiveOutboxDeleteOne{builder}
}

// Query returns a query builder for ArchiveOutbox.
func (c *ArchiveOutboxClient) Query() *ArchiveOutboxQuery {
	return &ArchiveOutboxQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArchiveOutbox},
		inters: c.Interceptors(),
	}
}

// Get returns a ArchiveOutbox entity by its id.
func (c *ArchiveOutboxClient) Get(ctx context.Context, id int) (*ArchiveOutbox, error) {
	return c.Query().Where(archiveoutbox.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArchiveOutboxClient) GetX(ctx context.Context, id int) *ArchiveOutbox {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a ArchiveOutbox.
func (c *ArchiveOutboxClient) QueryMessage(_m *ArchiveOutbox) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(archiveoutbox.Table, archiveoutbox.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, archiveoutbox.MessageTable, archiveoutbox.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArchiveOutboxClient) Hooks() []Hook {
	return c.hooks.ArchiveOutbox
}

// Interceptors returns the client interceptors.
func (c *ArchiveOutboxClient) Interceptors() []Interceptor {
	return c.inters.ArchiveOutbox
}

func (c *ArchiveOutboxClient) mutate(ctx context.Context, m *ArchiveOutboxMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArchiveOutboxCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArchiveOutboxUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArchiveOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArchiveOutboxDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArchiveOutbox mutation op: %q", m.Op())
	}
}

// EmailClusterClient is a client for the EmailCluster schema.
type EmailClusterClient struct {
	config
}

// NewEmailClusterClient returns a client for the EmailCluster from the given config.
func NewEmailClusterClient(c config) *EmailClusterClient {
	return &EmailClusterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailcluster.Hooks(f(g(h())))`.
func (c *EmailClusterClient) Use(hooks ...Hook) {
	c.hooks.EmailCluster = append(c.hooks.EmailCluster, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailcluster.Intercept(f(g(h())))`.
func (c *EmailClusterClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailCluster = append(c.inters.EmailCluster, interceptors...)
}

// Create returns a builder for creating a EmailCluster entity.
func (c *EmailClusterClient) Create() *EmailClusterCreate {
	mutation := newEmailClusterMutation(c.config, OpCreate)
	return &EmailClusterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailCluster entities.
func (c *EmailClusterClient) CreateBulk(builders ...*EmailClusterCreate) *EmailClusterCreateBulk {
	return &EmailClusterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailClusterClient) MapCreateBulk(slice any, setFunc func(*EmailClusterCreate, int)) *EmailClusterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailClusterCreateBulk{err: fmt.Errorf("calling to EmailClusterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailClusterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailClusterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailCluster.
func (c *EmailClusterClient) Update() *EmailClusterUpdate {
	mutation := newEmailClusterMutation(c.config, OpUpdate)
	return &EmailClusterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailClusterClient) UpdateOne(_m *EmailCluster) *EmailClusterUpdateOne {
	mutation := newEmailClusterMutation(c.config, OpUpdateOne, withEmailCluster(_m))
	return &EmailClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailClusterClient) UpdateOneID(id string) *EmailClusterUpdateOne {
	mutation := newEmailClusterMutation(c.config, OpUpdateOne, withEmailClusterID(id))
	return &EmailClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailCluster.
func (c *EmailClusterClient) Delete() *EmailClusterDelete {
	mutation := newEmailClusterMutation(c.config, OpDelete)
	return &EmailClusterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailClusterClient) DeleteOne(_m *EmailCluster) *EmailClusterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailClusterClient) DeleteOneID(id string) *EmailClusterDeleteOne {
	builder := c.Delete().Where(emailcluster.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailClusterDeleteOne{builder}
}

// Query returns a query builder for EmailCluster.
func (c *EmailClusterClient) Query() *EmailClusterQuery {
	return &EmailClusterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailCluster},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailCluster entity by its id.
func (c *EmailClusterClient) Get(ctx context.Context, id string) (*EmailCluster, error) {
	return c.Query().Where(emailcluster.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailClusterClient) GetX(ctx context.Context, id string) *EmailCluster {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a EmailCluster.
func (c *EmailClusterClient) QueryMessages(_m *EmailCluster) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailcluster.Table, emailcluster.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailcluster.MessagesTable, emailcluster.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailClusterClient) Hooks() []Hook {
	return c.hooks.EmailCluster
}

// Interceptors returns the client interceptors.
func (c *EmailClusterClient) Interceptors() []Interceptor {
	return c.inters.EmailCluster
}

func (c *EmailClusterClient) mutate(ctx context.Context, m *EmailClusterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailClusterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailClusterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailClusterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailClusterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailCluster mutation op: %q", m.Op())
	}
}

// EmailMessageClient is a client for the EmailMessage schema.
type EmailMessageClient struct {
	config
}

// NewEmailMessageClient returns a client for the EmailMessage from the given config.
func NewEmailMessageClient(c config) *EmailMessageClient {
	return &EmailMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailmessage.Hooks(f(g(h())))`.
func (c *EmailMessageClient) Use(hooks ...Hook) {
	c.hooks.EmailMessage = append(c.hooks.EmailMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailmessage.Intercept(f(g(h())))`.
func (c *EmailMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailMessage = append(c.inters.EmailMessage, interceptors...)
}

// Create returns a builder for creating a EmailMessage entity.
func (c *EmailMessageClient) Create() *EmailMessageCreate {
	mutation := newEmailMessageMutation(c.config, OpCreate)
	return &EmailMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailMessage entities.
func (c *EmailMessageClient) CreateBulk(builders ...*EmailMessageCreate) *EmailMessageCreateBulk {
	return &EmailMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailMessageClient) MapCreateBulk(slice any, setFunc func(*EmailMessageCreate, int)) *EmailMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailMessageCreateBulk{err: fmt.Errorf("calling to EmailMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailMessage.
func (c *EmailMessageClient) Update() *EmailMessageUpdate {
	mutation := newEmailMessageMutation(c.config, OpUpdate)
	return &EmailMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailMessageClient) UpdateOne(_m *EmailMessage) *EmailMessageUpdateOne {
	mutation := newEmailMessageMutation(c.config, OpUpdateOne, withEmailMessage(_m))
	return &EmailMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailMessageClient) UpdateOneID(id string) *EmailMessageUpdateOne {
	mutation := newEmailMessageMutation(c.config, OpUpdateOne, withEmailMessageID(id))
	return &EmailMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailMessage.
func (c *EmailMessageClient) Delete() *EmailMessageDelete {
	mutation := newEmailMessageMutation(c.config, OpDelete)
	return &EmailMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailMessageClient) DeleteOne(_m *EmailMessage) *EmailMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailMessageClient) DeleteOneID(id string) *EmailMessageDeleteOne {
	builder := c.Delete().Where(emailmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailMessageDeleteOne{builder}
}

// Query returns a query builder for EmailMessage.
func (c *EmailMessageClient) Query() *EmailMessageQuery {
	return &EmailMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailMessage entity by its id.
func (c *EmailMessageClient) Get(ctx context.Context, id string) (*EmailMessage, error) {
	return c.Query().Where(emailmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailMessageClient) GetX(ctx context.Context, id string) *EmailMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCluster queries the cluster edge of a EmailMessage.
func (c *EmailMessageClient) QueryCluster(_m *EmailMessage) *EmailClusterQuery {
	query := (&EmailClusterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(emailcluster.Table, emailcluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, emailmessage.ClusterTable, emailmessage.ClusterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignment queries the assignment edge of a EmailMessage.
func (c *EmailMessageClient) QueryAssignment(_m *EmailMessage) *TaxonomyAssignmentQuery {
	query := (&TaxonomyAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(taxonomyassignment.Table, taxonomyassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, emailmessage.AssignmentTable, emailmessage.AssignmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLabelPushes queries the label_pushes edge of a EmailMessage.
func (c *EmailMessageClient) QueryLabelPushes(_m *EmailMessage) *LabelOutboxQuery {
	query := (&LabelOutboxClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(labeloutbox.Table, labeloutbox.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailmessage.LabelPushesTable, emailmessage.LabelPushesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArchivePush queries the archive_push edge of a EmailMessage.
func (c *EmailMessageClient) QueryArchivePush(_m *EmailMessage) *ArchiveOutboxQuery {
	query := (&ArchiveOutboxClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(archiveoutbox.Table, archiveoutbox.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, emailmessage.ArchivePushTable, emailmessage.ArchivePushColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailMessageClient) Hooks() []Hook {
	return c.hooks.EmailMessage
}

// Interceptors returns the client interceptors.
func (c *EmailMessageClient) Interceptors() []Interceptor {
	return c.inters.EmailMessage
}

func (c *EmailMessageClient) mutate(ctx context.Context, m *EmailMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailMessage mutation op: %q", m.Op())
	}
}

// EmailPolicyClient is a client for the EmailPolicy schema.
type EmailPolicyClient struct {
	config
}

// NewEmailPolicyClient returns a client for the EmailPolicy from the given config.
func NewEmailPolicyClient(c config) *EmailPolicyClient {
	return &EmailPolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailpolicy.Hooks(f(g(h())))`.
func (c *EmailPolicyClient) Use(hooks ...Hook) {
	c.hooks.EmailPolicy = append(c.hooks.EmailPolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailpolicy.Intercept(f(g(h())))`.
func (c *EmailPolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailPolicy = append(c.inters.EmailPolicy, interceptors...)
}

// Create returns a builder for creating a EmailPolicy entity.
func (c *EmailPolicyClient) Create() *EmailPolicyCreate {
	mutation := newEmailPolicyMutation(c.config, OpCreate)
	return &EmailPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailPolicy entities.
func (c *EmailPolicyClient) CreateBulk(builders ...*EmailPolicyCreate) *EmailPolicyCreateBulk {
	return &EmailPolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailPolicyClient) MapCreateBulk(slice any, setFunc func(*EmailPolicyCreate, int)) *EmailPolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailPolicyCreateBulk{err: fmt.Errorf("calling to EmailPolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailPolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailPolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailPolicy.
func (c *EmailPolicyClient) Update() *EmailPolicyUpdate {
	mutation := newEmailPolicyMutation(c.config, OpUpdate)
	return &EmailPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailPolicyClient) UpdateOne(_m *EmailPolicy) *EmailPolicyUpdateOne {
	mutation := newEmailPolicyMutation(c.config, OpUpdateOne, withEmailPolicy(_m))
	return &EmailPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailPolicyClient) UpdateOneID(id string) *EmailPolicyUpdateOne {
	mutation := newEmailPolicyMutation(c.config, OpUpdateOne, withEmailPolicyID(id))
	return &EmailPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailPolicy.
func (c *EmailPolicyClient) Delete() *EmailPolicyDelete {
	mutation := newEmailPolicyMutation(c.config, OpDelete)
	return &EmailPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailPolicyClient) DeleteOne(_m *EmailPolicy) *EmailPolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailPolicyClient) DeleteOneID(id string) *EmailPolicyDeleteOne {
	builder := c.Delete().Where(emailpolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailPolicyDeleteOne{builder}
}

// Query returns a query builder for EmailPolicy.
func (c *EmailPolicyClient) Query() *EmailPolicyQuery {
	return &EmailPolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailPolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailPolicy entity by its id.
func (c *EmailPolicyClient) Get(ctx context.Context, id string) (*EmailPolicy, error) {
	return c.Query().Where(emailpolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailPolicyClient) GetX(ctx context.Context, id string) *EmailPolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmailPolicyClient) Hooks() []Hook {
	return c.hooks.EmailPolicy
}

// Interceptors returns the client interceptors.
func (c *EmailPolicyClient) Interceptors() []Interceptor {
	return c.inters.EmailPolicy
}

func (c *EmailPolicyClient) mutate(ctx context.Context, m *EmailPolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailPolicy mutation op: %q", m.Op())
	}
}

// EventRecordClient is a client for the EventRecord schema.
type EventRecordClient struct {
	config
}

// NewEventRecordClient returns a client for the EventRecord from the given config.
func NewEventRecordClient(c config) *EventRecordClient {
	return &EventRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventrecord.Hooks(f(g(h())))`.
func (c *EventRecordClient) Use(hooks ...Hook) {
	c.hooks.EventRecord = append(c.hooks.EventRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventrecord.Intercept(f(g(h())))`.
func (c *EventRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventRecord = append(c.inters.EventRecord, interceptors...)
}

// Create returns a builder for creating a EventRecord entity.
func (c *EventRecordClient) Create() *EventRecordCreate {
	mutation := newEventRecordMutation(c.config, OpCreate)
	return &EventRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventRecord entities.
func (c *EventRecordClient) CreateBulk(builders ...*EventRecordCreate) *EventRecordCreateBulk {
	return &EventRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventRecordClient) MapCreateBulk(slice any, setFunc func(*EventRecordCreate, int)) *EventRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventRecordCreateBulk{err: fmt.Errorf("calling to EventRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventRecord.
func (c *EventRecordClient) Update() *EventRecordUpdate {
	mutation := newEventRecordMutation(c.config, OpUpdate)
	return &EventRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventRecordClient) UpdateOne(_m *EventRecord) *EventRecordUpdateOne {
	mutation := newEventRecordMutation(c.config, OpUpdateOne, withEventRecord(_m))
	return &EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventRecordClient) UpdateOneID(id string) *EventRecordUpdateOne {
	mutation := newEventRecordMutation(c.config, OpUpdateOne, withEventRecordID(id))
	return &EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventRecord.
func (c *EventRecordClient) Delete() *EventRecordDelete {
	mutation := newEventRecordMutation(c.config, OpDelete)
	return &EventRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventRecordClient) DeleteOne(_m *EventRecord) *EventRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventRecordClient) DeleteOneID(id string) *EventRecordDeleteOne {
	builder := c.Delete().Where(eventrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventRecordDeleteOne{builder}
}

// Query returns a query builder for EventRecord.
func (c *EventRecordClient) Query() *EventRecordQuery {
	return &EventRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a EventRecord entity by its id.
func (c *EventRecordClient) Get(ctx context.Context, id string) (*EventRecord, error) {
	return c.Query().Where(eventrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventRecordClient) GetX(ctx context.Context, id string) *EventRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventRecordClient) Hooks() []Hook {
	return c.hooks.EventRecord
}

// Interceptors returns the client interceptors.
func (c *EventRecordClient) Interceptors() []Interceptor {
	return c.inters.EventRecord
}

func (c *EventRecordClient) mutate(ctx context.Context, m *EventRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventRecord mutation op: %q", m.Op())
	}
}

// LabelOutboxClient is a client for the LabelOutbox schema.
type LabelOutboxClient struct {
	config
}

// NewLabelOutboxClient returns a client for the LabelOutbox from the given config.
func NewLabelOutboxClient(c config) *LabelOutboxClient {
	return &LabelOutboxClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labeloutbox.Hooks(f(g(h())))`.
func (c *LabelOutboxClient) Use(hooks ...Hook) {
	c.hooks.LabelOutbox = append(c.hooks.LabelOutbox, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labeloutbox.Intercept(f(g(h())))`.
func (c *LabelOutboxClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabelOutbox = append(c.inters.LabelOutbox, interceptors...)
}

// Create returns a builder for creating a LabelOutbox entity.
func (c *LabelOutboxClient) Create() *LabelOutboxCreate {
	mutation := newLabelOutboxMutation(c.config, OpCreate)
	return &LabelOutboxCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabelOutbox entities.
func (c *LabelOutboxClient) CreateBulk(builders ...*LabelOutboxCreate) *LabelOutboxCreateBulk {
	return &LabelOutboxCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabelOutboxClient) MapCreateBulk(slice any, setFunc func(*LabelOutboxCreate, int)) *LabelOutboxCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabelOutboxCreateBulk{err: fmt.Errorf("calling to LabelOutboxClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabelOutboxCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabelOutboxCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabelOutbox.
func (c *LabelOutboxClient) Update() *LabelOutboxUpdate {
	mutation := newLabelOutboxMutation(c.config, OpUpdate)
	return &LabelOutboxUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabelOutboxClient) UpdateOne(_m *LabelOutbox) *LabelOutboxUpdateOne {
	mutation := newLabelOutboxMutation(c.config, OpUpdateOne, withLabelOutbox(_m))
	return &LabelOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabelOutboxClient) UpdateOneID(id int) *LabelOutboxUpdateOne {
	mutation := newLabelOutboxMutation(c.config, OpUpdateOne, withLabelOutboxID(id))
	return &LabelOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabelOutbox.
func (c *LabelOutboxClient) Delete() *LabelOutboxDelete {
	mutation := newLabelOutboxMutation(c.config, OpDelete)
	return &LabelOutboxDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabelOutboxClient) DeleteOne(_m *LabelOutbox) *LabelOutboxDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabelOutboxClient) DeleteOneID(id int) *LabelOutboxDeleteOne {
	builder := c.Delete().Where(labeloutbox.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabelOutboxDeleteOne{builder}
}

// Query returns a query builder for LabelOutbox.
func (c *LabelOutboxClient) Query() *LabelOutboxQuery {
	return &LabelOutboxQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabelOutbox},
		inters: c.Interceptors(),
	}
}

// Get returns a LabelOutbox entity by its id.
func (c *LabelOutboxClient) Get(ctx context.Context, id int) (*LabelOutbox, error) {
	return c.Query().Where(labeloutbox.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabelOutboxClient) GetX(ctx context.Context, id int) *LabelOutbox {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a LabelOutbox.
func (c *LabelOutboxClient) QueryMessage(_m *LabelOutbox) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(labeloutbox.Table, labeloutbox.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, labeloutbox.MessageTable, labeloutbox.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabelOutboxClient) Hooks() []Hook {
	return c.hooks.LabelOutbox
}

// Interceptors returns the client interceptors.
func (c *LabelOutboxClient) Interceptors() []Interceptor {
	return c.inters.LabelOutbox
}

func (c *LabelOutboxClient) mutate(ctx context.Context, m *LabelOutboxMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabelOutboxCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabelOutboxUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabelOutboxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabelOutboxDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabelOutbox mutation op: %q", m.Op())
	}
}

// PaymentRecordClient is a client for the PaymentRecord schema.
type PaymentRecordClient struct {
	config
}

// NewPaymentRecordClient returns a client for the PaymentRecord from the given config.
func NewPaymentRecordClient(c config) *PaymentRecordClient {
	return &PaymentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paymentrecord.Hooks(f(g(h())))`.
func (c *PaymentRecordClient) Use(hooks ...Hook) {
	c.hooks.PaymentRecord = append(c.hooks.PaymentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paymentrecord.Intercept(f(g(h())))`.
func (c *PaymentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaymentRecord = append(c.inters.PaymentRecord, interceptors...)
}

// Create returns a builder for creating a PaymentRecord entity.
func (c *PaymentRecordClient) Create() *PaymentRecordCreate {
	mutation := newPaymentRecordMutation(c.config, OpCreate)
	return &PaymentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaymentRecord entities.
func (c *PaymentRecordClient) CreateBulk(builders ...*PaymentRecordCreate) *PaymentRecordCreateBulk {
	return &PaymentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentRecordClient) MapCreateBulk(slice any, setFunc func(*PaymentRecordCreate, int)) *PaymentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentRecordCreateBulk{err: fmt.Errorf("calling to PaymentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaymentRecord.
func (c *PaymentRecordClient) Update() *PaymentRecordUpdate {
	mutation := newPaymentRecordMutation(c.config, OpUpdate)
	return &PaymentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentRecordClient) UpdateOne(_m *PaymentRecord) *PaymentRecordUpdateOne {
	mutation := newPaymentRecordMutation(c.config, OpUpdateOne, withPaymentRecord(_m))
	return &PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentRecordClient) UpdateOneID(id string) *PaymentRecordUpdateOne {
	mutation := newPaymentRecordMutation(c.config, OpUpdateOne, withPaymentRecordID(id))
	return &PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaymentRecord.
func (c *PaymentRecordClient) Delete() *PaymentRecordDelete {
	mutation := newPaymentRecordMutation(c.config, OpDelete)
	return &PaymentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentRecordClient) DeleteOne(_m *PaymentRecord) *PaymentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentRecordClient) DeleteOneID(id string) *PaymentRecordDeleteOne {
	builder := c.Delete().Where(paymentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentRecordDeleteOne{builder}
}

// Query returns a query builder for PaymentRecord.
func (c *PaymentRecordClient) Query() *PaymentRecordQuery {
	return &PaymentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaymentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PaymentRecord entity by its id.
func (c *PaymentRecordClient) Get(ctx context.Context, id string) (*PaymentRecord, error) {
	return c.Query().Where(paymentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentRecordClient) GetX(ctx context.Context, id string) *PaymentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaymentRecordClient) Hooks() []Hook {
	return c.hooks.PaymentRecord
}

// Interceptors returns the client interceptors.
func (c *PaymentRecordClient) Interceptors() []Interceptor {
	return c.inters.PaymentRecord
}

func (c *PaymentRecordClient) mutate(ctx context.Context, m *PaymentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaymentRecord mutation op: %q", m.Op())
	}
}

// PipelineKVClient is a client for the PipelineKV schema.
type PipelineKVClient struct {
	config
}

// NewPipelineKVClient returns a client for the PipelineKV from the given config.
func NewPipelineKVClient(c config) *PipelineKVClient {
	return &PipelineKVClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinekv.Hooks(f(g(h())))`.
func (c *PipelineKVClient) Use(hooks ...Hook) {
	c.hooks.PipelineKV = append(c.hooks.PipelineKV, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinekv.Intercept(f(g(h())))`.
func (c *PipelineKVClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineKV = append(c.inters.PipelineKV, interceptors...)
}

// Create returns a builder for creating a PipelineKV entity.
func (c *PipelineKVClient) Create() *PipelineKVCreate {
	mutation := newPipelineKVMutation(c.config, OpCreate)
	return &PipelineKVCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineKV entities.
func (c *PipelineKVClient) CreateBulk(builders ...*PipelineKVCreate) *PipelineKVCreateBulk {
	return &PipelineKVCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineKVClient) MapCreateBulk(slice any, setFunc func(*PipelineKVCreate, int)) *PipelineKVCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineKVCreateBulk{err: fmt.Errorf("calling to PipelineKVClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineKVCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineKVCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineKV.
func (c *PipelineKVClient) Update() *PipelineKVUpdate {
	mutation := newPipelineKVMutation(c.config, OpUpdate)
	return &PipelineKVUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineKVClient) UpdateOne(_m *PipelineKV) *PipelineKVUpdateOne {
	mutation := newPipelineKVMutation(c.config, OpUpdateOne, withPipelineKV(_m))
	return &PipelineKVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineKVClient) UpdateOneID(id string) *PipelineKVUpdateOne {
	mutation := newPipelineKVMutation(c.config, OpUpdateOne, withPipelineKVID(id))
	return &PipelineKVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineKV.
func (c *PipelineKVClient) Delete() *PipelineKVDelete {
	mutation := newPipelineKVMutation(c.config, OpDelete)
	return &PipelineKVDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineKVClient) DeleteOne(_m *PipelineKV) *PipelineKVDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineKVClient) DeleteOneID(id string) *PipelineKVDeleteOne {
	builder := c.Delete().Where(pipelinekv.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineKVDeleteOne{builder}
}

// Query returns a query builder for PipelineKV.
func (c *PipelineKVClient) Query() *PipelineKVQuery {
	return &PipelineKVQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineKV},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineKV entity by its id.
func (c *PipelineKVClient) Get(ctx context.Context, id string) (*PipelineKV, error) {
	return c.Query().Where(pipelinekv.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineKVClient) GetX(ctx context.Context, id string) *PipelineKV {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineKVClient) Hooks() []Hook {
	return c.hooks.PipelineKV
}

// Interceptors returns the client interceptors.
func (c *PipelineKVClient) Interceptors() []Interceptor {
	return c.inters.PipelineKV
}

func (c *PipelineKVClient) mutate(ctx context.Context, m *PipelineKVMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineKVCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineKVUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineKVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineKVDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineKV mutation op: %q", m.Op())
	}
}

// TaxonomyAssignmentClient is a client for the TaxonomyAssignment schema.
type TaxonomyAssignmentClient struct {
	config
}

// NewTaxonomyAssignmentClient returns a client for the TaxonomyAssignment from the given config.
func NewTaxonomyAssignmentClient(c config) *TaxonomyAssignmentClient {
	return &TaxonomyAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taxonomyassignment.Hooks(f(g(h())))`.
func (c *TaxonomyAssignmentClient) Use(hooks ...Hook) {
	c.hooks.TaxonomyAssignment = append(c.hooks.TaxonomyAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taxonomyassignment.Intercept(f(g(h())))`.
func (c *TaxonomyAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaxonomyAssignment = append(c.inters.TaxonomyAssignment, interceptors...)
}

// Create returns a builder for creating a TaxonomyAssignment entity.
func (c *TaxonomyAssignmentClient) Create() *TaxonomyAssignmentCreate {
	mutation := newTaxonomyAssignmentMutation(c.config, OpCreate)
	return &TaxonomyAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaxonomyAssignment entities.
func (c *TaxonomyAssignmentClient) CreateBulk(builders ...*TaxonomyAssignmentCreate) *TaxonomyAssignmentCreateBulk {
	return &TaxonomyAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaxonomyAssignmentClient) MapCreateBulk(slice any, setFunc func(*TaxonomyAssignmentCreate, int)) *TaxonomyAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaxonomyAssignmentCreateBulk{err: fmt.Errorf("calling to TaxonomyAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaxonomyAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaxonomyAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaxonomyAssignment.
func (c *TaxonomyAssignmentClient) Update() *TaxonomyAssignmentUpdate {
	mutation := newTaxonomyAssignmentMutation(c.config, OpUpdate)
	return &TaxonomyAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaxonomyAssignmentClient) UpdateOne(_m *TaxonomyAssignment) *TaxonomyAssignmentUpdateOne {
	mutation := newTaxonomyAssignmentMutation(c.config, OpUpdateOne, withTaxonomyAssignment(_m))
	return &TaxonomyAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaxonomyAssignmentClient) UpdateOneID(id int) *TaxonomyAssignmentUpdateOne {
	mutation := newTaxonomyAssignmentMutation(c.config, OpUpdateOne, withTaxonomyAssignmentID(id))
	return &TaxonomyAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaxonomyAssignment.
func (c *TaxonomyAssignmentClient) Delete() *TaxonomyAssignmentDelete {
	mutation := newTaxonomyAssignmentMutation(c.config, OpDelete)
	return &TaxonomyAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaxonomyAssignmentClient) DeleteOne(_m *TaxonomyAssignment) *TaxonomyAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaxonomyAssignmentClient) DeleteOneID(id int) *TaxonomyAssignmentDeleteOne {
	builder := c.Delete().Where(taxonomyassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaxonomyAssignmentDeleteOne{builder}
}

// Query returns a query builder for TaxonomyAssignment.
func (c *TaxonomyAssignmentClient) Query() *TaxonomyAssignmentQuery {
	return &TaxonomyAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaxonomyAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a TaxonomyAssignment entity by its id.
func (c *TaxonomyAssignmentClient) Get(ctx context.Context, id int) (*TaxonomyAssignment, error) {
	return c.Query().Where(taxonomyassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaxonomyAssignmentClient) GetX(ctx context.Context, id int) *TaxonomyAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessage queries the message edge of a TaxonomyAssignment.
func (c *TaxonomyAssignmentClient) QueryMessage(_m *TaxonomyAssignment) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomyassignment.Table, taxonomyassignment.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, taxonomyassignment.MessageTable, taxonomyassignment.MessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLabel queries the label edge of a TaxonomyAssignment.
func (c *TaxonomyAssignmentClient) QueryLabel(_m *TaxonomyAssignment) *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomyassignment.Table, taxonomyassignment.FieldID, id),
			sqlgraph.To(taxonomylabel.Table, taxonomylabel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taxonomyassignment.LabelTable, taxonomyassignment.LabelColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaxonomyAssignmentClient) Hooks() []Hook {
	return c.hooks.TaxonomyAssignment
}

// Interceptors returns the client interceptors.
func (c *TaxonomyAssignmentClient) Interceptors() []Interceptor {
	return c.inters.TaxonomyAssignment
}

func (c *TaxonomyAssignmentClient) mutate(ctx context.Context, m *TaxonomyAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaxonomyAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaxonomyAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaxonomyAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaxonomyAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaxonomyAssignment mutation op: %q", m.Op())
	}
}

// TaxonomyLabelClient is a client for the TaxonomyLabel schema.
type TaxonomyLabelClient struct {
	config
}

// NewTaxonomyLabelClient returns a client for the TaxonomyLabel from the given config.
func NewTaxonomyLabelClient(c config) *TaxonomyLabelClient {
	return &TaxonomyLabelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taxonomylabel.Hooks(f(g(h())))`.
func (c *TaxonomyLabelClient) Use(hooks ...Hook) {
	c.hooks.TaxonomyLabel = append(c.hooks.TaxonomyLabel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taxonomylabel.Intercept(f(g(h())))`.
func (c *TaxonomyLabelClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaxonomyLabel = append(c.inters.TaxonomyLabel, interceptors...)
}

// Create returns a builder for creating a TaxonomyLabel entity.
func (c *TaxonomyLabelClient) Create() *TaxonomyLabelCreate {
	mutation := newTaxonomyLabelMutation(c.config, OpCreate)
	return &TaxonomyLabelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaxonomyLabel entities.
func (c *TaxonomyLabelClient) CreateBulk(builders ...*TaxonomyLabelCreate) *TaxonomyLabelCreateBulk {
	return &TaxonomyLabelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaxonomyLabelClient) MapCreateBulk(slice any, setFunc func(*TaxonomyLabelCreate, int)) *TaxonomyLabelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaxonomyLabelCreateBulk{err: fmt.Errorf("calling to TaxonomyLabelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaxonomyLabelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaxonomyLabelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaxonomyLabel.
func (c *TaxonomyLabelClient) Update() *TaxonomyLabelUpdate {
	mutation := newTaxonomyLabelMutation(c.config, OpUpdate)
	return &TaxonomyLabelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaxonomyLabelClient) UpdateOne(_m *TaxonomyLabel) *TaxonomyLabelUpdateOne {
	mutation := newTaxonomyLabelMutation(c.config, OpUpdateOne, withTaxonomyLabel(_m))
	return &TaxonomyLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaxonomyLabelClient) UpdateOneID(id int) *TaxonomyLabelUpdateOne {
	mutation := newTaxonomyLabelMutation(c.config, OpUpdateOne, withTaxonomyLabelID(id))
	return &TaxonomyLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaxonomyLabel.
func (c *TaxonomyLabelClient) Delete() *TaxonomyLabelDelete {
	mutation := newTaxonomyLabelMutation(c.config, OpDelete)
	return &TaxonomyLabelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaxonomyLabelClient) DeleteOne(_m *TaxonomyLabel) *TaxonomyLabelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaxonomyLabelClient) DeleteOneID(id int) *TaxonomyLabelDeleteOne {
	builder := c.Delete().Where(taxonomylabel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaxonomyLabelDeleteOne{builder}
}

// Query returns a query builder for TaxonomyLabel.
func (c *TaxonomyLabelClient) Query() *TaxonomyLabelQuery {
	return &TaxonomyLabelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaxonomyLabel},
		inters: c.Interceptors(),
	}
}

// Get returns a TaxonomyLabel entity by its id.
func (c *TaxonomyLabelClient) Get(ctx context.Context, id int) (*TaxonomyLabel, error) {
	return c.Query().Where(taxonomylabel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaxonomyLabelClient) GetX(ctx context.Context, id int) *TaxonomyLabel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a TaxonomyLabel.
func (c *TaxonomyLabelClient) QueryParent(_m *TaxonomyLabel) *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomylabel.Table, taxonomylabel.FieldID, id),
			sqlgraph.To(taxonomylabel.Table, taxonomylabel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taxonomylabel.ParentTable, taxonomylabel.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a TaxonomyLabel.
func (c *TaxonomyLabelClient) QueryChildren(_m *TaxonomyLabel) *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomylabel.Table, taxonomylabel.FieldID, id),
			sqlgraph.To(taxonomylabel.Table, taxonomylabel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxonomylabel.ChildrenTable, taxonomylabel.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a TaxonomyLabel.
func (c *TaxonomyLabelClient) QueryAssignments(_m *TaxonomyLabel) *TaxonomyAssignmentQuery {
	query := (&TaxonomyAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomylabel.Table, taxonomylabel.FieldID, id),
			sqlgraph.To(taxonomyassignment.Table, taxonomyassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxonomylabel.AssignmentsTable, taxonomylabel.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaxonomyLabelClient) Hooks() []Hook {
	return c.hooks.TaxonomyLabel
}

// Interceptors returns the client interceptors.
func (c *TaxonomyLabelClient) Interceptors() []Interceptor {
	return c.inters.TaxonomyLabel
}

func (c *TaxonomyLabelClient) mutate(ctx context.Context, m *TaxonomyLabelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaxonomyLabelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaxonomyLabelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaxonomyLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaxonomyLabelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaxonomyLabel mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ArchiveOutbox, EmailCluster, EmailMessage, EmailPolicy, EventRecord,
		LabelOutbox, PaymentRecord, PipelineKV, TaxonomyAssignment,
		TaxonomyLabel []ent.Hook
	}
	inters struct {
		ArchiveOutbox, EmailCluster, EmailMessage, EmailPolicy, EventRecord,
		LabelOutbox, PaymentRecord, PipelineKV, TaxonomyAssignment,
		TaxonomyLabel []ent.Interceptor
	}
)
