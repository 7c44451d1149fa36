// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/masteryforge/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/masteryforge/ent/concept"
	"github.com/abhisek/masteryforge/ent/course"
	"github.com/abhisek/masteryforge/ent/learningsession"
	"github.com/abhisek/masteryforge/ent/llmrequestevent"
	"github.com/abhisek/masteryforge/ent/masterystate"
	"github.com/abhisek/masteryforge/ent/quizattempt"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Concept is the client for interacting with the Concept builders.
	Concept *ConceptClient
	// Course is the client for interacting with the Course builders.
	Course *CourseClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningSession is the client for interacting with the LearningSession builders.
	LearningSession *LearningSessionClient
	// MasteryState is the client for interacting with the MasteryState builders.
	MasteryState *MasteryStateClient
	// QuizAttempt is the client for interacting with the QuizAttempt builders.
	QuizAttempt *QuizAttemptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Concept = NewConceptClient(c.config)
	c.Course = NewCourseClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningSession = NewLearningSessionClient(c.config)
	c.MasteryState = NewMasteryStateClient(c.config)
	c.QuizAttempt = NewQuizAttemptClient(c.config)
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
		Concept:         NewConceptClient(cfg),
		Course:          NewCourseClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearningSession: NewLearningSessionClient(cfg),
		MasteryState:    NewMasteryStateClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
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
		Concept:         NewConceptClient(cfg),
		Course:          NewCourseClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearningSession: NewLearningSessionClient(cfg),
		MasteryState:    NewMasteryStateClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Concept.
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
		c.Concept, c.Course, c.LLMRequestEvent, c.LearningSession, c.MasteryState,
		c.QuizAttempt,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Concept, c.Course, c.LLMRequestEvent, c.LearningSession, c.MasteryState,
		c.QuizAttempt,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConceptMutation:
		return c.Concept.mutate(ctx, m)
	case *CourseMutation:
		return c.Course.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningSessionMutation:
		return c.LearningSession.mutate(ctx, m)
	case *MasteryStateMutation:
		return c.MasteryState.mutate(ctx, m)
	case *QuizAttemptMutation:
		return c.QuizAttempt.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConceptClient is a client for the Concept schema.
type ConceptClient struct {
	config
}

// NewConceptClient returns a client for the Concept from the given config.
func NewConceptClient(c config) *ConceptClient {
	return &ConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `concept.Hooks(f(g(h())))`.
func (c *ConceptClient) Use(hooks ...Hook) {
	c.hooks.Concept = append(c.hooks.Concept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `concept.Intercept(f(g(h())))`.
func (c *ConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Concept = append(c.inters.Concept, interceptors...)
}

// Create returns a builder for creating a Concept entity.
func (c *ConceptClient) Create() *ConceptCreate {
	mutation := newConceptMutation(c.config, OpCreate)
	return &ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Concept entities.
func (c *ConceptClient) CreateBulk(builders ...*ConceptCreate) *ConceptCreateBulk {
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConceptClient) MapCreateBulk(slice any, setFunc func(*ConceptCreate, int)) *ConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConceptCreateBulk{err: fmt.Errorf("calling to ConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Concept.
func (c *ConceptClient) Update() *ConceptUpdate {
	mutation := newConceptMutation(c.config, OpUpdate)
	return &ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConceptClient) UpdateOne(_m *Concept) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConcept(_m))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConceptClient) UpdateOneID(id string) *ConceptUpdateOne {
	mutation := newConceptMutation(c.config, OpUpdateOne, withConceptID(id))
	return &ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Concept.
func (c *ConceptClient) Delete() *ConceptDelete {
	mutation := newConceptMutation(c.config, OpDelete)
	return &ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConceptClient) DeleteOne(_m *Concept) *ConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConceptClient) DeleteOneID(id string) *ConceptDeleteOne {
	builder := c.Delete().Where(concept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConceptDeleteOne{builder}
}

// Query returns a query builder for Concept.
func (c *ConceptClient) Query() *ConceptQuery {
	return &ConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a Concept entity by its id.
func (c *ConceptClient) Get(ctx context.Context, id string) (*Concept, error) {
	return c.Query().Where(concept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConceptClient) GetX(ctx context.Context, id string) *Concept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConceptClient) Hooks() []Hook {
	return c.hooks.Concept
}

// Interceptors returns the client interceptors.
func (c *ConceptClient) Interceptors() []Interceptor {
	return c.inters.Concept
}

func (c *ConceptClient) mutate(ctx context.Context, m *ConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Concept mutation op: %q", m.Op())
	}
}

// CourseClient is a client for the Course schema.
type CourseClient struct {
	config
}

// NewCourseClient returns a client for the Course from the given config.
func NewCourseClient(c config) *CourseClient {
	return &CourseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `course.Hooks(f(g(h())))`.
func (c *CourseClient) Use(hooks ...Hook) {
	c.hooks.Course = append(c.hooks.Course, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `course.Intercept(f(g(h())))`.
func (c *CourseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Course = append(c.inters.Course, interceptors...)
}

// Create returns a builder for creating a Course entity.
func (c *CourseClient) Create() *CourseCreate {
	mutation := newCourseMutation(c.config, OpCreate)
	return &CourseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Course entities.
func (c *CourseClient) CreateBulk(builders ...*CourseCreate) *CourseCreateBulk {
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseClient) MapCreateBulk(slice any, setFunc func(*CourseCreate, int)) *CourseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseCreateBulk{err: fmt.Errorf("calling to CourseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Course.
func (c *CourseClient) Update() *CourseUpdate {
	mutation := newCourseMutation(c.config, OpUpdate)
	return &CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseClient) UpdateOne(_m *Course) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourse(_m))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseClient) UpdateOneID(id string) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourseID(id))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Course.
func (c *CourseClient) Delete() *CourseDelete {
	mutation := newCourseMutation(c.config, OpDelete)
	return &CourseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseClient) DeleteOne(_m *Course) *CourseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseClient) DeleteOneID(id string) *CourseDeleteOne {
	builder := c.Delete().Where(course.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseDeleteOne{builder}
}

// Query returns a query builder for Course.
func (c *CourseClient) Query() *CourseQuery {
	return &CourseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourse},
		inters: c.Interceptors(),
	}
}

// Get returns a Course entity by its id.
func (c *CourseClient) Get(ctx context.Context, id string) (*Course, error) {
	return c.Query().Where(course.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseClient) GetX(ctx context.Context, id string) *Course {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseClient) Hooks() []Hook {
	return c.hooks.Course
}

// Interceptors returns the client interceptors.
func (c *CourseClient) Interceptors() []Interceptor {
	return c.inters.Course
}

func (c *CourseClient) mutate(ctx context.Context, m *CourseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Course mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningSessionClient is a client for the LearningSession schema.
type LearningSessionClient struct {
	config
}

// NewLearningSessionClient returns a client for the LearningSession from the given config.
func NewLearningSessionClient(c config) *LearningSessionClient {
	return &LearningSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningsession.Hooks(f(g(h())))`.
func (c *LearningSessionClient) Use(hooks ...Hook) {
	c.hooks.LearningSession = append(c.hooks.LearningSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningsession.Intercept(f(g(h())))`.
func (c *LearningSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningSession = append(c.inters.LearningSession, interceptors...)
}

// Create returns a builder for creating a LearningSession entity.
func (c *LearningSessionClient) Create() *LearningSessionCreate {
	mutation := newLearningSessionMutation(c.config, OpCreate)
	return &LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningSession entities.
func (c *LearningSessionClient) CreateBulk(builders ...*LearningSessionCreate) *LearningSessionCreateBulk {
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningSessionClient) MapCreateBulk(slice any, setFunc func(*LearningSessionCreate, int)) *LearningSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningSessionCreateBulk{err: fmt.Errorf("calling to LearningSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningSession.
func (c *LearningSessionClient) Update() *LearningSessionUpdate {
	mutation := newLearningSessionMutation(c.config, OpUpdate)
	return &LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningSessionClient) UpdateOne(_m *LearningSession) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSession(_m))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningSessionClient) UpdateOneID(id uuid.UUID) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSessionID(id))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningSession.
func (c *LearningSessionClient) Delete() *LearningSessionDelete {
	mutation := newLearningSessionMutation(c.config, OpDelete)
	return &LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningSessionClient) DeleteOne(_m *LearningSession) *LearningSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningSessionClient) DeleteOneID(id uuid.UUID) *LearningSessionDeleteOne {
	builder := c.Delete().Where(learningsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningSessionDeleteOne{builder}
}

// Query returns a query builder for LearningSession.
func (c *LearningSessionClient) Query() *LearningSessionQuery {
	return &LearningSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningSession},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningSession entity by its id.
func (c *LearningSessionClient) Get(ctx context.Context, id uuid.UUID) (*LearningSession, error) {
	return c.Query().Where(learningsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningSessionClient) GetX(ctx context.Context, id uuid.UUID) *LearningSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningSessionClient) Hooks() []Hook {
	return c.hooks.LearningSession
}

// Interceptors returns the client interceptors.
func (c *LearningSessionClient) Interceptors() []Interceptor {
	return c.inters.LearningSession
}

func (c *LearningSessionClient) mutate(ctx context.Context, m *LearningSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningSession mutation op: %q", m.Op())
	}
}

// MasteryStateClient is a client for the MasteryState schema.
type MasteryStateClient struct {
	config
}

// NewMasteryStateClient returns a client for the MasteryState from the given config.
func NewMasteryStateClient(c config) *MasteryStateClient {
	return &MasteryStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masterystate.Hooks(f(g(h())))`.
func (c *MasteryStateClient) Use(hooks ...Hook) {
	c.hooks.MasteryState = append(c.hooks.MasteryState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masterystate.Intercept(f(g(h())))`.
func (c *MasteryStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryState = append(c.inters.MasteryState, interceptors...)
}

// Create returns a builder for creating a MasteryState entity.
func (c *MasteryStateClient) Create() *MasteryStateCreate {
	mutation := newMasteryStateMutation(c.config, OpCreate)
	return &MasteryStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryState entities.
func (c *MasteryStateClient) CreateBulk(builders ...*MasteryStateCreate) *MasteryStateCreateBulk {
	return &MasteryStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryStateClient) MapCreateBulk(slice any, setFunc func(*MasteryStateCreate, int)) *MasteryStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryStateCreateBulk{err: fmt.Errorf("calling to MasteryStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryState.
func (c *MasteryStateClient) Update() *MasteryStateUpdate {
	mutation := newMasteryStateMutation(c.config, OpUpdate)
	return &MasteryStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryStateClient) UpdateOne(_m *MasteryState) *MasteryStateUpdateOne {
	mutation := newMasteryStateMutation(c.config, OpUpdateOne, withMasteryState(_m))
	return &MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryStateClient) UpdateOneID(id int) *MasteryStateUpdateOne {
	mutation := newMasteryStateMutation(c.config, OpUpdateOne, withMasteryStateID(id))
	return &MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryState.
func (c *MasteryStateClient) Delete() *MasteryStateDelete {
	mutation := newMasteryStateMutation(c.config, OpDelete)
	return &MasteryStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryStateClient) DeleteOne(_m *MasteryState) *MasteryStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryStateClient) DeleteOneID(id int) *MasteryStateDeleteOne {
	builder := c.Delete().Where(masterystate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryStateDeleteOne{builder}
}

// Query returns a query builder for MasteryState.
func (c *MasteryStateClient) Query() *MasteryStateQuery {
	return &MasteryStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryState},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryState entity by its id.
func (c *MasteryStateClient) Get(ctx context.Context, id int) (*MasteryState, error) {
	return c.Query().Where(masterystate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryStateClient) GetX(ctx context.Context, id int) *MasteryState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryStateClient) Hooks() []Hook {
	return c.hooks.MasteryState
}

// Interceptors returns the client interceptors.
func (c *MasteryStateClient) Interceptors() []Interceptor {
	return c.inters.MasteryState
}

func (c *MasteryStateClient) mutate(ctx context.Context, m *MasteryStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryState mutation op: %q", m.Op())
	}
}

// QuizAttemptClient is a client for the QuizAttempt schema.
type QuizAttemptClient struct {
	config
}

// NewQuizAttemptClient returns a client for the QuizAttempt from the given config.
func NewQuizAttemptClient(c config) *QuizAttemptClient {
	return &QuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattempt.Hooks(f(g(h())))`.
func (c *QuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuizAttempt = append(c.hooks.QuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattempt.Intercept(f(g(h())))`.
func (c *QuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttempt = append(c.inters.QuizAttempt, interceptors...)
}

// Create returns a builder for creating a QuizAttempt entity.
func (c *QuizAttemptClient) Create() *QuizAttemptCreate {
	mutation := newQuizAttemptMutation(c.config, OpCreate)
	return &QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttempt entities.
func (c *QuizAttemptClient) CreateBulk(builders ...*QuizAttemptCreate) *QuizAttemptCreateBulk {
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptCreate, int)) *QuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptCreateBulk{err: fmt.Errorf("calling to QuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttempt.
func (c *QuizAttemptClient) Update() *QuizAttemptUpdate {
	mutation := newQuizAttemptMutation(c.config, OpUpdate)
	return &QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptClient) UpdateOne(_m *QuizAttempt) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttempt(_m))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptClient) UpdateOneID(id int) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttemptID(id))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttempt.
func (c *QuizAttemptClient) Delete() *QuizAttemptDelete {
	mutation := newQuizAttemptMutation(c.config, OpDelete)
	return &QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptClient) DeleteOne(_m *QuizAttempt) *QuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptClient) DeleteOneID(id int) *QuizAttemptDeleteOne {
	builder := c.Delete().Where(quizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptDeleteOne{builder}
}

// Query returns a query builder for QuizAttempt.
func (c *QuizAttemptClient) Query() *QuizAttemptQuery {
	return &QuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttempt entity by its id.
func (c *QuizAttemptClient) Get(ctx context.Context, id int) (*QuizAttempt, error) {
	return c.Query().Where(quizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptClient) GetX(ctx context.Context, id int) *QuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptClient) Hooks() []Hook {
	return c.hooks.QuizAttempt
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuizAttempt
}

func (c *QuizAttemptClient) mutate(ctx context.Context, m *QuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttempt mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Concept, Course, LLMRequestEvent, LearningSession, MasteryState,
		QuizAttempt []ent.Hook
	}
	inters struct {
		Concept, Course, LLMRequestEvent, LearningSession, MasteryState,
		QuizAttempt []ent.Interceptor
	}
)
