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
	"github.com/mailscope/mailscope/ent/archiveoutbox"
	"github.com/mailscope/mailscope/ent/emailcluster"
	"github.com/mailscope/mailscope/ent/emailmessage"
	"github.com/mailscope/mailscope/ent/labeloutbox"
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
)

// EmailMessageQuery is the builder for querying EmailMessage entities.
type EmailMessageQuery struct {
	config
	ctx             *QueryContext
	order           []emailmessage.OrderOption
	inters          []Interceptor
	predicates      []predicate.EmailMessage
	withCluster     *EmailClusterQuery
	withAssignment  *TaxonomyAssignmentQuery
	withLabelPushes *LabelOutboxQuery
	withArchivePush *ArchiveOutboxQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EmailMessageQuery builder.
func (_q *EmailMessageQuery) Where(ps ...predicate.EmailMessage) *EmailMessageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EmailMessageQuery) Limit(limit int) *EmailMessageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EmailMessageQuery) Offset(offset int) *EmailMessageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EmailMessageQuery) Unique(unique bool) *EmailMessageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EmailMessageQuery) Order(o ...emailmessage.OrderOption) *EmailMessageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCluster chains the current query on the "cluster" edge.
func (_q *EmailMessageQuery) QueryCluster() *EmailClusterQuery {
	query := (&EmailClusterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, selector),
			sqlgraph.To(emailcluster.Table, emailcluster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, emailmessage.ClusterTable, emailmessage.ClusterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignment chains the current query on the "assignment" edge.
func (_q *EmailMessageQuery) QueryAssignment() *TaxonomyAssignmentQuery {
	query := (&TaxonomyAssignmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, selector),
			sqlgraph.To(taxonomyassignment.Table, taxonomyassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, emailmessage.AssignmentTable, emailmessage.AssignmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLabelPushes chains the current query on the "label_pushes" edge.
func (_q *EmailMessageQuery) QueryLabelPushes() *LabelOutboxQuery {
	query := (&LabelOutboxClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, selector),
			sqlgraph.To(labeloutbox.Table, labeloutbox.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailmessage.LabelPushesTable, emailmessage.LabelPushesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArchivePush chains the current query on the "archive_push" edge.
func (_q *EmailMessageQuery) QueryArchivePush() *ArchiveOutboxQuery {
	query := (&ArchiveOutboxClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, selector),
			sqlgraph.To(archiveoutbox.Table, archiveoutbox.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, emailmessage.ArchivePushTable, emailmessage.ArchivePushColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EmailMessage entity from the query.
// Returns a *NotFoundError when no EmailMessage was found.
func (_q *EmailMessageQuery) First(ctx context.Context) (*EmailMessage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{emailmessage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EmailMessageQuery) FirstX(ctx context.Context) *EmailMessage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EmailMessage ID from the query.
// Returns a *NotFoundError when no EmailMessage ID was found.
func (_q *EmailMessageQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{emailmessage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EmailMessageQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EmailMessage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EmailMessage entity is found.
// Returns a *NotFoundError when no EmailMessage entities are found.
func (_q *EmailMessageQuery) Only(ctx context.Context) (*EmailMessage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{emailmessage.Label}
	default:
		return nil, &NotSingularError{emailmessage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EmailMessageQuery) OnlyX(ctx context.Context) *EmailMessage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EmailMessage ID in the query.
// Returns a *NotSingularError when more than one EmailMessage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EmailMessageQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{emailmessage.Label}
	default:
		err = &NotSingularError{emailmessage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EmailMessageQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EmailMessages.
func (_q *EmailMessageQuery) All(ctx context.Context) ([]*EmailMessage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EmailMessage, *EmailMessageQuery]()
	return withInterceptors[[]*EmailMessage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EmailMessageQuery) AllX(ctx context.Context) []*EmailMessage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EmailMessage IDs.
func (_q *EmailMessageQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(emailmessage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EmailMessageQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EmailMessageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EmailMessageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EmailMessageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EmailMessageQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EmailMessageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EmailMessageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EmailMessageQuery) Clone() *EmailMessageQuery {
	if _q == nil {
		return nil
	}
	return &EmailMessageQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]emailmessage.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.EmailMessage{}, _q.predicates...),
		withCluster:     _q.withCluster.Clone(),
		withAssignment:  _q.withAssignment.Clone(),
		withLabelPushes: _q.withLabelPushes.Clone(),
		withArchivePush: _q.withArchivePush.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCluster tells the query-builder to eager-load the nodes that are connected to
// the "cluster" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailMessageQuery) WithCluster(opts ...func(*EmailClusterQuery)) *EmailMessageQuery {
	query := (&EmailClusterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCluster = query
	return _q
}

// WithAssignment tells the query-builder to eager-load the nodes that are connected to
// the "assignment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailMessageQuery) WithAssignment(opts ...func(*TaxonomyAssignmentQuery)) *EmailMessageQuery {
	query := (&TaxonomyAssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignment = query
	return _q
}

// WithLabelPushes tells the query-builder to eager-load the nodes that are connected to
// the "label_pushes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailMessageQuery) WithLabelPushes(opts ...func(*LabelOutboxQuery)) *EmailMessageQuery {
	query := (&LabelOutboxClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLabelPushes = query
	return _q
}

// WithArchivePush tells the query-builder to eager-load the nodes that are connected to
// the "archive_push" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EmailMessageQuery) WithArchivePush(opts ...func(*ArchiveOutboxQuery)) *EmailMessageQuery {
	query := (&ArchiveOutboxClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArchivePush = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ThreadID string `json:"thread_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EmailMessage.Query().
//		GroupBy(emailmessage.FieldThreadID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EmailMessageQuery) GroupBy(field string, fields ...string) *EmailMessageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EmailMessageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = emailmessage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ThreadID string `json:"thread_id,omitempty"`
//	}
//
//	client.EmailMessage.Query().
//		Select(emailmessage.FieldThreadID).
//		Scan(ctx, &v)
func (_q *EmailMessageQuery) Select(fields ...string) *EmailMessageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EmailMessageSelect{EmailMessageQuery: _q}
	sbuild.label = emailmessage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EmailMessageSelect configured with the given aggregations.
func (_q *EmailMessageQuery) Aggregate(fns ...AggregateFunc) *EmailMessageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EmailMessageQuery) prepareQuery(ctx context.Context) error {
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
		if !emailmessage.ValidColumn(f) {
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

func (_q *EmailMessageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EmailMessage, error) {
	var (
		nodes       = []*EmailMessage{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withCluster != nil,
			_q.withAssignment != nil,
			_q.withLabelPushes != nil,
			_q.withArchivePush != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EmailMessage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EmailMessage{config: _q.config}
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
	if query := _q.withCluster; query != nil {
		if err := _q.loadCluster(ctx, query, nodes, nil,
			func(n *EmailMessage, e *EmailCluster) { n.Edges.Cluster = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignment; query != nil {
		if err := _q.loadAssignment(ctx, query, nodes, nil,
			func(n *EmailMessage, e *TaxonomyAssignment) { n.Edges.Assignment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLabelPushes; query != nil {
		if err := _q.loadLabelPushes(ctx, query, nodes,
			func(n *EmailMessage) { n.Edges.LabelPushes = []*LabelOutbox{} },
			func(n *EmailMessage, e *LabelOutbox) { n.Edges.LabelPushes = append(n.Edges.LabelPushes, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArchivePush; query != nil {
		if err := _q.loadArchivePush(ctx, query, nodes, nil,
			func(n *EmailMessage, e *ArchiveOutbox) { n.Edges.ArchivePush = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EmailMessageQuery) loadCluster(ctx context.Context, query *EmailClusterQuery, nodes []*EmailMessage, init func(*EmailMessage), assign func(*EmailMessage, *EmailCluster)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*EmailMessage)
	for i := range nodes {
		if nodes[i].ClusterID == nil {
			continue
		}
		fk := *nodes[i].ClusterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(emailcluster.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "cluster_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *EmailMessageQuery) loadAssignment(ctx context.Context, query *TaxonomyAssignmentQuery, nodes []*EmailMessage, init func(*EmailMessage), assign func(*EmailMessage, *TaxonomyAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EmailMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(taxonomyassignment.FieldMessageID)
	}
	query.Where(predicate.TaxonomyAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(emailmessage.AssignmentColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EmailMessageQuery) loadLabelPushes(ctx context.Context, query *LabelOutboxQuery, nodes []*EmailMessage, init func(*EmailMessage), assign func(*EmailMessage, *LabelOutbox)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EmailMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(labeloutbox.FieldMessageID)
	}
	query.Where(predicate.LabelOutbox(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(emailmessage.LabelPushesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EmailMessageQuery) loadArchivePush(ctx context.Context, query *ArchiveOutboxQuery, nodes []*EmailMessage, init func(*EmailMessage), assign func(*EmailMessage, *ArchiveOutbox)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EmailMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(archiveoutbox.FieldMessageID)
	}
	query.Where(predicate.ArchiveOutbox(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(emailmessage.ArchivePushColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EmailMessageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EmailMessageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailmessage.FieldID)
		for i := range fields {
			if fields[i] != emailmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCluster != nil {
			_spec.Node.AddColumnOnce(emailmessage.FieldClusterID)
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

func (_q *EmailMessageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(emailmessage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = emailmessage.Columns
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

// EmailMessageGroupBy is the group-by builder for EmailMessage entities.
type EmailMessageGroupBy struct {
	selector
	build *EmailMessageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EmailMessageGroupBy) Aggregate(fns ...AggregateFunc) *EmailMessageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EmailMessageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmailMessageQuery, *EmailMessageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EmailMessageGroupBy) sqlScan(ctx context.Context, root *EmailMessageQuery, v any) error {
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

// EmailMessageSelect is the builder for selecting fields of EmailMessage entities.
type EmailMessageSelect struct {
	*EmailMessageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EmailMessageSelect) Aggregate(fns ...AggregateFunc) *EmailMessageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EmailMessageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmailMessageQuery, *EmailMessageSelect](ctx, _s.EmailMessageQuery, _s, _s.inters, v)
}

func (_s *EmailMessageSelect) sqlScan(ctx context.Context, root *EmailMessageQuery, v any) error {
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
