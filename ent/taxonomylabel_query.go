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
	"github.com/mailscope/mailscope/ent/predicate"
	"github.com/mailscope/mailscope/ent/taxonomyassignment"
	"github.com/mailscope/mailscope/ent/taxonomylabel"
)

// TaxonomyLabelQuery is the builder for querying TaxonomyLabel entities.
type TaxonomyLabelQuery struct {
	config
	ctx             *QueryContext
	order           []taxonomylabel.OrderOption
	inters          []Interceptor
	predicates      []predicate.TaxonomyLabel
	withParent      *TaxonomyLabelQuery
	withChildren    *TaxonomyLabelQuery
	withAssignments *TaxonomyAssignmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaxonomyLabelQuery builder.
func (_q *TaxonomyLabelQuery) Where(ps ...predicate.TaxonomyLabel) *TaxonomyLabelQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TaxonomyLabelQuery) Limit(limit int) *TaxonomyLabelQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TaxonomyLabelQuery) Offset(offset int) *TaxonomyLabelQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TaxonomyLabelQuery) Unique(unique bool) *TaxonomyLabelQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TaxonomyLabelQuery) Order(o ...taxonomylabel.OrderOption) *TaxonomyLabelQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParent chains the current query on the "parent" edge.
func (_q *TaxonomyLabelQuery) QueryParent() *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomylabel.Table, taxonomylabel.FieldID, selector),
			sqlgraph.To(taxonomylabel.Table, taxonomylabel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taxonomylabel.ParentTable, taxonomylabel.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChildren chains the current query on the "children" edge.
func (_q *TaxonomyLabelQuery) QueryChildren() *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taxonomylabel.Table, taxonomylabel.FieldID, selector),
			sqlgraph.To(taxonomylabel.Table, taxonomylabel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxonomylabel.ChildrenTable, taxonomylabel.ChildrenColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignments chains the current query on the "assignments" edge.
func (_q *TaxonomyLabelQuery) QueryAssignments() *TaxonomyAssignmentQuery {
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
			sqlgraph.From(taxonomylabel.Table, taxonomylabel.FieldID, selector),
			sqlgraph.To(taxonomyassignment.Table, taxonomyassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxonomylabel.AssignmentsTable, taxonomylabel.AssignmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TaxonomyLabel entity from the query.
// Returns a *NotFoundError when no TaxonomyLabel was found.
func (_q *TaxonomyLabelQuery) First(ctx context.Context) (*TaxonomyLabel, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taxonomylabel.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) FirstX(ctx context.Context) *TaxonomyLabel {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaxonomyLabel ID from the query.
// Returns a *NotFoundError when no TaxonomyLabel ID was found.
func (_q *TaxonomyLabelQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taxonomylabel.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaxonomyLabel entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaxonomyLabel entity is found.
// Returns a *NotFoundError when no TaxonomyLabel entities are found.
func (_q *TaxonomyLabelQuery) Only(ctx context.Context) (*TaxonomyLabel, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taxonomylabel.Label}
	default:
		return nil, &NotSingularError{taxonomylabel.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) OnlyX(ctx context.Context) *TaxonomyLabel {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaxonomyLabel ID in the query.
// Returns a *NotSingularError when more than one TaxonomyLabel ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TaxonomyLabelQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taxonomylabel.Label}
	default:
		err = &NotSingularError{taxonomylabel.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaxonomyLabels.
func (_q *TaxonomyLabelQuery) All(ctx context.Context) ([]*TaxonomyLabel, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaxonomyLabel, *TaxonomyLabelQuery]()
	return withInterceptors[[]*TaxonomyLabel](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) AllX(ctx context.Context) []*TaxonomyLabel {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaxonomyLabel IDs.
func (_q *TaxonomyLabelQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(taxonomylabel.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TaxonomyLabelQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TaxonomyLabelQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TaxonomyLabelQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TaxonomyLabelQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TaxonomyLabelQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaxonomyLabelQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TaxonomyLabelQuery) Clone() *TaxonomyLabelQuery {
	if _q == nil {
		return nil
	}
	return &TaxonomyLabelQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]taxonomylabel.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.TaxonomyLabel{}, _q.predicates...),
		withParent:      _q.withParent.Clone(),
		withChildren:    _q.withChildren.Clone(),
		withAssignments: _q.withAssignments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaxonomyLabelQuery) WithParent(opts ...func(*TaxonomyLabelQuery)) *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParent = query
	return _q
}

// WithChildren tells the query-builder to eager-load the nodes that are connected to
// the "children" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaxonomyLabelQuery) WithChildren(opts ...func(*TaxonomyLabelQuery)) *TaxonomyLabelQuery {
	query := (&TaxonomyLabelClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChildren = query
	return _q
}

// WithAssignments tells the query-builder to eager-load the nodes that are connected to
// the "assignments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TaxonomyLabelQuery) WithAssignments(opts ...func(*TaxonomyAssignmentQuery)) *TaxonomyLabelQuery {
	query := (&TaxonomyAssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Level int `json:"level,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TaxonomyLabel.Query().
//		GroupBy(taxonomylabel.FieldLevel).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TaxonomyLabelQuery) GroupBy(field string, fields ...string) *TaxonomyLabelGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaxonomyLabelGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = taxonomylabel.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Level int `json:"level,omitempty"`
//	}
//
//	client.TaxonomyLabel.Query().
//		Select(taxonomylabel.FieldLevel).
//		Scan(ctx, &v)
func (_q *TaxonomyLabelQuery) Select(fields ...string) *TaxonomyLabelSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TaxonomyLabelSelect{TaxonomyLabelQuery: _q}
	sbuild.label = taxonomylabel.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaxonomyLabelSelect configured with the given aggregations.
func (_q *TaxonomyLabelQuery) Aggregate(fns ...AggregateFunc) *TaxonomyLabelSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TaxonomyLabelQuery) prepareQuery(ctx context.Context) error {
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
		if !taxonomylabel.ValidColumn(f) {
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

func (_q *TaxonomyLabelQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaxonomyLabel, error) {
	var (
		nodes       = []*TaxonomyLabel{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withParent != nil,
			_q.withChildren != nil,
			_q.withAssignments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaxonomyLabel).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaxonomyLabel{config: _q.config}
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
	if query := _q.withParent; query != nil {
		if err := _q.loadParent(ctx, query, nodes, nil,
			func(n *TaxonomyLabel, e *TaxonomyLabel) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChildren; query != nil {
		if err := _q.loadChildren(ctx, query, nodes,
			func(n *TaxonomyLabel) { n.Edges.Children = []*TaxonomyLabel{} },
			func(n *TaxonomyLabel, e *TaxonomyLabel) { n.Edges.Children = append(n.Edges.Children, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignments; query != nil {
		if err := _q.loadAssignments(ctx, query, nodes,
			func(n *TaxonomyLabel) { n.Edges.Assignments = []*TaxonomyAssignment{} },
			func(n *TaxonomyLabel, e *TaxonomyAssignment) { n.Edges.Assignments = append(n.Edges.Assignments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TaxonomyLabelQuery) loadParent(ctx context.Context, query *TaxonomyLabelQuery, nodes []*TaxonomyLabel, init func(*TaxonomyLabel), assign func(*TaxonomyLabel, *TaxonomyLabel)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*TaxonomyLabel)
	for i := range nodes {
		if nodes[i].ParentID == nil {
			continue
		}
		fk := *nodes[i].ParentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(taxonomylabel.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "parent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TaxonomyLabelQuery) loadChildren(ctx context.Context, query *TaxonomyLabelQuery, nodes []*TaxonomyLabel, init func(*TaxonomyLabel), assign func(*TaxonomyLabel, *TaxonomyLabel)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TaxonomyLabel)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(taxonomylabel.FieldParentID)
	}
	query.Where(predicate.TaxonomyLabel(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(taxonomylabel.ChildrenColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParentID
		if fk == nil {
			return fmt.Errorf(`foreign-key "parent_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parent_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TaxonomyLabelQuery) loadAssignments(ctx context.Context, query *TaxonomyAssignmentQuery, nodes []*TaxonomyLabel, init func(*TaxonomyLabel), assign func(*TaxonomyLabel, *TaxonomyAssignment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TaxonomyLabel)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(taxonomyassignment.FieldLabelID)
	}
	query.Where(predicate.TaxonomyAssignment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(taxonomylabel.AssignmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LabelID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "label_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TaxonomyLabelQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TaxonomyLabelQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taxonomylabel.Table, taxonomylabel.Columns, sqlgraph.NewFieldSpec(taxonomylabel.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taxonomylabel.FieldID)
		for i := range fields {
			if fields[i] != taxonomylabel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParent != nil {
			_spec.Node.AddColumnOnce(taxonomylabel.FieldParentID)
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

func (_q *TaxonomyLabelQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(taxonomylabel.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = taxonomylabel.Columns
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

// TaxonomyLabelGroupBy is the group-by builder for TaxonomyLabel entities.
type TaxonomyLabelGroupBy struct {
	selector
	build *TaxonomyLabelQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TaxonomyLabelGroupBy) Aggregate(fns ...AggregateFunc) *TaxonomyLabelGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TaxonomyLabelGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaxonomyLabelQuery, *TaxonomyLabelGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TaxonomyLabelGroupBy) sqlScan(ctx context.Context, root *TaxonomyLabelQuery, v any) error {
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

// TaxonomyLabelSelect is the builder for selecting fields of TaxonomyLabel entities.
type TaxonomyLabelSelect struct {
	*TaxonomyLabelQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TaxonomyLabelSelect) Aggregate(fns ...AggregateFunc) *TaxonomyLabelSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TaxonomyLabelSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaxonomyLabelQuery, *TaxonomyLabelSelect](ctx, _s.TaxonomyLabelQuery, _s, _s.inters, v)
}

func (_s *TaxonomyLabelSelect) sqlScan(ctx context.Context, root *TaxonomyLabelQuery, v any) error {
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
