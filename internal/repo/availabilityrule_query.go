// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilityRuleQuery is the builder for querying AvailabilityRule entities.
type AvailabilityRuleQuery struct {
	config
	ctx        *QueryContext
	order      []availabilityrule.OrderOption
	inters     []Interceptor
	predicates []predicate.AvailabilityRule
	withDoctor *DoctorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AvailabilityRuleQuery builder.
func (_q *AvailabilityRuleQuery) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AvailabilityRuleQuery) Limit(limit int) *AvailabilityRuleQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AvailabilityRuleQuery) Offset(offset int) *AvailabilityRuleQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AvailabilityRuleQuery) Unique(unique bool) *AvailabilityRuleQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AvailabilityRuleQuery) Order(o ...availabilityrule.OrderOption) *AvailabilityRuleQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDoctor chains the current query on the "doctor" edge.
func (_q *AvailabilityRuleQuery) QueryDoctor() *DoctorQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(availabilityrule.Table, availabilityrule.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, availabilityrule.DoctorTable, availabilityrule.DoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AvailabilityRule entity from the query.
// Returns a *NotFoundError when no AvailabilityRule was found.
func (_q *AvailabilityRuleQuery) First(ctx context.Context) (*AvailabilityRule, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{availabilityrule.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) FirstX(ctx context.Context) *AvailabilityRule {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AvailabilityRule ID from the query.
// Returns a *NotFoundError when no AvailabilityRule ID was found.
func (_q *AvailabilityRuleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{availabilityrule.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AvailabilityRule entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AvailabilityRule entity is found.
// Returns a *NotFoundError when no AvailabilityRule entities are found.
func (_q *AvailabilityRuleQuery) Only(ctx context.Context) (*AvailabilityRule, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{availabilityrule.Label}
	default:
		return nil, &NotSingularError{availabilityrule.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) OnlyX(ctx context.Context) *AvailabilityRule {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AvailabilityRule ID in the query.
// Returns a *NotSingularError when more than one AvailabilityRule ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AvailabilityRuleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{availabilityrule.Label}
	default:
		err = &NotSingularError{availabilityrule.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AvailabilityRules.
func (_q *AvailabilityRuleQuery) All(ctx context.Context) ([]*AvailabilityRule, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AvailabilityRule, *AvailabilityRuleQuery]()
	return withInterceptors[[]*AvailabilityRule](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) AllX(ctx context.Context) []*AvailabilityRule {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AvailabilityRule IDs.
func (_q *AvailabilityRuleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(availabilityrule.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AvailabilityRuleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AvailabilityRuleQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AvailabilityRuleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AvailabilityRuleQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AvailabilityRuleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AvailabilityRuleQuery) Clone() *AvailabilityRuleQuery {
	if _q == nil {
		return nil
	}
	return &AvailabilityRuleQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]availabilityrule.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.AvailabilityRule{}, _q.predicates...),
		withDoctor: _q.withDoctor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDoctor tells the query-builder to eager-load the nodes that are connected to
// the "doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AvailabilityRuleQuery) WithDoctor(opts ...func(*DoctorQuery)) *AvailabilityRuleQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoctor = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AvailabilityRule.Query().
//		GroupBy(availabilityrule.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *AvailabilityRuleQuery) GroupBy(field string, fields ...string) *AvailabilityRuleGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AvailabilityRuleGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = availabilityrule.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.AvailabilityRule.Query().
//		Select(availabilityrule.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *AvailabilityRuleQuery) Select(fields ...string) *AvailabilityRuleSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AvailabilityRuleSelect{AvailabilityRuleQuery: _q}
	sbuild.label = availabilityrule.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AvailabilityRuleSelect configured with the given aggregations.
func (_q *AvailabilityRuleQuery) Aggregate(fns ...AggregateFunc) *AvailabilityRuleSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AvailabilityRuleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !availabilityrule.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *AvailabilityRuleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AvailabilityRule, error) {
	var (
		nodes       = []*AvailabilityRule{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withDoctor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AvailabilityRule).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AvailabilityRule{config: _q.config}
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
	if query := _q.withDoctor; query != nil {
		if err := _q.loadDoctor(ctx, query, nodes, nil,
			func(n *AvailabilityRule, e *Doctor) { n.Edges.Doctor = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AvailabilityRuleQuery) loadDoctor(ctx context.Context, query *DoctorQuery, nodes []*AvailabilityRule, init func(*AvailabilityRule), assign func(*AvailabilityRule, *Doctor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AvailabilityRule)
	for i := range nodes {
		fk := nodes[i].DoctorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(doctor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "doctor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *AvailabilityRuleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AvailabilityRuleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityrule.FieldID)
		for i := range fields {
			if fields[i] != availabilityrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDoctor != nil {
			_spec.Node.AddColumnOnce(availabilityrule.FieldDoctorID)
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

func (_q *AvailabilityRuleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(availabilityrule.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = availabilityrule.Columns
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

// AvailabilityRuleGroupBy is the group-by builder for AvailabilityRule entities.
type AvailabilityRuleGroupBy struct {
	selector
	build *AvailabilityRuleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AvailabilityRuleGroupBy) Aggregate(fns ...AggregateFunc) *AvailabilityRuleGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AvailabilityRuleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AvailabilityRuleQuery, *AvailabilityRuleGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AvailabilityRuleGroupBy) sqlScan(ctx context.Context, root *AvailabilityRuleQuery, v any) error {
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

// AvailabilityRuleSelect is the builder for selecting fields of AvailabilityRule entities.
type AvailabilityRuleSelect struct {
	*AvailabilityRuleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AvailabilityRuleSelect) Aggregate(fns ...AggregateFunc) *AvailabilityRuleSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AvailabilityRuleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AvailabilityRuleQuery, *AvailabilityRuleSelect](ctx, _s.AvailabilityRuleQuery, _s, _s.inters, v)
}

func (_s *AvailabilityRuleSelect) sqlScan(ctx context.Context, root *AvailabilityRuleQuery, v any) error {
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
