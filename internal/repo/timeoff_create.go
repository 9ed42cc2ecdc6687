// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/timeoff"
	"github.com/google/uuid"
)

// TimeOffCreate is the builder for creating a TimeOff entity.
type TimeOffCreate struct {
	config
	mutation *TimeOffMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimeOffCreate) SetCreatedAt(v time.Time) *TimeOffCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimeOffCreate) SetNillableCreatedAt(v *time.Time) *TimeOffCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimeOffCreate) SetUpdatedAt(v time.Time) *TimeOffCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimeOffCreate) SetNillableUpdatedAt(v *time.Time) *TimeOffCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TimeOffCreate) SetDoctorID(v uuid.UUID) *TimeOffCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *TimeOffCreate) SetStartTime(v time.Time) *TimeOffCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *TimeOffCreate) SetEndTime(v time.Time) *TimeOffCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *TimeOffCreate) SetReason(v string) *TimeOffCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *TimeOffCreate) SetNillableReason(v *string) *TimeOffCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimeOffCreate) SetID(v uuid.UUID) *TimeOffCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TimeOffCreate) SetNillableID(v *uuid.UUID) *TimeOffCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *TimeOffCreate) SetDoctor(v *Doctor) *TimeOffCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the TimeOffMutation object of the builder.
func (_c *TimeOffCreate) Mutation() *TimeOffMutation {
	return _c.mutation
}

// Save creates the TimeOff in the database.
func (_c *TimeOffCreate) Save(ctx context.Context) (*TimeOff, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimeOffCreate) SaveX(ctx context.Context) *TimeOff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeOffCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeOffCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimeOffCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timeoff.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timeoff.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := timeoff.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimeOffCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TimeOff.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TimeOff.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "TimeOff.doctor_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "TimeOff.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "TimeOff.end_time"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "TimeOff.doctor"`)}
	}
	return nil
}

func (_c *TimeOffCreate) sqlSave(ctx context.Context) (*TimeOff, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimeOffCreate) createSpec() (*TimeOff, *sqlgraph.CreateSpec) {
	var (
		_node = &TimeOff{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timeoff.Table, sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timeoff.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timeoff.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(timeoff.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(timeoff.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(timeoff.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeoff.DoctorTable,
			Columns: []string{timeoff.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimeOff.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimeOffUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TimeOffCreate) OnConflict(opts ...sql.ConflictOption) *TimeOffUpsertOne {
	_c.conflict = opts
	return &TimeOffUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimeOff.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimeOffCreate) OnConflictColumns(columns ...string) *TimeOffUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimeOffUpsertOne{
		create: _c,
	}
}

type (
	// TimeOffUpsertOne is the builder for "upsert"-ing
	//  one TimeOff node.
	TimeOffUpsertOne struct {
		create *TimeOffCreate
	}

	// TimeOffUpsert is the "OnConflict" setter.
	TimeOffUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TimeOffUpsert) SetUpdatedAt(v time.Time) *TimeOffUpsert {
	u.Set(timeoff.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimeOffUpsert) UpdateUpdatedAt() *TimeOffUpsert {
	u.SetExcluded(timeoff.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *TimeOffUpsert) SetDoctorID(v uuid.UUID) *TimeOffUpsert {
	u.Set(timeoff.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TimeOffUpsert) UpdateDoctorID() *TimeOffUpsert {
	u.SetExcluded(timeoff.FieldDoctorID)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *TimeOffUpsert) SetStartTime(v time.Time) *TimeOffUpsert {
	u.Set(timeoff.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *TimeOffUpsert) UpdateStartTime() *TimeOffUpsert {
	u.SetExcluded(timeoff.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *TimeOffUpsert) SetEndTime(v time.Time) *TimeOffUpsert {
	u.Set(timeoff.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *TimeOffUpsert) UpdateEndTime() *TimeOffUpsert {
	u.SetExcluded(timeoff.FieldEndTime)
	return u
}

// SetReason sets the "reason" field.
func (u *TimeOffUpsert) SetReason(v string) *TimeOffUpsert {
	u.Set(timeoff.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TimeOffUpsert) UpdateReason() *TimeOffUpsert {
	u.SetExcluded(timeoff.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *TimeOffUpsert) ClearReason() *TimeOffUpsert {
	u.SetNull(timeoff.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TimeOff.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timeoff.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimeOffUpsertOne) UpdateNewValues() *TimeOffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(timeoff.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(timeoff.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimeOff.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TimeOffUpsertOne) Ignore() *TimeOffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimeOffUpsertOne) DoNothing() *TimeOffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimeOffCreate.OnConflict
// documentation for more info.
func (u *TimeOffUpsertOne) Update(set func(*TimeOffUpsert)) *TimeOffUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimeOffUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimeOffUpsertOne) SetUpdatedAt(v time.Time) *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimeOffUpsertOne) UpdateUpdatedAt() *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TimeOffUpsertOne) SetDoctorID(v uuid.UUID) *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TimeOffUpsertOne) UpdateDoctorID() *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *TimeOffUpsertOne) SetStartTime(v time.Time) *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *TimeOffUpsertOne) UpdateStartTime() *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *TimeOffUpsertOne) SetEndTime(v time.Time) *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *TimeOffUpsertOne) UpdateEndTime() *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateEndTime()
	})
}

// SetReason sets the "reason" field.
func (u *TimeOffUpsertOne) SetReason(v string) *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TimeOffUpsertOne) UpdateReason() *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *TimeOffUpsertOne) ClearReason() *TimeOffUpsertOne {
	return u.Update(func(s *TimeOffUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *TimeOffUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TimeOffCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimeOffUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TimeOffUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TimeOffUpsertOne.ID is not supported by MySQL driver. Use TimeOffUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TimeOffUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TimeOffCreateBulk is the builder for creating many TimeOff entities in bulk.
type TimeOffCreateBulk struct {
	config
	err      error
	builders []*TimeOffCreate
	conflict []sql.ConflictOption
}

// Save creates the TimeOff entities in the database.
func (_c *TimeOffCreateBulk) Save(ctx context.Context) ([]*TimeOff, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimeOff, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimeOffMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TimeOffCreateBulk) SaveX(ctx context.Context) []*TimeOff {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeOffCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeOffCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimeOff.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimeOffUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TimeOffCreateBulk) OnConflict(opts ...sql.ConflictOption) *TimeOffUpsertBulk {
	_c.conflict = opts
	return &TimeOffUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimeOff.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimeOffCreateBulk) OnConflictColumns(columns ...string) *TimeOffUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimeOffUpsertBulk{
		create: _c,
	}
}

// TimeOffUpsertBulk is the builder for "upsert"-ing
// a bulk of TimeOff nodes.
type TimeOffUpsertBulk struct {
	create *TimeOffCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TimeOff.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timeoff.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimeOffUpsertBulk) UpdateNewValues() *TimeOffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(timeoff.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(timeoff.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimeOff.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TimeOffUpsertBulk) Ignore() *TimeOffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimeOffUpsertBulk) DoNothing() *TimeOffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimeOffCreateBulk.OnConflict
// documentation for more info.
func (u *TimeOffUpsertBulk) Update(set func(*TimeOffUpsert)) *TimeOffUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimeOffUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TimeOffUpsertBulk) SetUpdatedAt(v time.Time) *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TimeOffUpsertBulk) UpdateUpdatedAt() *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TimeOffUpsertBulk) SetDoctorID(v uuid.UUID) *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TimeOffUpsertBulk) UpdateDoctorID() *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *TimeOffUpsertBulk) SetStartTime(v time.Time) *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *TimeOffUpsertBulk) UpdateStartTime() *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *TimeOffUpsertBulk) SetEndTime(v time.Time) *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *TimeOffUpsertBulk) UpdateEndTime() *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateEndTime()
	})
}

// SetReason sets the "reason" field.
func (u *TimeOffUpsertBulk) SetReason(v string) *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TimeOffUpsertBulk) UpdateReason() *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *TimeOffUpsertBulk) ClearReason() *TimeOffUpsertBulk {
	return u.Update(func(s *TimeOffUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *TimeOffUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TimeOffCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TimeOffCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimeOffUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
