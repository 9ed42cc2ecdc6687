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
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/google/uuid"
)

// AvailabilityRuleCreate is the builder for creating a AvailabilityRule entity.
type AvailabilityRuleCreate struct {
	config
	mutation *AvailabilityRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityRuleCreate) SetCreatedAt(v time.Time) *AvailabilityRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityRuleCreate) SetUpdatedAt(v time.Time) *AvailabilityRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AvailabilityRuleCreate) SetDoctorID(v uuid.UUID) *AvailabilityRuleCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *AvailabilityRuleCreate) SetDayOfWeek(v int) *AvailabilityRuleCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AvailabilityRuleCreate) SetStartTime(v string) *AvailabilityRuleCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AvailabilityRuleCreate) SetEndTime(v string) *AvailabilityRuleCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (_c *AvailabilityRuleCreate) SetSlotDurationMinutes(v int) *AvailabilityRuleCreate {
	_c.mutation.SetSlotDurationMinutes(v)
	return _c
}

// SetNillableSlotDurationMinutes sets the "slot_duration_minutes" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableSlotDurationMinutes(v *int) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetSlotDurationMinutes(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AvailabilityRuleCreate) SetIsActive(v bool) *AvailabilityRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableIsActive(v *bool) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityRuleCreate) SetID(v uuid.UUID) *AvailabilityRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityRuleCreate) SetNillableID(v *uuid.UUID) *AvailabilityRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *AvailabilityRuleCreate) SetDoctor(v *Doctor) *AvailabilityRuleCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_c *AvailabilityRuleCreate) Mutation() *AvailabilityRuleMutation {
	return _c.mutation
}

// Save creates the AvailabilityRule in the database.
func (_c *AvailabilityRuleCreate) Save(ctx context.Context) (*AvailabilityRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityRuleCreate) SaveX(ctx context.Context) *AvailabilityRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilityrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilityrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SlotDurationMinutes(); !ok {
		v := availabilityrule.DefaultSlotDurationMinutes
		_c.mutation.SetSlotDurationMinutes(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := availabilityrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilityrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilityRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilityRule.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "AvailabilityRule.doctor_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "AvailabilityRule.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := availabilityrule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "AvailabilityRule.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := availabilityrule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "AvailabilityRule.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := availabilityrule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotDurationMinutes(); !ok {
		return &ValidationError{Name: "slot_duration_minutes", err: errors.New(`repo: missing required field "AvailabilityRule.slot_duration_minutes"`)}
	}
	if v, ok := _c.mutation.SlotDurationMinutes(); ok {
		if err := availabilityrule.SlotDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "slot_duration_minutes", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.slot_duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "AvailabilityRule.is_active"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "AvailabilityRule.doctor"`)}
	}
	return nil
}

func (_c *AvailabilityRuleCreate) sqlSave(ctx context.Context) (*AvailabilityRule, error) {
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

func (_c *AvailabilityRuleCreate) createSpec() (*AvailabilityRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilityRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilityrule.Table, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilityrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(availabilityrule.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(availabilityrule.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.SlotDurationMinutes(); ok {
		_spec.SetField(availabilityrule.FieldSlotDurationMinutes, field.TypeInt, value)
		_node.SlotDurationMinutes = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(availabilityrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   availabilityrule.DoctorTable,
			Columns: []string{availabilityrule.DoctorColumn},
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
//	client.AvailabilityRule.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityRuleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityRuleCreate) OnConflict(opts ...sql.ConflictOption) *AvailabilityRuleUpsertOne {
	_c.conflict = opts
	return &AvailabilityRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AvailabilityRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityRuleCreate) OnConflictColumns(columns ...string) *AvailabilityRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityRuleUpsertOne{
		create: _c,
	}
}

type (
	// AvailabilityRuleUpsertOne is the builder for "upsert"-ing
	//  one AvailabilityRule node.
	AvailabilityRuleUpsertOne struct {
		create *AvailabilityRuleCreate
	}

	// AvailabilityRuleUpsert is the "OnConflict" setter.
	AvailabilityRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityRuleUpsert) SetUpdatedAt(v time.Time) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateUpdatedAt() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *AvailabilityRuleUpsert) SetDoctorID(v uuid.UUID) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateDoctorID() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldDoctorID)
	return u
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityRuleUpsert) SetDayOfWeek(v int) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldDayOfWeek, v)
	return u
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateDayOfWeek() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldDayOfWeek)
	return u
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *AvailabilityRuleUpsert) AddDayOfWeek(v int) *AvailabilityRuleUpsert {
	u.Add(availabilityrule.FieldDayOfWeek, v)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AvailabilityRuleUpsert) SetStartTime(v string) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateStartTime() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *AvailabilityRuleUpsert) SetEndTime(v string) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateEndTime() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldEndTime)
	return u
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (u *AvailabilityRuleUpsert) SetSlotDurationMinutes(v int) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldSlotDurationMinutes, v)
	return u
}

// UpdateSlotDurationMinutes sets the "slot_duration_minutes" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateSlotDurationMinutes() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldSlotDurationMinutes)
	return u
}

// AddSlotDurationMinutes adds v to the "slot_duration_minutes" field.
func (u *AvailabilityRuleUpsert) AddSlotDurationMinutes(v int) *AvailabilityRuleUpsert {
	u.Add(availabilityrule.FieldSlotDurationMinutes, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityRuleUpsert) SetIsActive(v bool) *AvailabilityRuleUpsert {
	u.Set(availabilityrule.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityRuleUpsert) UpdateIsActive() *AvailabilityRuleUpsert {
	u.SetExcluded(availabilityrule.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AvailabilityRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availabilityrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityRuleUpsertOne) UpdateNewValues() *AvailabilityRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(availabilityrule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(availabilityrule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AvailabilityRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AvailabilityRuleUpsertOne) Ignore() *AvailabilityRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityRuleUpsertOne) DoNothing() *AvailabilityRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityRuleCreate.OnConflict
// documentation for more info.
func (u *AvailabilityRuleUpsertOne) Update(set func(*AvailabilityRuleUpsert)) *AvailabilityRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityRuleUpsertOne) SetUpdatedAt(v time.Time) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateUpdatedAt() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AvailabilityRuleUpsertOne) SetDoctorID(v uuid.UUID) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateDoctorID() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityRuleUpsertOne) SetDayOfWeek(v int) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetDayOfWeek(v)
	})
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *AvailabilityRuleUpsertOne) AddDayOfWeek(v int) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.AddDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateDayOfWeek() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AvailabilityRuleUpsertOne) SetStartTime(v string) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateStartTime() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AvailabilityRuleUpsertOne) SetEndTime(v string) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateEndTime() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateEndTime()
	})
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (u *AvailabilityRuleUpsertOne) SetSlotDurationMinutes(v int) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetSlotDurationMinutes(v)
	})
}

// AddSlotDurationMinutes adds v to the "slot_duration_minutes" field.
func (u *AvailabilityRuleUpsertOne) AddSlotDurationMinutes(v int) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.AddSlotDurationMinutes(v)
	})
}

// UpdateSlotDurationMinutes sets the "slot_duration_minutes" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateSlotDurationMinutes() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateSlotDurationMinutes()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityRuleUpsertOne) SetIsActive(v bool) *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertOne) UpdateIsActive() *AvailabilityRuleUpsertOne {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AvailabilityRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AvailabilityRuleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AvailabilityRuleUpsertOne.ID is not supported by MySQL driver. Use AvailabilityRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AvailabilityRuleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AvailabilityRuleCreateBulk is the builder for creating many AvailabilityRule entities in bulk.
type AvailabilityRuleCreateBulk struct {
	config
	err      error
	builders []*AvailabilityRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the AvailabilityRule entities in the database.
func (_c *AvailabilityRuleCreateBulk) Save(ctx context.Context) ([]*AvailabilityRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilityRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityRuleMutation)
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
func (_c *AvailabilityRuleCreateBulk) SaveX(ctx context.Context) []*AvailabilityRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AvailabilityRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityRuleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *AvailabilityRuleUpsertBulk {
	_c.conflict = opts
	return &AvailabilityRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AvailabilityRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityRuleCreateBulk) OnConflictColumns(columns ...string) *AvailabilityRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityRuleUpsertBulk{
		create: _c,
	}
}

// AvailabilityRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of AvailabilityRule nodes.
type AvailabilityRuleUpsertBulk struct {
	create *AvailabilityRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AvailabilityRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availabilityrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityRuleUpsertBulk) UpdateNewValues() *AvailabilityRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(availabilityrule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(availabilityrule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AvailabilityRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AvailabilityRuleUpsertBulk) Ignore() *AvailabilityRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityRuleUpsertBulk) DoNothing() *AvailabilityRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityRuleCreateBulk.OnConflict
// documentation for more info.
func (u *AvailabilityRuleUpsertBulk) Update(set func(*AvailabilityRuleUpsert)) *AvailabilityRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityRuleUpsertBulk) SetUpdatedAt(v time.Time) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateUpdatedAt() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AvailabilityRuleUpsertBulk) SetDoctorID(v uuid.UUID) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateDoctorID() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityRuleUpsertBulk) SetDayOfWeek(v int) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetDayOfWeek(v)
	})
}

// AddDayOfWeek adds v to the "day_of_week" field.
func (u *AvailabilityRuleUpsertBulk) AddDayOfWeek(v int) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.AddDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateDayOfWeek() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AvailabilityRuleUpsertBulk) SetStartTime(v string) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateStartTime() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AvailabilityRuleUpsertBulk) SetEndTime(v string) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateEndTime() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateEndTime()
	})
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (u *AvailabilityRuleUpsertBulk) SetSlotDurationMinutes(v int) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetSlotDurationMinutes(v)
	})
}

// AddSlotDurationMinutes adds v to the "slot_duration_minutes" field.
func (u *AvailabilityRuleUpsertBulk) AddSlotDurationMinutes(v int) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.AddSlotDurationMinutes(v)
	})
}

// UpdateSlotDurationMinutes sets the "slot_duration_minutes" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateSlotDurationMinutes() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateSlotDurationMinutes()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityRuleUpsertBulk) SetIsActive(v bool) *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityRuleUpsertBulk) UpdateIsActive() *AvailabilityRuleUpsertBulk {
	return u.Update(func(s *AvailabilityRuleUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AvailabilityRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AvailabilityRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
