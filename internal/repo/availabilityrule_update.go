// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilityRuleUpdate is the builder for updating AvailabilityRule entities.
type AvailabilityRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// Where appends a list predicates to the AvailabilityRuleUpdate builder.
func (_u *AvailabilityRuleUpdate) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityRuleUpdate) SetUpdatedAt(v time.Time) *AvailabilityRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AvailabilityRuleUpdate) SetDoctorID(v uuid.UUID) *AvailabilityRuleUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableDoctorID(v *uuid.UUID) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityRuleUpdate) SetDayOfWeek(v int) *AvailabilityRuleUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableDayOfWeek(v *int) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityRuleUpdate) AddDayOfWeek(v int) *AvailabilityRuleUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityRuleUpdate) SetStartTime(v string) *AvailabilityRuleUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableStartTime(v *string) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityRuleUpdate) SetEndTime(v string) *AvailabilityRuleUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableEndTime(v *string) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (_u *AvailabilityRuleUpdate) SetSlotDurationMinutes(v int) *AvailabilityRuleUpdate {
	_u.mutation.ResetSlotDurationMinutes()
	_u.mutation.SetSlotDurationMinutes(v)
	return _u
}

// SetNillableSlotDurationMinutes sets the "slot_duration_minutes" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableSlotDurationMinutes(v *int) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetSlotDurationMinutes(*v)
	}
	return _u
}

// AddSlotDurationMinutes adds value to the "slot_duration_minutes" field.
func (_u *AvailabilityRuleUpdate) AddSlotDurationMinutes(v int) *AvailabilityRuleUpdate {
	_u.mutation.AddSlotDurationMinutes(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityRuleUpdate) SetIsActive(v bool) *AvailabilityRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityRuleUpdate) SetNillableIsActive(v *bool) *AvailabilityRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *AvailabilityRuleUpdate) SetDoctor(v *Doctor) *AvailabilityRuleUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_u *AvailabilityRuleUpdate) Mutation() *AvailabilityRuleMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *AvailabilityRuleUpdate) ClearDoctor() *AvailabilityRuleUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityRuleUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availabilityrule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := availabilityrule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := availabilityrule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotDurationMinutes(); ok {
		if err := availabilityrule.SlotDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "slot_duration_minutes", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.slot_duration_minutes": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AvailabilityRule.doctor"`)
	}
	return nil
}

func (_u *AvailabilityRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilityrule.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityrule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityrule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotDurationMinutes(); ok {
		_spec.SetField(availabilityrule.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotDurationMinutes(); ok {
		_spec.AddField(availabilityrule.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availabilityrule.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityRuleUpdateOne is the builder for updating a single AvailabilityRule entity.
type AvailabilityRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityRuleUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AvailabilityRuleUpdateOne) SetDoctorID(v uuid.UUID) *AvailabilityRuleUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityRuleUpdateOne) SetDayOfWeek(v int) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableDayOfWeek(v *int) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *AvailabilityRuleUpdateOne) AddDayOfWeek(v int) *AvailabilityRuleUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityRuleUpdateOne) SetStartTime(v string) *AvailabilityRuleUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableStartTime(v *string) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityRuleUpdateOne) SetEndTime(v string) *AvailabilityRuleUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableEndTime(v *string) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSlotDurationMinutes sets the "slot_duration_minutes" field.
func (_u *AvailabilityRuleUpdateOne) SetSlotDurationMinutes(v int) *AvailabilityRuleUpdateOne {
	_u.mutation.ResetSlotDurationMinutes()
	_u.mutation.SetSlotDurationMinutes(v)
	return _u
}

// SetNillableSlotDurationMinutes sets the "slot_duration_minutes" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableSlotDurationMinutes(v *int) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetSlotDurationMinutes(*v)
	}
	return _u
}

// AddSlotDurationMinutes adds value to the "slot_duration_minutes" field.
func (_u *AvailabilityRuleUpdateOne) AddSlotDurationMinutes(v int) *AvailabilityRuleUpdateOne {
	_u.mutation.AddSlotDurationMinutes(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityRuleUpdateOne) SetIsActive(v bool) *AvailabilityRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityRuleUpdateOne) SetNillableIsActive(v *bool) *AvailabilityRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *AvailabilityRuleUpdateOne) SetDoctor(v *Doctor) *AvailabilityRuleUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the AvailabilityRuleMutation object of the builder.
func (_u *AvailabilityRuleUpdateOne) Mutation() *AvailabilityRuleMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *AvailabilityRuleUpdateOne) ClearDoctor() *AvailabilityRuleUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the AvailabilityRuleUpdate builder.
func (_u *AvailabilityRuleUpdateOne) Where(ps ...predicate.AvailabilityRule) *AvailabilityRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityRuleUpdateOne) Select(field string, fields ...string) *AvailabilityRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityRule entity.
func (_u *AvailabilityRuleUpdateOne) Save(ctx context.Context) (*AvailabilityRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityRuleUpdateOne) SaveX(ctx context.Context) *AvailabilityRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityRuleUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availabilityrule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := availabilityrule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := availabilityrule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotDurationMinutes(); ok {
		if err := availabilityrule.SlotDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "slot_duration_minutes", err: fmt.Errorf(`repo: validator failed for field "AvailabilityRule.slot_duration_minutes": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AvailabilityRule.doctor"`)
	}
	return nil
}

func (_u *AvailabilityRuleUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availabilityrule.Table, availabilityrule.Columns, sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityrule.FieldID)
		for _, f := range fields {
			if !availabilityrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilityrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availabilityrule.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(availabilityrule.FieldDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availabilityrule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availabilityrule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotDurationMinutes(); ok {
		_spec.SetField(availabilityrule.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotDurationMinutes(); ok {
		_spec.AddField(availabilityrule.FieldSlotDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availabilityrule.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AvailabilityRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
