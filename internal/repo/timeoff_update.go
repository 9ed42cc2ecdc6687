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
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
	"github.com/caresetu/caresetu_backend/internal/repo/timeoff"
	"github.com/google/uuid"
)

// TimeOffUpdate is the builder for updating TimeOff entities.
type TimeOffUpdate struct {
	config
	hooks    []Hook
	mutation *TimeOffMutation
}

// Where appends a list predicates to the TimeOffUpdate builder.
func (_u *TimeOffUpdate) Where(ps ...predicate.TimeOff) *TimeOffUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeOffUpdate) SetUpdatedAt(v time.Time) *TimeOffUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TimeOffUpdate) SetDoctorID(v uuid.UUID) *TimeOffUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TimeOffUpdate) SetNillableDoctorID(v *uuid.UUID) *TimeOffUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimeOffUpdate) SetStartTime(v time.Time) *TimeOffUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimeOffUpdate) SetNillableStartTime(v *time.Time) *TimeOffUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimeOffUpdate) SetEndTime(v time.Time) *TimeOffUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimeOffUpdate) SetNillableEndTime(v *time.Time) *TimeOffUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TimeOffUpdate) SetReason(v string) *TimeOffUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TimeOffUpdate) SetNillableReason(v *string) *TimeOffUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *TimeOffUpdate) ClearReason() *TimeOffUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *TimeOffUpdate) SetDoctor(v *Doctor) *TimeOffUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the TimeOffMutation object of the builder.
func (_u *TimeOffUpdate) Mutation() *TimeOffMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *TimeOffUpdate) ClearDoctor() *TimeOffUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimeOffUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeOffUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimeOffUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeOffUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeOffUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timeoff.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimeOffUpdate) check() error {
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TimeOff.doctor"`)
	}
	return nil
}

func (_u *TimeOffUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeoff.Table, timeoff.Columns, sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timeoff.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timeoff.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timeoff.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(timeoff.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(timeoff.FieldReason, field.TypeString)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeoff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimeOffUpdateOne is the builder for updating a single TimeOff entity.
type TimeOffUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimeOffMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeOffUpdateOne) SetUpdatedAt(v time.Time) *TimeOffUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TimeOffUpdateOne) SetDoctorID(v uuid.UUID) *TimeOffUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TimeOffUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TimeOffUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimeOffUpdateOne) SetStartTime(v time.Time) *TimeOffUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimeOffUpdateOne) SetNillableStartTime(v *time.Time) *TimeOffUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimeOffUpdateOne) SetEndTime(v time.Time) *TimeOffUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimeOffUpdateOne) SetNillableEndTime(v *time.Time) *TimeOffUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TimeOffUpdateOne) SetReason(v string) *TimeOffUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TimeOffUpdateOne) SetNillableReason(v *string) *TimeOffUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *TimeOffUpdateOne) ClearReason() *TimeOffUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *TimeOffUpdateOne) SetDoctor(v *Doctor) *TimeOffUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the TimeOffMutation object of the builder.
func (_u *TimeOffUpdateOne) Mutation() *TimeOffMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *TimeOffUpdateOne) ClearDoctor() *TimeOffUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the TimeOffUpdate builder.
func (_u *TimeOffUpdateOne) Where(ps ...predicate.TimeOff) *TimeOffUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimeOffUpdateOne) Select(field string, fields ...string) *TimeOffUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimeOff entity.
func (_u *TimeOffUpdateOne) Save(ctx context.Context) (*TimeOff, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeOffUpdateOne) SaveX(ctx context.Context) *TimeOff {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimeOffUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeOffUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeOffUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timeoff.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimeOffUpdateOne) check() error {
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TimeOff.doctor"`)
	}
	return nil
}

func (_u *TimeOffUpdateOne) sqlSave(ctx context.Context) (_node *TimeOff, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeoff.Table, timeoff.Columns, sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TimeOff.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeoff.FieldID)
		for _, f := range fields {
			if !timeoff.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != timeoff.FieldID {
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
		_spec.SetField(timeoff.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timeoff.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timeoff.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(timeoff.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(timeoff.FieldReason, field.TypeString)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TimeOff{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeoff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
