// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/caresetu/caresetu_backend/internal/repo/appointment"
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
	"github.com/caresetu/caresetu_backend/internal/repo/timeoff"
	"github.com/caresetu/caresetu_backend/internal/repo/user"
	"github.com/google/uuid"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdate) SetSpecialization(v string) *DoctorUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialization(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *DoctorUpdate) SetCity(v string) *DoctorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableCity(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *DoctorUpdate) ClearCity() *DoctorUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdate) SetExperienceYears(v int) *DoctorUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableExperienceYears(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdate) AddExperienceYears(v int) *DoctorUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdate) SetConsultationFee(v int) *DoctorUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultationFee(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdate) AddConsultationFee(v int) *DoctorUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetServices sets the "services" field.
func (_u *DoctorUpdate) SetServices(v []string) *DoctorUpdate {
	_u.mutation.SetServices(v)
	return _u
}

// AppendServices appends value to the "services" field.
func (_u *DoctorUpdate) AppendServices(v []string) *DoctorUpdate {
	_u.mutation.AppendServices(v)
	return _u
}

// ClearServices clears the value of the "services" field.
func (_u *DoctorUpdate) ClearServices() *DoctorUpdate {
	_u.mutation.ClearServices()
	return _u
}

// SetTimeZone sets the "time_zone" field.
func (_u *DoctorUpdate) SetTimeZone(v string) *DoctorUpdate {
	_u.mutation.SetTimeZone(v)
	return _u
}

// SetNillableTimeZone sets the "time_zone" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTimeZone(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTimeZone(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DoctorUpdate) SetIsActive(v bool) *DoctorUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableIsActive(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DoctorUpdate) SetUser(v *User) *DoctorUpdate {
	return _u.SetUserID(v.ID)
}

// AddAvailabilityRuleIDs adds the "availability_rules" edge to the AvailabilityRule entity by IDs.
func (_u *DoctorUpdate) AddAvailabilityRuleIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddAvailabilityRuleIDs(ids...)
	return _u
}

// AddAvailabilityRules adds the "availability_rules" edges to the AvailabilityRule entity.
func (_u *DoctorUpdate) AddAvailabilityRules(v ...*AvailabilityRule) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAvailabilityRuleIDs(ids...)
}

// AddTimeOffIDs adds the "time_offs" edge to the TimeOff entity by IDs.
func (_u *DoctorUpdate) AddTimeOffIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddTimeOffIDs(ids...)
	return _u
}

// AddTimeOffs adds the "time_offs" edges to the TimeOff entity.
func (_u *DoctorUpdate) AddTimeOffs(v ...*TimeOff) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimeOffIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *DoctorUpdate) AddAppointmentIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *DoctorUpdate) AddAppointments(v ...*Appointment) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the DoctorVerification entity by IDs.
func (_u *DoctorUpdate) AddVerificationIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the DoctorVerification entity.
func (_u *DoctorUpdate) AddVerifications(v ...*DoctorVerification) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DoctorUpdate) ClearUser() *DoctorUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearAvailabilityRules clears all "availability_rules" edges to the AvailabilityRule entity.
func (_u *DoctorUpdate) ClearAvailabilityRules() *DoctorUpdate {
	_u.mutation.ClearAvailabilityRules()
	return _u
}

// RemoveAvailabilityRuleIDs removes the "availability_rules" edge to AvailabilityRule entities by IDs.
func (_u *DoctorUpdate) RemoveAvailabilityRuleIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveAvailabilityRuleIDs(ids...)
	return _u
}

// RemoveAvailabilityRules removes "availability_rules" edges to AvailabilityRule entities.
func (_u *DoctorUpdate) RemoveAvailabilityRules(v ...*AvailabilityRule) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAvailabilityRuleIDs(ids...)
}

// ClearTimeOffs clears all "time_offs" edges to the TimeOff entity.
func (_u *DoctorUpdate) ClearTimeOffs() *DoctorUpdate {
	_u.mutation.ClearTimeOffs()
	return _u
}

// RemoveTimeOffIDs removes the "time_offs" edge to TimeOff entities by IDs.
func (_u *DoctorUpdate) RemoveTimeOffIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveTimeOffIDs(ids...)
	return _u
}

// RemoveTimeOffs removes "time_offs" edges to TimeOff entities.
func (_u *DoctorUpdate) RemoveTimeOffs(v ...*TimeOff) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimeOffIDs(ids...)
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *DoctorUpdate) ClearAppointments() *DoctorUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *DoctorUpdate) RemoveAppointmentIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *DoctorUpdate) RemoveAppointments(v ...*Appointment) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearVerifications clears all "verifications" edges to the DoctorVerification entity.
func (_u *DoctorUpdate) ClearVerifications() *DoctorUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to DoctorVerification entities by IDs.
func (_u *DoctorUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to DoctorVerification entities.
func (_u *DoctorUpdate) RemoveVerifications(v ...*DoctorVerification) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationFee(); ok {
		if err := doctor.ConsultationFeeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_fee", err: fmt.Errorf(`repo: validator failed for field "Doctor.consultation_fee": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Doctor.user"`)
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(doctor.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Services(); ok {
		_spec.SetField(doctor.FieldServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldServices, value)
		})
	}
	if _u.mutation.ServicesCleared() {
		_spec.ClearField(doctor.FieldServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeZone(); ok {
		_spec.SetField(doctor.FieldTimeZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(doctor.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AvailabilityRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityRulesTable,
			Columns: []string{doctor.AvailabilityRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAvailabilityRulesIDs(); len(nodes) > 0 && !_u.mutation.AvailabilityRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityRulesTable,
			Columns: []string{doctor.AvailabilityRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AvailabilityRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityRulesTable,
			Columns: []string{doctor.AvailabilityRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimeOffsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.TimeOffsTable,
			Columns: []string{doctor.TimeOffsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimeOffsIDs(); len(nodes) > 0 && !_u.mutation.TimeOffsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.TimeOffsTable,
			Columns: []string{doctor.TimeOffsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimeOffsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.TimeOffsTable,
			Columns: []string{doctor.TimeOffsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AppointmentsTable,
			Columns: []string{doctor.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AppointmentsTable,
			Columns: []string{doctor.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AppointmentsTable,
			Columns: []string{doctor.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.VerificationsTable,
			Columns: []string{doctor.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.VerificationsTable,
			Columns: []string{doctor.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.VerificationsTable,
			Columns: []string{doctor.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *DoctorUpdateOne) SetSpecialization(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialization(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *DoctorUpdateOne) SetCity(v string) *DoctorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableCity(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *DoctorUpdateOne) ClearCity() *DoctorUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *DoctorUpdateOne) SetExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableExperienceYears(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *DoctorUpdateOne) AddExperienceYears(v int) *DoctorUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdateOne) SetConsultationFee(v int) *DoctorUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultationFee(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdateOne) AddConsultationFee(v int) *DoctorUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetServices sets the "services" field.
func (_u *DoctorUpdateOne) SetServices(v []string) *DoctorUpdateOne {
	_u.mutation.SetServices(v)
	return _u
}

// AppendServices appends value to the "services" field.
func (_u *DoctorUpdateOne) AppendServices(v []string) *DoctorUpdateOne {
	_u.mutation.AppendServices(v)
	return _u
}

// ClearServices clears the value of the "services" field.
func (_u *DoctorUpdateOne) ClearServices() *DoctorUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// SetTimeZone sets the "time_zone" field.
func (_u *DoctorUpdateOne) SetTimeZone(v string) *DoctorUpdateOne {
	_u.mutation.SetTimeZone(v)
	return _u
}

// SetNillableTimeZone sets the "time_zone" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTimeZone(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTimeZone(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DoctorUpdateOne) SetIsActive(v bool) *DoctorUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableIsActive(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DoctorUpdateOne) SetUser(v *User) *DoctorUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddAvailabilityRuleIDs adds the "availability_rules" edge to the AvailabilityRule entity by IDs.
func (_u *DoctorUpdateOne) AddAvailabilityRuleIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddAvailabilityRuleIDs(ids...)
	return _u
}

// AddAvailabilityRules adds the "availability_rules" edges to the AvailabilityRule entity.
func (_u *DoctorUpdateOne) AddAvailabilityRules(v ...*AvailabilityRule) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAvailabilityRuleIDs(ids...)
}

// AddTimeOffIDs adds the "time_offs" edge to the TimeOff entity by IDs.
func (_u *DoctorUpdateOne) AddTimeOffIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddTimeOffIDs(ids...)
	return _u
}

// AddTimeOffs adds the "time_offs" edges to the TimeOff entity.
func (_u *DoctorUpdateOne) AddTimeOffs(v ...*TimeOff) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimeOffIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *DoctorUpdateOne) AddAppointmentIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *DoctorUpdateOne) AddAppointments(v ...*Appointment) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the DoctorVerification entity by IDs.
func (_u *DoctorUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the DoctorVerification entity.
func (_u *DoctorUpdateOne) AddVerifications(v ...*DoctorVerification) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DoctorUpdateOne) ClearUser() *DoctorUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearAvailabilityRules clears all "availability_rules" edges to the AvailabilityRule entity.
func (_u *DoctorUpdateOne) ClearAvailabilityRules() *DoctorUpdateOne {
	_u.mutation.ClearAvailabilityRules()
	return _u
}

// RemoveAvailabilityRuleIDs removes the "availability_rules" edge to AvailabilityRule entities by IDs.
func (_u *DoctorUpdateOne) RemoveAvailabilityRuleIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveAvailabilityRuleIDs(ids...)
	return _u
}

// RemoveAvailabilityRules removes "availability_rules" edges to AvailabilityRule entities.
func (_u *DoctorUpdateOne) RemoveAvailabilityRules(v ...*AvailabilityRule) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAvailabilityRuleIDs(ids...)
}

// ClearTimeOffs clears all "time_offs" edges to the TimeOff entity.
func (_u *DoctorUpdateOne) ClearTimeOffs() *DoctorUpdateOne {
	_u.mutation.ClearTimeOffs()
	return _u
}

// RemoveTimeOffIDs removes the "time_offs" edge to TimeOff entities by IDs.
func (_u *DoctorUpdateOne) RemoveTimeOffIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveTimeOffIDs(ids...)
	return _u
}

// RemoveTimeOffs removes "time_offs" edges to TimeOff entities.
func (_u *DoctorUpdateOne) RemoveTimeOffs(v ...*TimeOff) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimeOffIDs(ids...)
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *DoctorUpdateOne) ClearAppointments() *DoctorUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *DoctorUpdateOne) RemoveAppointmentIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *DoctorUpdateOne) RemoveAppointments(v ...*Appointment) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearVerifications clears all "verifications" edges to the DoctorVerification entity.
func (_u *DoctorUpdateOne) ClearVerifications() *DoctorUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to DoctorVerification entities by IDs.
func (_u *DoctorUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to DoctorVerification entities.
func (_u *DoctorUpdateOne) RemoveVerifications(v ...*DoctorVerification) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsultationFee(); ok {
		if err := doctor.ConsultationFeeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_fee", err: fmt.Errorf(`repo: validator failed for field "Doctor.consultation_fee": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Doctor.user"`)
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(doctor.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(doctor.FieldExperienceYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Services(); ok {
		_spec.SetField(doctor.FieldServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldServices, value)
		})
	}
	if _u.mutation.ServicesCleared() {
		_spec.ClearField(doctor.FieldServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeZone(); ok {
		_spec.SetField(doctor.FieldTimeZone, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(doctor.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AvailabilityRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityRulesTable,
			Columns: []string{doctor.AvailabilityRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAvailabilityRulesIDs(); len(nodes) > 0 && !_u.mutation.AvailabilityRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityRulesTable,
			Columns: []string{doctor.AvailabilityRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AvailabilityRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AvailabilityRulesTable,
			Columns: []string{doctor.AvailabilityRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(availabilityrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimeOffsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.TimeOffsTable,
			Columns: []string{doctor.TimeOffsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimeOffsIDs(); len(nodes) > 0 && !_u.mutation.TimeOffsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.TimeOffsTable,
			Columns: []string{doctor.TimeOffsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimeOffsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.TimeOffsTable,
			Columns: []string{doctor.TimeOffsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timeoff.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AppointmentsTable,
			Columns: []string{doctor.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AppointmentsTable,
			Columns: []string{doctor.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AppointmentsTable,
			Columns: []string{doctor.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.VerificationsTable,
			Columns: []string{doctor.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.VerificationsTable,
			Columns: []string{doctor.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.VerificationsTable,
			Columns: []string{doctor.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
