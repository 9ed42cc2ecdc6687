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
	"github.com/caresetu/caresetu_backend/internal/repo/appointment"
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/caresetu/caresetu_backend/internal/repo/timeoff"
	"github.com/caresetu/caresetu_backend/internal/repo/user"
	"github.com/google/uuid"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorCreate) SetUserID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *DoctorCreate) SetSpecialization(v string) *DoctorCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *DoctorCreate) SetCity(v string) *DoctorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCity(v *string) *DoctorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetExperienceYears sets the "experience_years" field.
func (_c *DoctorCreate) SetExperienceYears(v int) *DoctorCreate {
	_c.mutation.SetExperienceYears(v)
	return _c
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableExperienceYears(v *int) *DoctorCreate {
	if v != nil {
		_c.SetExperienceYears(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *DoctorCreate) SetConsultationFee(v int) *DoctorCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableConsultationFee(v *int) *DoctorCreate {
	if v != nil {
		_c.SetConsultationFee(*v)
	}
	return _c
}

// SetServices sets the "services" field.
func (_c *DoctorCreate) SetServices(v []string) *DoctorCreate {
	_c.mutation.SetServices(v)
	return _c
}

// SetTimeZone sets the "time_zone" field.
func (_c *DoctorCreate) SetTimeZone(v string) *DoctorCreate {
	_c.mutation.SetTimeZone(v)
	return _c
}

// SetNillableTimeZone sets the "time_zone" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTimeZone(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTimeZone(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DoctorCreate) SetIsActive(v bool) *DoctorCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableIsActive(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DoctorCreate) SetUser(v *User) *DoctorCreate {
	return _c.SetUserID(v.ID)
}

// AddAvailabilityRuleIDs adds the "availability_rules" edge to the AvailabilityRule entity by IDs.
func (_c *DoctorCreate) AddAvailabilityRuleIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddAvailabilityRuleIDs(ids...)
	return _c
}

// AddAvailabilityRules adds the "availability_rules" edges to the AvailabilityRule entity.
func (_c *DoctorCreate) AddAvailabilityRules(v ...*AvailabilityRule) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAvailabilityRuleIDs(ids...)
}

// AddTimeOffIDs adds the "time_offs" edge to the TimeOff entity by IDs.
func (_c *DoctorCreate) AddTimeOffIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddTimeOffIDs(ids...)
	return _c
}

// AddTimeOffs adds the "time_offs" edges to the TimeOff entity.
func (_c *DoctorCreate) AddTimeOffs(v ...*TimeOff) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimeOffIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_c *DoctorCreate) AddAppointmentIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddAppointmentIDs(ids...)
	return _c
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_c *DoctorCreate) AddAppointments(v ...*Appointment) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppointmentIDs(ids...)
}

// AddVerificationIDs adds the "verifications" edge to the DoctorVerification entity by IDs.
func (_c *DoctorCreate) AddVerificationIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddVerificationIDs(ids...)
	return _c
}

// AddVerifications adds the "verifications" edges to the DoctorVerification entity.
func (_c *DoctorCreate) AddVerifications(v ...*DoctorVerification) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		v := doctor.DefaultExperienceYears
		_c.mutation.SetExperienceYears(v)
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		v := doctor.DefaultConsultationFee
		_c.mutation.SetConsultationFee(v)
	}
	if _, ok := _c.mutation.TimeZone(); !ok {
		v := doctor.DefaultTimeZone
		_c.mutation.SetTimeZone(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := doctor.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Doctor.user_id"`)}
	}
	if _, ok := _c.mutation.Specialization(); !ok {
		return &ValidationError{Name: "specialization", err: errors.New(`repo: missing required field "Doctor.specialization"`)}
	}
	if v, ok := _c.mutation.Specialization(); ok {
		if err := doctor.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialization": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExperienceYears(); !ok {
		return &ValidationError{Name: "experience_years", err: errors.New(`repo: missing required field "Doctor.experience_years"`)}
	}
	if v, ok := _c.mutation.ExperienceYears(); ok {
		if err := doctor.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`repo: validator failed for field "Doctor.experience_years": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		return &ValidationError{Name: "consultation_fee", err: errors.New(`repo: missing required field "Doctor.consultation_fee"`)}
	}
	if v, ok := _c.mutation.ConsultationFee(); ok {
		if err := doctor.ConsultationFeeValidator(v); err != nil {
			return &ValidationError{Name: "consultation_fee", err: fmt.Errorf(`repo: validator failed for field "Doctor.consultation_fee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeZone(); !ok {
		return &ValidationError{Name: "time_zone", err: errors.New(`repo: missing required field "Doctor.time_zone"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Doctor.is_active"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Doctor.user"`)}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
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

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(doctor.FieldSpecialization, field.TypeString, value)
		_node.Specialization = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.ExperienceYears(); ok {
		_spec.SetField(doctor.FieldExperienceYears, field.TypeInt, value)
		_node.ExperienceYears = value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt, value)
		_node.ConsultationFee = value
	}
	if value, ok := _c.mutation.Services(); ok {
		_spec.SetField(doctor.FieldServices, field.TypeJSON, value)
		_node.Services = value
	}
	if value, ok := _c.mutation.TimeZone(); ok {
		_spec.SetField(doctor.FieldTimeZone, field.TypeString, value)
		_node.TimeZone = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(doctor.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AvailabilityRulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TimeOffsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppointmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsert) SetUserID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUserID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUserID)
	return u
}

// SetSpecialization sets the "specialization" field.
func (u *DoctorUpsert) SetSpecialization(v string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialization, v)
	return u
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialization() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialization)
	return u
}

// SetCity sets the "city" field.
func (u *DoctorUpsert) SetCity(v string) *DoctorUpsert {
	u.Set(doctor.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateCity() *DoctorUpsert {
	u.SetExcluded(doctor.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *DoctorUpsert) ClearCity() *DoctorUpsert {
	u.SetNull(doctor.FieldCity)
	return u
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsert) SetExperienceYears(v int) *DoctorUpsert {
	u.Set(doctor.FieldExperienceYears, v)
	return u
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateExperienceYears() *DoctorUpsert {
	u.SetExcluded(doctor.FieldExperienceYears)
	return u
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsert) AddExperienceYears(v int) *DoctorUpsert {
	u.Add(doctor.FieldExperienceYears, v)
	return u
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsert) SetConsultationFee(v int) *DoctorUpsert {
	u.Set(doctor.FieldConsultationFee, v)
	return u
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateConsultationFee() *DoctorUpsert {
	u.SetExcluded(doctor.FieldConsultationFee)
	return u
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsert) AddConsultationFee(v int) *DoctorUpsert {
	u.Add(doctor.FieldConsultationFee, v)
	return u
}

// SetServices sets the "services" field.
func (u *DoctorUpsert) SetServices(v []string) *DoctorUpsert {
	u.Set(doctor.FieldServices, v)
	return u
}

// UpdateServices sets the "services" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateServices() *DoctorUpsert {
	u.SetExcluded(doctor.FieldServices)
	return u
}

// ClearServices clears the value of the "services" field.
func (u *DoctorUpsert) ClearServices() *DoctorUpsert {
	u.SetNull(doctor.FieldServices)
	return u
}

// SetTimeZone sets the "time_zone" field.
func (u *DoctorUpsert) SetTimeZone(v string) *DoctorUpsert {
	u.Set(doctor.FieldTimeZone, v)
	return u
}

// UpdateTimeZone sets the "time_zone" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateTimeZone() *DoctorUpsert {
	u.SetExcluded(doctor.FieldTimeZone)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *DoctorUpsert) SetIsActive(v bool) *DoctorUpsert {
	u.Set(doctor.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateIsActive() *DoctorUpsert {
	u.SetExcluded(doctor.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertOne) SetUserID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUserID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *DoctorUpsertOne) SetSpecialization(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialization() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialization()
	})
}

// SetCity sets the "city" field.
func (u *DoctorUpsertOne) SetCity(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateCity() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *DoctorUpsertOne) ClearCity() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearCity()
	})
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsertOne) SetExperienceYears(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetExperienceYears(v)
	})
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsertOne) AddExperienceYears(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddExperienceYears(v)
	})
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateExperienceYears() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateExperienceYears()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsertOne) SetConsultationFee(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsertOne) AddConsultationFee(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateConsultationFee() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetServices sets the "services" field.
func (u *DoctorUpsertOne) SetServices(v []string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetServices(v)
	})
}

// UpdateServices sets the "services" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateServices() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateServices()
	})
}

// ClearServices clears the value of the "services" field.
func (u *DoctorUpsertOne) ClearServices() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearServices()
	})
}

// SetTimeZone sets the "time_zone" field.
func (u *DoctorUpsertOne) SetTimeZone(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTimeZone(v)
	})
}

// UpdateTimeZone sets the "time_zone" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateTimeZone() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTimeZone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *DoctorUpsertOne) SetIsActive(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateIsActive() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
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
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertBulk) SetUserID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUserID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// SetSpecialization sets the "specialization" field.
func (u *DoctorUpsertBulk) SetSpecialization(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialization(v)
	})
}

// UpdateSpecialization sets the "specialization" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialization() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialization()
	})
}

// SetCity sets the "city" field.
func (u *DoctorUpsertBulk) SetCity(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateCity() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *DoctorUpsertBulk) ClearCity() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearCity()
	})
}

// SetExperienceYears sets the "experience_years" field.
func (u *DoctorUpsertBulk) SetExperienceYears(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetExperienceYears(v)
	})
}

// AddExperienceYears adds v to the "experience_years" field.
func (u *DoctorUpsertBulk) AddExperienceYears(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddExperienceYears(v)
	})
}

// UpdateExperienceYears sets the "experience_years" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateExperienceYears() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateExperienceYears()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsertBulk) SetConsultationFee(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsertBulk) AddConsultationFee(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateConsultationFee() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetServices sets the "services" field.
func (u *DoctorUpsertBulk) SetServices(v []string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetServices(v)
	})
}

// UpdateServices sets the "services" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateServices() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateServices()
	})
}

// ClearServices clears the value of the "services" field.
func (u *DoctorUpsertBulk) ClearServices() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearServices()
	})
}

// SetTimeZone sets the "time_zone" field.
func (u *DoctorUpsertBulk) SetTimeZone(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTimeZone(v)
	})
}

// UpdateTimeZone sets the "time_zone" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateTimeZone() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTimeZone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *DoctorUpsertBulk) SetIsActive(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateIsActive() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
