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
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/google/uuid"
)

// DoctorVerificationCreate is the builder for creating a DoctorVerification entity.
type DoctorVerificationCreate struct {
	config
	mutation *DoctorVerificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorVerificationCreate) SetCreatedAt(v time.Time) *DoctorVerificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableCreatedAt(v *time.Time) *DoctorVerificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorVerificationCreate) SetUpdatedAt(v time.Time) *DoctorVerificationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableUpdatedAt(v *time.Time) *DoctorVerificationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorVerificationCreate) SetDoctorID(v uuid.UUID) *DoctorVerificationCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetLicenseNumber sets the "license_number" field.
func (_c *DoctorVerificationCreate) SetLicenseNumber(v string) *DoctorVerificationCreate {
	_c.mutation.SetLicenseNumber(v)
	return _c
}

// SetDocumentURL sets the "document_url" field.
func (_c *DoctorVerificationCreate) SetDocumentURL(v string) *DoctorVerificationCreate {
	_c.mutation.SetDocumentURL(v)
	return _c
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableDocumentURL(v *string) *DoctorVerificationCreate {
	if v != nil {
		_c.SetDocumentURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DoctorVerificationCreate) SetStatus(v doctorverification.Status) *DoctorVerificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableStatus(v *doctorverification.Status) *DoctorVerificationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewNote sets the "review_note" field.
func (_c *DoctorVerificationCreate) SetReviewNote(v string) *DoctorVerificationCreate {
	_c.mutation.SetReviewNote(v)
	return _c
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableReviewNote(v *string) *DoctorVerificationCreate {
	if v != nil {
		_c.SetReviewNote(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *DoctorVerificationCreate) SetReviewedBy(v uuid.UUID) *DoctorVerificationCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableReviewedBy(v *uuid.UUID) *DoctorVerificationCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *DoctorVerificationCreate) SetReviewedAt(v time.Time) *DoctorVerificationCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableReviewedAt(v *time.Time) *DoctorVerificationCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorVerificationCreate) SetID(v uuid.UUID) *DoctorVerificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorVerificationCreate) SetNillableID(v *uuid.UUID) *DoctorVerificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *DoctorVerificationCreate) SetDoctor(v *Doctor) *DoctorVerificationCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the DoctorVerificationMutation object of the builder.
func (_c *DoctorVerificationCreate) Mutation() *DoctorVerificationMutation {
	return _c.mutation
}

// Save creates the DoctorVerification in the database.
func (_c *DoctorVerificationCreate) Save(ctx context.Context) (*DoctorVerification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorVerificationCreate) SaveX(ctx context.Context) *DoctorVerification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorVerificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorVerificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorVerificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorverification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorverification.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := doctorverification.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorverification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorVerificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorVerification.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorVerification.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorVerification.doctor_id"`)}
	}
	if _, ok := _c.mutation.LicenseNumber(); !ok {
		return &ValidationError{Name: "license_number", err: errors.New(`repo: missing required field "DoctorVerification.license_number"`)}
	}
	if v, ok := _c.mutation.LicenseNumber(); ok {
		if err := doctorverification.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "DoctorVerification.license_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "DoctorVerification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := doctorverification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DoctorVerification.status": %w`, err)}
		}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "DoctorVerification.doctor"`)}
	}
	return nil
}

func (_c *DoctorVerificationCreate) sqlSave(ctx context.Context) (*DoctorVerification, error) {
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

func (_c *DoctorVerificationCreate) createSpec() (*DoctorVerification, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorVerification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorverification.Table, sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorverification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorverification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LicenseNumber(); ok {
		_spec.SetField(doctorverification.FieldLicenseNumber, field.TypeString, value)
		_node.LicenseNumber = value
	}
	if value, ok := _c.mutation.DocumentURL(); ok {
		_spec.SetField(doctorverification.FieldDocumentURL, field.TypeString, value)
		_node.DocumentURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(doctorverification.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewNote(); ok {
		_spec.SetField(doctorverification.FieldReviewNote, field.TypeString, value)
		_node.ReviewNote = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(doctorverification.FieldReviewedBy, field.TypeUUID, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(doctorverification.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctorverification.DoctorTable,
			Columns: []string{doctorverification.DoctorColumn},
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
//	client.DoctorVerification.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorVerificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorVerificationCreate) OnConflict(opts ...sql.ConflictOption) *DoctorVerificationUpsertOne {
	_c.conflict = opts
	return &DoctorVerificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorVerification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorVerificationCreate) OnConflictColumns(columns ...string) *DoctorVerificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorVerificationUpsertOne{
		create: _c,
	}
}

type (
	// DoctorVerificationUpsertOne is the builder for "upsert"-ing
	//  one DoctorVerification node.
	DoctorVerificationUpsertOne struct {
		create *DoctorVerificationCreate
	}

	// DoctorVerificationUpsert is the "OnConflict" setter.
	DoctorVerificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorVerificationUpsert) SetUpdatedAt(v time.Time) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateUpdatedAt() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorVerificationUpsert) SetDoctorID(v uuid.UUID) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateDoctorID() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldDoctorID)
	return u
}

// SetLicenseNumber sets the "license_number" field.
func (u *DoctorVerificationUpsert) SetLicenseNumber(v string) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldLicenseNumber, v)
	return u
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateLicenseNumber() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldLicenseNumber)
	return u
}

// SetDocumentURL sets the "document_url" field.
func (u *DoctorVerificationUpsert) SetDocumentURL(v string) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldDocumentURL, v)
	return u
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateDocumentURL() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldDocumentURL)
	return u
}

// ClearDocumentURL clears the value of the "document_url" field.
func (u *DoctorVerificationUpsert) ClearDocumentURL() *DoctorVerificationUpsert {
	u.SetNull(doctorverification.FieldDocumentURL)
	return u
}

// SetStatus sets the "status" field.
func (u *DoctorVerificationUpsert) SetStatus(v doctorverification.Status) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateStatus() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldStatus)
	return u
}

// SetReviewNote sets the "review_note" field.
func (u *DoctorVerificationUpsert) SetReviewNote(v string) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldReviewNote, v)
	return u
}

// UpdateReviewNote sets the "review_note" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateReviewNote() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldReviewNote)
	return u
}

// ClearReviewNote clears the value of the "review_note" field.
func (u *DoctorVerificationUpsert) ClearReviewNote() *DoctorVerificationUpsert {
	u.SetNull(doctorverification.FieldReviewNote)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *DoctorVerificationUpsert) SetReviewedBy(v uuid.UUID) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateReviewedBy() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldReviewedBy)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *DoctorVerificationUpsert) ClearReviewedBy() *DoctorVerificationUpsert {
	u.SetNull(doctorverification.FieldReviewedBy)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *DoctorVerificationUpsert) SetReviewedAt(v time.Time) *DoctorVerificationUpsert {
	u.Set(doctorverification.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *DoctorVerificationUpsert) UpdateReviewedAt() *DoctorVerificationUpsert {
	u.SetExcluded(doctorverification.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *DoctorVerificationUpsert) ClearReviewedAt() *DoctorVerificationUpsert {
	u.SetNull(doctorverification.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DoctorVerification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorverification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorVerificationUpsertOne) UpdateNewValues() *DoctorVerificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctorverification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctorverification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorVerification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorVerificationUpsertOne) Ignore() *DoctorVerificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorVerificationUpsertOne) DoNothing() *DoctorVerificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorVerificationCreate.OnConflict
// documentation for more info.
func (u *DoctorVerificationUpsertOne) Update(set func(*DoctorVerificationUpsert)) *DoctorVerificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorVerificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorVerificationUpsertOne) SetUpdatedAt(v time.Time) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateUpdatedAt() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorVerificationUpsertOne) SetDoctorID(v uuid.UUID) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateDoctorID() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *DoctorVerificationUpsertOne) SetLicenseNumber(v string) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateLicenseNumber() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateLicenseNumber()
	})
}

// SetDocumentURL sets the "document_url" field.
func (u *DoctorVerificationUpsertOne) SetDocumentURL(v string) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetDocumentURL(v)
	})
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateDocumentURL() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateDocumentURL()
	})
}

// ClearDocumentURL clears the value of the "document_url" field.
func (u *DoctorVerificationUpsertOne) ClearDocumentURL() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearDocumentURL()
	})
}

// SetStatus sets the "status" field.
func (u *DoctorVerificationUpsertOne) SetStatus(v doctorverification.Status) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateStatus() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewNote sets the "review_note" field.
func (u *DoctorVerificationUpsertOne) SetReviewNote(v string) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetReviewNote(v)
	})
}

// UpdateReviewNote sets the "review_note" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateReviewNote() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateReviewNote()
	})
}

// ClearReviewNote clears the value of the "review_note" field.
func (u *DoctorVerificationUpsertOne) ClearReviewNote() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearReviewNote()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *DoctorVerificationUpsertOne) SetReviewedBy(v uuid.UUID) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateReviewedBy() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *DoctorVerificationUpsertOne) ClearReviewedBy() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *DoctorVerificationUpsertOne) SetReviewedAt(v time.Time) *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *DoctorVerificationUpsertOne) UpdateReviewedAt() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *DoctorVerificationUpsertOne) ClearReviewedAt() *DoctorVerificationUpsertOne {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *DoctorVerificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorVerificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorVerificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorVerificationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorVerificationUpsertOne.ID is not supported by MySQL driver. Use DoctorVerificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorVerificationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorVerificationCreateBulk is the builder for creating many DoctorVerification entities in bulk.
type DoctorVerificationCreateBulk struct {
	config
	err      error
	builders []*DoctorVerificationCreate
	conflict []sql.ConflictOption
}

// Save creates the DoctorVerification entities in the database.
func (_c *DoctorVerificationCreateBulk) Save(ctx context.Context) ([]*DoctorVerification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorVerification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorVerificationMutation)
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
func (_c *DoctorVerificationCreateBulk) SaveX(ctx context.Context) []*DoctorVerification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorVerificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorVerificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorVerification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorVerificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorVerificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorVerificationUpsertBulk {
	_c.conflict = opts
	return &DoctorVerificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorVerification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorVerificationCreateBulk) OnConflictColumns(columns ...string) *DoctorVerificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorVerificationUpsertBulk{
		create: _c,
	}
}

// DoctorVerificationUpsertBulk is the builder for "upsert"-ing
// a bulk of DoctorVerification nodes.
type DoctorVerificationUpsertBulk struct {
	create *DoctorVerificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DoctorVerification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorverification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorVerificationUpsertBulk) UpdateNewValues() *DoctorVerificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctorverification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctorverification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorVerification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorVerificationUpsertBulk) Ignore() *DoctorVerificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorVerificationUpsertBulk) DoNothing() *DoctorVerificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorVerificationCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorVerificationUpsertBulk) Update(set func(*DoctorVerificationUpsert)) *DoctorVerificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorVerificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorVerificationUpsertBulk) SetUpdatedAt(v time.Time) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateUpdatedAt() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorVerificationUpsertBulk) SetDoctorID(v uuid.UUID) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateDoctorID() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *DoctorVerificationUpsertBulk) SetLicenseNumber(v string) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateLicenseNumber() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateLicenseNumber()
	})
}

// SetDocumentURL sets the "document_url" field.
func (u *DoctorVerificationUpsertBulk) SetDocumentURL(v string) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetDocumentURL(v)
	})
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateDocumentURL() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateDocumentURL()
	})
}

// ClearDocumentURL clears the value of the "document_url" field.
func (u *DoctorVerificationUpsertBulk) ClearDocumentURL() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearDocumentURL()
	})
}

// SetStatus sets the "status" field.
func (u *DoctorVerificationUpsertBulk) SetStatus(v doctorverification.Status) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateStatus() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewNote sets the "review_note" field.
func (u *DoctorVerificationUpsertBulk) SetReviewNote(v string) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetReviewNote(v)
	})
}

// UpdateReviewNote sets the "review_note" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateReviewNote() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateReviewNote()
	})
}

// ClearReviewNote clears the value of the "review_note" field.
func (u *DoctorVerificationUpsertBulk) ClearReviewNote() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearReviewNote()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *DoctorVerificationUpsertBulk) SetReviewedBy(v uuid.UUID) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateReviewedBy() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *DoctorVerificationUpsertBulk) ClearReviewedBy() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *DoctorVerificationUpsertBulk) SetReviewedAt(v time.Time) *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *DoctorVerificationUpsertBulk) UpdateReviewedAt() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *DoctorVerificationUpsertBulk) ClearReviewedAt() *DoctorVerificationUpsertBulk {
	return u.Update(func(s *DoctorVerificationUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *DoctorVerificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorVerificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorVerificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorVerificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
