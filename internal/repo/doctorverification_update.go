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
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorVerificationUpdate is the builder for updating DoctorVerification entities.
type DoctorVerificationUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorVerificationMutation
}

// Where appends a list predicates to the DoctorVerificationUpdate builder.
func (_u *DoctorVerificationUpdate) Where(ps ...predicate.DoctorVerification) *DoctorVerificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorVerificationUpdate) SetUpdatedAt(v time.Time) *DoctorVerificationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorVerificationUpdate) SetDoctorID(v uuid.UUID) *DoctorVerificationUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *DoctorVerificationUpdate) SetLicenseNumber(v string) *DoctorVerificationUpdate {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableLicenseNumber(v *string) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *DoctorVerificationUpdate) SetDocumentURL(v string) *DoctorVerificationUpdate {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableDocumentURL(v *string) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// ClearDocumentURL clears the value of the "document_url" field.
func (_u *DoctorVerificationUpdate) ClearDocumentURL() *DoctorVerificationUpdate {
	_u.mutation.ClearDocumentURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DoctorVerificationUpdate) SetStatus(v doctorverification.Status) *DoctorVerificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableStatus(v *doctorverification.Status) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewNote sets the "review_note" field.
func (_u *DoctorVerificationUpdate) SetReviewNote(v string) *DoctorVerificationUpdate {
	_u.mutation.SetReviewNote(v)
	return _u
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableReviewNote(v *string) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetReviewNote(*v)
	}
	return _u
}

// ClearReviewNote clears the value of the "review_note" field.
func (_u *DoctorVerificationUpdate) ClearReviewNote() *DoctorVerificationUpdate {
	_u.mutation.ClearReviewNote()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *DoctorVerificationUpdate) SetReviewedBy(v uuid.UUID) *DoctorVerificationUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableReviewedBy(v *uuid.UUID) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *DoctorVerificationUpdate) ClearReviewedBy() *DoctorVerificationUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DoctorVerificationUpdate) SetReviewedAt(v time.Time) *DoctorVerificationUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DoctorVerificationUpdate) SetNillableReviewedAt(v *time.Time) *DoctorVerificationUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DoctorVerificationUpdate) ClearReviewedAt() *DoctorVerificationUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorVerificationUpdate) SetDoctor(v *Doctor) *DoctorVerificationUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorVerificationMutation object of the builder.
func (_u *DoctorVerificationUpdate) Mutation() *DoctorVerificationMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorVerificationUpdate) ClearDoctor() *DoctorVerificationUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorVerificationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorVerificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorVerificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorVerificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorVerificationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorverification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorVerificationUpdate) check() error {
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := doctorverification.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "DoctorVerification.license_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := doctorverification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DoctorVerification.status": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorVerification.doctor"`)
	}
	return nil
}

func (_u *DoctorVerificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorverification.Table, doctorverification.Columns, sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorverification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(doctorverification.FieldLicenseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(doctorverification.FieldDocumentURL, field.TypeString, value)
	}
	if _u.mutation.DocumentURLCleared() {
		_spec.ClearField(doctorverification.FieldDocumentURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(doctorverification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewNote(); ok {
		_spec.SetField(doctorverification.FieldReviewNote, field.TypeString, value)
	}
	if _u.mutation.ReviewNoteCleared() {
		_spec.ClearField(doctorverification.FieldReviewNote, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(doctorverification.FieldReviewedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(doctorverification.FieldReviewedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(doctorverification.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(doctorverification.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorverification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorVerificationUpdateOne is the builder for updating a single DoctorVerification entity.
type DoctorVerificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorVerificationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorVerificationUpdateOne) SetUpdatedAt(v time.Time) *DoctorVerificationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorVerificationUpdateOne) SetDoctorID(v uuid.UUID) *DoctorVerificationUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *DoctorVerificationUpdateOne) SetLicenseNumber(v string) *DoctorVerificationUpdateOne {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableLicenseNumber(v *string) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *DoctorVerificationUpdateOne) SetDocumentURL(v string) *DoctorVerificationUpdateOne {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableDocumentURL(v *string) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// ClearDocumentURL clears the value of the "document_url" field.
func (_u *DoctorVerificationUpdateOne) ClearDocumentURL() *DoctorVerificationUpdateOne {
	_u.mutation.ClearDocumentURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DoctorVerificationUpdateOne) SetStatus(v doctorverification.Status) *DoctorVerificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableStatus(v *doctorverification.Status) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewNote sets the "review_note" field.
func (_u *DoctorVerificationUpdateOne) SetReviewNote(v string) *DoctorVerificationUpdateOne {
	_u.mutation.SetReviewNote(v)
	return _u
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableReviewNote(v *string) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetReviewNote(*v)
	}
	return _u
}

// ClearReviewNote clears the value of the "review_note" field.
func (_u *DoctorVerificationUpdateOne) ClearReviewNote() *DoctorVerificationUpdateOne {
	_u.mutation.ClearReviewNote()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *DoctorVerificationUpdateOne) SetReviewedBy(v uuid.UUID) *DoctorVerificationUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableReviewedBy(v *uuid.UUID) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *DoctorVerificationUpdateOne) ClearReviewedBy() *DoctorVerificationUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DoctorVerificationUpdateOne) SetReviewedAt(v time.Time) *DoctorVerificationUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DoctorVerificationUpdateOne) SetNillableReviewedAt(v *time.Time) *DoctorVerificationUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DoctorVerificationUpdateOne) ClearReviewedAt() *DoctorVerificationUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorVerificationUpdateOne) SetDoctor(v *Doctor) *DoctorVerificationUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorVerificationMutation object of the builder.
func (_u *DoctorVerificationUpdateOne) Mutation() *DoctorVerificationMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorVerificationUpdateOne) ClearDoctor() *DoctorVerificationUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the DoctorVerificationUpdate builder.
func (_u *DoctorVerificationUpdateOne) Where(ps ...predicate.DoctorVerification) *DoctorVerificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorVerificationUpdateOne) Select(field string, fields ...string) *DoctorVerificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorVerification entity.
func (_u *DoctorVerificationUpdateOne) Save(ctx context.Context) (*DoctorVerification, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorVerificationUpdateOne) SaveX(ctx context.Context) *DoctorVerification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorVerificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorVerificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorVerificationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorverification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorVerificationUpdateOne) check() error {
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := doctorverification.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "DoctorVerification.license_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := doctorverification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DoctorVerification.status": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorVerification.doctor"`)
	}
	return nil
}

func (_u *DoctorVerificationUpdateOne) sqlSave(ctx context.Context) (_node *DoctorVerification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorverification.Table, doctorverification.Columns, sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorVerification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorverification.FieldID)
		for _, f := range fields {
			if !doctorverification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorverification.FieldID {
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
		_spec.SetField(doctorverification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(doctorverification.FieldLicenseNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(doctorverification.FieldDocumentURL, field.TypeString, value)
	}
	if _u.mutation.DocumentURLCleared() {
		_spec.ClearField(doctorverification.FieldDocumentURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(doctorverification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewNote(); ok {
		_spec.SetField(doctorverification.FieldReviewNote, field.TypeString, value)
	}
	if _u.mutation.ReviewNoteCleared() {
		_spec.ClearField(doctorverification.FieldReviewNote, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(doctorverification.FieldReviewedBy, field.TypeUUID, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(doctorverification.FieldReviewedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(doctorverification.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(doctorverification.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DoctorVerification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorverification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
