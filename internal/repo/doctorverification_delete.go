// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
)

// DoctorVerificationDelete is the builder for deleting a DoctorVerification entity.
type DoctorVerificationDelete struct {
	config
	hooks    []Hook
	mutation *DoctorVerificationMutation
}

// Where appends a list predicates to the DoctorVerificationDelete builder.
func (_d *DoctorVerificationDelete) Where(ps ...predicate.DoctorVerification) *DoctorVerificationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DoctorVerificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoctorVerificationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DoctorVerificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(doctorverification.Table, sqlgraph.NewFieldSpec(doctorverification.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DoctorVerificationDeleteOne is the builder for deleting a single DoctorVerification entity.
type DoctorVerificationDeleteOne struct {
	_d *DoctorVerificationDelete
}

// Where appends a list predicates to the DoctorVerificationDelete builder.
func (_d *DoctorVerificationDeleteOne) Where(ps ...predicate.DoctorVerification) *DoctorVerificationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DoctorVerificationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{doctorverification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoctorVerificationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
