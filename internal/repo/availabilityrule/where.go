// Code generated by ent, DO NOT EDIT.

package availabilityrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caresetu/caresetu_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDoctorID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndTime, v))
}

// SlotDurationMinutes applies equality check predicate on the "slot_duration_minutes" field. It's identical to SlotDurationMinutesEQ.
func SlotDurationMinutes(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldSlotDurationMinutes, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContainsFold(FieldEndTime, v))
}

// SlotDurationMinutesEQ applies the EQ predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesEQ(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesNEQ applies the NEQ predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesNEQ(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesIn applies the In predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesIn(vs ...int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldSlotDurationMinutes, vs...))
}

// SlotDurationMinutesNotIn applies the NotIn predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesNotIn(vs ...int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldSlotDurationMinutes, vs...))
}

// SlotDurationMinutesGT applies the GT predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesGT(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesGTE applies the GTE predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesGTE(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesLT applies the LT predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesLT(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldSlotDurationMinutes, v))
}

// SlotDurationMinutesLTE applies the LTE predicate on the "slot_duration_minutes" field.
func SlotDurationMinutesLTE(v int) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldSlotDurationMinutes, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldIsActive, v))
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.NotPredicates(p))
}
