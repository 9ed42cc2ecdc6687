package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AvailabilityRule is one recurring weekly working window for a doctor,
// expressed as wall-clock times in the doctor's own time zone.
type AvailabilityRule struct {
	ent.Schema
}

func (AvailabilityRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilityRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}),
		// 0 = Sunday .. 6 = Saturday, matching time.Weekday.
		field.Int("day_of_week").
			Min(0).
			Max(6),
		// "HH:MM" wall clock. end > start is enforced in the service
		// layer since ent can't express cross-field checks.
		field.String("start_time").
			Match(hhmmRe),
		field.String("end_time").
			Match(hhmmRe),
		field.Int("slot_duration_minutes").
			Min(5).
			Max(60).
			Default(15),
		field.Bool("is_active").
			Default(true),
	}
}

func (AvailabilityRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("availability_rules").
			Field("doctor_id").
			Unique().
			Required(),
	}
}

func (AvailabilityRule) Indexes() []ent.Index {
	return []ent.Index{
		// One rule per weekday per doctor.
		index.Fields("doctor_id", "day_of_week").
			Unique(),
	}
}
