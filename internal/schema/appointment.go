package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Appointment is a booked consultation slot. The partial unique index on
// (doctor_id, start_time) over live statuses is the authoritative guard
// against double booking; application-level checks only produce nicer
// error messages for the common case.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}),
		field.UUID("patient_id", uuid.UUID{}),
		// UTC start instant of the slot.
		field.Time("start_time"),
		field.Time("end_time"),
		field.Enum("status").
			Values("pending", "confirmed", "cancelled", "completed").
			Default("confirmed"),
		field.Enum("mode").
			Values("online", "offline").
			Default("online"),
		field.String("reason").
			Optional(),
		field.String("cancellation_reason").
			Optional(),
		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("appointments").
			Field("doctor_id").
			Unique().
			Required(),
		edge.From("patient", User.Type).
			Ref("appointments").
			Field("patient_id").
			Unique().
			Required(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// Only live appointments hold the slot; cancelled and completed
		// rows don't block rebooking.
		index.Fields("doctor_id", "start_time").
			Annotations(entsql.IndexWhere("status IN ('pending', 'confirmed')")).
			Unique(),
		index.Fields("patient_id", "start_time"),
		index.Fields("status"),
	}
}
