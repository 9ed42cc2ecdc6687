package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TimeOff is a blackout interval during which a doctor's recurring
// availability is suppressed. Stored in UTC.
type TimeOff struct {
	ent.Schema
}

func (TimeOff) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (TimeOff) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}),
		field.Time("start_time"),
		field.Time("end_time"),
		field.String("reason").
			Optional(),
	}
}

func (TimeOff) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("time_offs").
			Field("doctor_id").
			Unique().
			Required(),
	}
}

func (TimeOff) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_time"),
	}
}
