package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Doctor is the provider profile attached to a user with the doctor role.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique(),
		field.String("specialization").
			NotEmpty(),
		field.String("city").
			Optional(),
		field.Int("experience_years").
			Default(0).
			NonNegative(),
		field.Int("consultation_fee").
			Default(0).
			NonNegative(),
		field.Strings("services").
			Optional(),
		// IANA zone the doctor's weekly schedule is expressed in.
		field.String("time_zone").
			Default("Asia/Kolkata"),
		field.Bool("is_active").
			Default(true),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("doctor_profile").
			Field("user_id").
			Unique().
			Required(),
		edge.To("availability_rules", AvailabilityRule.Type),
		edge.To("time_offs", TimeOff.Type),
		edge.To("appointments", Appointment.Type),
		edge.To("verifications", DoctorVerification.Type),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specialization"),
		index.Fields("city"),
	}
}
