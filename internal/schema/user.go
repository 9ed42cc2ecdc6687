package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the identity subset the scheduling core needs. Account
// lifecycle and credentials are owned by a separate identity service.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("phone").
			Optional(),
		field.Enum("role").
			Values("patient", "doctor", "admin").
			Default("patient"),
		field.Bool("is_active").
			Default(true),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("doctor_profile", Doctor.Type).
			Unique(),
		edge.To("appointments", Appointment.Type),
		edge.To("notifications", Notification.Type),
	}
}
