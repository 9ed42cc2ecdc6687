package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DoctorVerification records a credential review decision for a doctor.
type DoctorVerification struct {
	ent.Schema
}

func (DoctorVerification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (DoctorVerification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}),
		field.String("license_number").
			NotEmpty(),
		field.String("document_url").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("review_note").
			Optional(),
		field.UUID("reviewed_by", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

func (DoctorVerification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("verifications").
			Field("doctor_id").
			Unique().
			Required(),
	}
}
