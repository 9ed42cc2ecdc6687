package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// NATS subject prefixes. The appointment id is appended as the last token.
	SubjectAppointmentCreated   = "caresetu.appointment.created"
	SubjectAppointmentCancelled = "caresetu.appointment.cancelled"
)
