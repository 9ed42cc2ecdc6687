// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctor type in the database.
	Label = "doctor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSpecialization holds the string denoting the specialization field in the database.
	FieldSpecialization = "specialization"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldExperienceYears holds the string denoting the experience_years field in the database.
	FieldExperienceYears = "experience_years"
	// FieldConsultationFee holds the string denoting the consultation_fee field in the database.
	FieldConsultationFee = "consultation_fee"
	// FieldServices holds the string denoting the services field in the database.
	FieldServices = "services"
	// FieldTimeZone holds the string denoting the time_zone field in the database.
	FieldTimeZone = "time_zone"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeAvailabilityRules holds the string denoting the availability_rules edge name in mutations.
	EdgeAvailabilityRules = "availability_rules"
	// EdgeTimeOffs holds the string denoting the time_offs edge name in mutations.
	EdgeTimeOffs = "time_offs"
	// EdgeAppointments holds the string denoting the appointments edge name in mutations.
	EdgeAppointments = "appointments"
	// EdgeVerifications holds the string denoting the verifications edge name in mutations.
	EdgeVerifications = "verifications"
	// Table holds the table name of the doctor in the database.
	Table = "doctors"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "doctors"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// AvailabilityRulesTable is the table that holds the availability_rules relation/edge.
	AvailabilityRulesTable = "availability_rules"
	// AvailabilityRulesInverseTable is the table name for the AvailabilityRule entity.
	// It exists in this package in order to avoid circular dependency with the "availabilityrule" package.
	AvailabilityRulesInverseTable = "availability_rules"
	// AvailabilityRulesColumn is the table column denoting the availability_rules relation/edge.
	AvailabilityRulesColumn = "doctor_id"
	// TimeOffsTable is the table that holds the time_offs relation/edge.
	TimeOffsTable = "time_offs"
	// TimeOffsInverseTable is the table name for the TimeOff entity.
	// It exists in this package in order to avoid circular dependency with the "timeoff" package.
	TimeOffsInverseTable = "time_offs"
	// TimeOffsColumn is the table column denoting the time_offs relation/edge.
	TimeOffsColumn = "doctor_id"
	// AppointmentsTable is the table that holds the appointments relation/edge.
	AppointmentsTable = "appointments"
	// AppointmentsInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentsInverseTable = "appointments"
	// AppointmentsColumn is the table column denoting the appointments relation/edge.
	AppointmentsColumn = "doctor_id"
	// VerificationsTable is the table that holds the verifications relation/edge.
	VerificationsTable = "doctor_verifications"
	// VerificationsInverseTable is the table name for the DoctorVerification entity.
	// It exists in this package in order to avoid circular dependency with the "doctorverification" package.
	VerificationsInverseTable = "doctor_verifications"
	// VerificationsColumn is the table column denoting the verifications relation/edge.
	VerificationsColumn = "doctor_id"
)

// Columns holds all SQL columns for doctor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldSpecialization,
	FieldCity,
	FieldExperienceYears,
	FieldConsultationFee,
	FieldServices,
	FieldTimeZone,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	SpecializationValidator func(string) error
	// DefaultExperienceYears holds the default value on creation for the "experience_years" field.
	DefaultExperienceYears int
	// ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	ExperienceYearsValidator func(int) error
	// DefaultConsultationFee holds the default value on creation for the "consultation_fee" field.
	DefaultConsultationFee int
	// ConsultationFeeValidator is a validator for the "consultation_fee" field. It is called by the builders before save.
	ConsultationFeeValidator func(int) error
	// DefaultTimeZone holds the default value on creation for the "time_zone" field.
	DefaultTimeZone string
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Doctor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySpecialization orders the results by the specialization field.
func BySpecialization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialization, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByExperienceYears orders the results by the experience_years field.
func ByExperienceYears(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceYears, opts...).ToFunc()
}

// ByConsultationFee orders the results by the consultation_fee field.
func ByConsultationFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationFee, opts...).ToFunc()
}

// ByTimeZone orders the results by the time_zone field.
func ByTimeZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeZone, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByAvailabilityRulesCount orders the results by availability_rules count.
func ByAvailabilityRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAvailabilityRulesStep(), opts...)
	}
}

// ByAvailabilityRules orders the results by availability_rules terms.
func ByAvailabilityRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAvailabilityRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTimeOffsCount orders the results by time_offs count.
func ByTimeOffsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTimeOffsStep(), opts...)
	}
}

// ByTimeOffs orders the results by time_offs terms.
func ByTimeOffs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTimeOffsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAppointmentsCount orders the results by appointments count.
func ByAppointmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentsStep(), opts...)
	}
}

// ByAppointments orders the results by appointments terms.
func ByAppointments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVerificationsCount orders the results by verifications count.
func ByVerificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVerificationsStep(), opts...)
	}
}

// ByVerifications orders the results by verifications terms.
func ByVerifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
func newAvailabilityRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AvailabilityRulesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AvailabilityRulesTable, AvailabilityRulesColumn),
	)
}
func newTimeOffsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TimeOffsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TimeOffsTable, TimeOffsColumn),
	)
}
func newAppointmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
	)
}
func newVerificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
	)
}
