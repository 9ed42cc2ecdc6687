// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Doctor is the model entity for the Doctor schema.
type Doctor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Specialization holds the value of the "specialization" field.
	Specialization string `json:"specialization,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// ExperienceYears holds the value of the "experience_years" field.
	ExperienceYears int `json:"experience_years,omitempty"`
	// ConsultationFee holds the value of the "consultation_fee" field.
	ConsultationFee int `json:"consultation_fee,omitempty"`
	// Services holds the value of the "services" field.
	Services []string `json:"services,omitempty"`
	// TimeZone holds the value of the "time_zone" field.
	TimeZone string `json:"time_zone,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorQuery when eager-loading is set.
	Edges        DoctorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorEdges holds the relations/edges for other nodes in the graph.
type DoctorEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// AvailabilityRules holds the value of the availability_rules edge.
	AvailabilityRules []*AvailabilityRule `json:"availability_rules,omitempty"`
	// TimeOffs holds the value of the time_offs edge.
	TimeOffs []*TimeOff `json:"time_offs,omitempty"`
	// Appointments holds the value of the appointments edge.
	Appointments []*Appointment `json:"appointments,omitempty"`
	// Verifications holds the value of the verifications edge.
	Verifications []*DoctorVerification `json:"verifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AvailabilityRulesOrErr returns the AvailabilityRules value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) AvailabilityRulesOrErr() ([]*AvailabilityRule, error) {
	if e.loadedTypes[1] {
		return e.AvailabilityRules, nil
	}
	return nil, &NotLoadedError{edge: "availability_rules"}
}

// TimeOffsOrErr returns the TimeOffs value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) TimeOffsOrErr() ([]*TimeOff, error) {
	if e.loadedTypes[2] {
		return e.TimeOffs, nil
	}
	return nil, &NotLoadedError{edge: "time_offs"}
}

// AppointmentsOrErr returns the Appointments value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) AppointmentsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[3] {
		return e.Appointments, nil
	}
	return nil, &NotLoadedError{edge: "appointments"}
}

// VerificationsOrErr returns the Verifications value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) VerificationsOrErr() ([]*DoctorVerification, error) {
	if e.loadedTypes[4] {
		return e.Verifications, nil
	}
	return nil, &NotLoadedError{edge: "verifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Doctor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctor.FieldServices:
			values[i] = new([]byte)
		case doctor.FieldIsActive:
			values[i] = new(sql.NullBool)
		case doctor.FieldExperienceYears, doctor.FieldConsultationFee:
			values[i] = new(sql.NullInt64)
		case doctor.FieldSpecialization, doctor.FieldCity, doctor.FieldTimeZone:
			values[i] = new(sql.NullString)
		case doctor.FieldCreatedAt, doctor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctor.FieldID, doctor.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Doctor fields.
func (_m *Doctor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctor.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case doctor.FieldSpecialization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialization", values[i])
			} else if value.Valid {
				_m.Specialization = value.String
			}
		case doctor.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case doctor.FieldExperienceYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience_years", values[i])
			} else if value.Valid {
				_m.ExperienceYears = int(value.Int64)
			}
		case doctor.FieldConsultationFee:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_fee", values[i])
			} else if value.Valid {
				_m.ConsultationFee = int(value.Int64)
			}
		case doctor.FieldServices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field services", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Services); err != nil {
					return fmt.Errorf("unmarshal field services: %w", err)
				}
			}
		case doctor.FieldTimeZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_zone", values[i])
			} else if value.Valid {
				_m.TimeZone = value.String
			}
		case doctor.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Doctor.
// This includes values selected through modifiers, order, etc.
func (_m *Doctor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Doctor entity.
func (_m *Doctor) QueryUser() *UserQuery {
	return NewDoctorClient(_m.config).QueryUser(_m)
}

// QueryAvailabilityRules queries the "availability_rules" edge of the Doctor entity.
func (_m *Doctor) QueryAvailabilityRules() *AvailabilityRuleQuery {
	return NewDoctorClient(_m.config).QueryAvailabilityRules(_m)
}

// QueryTimeOffs queries the "time_offs" edge of the Doctor entity.
func (_m *Doctor) QueryTimeOffs() *TimeOffQuery {
	return NewDoctorClient(_m.config).QueryTimeOffs(_m)
}

// QueryAppointments queries the "appointments" edge of the Doctor entity.
func (_m *Doctor) QueryAppointments() *AppointmentQuery {
	return NewDoctorClient(_m.config).QueryAppointments(_m)
}

// QueryVerifications queries the "verifications" edge of the Doctor entity.
func (_m *Doctor) QueryVerifications() *DoctorVerificationQuery {
	return NewDoctorClient(_m.config).QueryVerifications(_m)
}

// Update returns a builder for updating this Doctor.
// Note that you need to call Doctor.Unwrap() before calling this method if this Doctor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Doctor) Update() *DoctorUpdateOne {
	return NewDoctorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Doctor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Doctor) Unwrap() *Doctor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Doctor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Doctor) String() string {
	var builder strings.Builder
	builder.WriteString("Doctor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("specialization=")
	builder.WriteString(_m.Specialization)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("experience_years=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperienceYears))
	builder.WriteString(", ")
	builder.WriteString("consultation_fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsultationFee))
	builder.WriteString(", ")
	builder.WriteString("services=")
	builder.WriteString(fmt.Sprintf("%v", _m.Services))
	builder.WriteString(", ")
	builder.WriteString("time_zone=")
	builder.WriteString(_m.TimeZone)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// Doctors is a parsable slice of Doctor.
type Doctors []*Doctor
