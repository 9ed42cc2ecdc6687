// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/google/uuid"
)

// AvailabilityRule is the model entity for the AvailabilityRule schema.
type AvailabilityRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DoctorID holds the value of the "doctor_id" field.
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// DayOfWeek holds the value of the "day_of_week" field.
	DayOfWeek int `json:"day_of_week,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// SlotDurationMinutes holds the value of the "slot_duration_minutes" field.
	SlotDurationMinutes int `json:"slot_duration_minutes,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AvailabilityRuleQuery when eager-loading is set.
	Edges        AvailabilityRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AvailabilityRuleEdges holds the relations/edges for other nodes in the graph.
type AvailabilityRuleEdges struct {
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AvailabilityRuleEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilityRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilityrule.FieldIsActive:
			values[i] = new(sql.NullBool)
		case availabilityrule.FieldDayOfWeek, availabilityrule.FieldSlotDurationMinutes:
			values[i] = new(sql.NullInt64)
		case availabilityrule.FieldStartTime, availabilityrule.FieldEndTime:
			values[i] = new(sql.NullString)
		case availabilityrule.FieldCreatedAt, availabilityrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case availabilityrule.FieldID, availabilityrule.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilityRule fields.
func (_m *AvailabilityRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilityrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilityrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilityrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilityrule.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case availabilityrule.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int(value.Int64)
			}
		case availabilityrule.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case availabilityrule.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case availabilityrule.FieldSlotDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_duration_minutes", values[i])
			} else if value.Valid {
				_m.SlotDurationMinutes = int(value.Int64)
			}
		case availabilityrule.FieldIsActive:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilityRule.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilityRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoctor queries the "doctor" edge of the AvailabilityRule entity.
func (_m *AvailabilityRule) QueryDoctor() *DoctorQuery {
	return NewAvailabilityRuleClient(_m.config).QueryDoctor(_m)
}

// Update returns a builder for updating this AvailabilityRule.
// Note that you need to call AvailabilityRule.Unwrap() before calling this method if this AvailabilityRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilityRule) Update() *AvailabilityRuleUpdateOne {
	return NewAvailabilityRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilityRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilityRule) Unwrap() *AvailabilityRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilityRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilityRule) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilityRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("slot_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilityRules is a parsable slice of AvailabilityRule.
type AvailabilityRules []*AvailabilityRule
