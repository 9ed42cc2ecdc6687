// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/google/uuid"
)

// DoctorVerification is the model entity for the DoctorVerification schema.
type DoctorVerification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DoctorID holds the value of the "doctor_id" field.
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// LicenseNumber holds the value of the "license_number" field.
	LicenseNumber string `json:"license_number,omitempty"`
	// DocumentURL holds the value of the "document_url" field.
	DocumentURL string `json:"document_url,omitempty"`
	// Status holds the value of the "status" field.
	Status doctorverification.Status `json:"status,omitempty"`
	// ReviewNote holds the value of the "review_note" field.
	ReviewNote string `json:"review_note,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorVerificationQuery when eager-loading is set.
	Edges        DoctorVerificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorVerificationEdges holds the relations/edges for other nodes in the graph.
type DoctorVerificationEdges struct {
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorVerificationEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DoctorVerification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctorverification.FieldReviewedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case doctorverification.FieldLicenseNumber, doctorverification.FieldDocumentURL, doctorverification.FieldStatus, doctorverification.FieldReviewNote:
			values[i] = new(sql.NullString)
		case doctorverification.FieldCreatedAt, doctorverification.FieldUpdatedAt, doctorverification.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		case doctorverification.FieldID, doctorverification.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DoctorVerification fields.
func (_m *DoctorVerification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctorverification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctorverification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctorverification.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctorverification.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case doctorverification.FieldLicenseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field license_number", values[i])
			} else if value.Valid {
				_m.LicenseNumber = value.String
			}
		case doctorverification.FieldDocumentURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_url", values[i])
			} else if value.Valid {
				_m.DocumentURL = value.String
			}
		case doctorverification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = doctorverification.Status(value.String)
			}
		case doctorverification.FieldReviewNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_note", values[i])
			} else if value.Valid {
				_m.ReviewNote = value.String
			}
		case doctorverification.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(uuid.UUID)
				*_m.ReviewedBy = *value.S.(*uuid.UUID)
			}
		case doctorverification.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DoctorVerification.
// This includes values selected through modifiers, order, etc.
func (_m *DoctorVerification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoctor queries the "doctor" edge of the DoctorVerification entity.
func (_m *DoctorVerification) QueryDoctor() *DoctorQuery {
	return NewDoctorVerificationClient(_m.config).QueryDoctor(_m)
}

// Update returns a builder for updating this DoctorVerification.
// Note that you need to call DoctorVerification.Unwrap() before calling this method if this DoctorVerification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DoctorVerification) Update() *DoctorVerificationUpdateOne {
	return NewDoctorVerificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DoctorVerification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DoctorVerification) Unwrap() *DoctorVerification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DoctorVerification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DoctorVerification) String() string {
	var builder strings.Builder
	builder.WriteString("DoctorVerification(")
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
	builder.WriteString("license_number=")
	builder.WriteString(_m.LicenseNumber)
	builder.WriteString(", ")
	builder.WriteString("document_url=")
	builder.WriteString(_m.DocumentURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("review_note=")
	builder.WriteString(_m.ReviewNote)
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DoctorVerifications is a parsable slice of DoctorVerification.
type DoctorVerifications []*DoctorVerification
