// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AvailabilityRule is the predicate function for availabilityrule builders.
type AvailabilityRule func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// DoctorVerification is the predicate function for doctorverification builders.
type DoctorVerification func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// TimeOff is the predicate function for timeoff builders.
type TimeOff func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
