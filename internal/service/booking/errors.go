package booking

import "errors"

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorNotVerified   = errors.New("doctor is not verified")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPastTime            = errors.New("appointment time is in the past")
	ErrInvalidSlot         = errors.New("invalid time slot")
	ErrSlotTaken           = errors.New("time slot is already booked")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotYetStarted       = errors.New("appointment has not started yet")
	ErrNotOwner            = errors.New("appointment belongs to another user")
	ErrInvalidInput        = errors.New("invalid booking request")
)
