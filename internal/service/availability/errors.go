package availability

import "errors"

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrInvalidTimeZone  = errors.New("invalid time zone")
	ErrInvalidStartDate = errors.New("invalid start date")
	ErrInvalidRule      = errors.New("invalid availability rule")
	ErrTimeOffNotFound  = errors.New("time off not found")
	ErrInvalidTimeOff   = errors.New("invalid time off interval")
)
