// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/caresetu/caresetu_backend/internal/repo/appointment"
	"github.com/caresetu/caresetu_backend/internal/repo/availabilityrule"
	"github.com/caresetu/caresetu_backend/internal/repo/doctor"
	"github.com/caresetu/caresetu_backend/internal/repo/doctorverification"
	"github.com/caresetu/caresetu_backend/internal/repo/notification"
	"github.com/caresetu/caresetu_backend/internal/repo/timeoff"
	"github.com/caresetu/caresetu_backend/internal/repo/user"
	"github.com/caresetu/caresetu_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	availabilityruleMixin := schema.AvailabilityRule{}.Mixin()
	availabilityruleMixinFields0 := availabilityruleMixin[0].Fields()
	_ = availabilityruleMixinFields0
	availabilityruleMixinFields1 := availabilityruleMixin[1].Fields()
	_ = availabilityruleMixinFields1
	availabilityruleFields := schema.AvailabilityRule{}.Fields()
	_ = availabilityruleFields
	// availabilityruleDescCreatedAt is the schema descriptor for created_at field.
	availabilityruleDescCreatedAt := availabilityruleMixinFields1[0].Descriptor()
	// availabilityrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityrule.DefaultCreatedAt = availabilityruleDescCreatedAt.Default.(func() time.Time)
	// availabilityruleDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityruleDescUpdatedAt := availabilityruleMixinFields1[1].Descriptor()
	// availabilityrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityrule.DefaultUpdatedAt = availabilityruleDescUpdatedAt.Default.(func() time.Time)
	// availabilityrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityrule.UpdateDefaultUpdatedAt = availabilityruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityruleDescDayOfWeek is the schema descriptor for day_of_week field.
	availabilityruleDescDayOfWeek := availabilityruleFields[1].Descriptor()
	// availabilityrule.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	availabilityrule.DayOfWeekValidator = func() func(int) error {
		validators := availabilityruleDescDayOfWeek.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day_of_week int) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityruleDescStartTime is the schema descriptor for start_time field.
	availabilityruleDescStartTime := availabilityruleFields[2].Descriptor()
	// availabilityrule.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	availabilityrule.StartTimeValidator = availabilityruleDescStartTime.Validators[0].(func(string) error)
	// availabilityruleDescEndTime is the schema descriptor for end_time field.
	availabilityruleDescEndTime := availabilityruleFields[3].Descriptor()
	// availabilityrule.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	availabilityrule.EndTimeValidator = availabilityruleDescEndTime.Validators[0].(func(string) error)
	// availabilityruleDescSlotDurationMinutes is the schema descriptor for slot_duration_minutes field.
	availabilityruleDescSlotDurationMinutes := availabilityruleFields[4].Descriptor()
	// availabilityrule.DefaultSlotDurationMinutes holds the default value on creation for the slot_duration_minutes field.
	availabilityrule.DefaultSlotDurationMinutes = availabilityruleDescSlotDurationMinutes.Default.(int)
	// availabilityrule.SlotDurationMinutesValidator is a validator for the "slot_duration_minutes" field. It is called by the builders before save.
	availabilityrule.SlotDurationMinutesValidator = func() func(int) error {
		validators := availabilityruleDescSlotDurationMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(slot_duration_minutes int) error {
			for _, fn := range fns {
				if err := fn(slot_duration_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityruleDescIsActive is the schema descriptor for is_active field.
	availabilityruleDescIsActive := availabilityruleFields[5].Descriptor()
	// availabilityrule.DefaultIsActive holds the default value on creation for the is_active field.
	availabilityrule.DefaultIsActive = availabilityruleDescIsActive.Default.(bool)
	// availabilityruleDescID is the schema descriptor for id field.
	availabilityruleDescID := availabilityruleMixinFields0[0].Descriptor()
	// availabilityrule.DefaultID holds the default value on creation for the id field.
	availabilityrule.DefaultID = availabilityruleDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescSpecialization is the schema descriptor for specialization field.
	doctorDescSpecialization := doctorFields[1].Descriptor()
	// doctor.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	doctor.SpecializationValidator = doctorDescSpecialization.Validators[0].(func(string) error)
	// doctorDescExperienceYears is the schema descriptor for experience_years field.
	doctorDescExperienceYears := doctorFields[3].Descriptor()
	// doctor.DefaultExperienceYears holds the default value on creation for the experience_years field.
	doctor.DefaultExperienceYears = doctorDescExperienceYears.Default.(int)
	// doctor.ExperienceYearsValidator is a validator for the "experience_years" field. It is called by the builders before save.
	doctor.ExperienceYearsValidator = doctorDescExperienceYears.Validators[0].(func(int) error)
	// doctorDescConsultationFee is the schema descriptor for consultation_fee field.
	doctorDescConsultationFee := doctorFields[4].Descriptor()
	// doctor.DefaultConsultationFee holds the default value on creation for the consultation_fee field.
	doctor.DefaultConsultationFee = doctorDescConsultationFee.Default.(int)
	// doctor.ConsultationFeeValidator is a validator for the "consultation_fee" field. It is called by the builders before save.
	doctor.ConsultationFeeValidator = doctorDescConsultationFee.Validators[0].(func(int) error)
	// doctorDescTimeZone is the schema descriptor for time_zone field.
	doctorDescTimeZone := doctorFields[6].Descriptor()
	// doctor.DefaultTimeZone holds the default value on creation for the time_zone field.
	doctor.DefaultTimeZone = doctorDescTimeZone.Default.(string)
	// doctorDescIsActive is the schema descriptor for is_active field.
	doctorDescIsActive := doctorFields[7].Descriptor()
	// doctor.DefaultIsActive holds the default value on creation for the is_active field.
	doctor.DefaultIsActive = doctorDescIsActive.Default.(bool)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	doctorverificationMixin := schema.DoctorVerification{}.Mixin()
	doctorverificationMixinFields0 := doctorverificationMixin[0].Fields()
	_ = doctorverificationMixinFields0
	doctorverificationMixinFields1 := doctorverificationMixin[1].Fields()
	_ = doctorverificationMixinFields1
	doctorverificationFields := schema.DoctorVerification{}.Fields()
	_ = doctorverificationFields
	// doctorverificationDescCreatedAt is the schema descriptor for created_at field.
	doctorverificationDescCreatedAt := doctorverificationMixinFields1[0].Descriptor()
	// doctorverification.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorverification.DefaultCreatedAt = doctorverificationDescCreatedAt.Default.(func() time.Time)
	// doctorverificationDescUpdatedAt is the schema descriptor for updated_at field.
	doctorverificationDescUpdatedAt := doctorverificationMixinFields1[1].Descriptor()
	// doctorverification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorverification.DefaultUpdatedAt = doctorverificationDescUpdatedAt.Default.(func() time.Time)
	// doctorverification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorverification.UpdateDefaultUpdatedAt = doctorverificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorverificationDescLicenseNumber is the schema descriptor for license_number field.
	doctorverificationDescLicenseNumber := doctorverificationFields[1].Descriptor()
	// doctorverification.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	doctorverification.LicenseNumberValidator = doctorverificationDescLicenseNumber.Validators[0].(func(string) error)
	// doctorverificationDescID is the schema descriptor for id field.
	doctorverificationDescID := doctorverificationMixinFields0[0].Descriptor()
	// doctorverification.DefaultID holds the default value on creation for the id field.
	doctorverification.DefaultID = doctorverificationDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	timeoffMixin := schema.TimeOff{}.Mixin()
	timeoffMixinFields0 := timeoffMixin[0].Fields()
	_ = timeoffMixinFields0
	timeoffMixinFields1 := timeoffMixin[1].Fields()
	_ = timeoffMixinFields1
	timeoffFields := schema.TimeOff{}.Fields()
	_ = timeoffFields
	// timeoffDescCreatedAt is the schema descriptor for created_at field.
	timeoffDescCreatedAt := timeoffMixinFields1[0].Descriptor()
	// timeoff.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeoff.DefaultCreatedAt = timeoffDescCreatedAt.Default.(func() time.Time)
	// timeoffDescUpdatedAt is the schema descriptor for updated_at field.
	timeoffDescUpdatedAt := timeoffMixinFields1[1].Descriptor()
	// timeoff.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeoff.DefaultUpdatedAt = timeoffDescUpdatedAt.Default.(func() time.Time)
	// timeoff.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeoff.UpdateDefaultUpdatedAt = timeoffDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeoffDescID is the schema descriptor for id field.
	timeoffDescID := timeoffMixinFields0[0].Descriptor()
	// timeoff.DefaultID holds the default value on creation for the id field.
	timeoff.DefaultID = timeoffDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
