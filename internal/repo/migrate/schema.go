// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "cancelled", "completed"}, Default: "confirmed"},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"online", "offline"}, Default: "online"},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_doctors_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[10]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_users_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_start_time",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[10], AppointmentsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'confirmed')",
				},
			},
			{
				Name:    "appointment_patient_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[11], AppointmentsColumns[3]},
			},
			{
				Name:    "appointment_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5]},
			},
		},
	}
	// AvailabilityRulesColumns holds the columns for the "availability_rules" table.
	AvailabilityRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "day_of_week", Type: field.TypeInt},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString},
		{Name: "slot_duration_minutes", Type: field.TypeInt, Default: 15},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// AvailabilityRulesTable holds the schema information for the "availability_rules" table.
	AvailabilityRulesTable = &schema.Table{
		Name:       "availability_rules",
		Columns:    AvailabilityRulesColumns,
		PrimaryKey: []*schema.Column{AvailabilityRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "availability_rules_doctors_availability_rules",
				Columns:    []*schema.Column{AvailabilityRulesColumns[8]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityrule_doctor_id_day_of_week",
				Unique:  true,
				Columns: []*schema.Column{AvailabilityRulesColumns[8], AvailabilityRulesColumns[3]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "specialization", Type: field.TypeString},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "experience_years", Type: field.TypeInt, Default: 0},
		{Name: "consultation_fee", Type: field.TypeInt, Default: 0},
		{Name: "services", Type: field.TypeJSON, Nullable: true},
		{Name: "time_zone", Type: field.TypeString, Default: "Asia/Kolkata"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_users_doctor_profile",
				Columns:    []*schema.Column{DoctorsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_specialization",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[3]},
			},
			{
				Name:    "doctor_city",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[4]},
			},
		},
	}
	// DoctorVerificationsColumns holds the columns for the "doctor_verifications" table.
	DoctorVerificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "license_number", Type: field.TypeString},
		{Name: "document_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "review_note", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeUUID, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// DoctorVerificationsTable holds the schema information for the "doctor_verifications" table.
	DoctorVerificationsTable = &schema.Table{
		Name:       "doctor_verifications",
		Columns:    DoctorVerificationsColumns,
		PrimaryKey: []*schema.Column{DoctorVerificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_verifications_doctors_verifications",
				Columns:    []*schema.Column{DoctorVerificationsColumns[9]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"appointment_booked", "appointment_cancelled", "system"}},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7], NotificationsColumns[6]},
			},
		},
	}
	// TimeOffsColumns holds the columns for the "time_offs" table.
	TimeOffsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// TimeOffsTable holds the schema information for the "time_offs" table.
	TimeOffsTable = &schema.Table{
		Name:       "time_offs",
		Columns:    TimeOffsColumns,
		PrimaryKey: []*schema.Column{TimeOffsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "time_offs_doctors_time_offs",
				Columns:    []*schema.Column{TimeOffsColumns[6]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timeoff_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeOffsColumns[6], TimeOffsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "doctor", "admin"}, Default: "patient"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AvailabilityRulesTable,
		DoctorsTable,
		DoctorVerificationsTable,
		NotificationsTable,
		TimeOffsTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = DoctorsTable
	AppointmentsTable.ForeignKeys[1].RefTable = UsersTable
	AvailabilityRulesTable.ForeignKeys[0].RefTable = DoctorsTable
	DoctorsTable.ForeignKeys[0].RefTable = UsersTable
	DoctorVerificationsTable.ForeignKeys[0].RefTable = DoctorsTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	TimeOffsTable.ForeignKeys[0].RefTable = DoctorsTable
}
