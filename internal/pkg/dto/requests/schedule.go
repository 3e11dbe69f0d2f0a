package requests

type UpsertSchedule struct {
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
	IsActive  *bool  `json:"is_active"`
}

type UpsertFee struct {
	RecurringFee int64 `json:"recurring_fee" validate:"min=0"`
	DefaultFee   int64 `json:"default_fee" validate:"min=0"`
	EmergencyFee int64 `json:"emergency_fee" validate:"min=0"`
}

type UpdateDoctorProfile struct {
	Name            string `json:"name" validate:"required,max=200"`
	Speciality      string `json:"speciality" validate:"required,max=100"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
	Qualification   string `json:"qualification" validate:"max=200"`
	Bio             string `json:"bio" validate:"max=2000"`
	ExperienceYears int    `json:"experience_years" validate:"min=0,max=80"`
}
