package models

type ScheduleEntry struct {
	DoctorID       string  `json:"doctor_id"`
	OrganizationID string  `json:"org_id"`
	Weekday        Weekday `json:"day_of_week"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	IsActive       bool    `json:"is_active"`
}
