package responses

import "clinic-booking-service/internal/app/models"

type SearchSnapshot[T any] struct {
	Query   string `json:"query"`
	Filter  string `json:"filter,omitempty"`
	Records []T    `json:"records"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Seq     uint64 `json:"seq"`
}

type BookingSession struct {
	SessionID     string                            `json:"session_id"`
	Stage         string                            `json:"stage"`
	StageNumber   int                               `json:"stage_number"`
	Draft         models.AppointmentDraft           `json:"draft"`
	OfferedTimes  []string                          `json:"offered_times"`
	FeeAmount     int64                             `json:"fee_amount"`
	FeeFound      bool                              `json:"fee_found"`
	LastError     string                            `json:"last_error,omitempty"`
	AppointmentID string                            `json:"appointment_id,omitempty"`
	Patients      SearchSnapshot[models.PatientRef] `json:"patients"`
	Doctors       SearchSnapshot[models.DoctorRef]  `json:"doctors"`
}

type OfferedSlots struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type SubmitResult struct {
	AppointmentID string `json:"appointment_id,omitempty"`
	AppointmentAt string `json:"appointment_date"`
}

type FeeLookup struct {
	Fee   models.FeeStructure `json:"fee"`
	Found bool                `json:"found"`
}
