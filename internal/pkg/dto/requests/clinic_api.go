package requests

type DoctorSearch struct {
	Query      string
	By         string
	Speciality string
	Limit      int
	OrgID      string
}

type PatientSearch struct {
	Search string
	Limit  int
	Page   int
}

// CreateAppointment is the body of POST /appointments/create.
type CreateAppointment struct {
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	OrgID           string `json:"org_id"`
	AppointmentDate string `json:"appointment_date"`
	FeeType         string `json:"fee_type"`
	PaymentMethod   string `json:"payment_method"`
	Reason          string `json:"reason"`
}
