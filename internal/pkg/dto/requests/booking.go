package requests

type SearchInput struct {
	Query  string `json:"query" validate:"max=100"`
	Filter string `json:"filter" validate:"omitempty,oneof=all name speciality"`
}

type SelectPatient struct {
	PatientID string `json:"patient_id" validate:"required,patient_id"`
}

type SelectDoctor struct {
	DoctorID string `json:"doctor_id" validate:"required,doctor_id"`
}

type SelectSlot struct {
	Date          string `json:"date" validate:"required,date_only"`
	Time          string `json:"time" validate:"required,hhmm"`
	FeeType       string `json:"fee_type" validate:"required,fee_type"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
	Reason        string `json:"reason" validate:"max=500"`
}
