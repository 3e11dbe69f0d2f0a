package models

import "time"

// AppointmentDraft is the in-progress appointment owned by a booking wizard.
type AppointmentDraft struct {
	Patient       *PatientRef   `json:"patient,omitempty"`
	Doctor        *DoctorRef    `json:"doctor,omitempty"`
	Date          *time.Time    `json:"date,omitempty"`
	Time          string        `json:"time,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	FeeType       FeeType       `json:"fee_type,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

// Clone copies the draft so callers never share the wizard's pointers.
func (d AppointmentDraft) Clone() AppointmentDraft {
	out := d
	if d.Patient != nil {
		p := *d.Patient
		out.Patient = &p
	}
	if d.Doctor != nil {
		doc := *d.Doctor
		out.Doctor = &doc
	}
	if d.Date != nil {
		date := *d.Date
		out.Date = &date
	}
	return out
}

type Appointment struct {
	ID            string        `json:"id"`
	PatientID     string        `json:"patient_id"`
	DoctorID      string        `json:"doctor_id"`
	OrgID         string        `json:"org_id"`
	AppointmentAt time.Time     `json:"appointment_date"`
	FeeType       FeeType       `json:"fee_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Reason        string        `json:"reason"`
}

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
