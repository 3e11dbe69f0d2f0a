package contracts

import (
	"context"
	"time"
)

type AppointmentCreatedEvent struct {
	AppointmentID  string    `json:"appointment_id,omitempty"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	OrganizationID string    `json:"org_id"`
	AppointmentAt  time.Time `json:"appointment_date"`
	FeeType        string    `json:"fee_type"`
	PaymentMethod  string    `json:"payment_method"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type BookingEventPublisher interface {
	PublishAppointmentCreated(ctx context.Context, event *AppointmentCreatedEvent) error
}
