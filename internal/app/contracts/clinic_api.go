package contracts

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/requests"
	"context"
)

type DoctorClient interface {
	Search(ctx context.Context, params requests.DoctorSearch) ([]models.DoctorRef, error)
	GetProfile(ctx context.Context, doctorID string) (*models.DoctorProfile, error)
	UpdateProfile(ctx context.Context, doctorID string, profile *models.DoctorProfile) (*models.DoctorProfile, error)
}

type PatientClient interface {
	Search(ctx context.Context, params requests.PatientSearch) ([]models.PatientRef, error)
}

type AppointmentClient interface {
	// Create returns the appointment ID when the clinic API reports one.
	Create(ctx context.Context, payload *requests.CreateAppointment) (string, error)
}

type ScheduleClient interface {
	List(ctx context.Context, doctorID, organizationID string) ([]models.ScheduleEntry, error)
	Create(ctx context.Context, entry *models.ScheduleEntry) error
	Update(ctx context.Context, compositeKey string, entry *models.ScheduleEntry) error
	Delete(ctx context.Context, compositeKey string) error
}

type FeeClient interface {
	List(ctx context.Context, doctorID, organizationID string) ([]models.FeeStructure, error)
	Create(ctx context.Context, fee *models.FeeStructure) error
	Update(ctx context.Context, compositeKey string, fee *models.FeeStructure) error
	Delete(ctx context.Context, compositeKey string) error
}

type OrganizationClient interface {
	Current(ctx context.Context) (*models.Organization, error)
}
