package controllers

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/fees"
	"clinic-booking-service/internal/app/services/core/session"
	"context"
)

type ScheduleManager interface {
	List(ctx context.Context, org session.OrganizationContext, doctorID string) ([]models.ScheduleEntry, error)
	Upsert(ctx context.Context, org session.OrganizationContext, entry models.ScheduleEntry) (models.ScheduleEntry, error)
	Delete(ctx context.Context, org session.OrganizationContext, doctorID string, weekday models.Weekday) error
}

type FeeManager interface {
	Get(ctx context.Context, org session.OrganizationContext, doctorID string) (fees.Lookup, error)
	Upsert(ctx context.Context, org session.OrganizationContext, fee models.FeeStructure) (models.FeeStructure, error)
	Delete(ctx context.Context, org session.OrganizationContext, doctorID string) error
}
