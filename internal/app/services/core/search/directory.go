package search

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/dto/requests"
	"context"
	"strings"
)

const (
	FilterName       = "name"
	FilterSpeciality = "speciality"
)

func PatientFetcher(client contracts.PatientClient, limit int) FetchFunc[models.PatientRef] {
	return func(ctx context.Context, query Query) ([]models.PatientRef, error) {
		return client.Search(ctx, requests.PatientSearch{
			Search: strings.TrimSpace(query.Text),
			Limit:  limit,
			Page:   1,
		})
	}
}

// DoctorFetcher fails every request with a configuration error while org is unresolved.
func DoctorFetcher(client contracts.DoctorClient, org session.OrganizationContext, limit int) FetchFunc[models.DoctorRef] {
	return func(ctx context.Context, query Query) ([]models.DoctorRef, error) {
		orgID, err := org.ID()
		if err != nil {
			return nil, err
		}
		by := query.Filter
		if by == "" {
			by = FilterAll
		}
		params := requests.DoctorSearch{
			Query: strings.TrimSpace(query.Text),
			By:    by,
			Limit: limit,
			OrgID: orgID,
		}
		if by == FilterSpeciality {
			params.Speciality = params.Query
		}
		return client.Search(ctx, params)
	}
}
