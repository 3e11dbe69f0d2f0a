package search

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDoctorClient struct {
	params []requests.DoctorSearch
}

func (f *fakeDoctorClient) Search(ctx context.Context, params requests.DoctorSearch) ([]models.DoctorRef, error) {
	f.params = append(f.params, params)
	return []models.DoctorRef{{ID: "123e4567-e89b-12d3-a456-426614174000"}}, nil
}

func (f *fakeDoctorClient) GetProfile(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	return nil, nil
}

func (f *fakeDoctorClient) UpdateProfile(ctx context.Context, doctorID string, profile *models.DoctorProfile) (*models.DoctorProfile, error) {
	return profile, nil
}

type fakePatientClient struct {
	params []requests.PatientSearch
}

func (f *fakePatientClient) Search(ctx context.Context, params requests.PatientSearch) ([]models.PatientRef, error) {
	f.params = append(f.params, params)
	return nil, nil
}

func TestDoctorFetcher(t *testing.T) {
	org, err := session.NewResolvedOrganizationContext("org_AAAAAAAAAAAAAAAAAAAAAAAAAA")
	assert.NoError(t, err)

	t.Run("defaults to all and scopes by organization", func(t *testing.T) {
		client := &fakeDoctorClient{}
		fetch := DoctorFetcher(client, org, 20)

		_, err := fetch(context.Background(), Query{Text: "  ray "})
		assert.NoError(t, err)
		assert.Equal(t, requests.DoctorSearch{
			Query: "ray",
			By:    FilterAll,
			Limit: 20,
			OrgID: "org_AAAAAAAAAAAAAAAAAAAAAAAAAA",
		}, client.params[0])
	})

	t.Run("speciality filter fills the speciality parameter", func(t *testing.T) {
		client := &fakeDoctorClient{}
		fetch := DoctorFetcher(client, org, 20)

		_, err := fetch(context.Background(), Query{Text: "cardio", Filter: FilterSpeciality})
		assert.NoError(t, err)
		assert.Equal(t, FilterSpeciality, client.params[0].By)
		assert.Equal(t, "cardio", client.params[0].Speciality)
	})

	t.Run("unresolved organization never reaches the clinic API", func(t *testing.T) {
		client := &fakeDoctorClient{}
		fetch := DoctorFetcher(client, session.OrganizationContext{}, 20)

		_, err := fetch(context.Background(), Query{Text: "ray"})
		assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))
		assert.Empty(t, client.params)
	})
}

func TestPatientFetcher(t *testing.T) {
	client := &fakePatientClient{}
	fetch := PatientFetcher(client, 10)

	_, err := fetch(context.Background(), Query{Text: " jane "})
	assert.NoError(t, err)
	assert.Equal(t, requests.PatientSearch{Search: "jane", Limit: 10, Page: 1}, client.params[0])
}
