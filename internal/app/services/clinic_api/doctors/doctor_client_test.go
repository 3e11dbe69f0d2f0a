package doctors

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testDoctorID = "123e4567-e89b-12d3-a456-426614174000"

func newTestDoctorClient(t *testing.T, handler http.HandlerFunc) *doctorClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	api := transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop())
	return NewDoctorClient(api, zap.NewNop()).(*doctorClient)
}

func TestDoctorClientSearch(t *testing.T) {
	var query url.Values
	client := newTestDoctorClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doctors/search", r.URL.Path)
		query = r.URL.Query()
		w.Write([]byte(`{"doctors":[{"id":"` + testDoctorID + `","name":"Dr. Ray","speciality":"Cardiology"}]}`))
	})

	doctors, err := client.Search(context.Background(), requests.DoctorSearch{
		Query:      "card",
		By:         "speciality",
		Speciality: "card",
		Limit:      20,
		OrgID:      "org_AAAAAAAAAAAAAAAAAAAAAAAAAA",
	})

	assert.NoError(t, err)
	assert.Equal(t, []models.DoctorRef{{ID: testDoctorID, Name: "Dr. Ray", Speciality: "Cardiology"}}, doctors)
	assert.Equal(t, "card", query.Get("q"))
	assert.Equal(t, "speciality", query.Get("by"))
	assert.Equal(t, "card", query.Get("speciality"))
	assert.Equal(t, "20", query.Get("limit"))
	assert.Equal(t, "org_AAAAAAAAAAAAAAAAAAAAAAAAAA", query.Get("org_id"))
}

func TestDoctorClientGetProfile(t *testing.T) {
	client := newTestDoctorClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doctors/"+testDoctorID+"/profile", r.URL.Path)
		w.Write([]byte(`{"profile":{"doctor_id":"` + testDoctorID + `","name":"Dr. Ray","experience_years":"12"}}`))
	})

	profile, err := client.GetProfile(context.Background(), testDoctorID)
	assert.NoError(t, err)
	assert.Equal(t, testDoctorID, profile.ID)
	assert.Equal(t, 12, profile.ExperienceYears)
}

func TestDoctorClientGetProfileNotFound(t *testing.T) {
	client := newTestDoctorClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProfile(context.Background(), testDoctorID)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
}

func TestDoctorClientUpdateProfileEchoesEmptyBody(t *testing.T) {
	client := newTestDoctorClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	updated, err := client.UpdateProfile(context.Background(), testDoctorID, &models.DoctorProfile{Name: "Dr. Ray"})
	assert.NoError(t, err)
	assert.Equal(t, testDoctorID, updated.ID)
	assert.Equal(t, "Dr. Ray", updated.Name)
}
