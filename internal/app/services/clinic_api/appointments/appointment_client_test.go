package appointments

import (
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAppointmentClientCreate(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/appointments/create", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"appointment":{"id":"apt-1"}}`))
	}))
	defer server.Close()

	client := NewAppointmentClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())
	id, err := client.Create(context.Background(), &requests.CreateAppointment{
		PatientID:       "AB12CD34",
		DoctorID:        "123e4567-e89b-12d3-a456-426614174000",
		OrgID:           "org_AAAAAAAAAAAAAAAAAAAAAAAAAA",
		AppointmentDate: "2026-10-14T14:00:00+07:00",
		FeeType:         "recurring",
		PaymentMethod:   "online",
	})

	assert.NoError(t, err)
	assert.Equal(t, "apt-1", id)
	assert.JSONEq(t, `{
		"patient_id": "AB12CD34",
		"doctor_id": "123e4567-e89b-12d3-a456-426614174000",
		"org_id": "org_AAAAAAAAAAAAAAAAAAAAAAAAAA",
		"appointment_date": "2026-10-14T14:00:00+07:00",
		"fee_type": "recurring",
		"payment_method": "online",
		"reason": ""
	}`, string(body))
}

func TestAppointmentClientCreateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"doctor is not available at that time"}`))
	}))
	defer server.Close()

	client := NewAppointmentClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())
	_, err := client.Create(context.Background(), &requests.CreateAppointment{})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindRejected, customErr.Kind)
	assert.Equal(t, "doctor is not available at that time", customErr.ClientMessage)
}
