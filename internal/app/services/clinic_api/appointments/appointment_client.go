package appointments

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/normalizer"
	"context"

	"go.uber.org/zap"
)

type appointmentClient struct {
	api *transport.Client
	Log *zap.Logger
}

func NewAppointmentClient(api *transport.Client, logger *zap.Logger) contracts.AppointmentClient {
	return &appointmentClient{
		api: api,
		Log: logger,
	}
}

func (c *appointmentClient) Create(ctx context.Context, payload *requests.CreateAppointment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, payload.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, payload.DoctorID),
		zap.String(constvars.LoggingOrganizationIDKey, payload.OrgID),
		zap.String(constvars.LoggingAppointmentAtKey, payload.AppointmentDate),
	)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation:    "appointmentClient.Create",
		Resource:     constvars.ResourceAppointment,
		Method:       constvars.MethodPost,
		Path:         constvars.RouteAppointmentsCreate,
		Body:         payload,
		ConflictHint: constvars.ErrClientConflict,
	})
	if err != nil {
		return "", err
	}

	appointmentID := normalizer.AppointmentID(resp.Body)
	c.Log.Info("appointmentClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointmentID, nil
}
