package schedules

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/normalizer"
	"context"
	"net/url"

	"go.uber.org/zap"
)

type scheduleClient struct {
	api *transport.Client
	Log *zap.Logger
}

func NewScheduleClient(api *transport.Client, logger *zap.Logger) contracts.ScheduleClient {
	return &scheduleClient{
		api: api,
		Log: logger,
	}
}

func (c *scheduleClient) List(ctx context.Context, doctorID, organizationID string) ([]models.ScheduleEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingOrganizationIDKey, organizationID),
	)

	query := url.Values{}
	query.Set(constvars.ClinicAPIQueryDoctorID, doctorID)
	query.Set(constvars.ClinicAPIQueryOrgID, organizationID)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "scheduleClient.List",
		Resource:  constvars.ResourceSchedule,
		Method:    constvars.MethodGet,
		Path:      constvars.RouteDoctorSchedules,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}

	entries := normalizer.Schedules(resp.Body)
	c.Log.Info("scheduleClient.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(entries)),
	)
	return entries, nil
}

func (c *scheduleClient) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, entry.DoctorID),
		zap.String(constvars.LoggingWeekdayKey, entry.Weekday.String()),
	)

	_, err := c.api.Do(ctx, transport.Request{
		Operation:    "scheduleClient.Create",
		Resource:     constvars.ResourceSchedule,
		Method:       constvars.MethodPost,
		Path:         constvars.RouteDoctorSchedules,
		Body:         entry,
		ConflictHint: constvars.ErrClientScheduleAlreadyExists,
	})
	if err != nil {
		return err
	}

	c.Log.Info("scheduleClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *scheduleClient) Update(ctx context.Context, compositeKey string, entry *models.ScheduleEntry) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositeKey, compositeKey),
	)

	_, err := c.api.Do(ctx, transport.Request{
		Operation: "scheduleClient.Update",
		Resource:  constvars.ResourceSchedule,
		Method:    constvars.MethodPut,
		Path:      transport.CompositePath(constvars.RouteDoctorSchedules, compositeKey),
		Body:      entry,
	})
	if err != nil {
		return err
	}

	c.Log.Info("scheduleClient.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *scheduleClient) Delete(ctx context.Context, compositeKey string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositeKey, compositeKey),
	)

	_, err := c.api.Do(ctx, transport.Request{
		Operation: "scheduleClient.Delete",
		Resource:  constvars.ResourceSchedule,
		Method:    constvars.MethodDelete,
		Path:      transport.CompositePath(constvars.RouteDoctorSchedules, compositeKey),
	})
	if err != nil {
		return err
	}

	c.Log.Info("scheduleClient.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
