package patients

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/normalizer"
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type patientClient struct {
	api *transport.Client
	Log *zap.Logger
}

func NewPatientClient(api *transport.Client, logger *zap.Logger) contracts.PatientClient {
	return &patientClient{
		api: api,
		Log: logger,
	}
}

func (c *patientClient) Search(ctx context.Context, params requests.PatientSearch) ([]models.PatientRef, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientClient.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchQueryKey, params.Search),
	)

	query := url.Values{}
	query.Set(constvars.ClinicAPIQuerySearch, params.Search)
	if params.Limit > 0 {
		query.Set(constvars.ClinicAPIQueryLimit, strconv.Itoa(params.Limit))
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	query.Set(constvars.ClinicAPIQueryPage, strconv.Itoa(page))

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "patientClient.Search",
		Resource:  constvars.ResourcePatient,
		Method:    constvars.MethodGet,
		Path:      constvars.RoutePatients,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}

	patients := normalizer.Patients(resp.Body)
	c.Log.Info("patientClient.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(patients)),
	)
	return patients, nil
}
