package doctors

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/normalizer"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type doctorClient struct {
	api *transport.Client
	Log *zap.Logger
}

func NewDoctorClient(api *transport.Client, logger *zap.Logger) contracts.DoctorClient {
	return &doctorClient{
		api: api,
		Log: logger,
	}
}

func (c *doctorClient) Search(ctx context.Context, params requests.DoctorSearch) ([]models.DoctorRef, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorClient.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchQueryKey, params.Query),
		zap.String(constvars.LoggingOrganizationIDKey, params.OrgID),
	)

	query := url.Values{}
	query.Set(constvars.ClinicAPIQueryQ, params.Query)
	query.Set(constvars.ClinicAPIQueryBy, params.By)
	if params.Speciality != "" {
		query.Set(constvars.ClinicAPIQuerySpeciality, params.Speciality)
	}
	if params.Limit > 0 {
		query.Set(constvars.ClinicAPIQueryLimit, strconv.Itoa(params.Limit))
	}
	query.Set(constvars.ClinicAPIQueryOrgID, params.OrgID)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "doctorClient.Search",
		Resource:  constvars.ResourceDoctor,
		Method:    constvars.MethodGet,
		Path:      constvars.RouteDoctorsSearch,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}

	doctors := normalizer.Doctors(resp.Body)
	c.Log.Info("doctorClient.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(doctors)),
	)
	return doctors, nil
}

func (c *doctorClient) GetProfile(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "doctorClient.GetProfile",
		Resource:  constvars.ResourceDoctorProfile,
		Method:    constvars.MethodGet,
		Path:      fmt.Sprintf(constvars.RouteDoctorProfileFormat, url.PathEscape(doctorID)),
	})
	if err != nil {
		return nil, err
	}

	profile, ok := normalizer.DoctorProfile(resp.Body)
	if !ok {
		c.Log.Error("doctorClient.GetProfile response has no doctor id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeResponse(errors.New("missing id"), constvars.ResourceDoctorProfile)
	}

	c.Log.Info("doctorClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &profile, nil
}

func (c *doctorClient) UpdateProfile(ctx context.Context, doctorID string, profile *models.DoctorProfile) (*models.DoctorProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "doctorClient.UpdateProfile",
		Resource:  constvars.ResourceDoctorProfile,
		Method:    constvars.MethodPut,
		Path:      fmt.Sprintf(constvars.RouteDoctorProfileFormat, url.PathEscape(doctorID)),
		Body:      profile,
	})
	if err != nil {
		return nil, err
	}

	// Some deployments answer 204 or an empty body; echo what was sent.
	updated, ok := normalizer.DoctorProfile(resp.Body)
	if !ok {
		updated = *profile
		updated.ID = doctorID
	}

	c.Log.Info("doctorClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &updated, nil
}
