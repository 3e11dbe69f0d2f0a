package fees

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

type feeClient struct {
	api *transport.Client
	Log *zap.Logger
}

func NewFeeClient(api *transport.Client, logger *zap.Logger) contracts.FeeClient {
	return &feeClient{
		api: api,
		Log: logger,
	}
}

func (c *feeClient) List(ctx context.Context, doctorID, organizationID string) ([]models.FeeStructure, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("feeClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingOrganizationIDKey, organizationID),
	)

	query := url.Values{}
	query.Set(constvars.ClinicAPIQueryDoctorID, doctorID)
	query.Set(constvars.ClinicAPIQueryOrgID, organizationID)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "feeClient.List",
		Resource:  constvars.ResourceFee,
		Method:    constvars.MethodGet,
		Path:      constvars.RouteDoctorFees,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}

	fees := normalizer.Fees(resp.Body)
	c.Log.Info("feeClient.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(fees)),
	)
	return fees, nil
}

func (c *feeClient) Create(ctx context.Context, fee *models.FeeStructure) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("feeClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, fee.DoctorID),
		zap.String(constvars.LoggingOrganizationIDKey, fee.OrganizationID),
	)

	_, err := c.api.Do(ctx, transport.Request{
		Operation:    "feeClient.Create",
		Resource:     constvars.ResourceFee,
		Method:       constvars.MethodPost,
		Path:         constvars.RouteDoctorFees,
		Body:         fee,
		ConflictHint: constvars.ErrClientFeeAlreadyExists,
	})
	if err != nil {
		return err
	}

	c.Log.Info("feeClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *feeClient) Update(ctx context.Context, compositeKey string, fee *models.FeeStructure) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("feeClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositeKey, compositeKey),
	)

	_, err := c.api.Do(ctx, transport.Request{
		Operation: "feeClient.Update",
		Resource:  constvars.ResourceFee,
		Method:    constvars.MethodPut,
		Path:      transport.CompositePath(constvars.RouteDoctorFees, compositeKey),
		Body:      fee,
	})
	if err != nil {
		return err
	}

	c.Log.Info("feeClient.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *feeClient) Delete(ctx context.Context, compositeKey string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("feeClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositeKey, compositeKey),
	)

	_, err := c.api.Do(ctx, transport.Request{
		Operation: "feeClient.Delete",
		Resource:  constvars.ResourceFee,
		Method:    constvars.MethodDelete,
		Path:      transport.CompositePath(constvars.RouteDoctorFees, compositeKey),
	})
	if err != nil {
		return err
	}

	c.Log.Info("feeClient.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
