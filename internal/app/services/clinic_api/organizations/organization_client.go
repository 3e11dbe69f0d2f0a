package organizations

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/normalizer"
	"context"
	"errors"

	"go.uber.org/zap"
)

type organizationClient struct {
	api *transport.Client
	Log *zap.Logger
}

func NewOrganizationClient(api *transport.Client, logger *zap.Logger) contracts.OrganizationClient {
	return &organizationClient{
		api: api,
		Log: logger,
	}
}

// Current returns the organization of the session token carried by ctx.
func (c *organizationClient) Current(ctx context.Context) (*models.Organization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("organizationClient.Current called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.api.Do(ctx, transport.Request{
		Operation: "organizationClient.Current",
		Resource:  constvars.ResourceOrganization,
		Method:    constvars.MethodGet,
		Path:      constvars.RouteCurrentOrganization,
	})
	if err != nil {
		return nil, err
	}

	org, ok := normalizer.Organization(resp.Body)
	if !ok {
		c.Log.Error("organizationClient.Current response has no organization id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeResponse(errors.New("missing id"), constvars.ResourceOrganization)
	}

	c.Log.Info("organizationClient.Current succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationIDKey, org.ID),
	)
	return &org, nil
}
