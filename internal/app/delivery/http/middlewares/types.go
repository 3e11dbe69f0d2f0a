package middlewares

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/services/core/session"
	"context"

	"go.uber.org/zap"
)

type OrganizationResolver interface {
	Initialize(ctx context.Context, sessionToken string) (session.OrganizationContext, error)
}

type Middlewares struct {
	Log            *zap.Logger
	Organizations  OrganizationResolver
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, organizations OrganizationResolver, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Organizations:  organizations,
		InternalConfig: internalConfig,
	}
}
