package session

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
)

// OrganizationContext scopes every multi-tenant call. The zero value is
// "not yet resolved" and every accessor reports it as a configuration error.
type OrganizationContext struct {
	id string
}

func NewResolvedOrganizationContext(id string) (OrganizationContext, error) {
	if !utils.IsValidOrganizationID(id) {
		return OrganizationContext{}, exceptions.ErrOrganizationInvalid(fmt.Errorf("%q", id))
	}
	return OrganizationContext{id: id}, nil
}

func (o OrganizationContext) IsResolved() bool {
	return o.id != ""
}

func (o OrganizationContext) ID() (string, error) {
	if !o.IsResolved() {
		return "", exceptions.ErrOrganizationNotResolved()
	}
	return o.id, nil
}

func (o OrganizationContext) String() string {
	if !o.IsResolved() {
		return "<unresolved>"
	}
	return o.id
}

func WithOrganization(ctx context.Context, org OrganizationContext) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ORGANIZATION_KEY, org)
}

// OrganizationFromContext returns the unresolved zero value when ctx carries none.
func OrganizationFromContext(ctx context.Context) OrganizationContext {
	org, _ := ctx.Value(constvars.CONTEXT_ORGANIZATION_KEY).(OrganizationContext)
	return org
}

func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_TOKEN_KEY, token)
}

func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(constvars.CONTEXT_SESSION_TOKEN_KEY).(string)
	return token
}
