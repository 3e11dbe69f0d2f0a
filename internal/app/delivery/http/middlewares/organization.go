package middlewares

import (
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// OrganizationScope resolves the caller's organization from its session token
// and stores both on the request context. Requests without a resolvable
// organization are answered with a configuration error.
func (m *Middlewares) OrganizationScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrOrganizationNotResolved())
			return
		}

		org, err := m.Organizations.Initialize(r.Context(), token)
		if err != nil {
			m.Log.Warn("Middlewares.OrganizationScope could not resolve organization",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := session.WithSessionToken(r.Context(), token)
		ctx = session.WithOrganization(ctx, org)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken keeps the header value as sent, so a "Bearer " prefix is
// forwarded to the clinic API unchanged.
func sessionToken(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
}
