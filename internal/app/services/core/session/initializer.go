package session

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

const organizationCacheKeyPrefix = "booking:organization:"

// Initializer is the only writer of OrganizationContext. It resolves the
// organization of a session token once and caches it for later requests.
type Initializer struct {
	Client contracts.OrganizationClient
	Cache  contracts.RedisRepository
	TTL    time.Duration
	Log    *zap.Logger
}

// NewInitializer accepts a nil cache, in which case every call fetches.
func NewInitializer(client contracts.OrganizationClient, cache contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) *Initializer {
	return &Initializer{
		Client: client,
		Cache:  cache,
		TTL:    ttl,
		Log:    logger,
	}
}

func (s *Initializer) Initialize(ctx context.Context, sessionToken string) (OrganizationContext, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("Initializer.Initialize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionToken == "" {
		return OrganizationContext{}, exceptions.ErrOrganizationNotResolved()
	}
	ctx = WithSessionToken(ctx, sessionToken)
	key := organizationCacheKey(sessionToken)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			s.Log.Warn("Initializer.Initialize organization cache read failed, fetching",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		if cached != "" {
			org, err := NewResolvedOrganizationContext(cached)
			if err == nil {
				return org, nil
			}
			s.Log.Warn("Initializer.Initialize dropping malformed cached organization",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
			)
		}
	}

	organization, err := s.Client.Current(ctx)
	if err != nil {
		switch exceptions.KindOf(err) {
		case exceptions.KindNotFound, exceptions.KindRejected:
			return OrganizationContext{}, exceptions.ErrOrganizationInvalid(err)
		}
		return OrganizationContext{}, err
	}

	org, err := NewResolvedOrganizationContext(organization.ID)
	if err != nil {
		s.Log.Error("Initializer.Initialize clinic API returned a malformed organization id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrganizationIDKey, organization.ID),
		)
		return OrganizationContext{}, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, organization.ID, s.TTL); err != nil {
			s.Log.Warn("Initializer.Initialize organization cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	s.Log.Info("Initializer.Initialize resolved organization",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrganizationIDKey, organization.ID),
	)
	return org, nil
}

// Forget drops the cached organization of sessionToken.
func (s *Initializer) Forget(ctx context.Context, sessionToken string) error {
	if s.Cache == nil || sessionToken == "" {
		return nil
	}
	return s.Cache.Delete(ctx, organizationCacheKey(sessionToken))
}

func organizationCacheKey(sessionToken string) string {
	sum := sha256.Sum256([]byte(sessionToken))
	return organizationCacheKeyPrefix + hex.EncodeToString(sum[:])
}
