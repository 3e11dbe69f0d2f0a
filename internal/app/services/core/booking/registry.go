package booking

import (
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

type Factory func(ctx context.Context, id string, org session.OrganizationContext) *Wizard

// Registry holds open wizards by session ID. It is bounded; the least recently
// used wizard is closed when a new one would exceed the bound.
type Registry struct {
	sessions    *lru.Cache[string, *Wizard]
	factory     Factory
	idleTimeout time.Duration
	now         func() time.Time
	log         *zap.Logger
}

func NewRegistry(size int, idleTimeout time.Duration, factory Factory, logger *zap.Logger) (*Registry, error) {
	sessions, err := lru.NewWithEvict(size, func(id string, wizard *Wizard) {
		wizard.Close()
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		sessions:    sessions,
		factory:     factory,
		idleTimeout: idleTimeout,
		now:         time.Now,
		log:         logger,
	}, nil
}

// NewFactory builds wizards sharing deps.
func NewFactory(deps Dependencies) Factory {
	return func(ctx context.Context, id string, org session.OrganizationContext) *Wizard {
		return NewWizard(ctx, id, org, deps)
	}
}

// Open starts a wizard for org. An unresolved org fails before anything is created.
func (r *Registry) Open(ctx context.Context, org session.OrganizationContext) (*Wizard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if _, err := org.ID(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	wizard := r.factory(ctx, id, org)
	wizard.Start()
	r.sessions.Add(id, wizard)

	r.log.Info("Registry.Open created booking session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, id),
		zap.Int(constvars.LoggingOpenSessionsKey, r.sessions.Len()),
	)
	return wizard, nil
}

// Get finds an open or just-finished wizard. A wizard opened for another
// organization is reported as not found.
func (r *Registry) Get(id string, org session.OrganizationContext) (*Wizard, error) {
	wizard, ok := r.sessions.Get(id)
	if !ok {
		return nil, exceptions.ErrBookingSessionNotFound(id)
	}
	if wizard.Organization() != org {
		return nil, exceptions.ErrBookingSessionNotFound(id)
	}
	return wizard, nil
}

func (r *Registry) Close(id string, org session.OrganizationContext) error {
	wizard, err := r.Get(id, org)
	if err != nil {
		return err
	}
	r.sessions.Remove(id)
	wizard.Close()
	return nil
}

// CloseIdle closes and forgets wizards without activity for longer than the
// idle timeout. It returns how many were removed.
func (r *Registry) CloseIdle() int {
	cutoff := r.now().Add(-r.idleTimeout)
	closed := 0
	for _, id := range r.sessions.Keys() {
		wizard, ok := r.sessions.Peek(id)
		if !ok {
			continue
		}
		if wizard.LastActivity().Before(cutoff) {
			r.sessions.Remove(id)
			wizard.Close()
			closed++
		}
	}
	return closed
}

func (r *Registry) CloseAll() {
	r.sessions.Purge()
}

func (r *Registry) Len() int {
	return r.sessions.Len()
}
