// Package fees manages the fee structure of a doctor within an organization.
package fees

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Lookup distinguishes "no fee structure" (Found false, zero amounts) from a
// failed fetch, which is returned as an error instead.
type Lookup struct {
	Fee   models.FeeStructure
	Found bool
}

type Manager struct {
	Client contracts.FeeClient
	Log    *zap.Logger

	mu sync.Mutex
	// cache is keyed by the fee composite key; a present entry with Found false
	// records that the clinic API has no fee structure for the pair.
	cache map[string]Lookup
}

func NewManager(client contracts.FeeClient, logger *zap.Logger) *Manager {
	return &Manager{
		Client: client,
		Log:    logger,
		cache:  make(map[string]Lookup),
	}
}

// Get always asks the clinic API and refreshes the cache.
func (m *Manager) Get(ctx context.Context, org session.OrganizationContext, doctorID string) (Lookup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("feeManager.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	orgID, err := org.ID()
	if err != nil {
		return Lookup{}, err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, doctorID); err != nil {
		return Lookup{}, err
	}
	doctorID = utils.CanonicalDoctorID(doctorID)
	key, err := utils.BuildFeeKey(doctorID, orgID)
	if err != nil {
		return Lookup{}, err
	}
	return m.load(ctx, key, doctorID, orgID)
}

// Upsert issues PUT when a fee structure exists for the pair and POST
// otherwise, never both. A cold cache is loaded before deciding.
func (m *Manager) Upsert(ctx context.Context, org session.OrganizationContext, fee models.FeeStructure) (models.FeeStructure, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("feeManager.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, fee.DoctorID),
	)

	orgID, err := org.ID()
	if err != nil {
		return models.FeeStructure{}, err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, fee.DoctorID); err != nil {
		return models.FeeStructure{}, err
	}
	fee.DoctorID = utils.CanonicalDoctorID(fee.DoctorID)
	if !fee.IsNonNegative() {
		return models.FeeStructure{}, exceptions.ErrNegativeFee()
	}
	fee.OrganizationID = orgID

	key, err := utils.BuildFeeKey(fee.DoctorID, orgID)
	if err != nil {
		return models.FeeStructure{}, err
	}

	existing, cached := m.cached(key)
	if !cached {
		existing, err = m.load(ctx, key, fee.DoctorID, orgID)
		if err != nil {
			return models.FeeStructure{}, err
		}
	}

	if existing.Found {
		err = m.Client.Update(ctx, key, &fee)
	} else {
		err = m.Client.Create(ctx, &fee)
	}
	if err != nil {
		return models.FeeStructure{}, err
	}

	m.mu.Lock()
	m.cache[key] = Lookup{Fee: fee, Found: true}
	m.mu.Unlock()

	m.Log.Info("feeManager.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositeKey, key),
		zap.Bool("updated", existing.Found),
	)
	return fee, nil
}

func (m *Manager) Delete(ctx context.Context, org session.OrganizationContext, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("feeManager.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	orgID, err := org.ID()
	if err != nil {
		return err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, doctorID); err != nil {
		return err
	}
	doctorID = utils.CanonicalDoctorID(doctorID)
	key, err := utils.BuildFeeKey(doctorID, orgID)
	if err != nil {
		return err
	}

	err = m.Client.Delete(ctx, key)
	if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
		return err
	}
	m.mu.Lock()
	m.cache[key] = Lookup{Fee: emptyFee(doctorID, orgID)}
	m.mu.Unlock()
	return err
}

func (m *Manager) cached(key string) (Lookup, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lookup, ok := m.cache[key]
	return lookup, ok
}

func (m *Manager) load(ctx context.Context, key, doctorID, orgID string) (Lookup, error) {
	fees, err := m.Client.List(ctx, doctorID, orgID)
	if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
		return Lookup{}, err
	}

	lookup := Lookup{Fee: emptyFee(doctorID, orgID)}
	for _, fee := range fees {
		fee.DoctorID = utils.CanonicalDoctorID(fee.DoctorID)
		if fee.OrganizationID == "" {
			fee.OrganizationID = orgID
		}
		if fee.DoctorID == doctorID && fee.OrganizationID == orgID {
			lookup = Lookup{Fee: fee, Found: true}
			break
		}
	}

	m.mu.Lock()
	m.cache[key] = lookup
	m.mu.Unlock()
	return lookup, nil
}

func emptyFee(doctorID, orgID string) models.FeeStructure {
	return models.FeeStructure{DoctorID: doctorID, OrganizationID: orgID}
}
