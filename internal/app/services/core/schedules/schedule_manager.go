// Package schedules manages per-doctor weekly availability windows.
package schedules

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var weekdayOrder = map[models.Weekday]int{
	models.WeekdayMonday:    0,
	models.WeekdayTuesday:   1,
	models.WeekdayWednesday: 2,
	models.WeekdayThursday:  3,
	models.WeekdayFriday:    4,
	models.WeekdaySaturday:  5,
	models.WeekdaySunday:    6,
}

// Manager owns composite key assembly for schedules; callers pass parts only.
// The cache maps a doctor/organization pair to its entries by weekday. Doctor
// IDs are lower-cased on entry so upstream casing drift never splits a pair.
type Manager struct {
	Client contracts.ScheduleClient
	Log    *zap.Logger

	mu    sync.Mutex
	cache map[string]map[models.Weekday]models.ScheduleEntry
}

func NewManager(client contracts.ScheduleClient, logger *zap.Logger) *Manager {
	return &Manager{
		Client: client,
		Log:    logger,
		cache:  make(map[string]map[models.Weekday]models.ScheduleEntry),
	}
}

func (m *Manager) List(ctx context.Context, org session.OrganizationContext, doctorID string) ([]models.ScheduleEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("scheduleManager.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	orgID, err := org.ID()
	if err != nil {
		return nil, err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, doctorID); err != nil {
		return nil, err
	}
	doctorID = utils.CanonicalDoctorID(doctorID)

	entries, err := m.Client.List(ctx, doctorID, orgID)
	if err != nil {
		return nil, err
	}

	byWeekday := make(map[models.Weekday]models.ScheduleEntry)
	for _, entry := range entries {
		entry.DoctorID = utils.CanonicalDoctorID(entry.DoctorID)
		if entry.DoctorID != doctorID {
			continue
		}
		if entry.OrganizationID == "" {
			entry.OrganizationID = orgID
		}
		if entry.OrganizationID != orgID {
			continue
		}
		byWeekday[entry.Weekday] = entry
	}

	m.mu.Lock()
	m.cache[pairKey(doctorID, orgID)] = byWeekday
	m.mu.Unlock()

	return sortedEntries(byWeekday), nil
}

// Active returns the active entries of doctorID for weekday, freshly listed.
func (m *Manager) Active(ctx context.Context, org session.OrganizationContext, doctorID string, weekday models.Weekday) ([]models.ScheduleEntry, error) {
	entries, err := m.List(ctx, org, doctorID)
	if err != nil {
		return nil, err
	}
	var out []models.ScheduleEntry
	for _, entry := range entries {
		if entry.IsActive && entry.Weekday == weekday {
			out = append(out, entry)
		}
	}
	return out, nil
}

// Upsert creates the weekday's entry or, when one is already known, updates it.
// A cold cache is filled first so an existing weekday is never re-created.
func (m *Manager) Upsert(ctx context.Context, org session.OrganizationContext, entry models.ScheduleEntry) (models.ScheduleEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("scheduleManager.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, entry.DoctorID),
		zap.String(constvars.LoggingWeekdayKey, entry.Weekday.String()),
	)

	orgID, err := org.ID()
	if err != nil {
		return models.ScheduleEntry{}, err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, entry.DoctorID); err != nil {
		return models.ScheduleEntry{}, err
	}
	entry.DoctorID = utils.CanonicalDoctorID(entry.DoctorID)
	weekday, ok := models.ParseWeekday(string(entry.Weekday))
	if !ok {
		return models.ScheduleEntry{}, exceptions.ErrValidation(constvars.CustomValidationErrorMessages["weekday"])
	}
	if err := utils.ValidateTimeRange(entry.StartTime, entry.EndTime); err != nil {
		return models.ScheduleEntry{}, err
	}
	entry.Weekday = weekday
	entry.OrganizationID = orgID

	key, err := utils.BuildScheduleKey(entry.DoctorID, weekday, orgID)
	if err != nil {
		return models.ScheduleEntry{}, err
	}

	exists, cached := m.lookup(entry.DoctorID, orgID, weekday)
	if !cached {
		if _, err := m.List(ctx, org, entry.DoctorID); err != nil {
			return models.ScheduleEntry{}, err
		}
		exists, _ = m.lookup(entry.DoctorID, orgID, weekday)
	}

	if exists {
		err = m.Client.Update(ctx, key, &entry)
	} else {
		err = m.Client.Create(ctx, &entry)
	}
	if err != nil {
		return models.ScheduleEntry{}, err
	}

	m.store(entry)
	m.Log.Info("scheduleManager.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositeKey, key),
		zap.Bool("updated", exists),
	)
	return entry, nil
}

func (m *Manager) Delete(ctx context.Context, org session.OrganizationContext, doctorID string, weekday models.Weekday) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("scheduleManager.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingWeekdayKey, weekday.String()),
	)

	orgID, err := org.ID()
	if err != nil {
		return err
	}
	if err := utils.RequireIdentifier(utils.IdentifierDoctor, doctorID); err != nil {
		return err
	}
	doctorID = utils.CanonicalDoctorID(doctorID)
	key, err := utils.BuildScheduleKey(doctorID, weekday, orgID)
	if err != nil {
		return err
	}

	err = m.Client.Delete(ctx, key)
	if err != nil && !exceptions.IsKind(err, exceptions.KindNotFound) {
		return err
	}
	day, _ := models.ParseWeekday(string(weekday))
	m.forget(doctorID, orgID, day)
	return err
}

func (m *Manager) lookup(doctorID, orgID string, weekday models.Weekday) (exists, cached bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byWeekday, cached := m.cache[pairKey(doctorID, orgID)]
	if !cached {
		return false, false
	}
	_, exists = byWeekday[weekday]
	return exists, true
}

func (m *Manager) store(entry models.ScheduleEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(entry.DoctorID, entry.OrganizationID)
	if m.cache[key] == nil {
		m.cache[key] = make(map[models.Weekday]models.ScheduleEntry)
	}
	m.cache[key][entry.Weekday] = entry
}

func (m *Manager) forget(doctorID, orgID string, weekday models.Weekday) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if byWeekday, ok := m.cache[pairKey(doctorID, orgID)]; ok {
		delete(byWeekday, weekday)
	}
}

func pairKey(doctorID, orgID string) string {
	return doctorID + utils.CompositeKeySeparator + orgID
}

func sortedEntries(byWeekday map[models.Weekday]models.ScheduleEntry) []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, 0, len(byWeekday))
	for _, entry := range byWeekday {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return weekdayOrder[out[i].Weekday] < weekdayOrder[out[j].Weekday]
	})
	return out
}
