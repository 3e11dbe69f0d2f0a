// Package slot computes the appointment start times a doctor offers on a date.
package slot

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"context"
	"time"

	"go.uber.org/zap"
)

type ScheduleSource interface {
	Active(ctx context.Context, org session.OrganizationContext, doctorID string, weekday models.Weekday) ([]models.ScheduleEntry, error)
}

type Service struct {
	Schedules     ScheduleSource
	SlotMinutes   int
	BufferMinutes int
	Now           func() time.Time
	Log           *zap.Logger
}

func NewService(schedules ScheduleSource, slotMinutes int, logger *zap.Logger) *Service {
	return &Service{
		Schedules:   schedules,
		SlotMinutes: slotMinutes,
		Now:         time.Now,
		Log:         logger,
	}
}

// OfferedTimes returns the sorted "HH:MM" starts offered on date, read from the
// doctor's active weekly windows for that weekday. Starts already past are
// left out when date is today.
func (s *Service) OfferedTimes(ctx context.Context, org session.OrganizationContext, doctorID string, date time.Time) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	weekday := models.WeekdayOf(date)
	s.Log.Info("slotService.OfferedTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingWeekdayKey, weekday.String()),
	)

	entries, err := s.Schedules.Active(ctx, org, doctorID, weekday)
	if err != nil {
		return nil, err
	}

	starts := generateStarts(windowsFromEntries(entries), s.SlotMinutes, s.BufferMinutes)
	starts = dropPast(starts, date, s.Now())

	times := make([]string, 0, len(starts))
	for _, start := range starts {
		times = append(times, start.String())
	}

	s.Log.Info("slotService.OfferedTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(times)),
	)
	return times, nil
}

// Contains reports whether t is one of the offered times.
func Contains(offered []string, t string) bool {
	for _, candidate := range offered {
		if candidate == t {
			return true
		}
	}
	return false
}

