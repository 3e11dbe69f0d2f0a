package slot

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/utils"
	"sort"
	"time"
)

// dayWindow is an inclusive start and exclusive end wall-clock window.
type dayWindow struct {
	Start utils.Clock
	End   utils.Clock
}

// windowsFromEntries skips inactive entries and entries whose times do not parse
// or do not form a forward range.
func windowsFromEntries(entries []models.ScheduleEntry) []dayWindow {
	var out []dayWindow
	for _, entry := range entries {
		if !entry.IsActive {
			continue
		}
		start, err := utils.ParseClock(entry.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClock(entry.EndTime)
		if err != nil || start.Minutes() >= end.Minutes() {
			continue
		}
		out = append(out, dayWindow{Start: start, End: end})
	}
	return out
}

// generateStarts produces slot starts within each window. A slot lasts
// slotMinutes and consecutive starts are spaced by slotMinutes+bufferMinutes;
// a slot never crosses its window's end.
func generateStarts(windows []dayWindow, slotMinutes, bufferMinutes int) []utils.Clock {
	if slotMinutes <= 0 {
		return nil
	}
	step := slotMinutes + bufferMinutes
	seen := make(map[int]bool)
	var out []utils.Clock
	for _, w := range windows {
		for t := w.Start.Minutes(); t+slotMinutes <= w.End.Minutes(); t += step {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, utils.ClockFromMinutes(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Minutes() < out[j].Minutes() })
	return out
}

// dropPast removes starts at or before now when date is now's calendar day.
func dropPast(starts []utils.Clock, date, now time.Time) []utils.Clock {
	now = now.In(date.Location())
	if !utils.StartOfDay(date).Equal(utils.StartOfDay(now)) {
		return starts
	}
	current := now.Hour()*60 + now.Minute()
	var out []utils.Clock
	for _, start := range starts {
		if start.Minutes() > current {
			out = append(out, start)
		}
	}
	return out
}
