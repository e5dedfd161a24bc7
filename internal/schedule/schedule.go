// Package schedule holds the next-occurrence math for alarms. Everything here
// is a pure function of its arguments, safe to call from any layer.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
)

// WeekdayIndex converts time.Weekday (Sunday=0) to the Monday=0..Sunday=6
// indexing used by alarm repeat days.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// NextFireTime returns the next instant at which the alarm fires, or false
// for a disabled alarm.
//
// One-shot alarms (no repeat days) resolve to the next occurrence of their
// wall-clock time; nothing disables them after that occurrence passes, so the
// same alarm keeps resolving to the following day. Repeating alarms scan the
// next seven calendar days for the first repeat-day candidate strictly after
// now. The initial candidate is the fallback should the full-cycle scan come
// up empty.
func NextFireTime(a models.Alarm, now time.Time) (time.Time, bool) {
	if !a.IsEnabled {
		return time.Time{}, false
	}

	hour := a.Hour24()
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, a.Minute, 0, 0, now.Location())

	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	if len(a.RepeatDays) == 0 {
		return candidate, true
	}

	for i := 0; i < 7; i++ {
		day := candidate.AddDate(0, 0, i)
		if !a.RepeatsOn(WeekdayIndex(day)) {
			continue
		}
		next := time.Date(day.Year(), day.Month(), day.Day(), hour, a.Minute, 0, 0, now.Location())
		if next.After(now) {
			return next, true
		}
	}

	return candidate, true
}

// FormatTimeUntil renders the gap between now and the alarm's next fire time
// for display, or false for a disabled alarm. Differences truncate, they
// never round up.
func FormatTimeUntil(a models.Alarm, now time.Time) (string, bool) {
	fireTime, ok := NextFireTime(a, now)
	if !ok {
		return "", false
	}

	diff := fireTime.Sub(now)
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())

	switch {
	case minutes < 1:
		return "less than a minute", true
	case minutes < 60:
		return fmt.Sprintf("%d %s", minutes, plural(minutes, "minute")), true
	case hours < 24:
		if rem := minutes % 60; rem != 0 {
			return fmt.Sprintf("%dh %dm", hours, rem), true
		}
		return fmt.Sprintf("%d %s", hours, plural(hours, "hour")), true
	default:
		days := hours / 24
		if rem := hours % 24; rem != 0 {
			return fmt.Sprintf("%dd %dh", days, rem), true
		}
		return fmt.Sprintf("%d %s", days, plural(days, "day")), true
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// NextEnabledAlarm picks the enabled alarm with the soonest fire time.
// Ties go to the alarm appearing first in the input.
func NextEnabledAlarm(alarms []models.Alarm, now time.Time) (models.Alarm, bool) {
	var (
		next     models.Alarm
		nextTime time.Time
		found    bool
	)

	for _, a := range alarms {
		if !a.IsEnabled {
			continue
		}
		fireTime, ok := NextFireTime(a, now)
		if !ok {
			continue
		}
		if !found || fireTime.Before(nextTime) {
			next = a
			nextTime = fireTime
			found = true
		}
	}

	return next, found
}

// SortAlarmsByTimeAndDay returns a display ordering of the full list:
// wall-clock time of day ascending, one-shot alarms ahead of repeating ones
// at the same time, then by earliest repeat day. Full ties keep insertion
// order. The input slice is not modified.
func SortAlarmsByTimeAndDay(alarms []models.Alarm) []models.Alarm {
	sorted := make([]models.Alarm, len(alarms))
	copy(sorted, alarms)

	sort.SliceStable(sorted, func(i, j int) bool {
		if a, b := sorted[i].MinuteOfDay(), sorted[j].MinuteOfDay(); a != b {
			return a < b
		}
		return firstRepeatDay(sorted[i]) < firstRepeatDay(sorted[j])
	})

	return sorted
}

func firstRepeatDay(a models.Alarm) int {
	if len(a.RepeatDays) == 0 {
		return -1
	}
	first := 7
	for _, d := range a.RepeatDays {
		if d < first {
			first = d
		}
	}
	return first
}
