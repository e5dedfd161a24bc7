package schedule_test

import (
	"testing"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, June 2nd 2025, 08:00.
var monday8am = time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

func newAlarm(hour int, minute int, isAM bool, repeatDays ...int) models.Alarm {
	if repeatDays == nil {
		repeatDays = []int{}
	}
	return models.Alarm{
		ID:         "test",
		Hour:       hour,
		Minute:     minute,
		IsAM:       isAM,
		IsEnabled:  true,
		RepeatDays: repeatDays,
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, schedule.WeekdayIndex(monday8am))
	assert.Equal(t, 6, schedule.WeekdayIndex(monday8am.AddDate(0, 0, 6)))
	assert.Equal(t, 0, schedule.WeekdayIndex(monday8am.AddDate(0, 0, 7)))
}

func TestNextFireTime_Disabled(t *testing.T) {
	a := newAlarm(9, 0, true)
	a.IsEnabled = false

	_, ok := schedule.NextFireTime(a, monday8am)
	assert.False(t, ok)
}

func TestNextFireTime_OneShot(t *testing.T) {
	tests := []struct {
		name  string
		alarm models.Alarm
		want  time.Time
	}{
		{
			name:  "later today",
			alarm: newAlarm(9, 30, true),
			want:  time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "already passed rolls to tomorrow",
			alarm: newAlarm(7, 0, true),
			want:  time.Date(2025, time.June, 3, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "exactly now rolls to tomorrow",
			alarm: newAlarm(8, 0, true),
			want:  time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "evening alarm",
			alarm: newAlarm(10, 15, false),
			want:  time.Date(2025, time.June, 2, 22, 15, 0, 0, time.UTC),
		},
		{
			name:  "midnight alarm",
			alarm: newAlarm(12, 0, true),
			want:  time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.NextFireTime(tt.alarm, monday8am)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextFireTime_Repeating(t *testing.T) {
	tests := []struct {
		name  string
		alarm models.Alarm
		want  time.Time
	}{
		{
			name:  "wednesday only, from monday",
			alarm: newAlarm(7, 0, true, 2),
			want:  time.Date(2025, time.June, 4, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "today later",
			alarm: newAlarm(9, 0, true, 0),
			want:  time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "today already passed wraps a full week",
			alarm: newAlarm(7, 0, true, 0),
			want:  time.Date(2025, time.June, 9, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekend alarm",
			alarm: newAlarm(10, 0, true, 5, 6),
			want:  time.Date(2025, time.June, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "every day picks nearest",
			alarm: newAlarm(7, 30, true, 0, 1, 2, 3, 4, 5, 6),
			want:  time.Date(2025, time.June, 3, 7, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.NextFireTime(tt.alarm, monday8am)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimeUntil(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		alarm models.Alarm
		want  string
	}{
		{
			name:  "under a minute",
			now:   time.Date(2025, time.June, 2, 7, 59, 30, 0, time.UTC),
			alarm: newAlarm(8, 0, true),
			want:  "less than a minute",
		},
		{
			name:  "one minute",
			now:   time.Date(2025, time.June, 2, 7, 59, 0, 0, time.UTC),
			alarm: newAlarm(8, 0, true),
			want:  "1 minute",
		},
		{
			name:  "minutes only",
			now:   time.Date(2025, time.June, 2, 7, 15, 0, 0, time.UTC),
			alarm: newAlarm(8, 0, true),
			want:  "45 minutes",
		},
		{
			name:  "hours and minutes",
			now:   monday8am,
			alarm: newAlarm(9, 30, true),
			want:  "1h 30m",
		},
		{
			name:  "exact hours",
			now:   monday8am,
			alarm: newAlarm(10, 0, true),
			want:  "2 hours",
		},
		{
			name:  "single hour",
			now:   monday8am,
			alarm: newAlarm(9, 0, true),
			want:  "1 hour",
		},
		{
			name:  "days and hours",
			now:   monday8am,
			alarm: newAlarm(9, 0, true, 2),
			want:  "2d 1h",
		},
		{
			name:  "exact days",
			now:   monday8am,
			alarm: newAlarm(8, 0, true, 2),
			want:  "2 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.FormatTimeUntil(tt.alarm, tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimeUntil_Disabled(t *testing.T) {
	a := newAlarm(9, 0, true)
	a.IsEnabled = false

	_, ok := schedule.FormatTimeUntil(a, monday8am)
	assert.False(t, ok)
}

func TestNextEnabledAlarm(t *testing.T) {
	early := newAlarm(9, 0, true)
	early.ID = "early"
	late := newAlarm(10, 0, true)
	late.ID = "late"
	disabled := newAlarm(8, 30, true)
	disabled.ID = "disabled"
	disabled.IsEnabled = false

	got, ok := schedule.NextEnabledAlarm([]models.Alarm{late, disabled, early}, monday8am)
	require.True(t, ok)
	assert.Equal(t, "early", got.ID)
}

func TestNextEnabledAlarm_TieKeepsFirst(t *testing.T) {
	first := newAlarm(9, 0, true)
	first.ID = "first"
	second := newAlarm(9, 0, true)
	second.ID = "second"

	got, ok := schedule.NextEnabledAlarm([]models.Alarm{first, second}, monday8am)
	require.True(t, ok)
	assert.Equal(t, "first", got.ID)
}

func TestNextEnabledAlarm_NoneEnabled(t *testing.T) {
	a := newAlarm(9, 0, true)
	a.IsEnabled = false

	_, ok := schedule.NextEnabledAlarm([]models.Alarm{a}, monday8am)
	assert.False(t, ok)

	_, ok = schedule.NextEnabledAlarm(nil, monday8am)
	assert.False(t, ok)
}

func TestSortAlarmsByTimeAndDay(t *testing.T) {
	evening := newAlarm(9, 0, false)
	evening.ID = "evening"
	morningWed := newAlarm(7, 0, true, 2)
	morningWed.ID = "morning-wed"
	morningOneShot := newAlarm(7, 0, true)
	morningOneShot.ID = "morning-one-shot"
	morningMon := newAlarm(7, 0, true, 0, 4)
	morningMon.ID = "morning-mon"

	input := []models.Alarm{evening, morningWed, morningOneShot, morningMon}
	sorted := schedule.SortAlarmsByTimeAndDay(input)

	ids := make([]string, len(sorted))
	for i, a := range sorted {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"morning-one-shot", "morning-mon", "morning-wed", "evening"}, ids)

	// input order untouched
	assert.Equal(t, "evening", input[0].ID)
}

func TestSortAlarmsByTimeAndDay_Stable(t *testing.T) {
	a := newAlarm(7, 0, true, 1)
	a.ID = "a"
	b := newAlarm(7, 0, true, 1)
	b.ID = "b"

	sorted := schedule.SortAlarmsByTimeAndDay([]models.Alarm{a, b})
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
}
