package models_test

import (
	"testing"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultAlarm(t *testing.T) {
	now := time.Date(2025, time.June, 2, 14, 37, 12, 0, time.UTC)

	a := models.NewDefaultAlarm(now)

	assert.Empty(t, a.ID)
	assert.Equal(t, "Alarm", a.Label)
	assert.Equal(t, 2, a.Hour)
	assert.Equal(t, 0, a.Minute)
	assert.False(t, a.IsAM)
	assert.True(t, a.IsEnabled)
	assert.Empty(t, a.RepeatDays)
	assert.False(t, a.SkipHolidays)
	assert.Equal(t, models.VoiceFemale, a.SoundSettings.VoiceStyle)
	assert.Equal(t, "en-US", a.SoundSettings.LanguageCode)
	assert.Equal(t, 70, a.Volume)
	assert.Equal(t, models.SnoozeDuration(5), a.SnoozeDuration)
	require.NoError(t, a.Validate())
}

func TestNewDefaultAlarm_MidnightHour(t *testing.T) {
	now := time.Date(2025, time.June, 2, 0, 5, 0, 0, time.UTC)

	a := models.NewDefaultAlarm(now)

	assert.Equal(t, 12, a.Hour)
	assert.True(t, a.IsAM)
	assert.Equal(t, 0, a.Hour24())
}

func TestHour24(t *testing.T) {
	tests := []struct {
		name string
		hour int
		isAM bool
		want int
	}{
		{name: "midnight", hour: 12, isAM: true, want: 0},
		{name: "noon", hour: 12, isAM: false, want: 12},
		{name: "early morning", hour: 1, isAM: true, want: 1},
		{name: "late morning", hour: 11, isAM: true, want: 11},
		{name: "afternoon", hour: 1, isAM: false, want: 13},
		{name: "late evening", hour: 11, isAM: false, want: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := models.Alarm{Hour: tt.hour, IsAM: tt.isAM}
			assert.Equal(t, tt.want, a.Hour24())
			assert.Equal(t, tt.want*60, a.MinuteOfDay())
		})
	}
}

func TestApply(t *testing.T) {
	a := models.NewDefaultAlarm(time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC))
	a.ID = "fixed"

	label := "Workout"
	hour := 6
	days := []int{0, 2, 4}
	sound := models.SoundSettings{VoiceStyle: models.VoiceMale, Language: "German", LanguageCode: "de-DE"}

	a.Apply(models.Patch{
		Label:         &label,
		Hour:          &hour,
		RepeatDays:    &days,
		SoundSettings: &sound,
	})

	assert.Equal(t, "fixed", a.ID)
	assert.Equal(t, "Workout", a.Label)
	assert.Equal(t, 6, a.Hour)
	assert.Equal(t, []int{0, 2, 4}, a.RepeatDays)
	assert.Equal(t, sound, a.SoundSettings)

	// untouched fields keep their values
	assert.Equal(t, 70, a.Volume)
	assert.True(t, a.IsEnabled)

	// the patched slice is copied, not shared
	days[0] = 6
	assert.Equal(t, []int{0, 2, 4}, a.RepeatDays)
}

func TestApply_EmptyPatchIsNoop(t *testing.T) {
	a := models.NewDefaultAlarm(time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC))
	before := a.Clone()

	a.Apply(models.Patch{})

	assert.Equal(t, before, a)
}

func TestClone(t *testing.T) {
	a := models.Alarm{ID: "a", RepeatDays: []int{1, 3}}

	c := a.Clone()
	c.RepeatDays[0] = 5

	assert.Equal(t, []int{1, 3}, a.RepeatDays)
}

func TestAsPatch(t *testing.T) {
	a := models.NewDefaultAlarm(time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC))
	a.ID = "original"
	a.Label = "Wake up"
	a.RepeatDays = []int{5, 6}

	var b models.Alarm
	b.Apply(a.AsPatch())

	assert.Empty(t, b.ID)
	a.ID = ""
	assert.Equal(t, a, b)
}

func TestValidate(t *testing.T) {
	valid := models.NewDefaultAlarm(time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(a *models.Alarm)
	}{
		{name: "hour too low", mutate: func(a *models.Alarm) { a.Hour = 0 }},
		{name: "hour too high", mutate: func(a *models.Alarm) { a.Hour = 13 }},
		{name: "minute out of range", mutate: func(a *models.Alarm) { a.Minute = 60 }},
		{name: "volume out of range", mutate: func(a *models.Alarm) { a.Volume = 101 }},
		{name: "snooze not an option", mutate: func(a *models.Alarm) { a.SnoozeDuration = 7 }},
		{name: "repeat day out of range", mutate: func(a *models.Alarm) { a.RepeatDays = []int{7} }},
		{name: "repeat day duplicated", mutate: func(a *models.Alarm) { a.RepeatDays = []int{1, 1} }},
		{name: "unknown voice style", mutate: func(a *models.Alarm) { a.SoundSettings.VoiceStyle = "robot" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid.Clone()
			tt.mutate(&a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestSnoozeDurationValid(t *testing.T) {
	for _, opt := range models.SnoozeOptions {
		assert.True(t, opt.Valid())
	}
	assert.False(t, models.SnoozeDuration(1).Valid())
	assert.False(t, models.SnoozeDuration(-5).Valid())
}
