package models

import (
	"fmt"
	"time"
)

type VoiceStyle string

const (
	VoiceFemale VoiceStyle = "female"
	VoiceMale   VoiceStyle = "male"
)

// SoundSettings describes the synthesized wake-up voice. Partial updates
// replace the whole struct, field-by-field merging is not supported.
type SoundSettings struct {
	VoiceStyle   VoiceStyle `json:"voiceStyle"`
	Language     string     `json:"language"`
	LanguageCode string     `json:"languageCode"`
}

type SnoozeDuration int

const SnoozeDisabled SnoozeDuration = 0

// SnoozeOptions is the fixed set of selectable snooze durations in minutes.
var SnoozeOptions = []SnoozeDuration{0, 5, 10, 15, 20, 30}

func (d SnoozeDuration) Valid() bool {
	for _, opt := range SnoozeOptions {
		if d == opt {
			return true
		}
	}
	return false
}

// Weekday indices are Monday=0 .. Sunday=6 everywhere in this module.
var DayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

type Alarm struct {
	ID                string         `json:"id"`
	Label             string         `json:"label"`
	Hour              int            `json:"hour"`
	Minute            int            `json:"minute"`
	IsAM              bool           `json:"isAM"`
	IsEnabled         bool           `json:"isEnabled"`
	RepeatDays        []int          `json:"repeatDays"`
	SkipHolidays      bool           `json:"skipHolidays"`
	HolidayCalendarID string         `json:"holidayCalendarId,omitempty"`
	SoundSettings     SoundSettings  `json:"soundSettings"`
	Volume            int            `json:"volume"`
	SnoozeDuration    SnoozeDuration `json:"snoozeDuration"`
}

// NewDefaultAlarm seeds a fresh alarm the way the new-alarm screen expects:
// enabled, current hour at minute zero, one-shot, 70% volume, 5-minute snooze,
// female English voice.
func NewDefaultAlarm(now time.Time) Alarm {
	hour := now.Hour()
	isAM := hour < 12

	switch {
	case hour == 0:
		hour = 12
	case hour > 12:
		hour -= 12
	}

	return Alarm{
		Label:      "Alarm",
		Hour:       hour,
		Minute:     0,
		IsAM:       isAM,
		IsEnabled:  true,
		RepeatDays: []int{},
		SoundSettings: SoundSettings{
			VoiceStyle:   VoiceFemale,
			Language:     "English",
			LanguageCode: "en-US",
		},
		Volume:         70,
		SnoozeDuration: 5,
	}
}

// Hour24 converts the 12-hour clock value to 0..23.
// 12 AM is midnight, 12 PM is noon.
func (a Alarm) Hour24() int {
	switch {
	case a.IsAM && a.Hour == 12:
		return 0
	case !a.IsAM && a.Hour != 12:
		return a.Hour + 12
	default:
		return a.Hour
	}
}

// MinuteOfDay is the alarm's wall-clock time as minutes since midnight.
func (a Alarm) MinuteOfDay() int {
	return a.Hour24()*60 + a.Minute
}

func (a Alarm) RepeatsOn(day int) bool {
	for _, d := range a.RepeatDays {
		if d == day {
			return true
		}
	}
	return false
}

// Clone returns a deep copy; the repeat-day slice is never shared.
func (a Alarm) Clone() Alarm {
	c := a
	c.RepeatDays = make([]int, len(a.RepeatDays))
	copy(c.RepeatDays, a.RepeatDays)
	return c
}

func (a Alarm) Validate() error {
	if a.Hour < 1 || a.Hour > 12 {
		return fmt.Errorf("models - Validate - hour %d out of range [1,12]", a.Hour)
	}
	if a.Minute < 0 || a.Minute > 59 {
		return fmt.Errorf("models - Validate - minute %d out of range [0,59]", a.Minute)
	}
	if a.Volume < 0 || a.Volume > 100 {
		return fmt.Errorf("models - Validate - volume %d out of range [0,100]", a.Volume)
	}
	if !a.SnoozeDuration.Valid() {
		return fmt.Errorf("models - Validate - snooze duration %d not in %v", a.SnoozeDuration, SnoozeOptions)
	}
	seen := make(map[int]bool, len(a.RepeatDays))
	for _, d := range a.RepeatDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("models - Validate - repeat day %d out of range [0,6]", d)
		}
		if seen[d] {
			return fmt.Errorf("models - Validate - repeat day %d duplicated", d)
		}
		seen[d] = true
	}
	switch a.SoundSettings.VoiceStyle {
	case VoiceFemale, VoiceMale:
	default:
		return fmt.Errorf("models - Validate - unknown voice style %q", a.SoundSettings.VoiceStyle)
	}
	return nil
}

// AsPatch renders the whole record as a patch, for committing a draft back
// into the canonical store.
func (a Alarm) AsPatch() Patch {
	c := a.Clone()
	return Patch{
		Label:             &c.Label,
		Hour:              &c.Hour,
		Minute:            &c.Minute,
		IsAM:              &c.IsAM,
		IsEnabled:         &c.IsEnabled,
		RepeatDays:        &c.RepeatDays,
		SkipHolidays:      &c.SkipHolidays,
		HolidayCalendarID: &c.HolidayCalendarID,
		SoundSettings:     &c.SoundSettings,
		Volume:            &c.Volume,
		SnoozeDuration:    &c.SnoozeDuration,
	}
}

// Patch is a partial alarm for shallow merges: nil fields are left untouched,
// present fields replace the record's value wholesale. That includes
// SoundSettings — callers supply the entire nested struct, never a fragment.
type Patch struct {
	Label             *string         `json:"label,omitempty"`
	Hour              *int            `json:"hour,omitempty"`
	Minute            *int            `json:"minute,omitempty"`
	IsAM              *bool           `json:"isAM,omitempty"`
	IsEnabled         *bool           `json:"isEnabled,omitempty"`
	RepeatDays        *[]int          `json:"repeatDays,omitempty"`
	SkipHolidays      *bool           `json:"skipHolidays,omitempty"`
	HolidayCalendarID *string         `json:"holidayCalendarId,omitempty"`
	SoundSettings     *SoundSettings  `json:"soundSettings,omitempty"`
	Volume            *int            `json:"volume,omitempty"`
	SnoozeDuration    *SnoozeDuration `json:"snoozeDuration,omitempty"`
}

// Apply merges the patch into the alarm. The ID is not patchable.
func (a *Alarm) Apply(p Patch) {
	if p.Label != nil {
		a.Label = *p.Label
	}
	if p.Hour != nil {
		a.Hour = *p.Hour
	}
	if p.Minute != nil {
		a.Minute = *p.Minute
	}
	if p.IsAM != nil {
		a.IsAM = *p.IsAM
	}
	if p.IsEnabled != nil {
		a.IsEnabled = *p.IsEnabled
	}
	if p.RepeatDays != nil {
		days := make([]int, len(*p.RepeatDays))
		copy(days, *p.RepeatDays)
		a.RepeatDays = days
	}
	if p.SkipHolidays != nil {
		a.SkipHolidays = *p.SkipHolidays
	}
	if p.HolidayCalendarID != nil {
		a.HolidayCalendarID = *p.HolidayCalendarID
	}
	if p.SoundSettings != nil {
		a.SoundSettings = *p.SoundSettings
	}
	if p.Volume != nil {
		a.Volume = *p.Volume
	}
	if p.SnoozeDuration != nil {
		a.SnoozeDuration = *p.SnoozeDuration
	}
}
