// Package icalfeed renders alarms as iCalendar objects: one VEVENT per
// alarm with a weekly RRULE for the repeat days, EXDATE entries for the
// selected holiday calendar and a VALARM child carrying the sound settings.
package icalfeed

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/reference"
	"github.com/Raimguhinov/morrow-go/internal/schedule"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
	"golang.org/x/sync/errgroup"
)

const (
	prodID            = "-//Raimguhinov//morrow-go//EN"
	datetimeUTCFormat = "20060102T150405Z"
)

// Mon=0..Sun=6 to RRULE weekdays.
var rruleDays = [7]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// CalendarFromAlarms builds one calendar holding every alarm. Events are
// assembled concurrently, one goroutine per alarm, the way larger
// collections are scanned elsewhere.
func CalendarFromAlarms(alarms []models.Alarm, now time.Time) (*ical.Calendar, error) {
	events := make([]*ical.Component, len(alarms))

	eg := errgroup.Group{}
	for i, a := range alarms {
		i, a := i, a
		eg.Go(func() error {
			event, err := EventFromAlarm(a, now)
			if err != nil {
				return err
			}
			events[i] = event
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	cal := newCalendar()
	cal.Children = append(cal.Children, events...)
	return cal, nil
}

// CalendarFromAlarm builds a single-event calendar, the shape a CalDAV
// object wants.
func CalendarFromAlarm(a models.Alarm, now time.Time) (*ical.Calendar, error) {
	event, err := EventFromAlarm(a, now)
	if err != nil {
		return nil, err
	}

	cal := newCalendar()
	cal.Children = append(cal.Children, event)
	return cal, nil
}

func newCalendar() *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	return cal
}

// EventFromAlarm renders one alarm. Disabled alarms keep their would-be
// next occurrence as DTSTART and are marked STATUS:CANCELLED so the feed
// stays addressable per alarm id.
func EventFromAlarm(a models.Alarm, now time.Time) (*ical.Component, error) {
	if a.ID == "" {
		return nil, fmt.Errorf("icalfeed - EventFromAlarm - alarm has no id")
	}

	armed := a.Clone()
	armed.IsEnabled = true
	fireTime, _ := schedule.NextFireTime(armed, now)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, a.ID)
	event.Props.SetText(ical.PropSummary, a.Label)
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, fireTime.UTC())

	if !a.IsEnabled {
		event.Props.SetText(ical.PropStatus, "CANCELLED")
	}

	if len(a.RepeatDays) > 0 {
		ro := &rrule.ROption{
			Freq:    rrule.WEEKLY,
			Dtstart: fireTime.UTC(),
		}
		for _, d := range a.RepeatDays {
			ro.Byweekday = append(ro.Byweekday, rruleDays[d])
		}
		event.Props.SetRecurrenceRule(ro)
	}

	if a.SkipHolidays && a.HolidayCalendarID != "" {
		if exString := holidayExceptions(a, fireTime); exString != "" {
			exProp := ical.NewProp(ical.PropExceptionDates)
			exProp.SetValueType(ical.ValueDateTime)
			exProp.Value = exString
			event.Props.Set(exProp)
		}
	}

	event.Children = append(event.Children, alarmComponent(a))
	return event.Component, nil
}

// holidayExceptions joins the calendar's holiday dates, at the alarm's
// wall-clock time, into an EXDATE value list.
func holidayExceptions(a models.Alarm, fireTime time.Time) string {
	dates := reference.HolidayDates(a.HolidayCalendarID, fireTime.Location())

	var exString string
	for _, d := range dates {
		ex := time.Date(d.Year(), d.Month(), d.Day(), a.Hour24(), a.Minute, 0, 0, d.Location())
		value := ex.UTC().Format(datetimeUTCFormat)
		if exString == "" {
			exString = value
			continue
		}
		exString = fmt.Sprintf("%s,%s", exString, value)
	}
	return exString
}

func alarmComponent(a models.Alarm) *ical.Component {
	valarm := &ical.Component{
		Name:  ical.CompAlarm,
		Props: make(ical.Props),
	}

	valarm.Props.SetText(ical.PropAction, "AUDIO")
	valarm.Props.SetText(ical.PropDescription, a.Label)

	trigger := ical.NewProp(ical.PropTrigger)
	trigger.SetValueType(ical.ValueDuration)
	trigger.Value = "PT0S"
	valarm.Props.Set(trigger)

	if a.SnoozeDuration != models.SnoozeDisabled {
		duration := ical.NewProp(ical.PropDuration)
		duration.SetValueType(ical.ValueDuration)
		duration.Value = fmt.Sprintf("PT%dM", a.SnoozeDuration)
		valarm.Props.Set(duration)

		repeat := ical.NewProp(ical.PropRepeat)
		repeat.SetValueType(ical.ValueInt)
		repeat.Value = "1"
		valarm.Props.Set(repeat)
	}

	volume := ical.NewProp("X-MORROW-VOLUME")
	volume.SetValueType(ical.ValueInt)
	volume.Value = strconv.Itoa(a.Volume)
	valarm.Props.Set(volume)

	voice := ical.NewProp("X-MORROW-VOICE")
	voice.SetValueType(ical.ValueText)
	voice.Value = string(a.SoundSettings.VoiceStyle)
	valarm.Props.Set(voice)

	language := ical.NewProp("X-MORROW-LANGUAGE")
	language.SetValueType(ical.ValueText)
	language.Value = a.SoundSettings.LanguageCode
	valarm.Props.Set(language)

	return valarm
}

// Encode serializes a calendar to its wire form.
func Encode(cal *ical.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	f := bufio.NewWriter(&buf)

	enc := ical.NewEncoder(f)
	if err := enc.Encode(cal); err != nil {
		return nil, err
	}
	if err := f.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
