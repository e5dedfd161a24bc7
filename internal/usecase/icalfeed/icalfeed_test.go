package icalfeed_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/usecase/icalfeed"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday8am = time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

func testAlarm() models.Alarm {
	return models.Alarm{
		ID:         "9a1f2b3c-0000-4000-8000-000000000001",
		Label:      "Wake up",
		Hour:       7,
		Minute:     30,
		IsAM:       true,
		IsEnabled:  true,
		RepeatDays: []int{},
		SoundSettings: models.SoundSettings{
			VoiceStyle:   models.VoiceFemale,
			Language:     "English",
			LanguageCode: "en-US",
		},
		Volume:         70,
		SnoozeDuration: 5,
	}
}

func TestEventFromAlarm(t *testing.T) {
	a := testAlarm()

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)

	assert.Equal(t, a.ID, event.Props.Get(ical.PropUID).Value)
	assert.Equal(t, "Wake up", event.Props.Get(ical.PropSummary).Value)
	assert.NotNil(t, event.Props.Get(ical.PropDateTimeStart))
	assert.Nil(t, event.Props.Get(ical.PropRecurrenceRule))
	assert.Nil(t, event.Props.Get(ical.PropStatus))
}

func TestEventFromAlarm_RequiresID(t *testing.T) {
	a := testAlarm()
	a.ID = ""

	_, err := icalfeed.EventFromAlarm(a, monday8am)
	assert.Error(t, err)
}

func TestEventFromAlarm_RepeatingHasRRule(t *testing.T) {
	a := testAlarm()
	a.RepeatDays = []int{0, 2}

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)

	rr := event.Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rr)
	assert.Contains(t, rr.Value, "FREQ=WEEKLY")
	assert.Contains(t, rr.Value, "MO")
	assert.Contains(t, rr.Value, "WE")
}

func TestEventFromAlarm_DisabledIsCancelled(t *testing.T) {
	a := testAlarm()
	a.IsEnabled = false

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)

	status := event.Props.Get(ical.PropStatus)
	require.NotNil(t, status)
	assert.Equal(t, "CANCELLED", status.Value)

	// the would-be occurrence is still present
	assert.NotNil(t, event.Props.Get(ical.PropDateTimeStart))
}

func TestEventFromAlarm_HolidayExceptions(t *testing.T) {
	a := testAlarm()
	a.RepeatDays = []int{0, 1, 2, 3, 4}
	a.SkipHolidays = true
	a.HolidayCalendarID = "us"

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)

	exdate := event.Props.Get(ical.PropExceptionDates)
	require.NotNil(t, exdate)
	assert.Equal(t, 11, len(strings.Split(exdate.Value, ",")))
	assert.Contains(t, exdate.Value, "T")
}

func TestEventFromAlarm_NoExceptionsWithoutCalendar(t *testing.T) {
	a := testAlarm()
	a.SkipHolidays = true

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)
	assert.Nil(t, event.Props.Get(ical.PropExceptionDates))
}

func TestEventFromAlarm_SoundComponent(t *testing.T) {
	a := testAlarm()

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)

	require.Len(t, event.Children, 1)
	valarm := event.Children[0]
	assert.Equal(t, ical.CompAlarm, valarm.Name)
	assert.Equal(t, "AUDIO", valarm.Props.Get(ical.PropAction).Value)
	assert.Equal(t, "PT0S", valarm.Props.Get(ical.PropTrigger).Value)
	assert.Equal(t, "PT5M", valarm.Props.Get(ical.PropDuration).Value)
	assert.Equal(t, "1", valarm.Props.Get(ical.PropRepeat).Value)
	assert.Equal(t, "70", valarm.Props.Get("X-MORROW-VOLUME").Value)
	assert.Equal(t, "female", valarm.Props.Get("X-MORROW-VOICE").Value)
	assert.Equal(t, "en-US", valarm.Props.Get("X-MORROW-LANGUAGE").Value)
}

func TestEventFromAlarm_SnoozeDisabled(t *testing.T) {
	a := testAlarm()
	a.SnoozeDuration = models.SnoozeDisabled

	event, err := icalfeed.EventFromAlarm(a, monday8am)
	require.NoError(t, err)

	valarm := event.Children[0]
	assert.Nil(t, valarm.Props.Get(ical.PropDuration))
	assert.Nil(t, valarm.Props.Get(ical.PropRepeat))
}

func TestCalendarFromAlarms(t *testing.T) {
	first := testAlarm()
	second := testAlarm()
	second.ID = "9a1f2b3c-0000-4000-8000-000000000002"
	second.Label = "Nap"

	cal, err := icalfeed.CalendarFromAlarms([]models.Alarm{first, second}, monday8am)
	require.NoError(t, err)
	require.Len(t, cal.Children, 2)

	// order of the input is preserved
	assert.Equal(t, first.ID, cal.Children[0].Props.Get(ical.PropUID).Value)
	assert.Equal(t, second.ID, cal.Children[1].Props.Get(ical.PropUID).Value)
}

func TestCalendarFromAlarms_PropagatesError(t *testing.T) {
	bad := testAlarm()
	bad.ID = ""

	_, err := icalfeed.CalendarFromAlarms([]models.Alarm{bad}, monday8am)
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	cal, err := icalfeed.CalendarFromAlarm(testAlarm(), monday8am)
	require.NoError(t, err)

	data, err := icalfeed.Encode(cal)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "BEGIN:VEVENT")
	assert.Contains(t, text, "BEGIN:VALARM")
	assert.Contains(t, text, testAlarm().ID)
}
