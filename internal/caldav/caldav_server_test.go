package caldav_test

import (
	"context"
	"testing"

	appcaldav "github.com/Raimguhinov/morrow-go/internal/caldav"
	"github.com/Raimguhinov/morrow-go/internal/storage/memory"
	"github.com/Raimguhinov/morrow-go/internal/store"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/ceres919/go-webdav/caldav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticPrincipal struct{}

func (staticPrincipal) CurrentUserPrincipal(context.Context) (string, error) {
	return "/admin/", nil
}

func newBackend(t *testing.T) (caldav.Backend, *store.AlarmStore) {
	t.Helper()

	alarms := store.NewAlarmStore(memory.New(), logger.New("error", "dev"))
	require.NoError(t, alarms.Hydrate(context.Background()))

	backend, err := appcaldav.New(staticPrincipal{}, "calendars", alarms)
	require.NoError(t, err)
	return backend, alarms
}

func TestCalendarHomeSetPath(t *testing.T) {
	backend, _ := newBackend(t)

	got, err := backend.CalendarHomeSetPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/admin/calendars/", got)
}

func TestListCalendars(t *testing.T) {
	backend, _ := newBackend(t)

	cals, err := backend.ListCalendars(context.Background())
	require.NoError(t, err)
	require.Len(t, cals, 1)
	assert.Equal(t, "/admin/calendars/alarms/", cals[0].Path)
	assert.Equal(t, []string{"VEVENT"}, cals[0].SupportedComponentSet)
}

func TestGetCalendar(t *testing.T) {
	backend, _ := newBackend(t)

	cal, err := backend.GetCalendar(context.Background(), "/admin/calendars/alarms/")
	require.NoError(t, err)
	assert.Equal(t, "Morrow Alarms", cal.Name)

	_, err = backend.GetCalendar(context.Background(), "/admin/calendars/other/")
	assert.Error(t, err)
}

func TestGetCalendarObject(t *testing.T) {
	backend, alarms := newBackend(t)

	alarm, err := alarms.Add(context.Background(), nil)
	require.NoError(t, err)

	objPath := "/admin/calendars/alarms/" + alarm.ID + ".ics"
	obj, err := backend.GetCalendarObject(context.Background(), objPath, nil)
	require.NoError(t, err)
	assert.Equal(t, objPath, obj.Path)
	assert.NotEmpty(t, obj.ETag)
	assert.Positive(t, obj.ContentLength)
}

func TestGetCalendarObject_NotFound(t *testing.T) {
	backend, _ := newBackend(t)

	// not a uuid
	_, err := backend.GetCalendarObject(context.Background(), "/admin/calendars/alarms/nope.ics", nil)
	assert.Error(t, err)

	// a uuid with no record behind it
	_, err = backend.GetCalendarObject(
		context.Background(),
		"/admin/calendars/alarms/9a1f2b3c-0000-4000-8000-000000000001.ics",
		nil,
	)
	assert.Error(t, err)
}

func TestListCalendarObjects(t *testing.T) {
	backend, alarms := newBackend(t)

	_, err := alarms.Add(context.Background(), nil)
	require.NoError(t, err)
	_, err = alarms.Add(context.Background(), nil)
	require.NoError(t, err)

	objs, err := backend.ListCalendarObjects(context.Background(), "/admin/calendars/alarms/", nil)
	require.NoError(t, err)
	assert.Len(t, objs, 2)
}

func TestReadOnlyOperations(t *testing.T) {
	backend, _ := newBackend(t)
	ctx := context.Background()

	assert.Error(t, backend.CreateCalendar(ctx, &caldav.Calendar{}))
	assert.Error(t, backend.DeleteCalendarObject(ctx, "/admin/calendars/alarms/x.ics"))

	_, err := backend.PutCalendarObject(ctx, "/admin/calendars/alarms/x.ics", nil, nil)
	assert.Error(t, err)
}

func TestPrivilegesAreReadOnly(t *testing.T) {
	backend, _ := newBackend(t)
	ctx := context.Background()

	assert.NotContains(t, backend.GetPrivileges(ctx), "write")
	assert.NotContains(t, backend.GetCalendarPrivileges(ctx, nil), "write-content")
}
