// Package caldav publishes the alarm collection as a single read-only
// CalDAV calendar, so standard calendar clients can subscribe to it.
package caldav

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/store"
	"github.com/Raimguhinov/morrow-go/internal/usecase/etag"
	"github.com/Raimguhinov/morrow-go/internal/usecase/icalfeed"
	"github.com/ceres919/go-webdav"
	"github.com/ceres919/go-webdav/caldav"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// calendarDir is the folder name of the one calendar we expose.
const calendarDir = "alarms"

type backend struct {
	webdav.UserPrincipalBackend
	prefix string
	alarms *store.AlarmStore
}

func New(
	upBackend webdav.UserPrincipalBackend,
	prefix string,
	alarms *store.AlarmStore,
) (caldav.Backend, error) {
	return &backend{
		UserPrincipalBackend: upBackend,
		prefix:               prefix,
		alarms:               alarms,
	}, nil
}

func (s *backend) CalendarHomeSetPath(ctx context.Context) (string, error) {
	upPath, err := s.CurrentUserPrincipal(ctx)
	if err != nil {
		return "", err
	}

	return path.Join(upPath, s.prefix) + "/", nil
}

func (s *backend) calendarPath(ctx context.Context) (string, error) {
	homeSetPath, err := s.CalendarHomeSetPath(ctx)
	if err != nil {
		return "", err
	}
	return path.Join(homeSetPath, calendarDir) + "/", nil
}

func (s *backend) CreateCalendar(ctx context.Context, calendar *caldav.Calendar) error {
	return fmt.Errorf("alarm calendar is read-only")
}

func (s *backend) ListCalendars(ctx context.Context) ([]caldav.Calendar, error) {
	calPath, err := s.calendarPath(ctx)
	if err != nil {
		return nil, err
	}

	return []caldav.Calendar{
		{
			Path:                  calPath,
			Name:                  "Morrow Alarms",
			Description:           "Scheduled wake-up alarms",
			MaxResourceSize:       4096,
			SupportedComponentSet: []string{"VEVENT"},
		},
	}, nil
}

func (s *backend) GetCalendar(ctx context.Context, urlPath string) (*caldav.Calendar, error) {
	cals, err := s.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	for _, cal := range cals {
		if cal.Path == urlPath {
			return &cal, nil
		}
	}
	return nil, fmt.Errorf("calendar for path: %s not found", urlPath)
}

func (s *backend) GetCalendarObject(
	ctx context.Context,
	objPath string,
	req *caldav.CalendarCompRequest,
) (*caldav.CalendarObject, error) {
	uid := strings.TrimSuffix(path.Base(objPath), ".ics")
	if err := uuid.Validate(uid); err != nil {
		return nil, fmt.Errorf("object for path: %s not found", objPath)
	}

	alarm, ok := s.alarms.Get(uid)
	if !ok {
		return nil, fmt.Errorf("object for path: %s not found", objPath)
	}

	return s.objectFromAlarm(ctx, alarm)
}

func (s *backend) ListCalendarObjects(
	ctx context.Context,
	urlPath string,
	req *caldav.CalendarCompRequest,
) ([]caldav.CalendarObject, error) {
	alarms := s.alarms.All()
	objs := make([]caldav.CalendarObject, 0, len(alarms))

	for _, alarm := range alarms {
		obj, err := s.objectFromAlarm(ctx, alarm)
		if err != nil {
			return nil, err
		}
		objs = append(objs, *obj)
	}
	return objs, nil
}

func (s *backend) QueryCalendarObjects(
	ctx context.Context,
	urlPath string,
	query *caldav.CalendarQuery,
) ([]caldav.CalendarObject, error) {
	objs, err := s.ListCalendarObjects(ctx, urlPath, nil)
	if err != nil {
		return nil, err
	}
	return caldav.Filter(query, objs)
}

func (s *backend) PutCalendarObject(
	ctx context.Context,
	objPath string,
	calendar *ical.Calendar,
	opts *caldav.PutCalendarObjectOptions,
) (*caldav.CalendarObject, error) {
	return nil, fmt.Errorf("alarm calendar is read-only, edit alarms over the REST API")
}

func (s *backend) DeleteCalendarObject(ctx context.Context, path string) error {
	return fmt.Errorf("alarm calendar is read-only, edit alarms over the REST API")
}

func (s *backend) GetPrivileges(ctx context.Context) []string {
	return []string{"read", "read-acl", "read-current-user-privilege-set"}
}

func (s *backend) GetCalendarPrivileges(ctx context.Context, cal *caldav.Calendar) []string {
	return []string{"read", "read-acl", "read-current-user-privilege-set"}
}

func (s *backend) objectFromAlarm(ctx context.Context, alarm models.Alarm) (*caldav.CalendarObject, error) {
	calPath, err := s.calendarPath(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	cal, err := icalfeed.CalendarFromAlarm(alarm, now)
	if err != nil {
		return nil, err
	}

	data, err := icalfeed.Encode(cal)
	if err != nil {
		return nil, err
	}

	eTag, err := etag.FromData(data)
	if err != nil {
		return nil, err
	}

	return &caldav.CalendarObject{
		Path:          path.Join(calPath, alarm.ID+".ics"),
		ContentLength: int64(len(data)),
		Data:          cal,
		ETag:          eTag,
		ModTime:       now.UTC(),
	}, nil
}
