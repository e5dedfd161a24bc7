package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/internal/schedule"
	"github.com/Raimguhinov/morrow-go/internal/usecase/icalfeed"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type alarmListResponse struct {
	Alarms []models.Alarm `json:"alarms"`
}

type nextAlarmResponse struct {
	Alarm     *models.Alarm `json:"alarm"`
	FireTime  *time.Time    `json:"fireTime,omitempty"`
	TimeUntil string        `json:"timeUntil,omitempty"`
}

func (h *Handler) listAlarms(w http.ResponseWriter, r *http.Request) {
	sorted := schedule.SortAlarmsByTimeAndDay(h.alarms.All())
	h.respond(w, http.StatusOK, alarmListResponse{Alarms: sorted})
}

// createAlarm accepts an optional partial body overlaid onto a default
// alarm. An empty body creates the default alarm as-is.
func (h *Handler) createAlarm(w http.ResponseWriter, r *http.Request) {
	patch, err := decodePatch(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if patch != nil {
		if err := validatePatch(models.NewDefaultAlarm(time.Now()), *patch); err != nil {
			h.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	alarm, err := h.alarms.Add(r.Context(), patch)
	if err != nil {
		h.logger.Error("http - v1 - createAlarm", logger.Err(err))
		h.respondError(w, http.StatusInternalServerError, "failed to persist alarm")
		return
	}

	h.respond(w, http.StatusCreated, alarm)
}

func (h *Handler) nextAlarm(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	alarm, ok := schedule.NextEnabledAlarm(h.alarms.All(), now)
	if !ok {
		h.respond(w, http.StatusOK, nextAlarmResponse{})
		return
	}

	fireTime, _ := schedule.NextFireTime(alarm, now)
	timeUntil, _ := schedule.FormatTimeUntil(alarm, now)

	h.respond(w, http.StatusOK, nextAlarmResponse{
		Alarm:     &alarm,
		FireTime:  &fireTime,
		TimeUntil: timeUntil,
	})
}

func (h *Handler) getAlarm(w http.ResponseWriter, r *http.Request) {
	alarm, ok := h.alarms.Get(chi.URLParam(r, "alarmID"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "alarm not found")
		return
	}
	h.respond(w, http.StatusOK, alarm)
}

func (h *Handler) updateAlarm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "alarmID")

	patch, err := decodePatch(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch == nil {
		h.respondError(w, http.StatusBadRequest, "request body is required")
		return
	}

	if current, ok := h.alarms.Get(id); ok {
		if err := validatePatch(current, *patch); err != nil {
			h.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	if err := h.alarms.Update(r.Context(), id, *patch); err != nil {
		h.logger.Error("http - v1 - updateAlarm", logger.Err(err))
		h.respondError(w, http.StatusInternalServerError, "failed to persist alarm")
		return
	}

	h.respond(w, http.StatusNoContent, nil)
}

func (h *Handler) deleteAlarm(w http.ResponseWriter, r *http.Request) {
	if err := h.alarms.Delete(r.Context(), chi.URLParam(r, "alarmID")); err != nil {
		h.logger.Error("http - v1 - deleteAlarm", logger.Err(err))
		h.respondError(w, http.StatusInternalServerError, "failed to persist alarm")
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

func (h *Handler) toggleAlarm(w http.ResponseWriter, r *http.Request) {
	if err := h.alarms.Toggle(r.Context(), chi.URLParam(r, "alarmID")); err != nil {
		h.logger.Error("http - v1 - toggleAlarm", logger.Err(err))
		h.respondError(w, http.StatusInternalServerError, "failed to persist alarm")
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

// exportCalendar serves the whole collection as a single iCalendar file.
func (h *Handler) exportCalendar(w http.ResponseWriter, r *http.Request) {
	cal, err := icalfeed.CalendarFromAlarms(h.alarms.All(), time.Now())
	if err != nil {
		h.logger.Error("http - v1 - exportCalendar", logger.Err(err))
		h.respondError(w, http.StatusInternalServerError, "failed to build calendar")
		return
	}

	data, err := icalfeed.Encode(cal)
	if err != nil {
		h.logger.Error("http - v1 - exportCalendar", logger.Err(err))
		h.respondError(w, http.StatusInternalServerError, "failed to encode calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="alarms.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("http - v1 - exportCalendar", logger.Err(err))
	}
}

// decodePatch reads an optional partial-alarm body. A missing body yields a
// nil patch, a malformed one an error.
func decodePatch(r *http.Request) (*models.Patch, error) {
	var patch models.Patch

	err := json.NewDecoder(r.Body).Decode(&patch)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.New("malformed request body")
	}
	return &patch, nil
}

// validatePatch checks the record that would result from applying the patch,
// without touching the store.
func validatePatch(base models.Alarm, patch models.Patch) error {
	merged := base.Clone()
	merged.Apply(patch)
	return merged.Validate()
}
