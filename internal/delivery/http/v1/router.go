// Package v1 is the REST surface the mobile client talks to. Alarm CRUD,
// the soonest-alarm query, draft editing and the static reference data all
// live under /api/v1.
package v1

import (
	"net/http"

	"github.com/Raimguhinov/morrow-go/internal/store"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	logger *logger.Logger
	alarms *store.AlarmStore
	drafts *store.DraftStore
}

func NewRouter(l *logger.Logger, alarms *store.AlarmStore, drafts *store.DraftStore) http.Handler {
	h := &Handler{
		logger: l,
		alarms: alarms,
		drafts: drafts,
	}

	r := chi.NewRouter()

	r.Route("/alarms", func(r chi.Router) {
		r.Get("/", h.listAlarms)
		r.Post("/", h.createAlarm)
		r.Get("/next", h.nextAlarm)
		r.Get("/export", h.exportCalendar)
		r.Route("/{alarmID}", func(r chi.Router) {
			r.Get("/", h.getAlarm)
			r.Patch("/", h.updateAlarm)
			r.Delete("/", h.deleteAlarm)
			r.Post("/toggle", h.toggleAlarm)
		})
	})

	r.Route("/draft", func(r chi.Router) {
		r.Put("/", h.beginDraft)
		r.Get("/", h.getDraft)
		r.Patch("/", h.updateDraft)
		r.Delete("/", h.discardDraft)
		r.Post("/commit", h.commitDraft)
	})

	r.Route("/reference", func(r chi.Router) {
		r.Get("/holidays", h.listHolidayCalendars)
		r.Get("/holidays/{calendarID}", h.getHolidayCalendar)
		r.Get("/languages", h.listLanguages)
	})

	return r
}
