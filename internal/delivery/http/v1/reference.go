package v1

import (
	"net/http"

	"github.com/Raimguhinov/morrow-go/internal/reference"
	"github.com/go-chi/chi/v5"
)

type holidayCalendarSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CountryCode  string `json:"countryCode"`
	Flag         string `json:"flag"`
	HolidayCount int    `json:"holidayCount"`
}

type holidayCalendarListResponse struct {
	Calendars []holidayCalendarSummary `json:"calendars"`
}

type languageListResponse struct {
	Languages []reference.Language `json:"languages"`
}

func (h *Handler) listHolidayCalendars(w http.ResponseWriter, r *http.Request) {
	cals := reference.Calendars()
	summaries := make([]holidayCalendarSummary, 0, len(cals))

	for _, cal := range cals {
		summaries = append(summaries, holidayCalendarSummary{
			ID:           cal.ID,
			Name:         cal.Name,
			CountryCode:  cal.CountryCode,
			Flag:         cal.Flag,
			HolidayCount: len(cal.Holidays),
		})
	}

	h.respond(w, http.StatusOK, holidayCalendarListResponse{Calendars: summaries})
}

func (h *Handler) getHolidayCalendar(w http.ResponseWriter, r *http.Request) {
	cal, ok := reference.CalendarByID(chi.URLParam(r, "calendarID"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "holiday calendar not found")
		return
	}
	h.respond(w, http.StatusOK, cal)
}

func (h *Handler) listLanguages(w http.ResponseWriter, r *http.Request) {
	languages := reference.SearchLanguages(r.URL.Query().Get("q"))
	h.respond(w, http.StatusOK, languageListResponse{Languages: languages})
}
