// Package reference holds the static, read-only tables the app offers for
// selection: public-holiday calendars per country and voice languages.
// Nothing here feeds back into the scheduling math.
package reference

import "time"

type Holiday struct {
	Date string `json:"date"` // ISO date, 2006-01-02
	Name string `json:"name"`
}

type HolidayCalendar struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CountryCode string    `json:"countryCode"`
	Flag        string    `json:"flag"`
	Holidays    []Holiday `json:"holidays"`
}

const holidayDateLayout = "2006-01-02"

// Calendars returns the selectable holiday calendars. The returned slice is
// shared static data; callers must not modify it.
func Calendars() []HolidayCalendar {
	return holidayCalendars
}

func CalendarByID(id string) (HolidayCalendar, bool) {
	for _, c := range holidayCalendars {
		if c.ID == id {
			return c, true
		}
	}
	return HolidayCalendar{}, false
}

func HolidayCount(id string) int {
	c, ok := CalendarByID(id)
	if !ok {
		return 0
	}
	return len(c.Holidays)
}

// IsHoliday reports whether t falls on a holiday of the given calendar.
func IsHoliday(calendarID string, t time.Time) bool {
	c, ok := CalendarByID(calendarID)
	if !ok {
		return false
	}
	date := t.Format(holidayDateLayout)
	for _, h := range c.Holidays {
		if h.Date == date {
			return true
		}
	}
	return false
}

// HolidayDates returns the calendar's dates as instants at midnight in loc,
// for building exclusion lists.
func HolidayDates(calendarID string, loc *time.Location) []time.Time {
	c, ok := CalendarByID(calendarID)
	if !ok {
		return nil
	}
	dates := make([]time.Time, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		d, err := time.ParseInLocation(holidayDateLayout, h.Date, loc)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

var holidayCalendars = []HolidayCalendar{
	{
		ID: "us", Name: "United States", CountryCode: "US", Flag: "🇺🇸",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-20", Name: "Martin Luther King Jr. Day"},
			{Date: "2025-02-17", Name: "Washington's Birthday"},
			{Date: "2025-05-26", Name: "Memorial Day"},
			{Date: "2025-06-19", Name: "Juneteenth"},
			{Date: "2025-07-04", Name: "Independence Day"},
			{Date: "2025-09-01", Name: "Labor Day"},
			{Date: "2025-10-13", Name: "Columbus Day"},
			{Date: "2025-11-11", Name: "Veterans Day"},
			{Date: "2025-11-27", Name: "Thanksgiving Day"},
			{Date: "2025-12-25", Name: "Christmas Day"},
		},
	},
	{
		ID: "uk", Name: "United Kingdom", CountryCode: "GB", Flag: "🇬🇧",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-04-18", Name: "Good Friday"},
			{Date: "2025-04-21", Name: "Easter Monday"},
			{Date: "2025-05-05", Name: "Early May Bank Holiday"},
			{Date: "2025-05-26", Name: "Spring Bank Holiday"},
			{Date: "2025-08-25", Name: "Summer Bank Holiday"},
			{Date: "2025-12-25", Name: "Christmas Day"},
			{Date: "2025-12-26", Name: "Boxing Day"},
		},
	},
	{
		ID: "ca", Name: "Canada", CountryCode: "CA", Flag: "🇨🇦",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-04-18", Name: "Good Friday"},
			{Date: "2025-05-19", Name: "Victoria Day"},
			{Date: "2025-07-01", Name: "Canada Day"},
			{Date: "2025-08-04", Name: "Civic Holiday"},
			{Date: "2025-09-01", Name: "Labour Day"},
			{Date: "2025-09-30", Name: "National Day for Truth and Reconciliation"},
			{Date: "2025-10-13", Name: "Thanksgiving"},
			{Date: "2025-11-11", Name: "Remembrance Day"},
			{Date: "2025-12-25", Name: "Christmas Day"},
		},
	},
	{
		ID: "au", Name: "Australia", CountryCode: "AU", Flag: "🇦🇺",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-26", Name: "Australia Day"},
			{Date: "2025-04-18", Name: "Good Friday"},
			{Date: "2025-04-21", Name: "Easter Monday"},
			{Date: "2025-04-25", Name: "Anzac Day"},
			{Date: "2025-06-09", Name: "King's Birthday"},
			{Date: "2025-12-25", Name: "Christmas Day"},
			{Date: "2025-12-26", Name: "Boxing Day"},
		},
	},
	{
		ID: "de", Name: "Germany", CountryCode: "DE", Flag: "🇩🇪",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "Neujahr"},
			{Date: "2025-04-18", Name: "Karfreitag"},
			{Date: "2025-04-21", Name: "Ostermontag"},
			{Date: "2025-05-01", Name: "Tag der Arbeit"},
			{Date: "2025-05-29", Name: "Christi Himmelfahrt"},
			{Date: "2025-06-09", Name: "Pfingstmontag"},
			{Date: "2025-10-03", Name: "Tag der Deutschen Einheit"},
			{Date: "2025-12-25", Name: "1. Weihnachtstag"},
			{Date: "2025-12-26", Name: "2. Weihnachtstag"},
		},
	},
	{
		ID: "fr", Name: "France", CountryCode: "FR", Flag: "🇫🇷",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "Jour de l'an"},
			{Date: "2025-04-21", Name: "Lundi de Pâques"},
			{Date: "2025-05-01", Name: "Fête du Travail"},
			{Date: "2025-05-08", Name: "Victoire 1945"},
			{Date: "2025-05-29", Name: "Ascension"},
			{Date: "2025-06-09", Name: "Lundi de Pentecôte"},
			{Date: "2025-07-14", Name: "Fête nationale"},
			{Date: "2025-08-15", Name: "Assomption"},
			{Date: "2025-11-01", Name: "Toussaint"},
			{Date: "2025-11-11", Name: "Armistice 1918"},
			{Date: "2025-12-25", Name: "Noël"},
		},
	},
	{
		ID: "jp", Name: "Japan", CountryCode: "JP", Flag: "🇯🇵",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-13", Name: "Coming of Age Day"},
			{Date: "2025-02-11", Name: "National Foundation Day"},
			{Date: "2025-02-23", Name: "Emperor's Birthday"},
			{Date: "2025-03-20", Name: "Vernal Equinox Day"},
			{Date: "2025-04-29", Name: "Showa Day"},
			{Date: "2025-05-03", Name: "Constitution Memorial Day"},
			{Date: "2025-05-04", Name: "Greenery Day"},
			{Date: "2025-05-05", Name: "Children's Day"},
			{Date: "2025-07-21", Name: "Marine Day"},
			{Date: "2025-08-11", Name: "Mountain Day"},
			{Date: "2025-09-15", Name: "Respect for the Aged Day"},
			{Date: "2025-09-23", Name: "Autumnal Equinox Day"},
			{Date: "2025-10-13", Name: "Sports Day"},
			{Date: "2025-11-03", Name: "Culture Day"},
			{Date: "2025-11-23", Name: "Labor Thanksgiving Day"},
		},
	},
	{
		ID: "cn", Name: "China", CountryCode: "CN", Flag: "🇨🇳",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-29", Name: "Spring Festival"},
			{Date: "2025-04-04", Name: "Qingming Festival"},
			{Date: "2025-05-01", Name: "Labour Day"},
			{Date: "2025-05-31", Name: "Dragon Boat Festival"},
			{Date: "2025-10-01", Name: "National Day"},
			{Date: "2025-10-06", Name: "Mid-Autumn Festival"},
		},
	},
	{
		ID: "in", Name: "India", CountryCode: "IN", Flag: "🇮🇳",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-14", Name: "Makar Sankranti"},
			{Date: "2025-01-26", Name: "Republic Day"},
			{Date: "2025-02-26", Name: "Maha Shivaratri"},
			{Date: "2025-03-14", Name: "Holi"},
			{Date: "2025-03-31", Name: "Id-ul-Fitr"},
			{Date: "2025-04-06", Name: "Ram Navami"},
			{Date: "2025-04-10", Name: "Mahavir Jayanti"},
			{Date: "2025-04-18", Name: "Good Friday"},
			{Date: "2025-05-12", Name: "Buddha Purnima"},
			{Date: "2025-06-07", Name: "Id-ul-Zuha"},
			{Date: "2025-07-06", Name: "Muharram"},
			{Date: "2025-08-09", Name: "Raksha Bandhan"},
			{Date: "2025-08-15", Name: "Independence Day"},
			{Date: "2025-08-16", Name: "Janmashtami"},
			{Date: "2025-09-05", Name: "Milad-un-Nabi"},
			{Date: "2025-10-02", Name: "Mahatma Gandhi's Birthday"},
			{Date: "2025-10-03", Name: "Dussehra"},
			{Date: "2025-10-20", Name: "Diwali"},
			{Date: "2025-11-05", Name: "Guru Nanak's Birthday"},
			{Date: "2025-12-25", Name: "Christmas Day"},
		},
	},
	{
		ID: "br", Name: "Brazil", CountryCode: "BR", Flag: "🇧🇷",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "Confraternização Universal"},
			{Date: "2025-03-03", Name: "Carnaval"},
			{Date: "2025-03-04", Name: "Carnaval"},
			{Date: "2025-04-18", Name: "Sexta-feira Santa"},
			{Date: "2025-04-21", Name: "Tiradentes"},
			{Date: "2025-05-01", Name: "Dia do Trabalho"},
			{Date: "2025-06-19", Name: "Corpus Christi"},
			{Date: "2025-09-07", Name: "Independência do Brasil"},
			{Date: "2025-10-12", Name: "Nossa Senhora Aparecida"},
			{Date: "2025-11-02", Name: "Finados"},
			{Date: "2025-11-15", Name: "Proclamação da República"},
			{Date: "2025-12-25", Name: "Natal"},
		},
	},
	{
		ID: "mx", Name: "Mexico", CountryCode: "MX", Flag: "🇲🇽",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "Año Nuevo"},
			{Date: "2025-02-03", Name: "Día de la Constitución"},
			{Date: "2025-03-17", Name: "Natalicio de Benito Juárez"},
			{Date: "2025-05-01", Name: "Día del Trabajo"},
			{Date: "2025-09-16", Name: "Día de la Independencia"},
			{Date: "2025-11-17", Name: "Revolución Mexicana"},
			{Date: "2025-12-25", Name: "Navidad"},
		},
	},
	{
		ID: "es", Name: "Spain", CountryCode: "ES", Flag: "🇪🇸",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "Año Nuevo"},
			{Date: "2025-01-06", Name: "Epifanía del Señor"},
			{Date: "2025-04-18", Name: "Viernes Santo"},
			{Date: "2025-05-01", Name: "Fiesta del Trabajo"},
			{Date: "2025-08-15", Name: "Asunción de la Virgen"},
			{Date: "2025-10-12", Name: "Fiesta Nacional de España"},
			{Date: "2025-11-01", Name: "Todos los Santos"},
			{Date: "2025-12-06", Name: "Día de la Constitución"},
			{Date: "2025-12-08", Name: "Inmaculada Concepción"},
			{Date: "2025-12-25", Name: "Navidad"},
		},
	},
	{
		ID: "it", Name: "Italy", CountryCode: "IT", Flag: "🇮🇹",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "Capodanno"},
			{Date: "2025-01-06", Name: "Epifania"},
			{Date: "2025-04-20", Name: "Pasqua"},
			{Date: "2025-04-21", Name: "Lunedì dell'Angelo"},
			{Date: "2025-04-25", Name: "Festa della Liberazione"},
			{Date: "2025-05-01", Name: "Festa del Lavoro"},
			{Date: "2025-06-02", Name: "Festa della Repubblica"},
			{Date: "2025-08-15", Name: "Ferragosto"},
			{Date: "2025-11-01", Name: "Tutti i Santi"},
			{Date: "2025-12-08", Name: "Immacolata Concezione"},
			{Date: "2025-12-25", Name: "Natale"},
			{Date: "2025-12-26", Name: "Santo Stefano"},
		},
	},
	{
		ID: "kr", Name: "South Korea", CountryCode: "KR", Flag: "🇰🇷",
		Holidays: []Holiday{
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-01-28", Name: "Seollal Holiday"},
			{Date: "2025-01-29", Name: "Seollal"},
			{Date: "2025-01-30", Name: "Seollal Holiday"},
			{Date: "2025-03-01", Name: "Independence Movement Day"},
			{Date: "2025-05-05", Name: "Children's Day"},
			{Date: "2025-05-06", Name: "Buddha's Birthday (substitute)"},
			{Date: "2025-06-06", Name: "Memorial Day"},
			{Date: "2025-08-15", Name: "Liberation Day"},
			{Date: "2025-10-03", Name: "National Foundation Day"},
			{Date: "2025-10-05", Name: "Chuseok Holiday"},
			{Date: "2025-10-06", Name: "Chuseok"},
			{Date: "2025-10-07", Name: "Chuseok Holiday"},
			{Date: "2025-10-09", Name: "Hangeul Day"},
			{Date: "2025-12-25", Name: "Christmas Day"},
		},
	},
}
