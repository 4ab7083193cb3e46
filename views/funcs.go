package views

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"twviewer/filters"
	"twviewer/models"
)

const (
	eventDateLayout = "January 2, 2006"
	shortDateLayout = "Mon, Jan 2"
	longDateLayout  = "Mon, Jan 2, 2006"
)

type FuncOptions struct {
	LogoBaseURL string
	Now         func() time.Time
}

// Funcs is the template function map shared by every page.
func Funcs(opts FuncOptions) template.FuncMap {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return template.FuncMap{
		"cn":                    ClassNames,
		"formatEventDate":       func(d *models.Date) string { return FormatDate(d, eventDateLayout) },
		"shortDate":             func(d *models.Date) string { return FormatDate(d, shortDateLayout) },
		"longDate":              func(d *models.Date) string { return FormatDate(d, longDateLayout) },
		"logoSrc":               func(t models.Tournament) string { return t.LogoSrc(opts.LogoBaseURL) },
		"tournamentStatus":      func(t models.Tournament) string { return t.Status(now()) },
		"tournamentStatusClass": func(t models.Tournament) string { return t.StatusClass(now()) },
		"query":                 Query,
		"wrestlerCard":          WrestlerCardClass,
		"tabClass":              TabClass,
		"eventTypes":            func() []models.EventType { return models.EventTypes },
		"matchStatuses":         func() []models.MatchStatus { return models.MatchStatuses },
		"dateFilters":           func() []filters.DateFilter { return filters.DateFilters },
		"add":                   func(a, b int) int { return a + b },
		"lower":                 strings.ToLower,
	}
}

// ClassNames joins the non-blank class lists.
func ClassNames(classes ...string) string {
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}

func FormatDate(d *models.Date, layout string) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format(layout)
}

// Query builds "?k=v&..." from key/value pairs, skipping empty values. An odd trailing key
// is ignored.
func Query(pairs ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			v.Add(pairs[i], pairs[i+1])
		}
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func WrestlerCardClass(f filters.MatchFilter, w models.Wrestler) string {
	if f.Highlighted(w) {
		return "bg-blue-50 border border-blue-200 hover:bg-blue-100"
	}
	return "bg-gray-50 hover:bg-gray-100"
}

func TabClass(active bool) string {
	if active {
		return "bg-blue-50 text-blue-700"
	}
	return "text-gray-600 hover:text-gray-900 hover:bg-gray-50"
}
