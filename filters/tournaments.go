package filters

import (
	"fmt"
	"strings"
	"time"

	"twviewer/models"
)

// ByEventType keeps the tournaments whose event type is et. An empty et keeps everything.
func ByEventType(tournaments []models.Tournament, et models.EventType) []models.Tournament {
	if et == "" {
		return tournaments
	}
	out := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.EventType == et {
			out = append(out, t)
		}
	}
	return out
}

// ParseTypeFilter maps the tournaments page "type" select to an event type.
// "", "all" and unknown values mean no constraint.
func ParseTypeFilter(s string) models.EventType {
	et, err := models.ParseEventType(s)
	if err != nil {
		return ""
	}
	return et
}

type DateFilter string

const (
	DatesAll      DateFilter = "all"
	DatesUpcoming DateFilter = "upcoming"
	DatesPast     DateFilter = "past"
)

var DateFilters = []DateFilter{DatesAll, DatesUpcoming, DatesPast}

func ParseDateFilter(s string) (DateFilter, error) {
	switch d := DateFilter(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DatesAll, nil
	case DatesAll, DatesUpcoming, DatesPast:
		return d, nil
	default:
		return DatesAll, fmt.Errorf("unknown date filter %q", s)
	}
}

func (d DateFilter) Display() string {
	switch d {
	case DatesUpcoming:
		return "Upcoming"
	case DatesPast:
		return "Past"
	default:
		return "All Dates"
	}
}

// Keep compares the start date with now. Upcoming keeps tournaments with no start date,
// past drops them.
func (d DateFilter) Keep(t models.Tournament, now time.Time) bool {
	switch d {
	case DatesUpcoming:
		return !t.HasStart() || !t.StartDate.Before(now)
	case DatesPast:
		return t.HasStart() && t.StartDate.Before(now)
	default:
		return true
	}
}

func (d DateFilter) Apply(tournaments []models.Tournament, now time.Time) []models.Tournament {
	if d == DatesAll || d == "" {
		return tournaments
	}
	out := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if d.Keep(t, now) {
			out = append(out, t)
		}
	}
	return out
}
