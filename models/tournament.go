package models

import (
	"fmt"
	"strings"
	"time"
)

const DefaultLogoBaseURL = "https://www.trackwrestling.com"

// Tournament represents a wrestling tournament from Trackwrestling.
type Tournament struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	EventType     EventType `json:"event_type"`
	StartDate     *Date     `json:"start_date,omitempty"`
	EndDate       *Date     `json:"end_date,omitempty"`
	VenueName     string    `json:"venue_name,omitempty"`
	VenueCity     string    `json:"venue_city,omitempty"`
	VenueState    string    `json:"venue_state,omitempty"`
	VenueZip      string    `json:"venue_zip,omitempty"`
	LogoURL       string    `json:"logo_url,omitempty"`
	EventFlyerURL string    `json:"event_flyer_url,omitempty"`
	WebsiteURL    string    `json:"website_url,omitempty"`
}

func (t Tournament) Path() string {
	return fmt.Sprintf("/tournaments/%s/%d", t.EventType, t.ID)
}

func (t Tournament) HasStart() bool { return t.StartDate != nil && !t.StartDate.IsZero() }
func (t Tournament) HasEnd() bool   { return t.EndDate != nil && !t.EndDate.IsZero() }

// SingleDay reports whether the end date adds nothing to the start date.
func (t Tournament) SingleDay() bool {
	return t.HasStart() && t.HasEnd() && t.StartDate.Equal(t.EndDate.Time)
}

// Location joins city, state and zip, skipping the blank ones.
func (t Tournament) Location() string {
	return joinNonEmpty(", ", t.VenueCity, t.VenueState, t.VenueZip)
}

// CityState is the shorter venue line used on the event-type listing.
func (t Tournament) CityState() string {
	return joinNonEmpty(", ", t.VenueCity, t.VenueState)
}

func (t Tournament) Status(now time.Time) string {
	switch {
	case t.HasStart() && t.StartDate.After(now):
		return "Upcoming"
	case t.HasEnd() && t.EndDate.Before(now):
		return "Over"
	default:
		return "In Progress"
	}
}

func (t Tournament) StatusClass(now time.Time) string {
	if t.Status(now) == "Upcoming" {
		return "bg-emerald-100 text-emerald-800"
	}
	return "bg-blue-100 text-blue-800"
}

// LogoSrc resolves the provider's site-relative logo paths ("./images/x.png") against base.
func (t Tournament) LogoSrc(base string) string {
	if t.LogoURL == "" {
		return ""
	}
	if strings.HasPrefix(t.LogoURL, "./") {
		if base == "" {
			base = DefaultLogoBaseURL
		}
		return strings.TrimRight(base, "/") + t.LogoURL[1:]
	}
	return t.LogoURL
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
