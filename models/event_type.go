package models

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventPredefined EventType = "predefined"
	EventOpen       EventType = "open"
	EventTeam       EventType = "team"
	EventFreestyle  EventType = "freestyle"
	EventSeason     EventType = "season"
)

var EventTypes = []EventType{EventPredefined, EventOpen, EventTeam, EventFreestyle, EventSeason}

func ParseEventType(s string) (EventType, error) {
	et := EventType(strings.ToLower(strings.TrimSpace(s)))
	if !et.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return et, nil
}

func (t EventType) Valid() bool {
	switch t {
	case EventPredefined, EventOpen, EventTeam, EventFreestyle, EventSeason:
		return true
	}
	return false
}

// Display capitalises the type name ("open" -> "Open").
func (t EventType) Display() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

func (t EventType) Label() string {
	if !t.Valid() {
		return "Tournament"
	}
	return t.Display() + " Tournament"
}

func (t EventType) BadgeClass() string {
	switch t {
	case EventPredefined:
		return "bg-purple-100 text-purple-800"
	case EventOpen:
		return "bg-green-100 text-green-800"
	case EventTeam:
		return "bg-blue-100 text-blue-800"
	case EventFreestyle:
		return "bg-orange-100 text-orange-800"
	case EventSeason:
		return "bg-pink-100 text-pink-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

func (t EventType) Description() string {
	switch t {
	case EventPredefined:
		return "Pre-arranged tournaments with set brackets and schedules"
	case EventOpen:
		return "Open registration tournaments welcoming all eligible participants"
	case EventTeam:
		return "Team-based competitions featuring school and club wrestling teams"
	case EventFreestyle:
		return "Freestyle wrestling tournaments following international rules"
	case EventSeason:
		return "Season-long tournament series and championships"
	default:
		return ""
	}
}

func (t EventType) Icon() string {
	switch t {
	case EventPredefined:
		return "🎯"
	case EventOpen:
		return "🌟"
	case EventTeam:
		return "👥"
	case EventFreestyle:
		return "🌍"
	case EventSeason:
		return "🏆"
	default:
		return ""
	}
}
