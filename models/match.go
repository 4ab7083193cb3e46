package models

import "fmt"

type MatchStatus string

const (
	StatusInHole     MatchStatus = "in_hole"
	StatusOnDeck     MatchStatus = "on_deck"
	StatusInProgress MatchStatus = "in_progress"
)

// MatchStatuses is the order statuses are offered in the schedule filters.
var MatchStatuses = []MatchStatus{StatusInHole, StatusOnDeck, StatusInProgress}

func (s MatchStatus) Display() string {
	switch s {
	case StatusInHole:
		return "In Hole"
	case StatusOnDeck:
		return "On Deck"
	case StatusInProgress:
		return "In Progress"
	default:
		return string(s)
	}
}

func (s MatchStatus) BadgeClass() string {
	switch s {
	case StatusInHole:
		return "bg-gray-100 text-gray-800 border border-gray-200"
	case StatusOnDeck:
		return "bg-yellow-100 text-yellow-800 border border-yellow-200"
	case StatusInProgress:
		return "bg-emerald-100 text-emerald-800 border border-emerald-200"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

type Match struct {
	Mat         int         `json:"mat"`
	Bout        int         `json:"bout"`
	Status      MatchStatus `json:"status"`
	WeightClass string      `json:"weight_class"`
	Round       string      `json:"round"`
	Wrestler1   Wrestler    `json:"wrestler1"`
	Wrestler2   Wrestler    `json:"wrestler2"`
}

// Key identifies a match within a single schedule fetch. It is not stable across polls.
func (m Match) Key() string {
	return fmt.Sprintf("%d-%d-%s-%s", m.Mat, m.Bout, m.Wrestler1.ID, m.Wrestler2.ID)
}

func (m Match) Wrestlers() []Wrestler {
	return []Wrestler{m.Wrestler1, m.Wrestler2}
}
