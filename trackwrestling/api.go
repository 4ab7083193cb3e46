// Package trackwrestling is the client for the tournament-data provider that fronts
// Trackwrestling. Every call is a read-only GET returning a {"ok": bool, "data": T} envelope.
package trackwrestling

import (
	"context"
	"errors"

	"twviewer/models"
)

// ErrLoadFailed is wrapped by every error the client returns. Callers do not get to tell a
// network failure from a 4xx or 5xx; they show a "failed to load" message either way.
var ErrLoadFailed = errors.New("failed to load tournament data")

// LoadError names what failed to load ("match data", "brackets") for the user-facing
// message while keeping the underlying error for logs.
type LoadError struct {
	What string
	Err  error
}

func Failed(what string, err error) error {
	return &LoadError{What: what, Err: err}
}

func (e *LoadError) Error() string {
	return "load " + e.What + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Message is the static text shown to users.
func (e *LoadError) Message() string {
	return "Failed to load " + e.What
}

type API interface {
	QueryTournaments(ctx context.Context, query string) ([]models.Tournament, error)
	GetTournamentInfo(ctx context.Context, eventType models.EventType, id string) (models.Tournament, error)
	GetMatches(ctx context.Context, eventType models.EventType, id string) ([]models.Match, error)
	GetBrackets(ctx context.Context, eventType models.EventType, id string) (models.BracketData, error)
	GetBracket(ctx context.Context, eventType models.EventType, id string, bracketID int, pages []int) (string, error)
}
