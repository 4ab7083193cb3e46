// Package twtest provides an in-memory trackwrestling.API for handler and CLI tests.
package twtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"twviewer/models"
	"twviewer/trackwrestling"
)

// Fake serves canned data. Keys for the per-tournament maps are "type/id". Fail makes the
// named method ("GetMatches", ...) return an error wrapping trackwrestling.ErrLoadFailed.
type Fake struct {
	Tournaments []models.Tournament
	Info        map[string]models.Tournament
	Matches     map[string][]models.Match
	Brackets    map[string]models.BracketData
	BracketHTML string

	mu        sync.Mutex
	fail      map[string]bool
	calls     []string
	lastQuery string
	lastPages []int
	lastID    int
}

func key(et models.EventType, id string) string {
	return string(et) + "/" + id
}

func (f *Fake) Fail(method string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail == nil {
		f.fail = make(map[string]bool)
	}
	f.fail[method] = fail
}

func (f *Fake) record(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method)
	if f.fail[method] {
		return fmt.Errorf("%w: %s: status 500", trackwrestling.ErrLoadFailed, method)
	}
	return nil
}

// Calls returns how many times method was called.
func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *Fake) LastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

// LastBracket returns the id and pages of the most recent GetBracket call.
func (f *Fake) LastBracket() (int, []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastID, f.lastPages
}

func (f *Fake) QueryTournaments(ctx context.Context, query string) ([]models.Tournament, error) {
	if err := f.record("QueryTournaments"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastQuery = query
	f.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Tournament, 0, len(f.Tournaments))
	for _, t := range f.Tournaments {
		if q == "" || strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *Fake) GetTournamentInfo(ctx context.Context, et models.EventType, id string) (models.Tournament, error) {
	if err := f.record("GetTournamentInfo"); err != nil {
		return models.Tournament{}, err
	}
	t, ok := f.Info[key(et, id)]
	if !ok {
		return models.Tournament{}, fmt.Errorf("%w: tournament %s not found", trackwrestling.ErrLoadFailed, key(et, id))
	}
	return t, nil
}

func (f *Fake) GetMatches(ctx context.Context, et models.EventType, id string) ([]models.Match, error) {
	if err := f.record("GetMatches"); err != nil {
		return nil, err
	}
	return f.Matches[key(et, id)], nil
}

func (f *Fake) GetBrackets(ctx context.Context, et models.EventType, id string) (models.BracketData, error) {
	if err := f.record("GetBrackets"); err != nil {
		return models.BracketData{}, err
	}
	return f.Brackets[key(et, id)], nil
}

func (f *Fake) GetBracket(ctx context.Context, et models.EventType, id string, bracketID int, pages []int) (string, error) {
	if err := f.record("GetBracket"); err != nil {
		return "", err
	}
	f.mu.Lock()
	f.lastID, f.lastPages = bracketID, append([]int(nil), pages...)
	f.mu.Unlock()
	return f.BracketHTML, nil
}

var _ trackwrestling.API = (*Fake)(nil)
