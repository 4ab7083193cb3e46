package trackwrestling

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twviewer/models"
)

type recordedRequest struct {
	Path     string
	RawQuery string
	Agent    string
}

func newUpstream(t *testing.T, routes map[string]string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, recordedRequest{Path: r.URL.Path, RawQuery: r.URL.RawQuery, Agent: r.UserAgent()})
		mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newTestClient(t *testing.T, base string) *Client {
	t.Helper()
	c, err := NewClient(base, WithTimeout(2*time.Second), WithUserAgent("twviewer-test"))
	require.NoError(t, err)
	return c
}

func TestQueryTournamentsEncodesQuery(t *testing.T) {
	srv, seen := newUpstream(t, map[string]string{
		"/tournaments": `{"ok":true,"data":[{"id":812,"name":"Iowa State Duals","event_type":"team","start_date":"2025-01-10"}]}`,
	})
	c := newTestClient(t, srv.URL)

	got, err := c.QueryTournaments(context.Background(), "state & duals")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 812, got[0].ID)
	assert.Equal(t, models.EventTeam, got[0].EventType)

	require.Len(t, *seen, 1)
	assert.Equal(t, "query=state+%26+duals", (*seen)[0].RawQuery)
	assert.Equal(t, "twviewer-test", (*seen)[0].Agent)
}

func TestQueryTournamentsSendsEmptyQuery(t *testing.T) {
	srv, seen := newUpstream(t, map[string]string{"/tournaments": `{"ok":true,"data":[]}`})
	c := newTestClient(t, srv.URL)

	got, err := c.QueryTournaments(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "query=", (*seen)[0].RawQuery)
}

func TestTournamentScopedPaths(t *testing.T) {
	srv, seen := newUpstream(t, map[string]string{
		"/api/tournaments/open/77":                 `{"ok":true,"data":{"id":77,"name":"Cadet Open","event_type":"open"}}`,
		"/api/tournaments/open/77/matches":         `{"ok":true,"data":[{"mat":1,"bout":101,"status":"on_deck","weight_class":"113","round":"Quarters","wrestler1":{"id":"a","first_name":"A","last_name":"One","team":{"id":"t1","name":"Team 1","short_name":"T1"}},"wrestler2":{"id":"b","first_name":"B","last_name":"Two","team":{"id":"t2","name":"Team 2","short_name":"T2"}}}]}`,
		"/api/tournaments/open/77/brackets":        `{"ok":true,"data":{"weights":[{"weight_index":0,"weight_id":5001,"weight_name":"113","bracket_id":9}],"templates":[],"bracket_types":[{"bracketId":9}]}}`,
		"/api/tournaments/open/77/brackets/5001":   `{"ok":true,"data":"<table class=\"standard\"></table>"}`,
	})
	c := newTestClient(t, srv.URL+"/api/")
	ctx := context.Background()

	info, err := c.GetTournamentInfo(ctx, models.EventOpen, "77")
	require.NoError(t, err)
	assert.Equal(t, "Cadet Open", info.Name)

	matches, err := c.GetMatches(ctx, models.EventOpen, "77")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, models.StatusOnDeck, matches[0].Status)
	assert.Equal(t, "Team 2", matches[0].Wrestler2.Team.Name)

	brackets, err := c.GetBrackets(ctx, models.EventOpen, "77")
	require.NoError(t, err)
	require.Len(t, brackets.Weights, 1)
	assert.Equal(t, 9, brackets.BracketTypes[0].BracketID)

	html, err := c.GetBracket(ctx, models.EventOpen, "77", 5001, []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, `<table class="standard"></table>`, html)

	last := (*seen)[len(*seen)-1]
	assert.Equal(t, "/api/tournaments/open/77/brackets/5001", last.Path)
	assert.Equal(t, "pages=3,4", last.RawQuery)
}

func TestNotOKEnvelopeIsLoadFailure(t *testing.T) {
	srv, _ := newUpstream(t, map[string]string{
		"/tournaments/team/1/brackets": `{"ok":false,"data":null}`,
	})
	c := newTestClient(t, srv.URL)

	_, err := c.GetBrackets(context.Background(), models.EventTeam, "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailed))
}

func TestErrorsAllWrapLoadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tournaments/open/1":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"ok":true,"data":{}}`)
		case "/tournaments/open/1/matches":
			fmt.Fprint(w, `<html>maintenance</html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.GetTournamentInfo(ctx, models.EventOpen, "1")
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.Contains(t, err.Error(), "status 500")

	_, err = c.GetMatches(ctx, models.EventOpen, "1")
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.Contains(t, err.Error(), "maintenance")

	_, err = c.GetBrackets(ctx, models.EventOpen, "1")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestTransportErrorIsLoadFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := newTestClient(t, base)
	_, err := c.QueryTournaments(context.Background(), "x")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestContextCancellationStopsRequest(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetMatches(ctx, models.EventSeason, "3")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
	_, err = NewClient("localhost:8000")
	assert.Error(t, err)
	_, err = NewClient("http://localhost:8000")
	assert.NoError(t, err)
}

func TestJoinPageIDs(t *testing.T) {
	assert.Equal(t, "", JoinPageIDs(nil))
	assert.Equal(t, "7", JoinPageIDs([]int{7}))
	assert.Equal(t, "1,2,3", JoinPageIDs([]int{1, 2, 3}))
}
