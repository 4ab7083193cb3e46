package filters

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twviewer/models"
)

func wrestler(id, teamID, teamName string) models.Wrestler {
	return models.Wrestler{ID: id, FirstName: id, Team: models.Team{ID: teamID, Name: teamName}}
}

func schedule() []models.Match {
	return []models.Match{
		{Mat: 2, Bout: 201, Status: models.StatusInProgress, Wrestler1: wrestler("a", "t-ia", "Iowa"), Wrestler2: wrestler("b", "t-psu", "Penn State")},
		{Mat: 1, Bout: 101, Status: models.StatusOnDeck, Wrestler1: wrestler("c", "t-osu", "Ohio State"), Wrestler2: wrestler("d", "t-ia", "Iowa")},
		{Mat: 2, Bout: 202, Status: models.StatusInHole, Wrestler1: wrestler("e", "t-asu", "arizona State"), Wrestler2: wrestler("f", "t-mn", "Minnesota")},
		{Mat: 10, Bout: 1001, Status: models.StatusOnDeck, Wrestler1: wrestler("g", "t-psu", "Penn State"), Wrestler2: wrestler("h", "t-mn", "Minnesota")},
	}
}

func bouts(ms []models.Match) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Bout
	}
	return out
}

func TestFilterByMatReturnsOnlyThatMat(t *testing.T) {
	got := ParseMatchFilter("2", "", "").Apply(schedule())
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Equal(t, 2, m.Mat)
	}
	assert.Equal(t, []int{201, 202}, bouts(got))
}

func TestFilterAllReturnsUnfilteredSet(t *testing.T) {
	for _, f := range []MatchFilter{
		AllMatches(),
		ParseMatchFilter("all", "all", "all"),
		ParseMatchFilter("", "", ""),
		ParseMatchFilter("not-a-mat", "", ""),
	} {
		assert.True(t, f.IsAll())
		if diff := cmp.Diff(schedule(), f.Apply(schedule())); diff != "" {
			t.Fatalf("filter %+v changed the schedule (-want +got):\n%s", f, diff)
		}
	}
}

func TestFilterAllCopiesTheSchedule(t *testing.T) {
	in := schedule()
	out := AllMatches().Apply(in)
	out[0].Bout = -1
	assert.NotEqual(t, -1, in[0].Bout)
	assert.NotNil(t, AllMatches().Apply(nil))
}

func TestFilterCombinesFields(t *testing.T) {
	assert.Equal(t, []int{101, 1001}, bouts(ParseMatchFilter("", "on_deck", "").Apply(schedule())))
	assert.Equal(t, []int{201, 101}, bouts(ParseMatchFilter("", "", "t-ia").Apply(schedule())))
	assert.Equal(t, []int{201}, bouts(ParseMatchFilter("2", "", "t-psu").Apply(schedule())))
	assert.Empty(t, ParseMatchFilter("1", "in_hole", "").Apply(schedule()))
}

func TestHighlighted(t *testing.T) {
	w := wrestler("a", "t-ia", "Iowa")
	assert.False(t, AllMatches().Highlighted(w))
	assert.True(t, ParseMatchFilter("", "", "t-ia").Highlighted(w))
	assert.False(t, ParseMatchFilter("", "", "t-psu").Highlighted(w))
}

func TestMatchFilterEncode(t *testing.T) {
	assert.Equal(t, "", AllMatches().Encode())
	assert.Equal(t, "?mat=3&schoolId=t-ia&status=on_deck", ParseMatchFilter("3", "on_deck", "t-ia").Encode())
}

func TestUniqueMatsSorted(t *testing.T) {
	assert.Equal(t, []int{1, 2, 10}, UniqueMats(schedule()))
	assert.Empty(t, UniqueMats(nil))
}

func TestUniqueSchoolsByNameFirstWins(t *testing.T) {
	ms := schedule()
	ms = append(ms, models.Match{Wrestler1: wrestler("x", "t-ia", "Iowa Hawkeyes"), Wrestler2: wrestler("y", "t-osu", "Ohio State")})

	got := UniqueSchools(ms)
	names := make([]string, len(got))
	for i, team := range got {
		names[i] = team.Name
	}
	assert.Equal(t, []string{"arizona State", "Iowa", "Minnesota", "Ohio State", "Penn State"}, names)
}

func TestByEventType(t *testing.T) {
	ts := []models.Tournament{
		{ID: 1, EventType: models.EventOpen},
		{ID: 2, EventType: models.EventTeam},
		{ID: 3, EventType: models.EventOpen},
	}
	got := ByEventType(ts, models.EventOpen)
	require.Len(t, got, 2)
	for _, tr := range got {
		assert.Equal(t, models.EventOpen, tr.EventType)
	}
	assert.Len(t, ByEventType(ts, ParseTypeFilter("all")), 3)
	assert.Empty(t, ByEventType(ts, models.EventSeason))
}

func TestDateFilter(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	ts := []models.Tournament{
		{ID: 1, StartDate: models.NewDate(now.AddDate(0, 0, -7))},
		{ID: 2, StartDate: models.NewDate(now.AddDate(0, 0, 7))},
		{ID: 3},
	}
	ids := func(in []models.Tournament) []int {
		out := make([]int, len(in))
		for i, tr := range in {
			out[i] = tr.ID
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 3}, ids(DatesAll.Apply(ts, now)))
	assert.Equal(t, []int{2, 3}, ids(DatesUpcoming.Apply(ts, now)))
	assert.Equal(t, []int{1}, ids(DatesPast.Apply(ts, now)))
}

func TestParseDateFilter(t *testing.T) {
	d, err := ParseDateFilter("")
	require.NoError(t, err)
	assert.Equal(t, DatesAll, d)

	d, err = ParseDateFilter("Past")
	require.NoError(t, err)
	assert.Equal(t, DatesPast, d)

	d, err = ParseDateFilter("yesterday")
	assert.Error(t, err)
	assert.Equal(t, DatesAll, d)
}
