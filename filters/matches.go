// Package filters narrows already-fetched schedules and tournament lists in memory.
package filters

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"twviewer/models"
)

const (
	All     = "all"
	AllMats = -1
)

// MatchFilter is the mat schedule selection carried in the page's query string.
// A field left at All (or AllMats) does not constrain the result.
type MatchFilter struct {
	Mat      int
	Status   string
	SchoolID string
}

func AllMatches() MatchFilter {
	return MatchFilter{Mat: AllMats, Status: All, SchoolID: All}
}

// ParseMatchFilter reads the raw query values. Anything unparseable falls back to "all".
func ParseMatchFilter(mat, status, schoolID string) MatchFilter {
	f := AllMatches()
	if n, err := strconv.Atoi(strings.TrimSpace(mat)); err == nil {
		f.Mat = n
	}
	if s := strings.TrimSpace(status); s != "" {
		f.Status = s
	}
	if s := strings.TrimSpace(schoolID); s != "" {
		f.SchoolID = s
	}
	return f
}

// IsAll reports whether f keeps every match.
func (f MatchFilter) IsAll() bool {
	return f.Mat == AllMats && f.Status == All && f.SchoolID == All
}

func (f MatchFilter) Keep(m models.Match) bool {
	if f.Mat != AllMats && m.Mat != f.Mat {
		return false
	}
	if f.Status != All && string(m.Status) != f.Status {
		return false
	}
	if f.SchoolID != All && m.Wrestler1.Team.ID != f.SchoolID && m.Wrestler2.Team.ID != f.SchoolID {
		return false
	}
	return true
}

// Apply returns the matches f keeps, in their original order.
func (f MatchFilter) Apply(matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	if f.IsAll() {
		return append(out, matches...)
	}
	for _, m := range matches {
		if f.Keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// Highlighted reports whether w belongs to the selected school.
func (f MatchFilter) Highlighted(w models.Wrestler) bool {
	return f.SchoolID != All && w.Team.ID == f.SchoolID
}

func (f MatchFilter) Values() url.Values {
	v := url.Values{}
	if f.Mat != AllMats {
		v.Set("mat", strconv.Itoa(f.Mat))
	}
	if f.Status != All {
		v.Set("status", f.Status)
	}
	if f.SchoolID != All {
		v.Set("schoolId", f.SchoolID)
	}
	return v
}

// Encode is Values().Encode(), prefixed with "?" when non-empty.
func (f MatchFilter) Encode() string {
	if q := f.Values().Encode(); q != "" {
		return "?" + q
	}
	return ""
}

func UniqueMats(matches []models.Match) []int {
	seen := make(map[int]bool)
	mats := make([]int, 0)
	for _, m := range matches {
		if !seen[m.Mat] {
			seen[m.Mat] = true
			mats = append(mats, m.Mat)
		}
	}
	sort.Ints(mats)
	return mats
}

// UniqueSchools collects every team appearing in matches, first occurrence per id, by name.
func UniqueSchools(matches []models.Match) []models.Team {
	seen := make(map[string]bool)
	teams := make([]models.Team, 0)
	for _, m := range matches {
		for _, w := range m.Wrestlers() {
			if seen[w.Team.ID] {
				continue
			}
			seen[w.Team.ID] = true
			teams = append(teams, w.Team)
		}
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
	})
	return teams
}
