package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"twviewer/filters"
	"twviewer/middleware"
	"twviewer/models"
	"twviewer/views"
)

type feature struct {
	Icon        string
	Title       string
	Description string
}

var homeFeatures = []feature{
	{Icon: "⏱", Title: "Real-time Updates", Description: "Mat assignments refresh on their own while a tournament is running, so the schedule you see is the one at the table."},
	{Icon: "🏆", Title: "Tournament Brackets", Description: "Pick a weight class and template and view the bracket pages you care about."},
	{Icon: "🔍", Title: "Smart Filters", Description: "Narrow matches by mat, status or school and spot your wrestlers at a glance."},
}

func (h *Controller) Home(c *fiber.Ctx) error {
	return c.Render(views.Home, fiber.Map{
		"Title":    "Track Wrestling Viewer",
		"Features": homeFeatures,
	}, views.Layout)
}

// Tournaments lists search results, optionally narrowed to one event type.
func (h *Controller) Tournaments(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	et := filters.ParseTypeFilter(c.Query("type"))

	data := fiber.Map{
		"Title":       "Tournaments",
		"Query":       query,
		"Type":        et,
		"Tournaments": []models.Tournament{},
		"Error":       "",
	}

	tournaments, err := h.api.QueryTournaments(c.UserContext(), query)
	if err != nil {
		h.log.Warn("query tournaments", zap.String("query", query), zap.Error(err))
		data["Error"] = tournamentLoadError
		c.Status(fiber.StatusBadGateway)
		return c.Render(views.TournamentList, data, views.Layout)
	}

	data["Tournaments"] = filters.ByEventType(tournaments, et)
	return c.Render(views.TournamentList, data, views.Layout)
}

const tournamentLoadError = "Failed to load tournament data"

// EventType lists one event type's tournaments with the date filter applied.
func (h *Controller) EventType(c *fiber.Ctx) error {
	et := middleware.GetEventType(c)
	query := strings.TrimSpace(c.Query("q"))
	date, err := filters.ParseDateFilter(c.Query("date"))
	if err != nil {
		h.log.Debug("ignoring date filter", zap.String("date", c.Query("date")))
	}

	data := fiber.Map{
		"Title":        et.Display() + " Tournaments",
		"EventType":    et,
		"Query":        query,
		"Date":         date,
		"Tournaments":  []models.Tournament{},
		"Error":        "",
		"EmptyMessage": emptyMessage(et, query),
	}

	tournaments, err := h.api.QueryTournaments(c.UserContext(), query)
	if err != nil {
		h.log.Warn("query tournaments",
			zap.String("event_type", string(et)),
			zap.String("query", query),
			zap.Error(err),
		)
		data["Error"] = tournamentLoadError
		c.Status(fiber.StatusBadGateway)
		return c.Render(views.EventTypeList, data, views.Layout)
	}

	data["Tournaments"] = date.Apply(filters.ByEventType(tournaments, et), h.now())
	return c.Render(views.EventTypeList, data, views.Layout)
}

func emptyMessage(et models.EventType, query string) string {
	msg := "No " + strings.ToLower(et.Display()) + " tournaments found"
	if query != "" {
		msg += " matching your search criteria"
	}
	return msg + "."
}

type tab struct {
	ID     string
	Label  string
	Active bool
}

var detailTabs = []struct{ id, label string }{
	{"overview", "Overview"},
	{"details", "Details"},
	{"venue", "Venue"},
}

// Detail shows one tournament. The tournament is loaded by middleware.LoadTournament.
func (h *Controller) Detail(c *fiber.Ctx) error {
	t, ok := middleware.GetTournament(c)
	if !ok {
		return fiber.ErrNotFound
	}

	active := detailTabs[0].id
	for _, dt := range detailTabs {
		if c.Query("tab") == dt.id {
			active = dt.id
		}
	}
	tabs := make([]tab, 0, len(detailTabs))
	for _, dt := range detailTabs {
		tabs = append(tabs, tab{ID: dt.id, Label: dt.label, Active: dt.id == active})
	}

	return c.Render(views.TournamentDetail, fiber.Map{
		"Title":      t.Name,
		"Tournament": t,
		"Tab":        active,
		"Tabs":       tabs,
	}, views.Layout)
}
