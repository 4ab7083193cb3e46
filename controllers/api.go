package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"twviewer/middleware"
	"twviewer/trackwrestling"
)

// The /api routes mirror the provider's endpoints with the same {ok, data} envelope so
// scripts can read one shape from either. The mirror is normalised: data is decoded into
// the models and encoded again, so dates come back as RFC 3339 and provider fields the
// models do not declare are dropped. Failures come back as {ok:false, error} via
// ErrorHandler.

func sendData(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"ok": true, "data": data})
}

func (h *Controller) APITournaments(c *fiber.Ctx) error {
	tournaments, err := h.api.QueryTournaments(c.UserContext(), strings.TrimSpace(c.Query("query", c.Query("q"))))
	if err != nil {
		return trackwrestling.Failed("tournaments", err)
	}
	return sendData(c, tournaments)
}

func (h *Controller) APITournament(c *fiber.Ctx) error {
	t, err := h.api.GetTournamentInfo(c.UserContext(), middleware.GetEventType(c), c.Params("tourneyId"))
	if err != nil {
		return trackwrestling.Failed("tournament data", err)
	}
	return sendData(c, t)
}

func (h *Controller) APIMatches(c *fiber.Ctx) error {
	matches, err := h.api.GetMatches(c.UserContext(), middleware.GetEventType(c), c.Params("tourneyId"))
	if err != nil {
		return trackwrestling.Failed("match data", err)
	}
	return sendData(c, matches)
}

func (h *Controller) APIBrackets(c *fiber.Ctx) error {
	data, err := h.api.GetBrackets(c.UserContext(), middleware.GetEventType(c), c.Params("tourneyId"))
	if err != nil {
		return trackwrestling.Failed("brackets", err)
	}
	return sendData(c, data)
}

// APIBracket returns the provider's rendered bracket unmodified. pages is a comma list.
func (h *Controller) APIBracket(c *fiber.Ctx) error {
	bracketID, err := strconv.Atoi(c.Params("bracketId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bracketId must be a number")
	}
	var pages []int
	for _, p := range strings.Split(c.Query("pages"), ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			pages = append(pages, id)
		}
	}

	html, err := h.api.GetBracket(c.UserContext(), middleware.GetEventType(c), c.Params("tourneyId"), bracketID, pages)
	if err != nil {
		return trackwrestling.Failed("bracket", err)
	}
	return sendData(c, html)
}
