package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"twviewer/models"
	"twviewer/trackwrestling"
)

const (
	eventTypeKey  = "event_type"
	tournamentKey = "tournament"
)

// RequireEventType rejects routes whose :eventType is not one of the known event types.
func RequireEventType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		et, err := models.ParseEventType(c.Params("eventType"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Unknown event type")
		}
		c.Locals(eventTypeKey, et)
		return c.Next()
	}
}

// LoadTournament fetches the tournament named by the route once per request and shares it
// with every view rendered for that request.
func LoadTournament(api trackwrestling.API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		et := GetEventType(c)
		id := c.Params("tourneyId")

		t, err := api.GetTournamentInfo(c.UserContext(), et, id)
		if err != nil {
			return trackwrestling.Failed("tournament data", fmt.Errorf("tournament %s/%s: %w", et, id, err))
		}
		if t.EventType == "" {
			t.EventType = et
		}
		if t.ID == 0 {
			t.ID, _ = strconv.Atoi(id)
		}

		c.Locals(tournamentKey, t)
		return c.Next()
	}
}

func GetEventType(c *fiber.Ctx) models.EventType {
	if et, ok := c.Locals(eventTypeKey).(models.EventType); ok {
		return et
	}
	et, _ := models.ParseEventType(c.Params("eventType"))
	return et
}

func GetTournament(c *fiber.Ctx) (models.Tournament, bool) {
	t, ok := c.Locals(tournamentKey).(models.Tournament)
	return t, ok
}
