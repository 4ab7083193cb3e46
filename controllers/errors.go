package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"twviewer/middleware"
	"twviewer/trackwrestling"
	"twviewer/views"
)

// ErrorHandler turns handler errors into the error page, or {ok:false} on /api routes.
// Upstream failures become 502 with a fixed "Failed to load ..." message.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := classify(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("path", c.Path()),
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(status).JSON(fiber.Map{"ok": false, "error": message})
		}

		c.Status(status)
		rerr := c.Render(views.Error, fiber.Map{
			"Title":   message,
			"Status":  status,
			"Message": message,
		}, views.Layout)
		if rerr != nil {
			logger.Error("render error page", zap.Error(rerr))
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(status).SendString(message)
		}
		return nil
	}
}

func classify(err error) (int, string) {
	var loadErr *trackwrestling.LoadError
	if errors.As(err, &loadErr) {
		return fiber.StatusBadGateway, loadErr.Message()
	}
	if errors.Is(err, trackwrestling.ErrLoadFailed) {
		return fiber.StatusBadGateway, "Failed to load tournament data"
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	return fiber.StatusInternalServerError, "Internal Server Error"
}

// loadMessage is the user-facing text for a failed upstream call.
func loadMessage(err error) string {
	_, message := classify(err)
	return message
}
