// Package server assembles the fiber app: views, middleware and routes.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"twviewer/config"
	"twviewer/controllers"
	"twviewer/middleware"
	"twviewer/routes"
	"twviewer/trackwrestling"
	"twviewer/views"
)

type Deps struct {
	Config config.Config
	API    trackwrestling.API
	Logger *zap.Logger
	// Shutdown is cancelled when the process is stopping; open live streams end with it.
	Shutdown context.Context
	Now      func() time.Time
}

func New(d Deps) (*fiber.App, error) {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine, err := views.NewEngine(views.FuncOptions{LogoBaseURL: d.Config.LogoBaseURL, Now: d.Now})
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "twviewer",
		Views:                 engine,
		ErrorHandler:          controllers.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	h := controllers.New(controllers.Options{
		API:            d.API,
		Views:          engine,
		Logger:         logger,
		PollInterval:   d.Config.MatchPollInterval,
		BracketBaseURL: d.Config.BracketBaseURL,
		BaseContext:    d.Shutdown,
		Now:            d.Now,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger))
	app.Use(recover.New(recover.Config{EnableStackTrace: d.Config.Development()}))
	app.Use(compress.New(compress.Config{
		// compressed bodies are buffered, which would hold back server-sent events
		Next: func(c *fiber.Ctx) bool { return strings.HasSuffix(c.Path(), "/live") },
	}))

	routes.APIRoutes(app, h, d.Config.CORSAllowOrigins)
	routes.PageRoutes(app, h, d.API)

	return app, nil
}
