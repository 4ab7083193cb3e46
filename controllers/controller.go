package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"twviewer/live"
	"twviewer/trackwrestling"
)

type Options struct {
	API          trackwrestling.API
	Views        fiber.Views
	Logger       *zap.Logger
	PollInterval time.Duration
	// BracketBaseURL resolves relative links inside the provider's bracket markup.
	BracketBaseURL string
	// BaseContext ends live streams when the server shuts down.
	BaseContext context.Context
	Now         func() time.Time
}

// Controller holds what the handlers share. Handlers never mutate it.
type Controller struct {
	api            trackwrestling.API
	views          fiber.Views
	log            *zap.Logger
	pollInterval   time.Duration
	bracketBaseURL string
	baseCtx        context.Context
	now            func() time.Time
}

func New(opts Options) *Controller {
	h := &Controller{
		api:            opts.API,
		views:          opts.Views,
		log:            opts.Logger,
		pollInterval:   opts.PollInterval,
		bracketBaseURL: opts.BracketBaseURL,
		baseCtx:        opts.BaseContext,
		now:            opts.Now,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.pollInterval <= 0 {
		h.pollInterval = live.DefaultInterval
	}
	if h.baseCtx == nil {
		h.baseCtx = context.Background()
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}
