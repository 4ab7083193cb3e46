package controllers

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"twviewer/bracket"
	"twviewer/middleware"
	"twviewer/models"
	"twviewer/trackwrestling"
	"twviewer/views"
)

// queryValues keeps repeated keys, which c.Query drops.
func queryValues(c *fiber.Ctx) url.Values {
	v := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		v.Add(string(key), string(value))
	})
	return v
}

// Brackets renders the bracket sidebar and, when the form asked to view, the provider's
// bracket in a sandboxed frame.
func (h *Controller) Brackets(c *fiber.Ctx) error {
	t, ok := middleware.GetTournament(c)
	if !ok {
		return fiber.ErrNotFound
	}
	q := bracket.QueryFromValues(queryValues(c))
	log := h.log.With(zap.String("tournament", t.Path()))

	data, raw, err := h.loadBracket(c.UserContext(), t.EventType, c.Params("tourneyId"), q)
	sel := bracket.Resolve(data, q)

	page := fiber.Map{
		"Title":       t.Name + " Brackets",
		"Tournament":  t,
		"Selection":   sel,
		"Error":       "",
		"BracketHTML": "",
	}
	if err != nil {
		log.Warn("load bracket", zap.Error(err))
		page["Error"] = loadMessage(err)
		c.Status(fiber.StatusBadGateway)
		return c.Render(views.Brackets, page, views.Layout)
	}

	if raw != "" {
		prepared, err := bracket.Prepare(raw, bracket.PrepareOptions{BaseURL: h.bracketBaseURL})
		if err != nil {
			log.Warn("prepare bracket", zap.Error(err))
			page["Error"] = "Failed to load bracket"
			c.Status(fiber.StatusBadGateway)
			return c.Render(views.Brackets, page, views.Layout)
		}
		page["BracketHTML"] = prepared
	}
	return c.Render(views.Brackets, page, views.Layout)
}

// loadBracket fetches the bracket options and, when viewing, the rendered bracket. If the
// form already names the weight id and pages, both calls run together; the prefetched
// bracket is kept only when it matches what the options resolve to.
func (h *Controller) loadBracket(ctx context.Context, et models.EventType, id string, q bracket.Query) (models.BracketData, string, error) {
	weightID, pages, prefetch := q.Prefetch()
	if !prefetch {
		data, err := h.api.GetBrackets(ctx, et, id)
		if err != nil {
			return models.BracketData{}, "", trackwrestling.Failed("brackets", err)
		}
		return h.fetchSelected(ctx, et, id, q, data)
	}

	var (
		data   models.BracketData
		raw    string
		dataOK bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := h.api.GetBrackets(gctx, et, id)
		if err != nil {
			return trackwrestling.Failed("brackets", err)
		}
		data, dataOK = d, true
		return nil
	})
	g.Go(func() error {
		html, err := h.api.GetBracket(gctx, et, id, weightID, pages)
		if err != nil {
			return trackwrestling.Failed("bracket", err)
		}
		raw = html
		return nil
	})
	err := g.Wait()

	var loadErr *trackwrestling.LoadError
	bracketFailed := errors.As(err, &loadErr) && loadErr.What == "bracket"
	if err != nil && !bracketFailed {
		return models.BracketData{}, "", err
	}
	if !dataOK {
		// cancelled when the bracket call failed first
		d, derr := h.api.GetBrackets(ctx, et, id)
		if derr != nil {
			return models.BracketData{}, "", trackwrestling.Failed("brackets", derr)
		}
		data = d
	}

	if bracket.Resolve(data, q).Prefetched(weightID, pages) {
		if bracketFailed {
			return data, "", err
		}
		return data, raw, nil
	}
	return h.fetchSelected(ctx, et, id, q, data)
}

// fetchSelected requests the bracket the resolved selection names, if the form asked to view.
func (h *Controller) fetchSelected(ctx context.Context, et models.EventType, id string, q bracket.Query, data models.BracketData) (models.BracketData, string, error) {
	sel := bracket.Resolve(data, q)
	if !q.View || !sel.Ready() {
		return data, "", nil
	}
	html, err := h.api.GetBracket(ctx, et, id, sel.UpstreamID(), sel.PageIDs())
	if err != nil {
		return data, "", trackwrestling.Failed("bracket", err)
	}
	return data, html, nil
}
