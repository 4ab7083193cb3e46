package controllers

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"twviewer/export"
	"twviewer/filters"
	"twviewer/live"
	"twviewer/middleware"
	"twviewer/models"
	"twviewer/trackwrestling"
	"twviewer/views"
)

const matchLoadError = "Failed to load match data"

func matchFilter(c *fiber.Ctx) filters.MatchFilter {
	return filters.ParseMatchFilter(c.Query("mat"), c.Query("status"), c.Query("schoolId"))
}

func boardData(matches []models.Match, f filters.MatchFilter, updated time.Time, errMsg string) fiber.Map {
	return fiber.Map{
		"Matches":   f.Apply(matches),
		"Total":     len(matches),
		"Filter":    f,
		"UpdatedAt": updated,
		"Error":     errMsg,
	}
}

// Matches renders the mat schedule page. The filter dropdowns are built from the full
// match list; the board shows the filtered one.
func (h *Controller) Matches(c *fiber.Ctx) error {
	t, ok := middleware.GetTournament(c)
	if !ok {
		return fiber.ErrNotFound
	}
	f := matchFilter(c)
	base := t.Path() + "/matches"
	query := f.Encode()

	matches, err := h.api.GetMatches(c.UserContext(), t.EventType, c.Params("tourneyId"))
	board := boardData(matches, f, h.now(), "")
	if err != nil {
		h.log.Warn("get matches", zap.String("tournament", t.Path()), zap.Error(err))
		board = boardData(nil, f, time.Time{}, matchLoadError)
		c.Status(fiber.StatusBadGateway)
	}

	return c.Render(views.Matches, fiber.Map{
		"Title":      t.Name + " Mat Schedule",
		"Tournament": t,
		"Mats":       filters.UniqueMats(matches),
		"Schools":    filters.UniqueSchools(matches),
		"Filter":     f,
		"PageURL":    base + query,
		"BoardURL":   base + "/board" + query,
		"LiveURL":    base + "/live" + query,
		"CSVURL":     t.Path() + "/matches.csv" + query,
		"Board":      board,
	}, views.Layout)
}

// MatchBoard renders only the board fragment, for the Refresh button.
func (h *Controller) MatchBoard(c *fiber.Ctx) error {
	et := middleware.GetEventType(c)
	id := c.Params("tourneyId")
	f := matchFilter(c)

	matches, err := h.api.GetMatches(c.UserContext(), et, id)
	if err != nil {
		h.log.Warn("get matches", zap.String("event_type", string(et)), zap.String("id", id), zap.Error(err))
		c.Status(fiber.StatusBadGateway)
		return c.Render(views.MatchBoard, boardData(nil, f, time.Time{}, matchLoadError))
	}
	return c.Render(views.MatchBoard, boardData(matches, f, h.now(), ""))
}

// MatchesLive streams the board as server-sent events, re-fetching every poll interval.
// Each fetch produces a "board" event carrying the rendered fragment, or an "error" event.
// Every connection gets its own poller, and it stops once a write to the client fails.
func (h *Controller) MatchesLive(c *fiber.Ctx) error {
	// the stream outlives the handler and fiber reuses request buffers, so copy what it keeps
	et := models.EventType(utils.CopyString(string(middleware.GetEventType(c))))
	id := utils.CopyString(c.Params("tourneyId"))
	f := filters.ParseMatchFilter(
		utils.CopyString(c.Query("mat")),
		utils.CopyString(c.Query("status")),
		utils.CopyString(c.Query("schoolId")),
	)
	log := h.log.With(
		zap.String("event_type", string(et)),
		zap.String("id", id),
		zap.String("request_id", utils.CopyString(middleware.GetRequestID(c))),
	)

	poller := live.NewPoller(h.pollInterval, func(ctx context.Context) ([]models.Match, error) {
		return h.api.GetMatches(ctx, et, id)
	})
	poller.Log = log

	render := func(r live.Result[[]models.Match]) (string, error) {
		var buf bytes.Buffer
		if err := h.views.Render(&buf, views.MatchBoard, boardData(r.Value, f, r.Fetched, "")); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(h.boardStream(poller, render, log))
	return nil
}

// boardStream runs after the handler has returned, on the connection's goroutine.
func (h *Controller) boardStream(
	poller *live.Poller[[]models.Match],
	render func(live.Result[[]models.Match]) (string, error),
	log *zap.Logger,
) fasthttp.StreamWriter {
	baseCtx := h.baseCtx
	return func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(baseCtx)
		defer cancel()
		log.Debug("live board opened")
		streamBoard(ctx, cancel, w, poller, render, log)
		log.Debug("live board closed")
	}
}

func streamBoard(
	ctx context.Context,
	cancel context.CancelFunc,
	w *bufio.Writer,
	poller *live.Poller[[]models.Match],
	render func(live.Result[[]models.Match]) (string, error),
	log *zap.Logger,
) {
	_ = poller.Run(ctx, func(r live.Result[[]models.Match]) {
		event, data := "board", ""
		if r.Err != nil {
			event, data = "error", matchLoadError
		} else {
			html, err := render(r)
			if err != nil {
				log.Error("render match board", zap.Error(err))
				event, data = "error", matchLoadError
			} else {
				data = html
			}
		}
		if err := writeEvent(w, r.Seq, event, data); err != nil {
			cancel()
		}
	})
}

// writeEvent writes one SSE event. Each line of data gets its own "data:" field so
// multi-line HTML arrives intact.
func writeEvent(w *bufio.Writer, id uint64, event, data string) error {
	fmt.Fprintf(w, "id: %d\nevent: %s\n", id, event)
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(w, "data: %s\n", strings.TrimSuffix(line, "\r"))
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	return w.Flush()
}

// MatchesCSV downloads the filtered schedule.
func (h *Controller) MatchesCSV(c *fiber.Ctx) error {
	et := middleware.GetEventType(c)
	id := c.Params("tourneyId")
	f := matchFilter(c)

	matches, err := h.api.GetMatches(c.UserContext(), et, id)
	if err != nil {
		return trackwrestling.Failed("match data", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename(et, id)))
	return export.WriteMatchesCSV(c, f.Apply(matches))
}
