// Package views holds the server-rendered pages and the helpers they format data with.
package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

const (
	Layout = "layouts/main"

	Home             = "home"
	Error            = "error"
	TournamentList   = "tournaments/index"
	EventTypeList    = "tournaments/event_type"
	TournamentDetail = "tournaments/detail"
	Matches          = "tournaments/matches"
	Brackets         = "tournaments/brackets"
	MatchBoard       = "partials/match_board"
)

// NewEngine parses the embedded templates with the shared function map.
func NewEngine(opts FuncOptions) (*html.Engine, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("open templates: %w", err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(Funcs(opts))
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return engine, nil
}
