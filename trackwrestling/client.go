package trackwrestling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"twviewer/models"
)

const (
	defaultTimeout   = 12 * time.Second
	defaultUserAgent = "twviewer/1.0"
	snippetLimit     = 200
)

type envelope[T any] struct {
	OK   bool `json:"ok"`
	Data T    `json:"data"`
}

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:   u,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) QueryTournaments(ctx context.Context, query string) ([]models.Tournament, error) {
	var out []models.Tournament
	err := c.getJSON(ctx, "/tournaments", "query="+url.QueryEscape(query), &out)
	return out, err
}

func (c *Client) GetTournamentInfo(ctx context.Context, eventType models.EventType, id string) (models.Tournament, error) {
	var out models.Tournament
	err := c.getJSON(ctx, tournamentPath(eventType, id), "", &out)
	return out, err
}

func (c *Client) GetMatches(ctx context.Context, eventType models.EventType, id string) ([]models.Match, error) {
	var out []models.Match
	err := c.getJSON(ctx, tournamentPath(eventType, id)+"/matches", "", &out)
	return out, err
}

func (c *Client) GetBrackets(ctx context.Context, eventType models.EventType, id string) (models.BracketData, error) {
	var out models.BracketData
	err := c.getJSON(ctx, tournamentPath(eventType, id)+"/brackets", "", &out)
	return out, err
}

// GetBracket returns the provider's pre-rendered bracket markup for the given pages.
func (c *Client) GetBracket(ctx context.Context, eventType models.EventType, id string, bracketID int, pages []int) (string, error) {
	var out string
	path := tournamentPath(eventType, id) + "/brackets/" + strconv.Itoa(bracketID)
	err := c.getJSON(ctx, path, "pages="+JoinPageIDs(pages), &out)
	return out, err
}

// JoinPageIDs renders page ids the way the provider expects them: "1,2,3".
func JoinPageIDs(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func tournamentPath(eventType models.EventType, id string) string {
	return "/tournaments/" + string(eventType) + "/" + id
}

func (c *Client) getJSON(ctx context.Context, path, rawQuery string, out any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = rawQuery
	target := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: build request %s: %v", ErrLoadFailed, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("upstream request failed", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("%w: GET %s: %v", ErrLoadFailed, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrLoadFailed, path, err)
	}
	c.log.Debug("upstream request",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: GET %s: status %d: %s", ErrLoadFailed, path, resp.StatusCode, snippet(body))
	}

	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: decode %s: %v; body: %s", ErrLoadFailed, path, err, snippet(body))
	}
	if !env.OK {
		return fmt.Errorf("%w: GET %s: provider reported not ok", ErrLoadFailed, path)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode %s data: %v; body: %s", ErrLoadFailed, path, err, snippet(env.Data))
	}
	return nil
}

func snippet(b []byte) string {
	s := string(b)
	if len(s) > snippetLimit {
		s = s[:snippetLimit] + "..."
	}
	return s
}

var _ API = (*Client)(nil)
