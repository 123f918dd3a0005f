// Package pokeapi is the adapter between pokedex and the public PokeAPI REST
// service. Untrusted JSON is decoded into wire shapes and validated into
// pokedex records here; nothing outside this package sees raw responses.
package pokeapi

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

	"golang.org/x/sync/errgroup"

	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokedex"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// SpriteBaseURL is the static sprite repository keyed by numeric id.
	SpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

	defaultUserAgent = "pokedex-cli"

	// maxBodyBytes bounds a single decoded response.
	maxBodyBytes = 8 << 20
)

// SpriteURL returns the static sprite locator for a numeric id.
func SpriteURL(id int) string {
	return SpriteBaseURL + "/" + strconv.Itoa(id) + ".png"
}

// Client fetches list pages and records from PokeAPI. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient returns a Client for the public API unless overridden by opts.
// No request timeout is set; callers bound requests through ctx.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPage fetches one page of {name, url} entries.
func (c *Client) ListPage(ctx context.Context, offset, limit int) (ListPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	endpoint := c.baseURL + "/pokemon?" + q.Encode()

	var raw listResponse
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return ListPage{}, err
	}
	return toListPage(raw)
}

// Pokemon fetches one full record. ref is a numeric id, a name, or an
// absolute resource URL as found in list pages.
func (c *Client) Pokemon(ctx context.Context, ref string) (pokedex.Detail, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return pokedex.Detail{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	endpoint := ref
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		endpoint = c.baseURL + "/pokemon/" + url.PathEscape(strings.ToLower(ref))
	}

	var raw pokemonResponse
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return pokedex.Detail{}, err
	}
	return toDetail(raw)
}

// FetchPage fetches list page number page (1-based) and enriches every entry
// with its id and types. The subordinate requests run concurrently and are
// awaited jointly; any failure, including cancellation, fails the batch.
func (c *Client) FetchPage(ctx context.Context, page int) (pokedex.PageResult, error) {
	if page < 1 {
		return pokedex.PageResult{}, fmt.Errorf("page must be >= 1, got %d", page)
	}

	log := logging.FromContext(ctx)
	offset := (page - 1) * pokedex.PageSize

	lp, err := c.ListPage(ctx, offset, pokedex.PageSize)
	if err != nil {
		return pokedex.PageResult{}, err
	}

	records := make([]pokedex.Summary, len(lp.Entries))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(pokedex.PageSize)

	for i, entry := range lp.Entries {
		g.Go(func() error {
			d, fetchErr := c.Pokemon(gCtx, entry.URL)
			if fetchErr != nil {
				return fmt.Errorf("enriching %s: %w", entry.Name, fetchErr)
			}
			records[i] = d.Summary(entry.Name, entry.URL)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return pokedex.PageResult{}, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "pokeapi").
		Int("page", page).
		Int("entries", len(records)).
		Bool("has_more", lp.HasNext).
		Msg("fetched list page")

	return pokedex.PageResult{Records: records, HasMore: lp.HasNext}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: building request for %s: %w", ErrTransport, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("GET %s: %w", endpoint, ctxErr)
		}
		return fmt.Errorf("%w: GET %s: %w", ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "pokeapi").
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("%w: GET %s: HTTP %d", ErrTransport, endpoint, resp.StatusCode)
	}

	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(v); decodeErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("GET %s: %w", endpoint, ctxErr)
		}
		return malformed("decoding %s: %v", endpoint, decodeErr)
	}
	return nil
}
