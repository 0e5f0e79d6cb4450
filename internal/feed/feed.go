// Package feed fetches the external blog feed and reshapes its entries.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
)

const DefaultURL = "https://medium.com/feed/@mdsadiksadik464"

var ErrUpstream = errors.New("feed upstream unavailable")

// Post is the shape the blog page renders.
type Post struct {
	Title          string `json:"title"`
	Link           string `json:"link"`
	PubDate        string `json:"pubDate"`
	ContentSnippet string `json:"contentSnippet"`
}

type Fetcher interface {
	Fetch(ctx context.Context) ([]Post, error)
}

// Observer receives one call per outbound fetch.
type Observer interface {
	ObserveExternal(service string, status int, dur time.Duration)
}

type Client struct {
	url      string
	hc       *http.Client
	parser   *gofeed.Parser
	observer Observer
}

// New builds a client whose every fetch is bounded by timeout.
func New(feedURL string, timeout time.Duration, observer Observer) *Client {
	if feedURL == "" {
		feedURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:      feedURL,
		hc:       &http.Client{Timeout: timeout},
		parser:   gofeed.NewParser(),
		observer: observer,
	}
}

// Fetch downloads and parses the feed on every call; nothing is cached.
func (c *Client) Fetch(ctx context.Context) ([]Post, error) {
	start := time.Now()
	status := 0
	defer func() {
		if c.observer != nil {
			c.observer.ObserveExternal("medium", status, time.Since(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", "folio/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	parsed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrUpstream, err)
	}

	posts := make([]Post, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		body := item.Content
		if body == "" {
			body = item.Description
		}
		posts = append(posts, Post{
			Title:          item.Title,
			Link:           item.Link,
			PubDate:        item.Published,
			ContentSnippet: Snippet(body),
		})
	}
	return posts, nil
}

// blockTags break words apart; every other tag is removed without a separator
// so inline markup like Go<b>lang</b> stays one word.
var blockTags = map[string]bool{
	"p": true, "br": true, "hr": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "figure": true, "figcaption": true,
	"table": true, "tr": true, "td": true, "th": true, "section": true,
}

// Snippet strips markup from an HTML fragment and collapses whitespace.
func Snippet(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				switch {
				case tt == html.StartTagToken:
					skip++
				case tt == html.EndTagToken && skip > 0:
					skip--
				}
			}
			if blockTags[tag] {
				sb.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}
