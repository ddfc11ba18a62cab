package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/svadhyaya/vedika/internal/cache"
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
	"github.com/svadhyaya/vedika/internal/worker"
)

const pageCacheTTL = 7 * 24 * time.Hour

// Fetcher retrieves hymn pages over HTTP. It honors robots.txt, rate-limits
// per host, and caches raw page text so re-runs stay offline.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *robotsGate
	limiter    *worker.Limiter
	pages      cache.Cache
}

// NewFetcher builds a fetcher from HTTP config. The cache may be nil.
func NewFetcher(cfg model.HTTPConfig, pages cache.Cache) *Fetcher {
	client := &http.Client{
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return fmt.Errorf("stopped after 3 redirects")
			}
			return nil
		},
	}

	f := &Fetcher{
		httpClient: client,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
		limiter:    worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		pages:      pages,
	}
	if cfg.RespectRobots {
		f.robots = newRobotsGate(client, cfg.UserAgent)
	}
	return f
}

// FetchPage returns the visible text of the page at rawURL, using the page
// cache when possible.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (string, error) {
	key := cache.PageKey(rawURL)
	if f.pages != nil {
		if data, ok := f.pages.Get(key); ok {
			return string(data), nil
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	var crawlDelay time.Duration
	if f.robots != nil {
		ok, delay, err := f.robots.allowed(ctx, parsed)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("robots.txt disallows %s", rawURL)
		}
		crawlDelay = delay
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	body, err := f.get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text, err := VisibleText(body)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	if f.pages != nil {
		_ = f.pages.Set(key, []byte(text), pageCacheTTL)
	}
	return text, nil
}

// FetchHymn fetches a hymn's page and fills its Sanskrit, romanized, and
// verse-count fields from the Devanagari lines found there.
func (f *Fetcher) FetchHymn(ctx context.Context, h *model.Hymn) error {
	if h.URL == "" {
		return fmt.Errorf("hymn %s has no URL", h.Reference)
	}

	text, err := f.FetchPage(ctx, h.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", h.Reference, err)
	}

	lines := DevanagariLines(text)
	if len(lines) == 0 {
		h.Status = "no_sanskrit"
		return nil
	}

	h.Sanskrit = strings.Join(lines, " ")
	h.Romanized = sanskrit.Romanize(h.Sanskrit)
	h.Verses = len(lines)
	h.Status = model.HymnStatusComplete
	return nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// VisibleText parses HTML and returns its text nodes, skipping script,
// style, noscript, and iframe subtrees. Lines are preserved so Devanagari
// verse boundaries survive extraction.
func VisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String(), nil
}

// DevanagariLines filters text to the lines that contain Devanagari runes.
func DevanagariLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, r := range line {
			if sanskrit.IsDevanagariRune(r) {
				lines = append(lines, line)
				break
			}
		}
	}
	return lines
}
