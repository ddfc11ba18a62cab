package corpus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsGate caches per-host robots.txt verdicts for the hymn fetcher.
// Unreachable robots.txt means allow; an explicit disallow is final.
type robotsGate struct {
	mu         sync.RWMutex
	byHost     map[string]*robotstxt.RobotsData
	httpClient *http.Client
	userAgent  string
}

func newRobotsGate(client *http.Client, userAgent string) *robotsGate {
	return &robotsGate{
		byHost:     make(map[string]*robotstxt.RobotsData),
		httpClient: client,
		userAgent:  userAgent,
	}
}

// allowed reports whether the URL may be fetched and the crawl delay the
// site requests for our agent.
func (g *robotsGate) allowed(ctx context.Context, u *url.URL) (bool, time.Duration, error) {
	data, err := g.dataFor(ctx, u)
	if err != nil {
		return true, 0, nil
	}

	ok := data.TestAgent(u.Path, g.userAgent)

	var delay time.Duration
	if group := data.FindGroup(g.userAgent); group != nil {
		delay = group.CrawlDelay
	}
	return ok, delay, nil
}

func (g *robotsGate) dataFor(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	g.mu.RLock()
	data, ok := g.byHost[u.Host]
	g.mu.RUnlock()
	if ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("robots request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	g.mu.Lock()
	g.byHost[u.Host] = data
	g.mu.Unlock()
	return data, nil
}
