// Package auth acquires the bearer token the CityBus API expects.
//
// The token is not issued through any documented channel: the official web
// front-end embeds it in a script block on its stops page, so the resolver
// scrapes it from there. The page shape is brittle and outside our control,
// which is why resolution sits behind an interface.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultPageURL = "https://patra.citybus.gr/el/stops"

// tokenPattern matches the embedded assignment in the page's inline script.
var tokenPattern = regexp.MustCompile(`const token = '([^']+)'`)

// ErrTokenNotFound means the page was fetched but carried no token in the
// expected shape, which usually means the site changed.
var ErrTokenNotFound = errors.New("no bearer token found in page script")

// Resolver produces a bearer token for one API call. Tokens are assumed
// request-scoped: implementations must not cache them.
type Resolver interface {
	Token() (string, error)
}

// WebResolver fetches the official stops page and extracts the token from
// its inline script. Every call re-fetches; there is no retry.
type WebResolver struct {
	client  *http.Client
	pageURL string
}

// NewWebResolver creates a resolver against the official CityBus site.
func NewWebResolver(timeout time.Duration) *WebResolver {
	return &WebResolver{
		client:  &http.Client{Timeout: timeout},
		pageURL: defaultPageURL,
	}
}

// NewWebResolverURL creates a resolver against a specific page URL.
func NewWebResolverURL(pageURL string, timeout time.Duration) *WebResolver {
	return &WebResolver{
		client:  &http.Client{Timeout: timeout},
		pageURL: pageURL,
	}
}

// Token fetches the stops page and returns the embedded bearer token.
func (r *WebResolver) Token() (string, error) {
	req, err := http.NewRequest(http.MethodGet, r.pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("building token page request: %w", err)
	}
	// The origin rejects requests that do not look like a browser.
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching token page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing token page: %w", err)
	}

	var token string
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		if m := tokenPattern.FindStringSubmatch(script.Text()); m != nil {
			token = m[1]
			return false
		}
		return true
	})
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// browserUserAgent mirrors a current Firefox release.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:140.0) Gecko/20100101 Firefox/140.0"
