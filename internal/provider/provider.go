// Package provider wires fetching, page resolution and metadata extraction
// into the end-to-end search flow.
package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/nekomori/animeseek/internal/cache"
	"github.com/nekomori/animeseek/internal/logging"
	"github.com/nekomori/animeseek/internal/metrics"
	"github.com/nekomori/animeseek/internal/resolver"
	"github.com/nekomori/animeseek/internal/torrent"
)

// torrentsKeyPrefix namespaces listing-page results in the shared cache.
const torrentsKeyPrefix = "torrents_"

// PageFetcher supplies page bodies. Failures arrive as empty strings.
type PageFetcher interface {
	Page(ctx context.Context, url string) string
}

// Config holds the provider endpoints.
type Config struct {
	// SearchURL is a printf-style template with one %s for the escaped
	// query, e.g. "https://index.example/?f=0&q=%s".
	SearchURL string `mapstructure:"search_url"`
	// BaseURL resolves relative detail-page links found in search results.
	BaseURL string `mapstructure:"base_url"`
}

// Provider runs the search flow: fetch results page, resolve the best detail
// page, fetch it and extract metadata for every magnet entry on it.
// Queries are expected to be pre-translated by the caller.
type Provider struct {
	cfg      Config
	fetcher  PageFetcher
	resolver *resolver.Resolver
	pages    *cache.Cache[[]torrent.Metadata]
	metrics  *metrics.Metrics
	log      *logging.Logger
}

// New creates a Provider. pages may be nil to disable listing memoization;
// met and log may be nil.
func New(cfg Config, fetcher PageFetcher, res *resolver.Resolver, pages *cache.Cache[[]torrent.Metadata], met *metrics.Metrics, log *logging.Logger) *Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &Provider{
		cfg:      cfg,
		fetcher:  fetcher,
		resolver: res,
		pages:    pages,
		metrics:  met,
		log:      log,
	}
}

// Search resolves query to a detail page and returns the metadata of every
// torrent listed there. Fetch failures and unresolvable queries yield an
// empty slice; no error crosses this boundary.
func (p *Provider) Search(ctx context.Context, query string) []torrent.Metadata {
	pageURL := p.ResolvePage(ctx, query)
	if pageURL == "" {
		return nil
	}

	cacheKey := torrentsKeyPrefix + pageURL
	if p.pages != nil {
		if cached, ok := p.pages.Get(cacheKey); ok {
			return cached
		}
	}

	body := p.fetcher.Page(ctx, pageURL)
	if body == "" {
		return nil
	}

	parseStart := time.Now()
	results := ExtractFromListing(body)
	p.metrics.AddParseTime(time.Since(parseStart))

	if p.pages != nil && len(results) > 0 {
		p.pages.Set(cacheKey, results)
	}
	p.log.Info("provider", "search complete",
		logging.F("query", query), logging.F("results", len(results)))
	return results
}

// ResolvePage fetches the search results for query and returns the absolute
// URL of the best-matching detail page, or "" when nothing qualifies.
func (p *Provider) ResolvePage(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}

	searchStart := time.Now()
	searchHTML := p.fetcher.Page(ctx, fmt.Sprintf(p.cfg.SearchURL, url.QueryEscape(query)))
	pageURL := p.resolver.ResolvePageURL(searchHTML, query)
	p.metrics.AddSearchTime(time.Since(searchStart))

	if pageURL == "" {
		p.log.Info("provider", "no confident page match", logging.F("query", query))
		return ""
	}
	return p.absolutize(pageURL)
}

// ExtractFromListing scans a detail page for magnet links and extracts one
// Metadata record per entry. The torrent name comes from the magnet's dn
// parameter, falling back to the entry row's first regular link.
func ExtractFromListing(html string) []torrent.Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var results []torrent.Metadata
	doc.Find(`a[href^="magnet:"]`).Each(func(_ int, sel *goquery.Selection) {
		magnet := sel.AttrOr("href", "")
		name := magnetDisplayName(magnet)
		episodeTitle := rowTitle(sel)
		if name == "" {
			name = episodeTitle
		}
		if name == "" {
			return
		}
		results = append(results, torrent.Extract(name, episodeTitle, magnet))
	})
	return results
}

// rowTitle finds the entry title next to a magnet link: the first non-magnet
// anchor in the same table row.
func rowTitle(sel *goquery.Selection) string {
	row := sel.Closest("tr")
	if row.Length() == 0 {
		return ""
	}
	var found string
	row.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if strings.HasPrefix(link.AttrOr("href", ""), "magnet:") {
			return true
		}
		if t := strings.TrimSpace(link.AttrOr("title", "")); t != "" {
			found = t
			return false
		}
		if t := strings.TrimSpace(link.Text()); t != "" {
			found = t
			return false
		}
		return true
	})
	return found
}

// magnetDisplayName decodes the dn parameter of a magnet link.
func magnetDisplayName(magnet string) string {
	i := strings.Index(magnet, "?")
	if i < 0 {
		return ""
	}
	values, err := url.ParseQuery(magnet[i+1:])
	if err != nil {
		return ""
	}
	return strings.TrimSpace(values.Get("dn"))
}

// absolutize resolves a relative detail-page link against the base URL.
func (p *Provider) absolutize(href string) string {
	base, err := url.Parse(p.cfg.BaseURL)
	if err != nil || p.cfg.BaseURL == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
