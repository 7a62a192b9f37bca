// Package resolver selects the best-matching detail page for a query from a
// search-results HTML document.
package resolver

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/nekomori/animeseek/internal/cache"
	"github.com/nekomori/animeseek/internal/fuzzy"
	"github.com/nekomori/animeseek/internal/logging"
	"github.com/nekomori/animeseek/internal/title"
)

// ScoreMatch is one scored candidate page. Strategy records which scoring
// path produced the returned score; evaluation short-circuits, so it is not
// necessarily the highest-scoring path that was ever evaluated.
type ScoreMatch struct {
	URL             string
	Title           string
	Score           fuzzy.Score
	Strategy        fuzzy.Strategy
	NormalizedTitle string
}

// Config tunes page resolution.
type Config struct {
	// MinTitleLength drops anchors whose visible text is shorter.
	MinTitleLength int `mapstructure:"min_title_length"`
	// EarlyExitScore stops scanning once a candidate reaches it.
	EarlyExitScore int `mapstructure:"early_exit_score"`
	// MaxFuzzyCandidates bounds scanning: at most twice this many
	// candidates are evaluated per page.
	MaxFuzzyCandidates int `mapstructure:"max_fuzzy_candidates"`
}

// DefaultConfig returns the resolver tuning used in production.
func DefaultConfig() Config {
	return Config{
		MinTitleLength:     2,
		EarlyExitScore:     95,
		MaxFuzzyCandidates: 10,
	}
}

const (
	compoundAcceptScore = 80
	slugAcceptScore     = 75
	cacheKeyPrefix      = "page_extract_"
)

// Resolver scores candidate links against a query and picks the best URL.
type Resolver struct {
	matcher *fuzzy.Matcher
	cache   *cache.Cache[string]
	cfg     Config
	log     *logging.Logger
}

// New creates a Resolver. cache may be nil to disable memoization; log may
// be nil for silence.
func New(matcher *fuzzy.Matcher, c *cache.Cache[string], cfg Config, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.MinTitleLength <= 0 {
		cfg.MinTitleLength = 2
	}
	if cfg.EarlyExitScore <= 0 {
		cfg.EarlyExitScore = 95
	}
	if cfg.MaxFuzzyCandidates <= 0 {
		cfg.MaxFuzzyCandidates = 10
	}
	return &Resolver{matcher: matcher, cache: c, cfg: cfg, log: log}
}

// ResolvePageURL scans html for candidate detail-page links and returns the
// URL best matching query, or "" when nothing survives filtering. Results
// are memoized per query.
func (r *Resolver) ResolvePageURL(html, query string) string {
	if strings.TrimSpace(html) == "" || strings.TrimSpace(query) == "" {
		return ""
	}

	cacheKey := cacheKeyPrefix + query
	if r.cache != nil {
		if url, ok := r.cache.Get(cacheKey); ok {
			r.log.Debug("resolver", "cache hit", logging.F("query", query))
			return url
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		r.log.Warn("resolver", "unparseable html", logging.F("query", query))
		return ""
	}

	var candidates []ScoreMatch
	var earlyExit *ScoreMatch
	processed := 0
	limit := 2 * r.cfg.MaxFuzzyCandidates

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = strings.TrimSpace(sel.AttrOr("title", ""))
		}
		if href == "" || excluded(href) || len([]rune(text)) < r.cfg.MinTitleLength {
			return true
		}

		processed++
		sm := r.scoreCandidate(href, text, query)
		if sm.Score > 0 {
			candidates = append(candidates, sm)
		}
		if sm.Score.Int() >= r.cfg.EarlyExitScore {
			earlyExit = &sm
			return false
		}
		return processed < limit
	})

	if earlyExit != nil {
		r.log.Debug("resolver", "early exit",
			logging.F("url", earlyExit.URL), logging.F("score", earlyExit.Score))
		r.store(cacheKey, earlyExit.URL)
		return earlyExit.URL
	}

	if len(candidates) == 0 {
		return ""
	}

	sortCandidates(candidates)

	best := candidates[0]
	r.log.Debug("resolver", "best candidate",
		logging.F("url", best.URL), logging.F("score", best.Score),
		logging.F("strategy", best.Strategy))
	r.store(cacheKey, best.URL)
	return best.URL
}

// sortCandidates orders by score descending, ties broken by strategy rank
// (exact > fuzzy > normalized > phonetic).
func sortCandidates(candidates []ScoreMatch) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Strategy.Rank() > candidates[j].Strategy.Rank()
	})
}

func (r *Resolver) store(key, url string) {
	if r.cache != nil && url != "" {
		r.cache.Set(key, url)
	}
}

// scoreCandidate runs the cheap-to-expensive scoring ladder for one link.
func (r *Resolver) scoreCandidate(href, text, query string) ScoreMatch {
	sm := ScoreMatch{URL: href, Title: text}

	if strings.EqualFold(text, query) {
		sm.Score = fuzzy.NewScore(100)
		sm.Strategy = fuzzy.StrategyExact
		return sm
	}
	if strings.Contains(strings.ToLower(text), strings.ToLower(query)) {
		sm.Score = fuzzy.NewScore(90)
		sm.Strategy = fuzzy.StrategyExact
		return sm
	}

	if s := compoundScore(query, text); s >= compoundAcceptScore {
		sm.Score = fuzzy.NewScore(s)
		sm.Strategy = fuzzy.StrategyPhonetic
		return sm
	}

	if slug := urlSlug(href); slug != "" {
		if s := r.matcher.Match(query, slug); s.Int() >= slugAcceptScore {
			sm.Score = s
			sm.Strategy = fuzzy.StrategyNormalized
			return sm
		}
	}

	nq := title.Normalize(query)
	nt := title.Normalize(text)
	sm.Score = r.matcher.Match(nq, nt)
	sm.Strategy = fuzzy.StrategyFuzzy
	sm.NormalizedTitle = nt
	return sm
}

// compoundScore handles the joined/split compound-word spellings of anime
// titles: joined query tokens contained in the title score 85, an expanded
// title containing the raw query scores 80, and partial token hits score up
// to 70.
func compoundScore(query, text string) int {
	lq := strings.ToLower(query)
	lt := strings.ToLower(text)

	tokens := strings.Fields(lq)
	if len(tokens) == 0 {
		return 0
	}

	joined := strings.Join(tokens, "")
	if strings.Contains(strings.Join(strings.Fields(lt), ""), joined) {
		return 85
	}

	if strings.Contains(title.ExpandCompounds(lt), lq) {
		return 80
	}

	matched := 0
	for _, tok := range tokens {
		if strings.Contains(lt, tok) {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	score := matched * 25
	if score > 70 {
		score = 70
	}
	return score
}

// urlSlug extracts the last path segment of a URL with hyphens and
// underscores turned into spaces, for matching against the query.
func urlSlug(href string) string {
	s := href
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}
