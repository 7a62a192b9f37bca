// Package fuzzy scores how likely two anime titles refer to the same work.
//
// A Matcher combines four strategies into a single [0,100] confidence:
// exact containment tiers, edit-distance similarity, normalized-form
// comparison and a phonetic fold. Strategies run in a fixed order and keep
// the best score seen, short-circuiting on a perfect match.
package fuzzy

import (
	"math"
	"strings"

	"github.com/nekomori/animeseek/internal/metrics"
	"github.com/nekomori/animeseek/internal/title"
)

// Weights holds the per-strategy score ceilings.
type Weights struct {
	Exact      int `mapstructure:"exact"`
	Fuzzy      int `mapstructure:"fuzzy"`
	Normalized int `mapstructure:"normalized"`
	Phonetic   int `mapstructure:"phonetic"`
}

// Config tunes the matcher. Supplied once at construction, never mutated.
type Config struct {
	MaxEditDistance int     `mapstructure:"max_edit_distance"`
	MinSimilarity   float64 `mapstructure:"min_similarity"`
	Weights         Weights `mapstructure:"weights"`
}

// DefaultConfig mirrors the tuning the resolver ships with.
func DefaultConfig() Config {
	return Config{
		MaxEditDistance: 3,
		MinSimilarity:   0.7,
		Weights: Weights{
			Exact:      100,
			Fuzzy:      90,
			Normalized: 80,
			Phonetic:   70,
		},
	}
}

// Matcher scores (query, target) pairs. Safe for concurrent use; all state
// is immutable after construction except the shared metrics sink.
type Matcher struct {
	cfg     Config
	metrics *metrics.Metrics
}

// NewMatcher creates a Matcher with the given tuning. metrics may be nil.
func NewMatcher(cfg Config, m *metrics.Metrics) *Matcher {
	return &Matcher{cfg: cfg, metrics: m}
}

// Match scores target against query. Strategies run in order exact, fuzzy,
// normalized, phonetic; the maximum score wins and evaluation stops the
// moment any strategy yields 100. Every invocation counts toward the fuzzy
// metric regardless of which strategy produced the result.
func (m *Matcher) Match(query, target string) Score {
	m.metrics.RecordFuzzyMatch()

	strategies := []func(query, target string) int{
		m.exactScore,
		m.fuzzyScore,
		m.normalizedScore,
		m.phoneticScore,
	}

	best := 0
	for _, strategy := range strategies {
		if s := strategy(query, target); s > best {
			best = s
			if best >= int(MaxScore) {
				break
			}
		}
	}

	return NewScore(best)
}

// exactScore applies case-insensitive equality and containment tiers.
func (m *Matcher) exactScore(query, target string) int {
	return containmentTiers(query, target, m.cfg.Weights.Exact)
}

// fuzzyScore converts edit distance on the raw inputs into a weighted
// similarity, rejecting pairs beyond the distance or similarity thresholds.
func (m *Matcher) fuzzyScore(query, target string) int {
	d := Distance(query, target)
	if d > m.cfg.MaxEditDistance {
		return 0
	}
	sim := Similarity(query, target, d)
	if sim < m.cfg.MinSimilarity {
		return 0
	}
	return int(math.Round(sim * float64(m.cfg.Weights.Fuzzy)))
}

// normalizedScore compares canonical forms, falling back to Clean()ed forms
// at reduced weight when the normalized tiers miss.
func (m *Matcher) normalizedScore(query, target string) int {
	nq := title.Normalize(query)
	nt := title.Normalize(target)
	if s := containmentTiers(nq, nt, m.cfg.Weights.Normalized); s > 0 {
		return s
	}

	cq := title.Clean(nq)
	ct := title.Clean(nt)
	if cq == "" || ct == "" {
		return 0
	}
	w := m.cfg.Weights.Normalized
	switch {
	case cq == ct:
		return int(float64(w) * 0.6)
	case strings.Contains(ct, cq) || strings.Contains(cq, ct):
		return int(float64(w) * 0.5)
	}
	return 0
}

// phoneticScore compares whitespace-free phonetic folds.
func (m *Matcher) phoneticScore(query, target string) int {
	pq := title.PhoneticFold(query)
	pt := title.PhoneticFold(target)
	return containmentTiers(pq, pt, m.cfg.Weights.Phonetic)
}

// containmentTiers scores equality at full weight, target-contains-query at
// 0.8 and query-contains-target at 0.7. Empty strings never match.
func containmentTiers(query, target string, weight int) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))
	if q == "" || t == "" {
		return 0
	}
	switch {
	case q == t:
		return weight
	case strings.Contains(t, q):
		return int(float64(weight) * 0.8)
	case strings.Contains(q, t):
		return int(float64(weight) * 0.7)
	}
	return 0
}
