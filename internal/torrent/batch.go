package torrent

import (
	"regexp"
	"strconv"
)

var (
	batchKeywordRegex  = regexp.MustCompile(`(?i)\b(batch|complete)\b`)
	episodeRangeRegex  = regexp.MustCompile(`\b(\d{1,3})[-~](\d{1,3})\b`)
	bareSeasonRegex    = regexp.MustCompile(`(?i)\bS\d{1,2}\b`)
	seasonEpisodeRegex = regexp.MustCompile(`(?i)\bS\d{1,2}E\d{1,4}\b`)
	singleEpisodeRegex = regexp.MustCompile(`\s-\s\d{1,4}(\s|$)`)
)

// batchRule is one step of the batch classification ladder. Rules run in
// order; the first decided verdict wins. Keeping them as named entries keeps
// the precedence auditable.
type batchRule struct {
	name   string
	decide func(name, episodeTitle string) (batch, decided bool)
}

var batchRules = []batchRule{
	{
		// "Batch" or "Complete" anywhere in the torrent name.
		name: "keyword",
		decide: func(name, _ string) (bool, bool) {
			if batchKeywordRegex.MatchString(name) {
				return true, true
			}
			return false, false
		},
	},
	{
		// Listing sites mark multi-episode entries with "~" in the
		// episode title ("Episódios 1 ~ 12").
		name: "episode-title-range",
		decide: func(_, episodeTitle string) (bool, bool) {
			if containsTilde(episodeTitle) {
				return true, true
			}
			return false, false
		},
	},
	{
		// Explicit numeric range like "01-12" or "01~12".
		name: "numeric-range",
		decide: func(name, _ string) (bool, bool) {
			for _, m := range episodeRangeRegex.FindAllStringSubmatch(name, -1) {
				start, _ := strconv.Atoi(m[1])
				end, _ := strconv.Atoi(m[2])
				if start >= 1 && end <= 999 && end > start {
					return true, true
				}
			}
			return false, false
		},
	},
	{
		// A season marker with no paired episode marker is a season pack.
		name: "season-pack",
		decide: func(name, _ string) (bool, bool) {
			if bareSeasonRegex.MatchString(name) && !seasonEpisodeRegex.MatchString(name) {
				return true, true
			}
			return false, false
		},
	},
	{
		// An isolated " - NNN " token is a single episode, decided false.
		name: "single-episode",
		decide: func(name, _ string) (bool, bool) {
			if singleEpisodeRegex.MatchString(name) {
				return false, true
			}
			return false, false
		},
	},
}

// IsBatch reports whether a torrent bundles multiple episodes rather than
// one. Undecided names default to false.
func IsBatch(name, episodeTitle string) bool {
	for _, rule := range batchRules {
		if batch, decided := rule.decide(name, episodeTitle); decided {
			return batch
		}
	}
	return false
}

func containsTilde(s string) bool {
	for _, r := range s {
		if r == '~' {
			return true
		}
	}
	return false
}
