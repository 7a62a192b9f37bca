package torrent

import (
	"regexp"
	"strconv"
)

const (
	minEpisode = 1
	maxEpisode = 9999
	// Isolated digit tokens at or above this look like years, not episodes.
	yearFloor = 2000
)

var (
	ptEpisodeRegex  = regexp.MustCompile(`(?i)epis[oó]dio\s*(\d{1,4})`)
	dashNumberRegex = regexp.MustCompile(`\s-\s(\d{1,4})(?:\s|$)`)
	seEpisodeRegex  = regexp.MustCompile(`(?i)\bS\d{1,2}E(\d{1,4})\b`)
	enEpisodeRegex  = regexp.MustCompile(`(?i)\bep(?:isode)?\.?\s*(\d{1,4})\b`)
	digitTokenRegex = regexp.MustCompile(`\b(\d{1,4})\b`)
)

// resolutionTokens are digit tokens the fallback scan must never read as an
// episode number.
var resolutionTokens = map[int]bool{480: true, 720: true, 1080: true}

// episodeStrategy is one way of locating an episode number. Strategies run
// in strict priority order; the first one that yields a number inside
// [1,9999] wins.
type episodeStrategy struct {
	name    string
	extract func(name, episodeTitle string) (int, bool)
}

var episodeStrategies = []episodeStrategy{
	{
		name: "portuguese-episode-title",
		extract: func(_, episodeTitle string) (int, bool) {
			return firstSubmatchInt(ptEpisodeRegex, episodeTitle)
		},
	},
	{
		name: "dash-delimited",
		extract: func(name, _ string) (int, bool) {
			return firstSubmatchInt(dashNumberRegex, name)
		},
	},
	{
		name: "season-episode-marker",
		extract: func(name, _ string) (int, bool) {
			return firstSubmatchInt(seEpisodeRegex, name)
		},
	},
	{
		name: "english-episode",
		extract: func(name, _ string) (int, bool) {
			return firstSubmatchInt(enEpisodeRegex, name)
		},
	},
	{
		// Last resort: the first isolated 1-4 digit token that is not a
		// common resolution value and not year-like.
		name: "isolated-number",
		extract: func(name, _ string) (int, bool) {
			for _, m := range digitTokenRegex.FindAllStringSubmatch(name, -1) {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				if resolutionTokens[n] || n >= yearFloor {
					continue
				}
				if n >= minEpisode && n <= maxEpisode {
					return n, true
				}
			}
			return 0, false
		},
	},
}

// ExtractEpisodeNumber finds the episode number for a torrent, or
// EpisodeUnknown. Batch torrents are always EpisodeUnknown, regardless of
// what the digit strategies would find.
func ExtractEpisodeNumber(name, episodeTitle string) int {
	if IsBatch(name, episodeTitle) {
		return EpisodeUnknown
	}
	for _, strategy := range episodeStrategies {
		if n, ok := strategy.extract(name, episodeTitle); ok && n >= minEpisode && n <= maxEpisode {
			return n
		}
	}
	return EpisodeUnknown
}

func firstSubmatchInt(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
