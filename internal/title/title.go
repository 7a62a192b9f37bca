// Package title canonicalizes anime titles for comparison.
//
// Romanized anime titles are irregular: macron vowels ("Ōkami" vs "Oukami"),
// long-vowel spelling pairs ("shounen" vs "shonen"), and compound words that
// appear both joined and split ("mahoutsukai" vs "mahou tsukai"). Normalize
// folds all of these into one canonical form so that downstream matching can
// use plain string comparison.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRunRegex = regexp.MustCompile(`\s+`)
	seasonRegex   = regexp.MustCompile(`\bseason\s+(\d{1,2})\b`)
	// Covers English "episode N" and Portuguese "episódio N" (diacritics are
	// folded before this runs, so only the plain spelling is needed here).
	episodeRegex = regexp.MustCompile(`\b(?:episode|episodio)\s+(\d{1,4})\b`)

	bracketRegex = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)

	longVowelReplacer = strings.NewReplacer("ou", "o", "uu", "u", "ei", "e")
)

// compoundMerges maps split spellings to their joined canonical form.
// Both spellings occur in the wild for these titles.
var compoundMerges = [][2]string{
	{"mahou tsukai", "mahoutsukai"},
	{"kono suba", "konosuba"},
	{"dan machi", "danmachi"},
	{"onii chan", "oniichan"},
	{"yuru yuri", "yuruyuri"},
}

// Normalize canonicalizes a raw title. It is deterministic, total and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = foldDiacritics(s)
	for _, m := range compoundMerges {
		s = strings.ReplaceAll(s, m[0], m[1])
	}
	s = seasonRegex.ReplaceAllString(s, "s$1")
	s = episodeRegex.ReplaceAllString(s, "e$1")
	s = collapseLongVowels(s)
	return collapseSpaces(s)
}

// Clean strips bracketed groups and punctuation except hyphens. It is a
// secondary pass used only by the normalized match strategy, not by Normalize.
func Clean(s string) string {
	s = bracketRegex.ReplaceAllString(s, " ")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return collapseSpaces(b.String())
}

// PhoneticFold reduces a title to a phonetic comparison key: lower-cased,
// diacritics folded, long vowels collapsed and all whitespace removed.
func PhoneticFold(s string) string {
	s = foldDiacritics(strings.ToLower(s))
	s = collapseLongVowels(s)
	return strings.Join(strings.Fields(s), "")
}

// ExpandCompounds rewrites joined compound words to their split form.
// Used by page resolution to match a split query against a joined title.
func ExpandCompounds(s string) string {
	for _, m := range compoundMerges {
		s = strings.ReplaceAll(s, m[1], m[0])
	}
	return s
}

// foldDiacritics strips combining marks after NFD decomposition, turning
// accented and macron vowels into their base letters (ō → o, é → e).
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// collapseLongVowels applies the romanization pair collapses (ou→o, uu→u,
// ei→e) until a fixed point, so repeated normalization cannot drift.
func collapseLongVowels(s string) string {
	for {
		next := longVowelReplacer.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRunRegex.ReplaceAllString(s, " "))
}
