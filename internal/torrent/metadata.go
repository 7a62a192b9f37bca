// Package torrent extracts structured release metadata from torrent names.
//
// Fansub naming is irregular, so extraction is heuristic: ordered rule
// ladders classify batch releases and locate episode numbers. Every
// operation is a pure, total function returning a neutral sentinel on
// failure; nothing in this package returns an error.
package torrent

import (
	"regexp"
	"strings"
)

// EpisodeUnknown marks a torrent whose episode number could not be
// determined, including all batch releases.
const EpisodeUnknown = -1

// Metadata is the structured view of one torrent entry.
type Metadata struct {
	Name          string `json:"name"`
	InfoHash      string `json:"info_hash"`
	Resolution    string `json:"resolution"`
	IsBatch       bool   `json:"is_batch"`
	EpisodeNumber int    `json:"episode_number"`
	ReleaseGroup  string `json:"release_group"`
}

const magnetPrefix = "magnet:?"

// minMagnetLength is the shortest well-formed magnet that can carry a
// btih hash: prefix + "xt=urn:btih:" + 40 hex digits.
const minMagnetLength = len(magnetPrefix) + len("xt=urn:btih:") + 40

var (
	infoHashRegex     = regexp.MustCompile(`(?i)btih:([0-9a-f]{40})`)
	resolutionRegex   = regexp.MustCompile(`(?i)\b(\d{3,4})p\b`)
	fourKRegex        = regexp.MustCompile(`(?i)\b4k\b`)
	releaseGroupRegex = regexp.MustCompile(`^\s*\[([^\]]+)\]`)
)

// Extract assembles a full Metadata record from a torrent name, its listing
// episode title and its magnet link. Fields default independently: a missing
// hash or resolution never fails the rest of the record.
func Extract(name, episodeTitle, magnet string) Metadata {
	return Metadata{
		Name:          name,
		InfoHash:      ExtractInfoHash(magnet),
		Resolution:    ParseResolution(name),
		IsBatch:       IsBatch(name, episodeTitle),
		EpisodeNumber: ExtractEpisodeNumber(name, episodeTitle),
		ReleaseGroup:  ExtractReleaseGroup(name),
	}
}

// ExtractInfoHash pulls the 40-hex btih digest out of a magnet link,
// lower-cased. Returns "" when the input is not a well-formed magnet URI or
// carries no hash.
func ExtractInfoHash(magnet string) string {
	if !strings.HasPrefix(magnet, magnetPrefix) || len(magnet) < minMagnetLength {
		return ""
	}
	m := infoHashRegex.FindStringSubmatch(magnet)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// ParseResolution returns one of 480p, 720p, 1080p, 1440p or 4K.
// Any other resolution token, including 2160p, yields "".
func ParseResolution(name string) string {
	if fourKRegex.MatchString(name) {
		return "4K"
	}
	m := resolutionRegex.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	switch m[1] {
	case "480", "720", "1080", "1440":
		return m[1] + "p"
	}
	return ""
}

// ExtractReleaseGroup captures a leading bracketed tag, "" if absent.
func ExtractReleaseGroup(name string) string {
	m := releaseGroupRegex.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1]
}
