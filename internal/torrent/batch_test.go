package torrent

import (
	"testing"
)

func TestIsBatch(t *testing.T) {
	tests := []struct {
		name         string
		torrentName  string
		episodeTitle string
		expected     bool
	}{
		{
			name:        "batch keyword",
			torrentName: "[Group] Show - Batch (1080p)",
			expected:    true,
		},
		{
			name:        "complete keyword",
			torrentName: "[Group] Show COMPLETE 720p",
			expected:    true,
		},
		{
			name:         "tilde in episode title",
			torrentName:  "[Group] Show (1080p)",
			episodeTitle: "Episódios 1 ~ 12",
			expected:     true,
		},
		{
			name:        "numeric range with hyphen",
			torrentName: "[Group] Show 01-12 (1080p)",
			expected:    true,
		},
		{
			name:        "numeric range with tilde",
			torrentName: "[Group] Show 01~24 (720p)",
			expected:    true,
		},
		{
			name:        "inverted range is not a batch",
			torrentName: "[Group] Show 12-01 (1080p)",
			expected:    false,
		},
		{
			name:        "zero start is not a valid range",
			torrentName: "[Group] Show 0-12",
			expected:    false,
		},
		{
			name:        "bare season marker",
			torrentName: "[Group] Show S01 (1080p)",
			expected:    true,
		},
		{
			name:        "season with episode marker is not a batch",
			torrentName: "[Group] Show S01E05",
			expected:    false,
		},
		{
			name:        "isolated single episode pattern",
			torrentName: "[Group] Show - 05 (1080p)",
			expected:    false,
		},
		{
			name:        "plain name defaults to false",
			torrentName: "[Group] Show Movie (1080p)",
			expected:    false,
		},
		{
			name:        "empty name",
			torrentName: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsBatch(tt.torrentName, tt.episodeTitle)
			if got != tt.expected {
				t.Errorf("IsBatch(%q, %q) = %v, want %v",
					tt.torrentName, tt.episodeTitle, got, tt.expected)
			}
		})
	}
}

func TestBatchRulePrecedence(t *testing.T) {
	// The keyword rule decides before the single-episode rule can force
	// false: a batch re-release that also carries a " - NN " token is
	// still a batch.
	if !IsBatch("[Group] Show - 05 Batch (1080p)", "") {
		t.Error("keyword rule should take precedence over single-episode rule")
	}
}
