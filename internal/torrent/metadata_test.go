package torrent

import (
	"testing"
)

func TestExtractInfoHash(t *testing.T) {
	tests := []struct {
		name     string
		magnet   string
		expected string
	}{
		{
			name:     "well-formed magnet",
			magnet:   "magnet:?xt=urn:btih:0123456789ABCDEF0123456789ABCDEF01234567&dn=x",
			expected: "0123456789abcdef0123456789abcdef01234567",
		},
		{
			name:     "lowercase hash preserved",
			magnet:   "magnet:?xt=urn:btih:abcdefabcdefabcdefabcdefabcdefabcdefabcd&tr=udp",
			expected: "abcdefabcdefabcdefabcdefabcdefabcdefabcd",
		},
		{
			name:     "not a magnet",
			magnet:   "not a magnet",
			expected: "",
		},
		{
			name:     "http url rejected",
			magnet:   "https://example.com/?xt=urn:btih:0123456789abcdef0123456789abcdef01234567",
			expected: "",
		},
		{
			name:     "magnet prefix but too short",
			magnet:   "magnet:?xt=urn:btih:0123",
			expected: "",
		},
		{
			name:     "magnet without btih hash",
			magnet:   "magnet:?dn=some+name&tr=udp%3A%2F%2Ftracker.example%3A6969%2Fannounce",
			expected: "",
		},
		{
			name:     "truncated hash",
			magnet:   "magnet:?xt=urn:btih:0123456789abcdef&dn=padding-to-reach-minimum-length-here",
			expected: "",
		},
		{
			name:     "empty input",
			magnet:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractInfoHash(tt.magnet); got != tt.expected {
				t.Errorf("ExtractInfoHash(%q) = %q, want %q", tt.magnet, got, tt.expected)
			}
		})
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"1080p in parens", "[SubsPlease] Frieren - 05 (1080p)", "1080p"},
		{"720p", "[Erai-raws] Show - 12 [720p]", "720p"},
		{"480p", "Old Show 480p", "480p"},
		{"1440p", "Show 1440p WEB", "1440p"},
		{"literal 4K", "Show 4K HDR", "4K"},
		{"2160p not in the set", "Show 2160p", ""},
		{"576p not in the set", "Show 576p", ""},
		{"no resolution", "[Group] Show - 05", ""},
		{"bare 1080 without p", "Show 1080", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseResolution(tt.input); got != tt.expected {
				t.Errorf("ParseResolution(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractReleaseGroup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[SubsPlease] Frieren - 05 (1080p)", "SubsPlease"},
		{"[Erai-raws] Show S01E05", "Erai-raws"},
		{"  [Judas] Show Batch", "Judas"},
		{"Show without group [1080p]", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractReleaseGroup(tt.input); got != tt.expected {
			t.Errorf("ExtractReleaseGroup(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtract(t *testing.T) {
	got := Extract(
		"[SubsPlease] Sousou no Frieren - 05 (1080p)",
		"",
		"magnet:?xt=urn:btih:0123456789ABCDEF0123456789ABCDEF01234567&dn=x",
	)
	want := Metadata{
		Name:          "[SubsPlease] Sousou no Frieren - 05 (1080p)",
		InfoHash:      "0123456789abcdef0123456789abcdef01234567",
		Resolution:    "1080p",
		IsBatch:       false,
		EpisodeNumber: 5,
		ReleaseGroup:  "SubsPlease",
	}
	if got != want {
		t.Errorf("Extract = %+v, want %+v", got, want)
	}
}

func TestExtractFieldsDefaultIndependently(t *testing.T) {
	got := Extract("Some Show Batch", "", "not a magnet")
	if got.InfoHash != "" {
		t.Errorf("InfoHash = %q, want empty", got.InfoHash)
	}
	if got.Resolution != "" {
		t.Errorf("Resolution = %q, want empty", got.Resolution)
	}
	if !got.IsBatch {
		t.Error("IsBatch = false, want true")
	}
	if got.EpisodeNumber != EpisodeUnknown {
		t.Errorf("EpisodeNumber = %d, want %d", got.EpisodeNumber, EpisodeUnknown)
	}
	if got.ReleaseGroup != "" {
		t.Errorf("ReleaseGroup = %q, want empty", got.ReleaseGroup)
	}
}
