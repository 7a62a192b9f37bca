package title

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  Spy X Family  ",
			expected: "spy x family",
		},
		{
			name:     "folds macron vowels",
			input:    "Ōkami Kodomo",
			expected: "okami kodomo",
		},
		{
			name:     "folds accented vowels",
			input:    "Pokémon",
			expected: "pokemon",
		},
		{
			name:     "merges split compound word",
			input:    "Mahou Tsukai no Yome",
			expected: "mahotsukai no yome",
		},
		{
			name:     "joined compound converges to same form",
			input:    "Mahoutsukai no Yome",
			expected: "mahotsukai no yome",
		},
		{
			name:     "collapses ou long vowel",
			input:    "Shounen Jump",
			expected: "shonen jump",
		},
		{
			name:     "collapses uu long vowel",
			input:    "Juuni Taisen",
			expected: "juni taisen",
		},
		{
			name:     "collapses ei long vowel",
			input:    "Sensei no Koi",
			expected: "sense no koi",
		},
		{
			name:     "canonicalizes season marker",
			input:    "Shingeki no Kyojin Season 2",
			expected: "shingeki no kyojin s2",
		},
		{
			name:     "canonicalizes episode marker",
			input:    "My Hero Academia Episode 13",
			expected: "my hero academia e13",
		},
		{
			name:     "canonicalizes portuguese episode marker",
			input:    "Frieren Episódio 7",
			expected: "frieren e7",
		},
		{
			name:     "collapses whitespace runs",
			input:    "one   piece \t film",
			expected: "one piece film",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Mahou Tsukai no Yome",
		"Sousou no Frieren",
		"Shingeki no Kyojin Season 2",
		"Ōkami to Koushinryou",
		"Juuni Kokuki Episode 45",
		"  KONOSUBA  ",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips bracketed group",
			input:    "[SubsPlease] spy x family",
			expected: "spy x family",
		},
		{
			name:     "strips parenthesized group",
			input:    "frieren (1080p)",
			expected: "frieren",
		},
		{
			name:     "keeps hyphens",
			input:    "jojo's bizarre - stone ocean!",
			expected: "jojo s bizarre - stone ocean",
		},
		{
			name:     "strips punctuation",
			input:    "re:zero, season 2?",
			expected: "re zero season 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clean(tt.input)
			if result != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPhoneticFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Shounen Jump", "shonenjump"},
		{"shonen jump", "shonenjump"},
		{"Ōkami", "okami"},
		{"one piece", "onepiece"},
	}

	for _, tt := range tests {
		if got := PhoneticFold(tt.input); got != tt.expected {
			t.Errorf("PhoneticFold(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPhoneticFoldEquatesSpellingVariants(t *testing.T) {
	pairs := [][2]string{
		{"Shounen", "Shonen"},
		{"Juuni Taisen", "Juni Taisen"},
		{"Ookami to Koushinryou", "Ookami to Koshinryo"},
	}
	for _, p := range pairs {
		if PhoneticFold(p[0]) != PhoneticFold(p[1]) {
			t.Errorf("PhoneticFold(%q) != PhoneticFold(%q): %q vs %q",
				p[0], p[1], PhoneticFold(p[0]), PhoneticFold(p[1]))
		}
	}
}

func TestExpandCompounds(t *testing.T) {
	got := ExpandCompounds("mahoutsukai no yome")
	if got != "mahou tsukai no yome" {
		t.Errorf("ExpandCompounds = %q, want %q", got, "mahou tsukai no yome")
	}
}
