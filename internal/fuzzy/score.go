package fuzzy

// Score is a match confidence in [0,100]. Values outside the range cannot be
// constructed: NewScore clamps, so downstream code never defends against
// negative or >100 confidences.
type Score int

// MaxScore is a perfect match; strategies short-circuit when they reach it.
const MaxScore Score = 100

// NewScore builds a Score, clamping n into [0,100].
func NewScore(n int) Score {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return MaxScore
	}
	return Score(n)
}

// Int returns the score as a plain int.
func (s Score) Int() int {
	return int(s)
}

// Strategy identifies which scoring path produced a returned score.
type Strategy string

const (
	StrategyExact      Strategy = "exact"
	StrategyFuzzy      Strategy = "fuzzy"
	StrategyNormalized Strategy = "normalized"
	StrategyPhonetic   Strategy = "phonetic"
)

// Rank orders strategies for tie-breaking in page resolution.
// Note: fuzzy ranks above normalized. The ordering is deliberate; see the
// tie-break test before changing it.
func (s Strategy) Rank() int {
	switch s {
	case StrategyExact:
		return 4
	case StrategyFuzzy:
		return 3
	case StrategyNormalized:
		return 2
	case StrategyPhonetic:
		return 1
	default:
		return 0
	}
}
