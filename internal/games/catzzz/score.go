package catzzz

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/catzzz/internal/config"
	"github.com/vovakirdan/catzzz/internal/core"
)

// BucketTable maps score ranges to backgrounds.
// Buckets are sorted by strictly increasing lower bound; the first bucket also
// covers every score below its bound, so the table has no gaps.
type BucketTable struct {
	buckets []config.Bucket
}

// NewBucketTable validates and wraps the given buckets.
func NewBucketTable(buckets []config.Bucket) (BucketTable, error) {
	if len(buckets) == 0 {
		return BucketTable{}, errors.New("bucket table is empty")
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i].Min <= buckets[i-1].Min {
			return BucketTable{}, fmt.Errorf("bucket %d: min %d must be greater than %d", i, buckets[i].Min, buckets[i-1].Min)
		}
	}
	out := make([]config.Bucket, len(buckets))
	copy(out, buckets)
	return BucketTable{buckets: out}, nil
}

// BackgroundFor returns the background for score. It is defined for every int.
func (t BucketTable) BackgroundFor(score int) core.BackgroundID {
	if len(t.buckets) == 0 {
		return core.BackgroundMono
	}
	// First bucket whose lower bound is above score; the one before it wins.
	i := sort.Search(len(t.buckets), func(i int) bool {
		return t.buckets[i].Min > score
	})
	if i == 0 {
		return t.buckets[0].Background
	}
	return t.buckets[i-1].Background
}

// Buckets returns a copy of the table rows.
func (t BucketTable) Buckets() []config.Bucket {
	out := make([]config.Bucket, len(t.buckets))
	copy(out, t.buckets)
	return out
}

// ScoreRules holds the score-driven thresholds.
type ScoreRules struct {
	Table        BucketTable
	BaseSize     int // Player size below BigThreshold
	BigSize      int // Player size at or above BigThreshold
	BigThreshold int
	WinScore     int // Winning threshold; 0 or less disables winning
}

// ScoreState is the session score together with the rules that read it.
type ScoreState struct {
	score int
	rules ScoreRules
}

// NewScoreState returns a zero score governed by rules.
func NewScoreState(rules ScoreRules) ScoreState {
	return ScoreState{rules: rules}
}

// Score returns the current score.
func (s *ScoreState) Score() int {
	return s.score
}

// ApplyDelta adds delta to the score, saturating at the int limits.
func (s *ScoreState) ApplyDelta(delta int) {
	switch {
	case delta > 0 && s.score > math.MaxInt-delta:
		s.score = math.MaxInt
	case delta < 0 && s.score < math.MinInt-delta:
		s.score = math.MinInt
	default:
		s.score += delta
	}
}

// BackgroundFor returns the background bucket for score.
func (s *ScoreState) BackgroundFor(score int) core.BackgroundID {
	return s.rules.Table.BackgroundFor(score)
}

// SizeFor returns the player base size for score.
func (s *ScoreState) SizeFor(score int) int {
	if score >= s.rules.BigThreshold {
		return s.rules.BigSize
	}
	return s.rules.BaseSize
}

// IsWinning reports whether score reaches the winning threshold.
func (s *ScoreState) IsWinning(score int) bool {
	return s.rules.WinScore > 0 && score >= s.rules.WinScore
}
