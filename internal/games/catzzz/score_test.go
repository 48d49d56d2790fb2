package catzzz

import (
	"math"
	"testing"

	"github.com/vovakirdan/catzzz/internal/config"
	"github.com/vovakirdan/catzzz/internal/core"
)

func defaultTable(t *testing.T) BucketTable {
	t.Helper()
	buckets, err := config.DefaultCatzzzConfig().BucketTable()
	if err != nil {
		t.Fatalf("BucketTable: %v", err)
	}
	table, err := NewBucketTable(buckets)
	if err != nil {
		t.Fatalf("NewBucketTable: %v", err)
	}
	return table
}

func TestBackgroundFor(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		score int
		want  core.BackgroundID
	}{
		{math.MinInt, core.BackgroundMono},
		{-9, core.BackgroundMono},
		{-1, core.BackgroundMono},
		{0, core.BackgroundMono},
		{9, core.BackgroundMono},
		{10, core.BackgroundOriginal},
		{14, core.BackgroundOriginal},
		{15, core.BackgroundMouse1},
		{19, core.BackgroundMouse1},
		{20, core.BackgroundMouse2},
		{29, core.BackgroundMouse2},
		{30, core.BackgroundWinner},
		{250, core.BackgroundWinner},
		{math.MaxInt, core.BackgroundWinner},
	}

	for _, tc := range tests {
		if got := table.BackgroundFor(tc.score); got != tc.want {
			t.Errorf("BackgroundFor(%d) = %s, expected %s", tc.score, got, tc.want)
		}
	}
}

func TestBackgroundForMonotonic(t *testing.T) {
	table := defaultTable(t)

	prev := table.BackgroundFor(-100)
	for score := -99; score <= 100; score++ {
		got := table.BackgroundFor(score)
		if got < prev {
			t.Fatalf("BackgroundFor(%d) = %s went back from %s", score, got, prev)
		}
		prev = got
	}
}

func TestBackgroundForEmptyTable(t *testing.T) {
	var table BucketTable
	if got := table.BackgroundFor(42); got != core.BackgroundMono {
		t.Errorf("empty table BackgroundFor = %s, expected mono", got)
	}
}

func TestNewBucketTableRejectsUnordered(t *testing.T) {
	_, err := NewBucketTable([]config.Bucket{
		{Min: 0, Background: core.BackgroundMono},
		{Min: 0, Background: core.BackgroundOriginal},
	})
	if err == nil {
		t.Error("duplicate lower bounds should be rejected")
	}
	if _, err := NewBucketTable(nil); err == nil {
		t.Error("empty table should be rejected")
	}
}

func TestApplyDeltaSaturates(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"reward", 3, 1, 4},
		{"penalty below zero", 2, -5, -3},
		{"top saturates", math.MaxInt - 1, 5, math.MaxInt},
		{"bottom saturates", math.MinInt + 2, -5, math.MinInt},
		{"at max", math.MaxInt, 1, math.MaxInt},
		{"at min", math.MinInt, -1, math.MinInt},
		{"zero", 7, 0, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ScoreState{score: tc.start}
			s.ApplyDelta(tc.delta)
			if s.Score() != tc.want {
				t.Errorf("ApplyDelta(%d) from %d = %d, expected %d", tc.delta, tc.start, s.Score(), tc.want)
			}
		})
	}
}

func TestSizeForAndIsWinning(t *testing.T) {
	s := NewScoreState(ScoreRules{
		Table:        defaultTable(t),
		BaseSize:     40,
		BigSize:      50,
		BigThreshold: 20,
		WinScore:     30,
	})

	if got := s.SizeFor(19); got != 40 {
		t.Errorf("SizeFor(19) = %d, expected 40", got)
	}
	if got := s.SizeFor(20); got != 50 {
		t.Errorf("SizeFor(20) = %d, expected 50", got)
	}
	if got := s.SizeFor(math.MinInt); got != 40 {
		t.Errorf("SizeFor(MinInt) = %d, expected 40", got)
	}
	if s.IsWinning(29) {
		t.Error("IsWinning(29) should be false")
	}
	if !s.IsWinning(30) {
		t.Error("IsWinning(30) should be true")
	}

	disabled := NewScoreState(ScoreRules{WinScore: 0})
	if disabled.IsWinning(math.MaxInt) {
		t.Error("WinScore 0 should disable winning")
	}
}
