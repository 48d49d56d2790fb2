package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catzzz/internal/config"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Show the score to background table",
	Long: `Print which background is shown for each score range, the winning
score and the size rules, as resolved from the config and difficulty.

Examples:
  catzzz buckets
  catzzz buckets --config ./my-catzzz.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runBuckets,
}

func runBuckets(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadCatzzz(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		if preset, err = config.ParsePreset(flagDifficulty); err != nil {
			fail("%v", err)
		}
	}
	config.ApplyDifficulty(&cfg, preset)

	buckets, err := cfg.BucketTable()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Score ranges:")
	fmt.Println()
	fmt.Printf("  %-16s  %s\n", "Score", "Background")
	fmt.Printf("  %-16s  %s\n", "-----", "----------")
	for i, b := range buckets {
		var span string
		switch {
		case len(buckets) == 1:
			span = "any"
		case i == 0:
			span = fmt.Sprintf("below %s", humanize.Comma(int64(buckets[1].Min)))
		case i == len(buckets)-1:
			span = fmt.Sprintf("%s and up", humanize.Comma(int64(b.Min)))
		default:
			span = fmt.Sprintf("%s to %s", humanize.Comma(int64(b.Min)), humanize.Comma(int64(buckets[i+1].Min-1)))
		}
		fmt.Printf("  %-16s  %s\n", span, b.Background)
	}

	fmt.Println()
	fmt.Printf("Catch: +%d   Cat hit: -%d   Win at: %s\n",
		cfg.Score.Reward, cfg.Score.Penalty, humanize.Comma(int64(cfg.Score.WinScore)))
	fmt.Printf("Square: %dpx, %dpx from %s points, +%dpx while growing\n",
		cfg.Player.Size, cfg.Player.BigSize, humanize.Comma(int64(cfg.Player.BigThreshold)), cfg.Player.GrowStep)
	fmt.Printf("Difficulty: %s\n", cfg.Difficulty)
}
