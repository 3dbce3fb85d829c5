package batch

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"arena/internal/combat"
	"arena/internal/config"
	"arena/internal/roster"
	"arena/internal/util"
)

type Options struct {
	Runs     int
	Fighters int
	Seed     int64
	Workers  int
	Rules    *config.Rules
	Logger   *zap.Logger
}

type ClassStat struct {
	Wins  int     `json:"wins"`
	Ratio float64 `json:"ratio"`
}

type Summary struct {
	Runs              int                  `json:"runs"`
	Fighters          int                  `json:"fighters"`
	Seed              int64                `json:"seed"`
	AvgRounds         float64              `json:"avg_rounds"`
	AvgChampionHealth float64              `json:"avg_champion_health"`
	ByClass           map[string]ClassStat `json:"by_class"`
	TopChampionNames  []string             `json:"top_champion_names,omitempty"`
}

// RunSeed is the seed used for the i-th tournament of a batch.
func RunSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}

// Run plays opts.Runs independent tournaments concurrently. Each tournament
// owns its engine and random source, so the summary depends only on opts.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Runs < 1 {
		return nil, fmt.Errorf("batch needs at least one run, got %d", opts.Runs)
	}
	if opts.Workers < 1 {
		opts.Workers = 8
	}
	if opts.Rules == nil {
		opts.Rules = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var (
		mu        sync.Mutex
		wins      = map[string]int{}
		names     = map[string]int{}
		sumRounds int
		sumHealth int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eng := combat.NewEngine(roster.New(opts.Rules), nil, util.New(RunSeed(opts.Seed, i)),
				combat.WithRules(opts.Rules),
				combat.WithRunID(fmt.Sprintf("batch-%d", i)))
			if err := eng.Initialize(opts.Fighters); err != nil {
				return err
			}
			champ, err := eng.Run()
			if err != nil {
				return err
			}

			mu.Lock()
			wins[string(champ.Class())]++
			names[champ.Name()]++
			sumRounds += eng.Round()
			sumHealth += champ.Health()
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := float64(opts.Runs)
	s := &Summary{
		Runs:              opts.Runs,
		Fighters:          opts.Fighters,
		Seed:              opts.Seed,
		AvgRounds:         float64(sumRounds) / n,
		AvgChampionHealth: float64(sumHealth) / n,
		ByClass:           map[string]ClassStat{},
		TopChampionNames:  topNames(names, 3),
	}
	for class, w := range wins {
		s.ByClass[class] = ClassStat{Wins: w, Ratio: float64(w) / n}
	}
	opts.Logger.Info("batch finished",
		zap.Int("runs", opts.Runs),
		zap.Float64("avg_rounds", s.AvgRounds))
	return s, nil
}

func topNames(counts map[string]int, k int) []string {
	out := make([]string, 0, len(counts))
	for name := range counts {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return out[i] < out[j]
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}
