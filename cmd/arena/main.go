package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"arena/internal/batch"
	"arena/internal/combat"
	"arena/internal/config"
	"arena/internal/logging"
	"arena/internal/recording"
	"arena/internal/roster"
	"arena/internal/util"
)

func main() {
	env := config.LoadEnv()

	var rulesPath, out, logFile, logLevel string
	var seed int64
	var fighters, n, workers int
	var quiet, logJSON bool
	flag.IntVar(&fighters, "fighters", env.Fighters, "number of fighters (even, >= 2); 0 prompts on stdin")
	flag.Int64Var(&seed, "seed", env.Seed, "random seed (0 = 1)")
	flag.StringVar(&rulesPath, "config", env.RulesPath, "rules YAML file (empty = built-in defaults)")
	flag.StringVar(&out, "out", "", "write result JSON (single) or summary JSON (batch)")
	flag.StringVar(&logFile, "log-file", env.LogFile, "also write narration to this file")
	flag.IntVar(&n, "n", 1, "number of tournaments to simulate")
	flag.IntVar(&workers, "workers", 8, "concurrent tournaments in batch mode")
	flag.BoolVar(&quiet, "quiet", false, "do not print narration to stdout")
	flag.StringVar(&logLevel, "log-level", env.LogLevel, "diagnostic log level")
	flag.BoolVar(&logJSON, "log-json", env.LogJSON, "JSON diagnostic logs")
	flag.Parse()

	logger, err := logging.New(logLevel, logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	if env.LoadErr != nil {
		logger.Warn("could not load .env file", zap.Error(env.LoadErr))
	}

	rules, err := config.Load(rulesPath)
	if err != nil {
		logger.Fatal("failed to load rules", zap.Error(err))
	}

	if fighters == 0 {
		fighters, err = promptCount(os.Stdin, os.Stdout)
		if err != nil {
			logger.Fatal("invalid fighter count", zap.Error(err))
		}
	}

	if n > 1 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		sum, err := batch.Run(ctx, batch.Options{
			Runs: n, Fighters: fighters, Seed: seed, Workers: workers, Rules: rules, Logger: logger,
		})
		if err != nil {
			logger.Fatal("batch failed", zap.Error(err))
		}
		writeJSON(logger, out, sum)
		fmt.Printf("Batch of %d tournaments done, avg rounds %.2f\n", sum.Runs, sum.AvgRounds)
		return
	}

	var opts []recording.Option
	if !quiet {
		opts = append(opts, recording.WithWriter(os.Stdout))
	}
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			logger.Fatal("failed to create narration log", zap.Error(err), zap.String("path", logFile))
		}
		defer f.Close()
		opts = append(opts, recording.WithWriter(f))
	}
	rec := recording.New(append(opts, recording.WithLogger(logger))...)

	eng := combat.NewEngine(roster.New(rules), rec, util.New(seed),
		combat.WithRules(rules),
		combat.WithLogger(logger))
	if err := eng.Initialize(fighters); err != nil {
		logger.Fatal("failed to initialize tournament", zap.Error(err))
	}
	champion, err := eng.Run()
	if err != nil {
		logger.Fatal("tournament failed", zap.Error(err))
	}

	res := eng.Result(champion)
	res.Seed = seed
	res.Events = rec.Events()
	writeJSON(logger, out, res)

	fmt.Printf("\nTournament over! Champion: %s (%d/%d HP after %d rounds)\n",
		champion.Info(), champion.Health(), champion.MaxHealth(), eng.Round())
	if logFile != "" {
		fmt.Printf("Narration saved to %s\n", logFile)
	}
}

func promptCount(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, "Number of fighters (even, at least 2): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", strings.TrimSpace(line))
	}
	if n < 2 || n%2 != 0 {
		return 0, fmt.Errorf("%w: got %d", combat.ErrInvalidSize, n)
	}
	return n, nil
}

func writeJSON(logger *zap.Logger, path string, v any) {
	if path == "" {
		return
	}
	if err := os.WriteFile(path, combat.MarshalPretty(v), 0644); err != nil {
		logger.Fatal("failed to write output", zap.Error(err), zap.String("path", path))
	}
	logger.Info("output written", zap.String("file", filepath.Base(path)))
}
