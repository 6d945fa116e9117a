// populate feeds a shuffled script of inserts to a database CLI, followed
// by a tree dump and an exit, and prints everything the CLI says back.
//
//	populate [flags] -- <executable> [args...]
//
// Flags override values from the config file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"

	"github.com/monopole/scriptrunner"
	"github.com/monopole/scriptrunner/internal/config"
	"github.com/monopole/scriptrunner/internal/report"
	"github.com/monopole/scriptrunner/script"
	"github.com/monopole/scriptrunner/sinks"
)

// treeMarker is the first line of a tree dump.
const treeMarker = "Tree:"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	count      int
	seed       int64
	timeout    time.Duration
	saveDir    string
	asJSON     bool
	verbose    bool
	setFlags   map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{setFlags: map[string]bool{}}
	fs := flag.NewFlagSet("populate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", config.DefaultFileName,
		"YAML config file; ignored if absent and not given explicitly.")
	fs.IntVar(&opts.count, "n", config.DefaultCount,
		"Number of rows to insert.")
	fs.Int64Var(&opts.seed, "seed", 0,
		"Seed for shuffling the inserts; defaults to the clock.")
	fs.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout,
		"Kill the CLI if it hasn't exited after this long.")
	fs.StringVar(&opts.saveDir, "save", "",
		"Save a JSON transcript of the run to this directory.")
	fs.BoolVar(&opts.asJSON, "json", false,
		"Print the transcript as JSON instead of the output lines.")
	fs.BoolVar(&opts.verbose, "v", false,
		"Log every command sent, and echo the CLI's stderr.")
	fs.Usage = func() {
		fmt.Fprintln(stderr,
			"usage: populate [flags] -- <executable> [args...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.setFlags[f.Name] = true })
	return opts, fs.Args(), nil
}

// merge combines the config file with the flags, flags winning.
func merge(
	cfg *config.Config, opts *options, rest []string,
) (*scriptrunner.Parameters, int, int64) {
	p := &scriptrunner.Parameters{
		Path:    cfg.Path,
		Args:    cfg.Args,
		Timeout: cfg.Timeout(),
	}
	if len(rest) > 0 {
		p.Path = rest[0]
		p.Args = rest[1:]
	}
	if opts.setFlags["timeout"] {
		p.Timeout = opts.timeout
	}
	count := cfg.Count()
	if opts.setFlags["n"] {
		count = opts.count
	}
	var seed int64
	switch {
	case opts.setFlags["seed"]:
		seed = opts.seed
	case cfg.Seed != nil:
		seed = *cfg.Seed
	default:
		seed = script.TimeSeed()
	}
	if !opts.setFlags["save"] {
		opts.saveDir = cfg.SaveDir
	}
	return p, count, seed
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(opts.configPath, opts.setFlags["config"])
	if err != nil {
		logger.Error("bad config", slog.String("error", err.Error()))
		return 2
	}
	params, count, seed := merge(cfg, opts, rest)
	if params.Path == "" {
		logger.Error("no executable; put it after --")
		return 2
	}
	params.Logger = logger.WithGroup("scriptrunner")
	sentinel := &sinks.SentinelSink{Value: treeMarker}
	params.OutSink = sentinel
	if opts.verbose {
		params.ErrSink = sinks.NewPrintingSink(stderr, "stderr| ")
	}
	sr, err := scriptrunner.NewScriptRunner(params)
	if err != nil {
		logger.Error("bad parameters", slog.String("error", err.Error()))
		return 2
	}

	commands := script.DefaultGenerator().Make(count, script.NewRand(seed))
	logger.Info("populating",
		slog.String("path", params.Path),
		slog.Int("count", count),
		slog.Int64("seed", seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	startedAt := time.Now()
	res, runErr := sr.Run(ctx, commands)
	if sentinel.Success() {
		logger.Debug("tree dump found", slog.Int("line", sentinel.LineNum()))
	}

	t := report.NewTranscript(params, seed, commands, startedAt, res, runErr)
	if opts.saveDir != "" {
		store := report.NewDiskStore(opts.saveDir)
		if err := store.Save(t); err != nil {
			logger.Error("saving transcript", slog.String("error", err.Error()))
		} else if p, err := store.Path(t.ID); err == nil {
			logger.Info("saved transcript", slog.String("file", p))
		}
	}

	if err := output(stdout, opts.asJSON, t, res); err != nil {
		logger.Error("writing output", slog.String("error", err.Error()))
		return 1
	}
	if runErr != nil {
		logger.Error("run failed", slog.String("error", runErr.Error()))
		return 1
	}
	if err := res.ExitErr(); err != nil {
		logger.Error("unclean exit", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func output(w io.Writer, asJSON bool, t *report.Transcript, res *scriptrunner.Result) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(t), "encoding transcript")
	}
	if res == nil {
		return nil
	}
	_, err := io.WriteString(w, res.Output())
	return errors.Wrap(err, "printing output")
}
