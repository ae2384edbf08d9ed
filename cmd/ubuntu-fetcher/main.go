package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ngong2/ubuntu-image-fetcher/internal/config"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/fetcher"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/progress"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/store"
)

// Exit codes
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitInvalidArgs    = 2
	ExitDirectoryError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ubuntu-fetcher", flag.ExitOnError)

	configPath := fs.String("config", "", "Path to YAML config file")
	dir := fs.String("dir", "", "Target directory for saved images")
	maxSize := fs.String("max-size", "", "Maximum file size (e.g. 50MB)")
	timeout := fs.Duration("timeout", 0, "Request timeout")
	delay := fs.Duration("delay", 0, "Delay between batch requests")
	verbose := fs.Bool("verbose", false, "Enable diagnostic logging")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: ubuntu-fetcher [options]

Download images from URLs into a local directory, validating content type
and size and skipping images whose content was already saved. Starts an
interactive menu.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return ExitInvalidArgs
		}
		cfg = loaded
	}
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		return ExitInvalidArgs
	}

	override := config.Config{
		TargetDir: *dir,
		Timeout:   *timeout,
		Delay:     *delay,
	}
	if *maxSize != "" {
		size, err := progress.ParseBytes(*maxSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid max size: %v\n", err)
			return ExitInvalidArgs
		}
		override.MaxFileSize = size
	}
	cfg = cfg.Merge(override)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return ExitInvalidArgs
	}

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	ctx := context.Background()

	// The target directory is the only fatal startup dependency.
	st, err := store.Open(cfg.TargetDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitDirectoryError
	}
	defer st.Close()
	fmt.Fprintf(os.Stderr, "[fetcher] Directory %q ready\n", cfg.TargetDir)

	f := fetcher.New(st, cfg, fetcher.Options{Logger: &log})

	start := time.Now()
	seeded, err := f.Seed(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading existing files: %v\n", err)
		return ExitDirectoryError
	}
	if seeded > 0 {
		fmt.Fprintf(os.Stderr, "[fetcher] Indexed %d existing file(s) in %s\n",
			seeded, time.Since(start).Round(time.Millisecond))
	}

	return runMenu(ctx, f, cfg, os.Stdin, os.Stdout)
}
