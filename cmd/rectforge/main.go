package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/mrsinham/rectforge/cmd/rectforge/wizard"
	"github.com/mrsinham/rectforge/internal/app"
	"github.com/mrsinham/rectforge/internal/config"
	"github.com/mrsinham/rectforge/internal/export"
	"github.com/mrsinham/rectforge/internal/rect"
	"github.com/mrsinham/rectforge/internal/rng"
	"github.com/mrsinham/rectforge/internal/server"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "serve":
			return runServe(args[1:], stdout, stderr)
		case "wizard":
			return runWizard(args[1:], stdout, stderr)
		}
	}
	return runGenerate(args, stdout, stderr)
}

func runGenerate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rectforge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	seed := fs.Int64("seed", 0, "Seed for the random source (32-bit signed integer)")
	preset := fs.String("preset", string(rect.DefaultPreset), "Generation preset")
	algorithm := fs.String("algorithm", string(rng.DefaultAlgorithm), "Random source algorithm")
	format := fs.String("format", string(export.DefaultFormat), "Output format")
	output := fs.String("output", "", "Output file (default: stdout)")
	summary := fs.Bool("summary", false, "Include batch statistics")
	configFile := fs.String("config", "", "Load configuration from YAML file")
	saveConfig := fs.String("save-config", "", "Save configuration to YAML file (after generation)")
	help := fs.Bool("help", false, "Show help message")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stdout)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr)
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "rectforge %s\n", version)
		return 0
	}
	if *help {
		printHelp(stdout)
		return 0
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		printUsage(stderr)
		return 1
	}

	file := &config.File{}
	if *configFile != "" {
		loaded, err := config.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		file = loaded
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			file.Seed = *seed
		case "preset":
			file.Preset = *preset
		case "algorithm":
			file.Algorithm = *algorithm
		case "format":
			file.Format = *format
		case "output":
			file.Output = *output
		case "summary":
			file.Summary = *summary
		}
	})

	resolved, err := file.Resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res, err := app.Run(resolved, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Status lines must not mix with data written to stdout.
	status := stdout
	if res.Path == "" {
		status = stderr
	} else {
		fmt.Fprintf(status, "Wrote %s (%s, %d rectangles) to %s\n",
			humanize.Bytes(uint64(res.Bytes)), resolved.Format, len(res.Document.Rects), res.Path)
	}

	if *saveConfig != "" {
		if err := config.SaveToYAML(config.FromResolved(resolved), *saveConfig); err != nil {
			fmt.Fprintf(stderr, "Error saving config: %v\n", err)
			return 1
		}
		fmt.Fprintf(status, "Configuration saved to %s\n", *saveConfig)
	}
	return 0
}

func runServe(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rectforge serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addr := fs.String("addr", "", "Listen address (default: $RECTFORGE_HTTP_ADDR or :3000)")
	static := fs.String("static", "", "Directory served at / (default: $RECTFORGE_STATIC_DIR)")
	envFile := fs.String("env-file", ".env", "Environment file loaded before reading settings")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stdout)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.LoadServer(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}
	if *static != "" {
		cfg.StaticDir = *static
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := server.New(cfg, logger)
	if err := server.Run(ctx, e, cfg.HTTPAddr, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server stopped", "error", err)
		return 1
	}
	return 0
}

func runWizard(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rectforge wizard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	from := fs.String("from", "", "Pre-fill the wizard from a YAML config")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := wizard.Run(*from, stdout); err != nil {
		if errors.Is(err, wizard.ErrAborted) {
			fmt.Fprintln(stderr, "Wizard cancelled.")
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func names[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: rectforge [--seed N] [--preset NAME] [--format FORMAT] [options]")
	fmt.Fprintln(w, "       rectforge serve [--addr ADDR] [--static DIR]")
	fmt.Fprintln(w, "       rectforge wizard [--from FILE]")
	fmt.Fprintln(w, "Use --help for more information")
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "rectforge")
	fmt.Fprintln(w, "=========")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Generate a deterministic batch of %d rectangles from a seed.\n", rect.BatchSize)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  rectforge [options]")
	fmt.Fprintln(w, "  rectforge serve [--addr ADDR] [--static DIR] [--env-file FILE]")
	fmt.Fprintln(w, "  rectforge wizard [--from FILE]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generation options:")
	fmt.Fprintln(w, "  --seed <N>            Seed, 32-bit signed integer (default: 0)")
	fmt.Fprintf(w, "  --preset <NAME>       Preset: %s (default: %s)\n", names(rect.AllPresets()), rect.DefaultPreset)
	fmt.Fprintf(w, "  --algorithm <NAME>    Random source: %s (default: %s)\n", names(rng.AllAlgorithms()), rng.DefaultAlgorithm)
	fmt.Fprintf(w, "  --format <FORMAT>     Output: %s (default: %s)\n", names(export.AllFormats()), export.DefaultFormat)
	fmt.Fprintln(w, "  --output <FILE>       Write to FILE instead of stdout")
	fmt.Fprintln(w, "  --summary             Include bounds, mean/stddev sizes and total area")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  --config <FILE>       Load settings from YAML (flags given explicitly override it)")
	fmt.Fprintln(w, "  --save-config <FILE>  Save the effective settings to YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server environment:")
	fmt.Fprintln(w, "  RECTFORGE_HTTP_ADDR, RECTFORGE_STATIC_DIR, RECTFORGE_COMPRESS_THRESHOLD,")
	fmt.Fprintln(w, "  RECTFORGE_SHUTDOWN_TIMEOUT, LOG_LEVEL (read from .env when present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  --help                Show this help message")
	fmt.Fprintln(w, "  --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  rectforge --seed 42")
	fmt.Fprintln(w, "  rectforge --seed 42 --preset tall --format table --summary")
	fmt.Fprintln(w, "  rectforge --seed 42 --format binary --output rects.bin")
	fmt.Fprintln(w, "  rectforge serve --addr :8080 --static ./public")
}
