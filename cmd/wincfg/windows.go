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
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/wincfg/internal/config"
	"github.com/1broseidon/wincfg/internal/dumpfile"
	"github.com/1broseidon/wincfg/internal/snapshot"
)

func runDump(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("-d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wincfg -d [-config path] [-v]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Write one title@@@bottom@@@left@@@right@@@top line per visible titled window to stdout.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := loadConfig(common.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, common.verbose, stderr)

	records, err := captureWindows(cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := dumpfile.Encode(stdout, records); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runRestore(args []string, stdin io.Reader, stderr io.Writer) int {
	fs := flag.NewFlagSet("-r", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wincfg -r [-config path] [-v] < dump.txt")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Read dumped windows from stdin and move live windows with matching titles back into place.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	cfg, err := loadConfig(common.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, common.verbose, stderr)

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(stderr, "Reading window records from the terminal; finish with Ctrl-D.")
	}

	return restoreWindows(stdin, cfg, logger, stderr)
}

// captureWindows opens the backend and snapshots every visible window.
func captureWindows(cfg *config.Config, logger *slog.Logger) ([]snapshot.Record, error) {
	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	records, err := snapshot.Capture(backend, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("captured windows", "windows", len(records))
	return records, nil
}

// restoreWindows decodes a dump from r and moves the matching windows.
func restoreWindows(r io.Reader, cfg *config.Config, logger *slog.Logger, stderr io.Writer) int {
	records, err := dumpfile.Decode(r, logger)
	if err != nil {
		var perr *dumpfile.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(stderr, "Invalid dump input: %v\n", perr)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	backend, err := openBackend(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer backend.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := snapshot.Restore(ctx, backend, records, snapshot.RestoreOptions{
		ApplySize: cfg.Restore.ApplySize,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Debug("restore complete", "records", len(records), "restored", report.Restored, "skipped", report.Skipped, "failed", report.Failed)
	return 0
}
