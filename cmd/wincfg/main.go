package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/1broseidon/wincfg/internal/config"
	"github.com/1broseidon/wincfg/internal/platform"
)

// openBackendFn is replaced in tests.
var openBackendFn = platform.Open

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printMainUsage(stdout)
		return 0
	}

	switch args[0] {
	case "-d", "--dump":
		return runDump(args[1:], stdout, stderr)
	case "-r", "--restore":
		return runRestore(args[1:], stdin, stderr)
	case "layout":
		return runLayout(args[1:], stdout, stderr)
	case "config":
		return runConfig(args[1:], stdout, stderr)
	case "mcp":
		return runMCP(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printMainUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printMainUsage(stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wincfg <action> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Actions:")
	fmt.Fprintln(w, "  -h                  Show this help")
	fmt.Fprintln(w, "  -d                  Dump window titles and positions to stdout")
	fmt.Fprintln(w, "  -r                  Read dumped windows from stdin and restore their positions")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  layout save         Save the current window positions under a name")
	fmt.Fprintln(w, "  layout restore      Restore a saved layout")
	fmt.Fprintln(w, "  layout list         List saved layouts")
	fmt.Fprintln(w, "  layout delete       Delete a saved layout")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "  config validate     Validate the configuration file")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options for -d and -r:")
	fmt.Fprintln(w, "  -config <path>      Config file (default ~/.config/wincfg/config.yaml)")
	fmt.Fprintln(w, "  -v                  Verbose logging to stderr")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  wincfg -d > layout.txt")
	fmt.Fprintln(w, "  wincfg -r < layout.txt")
}

// commonFlags registers the flags shared by the window commands.
type commonFlags struct {
	configPath string
	verbose    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Config file path")
	fs.BoolVar(&c.verbose, "v", false, "Verbose logging to stderr")
}

func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(fs.Output(), "%s takes no arguments\n", fs.Name())
		fs.Usage()
		return 2, false
	}
	return 0, true
}

func loadConfig(path string) (*config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func newLogger(cfg *config.Config, verbose bool, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// openBackend connects to the window system. An exported DISPLAY or
// XAUTHORITY wins over the config file.
func openBackend(cfg *config.Config) (platform.Backend, error) {
	opts, err := cfg.BackendOptions()
	if err != nil {
		return nil, err
	}
	return openBackendFn(opts)
}
