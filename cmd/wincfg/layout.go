package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/1broseidon/wincfg/internal/layouts"
)

func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  wincfg layout save [-config path] [-v] <name>")
	fmt.Fprintln(w, "  wincfg layout restore [-config path] [-v] <name>")
	fmt.Fprintln(w, "  wincfg layout list")
	fmt.Fprintln(w, "  wincfg layout delete <name>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Layouts are stored in ~/.config/wincfg/layouts in the same format as -d output.")
}

func runLayout(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printLayoutUsage(stderr)
		return 2
	}

	switch args[0] {
	case "save":
		return runLayoutSave(args[1:], stderr)
	case "restore":
		return runLayoutRestore(args[1:], stderr)
	case "list":
		return runLayoutList(args[1:], stdout, stderr)
	case "delete":
		return runLayoutDelete(args[1:], stderr)
	case "help", "-h", "--help":
		printLayoutUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown layout command: %s\n\n", args[0])
		printLayoutUsage(stderr)
		return 2
	}
}

// parseNamedFlags parses fs and returns its single positional layout name.
func parseNamedFlags(fs *flag.FlagSet, args []string) (string, int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return "", 0, false
		}
		return "", 2, false
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(fs.Output(), "%s requires exactly one layout name\n", fs.Name())
		fs.Usage()
		return "", 2, false
	}
	name := fs.Arg(0)
	if err := layouts.ValidateName(name); err != nil {
		fmt.Fprintln(fs.Output(), err)
		return "", 2, false
	}
	return name, 0, true
}

func runLayoutSave(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wincfg layout save [-config path] [-v] <name>")
	}
	name, code, ok := parseNamedFlags(fs, args)
	if !ok {
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
	if err := layouts.Write(name, records); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runLayoutRestore(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wincfg layout restore [-config path] [-v] <name>")
	}
	name, code, ok := parseNamedFlags(fs, args)
	if !ok {
		return code
	}

	cfg, err := loadConfig(common.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, common.verbose, stderr)

	f, err := layouts.Open(name)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer f.Close()

	return restoreWindows(f, cfg, logger, stderr)
}

func runLayoutList(args []string, stdout, stderr io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(stderr, "list takes no arguments")
		return 2
	}
	names, err := layouts.List()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return 0
}

func runLayoutDelete(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wincfg layout delete <name>")
	}
	name, code, ok := parseNamedFlags(fs, args)
	if !ok {
		return code
	}
	if err := layouts.Delete(name); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
