// Command tuplegen generates the fixed-arity facade of the tuple package
// from a tuplegen.yaml configuration. It is wired to go generate and can
// be run by hand:
//
//	tuplegen -config tuplegen.yaml -out arity_gen.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/funvibe/funtuple/internal/gen"
	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	colorReset = "\x1b[0m"
)

func main() {
	configPath := flag.String("config", "tuplegen.yaml", "path to the generator configuration")
	outPath := flag.String("out", "", "output file (defaults to the configured output)")
	dryRun := flag.Bool("dry-run", false, "print the generated source to stdout instead of writing it")
	verbose := flag.Bool("v", false, "report what was generated")
	flag.Parse()

	cfg, err := gen.LoadConfig(*configPath)
	if err != nil {
		fail("Error loading config: %s", err)
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}

	src, err := gen.NewGenerator(cfg).Generate()
	if err != nil {
		fail("Error generating %s: %s", cfg.Output, err)
	}

	if *dryRun {
		if _, err := os.Stdout.Write(src); err != nil {
			fail("Error writing to stdout: %s", err)
		}
		return
	}

	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		fail("Error writing %s: %s", cfg.Output, err)
	}
	if *verbose {
		report("wrote %s: arities 1..%d, %d families", cfg.Output, cfg.MaxArity, len(cfg.Families))
	}
}

// fail reports a fatal error on stderr and exits.
func fail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, colorize(colorRed, fmt.Sprintf(format, args...)))
	os.Exit(1)
}

// report writes a diagnostic line to stderr.
func report(format string, args ...any) {
	fmt.Fprintln(os.Stderr, colorize(colorGreen, fmt.Sprintf(format, args...)))
}

// colorize wraps msg in an ANSI color when stderr is a terminal. The
// NO_COLOR convention (https://no-color.org/) and TERM=dumb disable it.
func colorize(color, msg string) string {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return msg
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return msg
	}
	if os.Getenv("TERM") == "dumb" {
		return msg
	}
	return color + msg + colorReset
}
