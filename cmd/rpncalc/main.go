package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

func main() {
	log.SetFlags(0)
	var (
		inname, confname string
		flagcfg          = defaultConfig()
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&confname, "config", "", "YAML configuration file")
	flag.StringVar(&flagcfg.Format, "fmt", flagcfg.Format, "result formatting string")
	flag.IntVar(&flagcfg.MaxLength, "maxlen", flagcfg.MaxLength, "maximum expression length, 0 for none")
	flag.UintVar(&flagcfg.Precision, "p", flagcfg.Precision, "working precision of ln, log and ^ in bits")
	flag.StringVar(&flagcfg.Color, "color", flagcfg.Color, "colorize reports: auto, always, or never")
	flag.BoolVar(&flagcfg.Warnings, "w", flagcfg.Warnings, "report dropped redundant operators")
	flag.IntVar(&flagcfg.Jobs, "j", flagcfg.Jobs, "number of expressions to evaluate at once")
	flag.BoolVar(&flagcfg.Echo, "echo", flagcfg.Echo, "print postfix forms")
	flag.Parse()

	cfg := defaultConfig()
	if confname != "" {
		if err := readConfig(confname, &cfg); err != nil {
			log.Fatal(err)
		}
	}
	// Flags given explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = flagcfg.Format
		case "maxlen":
			cfg.MaxLength = flagcfg.MaxLength
		case "p":
			cfg.Precision = flagcfg.Precision
		case "color":
			cfg.Color = flagcfg.Color
		case "w":
			cfg.Warnings = flagcfg.Warnings
		case "j":
			cfg.Jobs = flagcfg.Jobs
		case "echo":
			cfg.Echo = flagcfg.Echo
		}
	})
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	exprs := flag.Args()
	in, err := infile(inname, len(exprs) == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in != nil {
		lines, err := readLines(in)
		in.Close()
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(lines, exprs...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	res, err := evalAll(ctx, exprs, cfg.options(), cfg.Jobs)
	stop()
	if err != nil {
		log.Fatal(err)
	}

	rep := reporter{w: os.Stderr, colors: colors(cfg.Color), warnings: cfg.Warnings}
	if !printResults(os.Stdout, &rep, res, cfg.Format, cfg.Echo) {
		os.Exit(1)
	}
}

// printResults writes results in order and reports whether all of them succeeded.
func printResults(w io.Writer, rep *reporter, res []result, verb string, echo bool) bool {
	ok := true
	verb += "\n"
	for _, r := range res {
		for _, d := range r.warnings {
			if err := rep.warn(r.expr, d); err != nil {
				log.Fatal(err)
			}
		}
		if echo && r.postfix != "" {
			fmt.Fprintf(w, "%s : ", r.postfix)
		}
		if r.err != nil {
			ok = false
			if echo {
				fmt.Fprintln(w)
			}
			if err := rep.error(r.expr, r.err); err != nil {
				log.Fatal(err)
			}
			continue
		}
		fmt.Fprintf(w, verb, r.value)
	}
	return ok
}

func colors(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

// readLines reads one expression per line, skipping blank lines.
func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scan.Err()
}

// infile opens the input named by -in. Standard input is used for "-", or
// when std is set and no file is named. Closing it never closes stdin.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
