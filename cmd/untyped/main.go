package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/smasher164/untyped/session"
	"github.com/smasher164/untyped/syntax"
	"github.com/smasher164/untyped/term"
)

var (
	configPath = flag.String("config", "", "config file (default $XDG_CONFIG_HOME/untyped/config.yaml)")
	ascii      = flag.Bool("ascii", false, `print \ A B instead of λ α β`)
	color      = flag.Bool("color", false, "colorize output")
	merge      = flag.Bool("merge", true, "print λx.λy.e as λx,y.e")
	effect     = flag.Bool("effect", true, "print the term produced by every step")
	limit      = flag.Int("limit", 0, "give up an eval after this many steps (0 = no limit)")
	verbose    = flag.Bool("v", false, "log to stderr")
	normal     = flag.Bool("normal", false, "file mode: read one term and print only its normal form")
	debruijn   = flag.Bool("debruijn", false, "with -normal, print de Bruijn indices")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: untyped [flags] ( file path | repl | tui )\n\n")
	fmt.Fprint(os.Stderr, "untyped is an evaluator for the untyped lambda calculus that reduces\n")
	fmt.Fprint(os.Stderr, "terms in normal order and reports every step it takes.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// loadConfig reads the config file and applies the flags given explicitly
// on the command line on top of it.
func loadConfig(logger *log.Logger) session.Config {
	path := *configPath
	if path == "" {
		var err error
		if path, err = session.ConfigPath(); err != nil {
			errExit(err)
		}
	}
	cfg, err := session.LoadConfig(path)
	if err != nil {
		errExit(err)
	}
	logger.Printf("config %s", path)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ascii":
			cfg.UseUTF8 = !*ascii
		case "color":
			cfg.UseColor = *color
		case "merge":
			cfg.MergeArgs = *merge
		case "effect":
			cfg.PrintEffect = *effect
		case "limit":
			cfg.StepLimit = *limit
		}
	})
	return cfg
}

func runFile(path string, cfg session.Config, logger *log.Logger) {
	b, err := os.ReadFile(path)
	if err != nil {
		errExit(err)
	}
	if *normal {
		t, err := syntax.Parse(string(b))
		if err != nil {
			errExit(fmt.Errorf("%s: %w", path, err))
		}
		logger.Printf("free %q, bound %q", term.FreeVars(t), term.BoundVars(t))
		t, trace := term.Eval(t)
		logger.Printf("%d steps", len(trace))
		if *debruijn {
			fmt.Println(term.DeBruijn(t))
		} else {
			fmt.Println(term.Format(t, cfg.Style()))
		}
		return
	}
	s := session.New(cfg, logger)
	for _, line := range strings.Split(string(b), "\n") {
		s.Exec(line)
		if s.Exit {
			break
		}
	}
	fmt.Println(strings.Join(s.History, "\n"))
}

func main() {
	flag.Usage = usage
	flag.Parse()
	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "untyped: ", 0)
	}
	args := flag.Args()
	if len(args) == 0 {
		usage()
	}
	cfg := loadConfig(logger)
	switch args[0] {
	case "file":
		if len(args) != 2 {
			usage()
		}
		runFile(args[1], cfg, logger)
	case "repl":
		if err := runREPL(session.New(cfg, logger)); err != nil {
			errExit(err)
		}
	case "tui":
		// escapes would be drawn literally on the canvas
		cfg.UseColor = false
		if err := runTUI(session.New(cfg, logger)); err != nil {
			errExit(err)
		}
	default:
		usage()
	}
}
