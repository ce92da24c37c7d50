package session

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/smasher164/untyped/term"
)

// Session interprets command lines and collects their output in History.
//
//	eval EXPR      load EXPR and reduce it, printing every step
//	eval           reduce the current expression again
//	NAME := EXPR   define NAME
//	defs           list definitions
//	clear          clear the history
//	exit           stop
type Session struct {
	History []string
	Exit    bool
	Config  Config
	Machine *Machine

	log *log.Logger
}

// New returns a session using cfg. A nil logger discards log output.
func New(cfg Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		Config:  cfg,
		Machine: NewMachine(cfg.StepLimit),
		log:     logger,
	}
}

func (s *Session) push(lines ...string) {
	s.History = append(s.History, lines...)
}

func (s *Session) format(t term.Term) string {
	return term.Format(t, s.Config.Style())
}

// Exec runs one command line. Blank lines and lines starting with # are
// ignored.
func (s *Session) Exec(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	if name, body, ok := strings.Cut(line, ":="); ok {
		s.define(strings.TrimSpace(name), strings.TrimSpace(body))
		return
	}
	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)
	switch command {
	case "clear":
		s.History = nil
	case "exit", "quit":
		s.Exit = true
		s.push("Exiting...")
	case "eval":
		s.eval(args)
	case "defs":
		s.push(s.Machine.Definitions()...)
	default:
		s.push("Unknown command: " + command)
	}
}

func (s *Session) define(name, body string) {
	if err := s.Machine.Define(name, body); err != nil {
		s.push("Error: " + err.Error())
		return
	}
	def, _ := s.Machine.Definition(name)
	s.push(name + " := " + s.format(def))
	s.log.Printf("defined %s", name)
}

func (s *Session) eval(src string) {
	if src != "" {
		if err := s.Machine.Load(src); err != nil {
			s.push("Error: "+err.Error(), "")
			return
		}
		t, _ := s.Machine.Expr()
		s.log.Printf("loaded %s: free %q, bound %q", t, term.FreeVars(t), term.BoundVars(t))
		s.push(src)
	} else if t, ok := s.Machine.Expr(); ok {
		s.push(s.format(t))
	}
	events, err := s.Machine.Eval()
	st := s.Config.Style()
	for _, e := range events {
		if s.Config.PrintEffect {
			s.push("  " + term.FormatStep(e.Step, st) + " " + s.format(e.Term))
		} else {
			s.push("  " + term.FormatStep(e.Step, st))
		}
	}
	switch {
	case err != nil:
		s.push("Error: " + err.Error())
		if errors.Is(err, ErrStepLimit) {
			s.log.Printf("gave up on %q", src)
		}
	case !s.Config.PrintEffect || len(events) == 0:
		t, _ := s.Machine.Expr()
		s.push("  = " + s.format(t))
	}
	s.log.Printf("eval: %d events", len(events))
	s.push("")
}
