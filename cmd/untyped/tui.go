package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/xyproto/vt"

	"github.com/smasher164/untyped/session"
)

type keyKind uint8

const (
	keyRune keyKind = iota
	keyEnter
	keyBackspace
	keyEsc
)

type key struct {
	kind keyKind
	r    rune
}

func keyFromCode(n int) (key, bool) {
	switch n {
	case '\r', '\n':
		return key{kind: keyEnter}, true
	case 0x7f, '\b':
		return key{kind: keyBackspace}, true
	case 0x1b:
		return key{kind: keyEsc}, true
	}
	if r := rune(n); unicode.IsPrint(r) {
		return key{kind: keyRune, r: r}, true
	}
	return key{}, false
}

// parseKeys decodes what the terminal reported for one read: either a key
// code written as "c:NN" or raw input. Escape sequences (arrows and the
// like) are dropped; a lone ESC is kept.
func parseKeys(raw string) []key {
	if after, ok := strings.CutPrefix(raw, "c:"); ok {
		if n, err := strconv.Atoi(after); err == nil {
			if k, ok := keyFromCode(n); ok {
				return []key{k}
			}
			return nil
		}
	}
	var keys []key
	for i := 0; i < len(raw); {
		if raw[i] == 0x1b && i+1 < len(raw) && (raw[i+1] == '[' || raw[i+1] == 'O') {
			j := i + 2
			for j < len(raw) && (raw[j] >= '0' && raw[j] <= '9' || raw[j] == ';') {
				j++
			}
			i = j + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(raw[i:])
		if k, ok := keyFromCode(int(r)); ok {
			keys = append(keys, k)
		}
		i += size
	}
	return keys
}

// clip shortens s to at most w runes.
func clip(s string, w int) string {
	if utf8.RuneCountInString(s) <= w {
		return s
	}
	return string([]rune(s)[:w])
}

// tail returns the last n lines.
func tail(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}

type screen struct {
	s         *session.Session
	displayed []string
	input     []rune
}

// handle applies k and reports whether the UI should stop.
func (sc *screen) handle(k key) bool {
	switch k.kind {
	case keyEsc:
		return true
	case keyBackspace:
		if len(sc.input) > 0 {
			sc.input = sc.input[:len(sc.input)-1]
		}
	case keyEnter:
		sc.s.Exec(string(sc.input))
		sc.displayed = append(sc.displayed, sc.s.History...)
		sc.s.History = nil
		sc.input = sc.input[:0]
		return sc.s.Exit
	case keyRune:
		sc.input = append(sc.input, k.r)
	}
	return false
}

func (sc *screen) draw(c *vt.Canvas) {
	c.Clear()
	w, h := c.Size()
	if h < 3 || w < 3 {
		c.Draw()
		return
	}
	for y, line := range tail(sc.displayed, int(h-2)) {
		c.WriteString(0, uint(y), vt.White, vt.DefaultBackground, clip(line, int(w)))
	}
	c.WriteString(0, h-2, vt.LightGray, vt.DefaultBackground, strings.Repeat("─", int(w)))
	c.WriteString(0, h-1, vt.LightGreen, vt.DefaultBackground, clip(prompt+string(sc.input), int(w)))
	c.Draw()
}

func runTUI(s *session.Session) error {
	tty, err := vt.NewTTY()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer tty.Close()

	vt.Init()
	defer func() {
		vt.Close()
		fmt.Print(vt.Stop())
		fmt.Println()
	}()

	c := vt.NewCanvas()
	tty.SetTimeout(25 * time.Millisecond)
	sc := &screen{s: s}
	sc.draw(c)
	for {
		raw := tty.CustomString()
		if raw == "" {
			continue
		}
		for _, k := range parseKeys(raw) {
			if sc.handle(k) {
				return nil
			}
		}
		sc.draw(c)
	}
}
