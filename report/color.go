package report

import (
	"os"

	"golang.org/x/term"
)

// AutoColor decides whether output to f should carry ANSI colors. NO_COLOR
// always wins; otherwise color is used only on terminals or when
// ABILITYROLL_FORCE_COLOR is set.
func AutoColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("ABILITYROLL_FORCE_COLOR") != "" {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

type palette struct {
	enabled bool
}

func (p palette) colorize(code, s string) string {
	if !p.enabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (p palette) bold(s string) string   { return p.colorize("1", s) }
func (p palette) green(s string) string  { return p.colorize("32", s) }
func (p palette) yellow(s string) string { return p.colorize("33", s) }
func (p palette) cyan(s string) string   { return p.colorize("36", s) }
func (p palette) gray(s string) string   { return p.colorize("90", s) }
