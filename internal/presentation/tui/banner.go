package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Canopy.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Green-to-teal gradient, one color per line.
	s1 := termenv.String("   ___                           ").Foreground(p.Color("#4ade80"))
	s2 := termenv.String("  / __\\__ _ _ __   ___  _ __  _   _ ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" / /  / _` | '_ \\ / _ \\| '_ \\| | | |").Foreground(p.Color("#2dd4bf"))
	s4 := termenv.String("/ /__| (_| | | | | (_) | |_) | |_| |").Foreground(p.Color("#22d3ee"))
	s5 := termenv.String("\\____/\\__,_|_| |_|\\___/| .__/ \\__, |").Foreground(p.Color("#38bdf8"))
	s6 := termenv.String("                       |_|    |___/ ").Foreground(p.Color("#60a5fa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}

// Verdict renders a colored PASS/FAIL marker for the deploy gate.
func Verdict(mayDeploy bool) string {
	p := termenv.ColorProfile()
	if mayDeploy {
		return termenv.String("PASS").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String("FAIL").Foreground(p.Color("#ef4444")).Bold().String()
}
