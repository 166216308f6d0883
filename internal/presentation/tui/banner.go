package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for nuskell.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (teal to violet)
	s1 := termenv.String("                       _          _ _ ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  _ __  _   _ ___  ___| | __ ___ | | |").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String(" | '_ \\| | | / __|/ _ \\ |/ // _ \\| | |").Foreground(p.Color("#818cf8"))
	s4 := termenv.String(" | | | | |_| \\__ \\  __/   <|  __/| | |").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String(" |_| |_|\\__,_|___/\\___|_|\\_\\\\___||_|_|").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
