package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs a professional ASCII art banner for Solstice.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Gradient from sun (amber) down to moon (indigo)
	s1 := termenv.String("  _____       _     _   _          ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String(" /  ___|     | |   | | (_)         ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(" \\ `--.  ___ | |___| |_ _  ___ ___ ").Foreground(p.Color("#f97316"))
	s4 := termenv.String("  `--. \\/ _ \\| / __| __| |/ __/ _ \\").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" /\\__/ / (_) | \\__ \\ |_| | (_|  __/").Foreground(p.Color("#a78bfa"))
	s6 := termenv.String(" \\____/ \\___/|_|___/\\__|_|\\___\\___|").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
