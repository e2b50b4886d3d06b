// Package ui provides colored terminal output helpers shared by the
// launcher's user-facing messages.
package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Printf("%s%s%s %s%s\n", ColorGreen, SymbolCheck, ColorReset, msg, ColorReset)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s%s %s%s\n", ColorRed, SymbolCross, ColorReset, msg, ColorReset)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Printf("%s%s%s %s%s\n", ColorBlue, SymbolInfo, ColorReset, msg, ColorReset)
}

// PrintVideo prints a message about a queued video.
func PrintVideo(msg string) {
	fmt.Printf("%s%s%s %s%s\n", ColorCyan, SymbolVideo, ColorReset, msg, ColorReset)
}

// PrintHeader prints a bold section header with a divider underneath.
func PrintHeader(title string) {
	fmt.Printf("\n%s%s%s\n", ColorBold, title, ColorReset)
	PrintDivider()
}

// PrintSection prints a section label.
func PrintSection(title string) {
	fmt.Printf("%s%s %s%s\n", ColorCyan, BulletArrow, title, ColorReset)
}

// PrintKeyValue prints an aligned key/value pair.
func PrintKeyValue(key, value, valueColor string) {
	fmt.Printf("  %s%-14s%s %s%s%s\n", ColorBold, key+":", ColorReset, valueColor, value, ColorReset)
}

// PrintDivider prints a horizontal rule sized to the terminal.
func PrintDivider() {
	fmt.Println(strings.Repeat("─", GetTermWidth()))
}

// GetTermWidth returns the terminal width, defaulting to 80.
func GetTermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 100 {
		return 100
	}
	return width
}
