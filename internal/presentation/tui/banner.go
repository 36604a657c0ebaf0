package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"                                       _ ", "#fbbf24"},
	{"  _ __  _   _ _ __ ___   ___ _ __ __ _| |", "#f59e0b"},
	{" | '_ \\| | | | '_ ` _ \\ / _ \\ '__/ _` | |", "#f97316"},
	{" | | | | |_| | | | | | |  __/ | | (_| | |", "#ef4444"},
	{" |_| |_|\\__,_|_| |_| |_|\\___|_|  \\__,_|_|", "#dc2626"},
}

// PrintBanner writes the REPL banner followed by the version.
// Colours degrade to plain text when the output has no colour support.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  I + I = II    v"+version).Faint())
	fmt.Fprintln(w)
}
