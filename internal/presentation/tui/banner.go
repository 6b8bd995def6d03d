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
	{`  __  __ _                           `, "#34d399"},
	{` |  \/  (_)_ __   ___ _ ____   ____ _ `, "#2dd4bf"},
	{` | |\/| | | '_ \ / _ \ '__\ \ / / _' |`, "#22d3ee"},
	{` | |  | | | | | |  __/ |   \ V / (_| |`, "#38bdf8"},
	{` |_|  |_|_|_| |_|\___|_|    \_/ \__,_|`, "#60a5fa"},
}

// PrintBanner writes the MinervaBot banner to w, colored when the terminal
// supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w, out.String("   Centro de Formación Minerva").Faint())
	fmt.Fprintln(w)
}
