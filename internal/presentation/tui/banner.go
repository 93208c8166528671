package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program banner with the version, colored when the
// terminal supports it.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	title := out.String("hpgl2dxf").Bold().Foreground(out.Color("#818cf8"))
	ver := out.String("v" + version).Foreground(out.Color("#a78bfa"))
	tagline := out.String("HPGL to DXF converter (for simple HPGL)").Faint()

	fmt.Fprintf(w, "%s %s\n%s\n", title, ver, tagline)
}
