package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`       _            _`,
	`  __ _| | __ _  ___ | |_ _ __ __ _  ___ ___`,
	` / _` + "`" + ` | |/ _` + "`" + ` |/ _ \| __| '__/ _` + "`" + ` |/ __/ _ \`,
	`| (_| | | (_| | (_) | |_| | | (_| | (_|  __/`,
	` \__,_|_|\__, |\___/ \__|_|  \__,_|\___\___|`,
	`         |___/`,
}

// Teal to emerald, matching the idle and sorted bar colours.
var bannerColors = []string{"#2dd4bf", "#14b8a6", "#0d9488", "#10b981", "#059669", "#047857"}

// PrintBanner writes the ASCII art banner for algotrace to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
