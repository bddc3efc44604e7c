// Package ui implements the terminal presentation layer: banner, asset info,
// prompts and progress reporting.
package ui

import (
	"fmt"

	"github.com/ytmux-cli/ytmux/color"
	"github.com/ytmux-cli/ytmux/constant"
	"github.com/ytmux-cli/ytmux/style"
	"github.com/ytmux-cli/ytmux/util"
)

// Banner clears the screen and prints the application logo with a tagline.
func Banner() {
	util.ClearScreen()
	fmt.Println(style.Fg(color.Red)(constant.AsciiArtLogo))
	fmt.Println(style.Faint("  download and mux videos from the command line"))
	fmt.Println()
}
