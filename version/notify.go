package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ytmux-cli/ytmux/color"
	"github.com/ytmux-cli/ytmux/constant"
	"github.com/ytmux-cli/ytmux/icon"
	"github.com/ytmux-cli/ytmux/key"
	"github.com/ytmux-cli/ytmux/style"
	"github.com/ytmux-cli/ytmux/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/ytmux-cli/ytmux/releases/tag/v"+version),
	)
}
