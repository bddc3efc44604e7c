// Package main is the entry point for the ytmux application.
package main

import (
	"github.com/samber/lo"

	"github.com/ytmux-cli/ytmux/cmd"
	"github.com/ytmux-cli/ytmux/config"
	"github.com/ytmux-cli/ytmux/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
