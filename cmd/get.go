package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytmux-cli/ytmux/pipeline"
	"github.com/ytmux-cli/ytmux/selector"
	"github.com/ytmux-cli/ytmux/ui"
)

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringP("resolution", "r", "best", `Resolution label to download, or "best" for the highest available`)
}

// getCmd downloads a single asset without any interactive prompting,
// suitable for scripting.
var getCmd = &cobra.Command{
	Use:   "get [url]",
	Short: "Download and mux a video without interactive prompts",
	Example: `  ytmux get https://youtu.be/dQw4w9WgXcQ
  ytmux get -r 720p https://youtu.be/dQw4w9WgXcQ`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		CheckDependencies()

		resolution := lo.Must(cmd.Flags().GetString("resolution"))

		resolved, err := resolveAsset(ctx, args[0])
		if isCancelled(err) {
			exitCancelled()
		}
		handleErr(err)

		labels := selector.AvailableResolutions(resolved.Descriptors)
		if len(labels) == 0 {
			handleErr(selector.ErrStreamsUnavailable)
		}

		label := resolution
		if resolution == "best" {
			label = labels[0]
		} else if !lo.Contains(labels, resolution) {
			handleErr(fmt.Errorf(
				"resolution %s is not available, pick one of: %s",
				resolution, strings.Join(labels, ", "),
			))
		}

		reporter := ui.NewConsoleReporter()
		reporter.Transition(pipeline.StateResolved, resolved.Asset.Title)

		err = download(ctx, resolved, label, reporter, false)
		if isCancelled(err) || ctx.Err() != nil {
			exitCancelled()
		}
		handleErr(err)
	},
}
