package cmd

import (
	"encoding/json"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/ytmux-cli/ytmux/color"
	"github.com/ytmux-cli/ytmux/history"
	"github.com/ytmux-cli/ytmux/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")

	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists completed downloads, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the localized download history",
	Run: func(cmd *cobra.Command, args []string) {
		downloads, err := history.Get()
		handleErr(err)

		records := lo.Values(downloads)
		slices.SortFunc(records, func(a, b *history.SavedDownload) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No downloads recorded yet"))
			return
		}

		for _, record := range records {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(record.String()),
				style.Faint(humanize.Time(record.CreatedAt)),
				style.Faint(record.Path),
			)
		}
	},
}
