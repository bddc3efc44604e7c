package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/color"
	"github.com/ytmux-cli/ytmux/selector"
	"github.com/ytmux-cli/ytmux/style"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	formatsCmd.Flags().Bool("schema", false, "Print the JSON schema of the formats document and exit")

	formatsCmd.SetOut(os.Stdout)
}

// streamInfo is the serializable projection of one stream descriptor.
type streamInfo struct {
	Kind        string `json:"kind" jsonschema:"description=Stream variant,enum=video,enum=audio"`
	Resolution  string `json:"resolution,omitempty" jsonschema:"description=Resolution label for video streams"`
	BitrateKbps int    `json:"bitrate_kbps,omitempty" jsonschema:"description=Bitrate in kbit/s for audio streams"`
	Container   string `json:"container" jsonschema:"description=Container format"`
	MimeType    string `json:"mime_type" jsonschema:"description=Full MIME type reported by the host"`
}

// formatsDocument is the full machine-readable inspection output.
type formatsDocument struct {
	Asset   catalog.Asset `json:"asset"`
	Streams []streamInfo  `json:"streams"`
}

// formatsCmd inspects the streams a locator resolves to, without downloading.
var formatsCmd = &cobra.Command{
	Use:   "formats [url]",
	Short: "List the video and audio streams available for a video",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		if lo.Must(cmd.Flags().GetBool("schema")) {
			schema := jsonschema.Reflect(&formatsDocument{})
			encoded := lo.Must(json.MarshalIndent(schema, "", "  "))
			cmd.Println(string(encoded))
			return
		}

		if len(args) == 0 {
			handleErr(fmt.Errorf("url argument is required unless --schema is set"))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		resolved, err := resolveAsset(ctx, args[0])
		handleErr(err)

		document := formatsDocument{
			Asset: resolved.Asset,
			Streams: lo.Map(resolved.Descriptors, func(d catalog.Descriptor, _ int) streamInfo {
				return streamInfo{
					Kind:        d.Kind.String(),
					Resolution:  d.Resolution.OrEmpty(),
					BitrateKbps: d.Bitrate.OrEmpty() / 1000,
					Container:   d.Container,
					MimeType:    d.MimeType,
				}
			}),
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(document))
			return
		}

		cmd.Println(style.Bold(resolved.Asset.Title))
		cmd.Println()

		cmd.Println(style.Fg(color.Purple)("Selectable resolutions"))
		for _, label := range selector.AvailableResolutions(resolved.Descriptors) {
			cmd.Printf("  %s\n", label)
		}
		cmd.Println()

		cmd.Println(style.Fg(color.Purple)("All streams"))
		for _, stream := range document.Streams {
			switch stream.Kind {
			case "video":
				cmd.Printf("  video %-8s %s\n", stream.Resolution, style.Faint(stream.MimeType))
			case "audio":
				cmd.Printf("  audio %-8s %s\n", fmt.Sprintf("%dkbps", stream.BitrateKbps), style.Faint(stream.MimeType))
			}
		}
	},
}
