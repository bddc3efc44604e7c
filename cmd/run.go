package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/viper"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/filesystem"
	"github.com/ytmux-cli/ytmux/history"
	"github.com/ytmux-cli/ytmux/icon"
	"github.com/ytmux-cli/ytmux/key"
	"github.com/ytmux-cli/ytmux/log"
	"github.com/ytmux-cli/ytmux/mux"
	"github.com/ytmux-cli/ytmux/pipeline"
	"github.com/ytmux-cli/ytmux/selector"
	"github.com/ytmux-cli/ytmux/ui"
	"github.com/ytmux-cli/ytmux/util"
	"github.com/ytmux-cli/ytmux/where"
)

// runInteractive drives the banner, prompts and the download pipeline for one
// asset. An interrupt at any point cancels the run and exits cleanly.
func runInteractive() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- interactiveFlow(ctx)
	}()

	select {
	case <-ctx.Done():
		exitCancelled()
		return nil
	case err := <-errs:
		if isCancelled(err) {
			exitCancelled()
		}
		return err
	}
}

func interactiveFlow(ctx context.Context) error {
	ui.Banner()

	locator, err := ui.AskLocator()
	if err != nil {
		return err
	}

	reporter := ui.NewConsoleReporter()
	resolved, err := resolveAsset(ctx, locator)
	if err != nil {
		return err
	}
	reporter.Transition(pipeline.StateResolved, resolved.Asset.Title)
	ui.PrintAsset(resolved.Asset)

	labels := selector.AvailableResolutions(resolved.Descriptors)
	if len(labels) == 0 {
		return selector.ErrStreamsUnavailable
	}

	reporter.Transition(pipeline.StateSelecting, "")
	label, err := ui.AskResolution(labels)
	if err != nil {
		return err
	}

	return download(ctx, resolved, label, reporter, true)
}

// resolveAsset fetches the catalog behind an erasable progress line.
func resolveAsset(ctx context.Context, locator string) (*catalog.Catalog, error) {
	erase := util.PrintErasable(fmt.Sprintf("%s Fetching video information...", icon.Get(icon.Progress)))
	resolved, err := catalog.NewYouTube().Resolve(ctx, locator)
	erase()
	return resolved, err
}

// download resolves the selection and runs the pipeline. When interactive,
// an existing output file triggers an overwrite confirmation.
func download(ctx context.Context, resolved *catalog.Catalog, label string, reporter pipeline.Reporter, interactive bool) error {
	selection, err := selector.Resolve(resolved.Descriptors, label)
	if err != nil {
		return err
	}

	outputDir := viper.GetString(key.OutputDir)
	if outputDir == "" {
		outputDir = where.Downloads()
	}

	outputPath := pipeline.OutputPath(outputDir, resolved.Asset.Title, label)
	if exists, _ := filesystem.API().Exists(outputPath); exists && interactive {
		overwrite, err := ui.AskOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Printf("%s Keeping the existing file\n", icon.Get(icon.Folder))
			return nil
		}
	}

	p := pipeline.New(outputDir, where.Temp(), mux.NewFFmpeg(), reporter)
	output, err := p.Run(ctx, resolved.Asset, selection)
	if err != nil {
		return err
	}

	if viper.GetBool(key.HistorySaveOnDownload) {
		if err := history.Save(resolved.Asset, label, output); err != nil {
			log.Warnf("history: %s", err)
		}
	}
	return nil
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, terminal.InterruptErr)
}

func exitCancelled() {
	fmt.Printf("\n%s Download cancelled\n", icon.Get(icon.Fail))
	os.Exit(0)
}
