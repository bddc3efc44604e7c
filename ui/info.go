package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ytmux-cli/ytmux/catalog"
	"github.com/ytmux-cli/ytmux/style"
)

const infoWidth = 60

// RenderAsset produces a bordered information box for the resolved asset.
func RenderAsset(asset catalog.Asset) string {
	title := style.New().Bold(true).Foreground(style.Lavender).Render(
		wordwrap.String(asset.Title, infoWidth-4),
	)

	rows := []string{
		title,
		"",
		row("Author", asset.Author),
		row("Duration", formatDuration(asset.Duration)),
		row("Views", humanize.Comma(int64(asset.Views))),
	}
	if !asset.PublishDate.IsZero() {
		rows = append(rows, row("Published", asset.PublishDate.Format("2 Jan 2006")))
	}

	box := style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Overlay).
		Padding(0, 2).
		Width(infoWidth)

	return box.Render(strings.Join(rows, "\n"))
}

// PrintAsset writes the asset information box to the terminal.
func PrintAsset(asset catalog.Asset) {
	fmt.Println(RenderAsset(asset))
	fmt.Println()
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("%-10s", label)), value)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
