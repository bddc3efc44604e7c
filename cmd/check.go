package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytmux-cli/ytmux/icon"
	"github.com/ytmux-cli/ytmux/mux"
	"github.com/ytmux-cli/ytmux/style"
)

// CheckDependencies verifies the availability of required system dependencies.
// The muxing stage cannot run without an ffmpeg binary in the system PATH.
func CheckDependencies() {
	muxer := mux.NewFFmpeg()
	if err := muxer.Available(); err != nil {
		printMissingDependencyError(muxer.Binary)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install ffmpeg"
	case "linux":
		installCmd = "sudo apt install ffmpeg" // Generic, maybe check distro
	case "windows":
		installCmd = "scoop install ffmpeg"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
