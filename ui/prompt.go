package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/ytmux-cli/ytmux/icon"
	"github.com/ytmux-cli/ytmux/selector"
	"github.com/ytmux-cli/ytmux/style"
)

// AskLocator prompts for the asset locator (a video URL or identifier).
func AskLocator() (string, error) {
	var locator string
	prompt := &survey.Input{
		Message: "Enter the video URL",
	}

	err := survey.AskOne(prompt, &locator, survey.WithValidator(survey.Required))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(locator), nil
}

// AskOverwrite asks whether an existing output artifact should be replaced.
func AskOverwrite(path string) (bool, error) {
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite it?", path),
	}

	err := survey.AskOne(prompt, &overwrite)
	return overwrite, err
}

// AskResolution prints the resolution menu and reads ordinal selections until
// a valid one arrives. Malformed input re-prompts silently, out-of-range
// ordinals re-prompt with a short notice. Both are recoverable.
func AskResolution(labels []string) (string, error) {
	return askResolution(labels, os.Stdin, os.Stdout)
}

func askResolution(labels []string, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintf(out, "%s Available resolutions:\n", icon.Get(icon.Video))
	for i, label := range labels {
		fmt.Fprintf(out, "  %s %s\n", style.Faint(fmt.Sprintf("%d)", i+1)), label)
	}

	reader := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s Pick a resolution [1-%d]: ", icon.Get(icon.Question), len(labels))
		if !reader.Scan() {
			if err := reader.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}

		ordinal, err := selector.ParseChoice(reader.Text(), len(labels))
		switch {
		case err == nil:
			return labels[ordinal-1], nil
		case errors.Is(err, selector.ErrChoiceOutOfRange):
			fmt.Fprintln(out, style.Faint(fmt.Sprintf("Pick a number between 1 and %d.", len(labels))))
		}
	}
}
