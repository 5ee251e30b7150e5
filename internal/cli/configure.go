package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/algosort/internal/config"
	"github.com/watchfire-io/algosort/internal/sequence"
)

func newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "configure",
		Aliases: []string{"config"},
		Short:   "Configure global settings",
		Long: `Configure global settings interactively.

This allows you to modify:
  - Session log directory
  - Whether to ask about recording at start-up
  - Whether to record sessions when not asking
  - Size of the sequence generated at start-up

Press Enter to keep the current value for any setting.`,
		Args: cobra.NoArgs,
		RunE: runConfigure,
	}
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	changed := false

	// Log directory
	fmt.Fprintf(out, "Log directory [%s]: ", settings.Logging.Dir)
	dir, _ := reader.ReadString('\n')
	dir = strings.TrimSpace(dir)
	if dir != "" && dir != settings.Logging.Dir {
		settings.Logging.Dir = dir
		changed = true
	}

	fmt.Fprintln(out, "\nLogging settings:")

	newAsk := promptYesNoWithCurrent(reader, out, "Ask whether to record each session?", settings.Logging.Ask)
	if newAsk != settings.Logging.Ask {
		settings.Logging.Ask = newAsk
		changed = true
	}

	if !settings.Logging.Ask {
		newEnabled := promptYesNoWithCurrent(reader, out, "Record sessions?", settings.Logging.Enabled)
		if newEnabled != settings.Logging.Enabled {
			settings.Logging.Enabled = newEnabled
			changed = true
		}
	}

	// Initial size
	fmt.Fprintf(out, "\nInitial sequence size (%d-%d) [%d]: ", sequence.MinSize, sequence.MaxSize, settings.Generator.InitialSize)
	sizeStr, _ := reader.ReadString('\n')
	sizeStr = strings.TrimSpace(sizeStr)
	if sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || !sequence.ValidSize(size) {
			return fmt.Errorf("invalid size: %s (expected a number from %d to %d)", sizeStr, sequence.MinSize, sequence.MaxSize)
		}
		if size != settings.Generator.InitialSize {
			settings.Generator.InitialSize = size
			changed = true
		}
	}

	if !changed {
		fmt.Fprintln(out, "\n"+styleHint.Render("No changes made."))
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintln(out, "\n"+styleSuccess.Render("Settings updated."))
	return nil
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, out io.Writer, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Fprintf(out, "  %s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	if response != "y" && response != "yes" && response != "n" && response != "no" {
		fmt.Fprintln(out, styleWarning.Render("  Unrecognised answer, keeping "+currentStr+"."))
		return current
	}
	return response == "y" || response == "yes"
}
