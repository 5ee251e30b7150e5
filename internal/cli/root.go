// Package cli implements the algosort commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/watchfire-io/algosort/internal/config"
	"github.com/watchfire-io/algosort/internal/logging"
	"github.com/watchfire-io/algosort/internal/models"
	"github.com/watchfire-io/algosort/internal/sequence"
	"github.com/watchfire-io/algosort/internal/session"
)

type rootOptions struct {
	logDir  string
	size    int
	logOn   bool
	logOff  bool
	seed    uint64
	verbose bool
}

// NewRootCmd builds the command tree. Running the root command starts an
// interactive session.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "algosort",
		Short: "Generate random numbers and sort them interactively",
		Long: `algosort generates a list of random numbers between 1 and 1000 and lets you
sort it with bubble sort or merge sort, view it, or generate a new one.

Sessions can be recorded to a daily log file (<log-dir>/<year>-<month>-<day>.txt).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.logDir, "log-dir", "", "directory for session logs (default from settings, \"Logs\")")
	flags.IntVar(&opts.size, "size", 0, fmt.Sprintf("size of the initial sequence (%d-%d)", sequence.MinSize, sequence.MaxSize))
	flags.BoolVar(&opts.logOn, "log", false, "record this session without asking")
	flags.BoolVar(&opts.logOff, "no-log", false, "do not record this session and do not ask")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for the number generator (0 uses the clock)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print diagnostic output to stderr")
	cmd.MarkFlagsMutuallyExclusive("log", "no-log")

	// Add subcommands (alphabetical)
	cmd.AddCommand(newConfigureCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func runSession(cmd *cobra.Command, opts *rootOptions) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-dir") {
		settings.Logging.Dir = opts.logDir
	}
	if cmd.Flags().Changed("size") {
		if !sequence.ValidSize(opts.size) {
			return fmt.Errorf("--size %d out of range [%d, %d]", opts.size, sequence.MinSize, sequence.MaxSize)
		}
		settings.Generator.InitialSize = opts.size
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	diag := logging.ForRun(logging.New(cmd.ErrOrStderr(), opts.verbose))
	diag.Debug("starting session", "log_dir", settings.Logging.Dir, "size", settings.Generator.InitialSize, "seed", opts.seed)

	ctrl := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), session.Options{
		InitialSize: settings.Generator.InitialSize,
		Logging:     loggingMode(settings, opts),
		LogDir:      settings.Logging.Dir,
		Source:      sequence.NewSource(opts.seed),
		Diagnostics: diag,
	})
	if err := ctrl.Run(); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	waitForKey(cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}

func loggingMode(settings *models.Settings, opts *rootOptions) session.LoggingMode {
	switch {
	case opts.logOn:
		return session.LoggingOn
	case opts.logOff:
		return session.LoggingOff
	case settings.Logging.Ask:
		return session.LoggingAsk
	case settings.Logging.Enabled:
		return session.LoggingOn
	default:
		return session.LoggingOff
	}
}

// waitForKey holds the final screen until a key is pressed. It does nothing
// unless in is an interactive terminal.
func waitForKey(in io.Reader, out io.Writer) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}

	fmt.Fprint(out, styleHint.Render("Press any key to exit..."))
	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		fmt.Fprintln(out)
		return
	}
	defer term.Restore(int(f.Fd()), state)

	var key [1]byte
	_, _ = f.Read(key[:])
	fmt.Fprint(out, "\r\n")
}
