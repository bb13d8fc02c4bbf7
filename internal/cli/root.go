package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/branding"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
	"github.com/norareidy/i-need-a-reference/internal/config"
	"github.com/norareidy/i-need-a-reference/internal/console"
	"github.com/norareidy/i-need-a-reference/internal/logging"
	"github.com/norareidy/i-need-a-reference/internal/opener"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevelFlag string
	reposFlag    []string
	parentFlag   string
	logger       = logging.Nop()
)

// Seams replaced in tests: real birth times cannot be set on a temp dir,
// and tests must not launch editors.
var (
	newStater = func() candidate.Stater { return candidate.FSStater{} }
	newOpener = func(command string) opener.Opener { return opener.New(command) }
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <filename> <category> <base>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` finds the most recent file with the same name as your new
docs page across the sibling docs repositories, opens it, and estimates how
much of it you will replace.

  <filename>  name of your new file, e.g. connection-guide.txt
  <category>  fundamentals, usage-examples, or other
  <base>      directory that holds the docs repositories`,
	Example:       "  " + branding.CLIName() + " connection-guide.txt fundamentals Repositories",
	Args:          lookupArgs,
	RunE:          runFind,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := config.LogLevel()
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logger = logging.New(level, config.LogFormat(), cmd.ErrOrStderr())

		if err := config.CheckVersion(config.RequiredVersion(), buildVersion); err != nil {
			return fmt.Errorf("checking %s: %w", config.FilePath(), err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceVar(&reposFlag, "repos", nil, "Sibling repositories to search (overrides config)")
	rootCmd.PersistentFlags().StringVar(&parentFlag, "parent", "", "Directory containing <base> (default from config, \"..\")")
}

// lookupArgs reports a wrong argument count as a usage error.
func lookupArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return apperr.Usage(fmt.Sprintf("Usage: %s\nExpected 3 arguments, got %d.", cmd.UseLine(), len(args)))
	}
	return nil
}

// repos returns the --repos flag or the configured list.
func repos() []string {
	if len(reposFlag) > 0 {
		return reposFlag
	}
	return config.Repos()
}

// parentDir returns the --parent flag or the configured parent directory.
func parentDir() string {
	if parentFlag != "" {
		return parentFlag
	}
	return config.ParentDir()
}

// Execute runs the root command with build info injected via ldflags and
// reports any failure. The returned error decides the exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	return apperr.ExitCode(err)
}

func reportError(w io.Writer, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindUsage, apperr.KindInsufficientData:
		console.New(w, false).Error(err.Error())
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
