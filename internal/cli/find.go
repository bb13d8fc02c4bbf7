package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/norareidy/i-need-a-reference/internal/branding"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
	"github.com/norareidy/i-need-a-reference/internal/config"
	"github.com/norareidy/i-need-a-reference/internal/console"
	"github.com/norareidy/i-need-a-reference/internal/reference"
)

// openPause gives the user a moment to read the progress line before the
// editor takes over the terminal.
const openPause = 500 * time.Millisecond

var (
	findNoOpen bool
	findEditor string
	findJSON   bool
	findQuiet  bool
)

func init() {
	rootCmd.Flags().BoolVar(&findNoOpen, "no-open", false, "Do not open the reference file")
	rootCmd.Flags().StringVar(&findEditor, "editor", "", "Editor command used to open the reference file (default from config, $VISUAL, $EDITOR)")
	rootCmd.Flags().BoolVar(&findJSON, "json", false, "Print the report as JSON and do not open the file")
	rootCmd.Flags().BoolVarP(&findQuiet, "quiet", "q", false, "Skip the banner and progress messages")
}

func runFind(cmd *cobra.Command, args []string) error {
	req := reference.Request{
		Filename: args[0],
		Category: args[1],
		BaseDir:  filepath.Join(parentDir(), args[2]),
	}

	out := cmd.OutOrStdout()
	con := console.New(out, config.SlowPrint() && !findQuiet)
	chatty := !findQuiet && !findJSON
	if chatty {
		con.Banner("Welcome to "+branding.DisplayName(), branding.Tagline())
		con.Progress("Fetching your reference file.......")
	}

	finder := reference.New(candidate.NewLocator(repos(), config.Extension(), logger), logger)
	finder.Stater = newStater()

	report, err := finder.Find(req)
	if err != nil {
		return err
	}

	if findJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if !findNoOpen {
		if chatty {
			con.Status("Reference file found!")
			con.Progress("File opening in your default text editor.......")
			time.Sleep(openPause)
		}
		editor := findEditor
		if editor == "" {
			editor = config.Editor()
		}
		if err := newOpener(editor).Open(report.Reference.Path); err != nil {
			logger.Warn("could not open reference file", err)
		} else if chatty {
			con.Status("Opened!")
		}
	}

	if chatty {
		con.Progress("Calculating replacement information.......")
	}
	con.Report(report)
	return nil
}
