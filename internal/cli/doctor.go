package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/norareidy/i-need-a-reference/internal/candidate"
	"github.com/norareidy/i-need-a-reference/internal/category"
	"github.com/norareidy/i-need-a-reference/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor <base>",
	Short: "Check the config file and the docs repositories under <base>",
	Long: `Run diagnostic checks: validate the config file, then report for every
configured sibling repository whether its source tree exists and how many
docs source files each category holds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		configOK := runConfigCheck(out, config.FilePath())
		found := runReposCheck(out, filepath.Join(parentDir(), args[0]))

		if !configOK {
			return fmt.Errorf("config file %s is invalid", config.FilePath())
		}
		if found < 2 {
			return fmt.Errorf("found %d usable repositories, need at least 2", found)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runConfigCheck validates path if it exists. A missing file is fine.
func runConfigCheck(out io.Writer, path string) bool {
	fmt.Fprintf(out, "Config check: %s\n", path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "  [INFO] No config file, using defaults\n")
		return true
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(out, "  [ OK ] Valid config\n")
		return true
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return false
}

// runReposCheck reports on each repository and returns how many have a
// source tree.
func runReposCheck(out io.Writer, baseDir string) int {
	fmt.Fprintf(out, "Repositories check: %s\n", baseDir)
	if info, err := os.Stat(baseDir); err != nil || !info.IsDir() {
		fmt.Fprintf(out, "  [FAIL] base directory not found\n")
		return 0
	}

	loc := candidate.NewLocator(repos(), config.Extension(), logger)
	found := 0
	for _, repo := range loc.Repos {
		src := filepath.Join(baseDir, repo, category.SourceDir)
		if info, err := os.Stat(src); err != nil || !info.IsDir() {
			fmt.Fprintf(out, "  [MISS] %s: no %s directory\n", repo, category.SourceDir)
			continue
		}
		found++

		fmt.Fprintf(out, "  [ OK ] %s:", repo)
		for _, cat := range category.All() {
			n := 0
			err := loc.Walk(baseDir, repo, cat, func(string) error {
				n++
				return nil
			})
			if err != nil {
				fmt.Fprintf(out, " %s=error(%v)", cat, err)
				continue
			}
			fmt.Fprintf(out, " %s=%d", cat, n)
		}
		fmt.Fprintln(out)
	}
	return found
}
