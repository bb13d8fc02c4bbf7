package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/norareidy/i-need-a-reference/internal/apperr"
	"github.com/norareidy/i-need-a-reference/internal/candidate"
	"github.com/norareidy/i-need-a-reference/internal/category"
	"github.com/norareidy/i-need-a-reference/internal/config"
	"github.com/norareidy/i-need-a-reference/internal/survey"
	"github.com/norareidy/i-need-a-reference/internal/tier"
)

var surveyJSON bool

var surveyCmd = &cobra.Command{
	Use:   "survey <anchor-repo> <category> <base>",
	Short: "Measure every file of one repository against its siblings",
	Long: `Survey walks every docs source file of <anchor-repo> in <category>, finds the
same-named files across the sibling repositories, and prints the difference
between the two most recently created copies. The summary shows the sample
mean and standard deviation next to the built-in profile for the category.

Files with fewer than two copies are skipped.`,
	Args: cobra.ExactArgs(3),
	RunE: runSurvey,
}

func init() {
	surveyCmd.Flags().BoolVar(&surveyJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(surveyCmd)
}

func runSurvey(cmd *cobra.Command, args []string) error {
	anchor := args[0]
	cat, err := category.Parse(args[1])
	if err != nil {
		return apperr.Usage(err.Error())
	}
	baseDir := filepath.Join(parentDir(), args[2])

	s := &survey.Surveyor{
		Locator: candidate.NewLocator(repos(), config.Extension(), logger),
		Stater:  newStater(),
		Logger:  logger,
	}
	res, err := s.Run(baseDir, anchor, cat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if surveyJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling survey: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(res.Entries) == 0 {
		fmt.Fprintf(out, "No files in %s/%s have a counterpart to compare against.\n", anchor, cat.SubDir())
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tCOPIES\tDIFF %")
	for _, e := range res.Entries {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", e.Name, e.Candidates, e.Percent)
	}
	w.Flush()

	profile := tier.DefaultProfiles().For(cat)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Measured %d file(s), skipped %d.\n", len(res.Entries), len(res.Skipped))
	fmt.Fprintf(out, "Sample mean %.3f, standard deviation %.3f.\n", res.Mean, res.StdDev)
	fmt.Fprintf(out, "Built-in '%s' profile: mean %.3f, standard deviation %.3f.\n", cat, profile.Mean, profile.StdDev)
	return nil
}
