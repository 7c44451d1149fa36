package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-concept mastery for the learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{engine: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		user, course := userAndCourse(cmd)
		rep, err := rt.engine.Progress(cmd.Context(), user, course)
		if err != nil {
			return fmt.Errorf("build progress report: %w", err)
		}

		out := cmd.OutOrStdout()
		if rep.Total == 0 {
			fmt.Fprintln(out, "No active concepts in scope.")
			return nil
		}

		fmt.Fprintf(out, "%-24s  %-10s  %-11s  %7s  %5s  %5s  %5s\n",
			"Concept", "Course", "Level", "Mastery", "Frus", "Conf", "Tries")
		fmt.Fprintln(out, strings.Repeat("─", 78))
		for _, p := range rep.Concepts {
			mark := " "
			if p.Eligible {
				mark = "*"
			}
			fmt.Fprintf(out, "%s%-23s  %-10s  %-11s  %7.2f  %5.2f  %5.2f  %5d\n",
				mark, truncate(p.Concept.ID, 23), truncate(p.Concept.CourseID, 10), p.Level,
				p.State.Mastery, p.State.Frustration, p.State.Confidence, p.State.Attempts)
		}
		fmt.Fprintln(out, strings.Repeat("─", 78))
		fmt.Fprintf(out, "Mastered %d/%d (%.0f%%)  eligible %d  attempted %d  avg frustration %.2f\n",
			rep.Mastered, rep.Total, rep.Percent, rep.EligibleCount, rep.Attempted, rep.AverageFrustration)
		fmt.Fprintln(out, "* eligible now")
		return nil
	},
}
