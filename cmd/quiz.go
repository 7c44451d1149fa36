package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <concept-id> <score-percent>",
	Short: "Record a graded quiz and print the recommended next concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[1], err)
		}

		rt, err := setup(cmd, setupOpts{engine: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		user, _ := userAndCourse(cmd)
		res, err := rt.engine.UpdateMasteryAfterQuiz(ctx, user, args[0], score)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %.0f%% (%s)\n", res.Concept.Title, res.Attempt.ScorePercent, res.Band)
		fmt.Fprintf(out, "  mastery     %.2f → %.2f\n", res.Before.Mastery, res.After.Mastery)
		fmt.Fprintf(out, "  frustration %.2f → %.2f\n", res.Before.Frustration, res.After.Frustration)
		fmt.Fprintf(out, "  confidence  %.2f → %.2f\n", res.Before.Confidence, res.After.Confidence)
		fmt.Fprintf(out, "  attempts    %d\n", res.After.Attempts)

		next, err := rt.engine.RecommendNextConceptAfterQuiz(ctx, user, args[0], score)
		if err != nil {
			rt.log.Warn("post-quiz recommendation failed", "user", user, "concept", args[0], "error", err)
			return nil
		}
		if next != nil {
			fmt.Fprintf(out, "Next: %s\t%s\n", next.ID, next.Title)
		}
		return nil
	},
}
