package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/masteryforge/internal/practice"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice loop in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func runPractice(cmd *cobra.Command) error {
	rt, err := setup(cmd, setupOpts{engine: true, quiet: true})
	if err != nil {
		return err
	}
	defer rt.Close()

	user, course := userAndCourse(cmd)
	m, err := practice.Run(cmd.Context(), rt.engine, user, course)
	if err != nil {
		return fmt.Errorf("practice: %w", err)
	}
	if s := m.Session(); s != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Session closed: "+formatSession(*s))
	} else if m.Quizzes() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quizzes recorded.")
	}
	return nil
}
