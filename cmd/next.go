package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the concept the learner should study next",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{engine: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		user, course := userAndCourse(cmd)
		c, err := rt.engine.SelectNextConcept(cmd.Context(), user, course)
		if err != nil {
			return fmt.Errorf("select next concept: %w", err)
		}
		if c == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to study.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s)\n", c.ID, c.Title, c.CourseID)
		return nil
	},
}

var eligibleCmd = &cobra.Command{
	Use:   "eligible",
	Short: "List concepts whose prerequisites are met",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{engine: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		user, course := userAndCourse(cmd)
		list, err := rt.engine.EligibleConcepts(cmd.Context(), user, course)
		if err != nil {
			return fmt.Errorf("list eligible concepts: %w", err)
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No eligible concepts.")
			return nil
		}
		for _, c := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s)\n", c.ID, c.Title, c.CourseID)
		}
		return nil
	},
}
