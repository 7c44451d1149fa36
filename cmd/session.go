package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/masteryforge/internal/store"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect and close learning sessions",
}

var sessionCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "End the learner's open session",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{engine: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		user, _ := userAndCourse(cmd)
		s, err := rt.engine.CloseSession(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("close session: %w", err)
		}
		if s == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No open session.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Closed "+formatSession(*s))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the learner's recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{})
		if err != nil {
			return err
		}
		defer rt.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		user, _ := userAndCourse(cmd)
		sessions, err := rt.store.SessionRepo().RecentSessions(cmd.Context(), user, limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded.")
			return nil
		}
		for _, s := range sessions {
			fmt.Fprintln(cmd.OutOrStdout(), formatSession(s))
		}
		return nil
	},
}

func formatSession(s store.LearningSession) string {
	end := "open"
	if s.EndTime != nil {
		end = s.EndTime.Local().Format("15:04")
	}
	return fmt.Sprintf("%s  %s-%s  %d quizzes  avg %.0f%%  [%s]",
		s.ID.String()[:8],
		s.StartTime.Local().Format("2006-01-02 15:04"), end,
		s.TotalQuestions, s.AverageScore,
		strings.Join(s.ConceptsCovered, ", "))
}

func init() {
	sessionListCmd.Flags().IntP("limit", "n", 10, "Number of sessions to show")

	sessionCmd.AddCommand(sessionCloseCmd)
	sessionCmd.AddCommand(sessionListCmd)
}
