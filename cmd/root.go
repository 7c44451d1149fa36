package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "masteryforge",
	Short: "Adaptive concept scheduler",
	Long: "MasteryForge tracks per-concept mastery from quiz scores and decides what a\n" +
		"learner should study next across a prerequisite graph.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as serve.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MASTERYFORGE_DB)")
	pf.String("env-file", ".env", "Optional .env file to load before reading MASTERYFORGE_* variables")
	pf.StringP("user", "u", "learner", "Learner ID")
	pf.StringP("course", "c", "", "Restrict scheduling to one course (empty means every active course)")
	pf.Bool("no-llm", false, "Never consult the recommendation model")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(eligibleCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func userAndCourse(cmd *cobra.Command) (string, string) {
	user, _ := cmd.Flags().GetString("user")
	course, _ := cmd.Flags().GetString("course")
	return user, course
}
