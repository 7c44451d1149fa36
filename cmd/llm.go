package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/masteryforge/internal/llm"
	"github.com/abhisek/masteryforge/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded recommender model calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		rt, err := setup(cmd, setupOpts{quiet: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		calls, err := rt.store.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(calls) == 0 {
			fmt.Fprintln(out, "No model calls recorded.")
			return nil
		}

		tw := table(out)
		fmt.Fprintln(tw, "ID\tWhen\tPurpose\tModel\tIn\tOut\tMs\tOK")
		for _, e := range calls {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID, e.Timestamp.Local().Format("01-02 15:04:05"), e.Purpose, truncate(e.Model, 28),
				e.InputTokens, e.OutputTokens, e.LatencyMs, okMark(e.Success))
		}
		return tw.Flush()
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and answer of one model call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		rt, err := setup(cmd, setupOpts{quiet: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		e, err := rt.store.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("model call %d not found", id)
		}

		out := cmd.OutOrStdout()
		tw := table(out)
		fmt.Fprintf(tw, "Time:\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(tw, "Provider:\t%s\n", e.Provider)
		fmt.Fprintf(tw, "Model:\t%s\n", e.Model)
		fmt.Fprintf(tw, "Purpose:\t%s\n", e.Purpose)
		fmt.Fprintf(tw, "Tokens:\t%d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(tw, "Latency:\t%dms\n", e.LatencyMs)
		if cost := llm.LookupCost(e.Model); cost != nil {
			fmt.Fprintf(tw, "Cost:\t%s\n", formatCost(cost.Cost(e.InputTokens, e.OutputTokens)))
		}
		fmt.Fprintf(tw, "Success:\t%v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Fprintf(tw, "Error:\t%s\n", e.ErrorMessage)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		section(out, "REQUEST", e.RequestBody)
		section(out, "RESPONSE", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{quiet: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		events := rt.store.EventRepo()
		byPurpose, err := events.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No model calls recorded.")
			return nil
		}

		tw := table(out)
		fmt.Fprintln(tw, "Purpose\tCalls\tInput\tOutput\tAvg ms")
		var calls, in, outTok int
		for _, u := range byPurpose {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			calls += u.Calls
			in += u.InputTokens
			outTok += u.OutputTokens
		}
		fmt.Fprintf(tw, "total\t%d\t%d\t%d\t\n", calls, in, outTok)
		if err := tw.Flush(); err != nil {
			return err
		}

		byModel, err := events.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Fprintln(out)
		tw = table(out)
		fmt.Fprintln(tw, "Model\tCalls\tCost (USD)")
		var total float64
		var unpriced []string
		for _, u := range byModel {
			cost := "?"
			if c := llm.LookupCost(u.Model); c != nil {
				usd := c.Cost(u.InputTokens, u.OutputTokens)
				total += usd
				cost = formatCost(usd)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", truncate(u.Model, 32), u.Calls, cost)
		}
		label := "total"
		if len(unpriced) > 0 {
			label = "total (partial)"
		}
		fmt.Fprintf(tw, "%s\t\t%s\n", label, formatCost(total))
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(unpriced) > 0 {
			fmt.Fprintf(out, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func section(w io.Writer, title, body string) {
	rule := strings.Repeat("─", 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintf(w, "\n%s\n%s\n%s\n%s\n", rule, title, rule, strings.TrimRight(body, "\n"))
}

func okMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only calls with this purpose (rank-concepts, next-concept)")
	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
