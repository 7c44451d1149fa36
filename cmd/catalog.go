package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/masteryforge/internal/concept"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load and inspect the course and concept catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file.yaml>",
	Short: "Check a catalog file without loading it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := readCatalog(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d courses, %d concepts\n", len(cat.Courses), len(cat.Concepts))
		return nil
	},
}

var catalogLoadCmd = &cobra.Command{
	Use:   "load <file.yaml>",
	Short: "Validate a catalog file and upsert it into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := readCatalog(args[0])
		if err != nil {
			return err
		}

		rt, err := setup(cmd, setupOpts{})
		if err != nil {
			return err
		}
		defer rt.Close()

		stats, err := rt.store.CatalogRepo().UpsertCatalog(cmd.Context(), cat)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		rt.log.Info("catalog loaded", "file", args[0],
			"courses_created", stats.CoursesCreated, "concepts_created", stats.ConceptsCreated)

		fmt.Fprintf(cmd.OutOrStdout(), "Courses:  %d created, %d updated\n", stats.CoursesCreated, stats.CoursesUpdated)
		fmt.Fprintf(cmd.OutOrStdout(), "Concepts: %d created, %d updated\n", stats.ConceptsCreated, stats.ConceptsUpdated)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses and concepts in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{})
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		courses, err := rt.store.CatalogRepo().Courses(ctx)
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		all, _ := cmd.Flags().GetBool("all")
		concepts, err := rt.store.CatalogRepo().Concepts(ctx, !all)
		if err != nil {
			return fmt.Errorf("list concepts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(courses) == 0 {
			fmt.Fprintln(out, "Catalog is empty. Run `masteryforge catalog load <file>` first.")
			return nil
		}

		byCourse := make(map[string][]concept.Concept)
		for _, c := range concepts {
			byCourse[c.CourseID] = append(byCourse[c.CourseID], c)
		}
		for _, course := range courses {
			state := ""
			if !course.Active {
				state = " (inactive)"
			}
			fmt.Fprintf(out, "%s  %s  grade %d%s\n", course.ID, course.Name, course.GradeLevel, state)
			list := byCourse[course.ID]
			concept.SortByOrder(list)
			for _, c := range list {
				prereqs := ""
				if len(c.Prerequisites) > 0 {
					prereqs = "  ← " + strings.Join(c.Prerequisites, ", ")
				}
				fmt.Fprintf(out, "  %3d  %-24s  d%d  %s%s\n", c.OrderIndex, c.ID, c.Difficulty, c.Title, prereqs)
			}
		}
		return nil
	},
}

func readCatalog(path string) (*concept.Catalog, error) {
	cat, err := concept.LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}
	if err := concept.Validate(cat.Concepts); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

func init() {
	catalogListCmd.Flags().Bool("all", false, "Include inactive concepts")

	catalogCmd.AddCommand(catalogLoadCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
