package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/masteryforge/ent"
	entconcept "github.com/abhisek/masteryforge/ent/concept"
	"github.com/abhisek/masteryforge/internal/concept"
)

// catalogRepo implements CatalogRepo backed by ent.
type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) UpsertCatalog(ctx context.Context, cat *concept.Catalog) (CatalogStats, error) {
	var stats CatalogStats
	if cat == nil {
		return stats, nil
	}
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		for _, c := range cat.Courses {
			_, err := tx.Course.Get(ctx, c.ID)
			switch {
			case ent.IsNotFound(err):
				_, err = tx.Course.Create().
					SetID(c.ID).
					SetName(c.Name).
					SetGradeLevel(c.GradeLevel).
					SetActive(c.Active).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("create course %q: %w", c.ID, err)
				}
				stats.CoursesCreated++
			case err != nil:
				return fmt.Errorf("get course %q: %w", c.ID, err)
			default:
				_, err = tx.Course.UpdateOneID(c.ID).
					SetName(c.Name).
					SetGradeLevel(c.GradeLevel).
					SetActive(c.Active).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("update course %q: %w", c.ID, err)
				}
				stats.CoursesUpdated++
			}
		}

		for _, c := range cat.Concepts {
			_, err := tx.Concept.Get(ctx, c.ID)
			switch {
			case ent.IsNotFound(err):
				_, err = tx.Concept.Create().
					SetID(c.ID).
					SetCourseID(c.CourseID).
					SetTitle(c.Title).
					SetDescription(c.Description).
					SetDifficulty(c.Difficulty).
					SetOrderIndex(c.OrderIndex).
					SetPrerequisites(c.Prerequisites).
					SetActive(c.Active).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("create concept %q: %w", c.ID, err)
				}
				stats.ConceptsCreated++
			case err != nil:
				return fmt.Errorf("get concept %q: %w", c.ID, err)
			default:
				_, err = tx.Concept.UpdateOneID(c.ID).
					SetCourseID(c.CourseID).
					SetTitle(c.Title).
					SetDescription(c.Description).
					SetDifficulty(c.Difficulty).
					SetOrderIndex(c.OrderIndex).
					SetPrerequisites(c.Prerequisites).
					SetActive(c.Active).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("update concept %q: %w", c.ID, err)
				}
				stats.ConceptsUpdated++
			}
		}
		return nil
	})
	if err != nil {
		return CatalogStats{}, err
	}
	return stats, nil
}

func (r *catalogRepo) Courses(ctx context.Context) ([]concept.Course, error) {
	rows, err := r.client.Course.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	out := make([]concept.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, concept.Course{
			ID:         row.ID,
			Name:       row.Name,
			GradeLevel: row.GradeLevel,
			Active:     row.Active,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GradeLevel != out[j].GradeLevel {
			return out[i].GradeLevel < out[j].GradeLevel
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *catalogRepo) Concepts(ctx context.Context, activeOnly bool) ([]concept.Concept, error) {
	q := r.client.Concept.Query()
	if activeOnly {
		q = q.Where(entconcept.Active(true))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}

	var inactiveCourses map[string]bool
	if activeOnly {
		courses, err := r.Courses(ctx)
		if err != nil {
			return nil, err
		}
		inactiveCourses = make(map[string]bool)
		for _, c := range courses {
			if !c.Active {
				inactiveCourses[c.ID] = true
			}
		}
	}

	out := make([]concept.Concept, 0, len(rows))
	for _, row := range rows {
		if inactiveCourses[row.CourseID] {
			continue
		}
		out = append(out, conceptFromEnt(row))
	}
	concept.SortByOrder(out)
	return out, nil
}

func (r *catalogRepo) Concept(ctx context.Context, id string) (*concept.Concept, error) {
	row, err := r.client.Concept.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get concept %q: %w", id, err)
	}
	c := conceptFromEnt(row)
	return &c, nil
}

func conceptFromEnt(row *ent.Concept) concept.Concept {
	return concept.Concept{
		ID:            row.ID,
		CourseID:      row.CourseID,
		Title:         row.Title,
		Description:   row.Description,
		Difficulty:    row.Difficulty,
		OrderIndex:    row.OrderIndex,
		Prerequisites: row.Prerequisites,
		Active:        row.Active,
	}
}
