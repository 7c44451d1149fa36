package concept

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is a set of courses and concepts loaded from a content file.
type Catalog struct {
	Courses  []Course
	Concepts []Concept
}

type catalogFile struct {
	Courses  []courseEntry  `yaml:"courses"`
	Concepts []conceptEntry `yaml:"concepts"`
}

type courseEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	GradeLevel int    `yaml:"grade_level"`
	Active     *bool  `yaml:"active"`
}

type conceptEntry struct {
	ID            string   `yaml:"id"`
	Course        string   `yaml:"course"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Difficulty    int      `yaml:"difficulty"`
	Order         *int     `yaml:"order"`
	Prerequisites []string `yaml:"prerequisites"`
	Active        *bool    `yaml:"active"`
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog parses a YAML catalog. Missing fields take defaults: the
// title falls back to the ID, difficulty to 1, order to the position in
// the file and active to true. A concept without a course is assigned to
// the only course when exactly one is declared.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var raw catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := &Catalog{
		Courses:  make([]Course, 0, len(raw.Courses)),
		Concepts: make([]Concept, 0, len(raw.Concepts)),
	}
	courseIDs := make(map[string]bool, len(raw.Courses))
	for i, e := range raw.Courses {
		if e.ID == "" {
			return nil, fmt.Errorf("course #%d: missing id", i+1)
		}
		if courseIDs[e.ID] {
			return nil, fmt.Errorf("course %q: declared twice", e.ID)
		}
		courseIDs[e.ID] = true
		name := e.Name
		if name == "" {
			name = e.ID
		}
		cat.Courses = append(cat.Courses, Course{
			ID:         e.ID,
			Name:       name,
			GradeLevel: e.GradeLevel,
			Active:     boolOr(e.Active, true),
		})
	}

	for i, e := range raw.Concepts {
		if e.ID == "" {
			return nil, fmt.Errorf("concept #%d: missing id", i+1)
		}
		courseID := e.Course
		if courseID == "" {
			if len(cat.Courses) != 1 {
				return nil, fmt.Errorf("concept %q: missing course", e.ID)
			}
			courseID = cat.Courses[0].ID
		}
		if len(courseIDs) > 0 && !courseIDs[courseID] {
			return nil, fmt.Errorf("concept %q: unknown course %q", e.ID, courseID)
		}
		title := e.Title
		if title == "" {
			title = e.ID
		}
		difficulty := e.Difficulty
		if difficulty == 0 {
			difficulty = 1
		}
		order := i + 1
		if e.Order != nil {
			order = *e.Order
		}
		cat.Concepts = append(cat.Concepts, Concept{
			ID:            e.ID,
			CourseID:      courseID,
			Title:         title,
			Description:   e.Description,
			Difficulty:    difficulty,
			OrderIndex:    order,
			Prerequisites: e.Prerequisites,
			Active:        boolOr(e.Active, true),
		})
	}
	return cat, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
