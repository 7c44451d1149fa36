package concept

import (
	"strings"
	"testing"
)

const sampleCatalog = `
courses:
  - id: arithmetic
    name: Arithmetic
    grade_level: 3
concepts:
  - id: counting
    title: Counting
  - id: addition
    title: Addition
    difficulty: 2
    prerequisites: [counting]
  - id: legacy
    order: 10
    active: false
`

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.Courses) != 1 || cat.Courses[0].Name != "Arithmetic" || !cat.Courses[0].Active {
		t.Fatalf("unexpected courses: %+v", cat.Courses)
	}
	if len(cat.Concepts) != 3 {
		t.Fatalf("got %d concepts, want 3", len(cat.Concepts))
	}

	add := cat.Concepts[1]
	if add.CourseID != "arithmetic" {
		t.Errorf("addition course = %q, want arithmetic", add.CourseID)
	}
	if add.OrderIndex != 2 {
		t.Errorf("addition order = %d, want 2", add.OrderIndex)
	}
	if add.Difficulty != 2 || !add.HasPrerequisite("counting") {
		t.Errorf("addition = %+v", add)
	}

	legacy := cat.Concepts[2]
	if legacy.Title != "legacy" || legacy.Active || legacy.OrderIndex != 10 || legacy.Difficulty != 1 {
		t.Errorf("legacy defaults not applied: %+v", legacy)
	}

	if err := Validate(cat.Concepts); err != nil {
		t.Errorf("loaded catalog failed validation: %v", err)
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing id", "concepts:\n  - title: x\n", "missing id"},
		{"no course to default to", "concepts:\n  - id: a\n", "missing course"},
		{"unknown course", "courses:\n  - id: a\nconcepts:\n  - id: x\n    course: b\n", "unknown course"},
		{"duplicate course", "courses:\n  - id: a\n  - id: a\n", "declared twice"},
		{"unknown field", "concepts:\n  - id: a\n    colour: red\n", "decode catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got error %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	cat, err := LoadCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Concepts) != 0 {
		t.Errorf("got %d concepts from empty input", len(cat.Concepts))
	}
}
