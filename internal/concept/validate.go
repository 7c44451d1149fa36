package concept

import (
	"fmt"
	"sort"
	"strings"
)

// Validate performs structural checks on a concept set: empty and
// duplicate IDs, dangling prerequisite references, self references and
// prerequisite cycles. It returns one error describing every problem found,
// or nil. Problems are reported, never repaired; a concept on a cycle stays
// ineligible forever.
func Validate(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("concept %q has an empty ID", c.Title))
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
		if c.CourseID == "" {
			errs = append(errs, fmt.Sprintf("concept %q has no course", c.ID))
		}
		if c.Difficulty < 1 {
			errs = append(errs, fmt.Sprintf("concept %q: difficulty must be >= 1, got %d", c.ID, c.Difficulty))
		}
	}

	for _, c := range concepts {
		for _, pid := range c.Prerequisites {
			switch {
			case pid == c.ID:
				errs = append(errs, fmt.Sprintf("concept %q lists itself as a prerequisite", c.ID))
			case !idSet[pid]:
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, pid))
			}
		}
	}

	if cycle := CycleMembers(concepts); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("cycle detected involving concepts: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// CycleMembers returns the sorted IDs of concepts that sit on, or depend
// on, a prerequisite cycle. It uses Kahn's algorithm and ignores dangling
// references.
func CycleMembers(concepts []Concept) []string {
	known := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		known[c.ID] = true
	}

	inDegree := make(map[string]int, len(concepts))
	adj := make(map[string][]string)
	for _, c := range concepts {
		if _, dup := inDegree[c.ID]; dup {
			continue
		}
		inDegree[c.ID] = 0
		for _, pid := range c.Prerequisites {
			if !known[pid] {
				continue
			}
			inDegree[c.ID]++
			adj[pid] = append(adj[pid], c.ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	var stuck []string
	for id, deg := range inDegree {
		if deg > 0 {
			stuck = append(stuck, id)
		}
	}
	sort.Strings(stuck)
	return stuck
}
