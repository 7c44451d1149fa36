package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `courses:
  - id: arith
    name: Arithmetic
    grade_level: 3
concepts:
  - id: add
    course: arith
    title: Addition
    order: 1
  - id: sub
    course: arith
    title: Subtraction
    order: 2
    prerequisites: [add]
  - id: mul
    course: arith
    title: Multiplication
    order: 3
    difficulty: 2
    prerequisites: [add]
`

const cyclicCatalog = `courses:
  - id: c
concepts:
  - id: a
    prerequisites: [b]
  - id: b
    prerequisites: [a]
`

type cli struct {
	t    *testing.T
	base []string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("MASTERYFORGE_LOG_LEVEL", "error")
	dir := t.TempDir()
	return &cli{t: t, base: []string{
		"--db", filepath.Join(dir, "test.db"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--user", "kid",
		"--course", "",
		"--no-llm",
	}}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, c.base...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "args %v", args)
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestCLI_EndToEnd(t *testing.T) {
	c := newCLI(t)
	catalog := writeFile(t, "catalog.yaml", testCatalog)

	assert.Contains(t, c.mustRun("catalog", "validate", catalog), "OK: 1 courses, 3 concepts")
	assert.Contains(t, c.mustRun("catalog", "load", catalog), "Concepts: 3 created, 0 updated")
	assert.Contains(t, c.mustRun("catalog", "load", catalog), "Concepts: 0 created, 3 updated")

	list := c.mustRun("catalog", "list")
	assert.Contains(t, list, "Arithmetic")
	assert.Contains(t, list, "Subtraction")

	assert.Contains(t, c.mustRun("next"), "add\tAddition")
	assert.Contains(t, c.mustRun("eligible"), "add\tAddition")

	quiz := c.mustRun("quiz", "add", "95")
	assert.Contains(t, quiz, "Addition: 95% (high)")
	assert.Contains(t, quiz, "mastery     0.00 → 0.15")
	assert.Contains(t, quiz, "attempts    1")

	status := c.mustRun("status")
	assert.Contains(t, status, "add")
	assert.Contains(t, status, "Mastered 0/3")

	assert.Contains(t, c.mustRun("session", "close"), "Closed")
	assert.Contains(t, c.mustRun("session", "close"), "No open session.")
	assert.Contains(t, c.mustRun("session", "list"), "1 quizzes")

	assert.Contains(t, c.mustRun("llm", "list"), "No model calls recorded.")
	assert.Contains(t, c.mustRun("llm", "stats"), "No model calls recorded.")
}

func TestCLI_QuizUnknownConcept(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("quiz", "nope", "50")
	assert.ErrorContains(t, err, "unknown concept")
}

func TestCLI_QuizBadScore(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("quiz", "add", "lots")
	assert.ErrorContains(t, err, "invalid score")
}

func TestCLI_ValidateRejectsCycle(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("catalog", "validate", writeFile(t, "bad.yaml", cyclicCatalog))
	assert.ErrorContains(t, err, "invalid catalog")
}

func TestCLI_EmptyCatalog(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("next"), "Nothing to study.")
	assert.Contains(t, c.mustRun("catalog", "list"), "Catalog is empty")
	assert.Contains(t, c.mustRun("status"), "No active concepts in scope.")
}

func TestCLI_Version(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("version"), "masteryforge")
}
