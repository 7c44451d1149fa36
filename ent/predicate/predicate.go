// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningSession is the predicate function for learningsession builders.
type LearningSession func(*sql.Selector)

// MasteryState is the predicate function for masterystate builders.
type MasteryState func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)
