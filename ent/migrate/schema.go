// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 1},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_course_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[1], ConceptsColumns[5]},
			},
			{
				Name:    "concept_active",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[7]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "grade_level", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// LearningSessionsColumns holds the columns for the "learning_sessions" table.
	LearningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "concepts_covered", Type: field.TypeJSON, Nullable: true},
	}
	// LearningSessionsTable holds the schema information for the "learning_sessions" table.
	LearningSessionsTable = &schema.Table{
		Name:       "learning_sessions",
		Columns:    LearningSessionsColumns,
		PrimaryKey: []*schema.Column{LearningSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningsession_user_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[1], LearningSessionsColumns[2]},
			},
		},
	}
	// MasteryStatesColumns holds the columns for the "mastery_states" table.
	MasteryStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "mastery_score", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "frustration_score", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "recommended_by_adapter", Type: field.TypeBool, Default: false},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// MasteryStatesTable holds the schema information for the "mastery_states" table.
	MasteryStatesTable = &schema.Table{
		Name:       "mastery_states",
		Columns:    MasteryStatesColumns,
		PrimaryKey: []*schema.Column{MasteryStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masterystate_created_at",
				Unique:  false,
				Columns: []*schema.Column{MasteryStatesColumns[1]},
			},
			{
				Name:    "masterystate_user_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryStatesColumns[2], MasteryStatesColumns[3]},
			},
			{
				Name:    "masterystate_user_id_last_seen",
				Unique:  false,
				Columns: []*schema.Column{MasteryStatesColumns[2], MasteryStatesColumns[9]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "score_percent", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
			{
				Name:    "quizattempt_user_id_course_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2], QuizAttemptsColumns[4]},
			},
			{
				Name:    "quizattempt_user_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2], QuizAttemptsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptsTable,
		CoursesTable,
		LlmRequestEventsTable,
		LearningSessionsTable,
		MasteryStatesTable,
		QuizAttemptsTable,
	}
)

func init() {
}
