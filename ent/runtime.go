// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/masteryforge/ent/concept"
	"github.com/abhisek/masteryforge/ent/course"
	"github.com/abhisek/masteryforge/ent/learningsession"
	"github.com/abhisek/masteryforge/ent/llmrequestevent"
	"github.com/abhisek/masteryforge/ent/masterystate"
	"github.com/abhisek/masteryforge/ent/quizattempt"
	"github.com/abhisek/masteryforge/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescCourseID is the schema descriptor for course_id field.
	conceptDescCourseID := conceptFields[1].Descriptor()
	// concept.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	concept.CourseIDValidator = conceptDescCourseID.Validators[0].(func(string) error)
	// conceptDescDescription is the schema descriptor for description field.
	conceptDescDescription := conceptFields[3].Descriptor()
	// concept.DefaultDescription holds the default value on creation for the description field.
	concept.DefaultDescription = conceptDescDescription.Default.(string)
	// conceptDescDifficulty is the schema descriptor for difficulty field.
	conceptDescDifficulty := conceptFields[4].Descriptor()
	// concept.DefaultDifficulty holds the default value on creation for the difficulty field.
	concept.DefaultDifficulty = conceptDescDifficulty.Default.(int)
	// concept.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	concept.DifficultyValidator = conceptDescDifficulty.Validators[0].(func(int) error)
	// conceptDescOrderIndex is the schema descriptor for order_index field.
	conceptDescOrderIndex := conceptFields[5].Descriptor()
	// concept.DefaultOrderIndex holds the default value on creation for the order_index field.
	concept.DefaultOrderIndex = conceptDescOrderIndex.Default.(int)
	// conceptDescActive is the schema descriptor for active field.
	conceptDescActive := conceptFields[7].Descriptor()
	// concept.DefaultActive holds the default value on creation for the active field.
	concept.DefaultActive = conceptDescActive.Default.(bool)
	// conceptDescID is the schema descriptor for id field.
	conceptDescID := conceptFields[0].Descriptor()
	// concept.IDValidator is a validator for the "id" field. It is called by the builders before save.
	concept.IDValidator = conceptDescID.Validators[0].(func(string) error)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescGradeLevel is the schema descriptor for grade_level field.
	courseDescGradeLevel := courseFields[2].Descriptor()
	// course.DefaultGradeLevel holds the default value on creation for the grade_level field.
	course.DefaultGradeLevel = courseDescGradeLevel.Default.(int)
	// courseDescActive is the schema descriptor for active field.
	courseDescActive := courseFields[3].Descriptor()
	// course.DefaultActive holds the default value on creation for the active field.
	course.DefaultActive = courseDescActive.Default.(bool)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.IDValidator is a validator for the "id" field. It is called by the builders before save.
	course.IDValidator = courseDescID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	llmrequestevent.InputTokensValidator = llmrequesteventDescInputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	llmrequestevent.OutputTokensValidator = llmrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learningsessionFields := schema.LearningSession{}.Fields()
	_ = learningsessionFields
	// learningsessionDescUserID is the schema descriptor for user_id field.
	learningsessionDescUserID := learningsessionFields[1].Descriptor()
	// learningsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningsession.UserIDValidator = learningsessionDescUserID.Validators[0].(func(string) error)
	// learningsessionDescStartTime is the schema descriptor for start_time field.
	learningsessionDescStartTime := learningsessionFields[2].Descriptor()
	// learningsession.DefaultStartTime holds the default value on creation for the start_time field.
	learningsession.DefaultStartTime = learningsessionDescStartTime.Default.(func() time.Time)
	// learningsessionDescTotalQuestions is the schema descriptor for total_questions field.
	learningsessionDescTotalQuestions := learningsessionFields[4].Descriptor()
	// learningsession.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	learningsession.DefaultTotalQuestions = learningsessionDescTotalQuestions.Default.(int)
	// learningsession.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	learningsession.TotalQuestionsValidator = learningsessionDescTotalQuestions.Validators[0].(func(int) error)
	// learningsessionDescAverageScore is the schema descriptor for average_score field.
	learningsessionDescAverageScore := learningsessionFields[5].Descriptor()
	// learningsession.DefaultAverageScore holds the default value on creation for the average_score field.
	learningsession.DefaultAverageScore = learningsessionDescAverageScore.Default.(float64)
	// learningsessionDescID is the schema descriptor for id field.
	learningsessionDescID := learningsessionFields[0].Descriptor()
	// learningsession.DefaultID holds the default value on creation for the id field.
	learningsession.DefaultID = learningsessionDescID.Default.(func() uuid.UUID)
	masterystateMixin := schema.MasteryState{}.Mixin()
	masterystateMixinFields0 := masterystateMixin[0].Fields()
	_ = masterystateMixinFields0
	masterystateFields := schema.MasteryState{}.Fields()
	_ = masterystateFields
	// masterystateDescCreatedAt is the schema descriptor for created_at field.
	masterystateDescCreatedAt := masterystateMixinFields0[0].Descriptor()
	// masterystate.DefaultCreatedAt holds the default value on creation for the created_at field.
	masterystate.DefaultCreatedAt = masterystateDescCreatedAt.Default.(func() time.Time)
	// masterystateDescUserID is the schema descriptor for user_id field.
	masterystateDescUserID := masterystateFields[0].Descriptor()
	// masterystate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masterystate.UserIDValidator = masterystateDescUserID.Validators[0].(func(string) error)
	// masterystateDescConceptID is the schema descriptor for concept_id field.
	masterystateDescConceptID := masterystateFields[1].Descriptor()
	// masterystate.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masterystate.ConceptIDValidator = masterystateDescConceptID.Validators[0].(func(string) error)
	// masterystateDescMasteryScore is the schema descriptor for mastery_score field.
	masterystateDescMasteryScore := masterystateFields[2].Descriptor()
	// masterystate.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	masterystate.DefaultMasteryScore = masterystateDescMasteryScore.Default.(float64)
	// masterystate.MasteryScoreValidator is a validator for the "mastery_score" field. It is called by the builders before save.
	masterystate.MasteryScoreValidator = func() func(float64) error {
		validators := masterystateDescMasteryScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery_score float64) error {
			for _, fn := range fns {
				if err := fn(mastery_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masterystateDescConfidenceScore is the schema descriptor for confidence_score field.
	masterystateDescConfidenceScore := masterystateFields[3].Descriptor()
	// masterystate.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	masterystate.DefaultConfidenceScore = masterystateDescConfidenceScore.Default.(float64)
	// masterystate.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	masterystate.ConfidenceScoreValidator = func() func(float64) error {
		validators := masterystateDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masterystateDescFrustrationScore is the schema descriptor for frustration_score field.
	masterystateDescFrustrationScore := masterystateFields[4].Descriptor()
	// masterystate.DefaultFrustrationScore holds the default value on creation for the frustration_score field.
	masterystate.DefaultFrustrationScore = masterystateDescFrustrationScore.Default.(float64)
	// masterystate.FrustrationScoreValidator is a validator for the "frustration_score" field. It is called by the builders before save.
	masterystate.FrustrationScoreValidator = func() func(float64) error {
		validators := masterystateDescFrustrationScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(frustration_score float64) error {
			for _, fn := range fns {
				if err := fn(frustration_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masterystateDescAttempts is the schema descriptor for attempts field.
	masterystateDescAttempts := masterystateFields[5].Descriptor()
	// masterystate.DefaultAttempts holds the default value on creation for the attempts field.
	masterystate.DefaultAttempts = masterystateDescAttempts.Default.(int)
	// masterystate.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	masterystate.AttemptsValidator = masterystateDescAttempts.Validators[0].(func(int) error)
	// masterystateDescRecommendedByAdapter is the schema descriptor for recommended_by_adapter field.
	masterystateDescRecommendedByAdapter := masterystateFields[6].Descriptor()
	// masterystate.DefaultRecommendedByAdapter holds the default value on creation for the recommended_by_adapter field.
	masterystate.DefaultRecommendedByAdapter = masterystateDescRecommendedByAdapter.Default.(bool)
	// masterystateDescLastSeen is the schema descriptor for last_seen field.
	masterystateDescLastSeen := masterystateFields[7].Descriptor()
	// masterystate.DefaultLastSeen holds the default value on creation for the last_seen field.
	masterystate.DefaultLastSeen = masterystateDescLastSeen.Default.(func() time.Time)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescCreatedAt is the schema descriptor for created_at field.
	quizattemptDescCreatedAt := quizattemptMixinFields0[0].Descriptor()
	// quizattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizattempt.DefaultCreatedAt = quizattemptDescCreatedAt.Default.(func() time.Time)
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptFields[0].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescConceptID is the schema descriptor for concept_id field.
	quizattemptDescConceptID := quizattemptFields[1].Descriptor()
	// quizattempt.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	quizattempt.ConceptIDValidator = quizattemptDescConceptID.Validators[0].(func(string) error)
	// quizattemptDescScorePercent is the schema descriptor for score_percent field.
	quizattemptDescScorePercent := quizattemptFields[3].Descriptor()
	// quizattempt.ScorePercentValidator is a validator for the "score_percent" field. It is called by the builders before save.
	quizattempt.ScorePercentValidator = func() func(float64) error {
		validators := quizattemptDescScorePercent.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score_percent float64) error {
			for _, fn := range fns {
				if err := fn(score_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizattemptDescSessionID is the schema descriptor for session_id field.
	quizattemptDescSessionID := quizattemptFields[4].Descriptor()
	// quizattempt.DefaultSessionID holds the default value on creation for the session_id field.
	quizattempt.DefaultSessionID = quizattemptDescSessionID.Default.(string)
}
