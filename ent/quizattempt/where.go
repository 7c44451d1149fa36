// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/masteryforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldConceptID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCourseID, v))
}

// ScorePercent applies equality check predicate on the "score_percent" field. It's identical to ScorePercentEQ.
func ScorePercent(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScorePercent, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldConceptID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldCourseID, v))
}

// ScorePercentEQ applies the EQ predicate on the "score_percent" field.
func ScorePercentEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldScorePercent, v))
}

// ScorePercentNEQ applies the NEQ predicate on the "score_percent" field.
func ScorePercentNEQ(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldScorePercent, v))
}

// ScorePercentIn applies the In predicate on the "score_percent" field.
func ScorePercentIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldScorePercent, vs...))
}

// ScorePercentNotIn applies the NotIn predicate on the "score_percent" field.
func ScorePercentNotIn(vs ...float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldScorePercent, vs...))
}

// ScorePercentGT applies the GT predicate on the "score_percent" field.
func ScorePercentGT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldScorePercent, v))
}

// ScorePercentGTE applies the GTE predicate on the "score_percent" field.
func ScorePercentGTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldScorePercent, v))
}

// ScorePercentLT applies the LT predicate on the "score_percent" field.
func ScorePercentLT(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldScorePercent, v))
}

// ScorePercentLTE applies the LTE predicate on the "score_percent" field.
func ScorePercentLTE(v float64) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldScorePercent, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAttempt) predicate.QuizAttempt {
	return predicate.QuizAttempt(sql.NotPredicates(p))
}
