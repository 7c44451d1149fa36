// Code generated by ent, DO NOT EDIT.

package masterystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/masteryforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldCreatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldConceptID, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldMasteryScore, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldConfidenceScore, v))
}

// FrustrationScore applies equality check predicate on the "frustration_score" field. It's identical to FrustrationScoreEQ.
func FrustrationScore(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldFrustrationScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldAttempts, v))
}

// RecommendedByAdapter applies equality check predicate on the "recommended_by_adapter" field. It's identical to RecommendedByAdapterEQ.
func RecommendedByAdapter(v bool) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldRecommendedByAdapter, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldLastSeen, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContainsFold(FieldConceptID, v))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldMasteryScore, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldConfidenceScore, v))
}

// FrustrationScoreEQ applies the EQ predicate on the "frustration_score" field.
func FrustrationScoreEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldFrustrationScore, v))
}

// FrustrationScoreNEQ applies the NEQ predicate on the "frustration_score" field.
func FrustrationScoreNEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldFrustrationScore, v))
}

// FrustrationScoreIn applies the In predicate on the "frustration_score" field.
func FrustrationScoreIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldFrustrationScore, vs...))
}

// FrustrationScoreNotIn applies the NotIn predicate on the "frustration_score" field.
func FrustrationScoreNotIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldFrustrationScore, vs...))
}

// FrustrationScoreGT applies the GT predicate on the "frustration_score" field.
func FrustrationScoreGT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldFrustrationScore, v))
}

// FrustrationScoreGTE applies the GTE predicate on the "frustration_score" field.
func FrustrationScoreGTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldFrustrationScore, v))
}

// FrustrationScoreLT applies the LT predicate on the "frustration_score" field.
func FrustrationScoreLT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldFrustrationScore, v))
}

// FrustrationScoreLTE applies the LTE predicate on the "frustration_score" field.
func FrustrationScoreLTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldFrustrationScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldAttempts, v))
}

// RecommendedByAdapterEQ applies the EQ predicate on the "recommended_by_adapter" field.
func RecommendedByAdapterEQ(v bool) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldRecommendedByAdapter, v))
}

// RecommendedByAdapterNEQ applies the NEQ predicate on the "recommended_by_adapter" field.
func RecommendedByAdapterNEQ(v bool) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldRecommendedByAdapter, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.NotPredicates(p))
}
