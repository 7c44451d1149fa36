// Code generated by ent, DO NOT EDIT.

package masterystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masterystate type in the database.
	Label = "mastery_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldFrustrationScore holds the string denoting the frustration_score field in the database.
	FieldFrustrationScore = "frustration_score"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldRecommendedByAdapter holds the string denoting the recommended_by_adapter field in the database.
	FieldRecommendedByAdapter = "recommended_by_adapter"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the masterystate in the database.
	Table = "mastery_states"
)

// Columns holds all SQL columns for masterystate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUserID,
	FieldConceptID,
	FieldMasteryScore,
	FieldConfidenceScore,
	FieldFrustrationScore,
	FieldAttempts,
	FieldRecommendedByAdapter,
	FieldLastSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore float64
	// MasteryScoreValidator is a validator for the "mastery_score" field. It is called by the builders before save.
	MasteryScoreValidator func(float64) error
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	ConfidenceScoreValidator func(float64) error
	// DefaultFrustrationScore holds the default value on creation for the "frustration_score" field.
	DefaultFrustrationScore float64
	// FrustrationScoreValidator is a validator for the "frustration_score" field. It is called by the builders before save.
	FrustrationScoreValidator func(float64) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	AttemptsValidator func(int) error
	// DefaultRecommendedByAdapter holds the default value on creation for the "recommended_by_adapter" field.
	DefaultRecommendedByAdapter bool
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
)

// OrderOption defines the ordering options for the MasteryState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByFrustrationScore orders the results by the frustration_score field.
func ByFrustrationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrustrationScore, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByRecommendedByAdapter orders the results by the recommended_by_adapter field.
func ByRecommendedByAdapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedByAdapter, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
