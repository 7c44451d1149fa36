package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "github.com/abhisek/masteryforge"

// Start opens a span on the global tracer.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentation).Start(ctx, name, trace.WithAttributes(attrs...))
}

// Finish records *errp on the span, if any, and ends it. Use with a named
// error return: defer observability.Finish(span, &err).
func Finish(span trace.Span, errp *error) {
	if errp != nil && *errp != nil {
		span.RecordError(*errp)
		span.SetStatus(codes.Error, (*errp).Error())
	}
	span.End()
}

// UserID labels a span with the learner.
func UserID(id string) attribute.KeyValue {
	return attribute.String("user.id", id)
}

// ConceptID labels a span with a concept.
func ConceptID(id string) attribute.KeyValue {
	return attribute.String("concept.id", id)
}

// CourseID labels a span with a course scope.
func CourseID(id string) attribute.KeyValue {
	return attribute.String("course.id", id)
}
