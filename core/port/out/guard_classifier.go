package out

import (
	"context"

	"guard_server/core/domain"
)

// Classifier is the outbound port for the gambling-spam inference service.
//
// Classify forwards the text as-is (empty strings included) and returns the
// normalized result. On transport failure or a non-success response it
// returns an error and no partial result; the caller decides how an
// unclassified comment is treated.
type Classifier interface {
	Classify(ctx context.Context, text string) (*domain.Classification, error)
}
