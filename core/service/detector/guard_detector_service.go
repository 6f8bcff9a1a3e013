// Package detector implements ad-hoc analysis of pasted text, outside any
// triage session.
package detector

import (
	"context"
	"strings"

	"guard_server/core/domain"
	"guard_server/core/port/out"
	"guard_server/pkg/apperr"
)

// Service analyzes a single piece of text with the same classifier the scan
// pipeline uses.
type Service struct {
	classifier out.Classifier
}

// NewService creates the detector service.
func NewService(classifier out.Classifier) *Service {
	return &Service{classifier: classifier}
}

// Analyze classifies one text. Unlike the scan pipeline there is no fail-open
// here: the caller asked for exactly this result, so a gateway failure is
// surfaced as an error.
func (s *Service) Analyze(ctx context.Context, text string) (*domain.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.MissingField("text")
	}

	result, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, apperr.InferenceError(err)
	}
	return result, nil
}
