package detector

import (
	"context"
	"errors"
	"testing"

	"guard_server/core/domain"
	"guard_server/pkg/apperr"
)

type stubClassifier struct {
	result *domain.Classification
	err    error
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (*domain.Classification, error) {
	return s.result, s.err
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		classifier *stubClassifier
		wantCode   string
		wantFlag   bool
	}{
		{
			name:       "empty text rejected",
			text:       "",
			classifier: &stubClassifier{},
			wantCode:   apperr.CodeMissingField,
		},
		{
			name:       "whitespace-only text rejected",
			text:       "   \n\t",
			classifier: &stubClassifier{},
			wantCode:   apperr.CodeMissingField,
		},
		{
			name:       "classifier failure surfaces as error",
			text:       "free coins casino",
			classifier: &stubClassifier{err: errors.New("connection refused")},
			wantCode:   apperr.CodeInferenceError,
		},
		{
			name:       "result passed through",
			text:       "free coins casino",
			classifier: &stubClassifier{result: &domain.Classification{Flagged: true, Score: 0.97}},
			wantFlag:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.classifier)
			result, err := svc.Analyze(context.Background(), tt.text)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("expected error")
				}
				if code := apperr.AsAppError(err).Code; code != tt.wantCode {
					t.Errorf("error code = %s, want %s", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if result.Flagged != tt.wantFlag {
				t.Errorf("Flagged = %v, want %v", result.Flagged, tt.wantFlag)
			}
		})
	}
}
