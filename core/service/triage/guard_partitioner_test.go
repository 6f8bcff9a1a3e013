package triage

import (
	"testing"

	"guard_server/core/domain"
)

func classified(threadID string, result *domain.Classification) domain.ClassifiedComment {
	return domain.ClassifiedComment{
		Comment: domain.Comment{ThreadID: threadID, CommentID: "c-" + threadID},
		Result:  result,
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name       string
		result     *domain.Classification
		wantSafe   bool
		wantReview bool
		wantSpam   bool
	}{
		{
			name:     "nil result goes to safe",
			result:   nil,
			wantSafe: true,
		},
		{
			name:     "not flagged goes to safe",
			result:   &domain.Classification{Flagged: false, Score: 0.99},
			wantSafe: true,
		},
		{
			name:     "flagged above threshold goes to spam",
			result:   &domain.Classification{Flagged: true, Score: 0.91},
			wantSpam: true,
		},
		{
			name:       "flagged exactly at threshold goes to review",
			result:     &domain.Classification{Flagged: true, Score: 0.90},
			wantReview: true,
		},
		{
			name:       "flagged below threshold goes to review",
			result:     &domain.Classification{Flagged: true, Score: 0.50},
			wantReview: true,
		},
		{
			name:       "flagged with zero score goes to review",
			result:     &domain.Classification{Flagged: true, Score: 0},
			wantReview: true,
		},
		{
			name:     "flagged with out-of-range score goes to spam",
			result:   &domain.Classification{Flagged: true, Score: 1.7},
			wantSpam: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, review, spam := Partition([]domain.ClassifiedComment{classified("t1", tt.result)})

			if got := len(safe) == 1; got != tt.wantSafe {
				t.Errorf("safe membership = %v, want %v", got, tt.wantSafe)
			}
			if got := len(review) == 1; got != tt.wantReview {
				t.Errorf("review membership = %v, want %v", got, tt.wantReview)
			}
			if got := len(spam) == 1; got != tt.wantSpam {
				t.Errorf("spam membership = %v, want %v", got, tt.wantSpam)
			}
			if len(safe)+len(review)+len(spam) != 1 {
				t.Errorf("comment must land in exactly one tier, got safe=%d review=%d spam=%d",
					len(safe), len(review), len(spam))
			}
		})
	}
}

func TestPartition_CoversEveryInput(t *testing.T) {
	input := []domain.ClassifiedComment{
		classified("a", nil),
		classified("b", &domain.Classification{Flagged: true, Score: 0.95}),
		classified("c", &domain.Classification{Flagged: true, Score: 0.40}),
		classified("d", &domain.Classification{Flagged: false, Score: 0.95}),
	}

	safe, review, spam := Partition(input)

	if len(safe)+len(review)+len(spam) != len(input) {
		t.Fatalf("tiers hold %d comments, want %d", len(safe)+len(review)+len(spam), len(input))
	}

	seen := make(map[string]bool)
	for _, tier := range [][]domain.Comment{safe, review, spam} {
		for _, c := range tier {
			if seen[c.ThreadID] {
				t.Errorf("comment %s appears in more than one tier", c.ThreadID)
			}
			seen[c.ThreadID] = true
		}
	}
}

func TestPartition_Empty(t *testing.T) {
	safe, review, spam := Partition(nil)
	if safe == nil || review == nil || spam == nil {
		t.Error("tiers must be non-nil even for empty input")
	}
	if len(safe)+len(review)+len(spam) != 0 {
		t.Error("empty input must produce empty tiers")
	}
}
