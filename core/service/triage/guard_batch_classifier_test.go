package triage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"guard_server/core/domain"
)

// fakeClassifier scripts per-text results and records call counts.
type fakeClassifier struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]bool
	scoreBy func(text string) float64
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (*domain.Classification, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.failFor[text] {
		return nil, errors.New("inference unavailable")
	}

	score := 0.0
	if f.scoreBy != nil {
		score = f.scoreBy(text)
	}
	return &domain.Classification{
		Flagged: score > 0,
		Score:   score,
	}, nil
}

func makeComments(n int) []domain.Comment {
	comments := make([]domain.Comment, n)
	for i := range comments {
		comments[i] = domain.Comment{
			ThreadID:  fmt.Sprintf("thread-%03d", i),
			CommentID: fmt.Sprintf("comment-%03d", i),
			Text:      fmt.Sprintf("text %03d", i),
		}
	}
	return comments
}

func TestBatchScan_PreservesInputOrder(t *testing.T) {
	fc := &fakeClassifier{}
	batch := NewBatchClassifier(fc, 8)

	comments := makeComments(50)
	results := batch.Scan(context.Background(), comments)

	if len(results) != len(comments) {
		t.Fatalf("got %d results, want %d", len(results), len(comments))
	}
	for i, r := range results {
		if r.Comment.ThreadID != comments[i].ThreadID {
			t.Fatalf("result %d holds %s, want %s", i, r.Comment.ThreadID, comments[i].ThreadID)
		}
		if r.Result == nil {
			t.Errorf("result %d is unclassified, want a classification", i)
		}
	}
	if fc.calls != len(comments) {
		t.Errorf("classifier called %d times, want %d", fc.calls, len(comments))
	}
}

func TestBatchScan_FailureLeavesItemUnclassified(t *testing.T) {
	fc := &fakeClassifier{failFor: map[string]bool{"text 001": true}}
	batch := NewBatchClassifier(fc, 4)

	comments := makeComments(3)
	results := batch.Scan(context.Background(), comments)

	if results[0].Result == nil || results[2].Result == nil {
		t.Error("successful items must keep their classification")
	}
	if results[1].Result != nil {
		t.Error("failed item must stay unclassified")
	}
}

func TestBatchScan_Empty(t *testing.T) {
	fc := &fakeClassifier{}
	batch := NewBatchClassifier(fc, 4)

	results := batch.Scan(context.Background(), nil)
	if len(results) != 0 {
		t.Fatalf("got %d results for empty batch, want 0", len(results))
	}
	if fc.calls != 0 {
		t.Errorf("classifier called %d times for empty batch, want 0", fc.calls)
	}
}

func TestBatchScan_FailedItemsLandInSafe(t *testing.T) {
	// A classifier outage must degrade into the safe tier, never block a scan.
	fc := &fakeClassifier{
		failFor: map[string]bool{"text 000": true, "text 001": true, "text 002": true},
		scoreBy: func(text string) float64 {
			if strings.HasSuffix(text, "3") {
				return 0.99
			}
			return 0
		},
	}
	batch := NewBatchClassifier(fc, 2)

	comments := makeComments(4)
	safe, review, spam := Partition(batch.Scan(context.Background(), comments))

	if len(safe) != 3 {
		t.Errorf("safe tier holds %d comments, want 3", len(safe))
	}
	if len(review) != 0 {
		t.Errorf("review tier holds %d comments, want 0", len(review))
	}
	if len(spam) != 1 {
		t.Errorf("spam tier holds %d comments, want 1", len(spam))
	}
}
