// Package triage implements the comment triage pipeline: batch
// classification fan-out, tier partitioning, and the operator-driven
// state transitions of a triage session.
package triage

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"guard_server/core/domain"
	"guard_server/core/port/out"
	"guard_server/pkg/logger"
)

// BatchClassifier fans a comment set out to the inference service.
type BatchClassifier struct {
	classifier  out.Classifier
	concurrency int64
}

// NewBatchClassifier creates a batch classifier with the given fan-out bound.
func NewBatchClassifier(classifier out.Classifier, concurrency int) *BatchClassifier {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchClassifier{
		classifier:  classifier,
		concurrency: int64(concurrency),
	}
}

// Scan classifies every comment concurrently and returns results in input
// order regardless of completion order. A failed call leaves that item's
// Result nil and never cancels or fails the rest of the batch; the batch as
// a whole cannot fail. Returns only after every call has resolved.
func (b *BatchClassifier) Scan(ctx context.Context, comments []domain.Comment) []domain.ClassifiedComment {
	results := make([]domain.ClassifiedComment, len(comments))
	if len(comments) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(b.concurrency)
	var wg sync.WaitGroup

	for i, c := range comments {
		results[i].Comment = c

		wg.Add(1)
		go func(i int, c domain.Comment) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				// Context gone; the comment stays unclassified.
				return
			}
			defer sem.Release(1)

			res, err := b.classifier.Classify(ctx, c.Text)
			if err != nil {
				logger.WithError(err).
					WithField("thread_id", c.ThreadID).
					Debug("classification failed, comment stays unclassified")
				return
			}
			results[i].Result = res
		}(i, c)
	}

	wg.Wait()
	return results
}
