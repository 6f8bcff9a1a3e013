package triage

import "guard_server/core/domain"

// SpamThreshold is the score above which a flagged comment goes straight to
// the Spam tier. Strictly greater than: a score of exactly 0.90 lands in
// Review. Not configurable at runtime.
const SpamThreshold = 0.90

// Partition assigns each classified comment to exactly one tier.
//
// Rule, in priority order: unclassified or not flagged goes to Safe
// (fail-open), flagged with score > SpamThreshold goes to Spam, any other
// flagged comment goes to Review. Pure function, no I/O. The comparison is
// well-defined for any score, so an out-of-range value from the inference
// service degrades into Spam or Review instead of failing the scan.
func Partition(results []domain.ClassifiedComment) (safe, review, spam []domain.Comment) {
	safe = make([]domain.Comment, 0, len(results))
	review = make([]domain.Comment, 0)
	spam = make([]domain.Comment, 0)

	for _, r := range results {
		switch {
		case r.Result == nil || !r.Result.Flagged:
			safe = append(safe, r.Comment)
		case r.Result.Score > SpamThreshold:
			spam = append(spam, r.Comment)
		default:
			review = append(review, r.Comment)
		}
	}
	return safe, review, spam
}
