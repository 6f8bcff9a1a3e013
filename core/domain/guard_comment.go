package domain

import "time"

// Comment is one top-level comment thread on a video.
//
// A comment carries two identities. ThreadID is the commentThreads item id:
// unique within a session, used for tier membership and every operator-facing
// operation. CommentID is the nested top-level comment id and is the only
// identifier the moderation write API accepts. The two must never be swapped
// when issuing a write call.
type Comment struct {
	ThreadID  string `json:"thread_id"`
	CommentID string `json:"comment_id"`

	Author      string    `json:"author"`
	AuthorImage string    `json:"author_image"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
	LikeCount   int64     `json:"like_count"`
}

// Classification is the normalized result of one inference call for one
// comment's text. Score is trusted as already in [0,1]; it is not re-validated
// here, and tier assignment stays well-defined for any real value.
type Classification struct {
	Flagged    bool    `json:"flagged"`
	Confidence string  `json:"confidence"`
	Score      float64 `json:"score"`
}

// ClassifiedComment pairs a comment with its classification.
// Result is nil when the inference call for this comment failed; such a
// comment is treated as unclassified and fail-opens into the Safe tier.
type ClassifiedComment struct {
	Comment Comment         `json:"comment"`
	Result  *Classification `json:"result,omitempty"`
}

// Tier is the coarse bucket a comment currently occupies.
type Tier string

const (
	TierSafe   Tier = "safe"
	TierReview Tier = "review"
	TierSpam   Tier = "spam"
)
