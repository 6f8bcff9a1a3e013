package domain

import (
	"errors"
	"sync"
	"time"
)

// Errors returned by session state transitions.
var (
	ErrCommentsDisabled = errors.New("comments are disabled for this video")
	ErrScanInProgress   = errors.New("a scan is already in progress")
	ErrNotInReview      = errors.New("comment is not in the review tier")
)

// Outcome is the result of the last operation on a session, kept so the
// presentation layer can render a transient notification.
type Outcome struct {
	OK      bool      `json:"ok"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// ModerationSummary aggregates a bulk moderation run.
type ModerationSummary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// TriageSession is the transient unit of work covering one video's comment
// set from load through manual moderation. It owns the raw comment list and
// the three tier partitions, and is the only path through which tier
// membership changes. All mutations are serialized through its mutex.
type TriageSession struct {
	ID        string
	Token     string // bearer credential, read-only for the session lifetime
	CreatedAt time.Time

	mu sync.Mutex

	video    Video
	raw      []Comment
	safe     []Comment
	review   []Comment
	spam     []Comment
	scanned  bool
	scanning bool
	disabled bool

	lastOutcome *Outcome
}

// NewTriageSession creates a session from the bootstrap load. Before any scan
// every comment sits in the Safe tier so the caller has something to show.
// A disabled session carries no comments.
func NewTriageSession(id, token string, video Video, comments []Comment, commentsDisabled bool) *TriageSession {
	s := &TriageSession{
		ID:        id,
		Token:     token,
		CreatedAt: time.Now().UTC(),
		video:     video,
		disabled:  commentsDisabled,
	}
	if !commentsDisabled {
		s.raw = append(s.raw, comments...)
		s.safe = append(s.safe, comments...)
	}
	return s
}

// CommentsDisabled reports whether the video owner turned comments off.
func (s *TriageSession) CommentsDisabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}

// RawComments returns a copy of the raw comment list.
func (s *TriageSession) RawComments() []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Comment, len(s.raw))
	copy(out, s.raw)
	return out
}

// BeginScan marks a scan as in flight. It fails when comments are disabled
// or when a scan is already running.
func (s *TriageSession) BeginScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled {
		return ErrCommentsDisabled
	}
	if s.scanning {
		return ErrScanInProgress
	}
	s.scanning = true
	return nil
}

// CompleteScan installs a freshly computed partition, discarding every prior
// tier assignment including manual approvals made before the re-scan.
func (s *TriageSession) CompleteScan(safe, review, spam []Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.safe = safe
	s.review = review
	s.spam = spam
	s.scanned = true
	s.scanning = false
}

// AbortScan clears the in-flight marker after a failed scan.
func (s *TriageSession) AbortScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = false
}

// Approve moves a comment from Review to the front of Safe. Purely local,
// no external call involved.
func (s *TriageSession) Approve(threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.takeFromReview(threadID)
	if !ok {
		return ErrNotInReview
	}
	s.safe = append([]Comment{c}, s.safe...)
	return nil
}

// LookupReview returns the comment with the given thread id if it currently
// sits in Review, without changing tier membership. The caller needs the
// platform CommentID before it may issue a moderation write.
func (s *TriageSession) LookupReview(threadID string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.review {
		if c.ThreadID == threadID {
			return c, nil
		}
	}
	return Comment{}, ErrNotInReview
}

// ConfirmReject moves a comment from Review to the front of Spam after a
// successful moderation write. The comment stays visible as an audit trail.
func (s *TriageSession) ConfirmReject(threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.takeFromReview(threadID)
	if !ok {
		return ErrNotInReview
	}
	s.spam = append([]Comment{c}, s.spam...)
	return nil
}

// SpamComments returns a copy of the Spam tier in its current order.
func (s *TriageSession) SpamComments() []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Comment, len(s.spam))
	copy(out, s.spam)
	return out
}

// RemoveFromSpam drops one comment from the Spam tier after its moderation
// write succeeded. The comment is gone for good; there is no way back.
func (s *TriageSession) RemoveFromSpam(threadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.spam {
		if c.ThreadID == threadID {
			s.spam = append(s.spam[:i], s.spam[i+1:]...)
			return
		}
	}
}

// SetOutcome records the result of the last operation.
func (s *TriageSession) SetOutcome(ok bool, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOutcome = &Outcome{OK: ok, Message: message, At: time.Now().UTC()}
}

// takeFromReview removes and returns the comment with the given thread id.
// Caller must hold s.mu.
func (s *TriageSession) takeFromReview(threadID string) (Comment, bool) {
	for i, c := range s.review {
		if c.ThreadID == threadID {
			s.review = append(s.review[:i], s.review[i+1:]...)
			return c, true
		}
	}
	return Comment{}, false
}

// SessionSnapshot is the read model the presentation layer renders from.
type SessionSnapshot struct {
	ID    string `json:"id"`
	Video Video  `json:"video"`

	Safe   []Comment `json:"safe"`
	Review []Comment `json:"review"`
	Spam   []Comment `json:"spam"`

	SafeCount   int `json:"safe_count"`
	ReviewCount int `json:"review_count"`
	SpamCount   int `json:"spam_count"`

	Scanned          bool `json:"scanned"`
	Scanning         bool `json:"scanning"`
	CommentsDisabled bool `json:"comments_disabled"`

	LastOutcome *Outcome `json:"last_outcome,omitempty"`
}

// Snapshot builds a consistent copy of the session state.
func (s *TriageSession) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		ID:               s.ID,
		Video:            s.video,
		Safe:             make([]Comment, len(s.safe)),
		Review:           make([]Comment, len(s.review)),
		Spam:             make([]Comment, len(s.spam)),
		SafeCount:        len(s.safe),
		ReviewCount:      len(s.review),
		SpamCount:        len(s.spam),
		Scanned:          s.scanned,
		Scanning:         s.scanning,
		CommentsDisabled: s.disabled,
	}
	copy(snap.Safe, s.safe)
	copy(snap.Review, s.review)
	copy(snap.Spam, s.spam)
	if s.lastOutcome != nil {
		o := *s.lastOutcome
		snap.LastOutcome = &o
	}
	return snap
}
