package triage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"guard_server/core/domain"
	"guard_server/core/port/out"
	"guard_server/pkg/apperr"
	"guard_server/pkg/logger"
)

// Options tunes the triage service.
type Options struct {
	CommentFetchLimit int // comments loaded per session (platform cap applies)
	ScanConcurrency   int // classification fan-out bound
}

// Service orchestrates triage sessions: bootstrap, scan, operator
// transitions, and the platform-side effects they require.
type Service struct {
	platform out.CommentPlatform
	batch    *BatchClassifier
	store    *SessionStore

	fetchLimit int
}

// NewService creates the triage service.
func NewService(platform out.CommentPlatform, classifier out.Classifier, opts Options) *Service {
	if opts.CommentFetchLimit < 1 {
		opts.CommentFetchLimit = 20
	}
	return &Service{
		platform:   platform,
		batch:      NewBatchClassifier(classifier, opts.ScanConcurrency),
		store:      NewSessionStore(),
		fetchLimit: opts.CommentFetchLimit,
	}
}

// StartSession loads the video and its newest comments exactly once and
// creates the session. A commentsDisabled response from the platform is a
// valid terminal state for the session, not an error; every other read
// failure is fatal to the bootstrap.
func (s *Service) StartSession(ctx context.Context, token, videoID string) (domain.SessionSnapshot, error) {
	if token == "" {
		return domain.SessionSnapshot{}, apperr.Unauthorized("missing bearer token")
	}
	if videoID == "" {
		return domain.SessionSnapshot{}, apperr.MissingField("video_id")
	}

	video, err := s.platform.GetVideo(ctx, token, videoID)
	if err != nil {
		if errors.Is(err, out.ErrVideoNotFound) {
			return domain.SessionSnapshot{}, apperr.NotFound("video")
		}
		return domain.SessionSnapshot{}, apperr.PlatformError("failed to load video", err)
	}

	var comments []domain.Comment
	disabled := false
	comments, err = s.platform.ListCommentThreads(ctx, token, videoID, s.fetchLimit)
	if err != nil {
		if !errors.Is(err, out.ErrCommentsDisabled) {
			return domain.SessionSnapshot{}, apperr.PlatformError("failed to load comments", err)
		}
		disabled = true
		comments = nil
	}

	session := domain.NewTriageSession(uuid.New().String(), token, *video, comments, disabled)
	s.store.Put(session)

	logger.WithField("session_id", session.ID).
		WithField("video_id", videoID).
		Info("triage session started: %d comments, disabled=%v", len(comments), disabled)

	return session.Snapshot(), nil
}

// GetSession returns the current snapshot of a session.
func (s *Service) GetSession(sessionID string) (domain.SessionSnapshot, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, apperr.NotFound("triage session")
	}
	return session.Snapshot(), nil
}

// EndSession discards a session and everything it held.
func (s *Service) EndSession(sessionID string) error {
	if !s.store.Delete(sessionID) {
		return apperr.NotFound("triage session")
	}
	return nil
}

// Scan classifies the raw comment set and installs the resulting partition,
// replacing any prior tier assignments. A scan on a disabled session is a
// no-op; a scan while another is in flight is rejected.
func (s *Service) Scan(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, apperr.NotFound("triage session")
	}

	if err := session.BeginScan(); err != nil {
		if errors.Is(err, domain.ErrCommentsDisabled) {
			// Nothing to scan, nothing changes.
			return session.Snapshot(), nil
		}
		return domain.SessionSnapshot{}, apperr.Conflict(err.Error())
	}

	classified := s.batch.Scan(ctx, session.RawComments())
	safe, review, spam := Partition(classified)
	session.CompleteScan(safe, review, spam)
	session.SetOutcome(true, fmt.Sprintf("scan complete: %d spam, %d to review, %d safe",
		len(spam), len(review), len(safe)))

	logger.WithField("session_id", sessionID).
		Info("scan complete: safe=%d review=%d spam=%d", len(safe), len(review), len(spam))

	return session.Snapshot(), nil
}

// Approve moves a Review comment back to Safe. Local only, no platform call.
func (s *Service) Approve(sessionID, threadID string) (domain.SessionSnapshot, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, apperr.NotFound("triage session")
	}

	if err := session.Approve(threadID); err != nil {
		return domain.SessionSnapshot{}, apperr.NotFound("comment in review tier")
	}
	session.SetOutcome(true, "comment approved")
	return session.Snapshot(), nil
}

// Reject issues one moderation write for a Review comment and, on success,
// moves it to the Spam tier where it stays visible as an audit trail. On
// failure the comment keeps its tier so the operator can retry, and the
// failure becomes the session's last outcome rather than an error.
func (s *Service) Reject(ctx context.Context, sessionID, threadID string) (domain.SessionSnapshot, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return domain.SessionSnapshot{}, apperr.NotFound("triage session")
	}

	comment, err := session.LookupReview(threadID)
	if err != nil {
		return domain.SessionSnapshot{}, apperr.NotFound("comment in review tier")
	}

	if err := s.platform.RejectComment(ctx, session.Token, comment.CommentID); err != nil {
		logger.WithError(err).
			WithField("session_id", sessionID).
			WithField("thread_id", threadID).
			Warn("moderation call failed")
		session.SetOutcome(false, "failed to reject comment: "+err.Error())
		return session.Snapshot(), nil
	}

	// LookupReview does not move the comment, so this only fails if a
	// concurrent actor already took it; treat that as not found.
	if err := session.ConfirmReject(threadID); err != nil {
		return domain.SessionSnapshot{}, apperr.NotFound("comment in review tier")
	}
	session.SetOutcome(true, "comment rejected")
	return session.Snapshot(), nil
}

// RejectAll applies the reject action to every Spam comment, strictly
// sequentially and in the tier's current order. Each comment is removed the
// moment its own write succeeds; one failure never aborts the rest. The
// summary is reported only after every item has been attempted.
func (s *Service) RejectAll(ctx context.Context, sessionID string) (domain.ModerationSummary, domain.SessionSnapshot, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return domain.ModerationSummary{}, domain.SessionSnapshot{}, apperr.NotFound("triage session")
	}

	var summary domain.ModerationSummary
	for _, comment := range session.SpamComments() {
		if err := s.platform.RejectComment(ctx, session.Token, comment.CommentID); err != nil {
			logger.WithError(err).
				WithField("session_id", sessionID).
				WithField("thread_id", comment.ThreadID).
				Warn("bulk moderation call failed, continuing")
			summary.Failed++
			continue
		}
		session.RemoveFromSpam(comment.ThreadID)
		summary.Succeeded++
	}

	session.SetOutcome(summary.Failed == 0,
		fmt.Sprintf("bulk destroy: %d removed, %d failed", summary.Succeeded, summary.Failed))

	return summary, session.Snapshot(), nil
}

// ListUploads pages through the operator channel's uploads so a video can be
// picked for triage.
func (s *Service) ListUploads(ctx context.Context, token, pageToken string, limit int) (*domain.VideoPage, error) {
	if token == "" {
		return nil, apperr.Unauthorized("missing bearer token")
	}
	page, err := s.platform.ListChannelUploads(ctx, token, pageToken, limit)
	if err != nil {
		return nil, apperr.PlatformError("failed to list channel uploads", err)
	}
	return page, nil
}
