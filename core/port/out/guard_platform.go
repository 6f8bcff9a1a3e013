package out

import (
	"context"
	"errors"
	"fmt"

	"guard_server/core/domain"
)

// ErrCommentsDisabled is returned by ListCommentThreads when the video owner
// turned comments off. It is a valid terminal condition for a triage session,
// not a failure.
var ErrCommentsDisabled = errors.New("comments disabled on this video")

// ErrVideoNotFound is returned by GetVideo when the video does not exist or
// has been deleted.
var ErrVideoNotFound = errors.New("video not found")

// CommentPlatform is the outbound port for the comment hosting platform.
//
// Every call carries the operator's bearer token. RejectComment takes the
// platform comment id (Comment.CommentID), never the thread id; the
// signature is the only place a moderation write can originate from.
type CommentPlatform interface {
	GetVideo(ctx context.Context, token, videoID string) (*domain.Video, error)
	ListCommentThreads(ctx context.Context, token, videoID string, max int) ([]domain.Comment, error)
	ListChannelUploads(ctx context.Context, token, pageToken string, max int) (*domain.VideoPage, error)
	RejectComment(ctx context.Context, token, commentID string) error
}

// PlatformError wraps an upstream platform failure with the message the
// platform reported, suitable for surfacing to the operator.
type PlatformError struct {
	Op      string
	Code    int
	Message string
	Err     error
}

func (e *PlatformError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
