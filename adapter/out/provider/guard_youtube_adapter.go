// Package provider implements the comment platform port against the
// YouTube Data API v3.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"guard_server/core/domain"
	"guard_server/core/port/out"
	"guard_server/pkg/httputil"
	"guard_server/pkg/resilience"
)

const moderationStatusRejected = "rejected"

// YouTubeAdapter implements out.CommentPlatform for the YouTube Data API.
// The operator's bearer token arrives per call; the adapter holds no
// credentials of its own.
type YouTubeAdapter struct {
	cb *gobreaker.CircuitBreaker
}

// NewYouTubeAdapter creates a new YouTube adapter.
func NewYouTubeAdapter() *YouTubeAdapter {
	return &YouTubeAdapter{
		cb: resilience.NewBreaker("youtube-api"),
	}
}

// getService builds a YouTube service around the bearer token.
func (a *YouTubeAdapter) getService(ctx context.Context, token string) (*youtube.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	base := context.WithValue(ctx, oauth2.HTTPClient, httputil.YouTubeClient())
	client := oauth2.NewClient(base, src)
	return youtube.NewService(ctx, option.WithHTTPClient(client))
}

// GetVideo fetches snippet and statistics for one video.
func (a *YouTubeAdapter) GetVideo(ctx context.Context, token, videoID string) (*domain.Video, error) {
	svc, err := a.getService(ctx, token)
	if err != nil {
		return nil, a.wrapError("get video", err)
	}

	resp, err := svc.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).Do()
	if err != nil {
		return nil, a.wrapError("get video", err)
	}
	if len(resp.Items) == 0 {
		return nil, out.ErrVideoNotFound
	}

	item := resp.Items[0]
	video := &domain.Video{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
		Thumbnail:    pickThumbnail(item.Snippet.Thumbnails),
	}
	if item.Statistics != nil {
		video.ViewCount = item.Statistics.ViewCount
		video.LikeCount = item.Statistics.LikeCount
		video.CommentCount = item.Statistics.CommentCount
	}
	return video, nil
}

// ListCommentThreads fetches the newest top-level comment threads. A 403
// with reason "commentsDisabled" maps to the sentinel; the caller treats it
// as a valid session state, not a failure.
func (a *YouTubeAdapter) ListCommentThreads(ctx context.Context, token, videoID string, max int) ([]domain.Comment, error) {
	svc, err := a.getService(ctx, token)
	if err != nil {
		return nil, a.wrapError("list comments", err)
	}

	resp, err := svc.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(int64(max)).
		Order("time").
		Context(ctx).Do()
	if err != nil {
		if isCommentsDisabled(err) {
			return nil, out.ErrCommentsDisabled
		}
		return nil, a.wrapError("list comments", err)
	}

	comments := make([]domain.Comment, 0, len(resp.Items))
	for _, thread := range resp.Items {
		if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
			continue
		}
		top := thread.Snippet.TopLevelComment
		snippet := top.Snippet
		comments = append(comments, domain.Comment{
			ThreadID:    thread.Id,
			CommentID:   top.Id,
			Author:      snippet.AuthorDisplayName,
			AuthorImage: snippet.AuthorProfileImageUrl,
			Text:        snippet.TextDisplay,
			PublishedAt: parseTimestamp(snippet.PublishedAt),
			LikeCount:   snippet.LikeCount,
		})
	}
	return comments, nil
}

// ListChannelUploads resolves the operator channel's uploads playlist and
// returns one page of it.
func (a *YouTubeAdapter) ListChannelUploads(ctx context.Context, token, pageToken string, max int) (*domain.VideoPage, error) {
	svc, err := a.getService(ctx, token)
	if err != nil {
		return nil, a.wrapError("list uploads", err)
	}

	channels, err := svc.Channels.List([]string{"contentDetails"}).
		Mine(true).
		Context(ctx).Do()
	if err != nil {
		return nil, a.wrapError("list uploads", err)
	}
	if len(channels.Items) == 0 {
		return nil, &out.PlatformError{Op: "list uploads", Message: "channel not found"}
	}
	channel := channels.Items[0]
	if channel.ContentDetails == nil || channel.ContentDetails.RelatedPlaylists == nil {
		return nil, &out.PlatformError{Op: "list uploads", Message: "channel has no uploads playlist"}
	}
	playlistID := channel.ContentDetails.RelatedPlaylists.Uploads

	req := svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(int64(max)).
		Context(ctx)
	if pageToken != "" {
		req = req.PageToken(pageToken)
	}

	resp, err := req.Do()
	if err != nil {
		return nil, a.wrapError("list uploads", err)
	}

	return uploadsPage(resp), nil
}

// uploadsPage maps one playlist page onto the domain read model. A nil
// snippet zero-fills the descriptive fields; an item whose video id cannot
// be resolved at all is dropped, a session cannot be started without one.
func uploadsPage(resp *youtube.PlaylistItemListResponse) *domain.VideoPage {
	page := &domain.VideoPage{
		Items:         make([]domain.VideoListItem, 0, len(resp.Items)),
		NextPageToken: resp.NextPageToken,
		PrevPageToken: resp.PrevPageToken,
	}
	for _, item := range resp.Items {
		var entry domain.VideoListItem
		if item.Snippet != nil {
			if item.Snippet.ResourceId != nil {
				entry.VideoID = item.Snippet.ResourceId.VideoId
			}
			entry.Title = item.Snippet.Title
			entry.Description = item.Snippet.Description
			entry.Thumbnail = pickThumbnail(item.Snippet.Thumbnails)
			entry.PublishedAt = parseTimestamp(item.Snippet.PublishedAt)
		}
		if entry.VideoID == "" && item.ContentDetails != nil {
			entry.VideoID = item.ContentDetails.VideoId
		}
		if entry.VideoID == "" {
			continue
		}
		page.Items = append(page.Items, entry)
	}
	return page
}

// RejectComment sets the moderation status of one comment to rejected.
// It accepts only the platform comment id, never the thread id. Irreversible
// on the platform side, so the caller must already hold a successful lookup.
func (a *YouTubeAdapter) RejectComment(ctx context.Context, token, commentID string) error {
	svc, err := a.getService(ctx, token)
	if err != nil {
		return a.wrapError("reject comment", err)
	}

	_, err = a.cb.Execute(func() (interface{}, error) {
		err := svc.Comments.SetModerationStatus([]string{commentID}, moderationStatusRejected).
			Context(ctx).Do()
		return nil, err
	})
	if err != nil {
		return a.wrapError("reject comment", err)
	}
	return nil
}

// isCommentsDisabled detects the platform's commentsDisabled error shape.
func isCommentsDisabled(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != 403 {
		return false
	}
	for _, item := range apiErr.Errors {
		if item.Reason == "commentsDisabled" {
			return true
		}
	}
	return false
}

func (a *YouTubeAdapter) wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &out.PlatformError{Op: op, Code: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	return &out.PlatformError{Op: op, Err: err}
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func pickThumbnail(thumbs *youtube.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	if thumbs.High != nil {
		return thumbs.High.Url
	}
	if thumbs.Medium != nil {
		return thumbs.Medium.Url
	}
	if thumbs.Default != nil {
		return thumbs.Default.Url
	}
	return ""
}
