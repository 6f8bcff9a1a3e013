package provider

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"

	"guard_server/core/port/out"
)

func TestIsCommentsDisabled(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "403 with commentsDisabled reason",
			err: &googleapi.Error{
				Code: 403,
				Errors: []googleapi.ErrorItem{
					{Reason: "commentsDisabled", Message: "The video owner has disabled comments."},
				},
			},
			want: true,
		},
		{
			name: "403 with commentsDisabled among other reasons",
			err: &googleapi.Error{
				Code: 403,
				Errors: []googleapi.ErrorItem{
					{Reason: "forbidden"},
					{Reason: "commentsDisabled"},
				},
			},
			want: true,
		},
		{
			name: "wrapped 403 with commentsDisabled reason",
			err: fmt.Errorf("list comments: %w", &googleapi.Error{
				Code:   403,
				Errors: []googleapi.ErrorItem{{Reason: "commentsDisabled"}},
			}),
			want: true,
		},
		{
			name: "403 with another reason",
			err: &googleapi.Error{
				Code:   403,
				Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}},
			},
			want: false,
		},
		{
			name: "non-403 with commentsDisabled reason",
			err: &googleapi.Error{
				Code:   404,
				Errors: []googleapi.ErrorItem{{Reason: "commentsDisabled"}},
			},
			want: false,
		},
		{
			name: "403 without error items",
			err:  &googleapi.Error{Code: 403},
			want: false,
		},
		{
			name: "plain transport error",
			err:  errors.New("connection reset by peer"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCommentsDisabled(tt.err); got != tt.want {
				t.Errorf("isCommentsDisabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	a := NewYouTubeAdapter()

	t.Run("nil passes through", func(t *testing.T) {
		if err := a.wrapError("get video", nil); err != nil {
			t.Errorf("wrapError(nil) = %v, want nil", err)
		}
	})

	t.Run("googleapi error keeps code and message", func(t *testing.T) {
		apiErr := &googleapi.Error{Code: 403, Message: "forbidden"}
		err := a.wrapError("list comments", apiErr)

		var platformErr *out.PlatformError
		if !errors.As(err, &platformErr) {
			t.Fatalf("wrapError() = %T, want *out.PlatformError", err)
		}
		if platformErr.Code != 403 || platformErr.Message != "forbidden" {
			t.Errorf("got code=%d message=%q, want 403 %q", platformErr.Code, platformErr.Message, "forbidden")
		}
		if !errors.Is(err, apiErr) {
			t.Error("wrapped error must unwrap to the original googleapi error")
		}
	})

	t.Run("transport error is wrapped without a code", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := a.wrapError("reject comment", cause)

		var platformErr *out.PlatformError
		if !errors.As(err, &platformErr) {
			t.Fatalf("wrapError() = %T, want *out.PlatformError", err)
		}
		if platformErr.Code != 0 {
			t.Errorf("code = %d, want 0 for a non-API failure", platformErr.Code)
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error must unwrap to the cause")
		}
	})
}

func TestUploadsPage(t *testing.T) {
	resp := &youtube.PlaylistItemListResponse{
		NextPageToken: "next",
		PrevPageToken: "prev",
		Items: []*youtube.PlaylistItem{
			{
				Snippet: &youtube.PlaylistItemSnippet{
					ResourceId:  &youtube.ResourceId{VideoId: "vid-1"},
					Title:       "first upload",
					Description: "desc",
					PublishedAt: "2026-01-02T03:04:05Z",
				},
			},
			{
				// Snippet-less item, video id still resolvable
				ContentDetails: &youtube.PlaylistItemContentDetails{VideoId: "vid-2"},
			},
			{
				// No way to resolve a video id, dropped
				Snippet: &youtube.PlaylistItemSnippet{Title: "orphan"},
			},
		},
	}

	page := uploadsPage(resp)

	if page.NextPageToken != "next" || page.PrevPageToken != "prev" {
		t.Errorf("page tokens = %q/%q, want next/prev", page.NextPageToken, page.PrevPageToken)
	}
	if len(page.Items) != 2 {
		t.Fatalf("got %d items, want 2 (unresolvable item dropped)", len(page.Items))
	}

	first := page.Items[0]
	if first.VideoID != "vid-1" || first.Title != "first upload" {
		t.Errorf("first item = %+v, want vid-1 with its snippet fields", first)
	}
	if first.PublishedAt.IsZero() {
		t.Error("first item must carry the parsed publish time")
	}

	second := page.Items[1]
	if second.VideoID != "vid-2" {
		t.Errorf("second item video id = %q, want vid-2 from content details", second.VideoID)
	}
	if second.Title != "" || second.Thumbnail != "" {
		t.Errorf("snippet-less item must zero-fill descriptive fields, got %+v", second)
	}
}

func TestUploadsPage_Empty(t *testing.T) {
	page := uploadsPage(&youtube.PlaylistItemListResponse{})
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("empty response must yield an empty non-nil item list, got %+v", page.Items)
	}
}
