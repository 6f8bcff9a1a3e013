package in

import (
	"context"

	"guard_server/core/domain"
)

// TriageService defines the interface for triage session operations
type TriageService interface {
	// === Session Lifecycle ===
	StartSession(ctx context.Context, token, videoID string) (domain.SessionSnapshot, error)
	GetSession(sessionID string) (domain.SessionSnapshot, error)
	EndSession(sessionID string) error

	// === Classification ===
	Scan(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	// === Operator Transitions ===
	Approve(sessionID, threadID string) (domain.SessionSnapshot, error)
	Reject(ctx context.Context, sessionID, threadID string) (domain.SessionSnapshot, error)
	RejectAll(ctx context.Context, sessionID string) (domain.ModerationSummary, domain.SessionSnapshot, error)
}

// DetectorService defines the interface for ad-hoc text analysis
type DetectorService interface {
	Analyze(ctx context.Context, text string) (*domain.Classification, error)
}

// ChannelService lists the operator's channel uploads for video selection
type ChannelService interface {
	ListUploads(ctx context.Context, token, pageToken string, limit int) (*domain.VideoPage, error)
}
