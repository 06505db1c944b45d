package remote

import (
	"context"

	"github.com/atomicstack/slackdeck/internal/domain"
)

// Client is the boundary to the remote messaging service. Calls block until
// the service responds; the backend fetcher runs them on goroutines and
// feeds results back as events, so the core never waits on one.
type Client interface {
	Channels(ctx context.Context) ([]domain.Channel, error)
	Messages(ctx context.Context, channelID string) ([]domain.Message, error)
	ThreadReplies(ctx context.Context, channelID, threadTS string) ([]domain.Message, error)
	UserByID(ctx context.Context, userID string) (domain.User, error)
	SendMessage(ctx context.Context, channelID, text string) error
	ReplyToThread(ctx context.Context, channelID, threadTS, text string) error
	AddReaction(ctx context.Context, channelID, ts, emojiName string) error
}
