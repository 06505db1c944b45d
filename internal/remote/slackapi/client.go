package slackapi

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/atomicstack/slackdeck/internal/domain"
)

const historyPageSize = 100

// Client adapts the Slack Web API to the remote.Client contract.
type Client struct {
	api *slack.Client
}

// New wraps an authenticated token.
func New(token string) *Client {
	return &Client{api: slack.New(token)}
}

// Channels lists every conversation the account can see, following
// pagination cursors until exhausted.
func (c *Client) Channels(ctx context.Context) ([]domain.Channel, error) {
	params := &slack.GetConversationsParameters{
		Types: []string{"public_channel", "private_channel", "im", "mpim"},
		Limit: 200,
	}
	var out []domain.Channel
	for {
		channels, cursor, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("list conversations: %w", err)
		}
		for _, ch := range channels {
			out = append(out, convertChannel(ch))
		}
		if cursor == "" {
			return out, nil
		}
		params.Cursor = cursor
	}
}

// Messages fetches the most recent page of a channel's history.
func (c *Client) Messages(ctx context.Context, channelID string) ([]domain.Message, error) {
	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     historyPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("channel history %s: %w", channelID, err)
	}
	out := make([]domain.Message, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		out = append(out, convertMessage(channelID, msg))
	}
	return out, nil
}

// ThreadReplies fetches a thread's replies, excluding the root message which
// the API returns as the first element.
func (c *Client) ThreadReplies(ctx context.Context, channelID, threadTS string) ([]domain.Message, error) {
	params := &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     historyPageSize,
	}
	var out []domain.Message
	for {
		msgs, _, cursor, err := c.api.GetConversationRepliesContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("thread replies %s: %w", threadTS, err)
		}
		for _, msg := range msgs {
			if msg.Timestamp == threadTS {
				continue
			}
			out = append(out, convertMessage(channelID, msg))
		}
		if cursor == "" {
			return out, nil
		}
		params.Cursor = cursor
	}
}

// UserByID resolves one user record.
func (c *Client) UserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user info %s: %w", userID, err)
	}
	return domain.User{
		ID:          user.ID,
		DisplayName: user.Profile.DisplayName,
		RealName:    user.RealName,
	}, nil
}

// SendMessage posts text to a channel.
func (c *Client) SendMessage(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	return nil
}

// ReplyToThread posts text as a reply under a thread root.
func (c *Client) ReplyToThread(ctx context.Context, channelID, threadTS, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(threadTS),
	)
	if err != nil {
		return fmt.Errorf("post thread reply: %w", err)
	}
	return nil
}

// AddReaction attaches an emoji reaction to a message.
func (c *Client) AddReaction(ctx context.Context, channelID, ts, emojiName string) error {
	ref := slack.NewRefToMessage(channelID, ts)
	if err := c.api.AddReactionContext(ctx, emojiName, ref); err != nil {
		return fmt.Errorf("add reaction: %w", err)
	}
	return nil
}

func convertChannel(ch slack.Channel) domain.Channel {
	kind := domain.KindPublic
	switch {
	case ch.IsIM:
		kind = domain.KindDirect
	case ch.IsMpIM:
		kind = domain.KindGroup
	case ch.IsPrivate:
		kind = domain.KindPrivate
	}
	return domain.Channel{
		ID:     ch.ID,
		Name:   ch.Name,
		Kind:   kind,
		UserID: ch.User,
		Member: ch.IsMember,
	}
}

func convertMessage(channelID string, msg slack.Message) domain.Message {
	out := domain.Message{
		ChannelID:  channelID,
		TS:         msg.Timestamp,
		UserID:     msg.User,
		Username:   msg.Username,
		Subtype:    msg.SubType,
		Text:       msg.Text,
		ThreadTS:   msg.ThreadTimestamp,
		ReplyCount: msg.ReplyCount,
	}
	for _, re := range msg.Reactions {
		out.Reactions = append(out.Reactions, domain.Reaction{Name: re.Name, Count: re.Count})
	}
	out.Blocks = convertBlocks(msg.Blocks.BlockSet)
	return out
}

func convertBlocks(blocks []slack.Block) []domain.Block {
	var out []domain.Block
	for _, b := range blocks {
		rich, ok := b.(*slack.RichTextBlock)
		if !ok {
			continue
		}
		for _, el := range rich.Elements {
			section, ok := el.(*slack.RichTextSection)
			if !ok {
				continue
			}
			out = append(out, domain.Block{
				Type:     domain.BlockSection,
				Children: convertSectionElements(section.Elements),
			})
		}
	}
	return out
}

func convertSectionElements(elements []slack.RichTextSectionElement) []domain.Block {
	var out []domain.Block
	for _, el := range elements {
		switch e := el.(type) {
		case *slack.RichTextSectionTextElement:
			out = append(out, domain.Block{Type: domain.BlockText, Text: e.Text})
		case *slack.RichTextSectionUserElement:
			out = append(out, domain.Block{Type: domain.BlockUser, UserID: e.UserID})
		case *slack.RichTextSectionChannelElement:
			out = append(out, domain.Block{Type: domain.BlockChannel, ChannelID: e.ChannelID})
		case *slack.RichTextSectionUserGroupElement:
			out = append(out, domain.Block{Type: domain.BlockUserGroup, GroupID: e.UsergroupID})
		case *slack.RichTextSectionLinkElement:
			out = append(out, domain.Block{Type: domain.BlockLink, URL: e.URL, Text: e.Text})
		case *slack.RichTextSectionEmojiElement:
			out = append(out, domain.Block{Type: domain.BlockEmoji, Name: e.Name})
		}
	}
	return out
}
