package twitchdata

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"

	"github.com/streamsight/twitchdata/internal/api"
	"github.com/streamsight/twitchdata/internal/types"
)

const (
	// BaseURL is the fixed endpoint of the twitch-api8 service on RapidAPI.
	BaseURL = "https://twitch-api8.p.rapidapi.com"

	apiHost        = "twitch-api8.p.rapidapi.com"
	headerKey      = "X-RapidAPI-Key"
	headerHost     = "X-RapidAPI-Host"
	defaultTimeout = 30 * time.Second
)

// Client talks to the twitch-api8 RapidAPI service. The API key and derived
// headers are immutable after construction, so a single Client is safe for
// concurrent use.
type Client struct {
	apiKey string
	rest   *resty.Client

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client with the given RapidAPI key.
// Additional options can be provided via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &Error{Kind: KindInvalidConfiguration, Err: errors.New("RapidAPI key is required")}
	}

	rc := resty.New().
		SetBaseURL(BaseURL).
		SetHeader(headerKey, apiKey).
		SetHeader(headerHost, apiHost).
		SetTimeout(defaultTimeout)

	c := &Client{apiKey: apiKey, rest: rc}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

type envConfig struct {
	APIKey string `envconfig:"RAPIDAPI_KEY" required:"true"`
}

// NewFromEnv constructs a Client with the key taken from the RAPIDAPI_KEY
// environment variable. Convenience constructor for tools and examples.
func NewFromEnv(opts ...Option) (*Client, error) {
	var ec envConfig
	if err := envconfig.Process("", &ec); err != nil {
		return nil, &Error{Kind: KindInvalidConfiguration, Err: err}
	}
	return New(ec.APIKey, opts...)
}

// Close releases idle connections held by the underlying transport. Safe to
// call multiple times; the Client must not be used afterwards.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.rest.GetClient().CloseIdleConnections()
	return nil
}

// get runs one exchange and records its outcome. All named operations funnel
// through here.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) (any, error) {
	payload, err := api.Get(ctx, c.rest, endpoint, params)
	requestsTotal.WithLabelValues(endpoint, outcomeLabel(err)).Inc()
	return payload, err
}

func outcomeLabel(err error) string {
	var apiErr *types.Error
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr) && apiErr.Kind == types.KindDecodeFailed:
		return "decode_failed"
	case errors.As(err, &apiErr) && apiErr.Kind == types.KindRequestFailed:
		return "request_failed"
	default:
		return "other"
	}
}

// GetChannelPanels returns the panel data shown below a channel's player.
func (c *Client) GetChannelPanels(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_channel_panels", map[string]string{"channel": channel})
}

// GetViewerCard returns the viewer card for username in the given channel.
func (c *Client) GetViewerCard(ctx context.Context, channel, username string) (any, error) {
	return c.get(ctx, "get_viewer_card", map[string]string{
		"channel":  channel,
		"username": username,
	})
}

// GetStreamerInfo returns streamer information including live status. The
// service nests the result under a "user" key whose "stream" field is null
// when the channel is offline.
func (c *Client) GetStreamerInfo(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_streamer_info", map[string]string{"channel": channel})
}

// GetChannelVideos returns recent videos from a channel.
func (c *Client) GetChannelVideos(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_channel_videos", map[string]string{"channel": channel})
}

// GetStreamViewers returns the current viewer data for a channel's stream.
func (c *Client) GetStreamViewers(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_stream_viewers", map[string]string{"channel": channel})
}

// GetUserID resolves a channel name to its Twitch user ID.
func (c *Client) GetUserID(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_user_id", map[string]string{"channel": channel})
}

// GetChannelPointsContext returns the channel points context for a channel.
func (c *Client) GetChannelPointsContext(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_channel_points_context", map[string]string{"channel": channel})
}

// GetChatRestrictions returns the chat restriction settings of a channel.
func (c *Client) GetChatRestrictions(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_chat_restrictions", map[string]string{"channel": channel})
}

// GetPinnedChat returns the currently pinned chat message of a channel.
func (c *Client) GetPinnedChat(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_pinned_chat", map[string]string{"channel": channel})
}

// GetChannelGoals returns a channel's follower/sub goals.
func (c *Client) GetChannelGoals(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_channel_goals", map[string]string{"channel": channel})
}

// GetChannelLeaderboards returns a channel's gifter/cheer leaderboards.
func (c *Client) GetChannelLeaderboards(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_channel_leaderboards", map[string]string{"channel": channel})
}

// GetStreamTags returns the tags attached to a channel's stream.
func (c *Client) GetStreamTags(ctx context.Context, channel string) (any, error) {
	return c.get(ctx, "get_stream_tags", map[string]string{"channel": channel})
}
