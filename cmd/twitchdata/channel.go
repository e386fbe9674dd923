package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamsight/twitchdata/internal/platform/logger"
)

// channelOp is a fetch-and-print subcommand taking a single channel argument.
type channelOp struct {
	use   string
	short string
	fetch func(ctx context.Context, channel string) (any, error)
}

func init() {
	ops := []channelOp{
		{"streamer-info CHANNEL", "Streamer information and live status",
			func(ctx context.Context, ch string) (any, error) { return client.GetStreamerInfo(ctx, ch) }},
		{"user-id CHANNEL", "Resolve a channel name to its user ID",
			func(ctx context.Context, ch string) (any, error) { return client.GetUserID(ctx, ch) }},
		{"videos CHANNEL", "Recent channel videos",
			func(ctx context.Context, ch string) (any, error) { return client.GetChannelVideos(ctx, ch) }},
		{"viewers CHANNEL", "Current stream viewers",
			func(ctx context.Context, ch string) (any, error) { return client.GetStreamViewers(ctx, ch) }},
		{"panels CHANNEL", "Channel panels",
			func(ctx context.Context, ch string) (any, error) { return client.GetChannelPanels(ctx, ch) }},
		{"goals CHANNEL", "Channel goals",
			func(ctx context.Context, ch string) (any, error) { return client.GetChannelGoals(ctx, ch) }},
		{"leaderboards CHANNEL", "Channel leaderboards",
			func(ctx context.Context, ch string) (any, error) { return client.GetChannelLeaderboards(ctx, ch) }},
		{"tags CHANNEL", "Stream tags",
			func(ctx context.Context, ch string) (any, error) { return client.GetStreamTags(ctx, ch) }},
		{"chat-restrictions CHANNEL", "Chat restriction settings",
			func(ctx context.Context, ch string) (any, error) { return client.GetChatRestrictions(ctx, ch) }},
		{"pinned-chat CHANNEL", "Currently pinned chat message",
			func(ctx context.Context, ch string) (any, error) { return client.GetPinnedChat(ctx, ch) }},
		{"points CHANNEL", "Channel points context",
			func(ctx context.Context, ch string) (any, error) { return client.GetChannelPointsContext(ctx, ch) }},
	}

	for _, op := range ops {
		op := op
		rootCmd.AddCommand(&cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				payload, err := op.fetch(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(payload)
			},
		})
	}

	viewerCardCmd := &cobra.Command{
		Use:   "viewer-card CHANNEL USERNAME",
		Short: "Viewer card for a user in a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := client.GetViewerCard(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(payload)
		},
	}
	rootCmd.AddCommand(viewerCardCmd)

	overviewCmd := &cobra.Command{
		Use:   "overview CHANNEL",
		Short: "Walk every endpoint for a channel and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd.Context(), args[0])
		},
	}
	rootCmd.AddCommand(overviewCmd)
}

// runOverview mirrors the typical analytics walk-through: live status first,
// then the remaining endpoints, tolerating per-endpoint failures.
func runOverview(ctx context.Context, channel string) error {
	log := logger.New("twitchdata")

	info, err := client.GetStreamerInfo(ctx, channel)
	if err != nil {
		return err
	}

	fmt.Printf("Channel: %s\n", channel)
	if user, ok := asObject(info)["user"].(map[string]any); ok {
		if name, ok := user["displayName"].(string); ok {
			fmt.Printf("Display name: %s\n", name)
		}
		if stream, ok := user["stream"].(map[string]any); ok {
			fmt.Println("Status: LIVE")
			if v, ok := stream["viewersCount"].(float64); ok {
				fmt.Printf("Viewers: %.0f\n", v)
			}
			if title, ok := stream["title"].(string); ok {
				fmt.Printf("Title: %s\n", title)
			}
		} else {
			fmt.Println("Status: OFFLINE")
		}
	}

	sections := []struct {
		name  string
		fetch func(context.Context, string) (any, error)
	}{
		{"user id", client.GetUserID},
		{"videos", client.GetChannelVideos},
		{"panels", client.GetChannelPanels},
		{"goals", client.GetChannelGoals},
		{"leaderboards", client.GetChannelLeaderboards},
		{"tags", client.GetStreamTags},
		{"chat restrictions", client.GetChatRestrictions},
		{"pinned chat", client.GetPinnedChat},
		{"channel points", client.GetChannelPointsContext},
	}
	for _, s := range sections {
		payload, err := s.fetch(ctx, channel)
		if err != nil {
			log.Warn().Err(err).Str("section", s.name).Msg("section unavailable")
			continue
		}
		fmt.Printf("\n--- %s ---\n", s.name)
		if err := printJSON(payload); err != nil {
			return err
		}
	}
	return nil
}

func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
