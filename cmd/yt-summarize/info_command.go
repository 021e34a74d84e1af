package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Madmanden/yt-summarizer/internal/textutil"
	"github.com/Madmanden/yt-summarizer/internal/youtube"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <video-url-or-id>",
		Short: "Show video metadata and available caption tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			videoID, err := youtube.ExtractVideoID(args[0])
			if err != nil {
				return err
			}
			videos, err := videosClient(cfg)
			if err != nil {
				return err
			}

			info, err := videos.VideoInfo(cmd.Context(), videoID)
			if err != nil {
				return fmt.Errorf("fetch video info: %w", err)
			}
			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderTable([]string{"Field", "Value"}, [][]string{
				{"Video ID", info.VideoID},
				{"Title", info.Title},
				{"Channel", info.Author},
				{"Watch URL", youtube.WatchURL(info.VideoID)},
			}))

			tracks, err := videos.CaptionTracks(cmd.Context(), videoID)
			switch {
			case errors.Is(err, youtube.ErrNoCaptions):
				fmt.Fprintln(stdout, "No caption tracks available")
				return nil
			case err != nil:
				return fmt.Errorf("list caption tracks: %w", err)
			}

			rows := make([][]string, 0, len(tracks))
			for _, track := range tracks {
				rows = append(rows, []string{
					track.Language,
					textutil.Ternary(track.IsAutoGenerated(), "auto", "manual"),
					track.DisplayName(),
					yesNo(track.Translatable),
				})
			}
			fmt.Fprintln(stdout, renderTable([]string{"Language", "Kind", "Name", "Translatable"}, rows))
			return nil
		},
	}
}
