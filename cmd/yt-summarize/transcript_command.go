package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Madmanden/yt-summarizer/internal/config"
	"github.com/Madmanden/yt-summarizer/internal/fileutil"
	"github.com/Madmanden/yt-summarizer/internal/youtube"
)

func newTranscriptCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "transcript <video-url-or-id>",
		Short: "Fetch a video's transcript without summarizing",
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
			transcript, err := videos.Transcript(cmd.Context(), videoID)
			if err != nil {
				return err
			}

			text := transcript.Text()
			target := strings.TrimSpace(outputPath)
			if target == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := fileutil.WriteFileAtomic(expanded, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✅ Transcript saved to: %s (%d words, language %s)\n",
				expanded, transcript.Words(), transcript.Language)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the transcript to a file instead of stdout")
	return cmd
}
