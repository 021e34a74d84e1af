package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Madmanden/yt-summarizer/internal/config"
	"github.com/Madmanden/yt-summarizer/internal/summarize"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &verboseFlag)

	var outputFlag string
	var modelFlag string
	var apiKeyFlag string
	var fixNamesFlag bool
	var printFlag bool

	rootCmd := &cobra.Command{
		Use:   "yt-summarize <video-url-or-id>",
		Short: "Summarize YouTube videos with an LLM",
		Long: "yt-summarize downloads a video's caption track, asks an OpenRouter model\n" +
			"for an editorial Markdown summary, and saves it under the output directory.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errors.New("a video URL or ID is required")
			}
			return runSummarize(cmd, ctx, args[0], summarizeFlags{
				output:   outputFlag,
				model:    modelFlag,
				apiKey:   apiKeyFlag,
				fixNames: fixNamesFlag,
				fixSet:   cmd.Flags().Changed("fix-product-names"),
				echo:     printFlag,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable structured logging on stderr")

	flags := rootCmd.Flags()
	flags.StringVarP(&outputFlag, "output", "o", "", "Directory for the summary file")
	flags.StringVarP(&modelFlag, "model", "m", "", "OpenRouter model identifier")
	flags.StringVarP(&apiKeyFlag, "api-key", "k", "", "OpenRouter API key")
	flags.BoolVar(&fixNamesFlag, "fix-product-names", false, "Run a second pass correcting product names")
	flags.BoolVar(&printFlag, "print", false, "Also print the summary to stdout")

	rootCmd.AddCommand(newTranscriptCommand(ctx))
	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

type summarizeFlags struct {
	output   string
	model    string
	apiKey   string
	fixNames bool
	fixSet   bool
	echo     bool
}

func runSummarize(cmd *cobra.Command, ctx *commandContext, reference string, flags summarizeFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	outputDir := cfg.Output.Directory
	if trimmed := strings.TrimSpace(flags.output); trimmed != "" {
		expanded, err := config.ExpandPath(trimmed)
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
		outputDir = expanded
	}
	fixNames := cfg.LLM.FixProductNames
	if flags.fixSet {
		fixNames = flags.fixNames
	}

	videos, err := videosClient(cfg)
	if err != nil {
		return err
	}
	pipeline, err := summarize.New(summarize.Config{
		Videos: videos,
		LLM:    llmClient(cfg, flags.apiKey, flags.model),
		Logger: ctx.logger(),
		Steps:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), reference, summarize.Options{
		OutputDir:       outputDir,
		FixProductNames: fixNames,
	})
	if err != nil {
		return err
	}
	if flags.echo {
		fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
	}
	return nil
}
