package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/pixwall/internal/config"
	"github.com/five82/pixwall/internal/feed"
	"github.com/five82/pixwall/internal/photo"
)

var (
	colorHeader = color.New(color.Bold)
	colorVideo  = color.New(color.FgMagenta)
	colorCounts = color.New(color.FgGreen)
	colorMuted  = color.New(color.FgWhite, color.Faint)
	colorFailed = color.New(color.FgRed)
)

func feedCmd(configPath *string) *cobra.Command {
	var (
		filter string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch the feed and print it in filter order",
		Example: `  pixwall feed
  pixwall feed --filter=new
  pixwall feed --filter=discussed --limit=5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			client, err := feed.NewClient(cfg.FeedURL, cfg.FeedPath, cfg.RequestTimeout)
			if err != nil {
				return fmt.Errorf("init feed client: %w", err)
			}
			records, err := client.FetchPhotos(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch feed: %w", err)
			}
			mode := photo.ParseFilterMode(filter)
			printFeed(cmd.OutOrStdout(), photo.Filter(records, mode, time.Now()), mode, limit)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "popular", "popular, new or discussed")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many photos (0 prints all)")

	return cmd
}

func printFeed(w io.Writer, records []photo.Record, mode photo.FilterMode, limit int) {
	colorHeader.Fprintf(w, "=== %s (%d) ===\n", mode.Label(), len(records))
	if len(records) == 0 {
		colorMuted.Fprintln(w, "No photos found.")
		return
	}
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	for _, r := range records {
		kind := "  "
		if r.IsVideo {
			kind = colorVideo.Sprint("▶ ")
		}
		date := "----------"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02")
		}
		media := r.ThumbnailURL()
		if !r.Available() {
			media = colorFailed.Sprint("(unavailable)")
		}
		fmt.Fprintf(w, "%s#%-4d %s %s %s\n",
			kind,
			r.ID,
			colorCounts.Sprintf("♥%-5d ✎%-4d", r.Likes, r.Comments),
			colorMuted.Sprint(date),
			media,
		)
	}
}
