package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/pixwall/internal/app"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pixwall: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "pixwall",
		Short: "Browse a photo feed as an endless terminal grid",
		Long: `pixwall loads a JSON photo feed once and shows it as a grid of tiles that
grows as you scroll. Filter by popularity, recency or discussion, and open
any tile in a gallery overlay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/pixwall/config.toml)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/pixwall/prefs.toml)")

	root.AddCommand(versionCmd())
	root.AddCommand(feedCmd(&opts.ConfigPath))

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pixwall %s (commit: %s)\n", Version, Commit)
		},
	}
}
