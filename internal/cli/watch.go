package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/snipdocs/internal/build"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Build, then rebuild on document changes",
	Long: `Watch runs an initial build, then watches the root directory and re-runs a
full build whenever a source document changes. Each rebuild starts from a
fresh snippet store, so remote sources are re-pulled every cycle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command) error {
	builder, err := newBuilder()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if _, err := builder.Run(ctx); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := build.NewWatcher(builder, log.Logger)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	watcher.Start(ctx)
	log.Info().Str("root", rootDir).Msg("Watching for document changes (ctrl-c to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-ctx.Done():
	case <-sigCh:
	}

	return nil
}
