package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/snipdocs/internal/build"
	"github.com/mvp-joe/snipdocs/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the documentation once",
	Long: `Build scans every source document under the root, pulls remote snippet
sources once, resolves all snippet displays, and writes rendered pages to the
output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command) error {
	builder, err := newBuilder()
	if err != nil {
		return err
	}

	stats, err := builder.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	log.Debug().
		Int("documents", stats.Documents).
		Int("snippets", stats.Snippets).
		Msg("Build finished")

	return nil
}

// newBuilder loads configuration and assembles a builder with the CLI
// progress reporter.
func newBuilder() (*build.Builder, error) {
	cfg, err := config.LoadFromDir(rootDir)
	if err != nil {
		return nil, err
	}

	return build.New(rootDir, cfg, log.Logger,
		build.WithProgress(NewCLIProgressReporter(quiet)))
}
