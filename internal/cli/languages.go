package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/snipdocs/internal/build"
	"github.com/mvp-joe/snipdocs/internal/config"
	"github.com/mvp-joe/snipdocs/internal/snippet"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the configured snippet languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLanguages()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages() error {
	cfg, err := config.LoadFromDir(rootDir)
	if err != nil {
		return err
	}

	registry := snippet.NewRegistry(build.LanguagesFromConfig(cfg), log.Logger)

	if registry.Len() == 0 {
		fmt.Println("No languages configured.")
		return nil
	}

	for _, lang := range registry.All() {
		source := "inline only"
		if lang.HasRemoteSource() {
			source = lang.PrettyURL(0)
		}
		fmt.Printf("%-12s %-16s %s\n", lang.Key, lang.DisplayName(), source)
	}

	return nil
}
