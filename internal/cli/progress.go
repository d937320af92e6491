package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/snipdocs/internal/build"
)

// CLIProgressReporter implements progress reporting with progress bars.
type CLIProgressReporter struct {
	quiet   bool
	scanBar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(docFiles int) {
	if c.quiet {
		return
	}
	fmt.Printf("Found %d source document(s)\n", docFiles)
}

func (c *CLIProgressReporter) OnScanStart(totalDocs int) {
	if c.quiet {
		return
	}
	c.scanBar = progressbar.NewOptions(totalDocs,
		progressbar.OptionSetDescription("Scanning documents"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("docs/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnDocumentScanned(name string) {
	if c.quiet {
		return
	}
	if c.scanBar != nil {
		c.scanBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnFetchStart(remoteLanguages int) {
	if c.quiet || remoteLanguages == 0 {
		return
	}
	fmt.Printf("Pulling remote snippets for %d language(s)...\n", remoteLanguages)
}

func (c *CLIProgressReporter) OnFetchComplete() {}

func (c *CLIProgressReporter) OnComplete(stats *build.Stats) {
	if c.quiet {
		return
	}
	fmt.Printf("✓ Build complete: %d page(s), %d snippet(s), %d display(s) in %.1fs\n",
		stats.Documents, stats.Snippets, stats.DisplayRequests, stats.Duration.Seconds())
}
