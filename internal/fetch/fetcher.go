// Package fetch pulls remote snippet sources once per build.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvp-joe/snipdocs/internal/snippet"
)

// DefaultTimeout bounds each per-language request. The fetch is sequential,
// so an unbounded hang on one language would stall every language after it.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves each remote language's source file and feeds it through
// the snippet extractor into the store.
type Fetcher struct {
	client *http.Client
	log    zerolog.Logger
}

// NewFetcher creates a fetcher. A timeout of 0 selects DefaultTimeout.
func NewFetcher(timeout time.Duration, logger zerolog.Logger) *Fetcher {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return NewFetcherWithClient(&http.Client{Timeout: timeout}, logger)
}

// NewFetcherWithClient creates a fetcher over a caller-supplied HTTP client.
func NewFetcherWithClient(client *http.Client, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		log:    logger,
	}
}

// FetchAll pulls remote snippets for every configured language into the
// store. It runs at most once per build: subsequent calls are no-ops. Fetch
// failures are per-language warnings, never fatal; a failed language simply
// contributes no remote snippets for the rest of the build.
func (f *Fetcher) FetchAll(ctx context.Context, store *snippet.Store) {
	if store.Fetched() {
		f.log.Debug().Msg("Remote snippets already pulled this build, skipping")
		return
	}

	for _, lang := range store.Registry().All() {
		f.fetchLanguage(ctx, store, lang)
	}

	store.MarkFetched()
}

func (f *Fetcher) fetchLanguage(ctx context.Context, store *snippet.Store, lang *snippet.Language) {
	rawURL := lang.RawURL()
	if rawURL == "" {
		f.log.Debug().Str("language", lang.Key).Msg("No remote source configured, skipping")
		return
	}

	f.log.Debug().Str("language", lang.Key).Str("url", rawURL).Msg("Pulling remote snippets")

	body, err := f.get(ctx, rawURL)
	if err != nil {
		f.log.Warn().
			Str("language", lang.Key).
			Err(err).
			Msg("Failed to pull remote snippets")
		return
	}
	defer body.Close()

	extractor := snippet.NewExtractor(lang, f.log)
	snippets, err := extractor.Extract(body)
	if err != nil {
		f.log.Warn().
			Str("language", lang.Key).
			Err(err).
			Msg("Failed to read remote snippet source")
		return
	}

	for _, sn := range snippets {
		if err := store.Add(sn); err != nil {
			f.log.Warn().Str("language", lang.Key).Err(err).Msg("Discarding remote snippet")
		}
	}

	f.log.Debug().
		Str("language", lang.Key).
		Int("snippets", len(snippets)).
		Msg("Pulled remote snippets")
}

func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}
