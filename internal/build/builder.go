// Package build orchestrates one documentation build: discover documents,
// scan them for snippets and placeholders, pull remote snippet sources once,
// resolve every placeholder, and render the output pages.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvp-joe/snipdocs/internal/config"
	"github.com/mvp-joe/snipdocs/internal/doctree"
	"github.com/mvp-joe/snipdocs/internal/fetch"
	"github.com/mvp-joe/snipdocs/internal/render"
	"github.com/mvp-joe/snipdocs/internal/resolve"
	"github.com/mvp-joe/snipdocs/internal/scan"
	"github.com/mvp-joe/snipdocs/internal/snippet"
)

// LanguagesFromConfig converts configured language records into the registry
// form.
func LanguagesFromConfig(cfg *config.Config) []snippet.Language {
	languages := make([]snippet.Language, len(cfg.Languages))
	for i, lc := range cfg.Languages {
		languages[i] = snippet.Language{
			Key:         lc.Key,
			Name:        lc.Name,
			Highlight:   lc.Highlight,
			LineComment: lc.LineComment,
			Repository:  lc.Repository,
			Branch:      lc.Branch,
			Path:        lc.Path,
		}
	}
	return languages
}

// Builder runs complete builds. Each Run constructs a fresh store: snippets
// and fetched remote content live for exactly one build cycle.
type Builder struct {
	rootDir   string
	cfg       *config.Config
	languages []snippet.Language
	fetcher   *fetch.Fetcher
	discovery *DocDiscovery
	progress  ProgressReporter
	log       zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithProgress attaches a progress reporter.
func WithProgress(p ProgressReporter) Option {
	return func(b *Builder) { b.progress = p }
}

// WithFetcher overrides the remote fetcher (used by tests).
func WithFetcher(f *fetch.Fetcher) Option {
	return func(b *Builder) { b.fetcher = f }
}

// New creates a builder for the given root directory and configuration.
func New(rootDir string, cfg *config.Config, logger zerolog.Logger, opts ...Option) (*Builder, error) {
	discovery, err := NewDocDiscovery(rootDir, cfg.Paths.Docs, cfg.Paths.Ignore)
	if err != nil {
		return nil, fmt.Errorf("compile document patterns: %w", err)
	}

	b := &Builder{
		rootDir:   rootDir,
		cfg:       cfg,
		languages: LanguagesFromConfig(cfg),
		fetcher:   fetch.NewFetcher(cfg.Fetch.Timeout(), logger),
		discovery: discovery,
		progress:  NopProgress{},
		log:       logger,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Run executes one full build. The pipeline is strictly sequential: every
// document is scanned before the remote pull, and every remote source is
// pulled before the first placeholder resolves.
func (b *Builder) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()

	registry := snippet.NewRegistry(b.languages, b.log)
	store := snippet.NewStore(registry)

	docPaths, err := b.discovery.Discover()
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}
	b.progress.OnDiscoveryComplete(len(docPaths))

	scanner := scan.NewScanner(store, b.log)
	documents := make([]*doctree.Document, 0, len(docPaths))

	b.progress.OnScanStart(len(docPaths))
	for _, relPath := range docPaths {
		doc, err := scanner.ScanFile(filepath.Join(b.rootDir, relPath), relPath)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", relPath, err)
		}
		documents = append(documents, doc)
		b.progress.OnDocumentScanned(relPath)
	}

	remote := 0
	for _, lang := range registry.All() {
		if lang.HasRemoteSource() {
			remote++
		}
	}
	b.progress.OnFetchStart(remote)
	b.fetcher.FetchAll(ctx, store)
	b.progress.OnFetchComplete()

	resolver := resolve.NewResolver(store, b.log)
	renderer := render.NewRenderer()
	for _, doc := range documents {
		resolver.ResolveDocument(doc)
		if err := b.writePage(doc, renderer.RenderDocument(doc)); err != nil {
			return nil, err
		}
	}

	stats := &Stats{
		Documents:       len(documents),
		Snippets:        store.Len(),
		DisplayRequests: len(store.Displays()),
		Duration:        time.Since(start),
	}
	b.progress.OnComplete(stats)

	b.log.Info().
		Int("documents", stats.Documents).
		Int("snippets", stats.Snippets).
		Int("displays", stats.DisplayRequests).
		Dur("duration", stats.Duration).
		Msg("Build complete")

	return stats, nil
}

// writePage writes one rendered document into the output directory, swapping
// the source extension for .html.
func (b *Builder) writePage(doc *doctree.Document, content string) error {
	outName := strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name)) + ".html"
	outPath := filepath.Join(b.rootDir, b.cfg.Output.Dir, filepath.FromSlash(outName))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outName, err)
	}

	return nil
}
