// Package resolve replaces display placeholders with the snippets matching
// their key, once scanning and fetching have both finished.
package resolve

import (
	"github.com/rs/zerolog"

	"github.com/mvp-joe/snipdocs/internal/doctree"
	"github.com/mvp-joe/snipdocs/internal/snippet"
)

// Resolver populates display placeholders from the store.
type Resolver struct {
	store *snippet.Store
	log   zerolog.Logger
}

// NewResolver creates a resolver over the given store.
func NewResolver(store *snippet.Store, logger zerolog.Logger) *Resolver {
	return &Resolver{store: store, log: logger}
}

// ResolveDocument resolves every display placeholder in the document. Each
// placeholder receives the store's matching snippets in insertion order:
// inline snippets in scan order, then remote snippets in language
// configuration order, then in-file order. When one or more configured
// languages have no snippet for the key, a warning names them and the
// placeholder keeps whatever matched. Resolution is partial-success and
// never reruns.
func (r *Resolver) ResolveDocument(doc *doctree.Document) {
	for _, display := range doc.Displays() {
		r.resolveDisplay(doc, display)
	}
}

func (r *Resolver) resolveDisplay(doc *doctree.Document, display *doctree.Display) {
	missing := make(map[string]bool, r.store.Registry().Len())
	for _, key := range r.store.Registry().Keys() {
		missing[key] = true
	}

	for _, sn := range r.store.All() {
		if sn.Key != display.Key {
			continue
		}
		delete(missing, sn.Language.Key)
		display.Snippets = append(display.Snippets, sn)
	}
	display.Resolved = true

	if len(missing) > 0 {
		// Report in configuration order.
		var missingKeys []string
		for _, key := range r.store.Registry().Keys() {
			if missing[key] {
				missingKeys = append(missingKeys, key)
			}
		}
		r.log.Warn().
			Str("doc", doc.Name).
			Str("key", display.Key).
			Strs("missing", missingKeys).
			Msg("Missing languages for snippet key")
	}
}
