package snippet

import (
	"errors"
	"fmt"
)

// ErrUnknownLanguage indicates a snippet referencing a language key that is
// not present in the registry.
var ErrUnknownLanguage = errors.New("unknown snippet language")

// Snippet is one extracted or inline-authored code example. Created once and
// immutable thereafter; held by the store for the duration of one build.
type Snippet struct {
	Key        string    // groups snippets presenting the same example
	Language   *Language // not owned; always present in the build's registry
	Body       []string  // trailing whitespace stripped per line
	SourceLine int       // origin line in the remote source, 0 for inline snippets
}

// SourceURL returns the browsable URL for the snippet's origin, or "" for
// inline snippets and languages without a remote source.
func (s *Snippet) SourceURL() string {
	if s.SourceLine == 0 {
		return ""
	}
	return s.Language.PrettyURL(s.SourceLine)
}

// DisplayRequest records one snippet-display placeholder encountered while
// scanning documents.
type DisplayRequest struct {
	Key      string
	Document string
}

// Store is the build-scoped snippet collection: the language registry, every
// snippet gathered so far (inline and remote, in insertion order) and the
// display requests collected while scanning. One store lives exactly as long
// as one build; a rebuild starts from a fresh store.
type Store struct {
	registry *Registry
	snippets []*Snippet
	displays []DisplayRequest
	fetched  bool
}

// NewStore creates an empty store over the given registry.
func NewStore(registry *Registry) *Store {
	return &Store{registry: registry}
}

// Registry returns the build's language registry.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Add appends a snippet. The snippet's language must be present in the
// registry.
func (s *Store) Add(sn *Snippet) error {
	if sn.Language == nil {
		return fmt.Errorf("%w: snippet %q has no language", ErrUnknownLanguage, sn.Key)
	}
	if _, ok := s.registry.Get(sn.Language.Key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, sn.Language.Key)
	}
	s.snippets = append(s.snippets, sn)
	return nil
}

// All returns every snippet in insertion order.
func (s *Store) All() []*Snippet {
	return s.snippets
}

// ByKey returns the snippets sharing the given key, in insertion order.
func (s *Store) ByKey(key string) []*Snippet {
	var matches []*Snippet
	for _, sn := range s.snippets {
		if sn.Key == key {
			matches = append(matches, sn)
		}
	}
	return matches
}

// Len returns the number of stored snippets.
func (s *Store) Len() int {
	return len(s.snippets)
}

// RecordDisplay records a snippet-display placeholder seen in a document.
func (s *Store) RecordDisplay(key, document string) {
	s.displays = append(s.displays, DisplayRequest{Key: key, Document: document})
}

// Displays returns the recorded display requests in scan order.
func (s *Store) Displays() []DisplayRequest {
	return s.displays
}

// Fetched reports whether remote content has already been pulled this build.
func (s *Store) Fetched() bool {
	return s.fetched
}

// MarkFetched flags remote content as pulled for the rest of the build.
func (s *Store) MarkFetched() {
	s.fetched = true
}
