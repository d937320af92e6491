package snippet

import "github.com/rs/zerolog"

// Registry holds the set of configured languages in configuration order.
// It is built once at build initialization and never mutated afterward.
type Registry struct {
	byKey map[string]*Language
	order []*Language
}

// NewRegistry builds a registry from the configured language list. A duplicate
// key replaces the earlier entry in place (last wins) and logs a warning; the
// earlier entry's position in the order is kept.
func NewRegistry(langs []Language, logger zerolog.Logger) *Registry {
	r := &Registry{
		byKey: make(map[string]*Language, len(langs)),
	}

	for i := range langs {
		lang := langs[i]
		if _, exists := r.byKey[lang.Key]; exists {
			logger.Warn().
				Str("language", lang.Key).
				Msg("Duplicate language key in configuration, later entry wins")
			r.byKey[lang.Key] = &lang
			for j, existing := range r.order {
				if existing.Key == lang.Key {
					r.order[j] = &lang
					break
				}
			}
			continue
		}
		r.byKey[lang.Key] = &lang
		r.order = append(r.order, &lang)
	}

	return r
}

// Get returns the language for the given key.
func (r *Registry) Get(key string) (*Language, bool) {
	lang, ok := r.byKey[key]
	return lang, ok
}

// All returns the languages in configuration order.
func (r *Registry) All() []*Language {
	return r.order
}

// Keys returns the language keys in configuration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	for i, lang := range r.order {
		keys[i] = lang.Key
	}
	return keys
}

// Len returns the number of configured languages.
func (r *Registry) Len() int {
	return len(r.order)
}
