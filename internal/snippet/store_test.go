package snippet

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Registry and Store:
// - Registry preserves configuration order
// - Duplicate language keys warn and replace (last wins, position kept)
// - Store rejects snippets whose language is not registered
// - ByKey returns matches in insertion order
// - Fetched flag starts false and latches once marked
// - Display requests accumulate in scan order

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry([]Language{
		{Key: "go", Name: "Go", LineComment: "//"},
		{Key: "rust", Name: "Rust", LineComment: "//"},
		{Key: "py", Name: "Python", LineComment: "#"},
	}, zerolog.Nop())
}

func TestRegistry_Order(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)

	assert.Equal(t, []string{"go", "rust", "py"}, reg.Keys())
	assert.Equal(t, 3, reg.Len())

	lang, ok := reg.Get("rust")
	require.True(t, ok)
	assert.Equal(t, "Rust", lang.Name)

	_, ok = reg.Get("java")
	assert.False(t, ok)
}

func TestRegistry_DuplicateKeyLastWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reg := NewRegistry([]Language{
		{Key: "go", Name: "Go (old)", LineComment: "//"},
		{Key: "py", Name: "Python", LineComment: "#"},
		{Key: "go", Name: "Go (new)", LineComment: "//"},
	}, zerolog.New(&buf))

	assert.Equal(t, []string{"go", "py"}, reg.Keys())

	lang, ok := reg.Get("go")
	require.True(t, ok)
	assert.Equal(t, "Go (new)", lang.Name)

	assert.Contains(t, buf.String(), "Duplicate language key")
}

func TestStore_AddValidatesLanguage(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	store := NewStore(reg)

	goLang, _ := reg.Get("go")
	require.NoError(t, store.Add(&Snippet{Key: "ex1", Language: goLang}))

	err := store.Add(&Snippet{Key: "ex1", Language: &Language{Key: "java"}})
	require.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Equal(t, 1, store.Len())
}

func TestStore_ByKeyInsertionOrder(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	store := NewStore(reg)

	goLang, _ := reg.Get("go")
	rustLang, _ := reg.Get("rust")
	pyLang, _ := reg.Get("py")

	require.NoError(t, store.Add(&Snippet{Key: "ex1", Language: rustLang}))
	require.NoError(t, store.Add(&Snippet{Key: "other", Language: pyLang}))
	require.NoError(t, store.Add(&Snippet{Key: "ex1", Language: goLang}))

	matches := store.ByKey("ex1")
	require.Len(t, matches, 2)
	assert.Equal(t, "rust", matches[0].Language.Key)
	assert.Equal(t, "go", matches[1].Language.Key)

	assert.Empty(t, store.ByKey("missing"))
}

func TestStore_FetchedFlag(t *testing.T) {
	t.Parallel()

	store := NewStore(testRegistry(t))

	assert.False(t, store.Fetched())
	store.MarkFetched()
	assert.True(t, store.Fetched())
}

func TestStore_DisplayRequests(t *testing.T) {
	t.Parallel()

	store := NewStore(testRegistry(t))
	store.RecordDisplay("ex1", "guide.txt")
	store.RecordDisplay("ex2", "intro.txt")

	displays := store.Displays()
	require.Len(t, displays, 2)
	assert.Equal(t, DisplayRequest{Key: "ex1", Document: "guide.txt"}, displays[0])
	assert.Equal(t, DisplayRequest{Key: "ex2", Document: "intro.txt"}, displays[1])
}

func TestSnippet_SourceURL(t *testing.T) {
	t.Parallel()

	remote := &Language{Key: "go", LineComment: "//", Repository: "acme/examples", Branch: "main", Path: "examples.go"}

	fetched := &Snippet{Key: "ex1", Language: remote, SourceLine: 12}
	assert.Equal(t, "https://github.com/acme/examples/blob/main/examples.go#L12", fetched.SourceURL())

	inline := &Snippet{Key: "ex1", Language: remote}
	assert.Empty(t, inline.SourceURL())
}
