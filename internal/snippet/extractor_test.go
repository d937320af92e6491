package snippet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Extractor:
// - Round-trips a begin/end region into one snippet with indentation stripped
// - Ignore-marker lines are excluded from the body without ending the region
// - Begin marker without a key yields zero snippets and one warning
// - An unterminated region yields nothing
// - Empty regions yield a snippet with an empty body
// - Tabs expand to 8-column stops before dedenting
// - Lines shorter than the first line's indent collapse to empty strings
// - Multiple regions in one file come out in file order

func goLang() *Language {
	return &Language{Key: "go", Name: "Go", Highlight: "go", LineComment: "//"}
}

func extract(t *testing.T, lang *Language, input string) ([]*Snippet, string) {
	t.Helper()

	var buf bytes.Buffer
	ex := NewExtractor(lang, zerolog.New(&buf))
	snippets, err := ex.Extract(strings.NewReader(input))
	require.NoError(t, err)
	return snippets, buf.String()
}

func TestExtractor_RoundTrip(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"package main",
		"// snippet-start foo",
		"    a := 1",
		"    b := 2",
		"// snippet-end",
	}, "\n")

	snippets, warnings := extract(t, goLang(), input)

	require.Len(t, snippets, 1)
	assert.Empty(t, warnings)

	sn := snippets[0]
	assert.Equal(t, "foo", sn.Key)
	assert.Equal(t, "go", sn.Language.Key)
	assert.Equal(t, []string{"a := 1", "b := 2"}, sn.Body)
	assert.Equal(t, 2, sn.SourceLine)
}

func TestExtractor_IgnoreMarker(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"// snippet-start foo",
		"kept := true",
		"setupTestHarness() // snippet-ignore",
		"alsoKept := true",
		"// snippet-end",
	}, "\n")

	snippets, _ := extract(t, goLang(), input)

	require.Len(t, snippets, 1)
	assert.Equal(t, []string{"kept := true", "alsoKept := true"}, snippets[0].Body)
}

func TestExtractor_MissingSnippetName(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"// snippet-start",
		"orphaned := true",
		"// snippet-end",
		"// snippet-start named",
		"x := 1",
		"// snippet-end",
	}, "\n")

	snippets, warnings := extract(t, goLang(), input)

	// The malformed marker starts nothing; scanning resumes and picks up the
	// next region normally.
	require.Len(t, snippets, 1)
	assert.Equal(t, "named", snippets[0].Key)

	require.Equal(t, 1, strings.Count(warnings, "\n"))
	assert.Contains(t, warnings, "Missing snippet name")
	assert.Contains(t, warnings, `"line":1`)
}

func TestExtractor_UnterminatedRegion(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"// snippet-start foo",
		"never := closed",
	}, "\n")

	snippets, warnings := extract(t, goLang(), input)

	assert.Empty(t, snippets)
	assert.Empty(t, warnings)
}

func TestExtractor_EmptyBody(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"// snippet-start empty",
		"// snippet-end",
	}, "\n")

	snippets, _ := extract(t, goLang(), input)

	require.Len(t, snippets, 1)
	assert.Equal(t, "empty", snippets[0].Key)
	assert.Empty(t, snippets[0].Body)
}

func TestExtractor_TabExpansion(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"// snippet-start tabs",
		"\tindented := true",
		"\t\tdeeper := true",
		"// snippet-end",
	}, "\n")

	snippets, _ := extract(t, goLang(), input)

	require.Len(t, snippets, 1)
	// First line's tab expands to 8 spaces and is stripped; the second line
	// keeps its remaining 8 spaces.
	assert.Equal(t, []string{"indented := true", "        deeper := true"}, snippets[0].Body)
}

func TestExtractor_ShortLineTruncation(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# snippet-start short",
		"        indented = True",
		"x = 1",
		"# snippet-end",
	}, "\n")

	py := &Language{Key: "py", LineComment: "#"}
	snippets, _ := extract(t, py, input)

	require.Len(t, snippets, 1)
	// The second line is shorter than the first line's 8-column indent and
	// collapses to an empty string rather than erroring.
	assert.Equal(t, []string{"indented = True", ""}, snippets[0].Body)
}

func TestExtractor_MultipleRegions(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"// snippet-start first",
		"one := 1",
		"// snippet-end",
		"between := true",
		"// snippet-start second",
		"two := 2",
		"// snippet-end",
	}, "\n")

	snippets, _ := extract(t, goLang(), input)

	require.Len(t, snippets, 2)
	assert.Equal(t, "first", snippets[0].Key)
	assert.Equal(t, "second", snippets[1].Key)
}
