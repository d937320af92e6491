package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Language:
// - HasRemoteSource requires the full (repository, branch, path) triple
// - RawURL and PrettyURL are empty without a remote source
// - RawURL populates the raw.githubusercontent.com template
// - PrettyURL populates the blob template, with a #L anchor only when a line is given
// - DisplayName and HighlightScheme fall back to the key

func TestLanguage_HasRemoteSource(t *testing.T) {
	t.Parallel()

	full := Language{Key: "go", LineComment: "//", Repository: "acme/examples", Branch: "main", Path: "examples.go"}
	assert.True(t, full.HasRemoteSource())

	partial := Language{Key: "go", LineComment: "//", Repository: "acme/examples", Branch: "main"}
	assert.False(t, partial.HasRemoteSource())

	local := Language{Key: "go", LineComment: "//"}
	assert.False(t, local.HasRemoteSource())
}

func TestLanguage_URLsWithoutRemoteSource(t *testing.T) {
	t.Parallel()

	lang := Language{Key: "py", LineComment: "#"}

	assert.Empty(t, lang.RawURL())
	assert.Empty(t, lang.PrettyURL(0))
	assert.Empty(t, lang.PrettyURL(42))
}

func TestLanguage_RawURL(t *testing.T) {
	t.Parallel()

	lang := Language{
		Key:         "go",
		LineComment: "//",
		Repository:  "acme/examples",
		Branch:      "main",
		Path:        "go/examples.go",
	}

	assert.Equal(t,
		"https://raw.githubusercontent.com/acme/examples/main/go/examples.go",
		lang.RawURL())
}

func TestLanguage_PrettyURL(t *testing.T) {
	t.Parallel()

	lang := Language{
		Key:         "go",
		LineComment: "//",
		Repository:  "acme/examples",
		Branch:      "main",
		Path:        "go/examples.go",
	}

	assert.Equal(t,
		"https://github.com/acme/examples/blob/main/go/examples.go",
		lang.PrettyURL(0))
	assert.Equal(t,
		"https://github.com/acme/examples/blob/main/go/examples.go#L17",
		lang.PrettyURL(17))
}

func TestLanguage_Fallbacks(t *testing.T) {
	t.Parallel()

	bare := Language{Key: "rust", LineComment: "//"}
	assert.Equal(t, "rust", bare.DisplayName())
	assert.Equal(t, "rust", bare.HighlightScheme())

	named := Language{Key: "rust", Name: "Rust", Highlight: "rs", LineComment: "//"}
	assert.Equal(t, "Rust", named.DisplayName())
	assert.Equal(t, "rs", named.HighlightScheme())
}
