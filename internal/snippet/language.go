package snippet

import "fmt"

// Language describes one configured snippet language. It is immutable for the
// duration of a build.
type Language struct {
	Key         string // unique id, e.g. "go"
	Name        string // display label, e.g. "Go"
	Highlight   string // syntax scheme id for the downstream highlighter
	LineComment string // comment token prefixing marker lines, e.g. "//"

	// Remote source location. All three must be set for the language to have
	// a fetchable remote source.
	Repository string // e.g. "mvp-joe/snipdocs-examples"
	Branch     string
	Path       string
}

// DisplayName returns the human label for the language, falling back to the
// key when no name was configured.
func (l *Language) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Key
}

// HighlightScheme returns the syntax scheme id, falling back to the key.
func (l *Language) HighlightScheme() string {
	if l.Highlight != "" {
		return l.Highlight
	}
	return l.Key
}

// HasRemoteSource reports whether the language has a complete remote source
// location (repository, branch and path all configured).
func (l *Language) HasRemoteSource() bool {
	return l.Repository != "" && l.Branch != "" && l.Path != ""
}

// RawURL returns the direct-fetch URL for the language's remote source, or ""
// when no remote source is configured.
func (l *Language) RawURL() string {
	if !l.HasRemoteSource() {
		return ""
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s",
		l.Repository, l.Branch, l.Path)
}

// PrettyURL returns the human-browsable URL for the language's remote source,
// anchored to the given line when line > 0. Returns "" when no remote source
// is configured.
func (l *Language) PrettyURL(line int) string {
	if !l.HasRemoteSource() {
		return ""
	}
	url := fmt.Sprintf("https://github.com/%s/blob/%s/%s",
		l.Repository, l.Branch, l.Path)
	if line > 0 {
		url = fmt.Sprintf("%s#L%d", url, line)
	}
	return url
}
