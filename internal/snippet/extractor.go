package snippet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

const tabWidth = 8

// Extractor scans raw line-oriented text for snippet marker lines in one
// language's comment syntax and yields the delimited regions as snippets.
//
// Markers are literal substrings, matched anywhere in a line:
//
//	<line_comment> snippet-start <key>
//	<line_comment> snippet-end
//	<line_comment> snippet-ignore
type Extractor struct {
	lang *Language
	log  zerolog.Logger
}

// NewExtractor creates an extractor for the given language.
func NewExtractor(lang *Language, logger zerolog.Logger) *Extractor {
	return &Extractor{lang: lang, log: logger}
}

// Extract scans the input and returns every complete snippet region, in file
// order. A begin marker without a key logs a warning and starts nothing; a
// region left open at end of input is discarded. The returned error only
// reflects read failures on the input.
func (e *Extractor) Extract(r io.Reader) ([]*Snippet, error) {
	beginMarker := e.lang.LineComment + " snippet-start"
	endMarker := e.lang.LineComment + " snippet-end"
	ignoreMarker := e.lang.LineComment + " snippet-ignore"

	var snippets []*Snippet
	var builder *regionBuilder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		switch {
		case strings.Contains(line, endMarker) && builder != nil:
			snippets = append(snippets, builder.build())
			builder = nil
		case !strings.Contains(line, ignoreMarker) && builder != nil:
			builder.append(line)
		case strings.Contains(line, beginMarker):
			tokens := strings.Fields(line)
			if len(tokens) > 2 {
				builder = newRegionBuilder(tokens[2], e.lang, lineno)
			} else {
				e.log.Warn().
					Str("language", e.lang.Key).
					Int("line", lineno).
					Str("text", line).
					Msg("Missing snippet name on begin marker")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return snippets, fmt.Errorf("scan %s source: %w", e.lang.Key, err)
	}

	return snippets, nil
}

// regionBuilder accumulates the lines of one open snippet region.
type regionBuilder struct {
	key   string
	lang  *Language
	line  int
	lines []string
}

func newRegionBuilder(key string, lang *Language, line int) *regionBuilder {
	return &regionBuilder{key: key, lang: lang, line: line}
}

func (b *regionBuilder) append(line string) {
	b.lines = append(b.lines, expandTabs(line, tabWidth))
}

// build finalizes the region into a snippet. The indentation of the first
// collected line is stripped from every line; lines shorter than that width
// collapse to empty strings.
func (b *regionBuilder) build() *Snippet {
	body := make([]string, len(b.lines))
	if len(b.lines) > 0 {
		indent := len(b.lines[0]) - len(strings.TrimLeftFunc(b.lines[0], unicode.IsSpace))
		for i, line := range b.lines {
			if len(line) > indent {
				line = line[indent:]
			} else {
				line = ""
			}
			body[i] = strings.TrimRightFunc(line, unicode.IsSpace)
		}
	}

	return &Snippet{
		Key:        b.key,
		Language:   b.lang,
		Body:       body,
		SourceLine: b.line,
	}
}

// expandTabs replaces tabs with spaces up to the next multiple of width,
// matching the column arithmetic used by the marker sources this tool reads.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var out strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := width - col%width
			out.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		out.WriteRune(r)
		col++
	}
	return out.String()
}
