// Package scan reads source documents, registering inline snippets and
// display placeholders as it builds each document tree.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/mvp-joe/snipdocs/internal/doctree"
	"github.com/mvp-joe/snipdocs/internal/snippet"
)

const (
	snippetDirective = ".. snippet::"
	displayDirective = ".. snippet-display::"
)

// Scanner parses documents for the two snippet directives. Everything that is
// not a directive passes through as literal text.
type Scanner struct {
	store *snippet.Store
	log   zerolog.Logger
}

// NewScanner creates a scanner registering into the given store.
func NewScanner(store *snippet.Store, logger zerolog.Logger) *Scanner {
	return &Scanner{store: store, log: logger}
}

// ScanFile scans the document at path. name is the document's identity in
// warnings and output (its path relative to the build root).
func (s *Scanner) ScanFile(path, name string) (*doctree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return s.Scan(name, f)
}

// Scan parses one document.
//
// An inline snippet block registers a snippet into the store and produces no
// output at its own location:
//
//	.. snippet:: <key> <language-id>
//
//	   <body lines>
//
// A display block produces a placeholder node, resolved after the whole build
// has been scanned and fetched:
//
//	.. snippet-display:: <key>
func (s *Scanner) Scan(name string, r io.Reader) (*doctree.Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}

	doc := &doctree.Document{Name: name}
	var text []string

	flushText := func() {
		if len(text) > 0 {
			doc.Nodes = append(doc.Nodes, &doctree.Text{Lines: text})
			text = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, displayDirective):
			key, ok := s.displayArgs(name, i+1, trimmed)
			if !ok {
				text = append(text, line)
				continue
			}
			flushText()
			doc.Nodes = append(doc.Nodes, &doctree.Display{Key: key})
			s.store.RecordDisplay(key, name)

		case strings.HasPrefix(trimmed, snippetDirective):
			key, langID, ok := s.snippetArgs(name, i+1, trimmed)
			if !ok {
				text = append(text, line)
				continue
			}
			flushText()
			body, consumed := collectBody(lines, i)
			i += consumed
			s.registerInline(name, i+1, key, langID, body)

		default:
			text = append(text, line)
		}
	}
	flushText()

	return doc, nil
}

// registerInline validates the language and adds the snippet to the store.
// The snippet carries no source line: origin lines belong to remote sources.
func (s *Scanner) registerInline(doc string, line int, key, langID string, body []string) {
	lang, ok := s.store.Registry().Get(langID)
	if !ok {
		s.log.Warn().
			Str("doc", doc).
			Int("line", line).
			Str("language", langID).
			Str("key", key).
			Msg("Snippet block references an unconfigured language, skipping")
		return
	}

	sn := &snippet.Snippet{
		Key:      key,
		Language: lang,
		Body:     body,
	}
	if err := s.store.Add(sn); err != nil {
		s.log.Warn().Str("doc", doc).Err(err).Msg("Discarding inline snippet")
	}
}

func (s *Scanner) snippetArgs(doc string, line int, directive string) (key, langID string, ok bool) {
	args := strings.Fields(strings.TrimPrefix(directive, snippetDirective))
	if len(args) != 2 {
		s.log.Warn().
			Str("doc", doc).
			Int("line", line).
			Str("text", directive).
			Msg("snippet directive needs a key and a language id")
		return "", "", false
	}
	return args[0], args[1], true
}

func (s *Scanner) displayArgs(doc string, line int, directive string) (key string, ok bool) {
	args := strings.Fields(strings.TrimPrefix(directive, displayDirective))
	if len(args) != 1 {
		s.log.Warn().
			Str("doc", doc).
			Int("line", line).
			Str("text", directive).
			Msg("snippet-display directive needs exactly one key")
		return "", false
	}
	return args[0], true
}

// collectBody gathers the indented block following the directive at
// lines[start]. The block runs until the first non-blank line indented at or
// left of the directive. Returns the dedented body and how many lines were
// consumed beyond the directive line.
func collectBody(lines []string, start int) (body []string, consumed int) {
	directiveIndent := indentWidth(lines[start])

	var raw []string
	i := start + 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			raw = append(raw, "")
			continue
		}
		if indentWidth(line) <= directiveIndent {
			break
		}
		raw = append(raw, line)
	}

	// Drop surrounding blank lines; the separating blank after the
	// directive is not part of the body.
	for len(raw) > 0 && raw[0] == "" {
		raw = raw[1:]
	}
	for len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	return dedent(raw), i - start - 1
}

// dedent strips the minimum indentation of the non-blank lines and trailing
// whitespace per line.
func dedent(raw []string) []string {
	minIndent := -1
	for _, line := range raw {
		if line == "" {
			continue
		}
		if w := indentWidth(line); minIndent == -1 || w < minIndent {
			minIndent = w
		}
	}
	if minIndent <= 0 {
		minIndent = 0
	}

	body := make([]string, len(raw))
	for i, line := range raw {
		if len(line) > minIndent {
			line = line[minIndent:]
		} else {
			line = ""
		}
		body[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return body
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
