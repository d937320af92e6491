// Package doctree holds the document node model produced by scanning and
// consumed by resolution and rendering. The node set is a small closed set of
// tagged variants; rendering dispatches on the concrete type.
package doctree

import "github.com/mvp-joe/snipdocs/internal/snippet"

// Node is one element of a scanned document.
type Node interface {
	node()
}

// Text is a run of literal document lines.
type Text struct {
	Lines []string
}

// Display is a snippet-display placeholder: a request to show every snippet
// sharing Key. Snippets starts empty and is populated exactly once, during
// resolution; Resolved marks the terminal state.
type Display struct {
	Key      string
	Snippets []*snippet.Snippet
	Resolved bool
}

func (*Text) node()    {}
func (*Display) node() {}

// Document is one scanned source document.
type Document struct {
	// Name is the document's path relative to the build root.
	Name  string
	Nodes []Node
}

// Displays returns the document's display placeholders in document order.
func (d *Document) Displays() []*Display {
	var displays []*Display
	for _, n := range d.Nodes {
		if disp, ok := n.(*Display); ok {
			displays = append(displays, disp)
		}
	}
	return displays
}
