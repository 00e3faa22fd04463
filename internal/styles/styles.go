// Package styles renders host-provided CSS custom properties into a style
// block and swaps it into a document surface.
//
// The SDK does not touch a real DOM; it writes through the Document
// interface. Injected blocks are tagged with a marker so a re-application
// replaces the previous block instead of stacking a second one.
package styles

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Marker tags style blocks injected by this SDK.
const Marker = "frame-ux-vars"

// Document is the surface style blocks are injected into.
//
// Implementations wrap whatever rendering layer hosts the frame (a browser
// bridge, a server-side renderer, or the in-memory document used in tests).
type Document interface {
	// RemoveStyles removes every style block tagged with marker.
	RemoveStyles(marker string)

	// AppendStyle appends one style block tagged with marker.
	AppendStyle(marker, css string)
}

// Render builds a :root rule declaring the given custom properties.
// Properties are emitted in sorted order so output is deterministic.
func Render(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder

	b.WriteString(":root {\n")

	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}

	b.WriteString("}\n")

	return b.String()
}

// Apply renders vars and swaps the result into doc: any previously injected
// block is removed first, so the document holds at most one block for the
// marker. An empty variable map just removes the previous block.
func Apply(doc Document, vars map[string]string) {
	doc.RemoveStyles(Marker)

	css := Render(vars)
	if css == "" {
		return
	}

	doc.AppendStyle(Marker, css)
}

// MemDocument is an in-memory Document used as the default surface and in
// tests.
type MemDocument struct {
	mu     sync.Mutex
	blocks []memBlock
}

type memBlock struct {
	marker string
	css    string
}

// NewMemDocument creates an empty in-memory document.
func NewMemDocument() *MemDocument {
	return &MemDocument{}
}

// RemoveStyles removes every block tagged with marker.
func (d *MemDocument) RemoveStyles(marker string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.blocks[:0]

	for _, block := range d.blocks {
		if block.marker != marker {
			kept = append(kept, block)
		}
	}

	d.blocks = kept
}

// AppendStyle appends one block tagged with marker.
func (d *MemDocument) AppendStyle(marker, css string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.blocks = append(d.blocks, memBlock{marker: marker, css: css})
}

// Styles returns the css of every block tagged with marker, in order.
func (d *MemDocument) Styles(marker string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []string

	for _, block := range d.blocks {
		if block.marker == marker {
			out = append(out, block.css)
		}
	}

	return out
}
