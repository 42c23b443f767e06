package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yarlson/loadbar/internal/progress"
)

// Sentinel errors returned by Document mutations.
var (
	ErrNoBody   = errors.New("document has no body")
	ErrNotFound = errors.New("element not found")
)

const emptyPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an HTML page that implements progress.Surface.
type Document struct {
	mu   sync.RWMutex
	root *html.Node
}

var _ progress.Surface = (*Document)(nil)

// New returns an empty HTML page.
func New() *Document {
	doc, err := Parse(strings.NewReader(emptyPage))
	if err != nil {
		// The constant page always parses.
		panic(err)
	}
	return doc
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// Render writes the page as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// String returns the rendered page.
func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// HasBody reports whether the page has a body element.
func (d *Document) HasBody() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.body() != nil
}

// Exists reports whether an element with the id is in the page.
func (d *Document) Exists(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return findByID(d.root, id) != nil
}

// Count returns how many elements carry the id.
func (d *Document) Count(id string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	walk(d.root, func(node *html.Node) bool {
		if node.Type == html.ElementNode && attr(node, "id") == id {
			n++
		}
		return true
	})
	return n
}

// InsertFirst parses the element's markup in body context and inserts the
// resulting nodes before the body's first child.
func (d *Document) InsertFirst(el progress.Element) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := d.body()
	if body == nil {
		return ErrNoBody
	}
	return prepend(body, el.Markup)
}

// PrependInto inserts markup as the first child of the first tag element
// inside the element with the given id.
func (d *Document) PrependInto(id, tag, markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := findByID(d.root, id)
	if el == nil {
		return fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	var target *html.Node
	walk(el, func(node *html.Node) bool {
		if node != el && node.Type == html.ElementNode && node.Data == tag {
			target = node
			return false
		}
		return true
	})
	if target == nil {
		return fmt.Errorf("%w: #%s %s", ErrNotFound, id, tag)
	}
	return prepend(target, markup)
}

// Remove detaches the first element with the id.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := findByID(d.root, id)
	if el == nil || el.Parent == nil {
		return false
	}
	el.Parent.RemoveChild(el)
	return true
}

// SetStyle sets one property of the element's inline style attribute.
func (d *Document) SetStyle(id, property, value string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := findByID(d.root, id)
	if el == nil {
		return false
	}
	decls := setDeclaration(parseStyle(attr(el, "style")), property, value)
	setAttr(el, "style", formatStyle(decls))
	return true
}

// Style returns one property of the element's inline style attribute, or
// the empty string if the element or property is absent.
func (d *Document) Style(id, property string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el := findByID(d.root, id)
	if el == nil {
		return ""
	}
	return lookupDeclaration(parseStyle(attr(el, "style")), property)
}

func (d *Document) body() *html.Node {
	var body *html.Node
	walk(d.root, func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.DataAtom == atom.Body {
			body = node
			return false
		}
		return true
	})
	return body
}

// prepend parses markup in the context of parent and inserts the nodes
// ahead of parent's existing children, preserving their order.
func prepend(parent *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	first := parent.FirstChild
	for _, n := range nodes {
		parent.InsertBefore(n, first)
	}
	return nil
}

// walk visits nodes depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func findByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(node *html.Node) bool {
		if node.Type == html.ElementNode && attr(node, "id") == id {
			found = node
			return false
		}
		return true
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
