// Package document implements port.Document over concrete page representations.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/dimmer/internal/application/port"
)

// HTML is a parsed HTML page. Style sheets go into <head>, classes onto <body>.
type HTML struct {
	mu   sync.Mutex
	root *html.Node
}

var _ port.Document = (*HTML)(nil)

// ParseHTML parses a page. The parser always synthesizes html, head and body.
func ParseHTML(r io.Reader) (*HTML, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &HTML{root: root}, nil
}

// ParseHTMLString is ParseHTML for in-memory markup.
func ParseHTMLString(s string) (*HTML, error) {
	return ParseHTML(strings.NewReader(s))
}

// Render writes the current tree.
func (d *HTML) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// String renders the tree to a string.
func (d *HTML) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

func (d *HTML) UpsertStyleSheet(_ context.Context, id, css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el := findByID(d.root, id)
	if el == nil {
		head := findElement(d.root, atom.Head)
		if head == nil {
			return fmt.Errorf("document has no head")
		}
		el = &html.Node{
			Type:     html.ElementNode,
			Data:     "style",
			DataAtom: atom.Style,
			Attr:     []html.Attribute{{Key: "id", Val: id}},
		}
		head.AppendChild(el)
	}

	for c := el.FirstChild; c != nil; {
		next := c.NextSibling
		el.RemoveChild(c)
		c = next
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return nil
}

func (d *HTML) RemoveStyleSheet(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for el := findByID(d.root, id); el != nil; el = findByID(d.root, id) {
		el.Parent.RemoveChild(el)
	}
	return nil
}

func (d *HTML) AddClass(_ context.Context, class string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := findElement(d.root, atom.Body)
	if body == nil {
		return fmt.Errorf("document has no body")
	}
	classes := classList(body)
	for _, c := range classes {
		if c == class {
			return nil
		}
	}
	setClassList(body, append(classes, class))
	return nil
}

func (d *HTML) RemoveClass(_ context.Context, class string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := findElement(d.root, atom.Body)
	if body == nil {
		return nil
	}
	classes := classList(body)
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	setClassList(body, kept)
	return nil
}

// HasClass reports whether the body carries class.
func (d *HTML) HasClass(class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := findElement(d.root, atom.Body)
	if body == nil {
		return false
	}
	for _, c := range classList(body) {
		if c == class {
			return true
		}
	}
	return false
}

// StyleSheets returns the text of every element with the given id, in document order.
func (d *HTML) StyleSheets(id string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []string
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			out = append(out, sb.String())
		}
		return true
	})
	return out
}

func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func findByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

func findElement(root *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return false
		}
		return true
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func classList(n *html.Node) []string {
	return strings.Fields(attr(n, "class"))
}

func setClassList(n *html.Node, classes []string) {
	value := strings.Join(classes, " ")
	for i, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		if value == "" {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
		n.Attr[i].Val = value
		return
	}
	if value != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: value})
	}
}
