// Package xmltree is the labeled-tree collaborator of the translation core:
// a small mutable DOM with tag/attribute navigation, node construction, and
// document (de)serialization. The core never touches raw XML text.
package xmltree

import (
	"strconv"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("typebridge.xmltree")

// Attr is one name="value" pair on an element.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the document tree.
type Node struct {
	Tag  string
	Text string

	attrs    []Attr
	children []*Node
	parent   *Node
}

// NewNode creates a detached element node.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Parent returns the enclosing element, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct child elements in document order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Attrs returns the attributes in document order.
// The returned slice must not be modified.
func (n *Node) Attrs() []Attr {
	return n.attrs
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute.
func (n *Node) SetAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// Append attaches child as the last child of n.
func (n *Node) Append(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// NewChild creates an element with the given tag and attaches it to n.
func (n *Node) NewChild(tag string) *Node {
	child := NewNode(tag)
	n.Append(child)
	return child
}

// FirstChild returns the first direct child with the given tag, or nil.
func (n *Node) FirstChild(tag string) *Node {
	for _, c := range n.children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns the direct children with the given tag, in order.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildMatch returns the first direct child with the given tag whose
// attribute attr equals value, or nil.
func (n *Node) FirstChildMatch(tag, attr, value string) *Node {
	for _, c := range n.children {
		if c.Tag == tag && c.Attr(attr) == value {
			return c
		}
	}
	return nil
}

// FindAll returns every descendant of n (depth-first, pre-order, excluding
// n itself) with the given tag. When attr is non-empty only elements whose
// attribute attr equals value are returned.
func (n *Node) FindAll(tag, attr, value string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(p *Node) {
		for _, c := range p.children {
			if c.Tag == tag && (attr == "" || c.Attr(attr) == value) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Find returns the first descendant matched by FindAll, or nil.
func (n *Node) Find(tag, attr, value string) *Node {
	var walk func(*Node) *Node
	walk = func(p *Node) *Node {
		for _, c := range p.children {
			if c.Tag == tag && (attr == "" || c.Attr(attr) == value) {
				return c
			}
			if m := walk(c); m != nil {
				return m
			}
		}
		return nil
	}
	return walk(n)
}

// IntAttr reads the named attribute as a bounded integer. A missing or
// malformed value is logged as a warning and reported as not ok.
func IntAttr(n *Node, name string, min, max int) (int, bool) {
	raw := n.Attr(name)
	if raw == "" {
		log.Warningf("%s.%s not set", n.Tag, name)
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		log.Warningf("%s.%s = %q is invalid", n.Tag, name, raw)
		return 0, false
	}
	return v, true
}
