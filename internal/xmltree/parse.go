package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnreadableInput marks input that could not be parsed into a document
// tree at all. It is the only condition the pipeline treats as fatal.
var ErrUnreadableInput = errors.New("input is not a well-formed document")

// Parse reads a document and returns its root element. Namespaces are not
// interpreted; the model-mapping format does not use them.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var cur *Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnreadableInput, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := NewNode(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.SetAttr(a.Name.Local, a.Value)
			}
			if cur == nil {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrUnreadableInput)
				}
				root = n
			} else {
				cur.Append(n)
			}
			cur = n
		case xml.EndElement:
			if cur == nil {
				return nil, fmt.Errorf("%w: unbalanced end element <%s>", ErrUnreadableInput, t.Name.Local)
			}
			cur = cur.parent
		case xml.CharData:
			if cur == nil {
				continue
			}
			if text := strings.TrimSpace(string(t)); text != "" {
				cur.Text += text
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrUnreadableInput)
	}
	if cur != nil {
		return nil, fmt.Errorf("%w: unexpected end of document inside <%s>", ErrUnreadableInput, cur.Tag)
	}
	return root, nil
}
