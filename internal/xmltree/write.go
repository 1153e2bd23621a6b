package xmltree

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
)

// Document wraps a root element for serialization.
type Document struct {
	Root *Node
}

// NewDocument wraps root into a document.
func NewDocument(root *Node) *Document {
	return &Document{Root: root}
}

// Write serializes the document with an XML declaration and two-space
// indentation.
func (d *Document) Write(w io.Writer) error {
	if d == nil || d.Root == nil {
		return fmt.Errorf("write: empty document")
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")
	if err := encodeNode(enc, d.Root); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return bw.Flush()
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	for _, a := range n.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := encodeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}
