package compiler

import (
	"strconv"

	"github.com/seitarof/typebridge/internal/xmltree"
)

// Emit builds the output document tree: a data-set-list element containing
// one data-set per entry, each with its element children.
func Emit(list []DataSet) *xmltree.Document {
	root := xmltree.NewNode("data-set-list")
	for _, ds := range list {
		n := root.NewChild("data-set")
		n.SetAttr("id", ds.ID)
		if ds.Name != "" {
			n.SetAttr("name", ds.Name)
		}
		for _, el := range ds.Elements {
			en := n.NewChild("element")
			if el.Name != "" {
				en.SetAttr("name", el.Name)
			}
			en.SetAttr("type", el.Type)
			if el.ArraySize > 0 {
				en.SetAttr("array-size", strconv.Itoa(el.ArraySize))
			}
		}
	}
	return xmltree.NewDocument(root)
}
