// Package compiler flattens the type store into protocol-legal data-set
// descriptions: one data-set per structure, one element per field with its
// alias chain resolved to a base type and at most one array dimension.
package compiler

import (
	"github.com/tliron/commonlog"

	"github.com/seitarof/typebridge/internal/store"
)

var log = commonlog.GetLogger("typebridge.compiler")

// DataSet is one flattened record type of the target protocol.
type DataSet struct {
	// ID is the protocol data-set identifier.
	ID string
	// Name is the optional namespace-qualified display name.
	Name string
	// Elements lists the record members in declaration order.
	Elements []Element
}

// Element is one member of a data-set.
type Element struct {
	Name string
	// Type is the resolved base type's protocol identifier; empty when the
	// alias chain broke on an undefined reference or a cycle.
	Type string
	// ArraySize is the single permitted array dimension, 0 for scalars.
	ArraySize int
}

// Compiler turns the store into an ordered data-set list.
type Compiler interface {
	// Compile selects every structure with at least one field that is
	// either reachable from the resolved operator or, with includeAllKnown,
	// merely known, and flattens it.
	Compile(includeAllKnown bool) []DataSet
}

type compilerImpl struct {
	store *store.Store
}

// New creates a compiler over st.
func New(st *store.Store) Compiler {
	return &compilerImpl{store: st}
}

func (c *compilerImpl) Compile(includeAllKnown bool) []DataSet {
	var list []DataSet
	for id := store.MinID; id <= c.store.Max(); id++ {
		e, ok := c.store.Lookup(id)
		if !ok || e.Kind != store.KindStruct || len(e.Fields) == 0 {
			continue
		}
		if !includeAllKnown && e.RefCount == 0 {
			continue
		}
		list = append(list, c.compileDataSet(e))
	}
	return list
}

func (c *compilerImpl) compileDataSet(root *store.Entry) DataSet {
	ds := DataSet{
		ID:       root.DataSetID,
		Name:     root.Name,
		Elements: make([]Element, 0, len(root.Fields)),
	}
	for _, fid := range root.Fields {
		ds.Elements = append(ds.Elements, c.compileElement(root, fid))
	}
	return ds
}

// compileElement follows the field's alias chain to a primitive or another
// structure, recording the first array dimension encountered. A second
// dimension cannot be mapped onto the protocol; it is reported and dropped,
// keeping the output best-effort.
func (c *compilerImpl) compileElement(root *store.Entry, fid store.ID) Element {
	field, ok := c.store.Lookup(fid)
	if !ok {
		log.Errorf("data-set %s references undefined field id=%d", root.DataSetID, fid)
		return Element{}
	}
	el := Element{Name: field.Name}

	onChain := map[store.ID]bool{fid: true}
	cur := field
	for cur.Kind == store.KindAlias {
		next, ok := c.store.Lookup(cur.Target)
		if !ok {
			log.Errorf("data-set %s element %q references undefined model id=%d",
				root.DataSetID, field.Name, cur.Target)
			return el
		}
		if onChain[cur.Target] {
			log.Errorf("data-set %s element %q closes a type cycle at model id=%d",
				root.DataSetID, field.Name, cur.Target)
			return el
		}
		onChain[cur.Target] = true
		cur = next

		if cur.IsArray() {
			if el.ArraySize == 0 {
				el.ArraySize = cur.Count
			} else {
				log.Errorf("array of array is not mapable, output may be incomplete: (DS=%s) %s->%s[%d][%d]",
					root.DataSetID, root.Name, field.Name, el.ArraySize, cur.Count)
			}
		}
	}

	el.Type = cur.DataSetID
	return el
}
