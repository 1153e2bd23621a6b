// Package analyzer marks the type subgraph reachable from a resolved
// operator's declared inputs and outputs as required.
package analyzer

import (
	"github.com/tliron/commonlog"

	"github.com/seitarof/typebridge/internal/store"
	"github.com/seitarof/typebridge/internal/xmltree"
)

var log = commonlog.GetLogger("typebridge.analyzer")

// Report summarizes how many declared operator parameters actually carry
// composite (data-set worthy) types. A well-formed model passes only
// composite parameters; the counts are an operational health signal.
type Report struct {
	Inputs           int
	CompositeInputs  int
	Outputs          int
	CompositeOutputs int
}

// Analyzer accumulates reachability reference counts in the store.
type Analyzer interface {
	// Require marks id and everything reachable from it through alias and
	// field edges. It reports whether anything non-trivial lies below,
	// inclusive. Repeated calls increase counts monotonically.
	Require(id store.ID) bool
	// MarkOperator requires the types of every declared input and output
	// parameter of op.
	MarkOperator(op *xmltree.Node) Report
}

type analyzerImpl struct {
	store *store.Store
}

// New creates an analyzer over st.
func New(st *store.Store) Analyzer {
	return &analyzerImpl{store: st}
}

func (a *analyzerImpl) Require(id store.ID) bool {
	return a.require(id, make(map[store.ID]bool))
}

// require walks the type graph with an explicit on-path set: direct
// self-reference and deeper mutual-recursion cycles both cut recursion with
// an error. Siblings may legitimately revisit shared subtypes.
func (a *analyzerImpl) require(id store.ID, onPath map[store.ID]bool) bool {
	e, ok := a.store.Lookup(id)
	if !ok {
		log.Errorf("model id=%d is off scope, cannot be required", id)
		return false
	}
	if onPath[id] {
		log.Errorf("model id=%d closes a type cycle, recursion cut", id)
		return false
	}
	onPath[id] = true
	defer delete(onPath, id)

	e.RefCount++
	nontrivial := e.Count > 0 || len(e.Fields) > 0

	switch e.Kind {
	case store.KindAlias:
		if e.Target == id {
			log.Errorf("model id=%d is self-referencing, recursion cut", id)
			return nontrivial
		}
		if a.require(e.Target, onPath) {
			nontrivial = true
		}
	case store.KindStruct:
		for _, f := range e.Fields {
			if a.require(f, onPath) {
				nontrivial = true
			}
		}
	}
	return nontrivial
}

func (a *analyzerImpl) MarkOperator(op *xmltree.Node) Report {
	var r Report
	r.CompositeInputs, r.Inputs = a.markParams(op, "input")
	r.CompositeOutputs, r.Outputs = a.markParams(op, "output")
	return r
}

func (a *analyzerImpl) markParams(op *xmltree.Node, tag string) (composite, declared int) {
	for _, p := range op.ChildrenByTag(tag) {
		// A zero id still counts as declared; requiring it fails and the
		// parameter stays non-composite.
		id, ok := xmltree.IntAttr(p, "type", 0, int(store.MaxID))
		if !ok {
			continue
		}
		declared++
		if a.Require(store.ID(id)) {
			composite++
		}
	}
	if declared > 0 {
		if composite > 0 {
			log.Infof("operator has %d data-set %ss out of %d declared", composite, tag, declared)
		} else {
			log.Warningf("operator has no data-set %ss out of %d declared", tag, declared)
		}
	}
	return composite, declared
}
