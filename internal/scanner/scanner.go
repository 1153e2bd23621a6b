// Package scanner populates the type store from the model section of a
// mapping document: primitive declarations, arrays, structures, named type
// aliases, and the nested package hierarchy that qualifies structure names.
package scanner

import (
	"github.com/tliron/commonlog"

	"github.com/seitarof/typebridge/internal/names"
	"github.com/seitarof/typebridge/internal/store"
	"github.com/seitarof/typebridge/internal/xmltree"
)

var log = commonlog.GetLogger("typebridge.scanner")

// maxArraySize bounds the element count accepted on array declarations.
const maxArraySize = 0xFFFF

// Stats summarizes one catalogue scan.
type Stats struct {
	Primitives int
	Arrays     int
	Structs    int
	// TypeRefs counts named-alias declarations that supplied a structure
	// with its data-set name.
	TypeRefs int
}

// Options controls scanning behavior.
type Options struct {
	// NumericTypes emits numeric protocol codes for primitives instead of
	// their base type names.
	NumericTypes bool
}

// Scanner walks a model section once and fills the type store.
type Scanner interface {
	Scan(model *xmltree.Node) Stats
}

type scannerImpl struct {
	store *store.Store
	opts  Options
}

// New creates a scanner writing into st.
func New(st *store.Store, opts Options) Scanner {
	return &scannerImpl{store: st, opts: opts}
}

// Scan runs the scanning passes. Later passes may reference entries of
// earlier ones by identifier; forward references are fine because chains
// are resolved only at compile time.
func (s *scannerImpl) Scan(model *xmltree.Node) Stats {
	var stats Stats
	s.scanPrimitives(model, &stats)
	s.scanArrays(model, &stats)
	s.scanStructs(model, &stats)
	stats.TypeRefs += s.scanAliases(model, "")
	stats.TypeRefs += s.scanPackages(model, "")
	log.Infof("found %d arrays, %d structs, %d type instantiations",
		stats.Arrays, stats.Structs, stats.TypeRefs)
	return stats
}

func (s *scannerImpl) scanPrimitives(model *xmltree.Node, stats *Stats) {
	for _, n := range model.ChildrenByTag("predefType") {
		id, ok := xmltree.IntAttr(n, "id", int(store.MinID), int(store.MaxID))
		if !ok {
			continue
		}
		name := n.Attr("name")
		code, known := lookupBaseType(name)
		if !known {
			log.Criticalf("unknown predefined type %q, entry dropped", name)
			continue
		}
		if s.store.DefinePrimitive(store.ID(id), protocolTypeID(code, s.opts.NumericTypes), code) {
			stats.Primitives++
		}
	}
}

func (s *scannerImpl) scanArrays(model *xmltree.Node, stats *Stats) {
	for _, n := range model.ChildrenByTag("array") {
		id, ok1 := xmltree.IntAttr(n, "id", int(store.MinID), int(store.MaxID))
		base, ok2 := xmltree.IntAttr(n, "baseType", int(store.MinID), int(store.MaxID))
		count, ok3 := xmltree.IntAttr(n, "size", 1, maxArraySize)
		if ok1 && ok2 && ok3 && s.store.DefineAlias(store.ID(id), store.ID(base), count, "") {
			stats.Arrays++
		}
	}
}

func (s *scannerImpl) scanStructs(model *xmltree.Node, stats *Stats) {
	for _, n := range model.ChildrenByTag("struct") {
		id, ok := xmltree.IntAttr(n, "id", int(store.MinID), int(store.MaxID))
		if !ok {
			continue
		}
		var fields []store.ID
		for _, fn := range n.ChildrenByTag("field") {
			fid, ok1 := xmltree.IntAttr(fn, "id", int(store.MinID), int(store.MaxID))
			typ, ok2 := xmltree.IntAttr(fn, "type", int(store.MinID), int(store.MaxID))
			if ok1 && ok2 && s.store.DefineAlias(store.ID(fid), store.ID(typ), 0, fn.Attr("name")) {
				fields = append(fields, store.ID(fid))
			}
		}
		if s.store.DefineStruct(store.ID(id), fields) {
			stats.Structs++
		}
	}
}

// scanAliases registers the named-alias declarations directly below parent
// and propagates their names onto anonymous structures, qualified by the
// enclosing package prefix. It returns how many aliases named a structure.
func (s *scannerImpl) scanAliases(parent *xmltree.Node, prefix string) int {
	named := 0
	for _, n := range parent.ChildrenByTag("type") {
		id, ok1 := xmltree.IntAttr(n, "id", int(store.MinID), int(store.MaxID))
		target, ok2 := xmltree.IntAttr(n, "type", int(store.MinID), int(store.MaxID))
		name := n.Attr("name")
		if ok1 && ok2 &&
			s.store.DefineAlias(store.ID(id), store.ID(target), 0, name) &&
			s.store.PropagateName(store.ID(target), name, prefix) {
			named++
		}
	}
	return named
}

// scanPackages walks the nested package hierarchy depth-first, stitching
// package names into the naming prefix, and re-runs the alias scan inside
// each package so structure names carry their full namespace path.
func (s *scannerImpl) scanPackages(parent *xmltree.Node, prefix string) int {
	named := 0
	for _, pkg := range parent.ChildrenByTag("package") {
		pkgName := names.Stitch(prefix, pkg.Attr("name"), '_', -1)
		named += s.scanAliases(pkg, pkgName)
		named += s.scanPackages(pkg, pkgName)
	}
	return named
}
