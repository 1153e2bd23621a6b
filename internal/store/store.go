// Package store holds the ID-indexed type entry table every pipeline stage
// reads or writes. Entries are created once by the catalogue scanner, may
// receive a display name from a later naming pass, and accumulate reference
// counts during reachability analysis.
package store

import (
	"strconv"

	"github.com/tliron/commonlog"

	"github.com/seitarof/typebridge/internal/names"
)

var log = commonlog.GetLogger("typebridge.store")

// DataSetNameMax is the display name limit for data-sets. Field element
// names are unbounded.
const DataSetNameMax = 30

// userCodeBase offsets synthesized protocol codes for user-defined entries
// so they never collide with primitive base type codes.
const userCodeBase = 1000

// Store is a dense table over the model identifier space. Identifiers are
// small externally-assigned integers, so a plain indexed slice with an
// explicit defined flag beats a hashed map: lookups stay O(1) and
// allocation-free during traversal.
type Store struct {
	entries []Entry
	defined []bool
	max     ID
}

// New allocates an empty store spanning the whole identifier space.
func New() *Store {
	return &Store{
		entries: make([]Entry, MaxID+1),
		defined: make([]bool, MaxID+1),
	}
}

// Lookup returns the entry for id, if defined.
func (s *Store) Lookup(id ID) (*Entry, bool) {
	if !id.Valid() || !s.defined[id] {
		return nil, false
	}
	return &s.entries[id], true
}

// Max returns the highest defined identifier, 0 when the store is empty.
func (s *Store) Max() ID {
	return s.max
}

// Len returns the number of defined entries.
func (s *Store) Len() int {
	n := 0
	for _, d := range s.defined {
		if d {
			n++
		}
	}
	return n
}

// claim reserves id for a new entry. The first definition wins; a second
// attempt is reported and rejected.
func (s *Store) claim(id ID) (*Entry, bool) {
	if !id.Valid() {
		log.Errorf("model id=%d off scope, entry dropped", id)
		return nil, false
	}
	if s.defined[id] {
		log.Criticalf("model id=%d not defined again, keeping first definition", id)
		return nil, false
	}
	s.defined[id] = true
	if id > s.max {
		s.max = id
	}
	e := &s.entries[id]
	e.ID = id
	return e, true
}

// DefinePrimitive inserts a leaf entry carrying its canonical protocol type
// identifier and numeric code.
func (s *Store) DefinePrimitive(id ID, dataSetID string, code int) bool {
	e, ok := s.claim(id)
	if !ok {
		return false
	}
	e.Kind = KindPrimitive
	e.DataSetID = dataSetID
	e.Code = code
	return true
}

// DefineAlias inserts an alias of target: a named type alias or struct field
// when count is 0, an array declaration otherwise. name may be empty.
func (s *Store) DefineAlias(id, target ID, count int, name string) bool {
	e, ok := s.claim(id)
	if !ok {
		return false
	}
	e.Kind = KindAlias
	e.Target = target
	e.Count = count
	e.Name = name
	s.synthesizeCode(e)
	return true
}

// DefineStruct inserts a structure owning the given ordered field entries.
func (s *Store) DefineStruct(id ID, fields []ID) bool {
	e, ok := s.claim(id)
	if !ok {
		return false
	}
	e.Kind = KindStruct
	e.Fields = fields
	s.synthesizeCode(e)
	return true
}

func (s *Store) synthesizeCode(e *Entry) {
	e.Code = userCodeBase + int(e.ID)
	e.DataSetID = strconv.Itoa(e.Code)
}

// PropagateName attaches a namespace-qualified display name to a structure
// that has none yet. Non-struct and undefined targets are left alone; a
// conflicting proposal for an already-named structure is reported and the
// first name kept.
func (s *Store) PropagateName(id ID, name, prefix string) bool {
	e, ok := s.Lookup(id)
	if !ok {
		if id.Valid() {
			log.Criticalf("model id=%d not defined, cannot carry name %q", id, name)
		}
		return false
	}
	if e.Kind != KindStruct {
		return false
	}
	if e.Name != "" {
		log.Criticalf("model id=%d = %q should be renamed %q", id, e.Name, name)
		return false
	}
	e.Name = names.Stitch(prefix, name, '_', DataSetNameMax)
	return true
}
