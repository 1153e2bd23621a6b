package store

// ID is a model identifier assigned by the external generator. The space is
// small and dense, so the store indexes entries by it directly.
type ID int

// Model identifier bounds inherited from the source format.
const (
	MinID ID = 1
	MaxID ID = 0x3FFF
)

// Valid reports whether id lies inside the model identifier space.
func (id ID) Valid() bool {
	return id >= MinID && id <= MaxID
}

// Kind discriminates the closed set of entry shapes.
type Kind uint8

const (
	// KindPrimitive is a leaf mapped to a canonical protocol base type.
	KindPrimitive Kind = iota
	// KindAlias denotes "is the same as, or an array of" another entry.
	KindAlias
	// KindStruct is a structure owning an ordered field list.
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindAlias:
		return "alias"
	case KindStruct:
		return "struct"
	default:
		return "undefined"
	}
}

// Entry describes one model identifier.
type Entry struct {
	ID   ID
	Kind Kind

	// DataSetID is the canonical protocol type identifier: the base type
	// name (or numeric code) for primitives, the synthesized decimal code
	// for user-defined entries. At most 11 characters.
	DataSetID string
	// Code is the numeric form of DataSetID.
	Code int

	// Target is the aliased entry for KindAlias.
	Target ID
	// Count is the array element count for aliases that came from an array
	// declaration; 0 for plain aliases.
	Count int
	// Fields holds the field entry identifiers of a KindStruct entry, in
	// declaration order. Field entries are registered under their own
	// identifiers; ownership is explicit here, not derived from identifier
	// adjacency.
	Fields []ID

	// RefCount counts how often the entry was found reachable from the
	// resolved operator's interface.
	RefCount int
	// Name is the optional display name: namespace-qualified and bounded
	// for data-sets, unbounded for fields.
	Name string
}

// IsArray reports whether the entry is an array declaration.
func (e *Entry) IsArray() bool {
	return e.Kind == KindAlias && e.Count > 0
}
