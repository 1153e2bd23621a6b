// Package locator resolves a scoped operator name to its interface
// declaration inside the nested package hierarchy of a mapping document.
package locator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/seitarof/typebridge/internal/xmltree"
)

var log = commonlog.GetLogger("typebridge.locator")

// scopeSep separates the segments of a scoped operator name.
const scopeSep = "::"

// maxRootNameLen bounds the root option value read from the config section.
const maxRootNameLen = 0x1000

var (
	// ErrNotFound reports an operator (or one of its scope segments) that
	// does not resolve.
	ErrNotFound = errors.New("operator not found")
	// ErrAmbiguous reports a leaf name matching more than one operator in
	// the resolved scope; the caller must supply a fuller scoped name.
	ErrAmbiguous = errors.New("operator name is ambiguous")
)

// Locator finds operator declarations.
type Locator interface {
	// Locate resolves scopedName ("Pkg::Sub::Op") inside the mapping
	// document. An empty scopedName falls back to the document's root
	// option.
	Locate(mapping *xmltree.Node, scopedName string) (*xmltree.Node, error)
}

type locatorImpl struct{}

// New creates the default locator.
func New() Locator {
	return &locatorImpl{}
}

// RootName reads the designated root operator name from the document's
// config section, or "" when absent.
func RootName(mapping *xmltree.Node) string {
	config := mapping.FirstChild("config")
	if config == nil {
		return ""
	}
	opt := config.Find("option", "name", "root")
	if opt == nil {
		return ""
	}
	name := opt.Attr("value")
	if name == "" || len(name) >= maxRootNameLen {
		return ""
	}
	log.Infof("identified root name: %s", name)
	return name
}

func (l *locatorImpl) Locate(mapping *xmltree.Node, scopedName string) (*xmltree.Node, error) {
	if scopedName == "" {
		scopedName = RootName(mapping)
	}
	if scopedName == "" {
		return nil, fmt.Errorf("%w: no operator name given and no root option set", ErrNotFound)
	}

	model := mapping.FirstChild("model")
	if model == nil {
		return nil, fmt.Errorf("%w: document has no model section", ErrNotFound)
	}

	scope := model
	segments := strings.Split(scopedName, scopeSep)
	for _, seg := range segments[:len(segments)-1] {
		next := scope.FirstChildMatch("package", "name", seg)
		if next == nil {
			return nil, fmt.Errorf("%w: package %q unresolved in %q", ErrNotFound, seg, scopedName)
		}
		scope = next
	}

	leaf := segments[len(segments)-1]
	matches := scope.FindAll("operator", "name", leaf)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, scopedName)
	case 1:
		log.Infof("resolved operator %q", qualifiedPath(matches[0], model))
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d operators match %q, add package path", ErrAmbiguous, len(matches), scopedName)
	}
}

// qualifiedPath renders the operator's full package path for confirmation.
func qualifiedPath(op, model *xmltree.Node) string {
	path := op.Attr("name")
	for p := op.Parent(); p != nil && p != model; p = p.Parent() {
		path = p.Attr("name") + scopeSep + path
	}
	return path
}
