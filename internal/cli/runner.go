package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/seitarof/typebridge/internal/analyzer"
	"github.com/seitarof/typebridge/internal/compiler"
	"github.com/seitarof/typebridge/internal/locator"
	"github.com/seitarof/typebridge/internal/scanner"
	"github.com/seitarof/typebridge/internal/store"
	"github.com/seitarof/typebridge/internal/xmltree"
)

var log = commonlog.GetLogger("typebridge.cli")

// Runner orchestrates scanner/locator/analyzer/compiler layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	locator locator.Locator
}

// NewRunner creates a default runner implementation.
func NewRunner(loc locator.Locator) Runner {
	return &runnerImpl{locator: loc}
}

// Run executes a single translation cycle. Every failure past parsing is
// reported and the pipeline proceeds to completion with whatever partial
// store state exists; only unreadable input aborts.
func (r *runnerImpl) Run(cfg *Config) error {
	mapping, err := r.readMapping(cfg.Input)
	if err != nil {
		return err
	}

	st := store.New()
	if mapping != nil {
		if model := mapping.FirstChild("model"); model != nil {
			scanner.New(st, scanner.Options{NumericTypes: cfg.NumericTypes}).Scan(model)
		} else {
			log.Warningf("mapping has no model section, nothing to scan")
		}

		op, err := r.locator.Locate(mapping, cfg.Operator)
		if err != nil {
			// Degrades to "nothing required": default-mode output stays
			// empty rather than aborting the pipeline.
			log.Errorf("operator resolution failed: %s", err)
		} else {
			analyzer.New(st).MarkOperator(op)
		}
	}

	list := compiler.New(st).Compile(cfg.AllDataSets)
	if len(list) == 0 {
		log.Warningf("no data-sets to export")
		return nil
	}
	return r.writeDataSets(cfg.Output, compiler.Emit(list))
}

func (r *runnerImpl) readMapping(path string) (*xmltree.Node, error) {
	var in io.Reader = os.Stdin
	name := "<stdin>"
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", xmltree.ErrUnreadableInput, err)
		}
		defer f.Close()
		in = f
		name = path
	}

	root, err := xmltree.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	log.Infof("read %s", name)

	mapping := root
	if mapping.Tag != "mapping" {
		mapping = root.FirstChild("mapping")
	}
	if mapping == nil {
		// Absent section, not unreadable input: the pipeline continues with
		// an empty store and degrades to "no data-sets to export".
		log.Warningf("%s has no mapping element, nothing to scan", name)
	}
	return mapping, nil
}

func (r *runnerImpl) writeDataSets(path string, doc *xmltree.Document) error {
	if path == "" {
		log.Infof("writing to stdout")
		return doc.Write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Infof("finished writing to %s", path)
	return nil
}
