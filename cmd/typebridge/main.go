package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/seitarof/typebridge/internal/cli"
	"github.com/seitarof/typebridge/internal/locator"
	"github.com/seitarof/typebridge/internal/xmltree"
)

var version = "dev"

var log = commonlog.GetLogger("typebridge")

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	commonlog.Configure(cfg.Verbosity, nil)

	runner := cli.NewRunner(locator.New())
	if err := runner.Run(cfg); err != nil {
		log.Criticalf("%s", err)
		if errors.Is(err, xmltree.ErrUnreadableInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
