package main

import (
	"flag"
	"os"

	"github.com/louisbranch/riskodds/internal/platform/config"
	"github.com/louisbranch/riskodds/internal/tools/oddstable"
)

func main() {
	cfg, err := oddstable.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := oddstable.Run(cfg, os.Stdout); err != nil {
		config.Exitf("print odds tables: %v", err)
	}
}
