package main

import (
	"os"

	"github.com/Masterminds/log-go"
	logcli "github.com/Masterminds/log-go/impl/cli"

	"github.com/rancher-sandbox/licy/pkg/cli"
)

var settings = cli.New()

func main() {

	logger := logcli.NewStandard()
	log.Current = logger

	cmd, err := newRootCmd(logger, os.Args[1:])
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	// flags are parsed by now
	if settings.Debug {
		logger.Level = log.DebugLevel
	}

	if err := cmd.Execute(); err != nil {
		logger.Debugf("%+v", err)
		os.Exit(1)
	}
}
