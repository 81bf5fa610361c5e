package main

import (
	"bytes"

	"github.com/Masterminds/log-go"
	logcli "github.com/Masterminds/log-go/impl/cli"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func executeCommandStdinC(cmd string) (*cobra.Command, string, error) {

	args, err := shellwords.Parse(cmd)

	if err != nil {
		return nil, "", err
	}

	// create our own Logger that satisfies impl/cli.Logger, but with a buffer for tests
	buf := new(bytes.Buffer)
	logger := logcli.NewStandard()
	logger.InfoOut = buf
	logger.WarnOut = buf
	logger.ErrorOut = buf
	logger.DebugOut = buf
	log.Current = logger

	root, err := newRootCmd(logger, args)
	if err != nil {
		return nil, "", err
	}

	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err := root.ExecuteC()
	result := buf.String()

	return c, result, err
}
